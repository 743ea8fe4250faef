package editor

import (
	"fmt"
	"path/filepath"

	"github.com/shirou/gopsutil/v3/disk"
)

// SpaceChecker reports the free bytes available on the volume holding dir.
type SpaceChecker interface {
	Available(dir string) (uint64, error)
}

// DiskSpace queries the filesystem through gopsutil.
type DiskSpace struct{}

// Available implements SpaceChecker.
func (DiskSpace) Available(dir string) (uint64, error) {
	usage, err := disk.Usage(dir)
	if err != nil {
		return 0, fmt.Errorf("editor: disk usage of %s: %w", dir, err)
	}
	return usage.Free, nil
}

// ensureSpace fails with ErrInsufficientSpace if need bytes will not fit
// next to dst.
func (e *Editor) ensureSpace(dst string, need int64) error {
	if need <= 0 || e.space == nil {
		return nil
	}

	dir := filepath.Dir(dst)
	avail, err := e.space.Available(dir)
	if err != nil {
		return err
	}
	if uint64(need) > avail {
		return fmt.Errorf("%w: %d byte(s) needed, %d available", ErrInsufficientSpace, need, avail)
	}

	e.logger.Debug("space check passed", "dir", dir, "need", need, "available", avail)
	return nil
}

package editor

import (
	"fmt"
	"os"

	"github.com/vovakirdan/lmpedit/internal/demo"
)

// CycleViewer asks Retarget to move the viewpoint to the next active player.
const CycleViewer = -1

// RetargetOptions selects the in-place header changes.
type RetargetOptions struct {
	// Version is the new minor version (4-9), or 0 to leave it.
	Version int

	// Viewer is the new 1-based recording player, CycleViewer, or 0 to
	// leave it.
	Viewer int
}

// RetargetResult reports the header bytes Retarget changed.
type RetargetResult struct {
	Path string

	OldVersion, NewVersion   int // minor versions
	OldRecorder, NewRecorder int // 0-based slots

	Changed bool
}

// Retarget rewrites the version byte and/or the recording player of a
// modern recording in place. The file keeps its modification time.
func (e *Editor) Retarget(path string, opts RetargetOptions) (RetargetResult, error) {
	if opts.Version != 0 && (opts.Version < demo.MinVersion || opts.Version > demo.MaxVersion) {
		return RetargetResult{}, rangeErr("invalid LMP version 1.%d", opts.Version)
	}
	if opts.Viewer != 0 && opts.Viewer != CycleViewer && (opts.Viewer < 1 || opts.Viewer > demo.MaxPlayers) {
		return RetargetResult{}, rangeErr("invalid viewpoint - %d", opts.Viewer)
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return RetargetResult{}, fmt.Errorf("cannot open LMP file %q: %w", path, err)
	}
	defer f.Close()

	h, err := demo.ReadHeader(f)
	if err != nil {
		return RetargetResult{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := h.Validate(e.variant); err != nil {
		return RetargetResult{}, fmt.Errorf("%s: %w", path, err)
	}
	if h.Legacy {
		return RetargetResult{}, fmt.Errorf("%s: %w", path, ErrLegacyFormat)
	}

	st, err := f.Stat()
	if err != nil {
		return RetargetResult{}, fmt.Errorf("unable to get file stat of %q: %w", path, err)
	}

	res := RetargetResult{
		Path:        path,
		OldVersion:  h.MinorVersion(),
		NewVersion:  h.MinorVersion(),
		OldRecorder: h.Recorder,
		NewRecorder: h.Recorder,
	}

	// An inactive viewpoint does not stop the version change.
	var viewerErr error
	switch {
	case opts.Viewer == CycleViewer:
		res.NewRecorder = nextActive(h)
	case opts.Viewer > 0:
		if who := opts.Viewer - 1; h.Active(who) {
			res.NewRecorder = who
		} else {
			viewerErr = rangeErr("viewpoint not active - %d", opts.Viewer)
		}
	}
	if opts.Version != 0 {
		res.NewVersion = opts.Version
	}

	if res.NewVersion != res.OldVersion {
		if _, err := f.WriteAt([]byte{byte(100 + res.NewVersion)}, 0); err != nil {
			return res, fmt.Errorf("update version of %q: %w", path, err)
		}
		res.Changed = true
	}
	if res.NewRecorder != res.OldRecorder {
		if _, err := f.WriteAt([]byte{byte(res.NewRecorder)}, 8); err != nil {
			return res, fmt.Errorf("update recording player of %q: %w", path, err)
		}
		res.Changed = true
	}

	if !res.Changed {
		return res, viewerErr
	}
	if err := f.Close(); err != nil {
		return res, fmt.Errorf("close %q: %w", path, err)
	}
	if err := os.Chtimes(path, st.ModTime(), st.ModTime()); err != nil {
		return res, fmt.Errorf("unable to set time of %q: %w", path, err)
	}

	e.logger.Info("retargeted recording",
		"path", path,
		"version", fmt.Sprintf("1.%d", res.NewVersion),
		"recorder", demo.PlayerName(res.NewRecorder),
	)
	tics := demo.DeriveGeometry(h, e.variant, st.Size()).Tics
	e.record(Result{
		Operation:   OpRetarget,
		Source:      path,
		Destination: path,
		Version:     res.NewVersion,
		TicsBefore:  tics,
		TicsAfter:   tics,
		Written:     true,
	})
	return res, viewerErr
}

// nextActive returns the next active slot after the recorder, wrapping
// around. Validation guarantees the recorder itself is active.
func nextActive(h demo.Header) int {
	who := (h.Recorder + 1) % demo.MaxPlayers
	for !h.Active(who) {
		who = (who + 1) % demo.MaxPlayers
	}
	return who
}

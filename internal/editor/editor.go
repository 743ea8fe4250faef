// Package editor produces edited copies of LMP recordings.
//
// Every transformation follows the same steps: open the source read-only,
// read and validate its header, derive its geometry, check the caller's
// arguments, make sure the output fits on disk, create the destination,
// write the header and the transformed tics, append the terminator and
// give the destination the source's modification time. Nothing is shared
// between calls; a batch run simply calls the editor once per file.
package editor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lmpedit/internal/demo"
	"github.com/vovakirdan/lmpedit/internal/registry"
	"github.com/vovakirdan/lmpedit/internal/ticstream"
)

// Operation names a transformation. The values double as journal keys.
type Operation string

const (
	OpConvert  Operation = "convert"
	OpCut      Operation = "cut"
	OpChop     Operation = "chop"
	OpWait     Operation = "wait"
	OpUnpause  Operation = "rp"
	OpRetarget Operation = "retarget"
)

// MaxWaitTics is the largest number of idle tics Wait appends.
const MaxWaitTics = 2147483647

// Config holds the collaborators of an Editor.
type Config struct {
	// Variant selects record width and header ranges.
	// If nil, Doom's values are used.
	Variant registry.Variant

	// Space checks free disk space before any output is created.
	// If nil, DiskSpace is used.
	Space SpaceChecker

	// Logger receives progress and diagnostics.
	// If nil, output is discarded.
	Logger *log.Logger

	// Recorder, if set, is told about every output that is kept.
	Recorder Recorder
}

// Recorder receives completed transformations.
type Recorder interface {
	RecordEdit(res Result, variant string) error
}

// Editor runs transformations on recordings.
type Editor struct {
	variant  registry.Variant
	space    SpaceChecker
	logger   *log.Logger
	recorder Recorder
}

// New creates an Editor with the given configuration.
func New(cfg Config) *Editor {
	e := &Editor{
		variant:  cfg.Variant,
		space:    cfg.Space,
		logger:   cfg.Logger,
		recorder: cfg.Recorder,
	}
	if e.space == nil {
		e.space = DiskSpace{}
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	return e
}

// Variant returns the variant the editor was configured with.
func (e *Editor) Variant() registry.Variant {
	return e.variant
}

// Result describes a completed transformation.
type Result struct {
	Operation   Operation
	Source      string
	Destination string

	Version int   // target version of a conversion
	Start   int64 // first removed tic of a cut
	End     int64 // last removed tic of a cut
	Count   int64 // tics requested for chop and wait

	TicsBefore float64
	TicsAfter  float64
	Removed    int64 // tics dropped
	Added      int64 // idle tics appended

	// Runs and Events are filled by RemovePauses.
	Runs   int
	Events []PauseEvent

	// Written is false when no output file was kept.
	Written bool
}

// source is an open, validated input recording.
type source struct {
	path    string
	file    *os.File
	header  demo.Header
	geo     demo.Geometry
	modTime time.Time
}

func (s *source) Close() error {
	return s.file.Close()
}

// open opens path and validates its header. The returned source is
// positioned at the first tic.
func (e *Editor) open(path string) (*source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open In.LMP %q: %w", path, err)
	}

	h, err := demo.ReadHeader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := h.Validate(e.variant); err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("unable to get file stat of %q: %w", path, err)
	}

	geo := demo.DeriveGeometry(h, e.variant, st.Size())
	e.logger.Debug("opened recording",
		"path", path,
		"legacy", h.Legacy,
		"tic_bytes", geo.TicBytes,
		"tics", geo.Tics,
		"missing", geo.Missing,
	)

	return &source{
		path:    path,
		file:    f,
		header:  h,
		geo:     geo,
		modTime: st.ModTime(),
	}, nil
}

// output is a destination being written.
type output struct {
	path   string
	file   *os.File
	header demo.Header
	stream *ticstream.Stream
}

// create checks space, creates dst and writes h to it. The returned
// stream reads from src and writes after the header.
func (e *Editor) create(src *source, dst string, need int64, h demo.Header) (*output, error) {
	if err := checkDistinct(src.path, dst); err != nil {
		return nil, err
	}
	if err := e.ensureSpace(dst, need); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot create Out.LMP %q: %w", dst, err)
	}

	b, err := h.MarshalBinary()
	if err != nil {
		f.Close()
		return nil, err
	}
	stream := ticstream.New(bufio.NewReader(src.file), f, src.geo)
	if err := stream.WriteHeader(b); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header of %q: %w", dst, err)
	}

	return &output{
		path:   dst,
		file:   f,
		header: h,
		stream: stream,
	}, nil
}

// commit terminates the output, closes it, copies the source's timestamp
// and fills the after-state of res.
func (e *Editor) commit(src *source, out *output, res *Result) error {
	if err := out.stream.AppendTerminator(); err != nil {
		out.file.Close()
		return err
	}
	if err := out.file.Close(); err != nil {
		return fmt.Errorf("close Out.LMP %q: %w", out.path, err)
	}
	if err := os.Chtimes(out.path, src.modTime, src.modTime); err != nil {
		return fmt.Errorf("unable to set time of destination file: %w", err)
	}

	st, err := os.Stat(out.path)
	if err != nil {
		return fmt.Errorf("unable to get file stat of %q: %w", out.path, err)
	}
	res.TicsAfter = demo.DeriveGeometry(out.header, e.variant, st.Size()).Tics
	res.Written = true

	e.logger.Info("wrote recording",
		"op", string(res.Operation),
		"out", out.path,
		"tics_before", res.TicsBefore,
		"tics_after", res.TicsAfter,
	)
	e.record(*res)
	return nil
}

// record journals res. A journal failure never fails the edit.
func (e *Editor) record(res Result) {
	if e.recorder == nil {
		return
	}
	id := "doom"
	if e.variant != nil {
		id = e.variant.ID()
	}
	if err := e.recorder.RecordEdit(res, id); err != nil {
		e.logger.Warn("cannot journal edit", "op", string(res.Operation), "err", err)
	}
}

// abort closes out after a failed body. The partial file is left behind.
func (e *Editor) abort(out *output, err error) error {
	out.file.Close()
	e.logger.Debug("transformation aborted", "out", out.path, "err", err)
	return err
}

func checkDistinct(src, dst string) error {
	a, errA := filepath.Abs(src)
	b, errB := filepath.Abs(dst)
	if errA == nil && errB == nil && a == b {
		return ErrSameFile
	}

	si, err := os.Stat(src)
	if err != nil {
		return nil
	}
	di, err := os.Stat(dst)
	if err != nil {
		return nil
	}
	if os.SameFile(si, di) {
		return ErrSameFile
	}
	return nil
}

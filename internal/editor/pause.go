package editor

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vovakirdan/lmpedit/internal/ticstream"
)

// PauseEventKind classifies what the pause scan saw at a tic.
type PauseEventKind int

const (
	// PauseOpened starts a paused run.
	PauseOpened PauseEventKind = iota
	// PauseClosed ends a run; the run's idle tics were dropped.
	PauseClosed
	// PauseSaved ends a run at a save; the run's tics were kept.
	PauseSaved
	// PauseAtEOF ends a run at the end of the recording; its tics were dropped.
	PauseAtEOF
	// PauseNested marks a tic that both pauses and unpauses inside a run.
	PauseNested
	// PauseBalanced marks such a tic outside a run.
	PauseBalanced
	// PauseResumed marks the unpause of a run that was kept by a save.
	PauseResumed
)

var pauseEventNames = [...]string{
	"pause", "unpause", "save", "end of file", "balanced pause", "balanced pause", "unpause",
}

func (k PauseEventKind) String() string {
	if int(k) < len(pauseEventNames) {
		return pauseEventNames[k]
	}
	return fmt.Sprintf("PauseEventKind(%d)", int(k))
}

// PauseEvent is one line of the pause scan's report.
type PauseEvent struct {
	Kind    PauseEventKind
	Tic     int64 // 1-based tic the event was seen at
	Removed int64 // tics dropped when the event closed a run
}

type scanState int

const (
	scanning scanState = iota
	inPausedRun
)

// bufferedTic is a tic held while a paused run is open.
type bufferedTic struct {
	data  []byte
	final bool // holds the last source byte
	keep  bool // nested pause pairs survive a dropped run
}

// pauseScan collapses paused runs of one recording.
type pauseScan struct {
	st    *ticstream.Stream
	width int

	tic    int64 // 1-based index of the current tic
	state  scanState
	paused bool // the game is paused at the current tic
	run    []bufferedTic

	removed int64
	runs    int
	events  []PauseEvent
}

// RemovePauses copies src to dst without the tics recorded while the game
// was paused. A run starts at a tic that pauses the game and ends at the
// tic that unpauses it; the starting tic and the idle tics in between are
// dropped and the unpausing tic is kept. A save inside a run keeps the
// whole run. A run still open at the end of the file is dropped.
//
// If no run was collapsed the destination is removed and Result.Written
// is false.
func (e *Editor) RemovePauses(src, dst string) (Result, error) {
	s, err := e.open(src)
	if err != nil {
		return Result{}, err
	}
	defer s.Close()

	out, err := e.create(s, dst, s.geo.FileSize, s.header)
	if err != nil {
		return Result{}, err
	}

	scan := &pauseScan{st: out.stream, width: s.geo.RecordWidth}
	if err := scan.scan(); err != nil {
		return Result{}, e.abort(out, err)
	}

	res := Result{
		Operation:   OpUnpause,
		Source:      src,
		Destination: dst,
		TicsBefore:  s.geo.Tics,
		Removed:     scan.removed,
		Runs:        scan.runs,
		Events:      scan.events,
	}

	if scan.runs == 0 {
		out.file.Close()
		if err := os.Remove(dst); err != nil {
			return res, fmt.Errorf("unable to remove Out.LMP %q: %w", dst, err)
		}
		res.TicsAfter = res.TicsBefore
		e.logger.Info("no pauses to remove", "in", src)
		return res, nil
	}

	if err := e.commit(s, out, &res); err != nil {
		return Result{}, err
	}
	return res, nil
}

func (p *pauseScan) scan() error {
	for {
		rec, err := p.st.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		p.tic++
		if err := p.step(rec, p.st.AtEnd()); err != nil {
			return err
		}
	}

	if p.state == inPausedRun {
		return p.dropRun(PauseAtEOF)
	}
	return nil
}

func (p *pauseScan) step(rec []byte, final bool) error {
	pauses := ticstream.PauseSignals(rec, p.width)
	odd := pauses%2 == 1

	if p.state == scanning {
		switch {
		case odd && !p.paused:
			p.state = inPausedRun
			p.paused = true
			p.run = append(p.run[:0], bufferedTic{data: clone(rec), final: final})
			p.event(PauseOpened, 0)
			return nil
		case odd:
			p.paused = false
			p.event(PauseResumed, 0)
		case pauses > 0:
			p.event(PauseBalanced, 0)
		}
		return p.st.Write(rec, final)
	}

	switch {
	case odd:
		if err := p.dropRun(PauseClosed); err != nil {
			return err
		}
		p.paused = false
		return p.st.Write(rec, final)

	case pauses > 0:
		p.run = append(p.run, bufferedTic{data: clone(rec), final: final, keep: true})
		p.event(PauseNested, 0)
		return nil

	case ticstream.HasSave(rec, p.width):
		p.event(PauseSaved, 0)
		if err := p.flush(true); err != nil {
			return err
		}
		p.state = scanning
		return p.st.Write(rec, final)

	default:
		p.run = append(p.run, bufferedTic{data: clone(rec), final: final})
		return nil
	}
}

// dropRun ends the open run, writing only its nested pause pairs.
func (p *pauseScan) dropRun(kind PauseEventKind) error {
	var removed int64
	for _, t := range p.run {
		if !t.keep {
			removed++
		}
	}
	p.removed += removed
	if removed > 0 {
		p.runs++
	}
	p.event(kind, removed)
	p.state = scanning
	return p.flush(false)
}

// flush writes the buffered tics of the open run, all of them or only the
// kept ones, and empties the buffer.
func (p *pauseScan) flush(all bool) error {
	for _, t := range p.run {
		if all || t.keep {
			if err := p.st.Write(t.data, t.final); err != nil {
				return err
			}
		}
	}
	p.run = p.run[:0]
	return nil
}

func (p *pauseScan) event(kind PauseEventKind, removed int64) {
	p.events = append(p.events, PauseEvent{Kind: kind, Tic: p.tic, Removed: removed})
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}

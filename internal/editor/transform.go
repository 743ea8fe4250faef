package editor

import (
	"github.com/vovakirdan/lmpedit/internal/demo"
)

// Convert rewrites a legacy recording with a modern header of version 1.x.
// A version of 0 selects 1.9. Tics are copied unchanged.
func (e *Editor) Convert(src, dst string, version int) (Result, error) {
	if version == 0 {
		version = demo.DefaultVersion
	}
	if version < demo.MinVersion || version > demo.MaxVersion {
		return Result{}, rangeErr("invalid target version 1.%d", version)
	}

	s, err := e.open(src)
	if err != nil {
		return Result{}, err
	}
	defer s.Close()

	if !s.header.Legacy {
		return Result{}, ErrAlreadyModern
	}
	if n := s.header.ActiveCount(); n > 1 {
		e.logger.Warn("legacy recording has several players, only the recorder stays active",
			"path", src, "players", n)
	}

	need := s.geo.FileSize + demo.ModernHeaderSize - demo.LegacyHeaderSize
	out, err := e.create(s, dst, need, s.header.Upgrade(version))
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Operation:   OpConvert,
		Source:      src,
		Destination: dst,
		Version:     version,
		TicsBefore:  s.geo.Tics,
	}
	if err := out.stream.CopyTics(s.geo.Records); err != nil {
		return Result{}, e.abort(out, err)
	}
	if err := e.commit(s, out, &res); err != nil {
		return Result{}, err
	}
	return res, nil
}

// Cut removes tics start through end, both 1-based and inclusive.
func (e *Editor) Cut(src, dst string, start, end int64) (Result, error) {
	s, err := e.open(src)
	if err != nil {
		return Result{}, err
	}
	defer s.Close()

	tics := s.geo.Tics
	switch {
	case start < 1:
		return Result{}, rangeErr("start tics must be greater than 0 - %d", start)
	case end < 1:
		return Result{}, rangeErr("end tics must be greater than 0 - %d", end)
	case float64(end) > tics:
		return Result{}, rangeErr("end tics cannot be greater than %.2f - %d", tics, end)
	case start > end:
		return Result{}, rangeErr("start tics cannot be greater than end tics %d - %d", end, start)
	}

	removed := end - start + 1
	need := s.geo.FileSize - removed*int64(s.geo.TicBytes)
	out, err := e.create(s, dst, need, s.header)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Operation:   OpCut,
		Source:      src,
		Destination: dst,
		Start:       start,
		End:         end,
		TicsBefore:  tics,
		Removed:     removed,
	}

	st := out.stream
	if err := st.CopyTics(start - 1); err != nil {
		return Result{}, e.abort(out, err)
	}
	if err := st.SkipTics(removed); err != nil {
		return Result{}, e.abort(out, err)
	}
	if err := st.CopyTics(s.geo.Records - end); err != nil {
		return Result{}, e.abort(out, err)
	}
	if err := e.commit(s, out, &res); err != nil {
		return Result{}, err
	}
	return res, nil
}

// Chop removes the last n tics. A trailing partial tic counts as one.
func (e *Editor) Chop(src, dst string, n int64) (Result, error) {
	s, err := e.open(src)
	if err != nil {
		return Result{}, err
	}
	defer s.Close()

	tics := s.geo.Tics
	switch {
	case n < 0:
		return Result{}, rangeErr("tics must not be negative - %d", n)
	case float64(n) > tics:
		return Result{}, rangeErr("tics cannot be greater than %.2f - %d", tics, n)
	}

	// A partial tic that survives is written with its missing bytes
	// counted as if present.
	need := s.geo.FileSize - n*int64(s.geo.TicBytes) + int64(s.geo.Missing)
	out, err := e.create(s, dst, need, s.header)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Operation:   OpChop,
		Source:      src,
		Destination: dst,
		Count:       n,
		TicsBefore:  tics,
		Removed:     n,
	}
	if err := out.stream.CopyTics(s.geo.Records - n); err != nil {
		return Result{}, e.abort(out, err)
	}
	if err := e.commit(s, out, &res); err != nil {
		return Result{}, err
	}
	return res, nil
}

// Wait appends n idle tics. A trailing partial tic is completed with
// zero bytes and counts as the first of them.
func (e *Editor) Wait(src, dst string, n int64) (Result, error) {
	switch {
	case n < 1:
		return Result{}, rangeErr("tics must be greater than 0 - %d", n)
	case n > MaxWaitTics:
		return Result{}, rangeErr("tics must be less than 2,147,483,647 - %d", n)
	}

	s, err := e.open(src)
	if err != nil {
		return Result{}, err
	}
	defer s.Close()

	tb := int64(s.geo.TicBytes)
	need := s.geo.FileSize + n*tb
	if s.geo.Missing > 0 {
		need -= tb - int64(s.geo.Missing)
	}
	out, err := e.create(s, dst, need, s.header)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Operation:   OpWait,
		Source:      src,
		Destination: dst,
		Count:       n,
		TicsBefore:  s.geo.Tics,
		Added:       n,
	}

	st := out.stream
	if err := st.CopyTics(s.geo.Records); err != nil {
		return Result{}, e.abort(out, err)
	}
	if err := st.WritePadding(n, s.geo.Missing); err != nil {
		return Result{}, e.abort(out, err)
	}
	if err := e.commit(s, out, &res); err != nil {
		return Result{}, err
	}
	return res, nil
}

// Package ticstream copies fixed-width tic records from a recording's data
// area to an output file.
//
// A Stream reads from the source position right after the header and
// writes to the destination position right after the (possibly reshaped)
// header. The source's terminator byte is never copied into the middle of
// the output: when a copy ends on it the writer backs up one byte so the
// next write or AppendTerminator replaces it.
package ticstream

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/vovakirdan/lmpedit/internal/demo"
)

// ErrShortWrite is returned when the destination accepted fewer bytes than
// a record holds.
var ErrShortWrite = errors.New("ticstream: short write")

// Stream moves tic records between a source and a destination.
// It is not safe for concurrent use.
type Stream struct {
	r   io.Reader
	w   *seekBuffer
	geo demo.Geometry

	buf  []byte // one tic, sized to geo.TicBytes
	zero []byte // lazily allocated padding record

	read     int64 // records handed out so far
	consumed int64 // source bytes consumed after the header
}

// New returns a Stream over r and w for a file with geometry g.
// r must be positioned at the first tic.
func New(r io.Reader, w io.WriteSeeker, g demo.Geometry) *Stream {
	return &Stream{
		r:   r,
		w:   &seekBuffer{Writer: bufio.NewWriter(w), ws: w},
		geo: g,
		buf: make([]byte, g.TicBytes),
	}
}

// AtEnd reports whether the source's final byte has been consumed.
func (s *Stream) AtEnd() bool {
	return s.consumed >= s.geo.DataSize()
}

// Next reads the next record. The final record may be shorter than
// TicBytes and, for a file ending on a partial tic, includes the
// terminator. The returned slice is only valid until the next call.
// Next returns io.EOF once Records records have been read.
func (s *Stream) Next() ([]byte, error) {
	if s.read >= s.geo.Records || len(s.buf) == 0 {
		return nil, io.EOF
	}

	n, err := io.ReadFull(s.r, s.buf)
	s.consumed += int64(n)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ticstream: read tic %d: %w", s.read+1, err)
	}
	if n == 0 {
		return nil, io.EOF
	}

	s.read++
	return s.buf[:n], nil
}

// Write writes one record. When final is set and the record ends with the
// terminator, the writer backs up over it.
func (s *Stream) Write(rec []byte, final bool) error {
	if err := s.emit(rec); err != nil {
		return err
	}
	if final && len(rec) > 0 && rec[len(rec)-1] == demo.Terminator {
		if _, err := s.w.Seek(-1, io.SeekCurrent); err != nil {
			return fmt.Errorf("ticstream: rewind terminator: %w", err)
		}
	}
	return nil
}

// CopyTics copies n records verbatim. It is a no-op for n <= 0 and stops
// early at the end of the source.
func (s *Stream) CopyTics(n int64) error {
	for ; n > 0; n-- {
		rec, err := s.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.Write(rec, s.AtEnd()); err != nil {
			return err
		}
	}
	return nil
}

// SkipTics advances the source by n records without writing them.
func (s *Stream) SkipTics(n int64) error {
	for ; n > 0; n-- {
		if _, err := s.Next(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
	return nil
}

// WritePadding writes n idle (zero) records. When the source ended on a
// partial tic that lacked missing bytes, the first write is only missing
// bytes long so that it completes that tic.
func (s *Stream) WritePadding(n int64, missing int) error {
	if s.zero == nil {
		s.zero = make([]byte, s.geo.TicBytes)
	}

	if missing > 0 && n > 0 {
		if missing > len(s.zero) {
			missing = len(s.zero)
		}
		if err := s.emit(s.zero[:missing]); err != nil {
			return err
		}
		n--
	}
	for ; n > 0; n-- {
		if err := s.emit(s.zero); err != nil {
			return err
		}
	}
	return nil
}

// WriteHeader writes the output header. It must come before any record.
func (s *Stream) WriteHeader(b []byte) error {
	return s.emit(b)
}

// AppendTerminator writes the terminator byte and flushes the output.
func (s *Stream) AppendTerminator() error {
	if err := s.emit([]byte{demo.Terminator}); err != nil {
		return err
	}
	return s.Flush()
}

// Flush writes any buffered records to the destination.
func (s *Stream) Flush() error {
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("%w: flush: %v", ErrShortWrite, err)
	}
	return nil
}

func (s *Stream) emit(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	n, err := s.w.Write(p)
	if n != len(p) {
		if err == nil {
			err = io.ErrShortWrite
		}
		return fmt.Errorf("%w: %d out of %d byte(s) copied: %v", ErrShortWrite, n, len(p), err)
	}
	if err != nil {
		return fmt.Errorf("ticstream: write: %w", err)
	}
	return nil
}

// seekBuffer is a bufio.Writer that flushes before seeking, so offsets
// are relative to the logical write position.
type seekBuffer struct {
	*bufio.Writer
	ws io.WriteSeeker
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	if err := b.Flush(); err != nil {
		return 0, err
	}
	return b.ws.Seek(offset, whence)
}

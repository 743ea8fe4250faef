package demo

import (
	"github.com/vovakirdan/lmpedit/internal/registry"
)

// Geometry describes how the tic stream of one file is laid out.
// It is derived from the header, the variant and the file size and is
// never stored.
type Geometry struct {
	HeaderSize    int
	RecordWidth   int // bytes per player per tic
	ActivePlayers int
	TicBytes      int // RecordWidth * ActivePlayers
	FileSize      int64

	// Tics is the number of tics in the file. It is fractional when the
	// file ends on a partial tic.
	Tics float64

	// Records is the number of reads needed to consume every tic,
	// counting a trailing partial tic as one.
	Records int64

	// Missing is the number of bytes the trailing partial tic lacks,
	// zero for a well-formed file.
	Missing int
}

// defaultRecordWidth is used when no variant is given.
const defaultRecordWidth = 4

// DeriveGeometry computes the geometry of a file of fileSize bytes.
// A nil variant uses Doom's record width.
func DeriveGeometry(h Header, v registry.Variant, fileSize int64) Geometry {
	g := Geometry{
		HeaderSize:    h.Size(),
		RecordWidth:   defaultRecordWidth,
		ActivePlayers: h.ActiveCount(),
		FileSize:      fileSize,
	}
	if v != nil {
		g.RecordWidth = v.RecordWidth()
	}
	g.TicBytes = g.RecordWidth * g.ActivePlayers
	if g.TicBytes == 0 {
		return g
	}

	// Everything between the header and the terminator.
	data := fileSize - int64(g.HeaderSize) - 1
	if data <= 0 {
		return g
	}

	tb := int64(g.TicBytes)
	g.Tics = float64(data) / float64(tb)
	g.Records = data / tb
	if rem := data % tb; rem != 0 {
		g.Records++
		g.Missing = g.TicBytes - int(rem)
	}
	return g
}

// WholeTics returns the number of complete tics.
func (g Geometry) WholeTics() int64 {
	if g.Missing > 0 {
		return g.Records - 1
	}
	return g.Records
}

// DataSize returns the number of bytes after the header, terminator
// included.
func (g Geometry) DataSize() int64 {
	n := g.FileSize - int64(g.HeaderSize)
	if n < 0 {
		return 0
	}
	return n
}

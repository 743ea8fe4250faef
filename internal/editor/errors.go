package editor

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyModern is returned when converting a file that already has
	// a modern header.
	ErrAlreadyModern = errors.New("editor: LMP is already the newer format")

	// ErrLegacyFormat is returned when an in-place edit needs a modern header.
	ErrLegacyFormat = errors.New("editor: old LMP format, use convert")

	// ErrRange is returned for caller-supplied values outside their bounds.
	ErrRange = errors.New("editor: value out of range")

	// ErrInsufficientSpace is returned when the destination volume cannot
	// hold the output.
	ErrInsufficientSpace = errors.New("editor: not enough disk space")

	// ErrSameFile is returned when source and destination are one file.
	ErrSameFile = errors.New("editor: In.LMP and Out.LMP must be different files")

	// ErrNoMatch is returned when a batch pattern matches nothing.
	ErrNoMatch = errors.New("editor: file not found")
)

func rangeErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrRange, fmt.Sprintf(format, args...))
}

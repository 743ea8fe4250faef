package demo

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedHeader is returned when a file ends before its header does.
	ErrTruncatedHeader = errors.New("demo: truncated header")

	// ErrInvalidField is matched by every *FieldError.
	ErrInvalidField = errors.New("demo: invalid header field")

	// ErrDurationOverflow is returned when a duration exceeds 99 hours.
	ErrDurationOverflow = errors.New("demo: duration exceeds 99 hours")
)

// FieldError reports the first header byte that failed validation.
type FieldError struct {
	Field  string // human-readable field name
	Offset int    // byte offset in the header
	Value  int    // offending value
	Reason string // optional detail, e.g. "not active"
}

func (e *FieldError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s, offset %d - \"%d\": %s", e.Field, e.Offset, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s, offset %d - \"%d\"", e.Field, e.Offset, e.Value)
}

// Is reports whether target is ErrInvalidField.
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidField
}

package demo

import (
	"fmt"
)

// TicRate is the engine's tic frequency in tics per second.
const TicRate = 35.003

// MaxDurationSeconds is the longest duration DurationString can render.
const MaxDurationSeconds = 99 * 60 * 60

// DurationString renders a tic count as HH:MM:SS. Partial seconds round up.
func DurationString(tics float64) (string, error) {
	if tics <= 0 {
		return "00:00:00", nil
	}

	exact := tics / TicRate
	sec := int64(exact)
	if float64(sec) != exact {
		sec++
	}
	if sec > MaxDurationSeconds {
		return "", fmt.Errorf("%w: %d seconds = %.2f hours", ErrDurationOverflow, sec, float64(sec)/3600)
	}

	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, sec%3600/60, sec%60), nil
}

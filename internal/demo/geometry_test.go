package demo

import (
	"errors"
	"testing"

	"github.com/vovakirdan/lmpedit/internal/games/doom"
	"github.com/vovakirdan/lmpedit/internal/games/heretic"
)

func TestDeriveGeometry(t *testing.T) {
	h, _ := Decode(modernBytes()) // three players

	tests := []struct {
		name     string
		size     int64
		tics     float64
		records  int64
		whole    int64
		missing  int
		ticBytes int
	}{
		{"exact", 13 + 140*12 + 1, 140, 140, 140, 0, 12},
		{"partial", 13 + 10*12 + 5 + 1, 10 + 5.0/12, 11, 10, 7, 12},
		{"empty", 13 + 1, 0, 0, 0, 0, 12},
		{"no terminator", 13, 0, 0, 0, 0, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := DeriveGeometry(h, doom.Variant{}, tc.size)
			if g.TicBytes != tc.ticBytes {
				t.Errorf("TicBytes = %d, expected %d", g.TicBytes, tc.ticBytes)
			}
			if g.Tics != tc.tics {
				t.Errorf("Tics = %v, expected %v", g.Tics, tc.tics)
			}
			if g.Records != tc.records {
				t.Errorf("Records = %d, expected %d", g.Records, tc.records)
			}
			if g.WholeTics() != tc.whole {
				t.Errorf("WholeTics() = %d, expected %d", g.WholeTics(), tc.whole)
			}
			if g.Missing != tc.missing {
				t.Errorf("Missing = %d, expected %d", g.Missing, tc.missing)
			}
		})
	}
}

func TestDeriveGeometryPure(t *testing.T) {
	h, _ := Decode(modernBytes())
	a := DeriveGeometry(h, doom.Variant{}, 1000)
	b := DeriveGeometry(h, doom.Variant{}, 1000)
	if a != b {
		t.Errorf("DeriveGeometry not deterministic: %+v vs %+v", a, b)
	}
}

func TestDeriveGeometryVariantWidth(t *testing.T) {
	h, _ := Decode([]byte{109, 2, 1, 1, 0, 0, 0, 0, 0, 1, 1, 0, 0})

	if g := DeriveGeometry(h, doom.Variant{}, 100); g.TicBytes != 8 {
		t.Errorf("doom TicBytes = %d, expected 8", g.TicBytes)
	}
	if g := DeriveGeometry(h, heretic.Variant{}, 100); g.TicBytes != 12 {
		t.Errorf("heretic TicBytes = %d, expected 12", g.TicBytes)
	}
}

func TestDurationString(t *testing.T) {
	tests := []struct {
		tics     float64
		expected string
	}{
		{0, "00:00:00"},
		{1, "00:00:01"},
		{35.003, "00:00:01"},
		{140, "00:00:04"},
		{2100, "00:01:00"},
		{126011, "01:00:01"},
		{12475030, "98:59:59"},
	}

	for _, tc := range tests {
		got, err := DurationString(tc.tics)
		if err != nil {
			t.Errorf("DurationString(%v) failed: %v", tc.tics, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("DurationString(%v) = %q, expected %q", tc.tics, got, tc.expected)
		}
	}
}

func TestDurationStringOverflow(t *testing.T) {
	for _, tics := range []float64{35.003*356400 + 100, 35.003 * 400000, 1e12} {
		if _, err := DurationString(tics); !errors.Is(err, ErrDurationOverflow) {
			t.Errorf("DurationString(%v) error = %v, expected ErrDurationOverflow", tics, err)
		}
	}
}

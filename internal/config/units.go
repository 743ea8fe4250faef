package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Units selects how tic arguments on the command line are read.
type Units string

const (
	UnitsTics    Units = "tics"
	UnitsSeconds Units = "seconds"
)

// TicsPerSecond is the whole-number game rate used to turn seconds into tics.
const TicsPerSecond = 35

// Range converts a start/end pair to tics. In seconds, start selects the
// first tic of its second and end the last tic of its second.
func (u Units) Range(start, end int64) (int64, int64) {
	if u != UnitsSeconds {
		return start, end
	}
	return start*TicsPerSecond - (TicsPerSecond - 1), end * TicsPerSecond
}

// Count converts a tic count.
func (u Units) Count(n int64) int64 {
	if u != UnitsSeconds {
		return n
	}
	return n * TicsPerSecond
}

// UnmarshalYAML accepts the short forms "tic" and "sec" as well.
func (u *Units) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "tics", "tic", "":
		*u = UnitsTics
	case "seconds", "second", "sec":
		*u = UnitsSeconds
	default:
		return fmt.Errorf("unknown units %q", s)
	}
	return nil
}

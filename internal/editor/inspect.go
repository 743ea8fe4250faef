package editor

import (
	"github.com/vovakirdan/lmpedit/internal/demo"
)

// Info is what Inspect learns about a recording.
type Info struct {
	Path     string
	Header   demo.Header
	Geometry demo.Geometry
	Duration string
}

// Inspect reads and validates the header of path and derives its geometry.
func (e *Editor) Inspect(path string) (Info, error) {
	s, err := e.open(path)
	if err != nil {
		return Info{}, err
	}
	defer s.Close()

	dur, err := demo.DurationString(s.geo.Tics)
	if err != nil {
		return Info{}, err
	}

	return Info{
		Path:     path,
		Header:   s.header,
		Geometry: s.geo,
		Duration: dur,
	}, nil
}

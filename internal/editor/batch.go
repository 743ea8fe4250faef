package editor

import (
	"fmt"
	"path/filepath"
	"sort"
)

// BatchFailure records one file a batch could not process.
type BatchFailure struct {
	Path string
	Err  error
}

// BatchResult summarizes a batch run.
type BatchResult struct {
	Processed int
	Skipped   int
	Failures  []BatchFailure
}

// Batch calls fn for every file matching pattern, one at a time and in
// name order. A failing file is recorded and the batch moves on.
// A pattern without glob characters matches the named file only.
func Batch(pattern string, fn func(path string) error) (BatchResult, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return BatchResult{}, fmt.Errorf("editor: bad pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return BatchResult{}, fmt.Errorf("%w - %q", ErrNoMatch, pattern)
	}
	sort.Strings(matches)

	var res BatchResult
	for _, path := range matches {
		if err := fn(path); err != nil {
			res.Skipped++
			res.Failures = append(res.Failures, BatchFailure{Path: path, Err: err})
			continue
		}
		res.Processed++
	}
	return res, nil
}

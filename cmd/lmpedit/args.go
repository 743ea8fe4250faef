package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lmpedit/internal/demo"
	"github.com/vovakirdan/lmpedit/internal/editor"
)

// DefaultExt is appended to file arguments that have no extension.
const DefaultExt = ".lmp"

// withExt adds DefaultExt to a file name without an extension.
func withExt(name string) string {
	if filepath.Ext(name) != "" {
		return name
	}
	return name + DefaultExt
}

// inOut resolves the source and destination arguments.
func inOut(in, out string) (string, string, error) {
	src, dst := withExt(in), withExt(out)
	if src == dst {
		return "", "", editor.ErrSameFile
	}
	return src, dst, nil
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return usageError{fmt.Errorf("%d more parameter(s) required for %s", n-len(args), cmd.Name())}
		}
		if len(args) > n {
			return usageError{fmt.Errorf("too many parameters for %s - %q", cmd.Name(), args[n])}
		}
		return nil
	}
}

// minArgs is cobra.MinimumNArgs reporting a usage error.
func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return usageError{fmt.Errorf("you must specify a LMP file for %s", cmd.Name())}
		}
		return nil
	}
}

// rangeArgs is cobra.RangeArgs reporting a usage error.
func rangeArgs(lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < lo || len(args) > hi {
			return usageError{fmt.Errorf("%s takes %d to %d parameters, got %d", cmd.Name(), lo, hi, len(args))}
		}
		return nil
	}
}

// parseTics reads an integer tic (or second) argument.
func parseTics(name, s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, usageError{fmt.Errorf("invalid %s - %q", name, s)}
	}
	return n, nil
}

// parseVersion reads an engine version written as "1.x" or "x".
func parseVersion(s string) (int, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "1.")
	n, err := strconv.Atoi(v)
	if err != nil || n < demo.MinVersion || n > demo.MaxVersion {
		return 0, usageError{fmt.Errorf("invalid LMP version - %q (want 1.%d - 1.%d)", s, demo.MinVersion, demo.MaxVersion)}
	}
	return n, nil
}

// parseViewer reads a viewpoint argument: a player number 1-4 or
// "next" to cycle to the next active player.
func parseViewer(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "next", "cycle":
		return editor.CycleViewer, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > demo.MaxPlayers {
		return 0, usageError{fmt.Errorf("invalid viewpoint - %q", s)}
	}
	return n, nil
}

// isHeaderError reports whether err comes from reading or validating a header.
func isHeaderError(err error) bool {
	return errors.Is(err, demo.ErrTruncatedHeader) ||
		errors.Is(err, demo.ErrInvalidField) ||
		errors.Is(err, editor.ErrAlreadyModern) ||
		errors.Is(err, editor.ErrLegacyFormat)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lmpedit/internal/editor"
	"github.com/vovakirdan/lmpedit/internal/platform/tui"
)

var infoCmd = &cobra.Command{
	Use:   "info <file(s)>...",
	Short: "Show the header and length of recordings",
	Long: `Display the header fields, tic count and duration of each recording.
Arguments may be glob patterns; a name without extension gets .lmp.

Examples:
  lmpedit info demo1
  lmpedit info "*.lmp"
  lmpedit --variant heretic info htic1.lmp`,
	Args: minArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	first := true
	var total editor.BatchResult

	for _, arg := range args {
		res, err := editor.Batch(withExt(arg), func(path string) error {
			info, err := app.editor.Inspect(path)
			if err != nil {
				return err
			}
			if !first {
				fmt.Fprintln(out)
			}
			first = false
			fmt.Fprintln(out, tui.RenderInfo(info, app.editor.Variant()))
			return nil
		})
		if err != nil {
			return err
		}
		total.Processed += res.Processed
		total.Skipped += res.Skipped
		total.Failures = append(total.Failures, res.Failures...)
	}

	for _, f := range total.Failures {
		app.logger.Error("not a valid LMP file", "path", f.Path, "err", f.Err)
	}
	if total.Processed == 0 && len(total.Failures) > 0 {
		return total.Failures[0].Err
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lmpedit/internal/editor"
	"github.com/vovakirdan/lmpedit/internal/platform/tui"
)

var (
	flagVersion string
	flagViewer  string
)

var retargetCmd = &cobra.Command{
	Use:   "retarget <file(s)>...",
	Short: "Change the version or viewpoint of recordings in place",
	Long: `Rewrite the version byte and/or the recording player of 1.4-1.9
recordings without copying them. The modification time is kept.
Arguments may be glob patterns; failing files are reported and skipped.

Viewpoint is a player number 1-4 (Green, Indigo, Brown, Red) or "next"
to switch to the next active player.

Examples:
  lmpedit retarget demo1 --ver 1.9
  lmpedit retarget "*.lmp" --viewer next
  lmpedit retarget coop.lmp --viewer 2`,
	Args: minArgs(1),
	RunE: runRetarget,
}

func init() {
	retargetCmd.Flags().StringVar(&flagVersion, "ver", "", "New LMP version (1.4 - 1.9)")
	retargetCmd.Flags().StringVar(&flagViewer, "viewer", "", `New viewpoint: 1-4 or "next"`)
}

func runRetarget(cmd *cobra.Command, args []string) error {
	var opts editor.RetargetOptions
	var err error

	if flagVersion == "" && flagViewer == "" {
		return usageError{fmt.Errorf("retarget needs --ver or --viewer")}
	}
	if flagVersion != "" {
		if opts.Version, err = parseVersion(flagVersion); err != nil {
			return err
		}
	}
	if flagViewer != "" {
		if opts.Viewer, err = parseViewer(flagViewer); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	var total editor.BatchResult
	for _, arg := range args {
		res, err := editor.Batch(withExt(arg), func(path string) error {
			r, err := app.editor.Retarget(path, opts)
			if err == nil || r.Changed {
				fmt.Fprintln(out, tui.RenderRetarget(r))
				fmt.Fprintln(out)
			}
			return err
		})
		if err != nil {
			return err
		}
		total.Processed += res.Processed
		total.Skipped += res.Skipped
		total.Failures = append(total.Failures, res.Failures...)
	}

	fmt.Fprintln(out, tui.RenderBatch(total))
	if total.Processed == 0 && len(total.Failures) > 0 {
		return total.Failures[0].Err
	}
	return nil
}

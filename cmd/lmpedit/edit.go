package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lmpedit/internal/editor"
	"github.com/vovakirdan/lmpedit/internal/platform/tui"
)

var flagShowEvents bool

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out> [version]",
	Short: "Upgrade a 1.0-1.2 recording to a 1.4-1.9 header",
	Long: `Write a copy of a legacy recording with a modern header.
Version is 1.4 - 1.9; without it convert.target_version from the
configuration is used (1.9 by default). Tics are copied unchanged.

Examples:
  lmpedit convert old.lmp new.lmp
  lmpedit convert old new 1.6`,
	Args: rangeArgs(2, 3),
	RunE: runConvert,
}

var cutCmd = &cobra.Command{
	Use:   "cut <start> <end> <in> <out>",
	Short: "Remove a range of tics",
	Long: `Remove tics start through end (1-based, inclusive).
35 game tics make one second; with --sec, start and end are seconds.

Examples:
  lmpedit cut 350 700 in.lmp out.lmp
  lmpedit --sec cut 10 20 in out`,
	Args: exactArgs(4),
	RunE: runCut,
}

var chopCmd = &cobra.Command{
	Use:   "chop <tics> <in> <out>",
	Short: "Remove tics at the end of a recording",
	Args:  exactArgs(3),
	RunE:  runChop,
}

var waitCmd = &cobra.Command{
	Use:   "wait <tics> <in> <out>",
	Short: "Append idle tics at the end of a recording",
	Args:  exactArgs(3),
	RunE:  runWait,
}

var rpCmd = &cobra.Command{
	Use:   "rp <in> <out>",
	Short: "Remove all pauses from a recording",
	Long: `Drop the tics recorded while the game was paused. A paused run
that contains a save is kept. If nothing was removed, no output is
written.`,
	Args: exactArgs(2),
	RunE: runRemovePauses,
}

func init() {
	rpCmd.Flags().BoolVar(&flagShowEvents, "events", false, "List every pause event")
}

func runConvert(cmd *cobra.Command, args []string) error {
	src, dst, err := inOut(args[0], args[1])
	if err != nil {
		return err
	}
	version := app.cfg.Convert.TargetVersion
	if len(args) == 3 {
		if version, err = parseVersion(args[2]); err != nil {
			return err
		}
	}

	res, err := app.editor.Convert(src, dst, version)
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}

func runCut(cmd *cobra.Command, args []string) error {
	start, err := parseTics("start", args[0])
	if err != nil {
		return err
	}
	end, err := parseTics("end", args[1])
	if err != nil {
		return err
	}
	src, dst, err := inOut(args[2], args[3])
	if err != nil {
		return err
	}

	start, end = app.units.Range(start, end)
	res, err := app.editor.Cut(src, dst, start, end)
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}

func runChop(cmd *cobra.Command, args []string) error {
	n, err := parseTics("tics", args[0])
	if err != nil {
		return err
	}
	src, dst, err := inOut(args[1], args[2])
	if err != nil {
		return err
	}

	res, err := app.editor.Chop(src, dst, app.units.Count(n))
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}

func runWait(cmd *cobra.Command, args []string) error {
	n, err := parseTics("tics", args[0])
	if err != nil {
		return err
	}
	src, dst, err := inOut(args[1], args[2])
	if err != nil {
		return err
	}

	res, err := app.editor.Wait(src, dst, app.units.Count(n))
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}

func runRemovePauses(cmd *cobra.Command, args []string) error {
	src, dst, err := inOut(args[0], args[1])
	if err != nil {
		return err
	}

	res, err := app.editor.RemovePauses(src, dst)
	if err != nil {
		return err
	}
	if flagShowEvents && len(res.Events) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderPauseEvents(res.Events))
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return printResult(cmd, res)
}

func printResult(cmd *cobra.Command, res editor.Result) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderResult(res))
	return err
}

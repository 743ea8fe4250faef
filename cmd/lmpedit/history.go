package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lmpedit/internal/platform/tui"
	"github.com/vovakirdan/lmpedit/internal/storage"
)

var (
	flagHistoryOp     string
	flagHistorySource string
	flagHistoryLimit  int
	flagBrowse       bool
	flagClear        bool
)

var errNoJournal = errors.New("journal is disabled or unavailable")

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the journal of completed edits",
	Long: `List the edits lmpedit has written, newest first.

With --browse, open an interactive browser grouped by operation
(needs a terminal).

Examples:
  lmpedit history
  lmpedit history --op cut --limit 50
  lmpedit history --source demo1
  lmpedit history --browse
  lmpedit history --clear --op rp`,
	Args: exactArgs(0),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryOp, "op", "", "Only show one operation (convert, cut, chop, wait, rp, retarget)")
	historyCmd.Flags().StringVar(&flagHistorySource, "source", "", "Only show edits that read this file")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 0, "Number of entries (default from config)")
	historyCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive journal browser")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete entries (all, or those of --op)")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if app.store == nil {
		return errNoJournal
	}

	if flagClear {
		if err := app.store.Clear(flagHistoryOp); err != nil {
			return err
		}
		app.logger.Info("journal cleared", "op", flagHistoryOp)
		return nil
	}

	if flagBrowse {
		fd := int(os.Stdout.Fd())
		if !term.IsTerminal(fd) {
			return usageError{fmt.Errorf("--browse needs a terminal")}
		}
		width, height := 80, 24 // Defaults
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}
		return tui.RunJournal(app.store, width, height)
	}

	limit := flagHistoryLimit
	if limit <= 0 {
		limit = app.cfg.Journal.HistoryLimit
	}

	entries, err := historyEntries(limit)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderHistory(entries))
	return err
}

// historyEntries selects the entries to list from the history flags.
func historyEntries(limit int) ([]storage.Entry, error) {
	if flagHistorySource == "" {
		if flagHistoryOp != "" {
			return app.store.ByOperation(flagHistoryOp, limit)
		}
		return app.store.Recent(limit)
	}

	all, err := app.store.BySource(withExt(flagHistorySource))
	if err != nil {
		return nil, err
	}
	entries := all[:0]
	for _, e := range all {
		if flagHistoryOp != "" && e.Operation != flagHistoryOp {
			continue
		}
		entries = append(entries, e)
		if len(entries) == limit {
			break
		}
	}
	return entries, nil
}

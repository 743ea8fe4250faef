package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lmpedit/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List supported game variants",
	Long:  `Shows the game variants whose recordings lmpedit understands.`,
	Args:  exactArgs(0),
	RunE:  runVariants,
}

func runVariants(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	list := registry.List()

	if len(list) == 0 {
		fmt.Fprintln(out, "No variants available.")
		return nil
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range list {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, v := range list {
		marker := ""
		if app.editor != nil && v.ID == app.editor.Variant().ID() {
			marker = " (selected)"
		}
		fmt.Fprintf(out, "  %-*s  %s%s\n", maxIDLen, v.ID, v.Title, marker)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'lmpedit --variant <id> info <file>' to read another game's recording.")
	return nil
}

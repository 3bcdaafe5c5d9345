package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappypac/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game variants",
	Long:  `Shows every registered game variant with a short description.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	if err := writeVariants(os.Stdout, registry.List()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeVariants prints the variant table followed by a usage hint.
func writeVariants(w io.Writer, games []registry.GameInfo) error {
	if len(games) == 0 {
		_, err := fmt.Fprintln(w, "No variants available.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tTITLE\tDESCRIPTION")
	for _, g := range games {
		desc := g.Description
		if desc == "" {
			desc = "-"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", g.ID, g.Title, desc)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write variants: %w", err)
	}

	_, err := fmt.Fprintf(w, "\nRun 'flappypac play <id>' to play a variant (default %s).\n", defaultVariant)
	return err
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappypac/internal/platform/tui"
	"github.com/vovakirdan/flappypac/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from an interactive menu",
	Long: `Start with a variant picker. After a game ends you return to the
menu. Scoreboards are kept until the menu is closed.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected variant
  Q/Esc        - Quit

Examples:
  flappypac menu
  flappypac menu --fps 30`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := runtimeConfig()

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	// One instance per variant so each scoreboard lives as long as the menu
	games := make(map[string]registry.Game)

	for {
		res, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = res.Config
		if res.Quit {
			return
		}

		game, ok := games[res.GameID]
		if !ok {
			game, err = registry.Create(res.GameID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
				return
			}
			games[res.GameID] = game
		}

		if err := tui.Run(game, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
	}
}

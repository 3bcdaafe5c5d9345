package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappypac/internal/core"
	"github.com/vovakirdan/flappypac/internal/platform/tui"
	"github.com/vovakirdan/flappypac/internal/registry"
	"github.com/vovakirdan/flappypac/internal/storage"
)

const defaultVariant = "flappypac"

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game variant",
	Long: `Start playing. The variant defaults to flappypac.

Variants:
  flappypac          - Name entry and an in-memory scoreboard
  flappypac_classic  - Straight into the first level, no scoreboard

Controls:
  Space      - Flap, or continue from a message screen
  Enter      - Confirm your name
  Backspace  - Delete the last character of your name
  Q          - Quit (outside name entry)
  Ctrl+C/Esc - Quit
  Ctrl+S     - Save a text screenshot

Examples:
  flappypac play
  flappypac play flappypac_classic
  flappypac play --seed 7 --log-file /tmp/flappypac.log --debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultVariant
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'flappypac list' to see available variants.")
		os.Exit(1)
	}

	cfg := runtimeConfig()

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, cfg, logger)
	if runErr == nil {
		printScoreboard(game)
	}

	// Close log before potential exit
	if err := closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: closing log file: %v\n", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the game config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// scoreKeeper is implemented by variants that keep a leaderboard.
type scoreKeeper interface {
	Leaderboard() *storage.Leaderboard
}

// printScoreboard prints the session leaderboard once the alt screen is gone.
func printScoreboard(game registry.Game) {
	sk, ok := game.(scoreKeeper)
	if !ok {
		return
	}
	board := sk.Leaderboard()
	if board == nil || board.Len() == 0 {
		return
	}
	fmt.Println(tui.RenderScoreboard(fmt.Sprintf("%s - Top %d", game.Title(), board.Cap()), board.Entries(), -1))
}

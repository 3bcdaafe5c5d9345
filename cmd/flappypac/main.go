// flappypac is Flappy Pac-Man for the terminal: fly Pac-Man through the
// gaps between scrolling pipes, eat orbs and make the scoreboard.
//
// Usage:
//
//	flappypac play [variant]   - Play (default: flappypac)
//	flappypac list             - List game variants
//	flappypac levels           - Print the level table
//	flappypac menu             - Pick a variant interactively
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible obstacle layouts
//	--log-file <path>   - Write logs to a file (default: discarded)
//	--debug             - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/flappypac/internal/games/flappypac"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappypac",
	Short: "Flappy Pac-Man - fly through the pipes in your terminal",
	Long: `Flappy Pac-Man is a side-scroller played in the terminal. Pac-Man
flies through the gaps between moving pipes and eats orbs on the way.
Clear every level to put your name on the scoreboard.

Available commands:
  play     - Play a game variant
  list     - Show all game variants
  levels   - Print the level table
  menu     - Interactive variant picker

Examples:
  flappypac play
  flappypac play flappypac_classic --seed 42
  flappypac levels --format yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(menuCmd)
}

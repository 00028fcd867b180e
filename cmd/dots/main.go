// dots is a terminal puzzle game: connect same-colored dots into trails,
// close a loop to wipe the whole board of that color, and rack up the
// highest score within the move budget.
//
// Usage:
//
//	dots play      - Play in the current terminal
//	dots scores    - Show the high-score table
//	dots serve     - Start an SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.dots/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-dots/internal/games/dots"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dots",
	Short: "Dots - connect-the-dots puzzle in your terminal",
	Long: `Dots is a terminal puzzle game played on a 10x10 grid of colored dots.

Click adjacent same-colored dots to draw a trail, then click the trail's
last dot again to clear it. Close the trail into a loop and every dot of
that color vanishes from the board. You have 30 moves; cleared dots score
one point each.

Available commands:
  play     - Play in the current terminal
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  dots play
  dots play --seed 42
  dots scores
  dots serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dots/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

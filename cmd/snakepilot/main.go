// snakepilot is a terminal snake game with a search-driven autopilot.
//
// Usage:
//
//	snakepilot list              - List available games
//	snakepilot play <game>       - Play a game
//	snakepilot menu              - Start menu to pick games interactively
//	snakepilot serve             - Start SSH server for remote play
//	snakepilot scores <game>     - Show high scores for a game
//	snakepilot bench             - Benchmark the search strategies headlessly
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.snakepilot/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/snakepilot/internal/games/snake"
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
	Use:   "snakepilot",
	Short: "Snake in your terminal, with a search-driven autopilot",
	Long: `snakepilot is a terminal snake game where an autopilot can plan the
path to the food using classic state-space search: breadth-first,
depth-first, Dijkstra, or A*.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  bench    - Benchmark the search strategies headlessly

Examples:
  snakepilot list
  snakepilot play snake
  snakepilot play snake_pilot --strategy astar
  snakepilot menu
  snakepilot serve --ssh :2222
  snakepilot bench --games 20`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snakepilot/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(benchCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snakepilot/internal/core"
	"github.com/vovakirdan/snakepilot/internal/games/snake"
	"github.com/vovakirdan/snakepilot/internal/platform/tui"
	"github.com/vovakirdan/snakepilot/internal/registry"
	"github.com/vovakirdan/snakepilot/internal/storage"
)

var (
	flagConfig   string
	flagStrategy string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  WASD/Arrows - Steer the snake (manual mode)
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

For snake_pilot, the strategy can be set with --strategy; without it an
interactive selector is shown.

Strategies:
  bfs       - Breadth-first search (fewest moves, ignores obstacle cost)
  dfs       - Depth-first search (fast, wildly suboptimal paths)
  dijkstra  - Uniform-cost search (cheapest path)
  astar     - A* with Manhattan heuristic (cheapest path, fewer expansions)

Examples:
  snakepilot play snake
  snakepilot play snake_pilot
  snakepilot play snake_pilot --strategy bfs
  snakepilot play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagStrategy, "strategy", "", "Pilot search strategy: bfs, dfs, dijkstra, astar")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snakepilot list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size early for the strategy selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	snake.SetConfigPath(flagConfig)
	snake.SetStrategy(flagStrategy)

	if gameID == "snake_pilot" && flagStrategy == "" {
		// Show strategy selector
		selection, updatedCfg, selErr := tui.RunPilotMenu(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		snake.SetStrategy(selection.Strategy.String())
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

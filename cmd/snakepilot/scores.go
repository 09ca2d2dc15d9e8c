package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakepilot/internal/registry"
	"github.com/vovakirdan/snakepilot/internal/storage"
)

var flagShowStrategies bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.

With --strategies, also shows aggregate search statistics per strategy
collected from pilot runs.

Examples:
  snakepilot scores snake
  snakepilot scores snake_pilot --strategies`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagShowStrategies, "strategies", false, "Show per-strategy search statistics")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snakepilot list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snakepilot play %s' to set the first high score!\n", gameID)
	} else {
		// Print header
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

		// Print scores
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}

		// Show high score
		fmt.Println()
		highScore, err := store.HighScore(gameID)
		if err == nil {
			fmt.Printf("Best: %d\n", highScore)
		}
	}

	if !flagShowStrategies {
		return
	}

	stats, err := store.AllStrategyStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving strategy stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Search strategies:")
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No search runs recorded yet.")
		return
	}

	fmt.Printf("  %-10s  %-6s  %-7s  %-13s  %s\n", "Strategy", "Runs", "Solved", "Avg Expanded", "Avg Plan")
	fmt.Printf("  %-10s  %-6s  %-7s  %-13s  %s\n", "--------", "----", "------", "------------", "--------")
	for _, s := range stats {
		fmt.Printf("  %-10s  %-6d  %-7d  %-13.1f  %.1f\n",
			s.Strategy, s.Runs, s.Solved, s.AvgExpanded, s.AvgPlanLen)
	}

	runs, err := store.RecentSearchRuns(10)
	if err != nil || len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent searches:")
	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-6s  %-5s  %-9s  %s\n", "Strategy", "Found", "Cost", "Plan", "Expanded", "Date")
	for _, r := range runs {
		fmt.Printf("  %-10s  %-6t  %-6d  %-5d  %-9d  %s\n",
			r.Strategy, r.Found, r.Cost, r.PlanLen, r.Expanded,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

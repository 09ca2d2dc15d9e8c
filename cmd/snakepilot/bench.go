package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakepilot/internal/core"
	"github.com/vovakirdan/snakepilot/internal/games/snake"
	"github.com/vovakirdan/snakepilot/internal/search"
	"github.com/vovakirdan/snakepilot/internal/storage"
)

var (
	flagBenchGames    int
	flagBenchTicks    int
	flagBenchStrategy string
	flagBenchNoSave   bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the search strategies headlessly",
	Long: `Run pilot games without a UI and report per-strategy statistics:
games played, total score, failed plans, and average expanded states
per search.

Results are also recorded in the scores database so they show up in the
scoreboard's strategy view (disable with --no-save).

Examples:
  snakepilot bench
  snakepilot bench --games 50
  snakepilot bench --strategy astar --games 100
  snakepilot bench --seed 42 --no-save`,
	Run: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchGames, "games", 10, "Games to run per strategy")
	benchCmd.Flags().IntVar(&flagBenchTicks, "ticks", 5000, "Tick cap per game")
	benchCmd.Flags().StringVar(&flagBenchStrategy, "strategy", "", "Benchmark a single strategy (default: all)")
	benchCmd.Flags().BoolVar(&flagBenchNoSave, "no-save", false, "Do not record runs in the database")
	benchCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

// benchResult aggregates the outcome of one strategy's batch.
type benchResult struct {
	strategy  search.Strategy
	games     int
	score     int
	plans     int
	failed    int
	expanded  int
	planMoves int
}

func runBench(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bench",
	})

	strategies := search.Strategies()
	if flagBenchStrategy != "" {
		s, err := search.ParseStrategy(flagBenchStrategy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		strategies = []search.Strategy{s}
	}

	var store *storage.Store
	if !flagBenchNoSave {
		var err error
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open database, results will not be saved", "error", err)
			store = nil
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	snake.SetConfigPath(flagConfig)

	results := make([]benchResult, 0, len(strategies))
	for _, s := range strategies {
		logger.Info("benchmarking", "strategy", s.String(), "games", flagBenchGames)
		res := benchStrategy(s, seed, store)
		results = append(results, res)
	}

	if store != nil {
		store.Close()
	}

	printBenchResults(results)
}

// benchStrategy runs the configured number of pilot games with one
// strategy and aggregates their planning records.
func benchStrategy(s search.Strategy, seed int64, store *storage.Store) benchResult {
	res := benchResult{strategy: s, games: flagBenchGames}
	snake.SetStrategy(s.String())

	for i := 0; i < flagBenchGames; i++ {
		g := snake.NewPilotGame()
		g.Reset(core.RuntimeConfig{
			ScreenW: 80,
			ScreenH: 24,
			Seed:    seed + int64(i),
		})

		var input core.InputFrame
		for t := 0; t < flagBenchTicks; t++ {
			state := g.Step(input)
			if state.State.GameOver {
				break
			}
		}

		res.score += g.Snapshot().Score
		for _, rec := range g.Pilot().Records() {
			res.plans++
			if rec.Found {
				res.expanded += rec.Expanded
				res.planMoves += rec.PlanLen
			} else {
				res.failed++
			}
			if store != nil {
				//nolint:errcheck
				store.SaveSearchRun(storage.SearchRun{
					GameID:   g.ID(),
					Strategy: rec.Strategy,
					Found:    rec.Found,
					Cost:     rec.Cost,
					PlanLen:  rec.PlanLen,
					Expanded: rec.Expanded,
				})
			}
		}
	}
	return res
}

func printBenchResults(results []benchResult) {
	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-6s  %-6s  %-7s  %-13s  %s\n",
		"Strategy", "Games", "Score", "Plans", "Failed", "Avg Expanded", "Avg Plan")
	fmt.Printf("  %-10s  %-6s  %-6s  %-6s  %-7s  %-13s  %s\n",
		"--------", "-----", "-----", "-----", "------", "------------", "--------")

	for _, r := range results {
		solved := r.plans - r.failed
		avgExpanded, avgPlan := 0.0, 0.0
		if solved > 0 {
			avgExpanded = float64(r.expanded) / float64(solved)
			avgPlan = float64(r.planMoves) / float64(solved)
		}
		fmt.Printf("  %-10s  %-6d  %-6d  %-6d  %-7d  %-13.1f  %.1f\n",
			r.strategy.String(), r.games, r.score, r.plans, r.failed, avgExpanded, avgPlan)
	}
	fmt.Println()
}

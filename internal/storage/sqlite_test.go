package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file was not created")
	}
	return store
}

func TestStoreSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("snake_pilot", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("snake", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("snake_pilot", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}

	high, err := store.HighScore("snake_pilot")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 200 {
		t.Errorf("HighScore() = %d, expected 200", high)
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore("snake", i); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("snake", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("expected 5 scores, got %d", len(scores))
	}
}

func TestHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("nonexistent")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty table = %d, expected 0", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("snake", 42); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if err := store.ClearScores("snake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("expected 0 scores after clear, got %d", len(scores))
	}
}

func TestSearchRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []SearchRun{
		{GameID: "snake_pilot", Strategy: "astar", Found: true, Cost: 12, PlanLen: 12, Expanded: 40},
		{GameID: "snake_pilot", Strategy: "astar", Found: true, Cost: 8, PlanLen: 8, Expanded: 20},
		{GameID: "snake_pilot", Strategy: "bfs", Found: false, Expanded: 300},
	}
	for _, r := range runs {
		if _, err := store.SaveSearchRun(r); err != nil {
			t.Fatalf("SaveSearchRun() failed: %v", err)
		}
	}

	recent, err := store.RecentSearchRuns(10)
	if err != nil {
		t.Fatalf("RecentSearchRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(recent))
	}

	// Most recent first
	if recent[0].Strategy != "bfs" || recent[0].Found {
		t.Errorf("recent[0] = %+v, expected the failed bfs run", recent[0])
	}
	if recent[1].Cost != 8 {
		t.Errorf("recent[1].Cost = %d, expected 8", recent[1].Cost)
	}
}

func TestStrategyStats(t *testing.T) {
	store := openTestStore(t)

	runs := []SearchRun{
		{GameID: "snake_pilot", Strategy: "astar", Found: true, Cost: 10, PlanLen: 10, Expanded: 30},
		{GameID: "snake_pilot", Strategy: "astar", Found: true, Cost: 6, PlanLen: 6, Expanded: 10},
		{GameID: "snake_pilot", Strategy: "dijkstra", Found: true, Cost: 10, PlanLen: 10, Expanded: 90},
		{GameID: "snake_pilot", Strategy: "dijkstra", Found: false, Expanded: 110},
	}
	for _, r := range runs {
		if _, err := store.SaveSearchRun(r); err != nil {
			t.Fatalf("SaveSearchRun() failed: %v", err)
		}
	}

	stats, err := store.AllStrategyStats()
	if err != nil {
		t.Fatalf("AllStrategyStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 strategies, got %d", len(stats))
	}

	// Ordered by strategy name: astar, dijkstra
	astar := stats[0]
	if astar.Strategy != "astar" || astar.Runs != 2 || astar.Solved != 2 {
		t.Errorf("astar stats = %+v", astar)
	}
	if astar.AvgExpanded != 20 {
		t.Errorf("astar AvgExpanded = %f, expected 20", astar.AvgExpanded)
	}

	dijkstra := stats[1]
	if dijkstra.Runs != 2 || dijkstra.Solved != 1 {
		t.Errorf("dijkstra stats = %+v", dijkstra)
	}
	if dijkstra.AvgExpanded != 100 {
		t.Errorf("dijkstra AvgExpanded = %f, expected 100", dijkstra.AvgExpanded)
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 20, 30} {
		if _, err := store.SaveScore("snake", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	stats, err := store.GetGameStats("snake")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, expected 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %f, expected 20", stats.AvgScore)
	}
}

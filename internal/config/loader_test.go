package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesEmbedded(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must agree; otherwise
	// behavior depends on which fallback path was taken.
	loaded, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	want := DefaultSnakeConfig()
	if loaded != want {
		t.Errorf("embedded default = %+v, hardcoded default = %+v", loaded, want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")

	content := []byte(`
grid:
  width: 12
  height: 8
snake:
  initial_length: 3
  move_every_ticks: 4
obstacles:
  count: 7
pilot:
  strategy: dijkstra
  max_expansions: 500
  show_visited: false
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	if cfg.Grid.Width != 12 || cfg.Grid.Height != 8 {
		t.Errorf("grid = %dx%d, expected 12x8", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Snake.InitialLength != 3 {
		t.Errorf("initial_length = %d, expected 3", cfg.Snake.InitialLength)
	}
	if cfg.Obstacles.Count != 7 {
		t.Errorf("obstacle count = %d, expected 7", cfg.Obstacles.Count)
	}
	if cfg.Pilot.Strategy != "dijkstra" {
		t.Errorf("strategy = %q, expected dijkstra", cfg.Pilot.Strategy)
	}
	if cfg.Pilot.MaxExpansions != 500 {
		t.Errorf("max_expansions = %d, expected 500", cfg.Pilot.MaxExpansions)
	}
	if cfg.Pilot.ShowVisited {
		t.Error("show_visited should be false")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := LoadSnake("/nonexistent/snake.yaml"); err == nil {
		t.Error("LoadSnake() with missing custom path should fail")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [not a map"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := LoadSnake(path); err == nil {
		t.Error("LoadSnake() with malformed YAML should fail")
	}
}

package snake

import "github.com/vovakirdan/snakepilot/internal/grid"

// Snapshot is a compact copy of observable game state, used by tests and
// benchmarks to compare runs without reaching into internals.
type Snapshot struct {
	Tick      uint64
	Score     int
	SnakeLen  int
	Head      grid.Cell
	Direction grid.Direction
	Food      grid.Cell
	Obstacles int
	GameOver  bool
	NoPath    bool
}

// Snapshot returns a copy of the observable game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		SnakeLen:  len(g.snake),
		Direction: g.direction,
		Food:      g.food,
		Obstacles: len(g.obstacles),
		GameOver:  g.gameOver,
		NoPath:    g.noPath,
	}
	if len(g.snake) > 0 {
		s.Head = g.snake[0]
	}
	return s
}

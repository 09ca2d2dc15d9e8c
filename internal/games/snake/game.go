// Package snake implements the snake game in two variants: a human-steered
// one and a pilot variant where a search strategy plans every move. The
// field is an open bounded grid scattered with obstacles; crossing an
// obstacle costs the snake one body segment and one point.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/snakepilot/internal/config"
	"github.com/vovakirdan/snakepilot/internal/core"
	"github.com/vovakirdan/snakepilot/internal/grid"
	"github.com/vovakirdan/snakepilot/internal/registry"
	"github.com/vovakirdan/snakepilot/internal/search"
)

// Mode represents the game mode.
type Mode string

const (
	ModeManual Mode = "manual"
	ModePilot  Mode = "pilot"
)

// Game implements the snake game.
type Game struct {
	mode Mode
	cfg  config.SnakeConfig
	rng  *rand.Rand
	tick uint64

	score          int
	moveEveryTicks int
	moveTicker     int

	// Snake state
	snake     []grid.Cell // Head at index 0
	direction grid.Direction
	nextDir   grid.Direction // Buffered direction for next move (manual)

	// Field state
	gridW, gridH int
	obstacles    map[grid.Cell]bool
	food         grid.Cell

	pilot *Pilot // nil in manual mode

	// Layout
	hudHeight  int
	mapOffsetX int
	mapOffsetY int
	screenW    int
	screenH    int

	// Game state flags
	gameOver bool
	noPath   bool // pilot could not find a plan
	paused   bool
	tooSmall bool
}

// Package-level overrides applied before Reset (set from CLI flags).
var (
	configPath       string
	strategyOverride string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetStrategy overrides the configured pilot strategy.
func SetStrategy(name string) {
	strategyOverride = name
}

// New creates a new human-steered snake game.
func New() *Game {
	return &Game{mode: ModeManual}
}

// NewPilotGame creates a new autopiloted snake game.
func NewPilotGame() *Game {
	return &Game{mode: ModePilot}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_pilot", func() registry.Game {
		return NewPilotGame()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModePilot {
		return "snake_pilot"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModePilot {
		return "Snake (Pilot)"
	}
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadSnake(configPath)
	if err != nil {
		loaded = config.DefaultSnakeConfig()
	}
	g.cfg = loaded

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.noPath = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	g.gridW = g.cfg.Grid.Width
	g.gridH = g.cfg.Grid.Height
	g.moveEveryTicks = core.Max(1, g.cfg.Snake.MoveEveryTicks)
	g.moveTicker = 0

	if g.mode == ModePilot {
		strategy := g.cfg.Pilot.Strategy
		if strategyOverride != "" {
			strategy = strategyOverride
		}
		s, err := search.ParseStrategy(strategy)
		if err != nil {
			s = search.AStar
		}
		g.pilot = NewPilot(s, g.cfg.Pilot.MaxExpansions)
	} else {
		g.pilot = nil
	}

	// The field plus a border must fit under the HUD.
	requiredW := g.gridW + 2
	requiredH := g.gridH + g.hudHeight + 2
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.mapOffsetX = (g.screenW - g.gridW) / 2
	g.mapOffsetY = g.hudHeight + 1

	g.initSnake()
	g.placeObstacles()
	g.spawnFood()
}

// initSnake places the snake horizontally near the field center, head at
// the front, facing right.
func (g *Game) initSnake() {
	length := core.Clamp(g.cfg.Snake.InitialLength, 1, g.gridW/2)
	startX := g.gridW/2 + length/2
	startY := g.gridH / 2

	g.snake = make([]grid.Cell, length)
	for i := range g.snake {
		g.snake[i] = grid.Cell{X: startX - i, Y: startY}
	}
	g.direction = grid.Right
	g.nextDir = grid.Right
}

// placeObstacles scatters obstacle cells across the field, avoiding the
// snake and keeping at least one free cell for food.
func (g *Game) placeObstacles() {
	g.obstacles = make(map[grid.Cell]bool)

	free := g.gridW*g.gridH - len(g.snake)
	count := core.Clamp(g.cfg.Obstacles.Count, 0, free-1)

	for len(g.obstacles) < count {
		c := grid.Cell{X: g.rng.Intn(g.gridW), Y: g.rng.Intn(g.gridH)}
		if g.obstacles[c] || g.isSnakeAt(c) {
			continue
		}
		g.obstacles[c] = true
	}
}

// spawnFood places food at a random cell that is neither snake nor
// obstacle.
func (g *Game) spawnFood() {
	var emptyCells []grid.Cell
	for y := 0; y < g.gridH; y++ {
		for x := 0; x < g.gridW; x++ {
			c := grid.Cell{X: x, Y: y}
			if !g.obstacles[c] && !g.isSnakeAt(c) {
				emptyCells = append(emptyCells, c)
			}
		}
	}

	if len(emptyCells) == 0 {
		// No space left; the snake has filled the field.
		g.food = grid.Cell{X: -1, Y: -1}
		g.gameOver = true
		return
	}

	g.food = emptyCells[g.rng.Intn(len(emptyCells))]
}

// isSnakeAt checks if the snake occupies the given cell.
func (g *Game) isSnakeAt(c grid.Cell) bool {
	for _, seg := range g.snake {
		if seg == c {
			return true
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.mode == ModeManual {
		g.processInput(input)
	}

	// Move snake on tick interval
	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		g.moveSnake()
	}

	return core.StepResult{State: g.State()}
}

// processInput handles direction changes in manual mode.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir

	switch {
	case input.Has(core.ActionUp):
		newDir = grid.Up
	case input.Has(core.ActionDown):
		newDir = grid.Down
	case input.Has(core.ActionLeft):
		newDir = grid.Left
	case input.Has(core.ActionRight):
		newDir = grid.Right
	}

	// Prevent instant reversal while longer than one segment
	if len(g.snake) <= 1 || newDir != g.direction.Reverse() {
		g.nextDir = newDir
	}
}

// moveSnake moves the snake one cell. In pilot mode the direction comes
// from the planner; in manual mode from the buffered input.
func (g *Game) moveSnake() {
	if len(g.snake) == 0 {
		return
	}

	if g.mode == ModePilot {
		d, ok := g.pilot.NextMove(g.worldSnapshot())
		if !ok {
			g.noPath = true
			g.gameOver = true
			return
		}
		g.direction = d
	} else {
		g.direction = g.nextDir
	}

	newHead := g.snake[0].Step(g.direction)

	// Check boundary collision
	if !newHead.InBounds(g.gridW, g.gridH) {
		g.gameOver = true
		return
	}

	ate := newHead == g.food

	// Check self collision. The tail cell is excluded unless the snake is
	// about to grow, because it vacates on the same move.
	checkLen := len(g.snake)
	if !ate && checkLen > 0 {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if g.snake[i] == newHead {
			g.gameOver = true
			return
		}
	}

	// Move snake: add new head, drop the tail unless growing
	g.snake = append([]grid.Cell{newHead}, g.snake...)
	if ate {
		g.score++
	} else if len(g.snake) > 1 {
		g.snake = g.snake[:len(g.snake)-1]
	}

	// Crossing an obstacle costs one segment and one point
	if g.obstacles[newHead] {
		g.score--
		g.snake = g.snake[:len(g.snake)-1]
		if len(g.snake) == 0 {
			g.gameOver = true
			return
		}
	}

	if ate {
		g.spawnFood()
		if g.pilot != nil {
			// The target moved; the remaining plan is stale.
			g.pilot.Invalidate()
		}
	}
}

// worldSnapshot builds the immutable world view handed to the planner.
// The body set is a fresh copy per call so search states never alias live
// game state.
func (g *Game) worldSnapshot() search.Snapshot {
	body := make(map[grid.Cell]bool, len(g.snake))
	for _, seg := range g.snake {
		body[seg] = true
	}
	return search.Snapshot{
		Width:   g.gridW,
		Height:  g.gridH,
		Body:    body,
		Hazards: g.obstacles,
		Head:    g.snake[0],
		Facing:  g.direction,
		Budget:  len(g.snake),
		Target:  g.food,
	}
}

// Pilot returns the autopilot, or nil in manual mode.
func (g *Game) Pilot() *Pilot {
	return g.pilot
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Field border
	dst.DrawBox(core.NewRect(g.mapOffsetX-1, g.mapOffsetY-1, g.gridW+2, g.gridH+2))

	// Visited cells from the pilot's last search
	if g.pilot != nil && g.cfg.Pilot.ShowVisited {
		for c := range g.pilot.Visited() {
			g.setCell(dst, c, '·', core.ColorBlue)
		}
	}

	// Obstacles
	for c := range g.obstacles {
		g.setCell(dst, c, 'x', core.ColorRed)
	}

	// Food
	if g.food.X >= 0 && g.food.Y >= 0 {
		g.setCell(dst, g.food, '*', core.ColorYellow)
	}

	// Snake
	for i, seg := range g.snake {
		if i == 0 {
			g.setCell(dst, seg, 'O', core.ColorBrightGreen)
		} else {
			g.setCell(dst, seg, 'o', core.ColorGreen)
		}
	}

	switch {
	case g.noPath:
		g.renderOverlay(dst, "No path to food", "Press R to restart")
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// setCell draws a colored rune at a field cell, applying the map offset.
func (g *Game) setCell(dst *core.Screen, c grid.Cell, r rune, col core.Color) {
	dst.SetColored(g.mapOffsetX+c.X, g.mapOffsetY+c.Y, r, col)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModePilot {
		hud = fmt.Sprintf(" Snake (Pilot) — Score: %d  Len: %d  Strategy: %s",
			g.score, len(g.snake), g.pilot.Strategy().Title())
	} else {
		hud = fmt.Sprintf(" Snake — Score: %d  Len: %d", g.score, len(g.snake))
	}

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

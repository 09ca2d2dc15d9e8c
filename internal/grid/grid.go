// Package grid provides the discrete 2D geometry shared by the snake game
// and the search engine: cells, the four movement directions, bounds tests
// and the Manhattan metric. It has no dependencies so both sides stay pure
// and testable.
package grid

// Cell is a discrete grid coordinate. Equality is structural, so cells can
// be used directly as map keys for occupancy sets.
type Cell struct {
	X, Y int
}

// Direction is one of the four movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions enumerates all directions in a fixed, stable order.
// Neighbor expansion iterates this slice, which makes tie-breaking in
// equal-priority searches deterministic.
var Directions = [4]Direction{Up, Down, Left, Right}

// deltas maps each direction to its unit vector.
var deltas = [4]Cell{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Delta returns the unit vector for the direction.
func (d Direction) Delta() Cell {
	return deltas[d]
}

// Reverse returns the opposite direction (Up<->Down, Left<->Right).
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Step returns the cell one step away in the given direction.
func (c Cell) Step(d Direction) Cell {
	dl := deltas[d]
	return Cell{X: c.X + dl.X, Y: c.Y + dl.Y}
}

// InBounds reports whether the cell lies inside a width x height grid,
// i.e. both coordinates are in [0, dimension).
func (c Cell) InBounds(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// Neighbors returns the four adjacent cells, one per direction, in the
// fixed enumeration order.
func (c Cell) Neighbors() [4]Cell {
	var out [4]Cell
	for i, d := range Directions {
		out[i] = c.Step(d)
	}
	return out
}

// Manhattan returns |ax-bx| + |ay-by|. For 4-connected unit-cost movement
// it never overestimates the true remaining distance, so it is an
// admissible and consistent heuristic.
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

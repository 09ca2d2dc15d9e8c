// Package search implements the path planner that drives the snake
// autopilot. It runs one of four interchangeable strategies (breadth-first,
// depth-first, uniform-cost and A*) over a state space whose nodes carry
// position, incoming direction and the snake's remaining length budget.
//
// The engine is stateless and synchronous: one Plan call runs to completion
// over an immutable world snapshot and returns either an ordered move
// sequence or ErrNoPath. It is never invoked concurrently with itself.
package search

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/snakepilot/internal/grid"
)

var (
	// ErrNoPath is returned when the frontier empties before the target is
	// reached. It is a normal outcome (for example when the target is
	// enclosed by the snake's own body), not a defect.
	ErrNoPath = errors.New("search: no path to target")

	// ErrInvalidSnapshot is returned when the snapshot is rejected before
	// the search begins.
	ErrInvalidSnapshot = errors.New("search: invalid snapshot")
)

// Snapshot is a read-only copy of the world at planning time. The engine
// never mutates it; occupancy sets are shared by reference for the duration
// of one Plan call only.
type Snapshot struct {
	Width, Height int

	// Body is the set of cells occupied by the snake itself. Impassable.
	Body map[grid.Cell]bool

	// Hazards are traversable cells that cost one unit of budget to enter
	// and carry a large step-cost penalty.
	Hazards map[grid.Cell]bool

	Head   grid.Cell
	Facing grid.Direction

	// Budget is the snake's current length: the number of hazard cells a
	// candidate path may still cross. A path that would drive it to zero
	// is pruned, not merely deprioritized.
	Budget int

	Target grid.Cell
}

// Validate rejects snapshots the search cannot meaningfully run on.
func (s *Snapshot) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: non-positive grid %dx%d", ErrInvalidSnapshot, s.Width, s.Height)
	}
	if !s.Target.InBounds(s.Width, s.Height) {
		return fmt.Errorf("%w: target %v out of bounds", ErrInvalidSnapshot, s.Target)
	}
	if s.Body[s.Target] {
		return fmt.Errorf("%w: target %v occupied by body", ErrInvalidSnapshot, s.Target)
	}
	return nil
}

// Penalty is the step cost of entering a hazard cell. It exceeds the cost
// of any hazard-free path on the grid, so cost-ordered strategies always
// prefer a clean detour over a hazard shortcut unless no detour exists.
func (s *Snapshot) Penalty() int {
	return s.Width*s.Height + s.Width + s.Height
}

package search

import "github.com/vovakirdan/snakepilot/internal/grid"

// node is one search state. Nodes live in an append-only arena and refer to
// their predecessor by arena index rather than by pointer, so ancestry
// chains stay valid no matter how many frontier entries share them.
type node struct {
	pos    grid.Cell
	dir    grid.Direction // direction taken to reach pos
	budget int            // remaining traversable length
	cost   int            // accumulated path cost
	parent int32          // arena index of predecessor, -1 for the start
}

// nodeKey identifies a search state for deduplication. Two states at the
// same cell reached from different directions are distinct, because the
// anti-reversal rule depends on the incoming direction.
type nodeKey struct {
	pos grid.Cell
	dir grid.Direction
}

func (n *node) key() nodeKey {
	return nodeKey{pos: n.pos, dir: n.dir}
}

// validMove reports whether stepping from cur to pos via d with the given
// remaining budget produces an expandable state: in bounds, not inside the
// body, budget not exhausted, and not an immediate reversal. Reversal
// becomes legal once the snake has collapsed to a single segment.
func (s *Snapshot) validMove(cur *node, pos grid.Cell, d grid.Direction, budget int) bool {
	if budget <= 0 {
		return false
	}
	if !pos.InBounds(s.Width, s.Height) {
		return false
	}
	if s.Body[pos] {
		return false
	}
	if cur.budget > 1 && d == cur.dir.Reverse() {
		return false
	}
	return true
}

// stepCost returns the cost of entering pos: 1 for a clear cell, Penalty
// for a hazard.
func (s *Snapshot) stepCost(pos grid.Cell) int {
	if s.Hazards[pos] {
		return s.Penalty()
	}
	return 1
}

// budgetAfter returns the remaining budget after entering pos. Crossing a
// hazard costs one unit of length.
func (s *Snapshot) budgetAfter(budget int, pos grid.Cell) int {
	if s.Hazards[pos] {
		return budget - 1
	}
	return budget
}

// reconstruct walks parent links from the terminal state back to the start
// and reverses the collected directions into chronological move order.
// Runs in time linear in path length and mutates nothing.
func reconstruct(arena []node, h int32) []grid.Direction {
	var path []grid.Direction
	for cur := h; arena[cur].parent >= 0; cur = arena[cur].parent {
		path = append(path, arena[cur].dir)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

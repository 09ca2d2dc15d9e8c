package search

import (
	"fmt"

	"github.com/vovakirdan/snakepilot/internal/grid"
)

// Strategy selects the frontier exploration order.
type Strategy int

const (
	// BreadthFirst pops in discovery order. Minimal hop count when all
	// steps cost the same; ignores hazard penalties entirely.
	BreadthFirst Strategy = iota

	// DepthFirst pops the most recent discovery. No optimality guarantee;
	// included for comparison.
	DepthFirst

	// UniformCost pops by accumulated cost (Dijkstra). Returns a
	// minimum-total-cost path when one exists.
	UniformCost

	// AStar pops by cost plus the Manhattan distance to the target. Same
	// optimality as UniformCost, usually with fewer expansions.
	AStar
)

// Strategies enumerates all strategies in display order.
func Strategies() []Strategy {
	return []Strategy{BreadthFirst, DepthFirst, UniformCost, AStar}
}

// String returns the canonical strategy name.
func (s Strategy) String() string {
	switch s {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	case UniformCost:
		return "dijkstra"
	case AStar:
		return "astar"
	default:
		return "unknown"
	}
}

// Title returns a human-readable name for menus and score displays.
func (s Strategy) Title() string {
	switch s {
	case BreadthFirst:
		return "Breadth-First"
	case DepthFirst:
		return "Depth-First"
	case UniformCost:
		return "Dijkstra"
	case AStar:
		return "A*"
	default:
		return "Unknown"
	}
}

// ParseStrategy resolves a strategy from its CLI/config spelling.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "bfs", "breadth-first":
		return BreadthFirst, nil
	case "dfs", "depth-first":
		return DepthFirst, nil
	case "dijkstra", "ucs", "uniform-cost":
		return UniformCost, nil
	case "astar", "a-star":
		return AStar, nil
	default:
		return BreadthFirst, fmt.Errorf("search: unknown strategy %q", name)
	}
}

// costAware reports whether the strategy orders the frontier by cost and
// therefore needs stale-entry discarding on pop.
func (s Strategy) costAware() bool {
	return s == UniformCost || s == AStar
}

// newFrontier builds the frontier matching the strategy.
func (s Strategy) newFrontier() frontier {
	switch s {
	case BreadthFirst:
		return &fifoFrontier{}
	case DepthFirst:
		return &lifoFrontier{}
	default:
		return &heapFrontier{}
	}
}

// Result is the outcome of a successful search.
type Result struct {
	// Plan is the move sequence from the head to the target, consumed one
	// direction per game tick. Empty when the head already sits on the
	// target.
	Plan []grid.Direction

	// Cost is the total accumulated step cost of the plan.
	Cost int

	// Expanded counts states taken off the frontier and expanded.
	Expanded int

	// Visited lists the distinct cells expanded during the search, in
	// expansion order. Used by the game to paint the explored region.
	Visited []grid.Cell
}

// Planner runs one search per Plan call. The zero value uses BreadthFirst
// with no expansion ceiling.
type Planner struct {
	Strategy Strategy

	// MaxExpansions caps the number of expanded states as a defensive
	// measure for pathological grids. Zero disables the ceiling; the
	// finite grid already bounds the search at width*height*4 states.
	MaxExpansions int
}

// Plan is a convenience wrapper for a single search with default limits.
func Plan(snap Snapshot, strategy Strategy) (*Result, error) {
	p := Planner{Strategy: strategy}
	return p.Plan(snap)
}

// Plan searches the snapshot for a move sequence from Head to Target.
// All four strategies share this control loop; only the frontier order and
// the priority formula differ. Returns ErrNoPath when the frontier empties
// (or the expansion ceiling trips) before the target is reached, and
// ErrInvalidSnapshot for snapshots rejected up front.
func (p Planner) Plan(snap Snapshot) (*Result, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	if snap.Budget <= 0 {
		// The start state itself is already exhausted.
		return nil, ErrNoPath
	}

	arena := make([]node, 1, 64)
	arena[0] = node{pos: snap.Head, dir: snap.Facing, budget: snap.Budget, parent: -1}

	fr := p.Strategy.newFrontier()
	fr.push(0, 0)

	// best tracks the lowest cost recorded per (position, direction) key.
	// Recording at push time keeps duplicates out of the frontier for the
	// blind strategies too.
	best := map[nodeKey]int{arena[0].key(): 0}
	visited := make(map[nodeKey]bool)
	seenCell := make(map[grid.Cell]bool)

	var visitedCells []grid.Cell
	expanded := 0

	for {
		h, ok := fr.pop()
		if !ok {
			return nil, ErrNoPath
		}
		cur := arena[h]
		k := cur.key()

		// A cheaper path to this key was pushed after this entry.
		if p.Strategy.costAware() && cur.cost > best[k] {
			continue
		}
		if visited[k] {
			continue
		}
		visited[k] = true
		if !seenCell[cur.pos] {
			seenCell[cur.pos] = true
			visitedCells = append(visitedCells, cur.pos)
		}

		if cur.pos == snap.Target {
			return &Result{
				Plan:     reconstruct(arena, h),
				Cost:     cur.cost,
				Expanded: expanded,
				Visited:  visitedCells,
			}, nil
		}

		expanded++
		if p.MaxExpansions > 0 && expanded > p.MaxExpansions {
			return nil, ErrNoPath
		}

		for _, d := range grid.Directions {
			pos := cur.pos.Step(d)
			budget := snap.budgetAfter(cur.budget, pos)
			if !snap.validMove(&cur, pos, d, budget) {
				continue
			}

			cost := cur.cost + snap.stepCost(pos)
			ck := nodeKey{pos: pos, dir: d}
			if prev, seen := best[ck]; seen && cost >= prev {
				continue
			}
			best[ck] = cost

			priority := 0
			switch p.Strategy {
			case UniformCost:
				priority = cost
			case AStar:
				priority = cost + grid.Manhattan(pos, snap.Target)
			}

			arena = append(arena, node{
				pos:    pos,
				dir:    d,
				budget: budget,
				cost:   cost,
				parent: h,
			})
			fr.push(int32(len(arena)-1), priority)
		}
	}
}

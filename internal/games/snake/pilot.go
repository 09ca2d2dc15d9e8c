package snake

import (
	"errors"

	"github.com/vovakirdan/snakepilot/internal/grid"
	"github.com/vovakirdan/snakepilot/internal/search"
)

// PlanRecord captures the outcome of one planning call, for persistence
// and benchmarking.
type PlanRecord struct {
	Strategy string
	Found    bool
	Cost     int
	PlanLen  int
	Expanded int
}

// Pilot drives the snake by planning paths to the food. It keeps the
// current plan and replans whenever the plan runs out or is invalidated.
type Pilot struct {
	planner search.Planner

	plan    []grid.Direction
	visited map[grid.Cell]bool

	records []PlanRecord
}

// NewPilot creates a pilot using the given strategy. maxExpansions of 0
// means unbounded search.
func NewPilot(strategy search.Strategy, maxExpansions int) *Pilot {
	return &Pilot{
		planner: search.Planner{Strategy: strategy, MaxExpansions: maxExpansions},
	}
}

// Strategy returns the search strategy the pilot plans with.
func (p *Pilot) Strategy() search.Strategy {
	return p.planner.Strategy
}

// Invalidate drops the current plan, forcing a replan on the next move.
func (p *Pilot) Invalidate() {
	p.plan = nil
}

// NextMove returns the next direction to steer. It replans from the given
// world view when no plan is in progress. ok is false when no path to the
// target exists.
func (p *Pilot) NextMove(snap search.Snapshot) (grid.Direction, bool) {
	if len(p.plan) == 0 {
		if !p.replan(snap) {
			return 0, false
		}
	}
	if len(p.plan) == 0 {
		// Head already on target; nothing to steer.
		return 0, false
	}

	d := p.plan[0]
	p.plan = p.plan[1:]
	return d, true
}

// replan runs the planner against the snapshot and installs the result.
func (p *Pilot) replan(snap search.Snapshot) bool {
	res, err := p.planner.Plan(snap)
	if err != nil {
		rec := PlanRecord{Strategy: p.planner.Strategy.String()}
		if errors.Is(err, search.ErrNoPath) {
			p.records = append(p.records, rec)
		}
		return false
	}

	p.plan = res.Plan
	p.visited = make(map[grid.Cell]bool, len(res.Visited))
	for _, c := range res.Visited {
		p.visited[c] = true
	}
	p.records = append(p.records, PlanRecord{
		Strategy: p.planner.Strategy.String(),
		Found:    true,
		Cost:     res.Cost,
		PlanLen:  len(res.Plan),
		Expanded: res.Expanded,
	})
	return true
}

// Visited returns the cells expanded by the most recent search, for
// rendering.
func (p *Pilot) Visited() map[grid.Cell]bool {
	return p.visited
}

// Records returns the outcomes of all planning calls so far, oldest
// first.
func (p *Pilot) Records() []PlanRecord {
	return p.records
}

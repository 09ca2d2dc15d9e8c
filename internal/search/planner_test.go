package search

import (
	"errors"
	"testing"

	"github.com/vovakirdan/snakepilot/internal/grid"
)

func cellSet(cells ...grid.Cell) map[grid.Cell]bool {
	set := make(map[grid.Cell]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return set
}

// walkPlan applies a plan from the start cell and returns every cell
// entered, in order.
func walkPlan(start grid.Cell, plan []grid.Direction) []grid.Cell {
	cells := make([]grid.Cell, 0, len(plan))
	cur := start
	for _, d := range plan {
		cur = cur.Step(d)
		cells = append(cells, cur)
	}
	return cells
}

func TestConcreteScenario(t *testing.T) {
	// 5x5, body {(2,2)}, no hazards, start (0,0) facing right, target (4,0).
	// The optimal path is unique: four steps right.
	snap := Snapshot{
		Width: 5, Height: 5,
		Body:   cellSet(grid.Cell{X: 2, Y: 2}, grid.Cell{X: 0, Y: 0}),
		Head:   grid.Cell{X: 0, Y: 0},
		Facing: grid.Right,
		Budget: 10,
		Target: grid.Cell{X: 4, Y: 0},
	}

	want := []grid.Direction{grid.Right, grid.Right, grid.Right, grid.Right}

	for _, s := range []Strategy{UniformCost, AStar} {
		t.Run(s.String(), func(t *testing.T) {
			res, err := Plan(snap, s)
			if err != nil {
				t.Fatalf("Plan() failed: %v", err)
			}
			if res.Cost != 4 {
				t.Errorf("Cost = %d, expected 4", res.Cost)
			}
			if len(res.Plan) != len(want) {
				t.Fatalf("Plan length = %d, expected %d", len(res.Plan), len(want))
			}
			for i, d := range res.Plan {
				if d != want[i] {
					t.Errorf("Plan[%d] = %v, expected %v", i, d, want[i])
				}
			}
		})
	}

	t.Run("bfs", func(t *testing.T) {
		res, err := Plan(snap, BreadthFirst)
		if err != nil {
			t.Fatalf("Plan() failed: %v", err)
		}
		if len(res.Plan) != 4 {
			t.Errorf("Plan length = %d, expected 4", len(res.Plan))
		}
	})
}

func TestHazardDetour(t *testing.T) {
	// A wall of hazards across row 0. The detour through row 1 costs 6,
	// far below a single hazard penalty, so the cost-aware strategies must
	// route around.
	snap := Snapshot{
		Width: 5, Height: 5,
		Body: cellSet(grid.Cell{X: 2, Y: 2}, grid.Cell{X: 0, Y: 0}),
		Hazards: cellSet(
			grid.Cell{X: 1, Y: 0},
			grid.Cell{X: 2, Y: 0},
			grid.Cell{X: 3, Y: 0},
		),
		Head:   grid.Cell{X: 0, Y: 0},
		Facing: grid.Right,
		Budget: 10,
		Target: grid.Cell{X: 4, Y: 0},
	}

	for _, s := range []Strategy{UniformCost, AStar} {
		t.Run(s.String(), func(t *testing.T) {
			res, err := Plan(snap, s)
			if err != nil {
				t.Fatalf("Plan() failed: %v", err)
			}
			if res.Cost != 6 {
				t.Errorf("Cost = %d, expected 6 (clean detour)", res.Cost)
			}
			for _, c := range walkPlan(snap.Head, res.Plan) {
				if snap.Hazards[c] {
					t.Errorf("plan crosses hazard at %v", c)
				}
			}
		})
	}
}

func TestHeuristicEquivalence(t *testing.T) {
	// For any fixed snapshot the heuristic strategy must match the
	// uniform-cost strategy in result cost (expansion counts may differ).
	snapshots := []struct {
		name string
		snap Snapshot
	}{
		{
			name: "open grid",
			snap: Snapshot{
				Width: 8, Height: 8,
				Body:   cellSet(grid.Cell{X: 0, Y: 0}),
				Head:   grid.Cell{X: 0, Y: 0},
				Facing: grid.Down,
				Budget: 5,
				Target: grid.Cell{X: 7, Y: 6},
			},
		},
		{
			name: "body wall with gap",
			snap: Snapshot{
				Width: 8, Height: 8,
				Body: cellSet(
					grid.Cell{X: 0, Y: 0},
					grid.Cell{X: 4, Y: 0}, grid.Cell{X: 4, Y: 1}, grid.Cell{X: 4, Y: 2},
					grid.Cell{X: 4, Y: 3}, grid.Cell{X: 4, Y: 4}, grid.Cell{X: 4, Y: 5},
					grid.Cell{X: 4, Y: 6},
				),
				Head:   grid.Cell{X: 0, Y: 0},
				Facing: grid.Right,
				Budget: 8,
				Target: grid.Cell{X: 7, Y: 0},
			},
		},
		{
			name: "scattered hazards",
			snap: Snapshot{
				Width: 10, Height: 10,
				Body: cellSet(grid.Cell{X: 5, Y: 5}),
				Hazards: cellSet(
					grid.Cell{X: 2, Y: 1}, grid.Cell{X: 3, Y: 4},
					grid.Cell{X: 6, Y: 2}, grid.Cell{X: 7, Y: 7},
				),
				Head:   grid.Cell{X: 5, Y: 5},
				Facing: grid.Up,
				Budget: 6,
				Target: grid.Cell{X: 1, Y: 8},
			},
		},
	}

	for _, tc := range snapshots {
		t.Run(tc.name, func(t *testing.T) {
			ucs, err := Plan(tc.snap, UniformCost)
			if err != nil {
				t.Fatalf("uniform-cost Plan() failed: %v", err)
			}
			astar, err := Plan(tc.snap, AStar)
			if err != nil {
				t.Fatalf("A* Plan() failed: %v", err)
			}
			if ucs.Cost != astar.Cost {
				t.Errorf("cost mismatch: dijkstra %d vs astar %d", ucs.Cost, astar.Cost)
			}
		})
	}
}

func TestHopCountOptimalityNoHazards(t *testing.T) {
	// With unit costs everywhere, breadth-first hop count equals the
	// uniform-cost and A* total costs.
	snap := Snapshot{
		Width: 7, Height: 7,
		Body: cellSet(
			grid.Cell{X: 3, Y: 3},
			grid.Cell{X: 3, Y: 1}, grid.Cell{X: 3, Y: 2},
			grid.Cell{X: 3, Y: 4}, grid.Cell{X: 3, Y: 5},
		),
		Head:   grid.Cell{X: 0, Y: 3},
		Facing: grid.Right,
		Budget: 6,
		Target: grid.Cell{X: 6, Y: 3},
	}
	// Head not in the body set here; the engine does not require it.

	bfs, err := Plan(snap, BreadthFirst)
	if err != nil {
		t.Fatalf("bfs Plan() failed: %v", err)
	}
	ucs, err := Plan(snap, UniformCost)
	if err != nil {
		t.Fatalf("dijkstra Plan() failed: %v", err)
	}
	astar, err := Plan(snap, AStar)
	if err != nil {
		t.Fatalf("astar Plan() failed: %v", err)
	}

	if len(bfs.Plan) != ucs.Cost {
		t.Errorf("bfs hop count %d != dijkstra cost %d", len(bfs.Plan), ucs.Cost)
	}
	if ucs.Cost != astar.Cost {
		t.Errorf("dijkstra cost %d != astar cost %d", ucs.Cost, astar.Cost)
	}
}

func TestReconstructionWalk(t *testing.T) {
	snap := Snapshot{
		Width: 9, Height: 9,
		Body: cellSet(
			grid.Cell{X: 0, Y: 0},
			grid.Cell{X: 2, Y: 0}, grid.Cell{X: 2, Y: 1}, grid.Cell{X: 2, Y: 2},
			grid.Cell{X: 5, Y: 8}, grid.Cell{X: 5, Y: 7}, grid.Cell{X: 5, Y: 6},
		),
		Head:   grid.Cell{X: 0, Y: 0},
		Facing: grid.Down,
		Budget: 7,
		Target: grid.Cell{X: 8, Y: 8},
	}

	for _, s := range Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			res, err := Plan(snap, s)
			if err != nil {
				t.Fatalf("Plan() failed: %v", err)
			}

			cells := walkPlan(snap.Head, res.Plan)
			if len(cells) == 0 {
				t.Fatal("empty plan for reachable target")
			}
			for _, c := range cells {
				if !c.InBounds(snap.Width, snap.Height) {
					t.Errorf("plan leaves the grid at %v", c)
				}
				if snap.Body[c] {
					t.Errorf("plan enters body cell %v", c)
				}
			}
			if final := cells[len(cells)-1]; final != snap.Target {
				t.Errorf("plan ends at %v, expected target %v", final, snap.Target)
			}
		})
	}
}

func TestAntiReversalInvariant(t *testing.T) {
	// Budget stays above 1 throughout (no hazards), so no two consecutive
	// plan directions may be exact opposites.
	snap := Snapshot{
		Width: 9, Height: 9,
		Body: cellSet(
			grid.Cell{X: 0, Y: 4},
			grid.Cell{X: 4, Y: 3}, grid.Cell{X: 4, Y: 4}, grid.Cell{X: 4, Y: 5},
			grid.Cell{X: 3, Y: 3}, grid.Cell{X: 5, Y: 3},
		),
		Head:   grid.Cell{X: 0, Y: 4},
		Facing: grid.Right,
		Budget: 7,
		Target: grid.Cell{X: 8, Y: 4},
	}

	for _, s := range Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			res, err := Plan(snap, s)
			if err != nil {
				t.Fatalf("Plan() failed: %v", err)
			}
			for i := 1; i < len(res.Plan); i++ {
				if res.Plan[i] == res.Plan[i-1].Reverse() {
					t.Errorf("plan reverses at step %d: %v then %v", i, res.Plan[i-1], res.Plan[i])
				}
			}
			// The first move may not reverse the facing direction either.
			if len(res.Plan) > 0 && res.Plan[0] == snap.Facing.Reverse() {
				t.Errorf("first move %v reverses facing %v", res.Plan[0], snap.Facing)
			}
		})
	}
}

func TestReversalLegalAtBudgetOne(t *testing.T) {
	snap := Snapshot{Width: 5, Height: 5}
	cur := node{pos: grid.Cell{X: 2, Y: 2}, dir: grid.Right, budget: 1}

	back := cur.pos.Step(grid.Left)
	if !snap.validMove(&cur, back, grid.Left, cur.budget) {
		t.Error("reversal should be legal when the snake has collapsed to one segment")
	}

	cur.budget = 2
	if snap.validMove(&cur, back, grid.Left, cur.budget) {
		t.Error("reversal should be illegal while the snake is longer than one segment")
	}
}

func TestEnclosedTarget(t *testing.T) {
	// A closed ring of body cells around the target; every strategy must
	// report no path in finite time.
	target := grid.Cell{X: 4, Y: 4}
	ring := cellSet(
		grid.Cell{X: 3, Y: 3}, grid.Cell{X: 4, Y: 3}, grid.Cell{X: 5, Y: 3},
		grid.Cell{X: 3, Y: 4}, grid.Cell{X: 5, Y: 4},
		grid.Cell{X: 3, Y: 5}, grid.Cell{X: 4, Y: 5}, grid.Cell{X: 5, Y: 5},
	)

	snap := Snapshot{
		Width: 9, Height: 9,
		Body:   ring,
		Head:   grid.Cell{X: 0, Y: 0},
		Facing: grid.Right,
		Budget: 5,
		Target: target,
	}

	for _, s := range Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			_, err := Plan(snap, s)
			if !errors.Is(err, ErrNoPath) {
				t.Errorf("Plan() error = %v, expected ErrNoPath", err)
			}
		})
	}
}

func TestBudgetPruning(t *testing.T) {
	// A 5x1 corridor with two hazards in the middle. Budget 3 survives the
	// crossing with one unit left; budget 2 would hit zero on the second
	// hazard and must be pruned into a no-path result.
	base := Snapshot{
		Width: 5, Height: 1,
		Body: cellSet(grid.Cell{X: 0, Y: 0}),
		Hazards: cellSet(
			grid.Cell{X: 1, Y: 0},
			grid.Cell{X: 2, Y: 0},
		),
		Head:   grid.Cell{X: 0, Y: 0},
		Facing: grid.Right,
		Target: grid.Cell{X: 4, Y: 0},
	}

	for _, s := range Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			snap := base
			snap.Budget = 3
			res, err := Plan(snap, s)
			if err != nil {
				t.Fatalf("Plan() with budget 3 failed: %v", err)
			}
			if len(res.Plan) != 4 {
				t.Errorf("Plan length = %d, expected 4", len(res.Plan))
			}

			snap.Budget = 2
			if _, err := Plan(snap, s); !errors.Is(err, ErrNoPath) {
				t.Errorf("Plan() with budget 2 error = %v, expected ErrNoPath", err)
			}
		})
	}
}

func TestHazardCostAccounting(t *testing.T) {
	// In the corridor the only path crosses two hazards, so the optimal
	// cost is two penalties plus two unit steps.
	snap := Snapshot{
		Width: 5, Height: 1,
		Body: cellSet(grid.Cell{X: 0, Y: 0}),
		Hazards: cellSet(
			grid.Cell{X: 1, Y: 0},
			grid.Cell{X: 2, Y: 0},
		),
		Head:   grid.Cell{X: 0, Y: 0},
		Facing: grid.Right,
		Budget: 3,
		Target: grid.Cell{X: 4, Y: 0},
	}

	res, err := Plan(snap, UniformCost)
	if err != nil {
		t.Fatalf("Plan() failed: %v", err)
	}
	want := 2*snap.Penalty() + 2
	if res.Cost != want {
		t.Errorf("Cost = %d, expected %d", res.Cost, want)
	}
}

func TestInvalidSnapshot(t *testing.T) {
	valid := Snapshot{
		Width: 5, Height: 5,
		Body:   cellSet(grid.Cell{X: 0, Y: 0}),
		Head:   grid.Cell{X: 0, Y: 0},
		Facing: grid.Right,
		Budget: 3,
		Target: grid.Cell{X: 4, Y: 4},
	}

	tests := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"zero width", func(s *Snapshot) { s.Width = 0 }},
		{"negative height", func(s *Snapshot) { s.Height = -1 }},
		{"target in body", func(s *Snapshot) { s.Target = grid.Cell{X: 0, Y: 0} }},
		{"target out of bounds", func(s *Snapshot) { s.Target = grid.Cell{X: 5, Y: 5} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := valid
			tc.mutate(&snap)
			if _, err := Plan(snap, AStar); !errors.Is(err, ErrInvalidSnapshot) {
				t.Errorf("Plan() error = %v, expected ErrInvalidSnapshot", err)
			}
		})
	}

	t.Run("valid snapshot passes", func(t *testing.T) {
		if err := valid.Validate(); err != nil {
			t.Errorf("Validate() = %v, expected nil", err)
		}
	})
}

func TestExhaustedStartBudget(t *testing.T) {
	snap := Snapshot{
		Width: 5, Height: 5,
		Head:   grid.Cell{X: 0, Y: 0},
		Facing: grid.Right,
		Budget: 0,
		Target: grid.Cell{X: 4, Y: 4},
	}

	if _, err := Plan(snap, BreadthFirst); !errors.Is(err, ErrNoPath) {
		t.Errorf("Plan() error = %v, expected ErrNoPath", err)
	}
}

func TestHeadOnTarget(t *testing.T) {
	snap := Snapshot{
		Width: 5, Height: 5,
		Head:   grid.Cell{X: 2, Y: 2},
		Facing: grid.Up,
		Budget: 1,
		Target: grid.Cell{X: 2, Y: 2},
	}

	res, err := Plan(snap, AStar)
	if err != nil {
		t.Fatalf("Plan() failed: %v", err)
	}
	if len(res.Plan) != 0 {
		t.Errorf("Plan length = %d, expected 0", len(res.Plan))
	}
	if res.Cost != 0 {
		t.Errorf("Cost = %d, expected 0", res.Cost)
	}
}

func TestExpansionCeiling(t *testing.T) {
	snap := Snapshot{
		Width: 20, Height: 20,
		Body:   cellSet(grid.Cell{X: 0, Y: 0}),
		Head:   grid.Cell{X: 0, Y: 0},
		Facing: grid.Right,
		Budget: 4,
		Target: grid.Cell{X: 19, Y: 19},
	}

	p := Planner{Strategy: BreadthFirst, MaxExpansions: 3}
	if _, err := p.Plan(snap); !errors.Is(err, ErrNoPath) {
		t.Errorf("Plan() error = %v, expected ErrNoPath at ceiling", err)
	}

	// Without the ceiling the same search succeeds.
	p.MaxExpansions = 0
	if _, err := p.Plan(snap); err != nil {
		t.Errorf("Plan() without ceiling failed: %v", err)
	}
}

func TestVisitedObservability(t *testing.T) {
	snap := Snapshot{
		Width: 6, Height: 6,
		Body:   cellSet(grid.Cell{X: 0, Y: 0}),
		Head:   grid.Cell{X: 0, Y: 0},
		Facing: grid.Right,
		Budget: 4,
		Target: grid.Cell{X: 5, Y: 5},
	}

	res, err := Plan(snap, BreadthFirst)
	if err != nil {
		t.Fatalf("Plan() failed: %v", err)
	}

	if len(res.Visited) == 0 {
		t.Fatal("Visited should not be empty")
	}
	if res.Visited[0] != snap.Head {
		t.Errorf("Visited[0] = %v, expected start %v", res.Visited[0], snap.Head)
	}

	seen := make(map[grid.Cell]bool)
	for _, c := range res.Visited {
		if seen[c] {
			t.Errorf("Visited contains duplicate cell %v", c)
		}
		seen[c] = true
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"bfs", BreadthFirst, false},
		{"breadth-first", BreadthFirst, false},
		{"dfs", DepthFirst, false},
		{"depth-first", DepthFirst, false},
		{"dijkstra", UniformCost, false},
		{"ucs", UniformCost, false},
		{"uniform-cost", UniformCost, false},
		{"astar", AStar, false},
		{"a-star", AStar, false},
		{"greedy", BreadthFirst, true},
		{"", BreadthFirst, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseStrategy(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseStrategy(%q) expected error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStrategy(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseStrategy(%q) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestStrategyRoundTrip(t *testing.T) {
	for _, s := range Strategies() {
		got, err := ParseStrategy(s.String())
		if err != nil {
			t.Errorf("ParseStrategy(%q) failed: %v", s.String(), err)
			continue
		}
		if got != s {
			t.Errorf("round trip %v -> %q -> %v", s, s.String(), got)
		}
	}
}

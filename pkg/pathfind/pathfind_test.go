package pathfind

import (
	"testing"

	"github.com/dshills/mapgen/pkg/grid"
)

func dirs4(grid.Vec2) []grid.Vec2 { return grid.Directions4() }

func zeroHeuristic(grid.Vec2) float64 { return 0 }

func openCost(grid.Vec2) float64 { return 1 }

func TestAStarStraightLine(t *testing.T) {
	bounds := grid.NewRect(grid.Vec2{X: 0, Y: 0}, 5, 5)
	ctx := NewContext(bounds)
	from := grid.Vec2{X: 0, Y: 0}
	to := grid.Vec2{X: 4, Y: 0}

	a := NewAStar(ctx, bounds, openCost, zeroHeuristic, dirs4, from, to)
	if !a.Found() {
		t.Fatal("expected path to be found")
	}
	path := a.Path()
	if len(path) != 5 {
		t.Fatalf("expected 5-cell path, got %d: %v", len(path), path)
	}
	if path[0] != from || path[len(path)-1] != to {
		t.Fatalf("path endpoints wrong: %v", path)
	}
}

func TestAStarUnreachable(t *testing.T) {
	bounds := grid.NewRect(grid.Vec2{X: 0, Y: 0}, 3, 3)
	ctx := NewContext(bounds)
	from := grid.Vec2{X: 0, Y: 0}
	to := grid.Vec2{X: 2, Y: 2}

	blocked := func(v grid.Vec2) float64 {
		if v.X == 1 {
			return Infinity
		}
		return 1
	}

	a := NewAStar(ctx, bounds, blocked, zeroHeuristic, dirs4, from, to)
	if a.Found() {
		t.Fatal("expected no path through a fully blocked column")
	}
}

func TestAStarNextMoveWalksToTarget(t *testing.T) {
	bounds := grid.NewRect(grid.Vec2{X: 0, Y: 0}, 5, 1)
	ctx := NewContext(bounds)
	from := grid.Vec2{X: 0, Y: 0}
	to := grid.Vec2{X: 4, Y: 0}

	a := NewAStar(ctx, bounds, openCost, zeroHeuristic, dirs4, from, to)
	if !a.Found() {
		t.Fatal("expected path to be found")
	}

	pos := from
	steps := 0
	for pos != to {
		if !a.IsReachable(pos) {
			t.Fatalf("cursor %v not reachable", pos)
		}
		pos = a.NextMove(pos)
		steps++
		if steps > 10 {
			t.Fatal("NextMove did not converge to target")
		}
	}
}

func TestAStarClearsBetweenRuns(t *testing.T) {
	bounds := grid.NewRect(grid.Vec2{X: 0, Y: 0}, 5, 5)
	ctx := NewContext(bounds)

	first := NewAStar(ctx, bounds, openCost, zeroHeuristic, dirs4, grid.Vec2{X: 0, Y: 0}, grid.Vec2{X: 4, Y: 4})
	if !first.Found() {
		t.Fatal("first search should find a path")
	}

	second := NewAStar(ctx, bounds, openCost, zeroHeuristic, dirs4, grid.Vec2{X: 1, Y: 1}, grid.Vec2{X: 3, Y: 1})
	if !second.Found() {
		t.Fatal("second search should find a path despite reusing context")
	}
	path := second.Path()
	if path[0] != (grid.Vec2{X: 1, Y: 1}) {
		t.Fatalf("second search path contaminated by first run's state: %v", path)
	}
}

func TestDijkstraDistanceMap(t *testing.T) {
	bounds := grid.NewRect(grid.Vec2{X: 0, Y: 0}, 5, 5)
	ctx := NewContext(bounds)
	source := grid.Vec2{X: 2, Y: 2}

	d := NewDijkstra(ctx, bounds, openCost, dirs4, []grid.Vec2{source}, 2)
	if d.Distance(source) != 0 {
		t.Errorf("source distance should be 0, got %v", d.Distance(source))
	}
	if !d.Reachable(grid.Vec2{X: 2, Y: 0}) {
		t.Error("cell 2 steps away should be reachable within maxDist=2")
	}
	if d.Reachable(grid.Vec2{X: 0, Y: 0}) {
		t.Error("cell 4 steps away should not be reachable within maxDist=2")
	}
}

func TestBFSReachability(t *testing.T) {
	bounds := grid.NewRect(grid.Vec2{X: 0, Y: 0}, 4, 4)
	ctx := NewContext(bounds)
	source := grid.Vec2{X: 0, Y: 0}

	passable := func(v grid.Vec2) bool { return v.X != 2 }

	b := NewBFS(ctx, bounds, passable, dirs4, source)
	if !b.Reachable(grid.Vec2{X: 1, Y: 0}) {
		t.Error("cell before the wall should be reachable")
	}
	if b.Reachable(grid.Vec2{X: 3, Y: 0}) {
		t.Error("cell beyond the impassable column should be unreachable")
	}
	if b.Steps(grid.Vec2{X: 1, Y: 1}) != 2 {
		t.Errorf("expected 2 steps, got %d", b.Steps(grid.Vec2{X: 1, Y: 1}))
	}
}

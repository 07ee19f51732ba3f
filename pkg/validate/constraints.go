package validate

import (
	"fmt"

	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/pathfind"
	"github.com/dshills/mapgen/pkg/token"
)

// cardinalDirs is the default Directions function: the four orthogonal
// neighbors, matching the generator's own default movement model.
func cardinalDirs(grid.Vec2) []grid.Vec2 {
	return []grid.Vec2{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}
}

// CheckConnectivity is a hard constraint: every passable cell (per the
// passable predicate) must be reachable from at least one of sources.
// It fails when no source lies on a passable cell, which includes a map
// with no passable cells at all.
func CheckConnectivity(m *token.Map, passable func(token.Token) bool, sources []grid.Vec2) ConstraintResult {
	bounds := m.Bounds()
	isPassable := func(v grid.Vec2) bool {
		for _, tok := range m.Tokens(v) {
			if passable(tok) {
				return true
			}
		}
		return false
	}

	var passableSources []grid.Vec2
	for _, s := range sources {
		if bounds.Contains(s) && isPassable(s) {
			passableSources = append(passableSources, s)
		}
	}
	if len(passableSources) == 0 {
		return newHardResult("Connectivity", false, "no passable source cell to search from")
	}

	ctx := pathfind.NewContext(bounds)
	reached := map[grid.Vec2]bool{}
	for _, s := range passableSources {
		bfs := pathfind.NewBFS(ctx, bounds, isPassable, cardinalDirs, s)
		bounds.ForEach(func(v grid.Vec2) {
			if bfs.Reachable(v) {
				reached[v] = true
			}
		})
	}

	unreached := 0
	total := 0
	bounds.ForEach(func(v grid.Vec2) {
		if !isPassable(v) {
			return
		}
		total++
		if !reached[v] {
			unreached++
		}
	})

	if unreached == 0 {
		return newHardResult("Connectivity", true, fmt.Sprintf("all %d passable cells reachable from the source set", total))
	}
	return newHardResult("Connectivity", false,
		fmt.Sprintf("%d of %d passable cells are unreachable from the source set", unreached, total))
}

// CheckSourcesLinked is a hard constraint: every declared source cell
// must itself be reachable from every other declared source cell,
// catching the case where CheckConnectivity passes for the bulk of the
// map but two disjoint "start" regions were painted.
func CheckSourcesLinked(m *token.Map, passable func(token.Token) bool, sources []grid.Vec2) ConstraintResult {
	if len(sources) < 2 {
		return newHardResult("SourcesLinked", true, "fewer than two sources declared")
	}
	bounds := m.Bounds()
	isPassable := func(v grid.Vec2) bool {
		for _, tok := range m.Tokens(v) {
			if passable(tok) {
				return true
			}
		}
		return false
	}
	ctx := pathfind.NewContext(bounds)
	bfs := pathfind.NewBFS(ctx, bounds, isPassable, cardinalDirs, sources[0])
	for _, s := range sources[1:] {
		if !bfs.Reachable(s) {
			return newHardResult("SourcesLinked", false, "declared source cells are not mutually reachable")
		}
	}
	return newHardResult("SourcesLinked", true, "all declared source cells are mutually reachable")
}

// CheckCoverage is a soft constraint scoring how much of the map carries
// at least one token: a map left mostly blank usually signals a broken
// generator program rather than a deliberate design.
func CheckCoverage(m *token.Map) ConstraintResult {
	bounds := m.Bounds()
	if bounds.Empty() {
		return newSoftResult("Coverage", 0, "map has no cells")
	}
	painted := 0
	total := 0
	bounds.ForEach(func(v grid.Vec2) {
		total++
		if len(m.Tokens(v)) > 0 {
			painted++
		}
	})
	score := float64(painted) / float64(total)
	return newSoftResult("Coverage", score, fmt.Sprintf("%d of %d cells carry at least one token", painted, total))
}

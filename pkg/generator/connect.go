package generator

import (
	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/pathfind"
	"github.com/dshills/mapgen/pkg/predicate"
	"github.com/dshills/mapgen/pkg/rng"
	"github.com/dshills/mapgen/pkg/token"
)

// DefaultConnectAttempts bounds how many random point pairs Connect
// samples and tries to link, matching the source engine's fixed budget.
const DefaultConnectAttempts = 30

// ConnectElem is one entry in a Connect node's routing table: a cell for
// which Predicate holds costs Cost to enter (nil Cost makes the cell
// impassable), and is painted by Generator when a path walks through it.
type ConnectElem struct {
	// Cost is the entry cost for a cell matching Predicate. A nil Cost
	// marks a matching cell impassable unless another element with a
	// non-nil Cost also matches it.
	Cost      *float64
	Predicate predicate.Node
	Generator Node
}

// Connect repeatedly samples two distinct cells satisfying ToConnect and
// links them with a shortest path through the canvas, painting every
// interior cell of the path (both endpoints are left untouched) using
// whichever ConnectElem's predicate matches that cell, preferring the
// cheapest matching element. Cells matched by no element cost 1 to enter
// and are not painted.
type Connect struct {
	ToConnect predicate.Node
	Elems     []ConnectElem
	// Attempts overrides DefaultConnectAttempts; zero means
	// DefaultConnectAttempts.
	Attempts int
}

func (g Connect) elemAt(c token.Canvas, r *rng.RNG, v grid.Vec2) *ConnectElem {
	var best *ConnectElem
	for i := range g.Elems {
		elem := &g.Elems[i]
		if !elem.Predicate.Eval(c.Map, v, r) {
			continue
		}
		if best == nil || best.Cost == nil || (elem.Cost != nil && *best.Cost > *elem.Cost) {
			best = elem
		}
	}
	return best
}

func (g Connect) entryCost(c token.Canvas, r *rng.RNG, v grid.Vec2) float64 {
	elem := g.elemAt(c, r, v)
	if elem == nil {
		return 1
	}
	if elem.Cost == nil {
		return pathfind.Infinity
	}
	return *elem.Cost
}

func (g Connect) link(c token.Canvas, r *rng.RNG, pctx *pathfind.Context, p1, p2 grid.Vec2) bool {
	entryCost := func(v grid.Vec2) float64 { return g.entryCost(c, r, v) }
	heuristic := func(v grid.Vec2) float64 { return float64(v.Dist4(p2)) }
	a := pathfind.NewAStar(pctx, c.Area, entryCost, heuristic, func(grid.Vec2) []grid.Vec2 { return grid.Directions4() }, p2, p1)
	if !a.Found() {
		pctx.Log().Debug().Interface("p1", p1).Interface("p2", p2).Msg("connect: sample pair has no path")
		return true
	}
	path := a.Path()
	for i := 1; i < len(path)-1; i++ {
		v := path[i]
		if elem := g.elemAt(c, r, v); elem != nil {
			cell := grid.RectFromPoints(v, v.Add(grid.Vec2{X: 1, Y: 1}))
			if !elem.Generator.Eval(c.With(cell), r, pctx) {
				return false
			}
		}
	}
	return true
}

// Eval implements Node.
func (g Connect) Eval(c token.Canvas, r *rng.RNG, pctx *pathfind.Context) bool {
	pctx.Metrics.NodeEvaluated("connect")
	var points []grid.Vec2
	for _, v := range c.Area.Cells() {
		if g.ToConnect.Eval(c.Map, v, r) {
			points = append(points, v)
		}
	}
	if len(points) < 2 {
		return true
	}

	attempts := g.Attempts
	if attempts == 0 {
		attempts = DefaultConnectAttempts
	}
	for i := 0; i < attempts; i++ {
		p1 := rng.Choose(r, points)
		p2 := rng.Choose(r, points)
		if p1 != p2 && !g.link(c, r, pctx, p1, p2) {
			return false
		}
	}
	return true
}

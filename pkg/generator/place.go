package generator

import (
	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/pathfind"
	"github.com/dshills/mapgen/pkg/predicate"
	"github.com/dshills/mapgen/pkg/rng"
	"github.com/dshills/mapgen/pkg/token"
)

// DefaultMaxTries bounds how many random positions Place samples, per
// element, before giving up and failing the whole node.
const DefaultMaxTries = 100000

// PlacementPosition pins a placement element to a fixed spot in the
// canvas instead of sampling a random one.
type PlacementPosition int

const (
	// PlacementRandom samples a uniformly random top-left corner for the
	// element's footprint, subject to its predicate and occupancy.
	PlacementRandom PlacementPosition = iota
	// PlacementMiddle centers the element's footprint on the canvas and
	// tries exactly once.
	PlacementMiddle
)

// PlaceElem is one entry in a Place node: an element of the given Size
// is placed Count times, using Generator to paint each placed footprint.
type PlaceElem struct {
	Size      grid.Vec2
	Generator Node
	Count     int
	Predicate predicate.Node
	Position  PlacementPosition
	// MaxTries overrides DefaultMaxTries for random placement attempts;
	// zero means DefaultMaxTries.
	MaxTries int
}

// Place packs non-overlapping rectangular footprints into the canvas,
// one element specification at a time, in declaration order. Earlier
// elements occupy cells that later elements' footprints must avoid, but
// occupancy never crosses a top-level Eval call: a fresh occupancy grid
// is built per Place node.
type Place struct {
	Elems []PlaceElem
}

// Eval implements Node.
func (g Place) Eval(c token.Canvas, r *rng.RNG, pctx *pathfind.Context) bool {
	pctx.Metrics.NodeEvaluated("place")
	a := c.Area
	occupied := make([]bool, a.Width()*a.Height())
	index := func(v grid.Vec2) int {
		return (v.X - a.Px) + (v.Y-a.Py)*a.Width()
	}

	check := func(rect grid.Rect, pred predicate.Node) bool {
		for _, v := range rect.Cells() {
			if !pred.Eval(c.Map, v, r) || occupied[index(v)] {
				return false
			}
		}
		for _, v := range rect.Cells() {
			occupied[index(v)] = true
		}
		return true
	}

	for _, elem := range g.Elems {
		maxTries := elem.MaxTries
		if maxTries == 0 {
			maxTries = DefaultMaxTries
		}
		numTries := maxTries
		if elem.Position == PlacementMiddle {
			numTries = 1
		}

		attempt := func() (bool, int) {
			for iter := 0; iter < numTries; iter++ {
				var pos grid.Vec2
				if elem.Position == PlacementMiddle {
					pos = a.Middle().Sub(elem.Size.Div(2))
				} else {
					bound := grid.RectFromPoints(a.TopLeft(), a.BottomRight().Sub(elem.Size))
					if bound.Empty() {
						continue
					}
					pos = bound.Random(r.Int)
				}
				genArea := grid.RectFromPoints(pos, pos.Add(elem.Size))
				if genArea.Empty() || !a.ContainsRect(genArea) {
					continue
				}
				if !check(genArea, elem.Predicate) {
					continue
				}
				return elem.Generator.Eval(c.With(genArea), r, pctx), iter + 1
			}
			return false, numTries
		}

		for j := 0; j < elem.Count; j++ {
			ok, tries := attempt()
			if !ok {
				pctx.Metrics.PlaceFailure()
				pctx.Log().Debug().Int("tries", numTries).Int("count_placed", j).Int("count_wanted", elem.Count).
					Msg("place: retries exhausted")
				return false
			}
			pctx.Metrics.PlaceAttempt(tries)
		}
	}
	return true
}

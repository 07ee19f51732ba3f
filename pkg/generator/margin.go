package generator

import (
	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/pathfind"
	"github.com/dshills/mapgen/pkg/rng"
	"github.com/dshills/mapgen/pkg/token"
)

// MarginSide names which edge of the canvas a Margin node strips off.
type MarginSide int

const (
	MarginTop MarginSide = iota
	MarginBottom
	MarginLeft
	MarginRight
)

// Margin splits the canvas into a Width-deep strip along one Side,
// running Border over the strip first and Inside over the remainder. A
// top or bottom strip spans the full width of the canvas and a left or
// right strip spans its full height; a Margin node knows nothing of any
// other, so two Margin nodes on adjacent sides of the same canvas both
// paint the corner cells where their strips meet.
type Margin struct {
	Side    MarginSide
	Width   int
	Border  Node
	Inside  Node
}

// Eval implements Node.
func (g Margin) Eval(c token.Canvas, r *rng.RNG, pctx *pathfind.Context) bool {
	pctx.Metrics.NodeEvaluated("margin")
	var border, inside grid.Rect
	a := c.Area
	switch g.Side {
	case MarginTop:
		border = grid.RectFromPoints(a.TopLeft(), grid.Vec2{X: a.Kx, Y: a.Py + g.Width})
		inside = grid.RectFromPoints(grid.Vec2{X: a.Px, Y: a.Py + g.Width}, a.BottomRight())
	case MarginBottom:
		border = grid.RectFromPoints(grid.Vec2{X: a.Px, Y: a.Ky - g.Width}, a.BottomRight())
		inside = grid.RectFromPoints(a.TopLeft(), grid.Vec2{X: a.Kx, Y: a.Ky - g.Width})
	case MarginLeft:
		border = grid.RectFromPoints(a.TopLeft(), grid.Vec2{X: a.Px + g.Width, Y: a.Ky})
		inside = grid.RectFromPoints(grid.Vec2{X: a.Px + g.Width, Y: a.Py}, a.BottomRight())
	case MarginRight:
		border = grid.RectFromPoints(grid.Vec2{X: a.Kx - g.Width, Y: a.Py}, a.BottomRight())
		inside = grid.RectFromPoints(a.TopLeft(), grid.Vec2{X: a.Kx - g.Width, Y: a.Ky})
	}
	if !g.Border.Eval(c.With(border), r, pctx) {
		return false
	}
	return g.Inside.Eval(c.With(inside), r, pctx)
}

// Margins strips a Width-wide border off all four sides at once, running
// Border over the ring and Inside over what remains. Unlike four chained
// Margin nodes, the ring's corners are each painted exactly once by
// Margins itself rather than being double-painted by two adjacent sides:
// the top and bottom strips span the full width and own the corners,
// and the left and right strips cover only the rows between them.
type Margins struct {
	Width  int
	Border Node
	Inside Node
}

// Eval implements Node.
func (g Margins) Eval(c token.Canvas, r *rng.RNG, pctx *pathfind.Context) bool {
	pctx.Metrics.NodeEvaluated("margins")
	a := c.Area
	w := g.Width
	if !g.Inside.Eval(c.With(a.MinusMargin(w)), r, pctx) {
		return false
	}
	top := grid.RectFromPoints(a.TopLeft(), grid.Vec2{X: a.Kx, Y: a.Py + w})
	if !g.Border.Eval(c.With(top), r, pctx) {
		return false
	}
	right := grid.RectFromPoints(grid.Vec2{X: a.Kx - w, Y: a.Py + w}, grid.Vec2{X: a.Kx, Y: a.Ky - w})
	if !g.Border.Eval(c.With(right), r, pctx) {
		return false
	}
	bottom := grid.RectFromPoints(grid.Vec2{X: a.Px, Y: a.Ky - w}, a.BottomRight())
	if !g.Border.Eval(c.With(bottom), r, pctx) {
		return false
	}
	left := grid.RectFromPoints(grid.Vec2{X: a.Px, Y: a.Py + w}, grid.Vec2{X: a.Px + w, Y: a.Ky - w})
	return g.Border.Eval(c.With(left), r, pctx)
}

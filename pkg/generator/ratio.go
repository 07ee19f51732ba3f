package generator

import (
	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/pathfind"
	"github.com/dshills/mapgen/pkg/rng"
	"github.com/dshills/mapgen/pkg/token"
)

// HRatio splits the canvas vertically at x = Px + floor(width*R), running
// Left over the left part and Right over the right part.
type HRatio struct {
	R     float64
	Left  Node
	Right Node
}

// Eval implements Node.
func (g HRatio) Eval(c token.Canvas, r *rng.RNG, pctx *pathfind.Context) bool {
	pctx.Metrics.NodeEvaluated("hratio")
	a := c.Area
	split := a.Px + int(float64(a.Width())*g.R)
	left := grid.RectFromPoints(a.TopLeft(), grid.Vec2{X: split, Y: a.Ky})
	right := grid.RectFromPoints(grid.Vec2{X: split, Y: a.Py}, a.BottomRight())
	if !g.Left.Eval(c.With(left), r, pctx) {
		return false
	}
	return g.Right.Eval(c.With(right), r, pctx)
}

// VRatio splits the canvas horizontally at y = Py + floor(height*R),
// running Top over the top part and Bottom over the bottom part.
type VRatio struct {
	R      float64
	Top    Node
	Bottom Node
}

// Eval implements Node.
func (g VRatio) Eval(c token.Canvas, r *rng.RNG, pctx *pathfind.Context) bool {
	pctx.Metrics.NodeEvaluated("vratio")
	a := c.Area
	split := a.Py + int(float64(a.Height())*g.R)
	top := grid.RectFromPoints(a.TopLeft(), grid.Vec2{X: a.Kx, Y: split})
	bottom := grid.RectFromPoints(grid.Vec2{X: a.Px, Y: split}, a.BottomRight())
	if !g.Top.Eval(c.With(top), r, pctx) {
		return false
	}
	return g.Bottom.Eval(c.With(bottom), r, pctx)
}

package generator

import (
	"sort"

	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/noise"
	"github.com/dshills/mapgen/pkg/pathfind"
	"github.com/dshills/mapgen/pkg/rng"
	"github.com/dshills/mapgen/pkg/token"
)

// NoiseMapElem runs Generator over every cell whose noise field value
// falls in the half-open quantile range [Lower, Upper), both expressed
// as fractions of the canvas in [0,1].
type NoiseMapElem struct {
	Lower     float64
	Upper     float64
	Generator Node
}

// NoiseMap generates a diamond-square scalar field over the canvas, then
// runs each element's Generator over the single-cell sub-canvases whose
// field value falls in that element's quantile band. Quantiles are
// computed against the sorted sample of the whole canvas, so Lower/Upper
// describe a rank, not a raw field value — the same element definition
// produces a comparable fraction of filled cells regardless of canvas
// size.
type NoiseMap struct {
	Elems []NoiseMapElem
}

// Eval implements Node.
func (g NoiseMap) Eval(c token.Canvas, r *rng.RNG, pctx *pathfind.Context) bool {
	pctx.Metrics.NodeEvaluated("noise_map")
	if c.Area.Empty() {
		return true
	}
	field := noise.Generate(r.F64, c.Area, noise.DefaultCorners, noise.DefaultVarianceDecay)

	cells := c.Area.Cells()
	samples := make([]float64, len(cells))
	for i, v := range cells {
		samples[i] = field.At(v)
	}
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	valueAt := func(rank float64) float64 {
		idx := int(rank * float64(len(sorted)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sorted) {
			return sorted[len(sorted)-1] + 1
		}
		return sorted[idx]
	}

	for _, elem := range g.Elems {
		lower := valueAt(elem.Lower)
		upper := valueAt(elem.Upper)
		pctx.Log().Debug().Float64("lower", lower).Float64("upper", upper).
			Float64("lower_q", elem.Lower).Float64("upper_q", elem.Upper).Msg("noise_map: quantile bounds")
		for _, v := range cells {
			val := field.At(v)
			if val >= lower && val < upper {
				cell := grid.RectFromPoints(v, v.Add(grid.Vec2{X: 1, Y: 1}))
				if !elem.Generator.Eval(c.With(cell), r, pctx) {
					return false
				}
			}
		}
	}
	return true
}

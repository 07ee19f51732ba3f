package noise

import "github.com/dshills/mapgen/pkg/grid"

// Corners seeds the four corners and the center of the underlying
// displacement grid before subdivision begins.
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft, Middle float64
}

// DefaultCorners matches the corner seeding used by the engine's built-in
// NoiseMap node: four high corners framing a low center, so the
// resulting field reads as a basin.
var DefaultCorners = Corners{TopLeft: 1, TopRight: 1, BottomRight: 1, BottomLeft: 1, Middle: 0}

// DefaultVarianceDecay is the per-halving falloff applied to the random
// perturbation at each subdivision step.
const DefaultVarianceDecay = 0.45

// Field is a scalar field resampled onto a target rectangle.
type Field struct {
	area   grid.Rect
	values *grid.Table[float64]
}

// Generate runs diamond-square displacement over a power-of-two-plus-one
// grid sized to cover area, then resamples by nearest neighbour onto
// area itself. f64 must return a uniform value in [0,1); varianceDecay
// scales the random perturbation at each halving of the step size.
func Generate(f64 func() float64, area grid.Rect, corners Corners, varianceDecay float64) *Field {
	if area.Empty() {
		return &Field{area: area, values: grid.NewTable[float64](0, 0)}
	}

	width := 1
	for width < area.Width()-1 || width < area.Height()-1 {
		width *= 2
	}
	width++

	wys := grid.NewTable[float64](width, width)
	wys.Set(grid.Vec2{X: 0, Y: 0}, corners.TopLeft)
	wys.Set(grid.Vec2{X: width - 1, Y: 0}, corners.TopRight)
	wys.Set(grid.Vec2{X: width - 1, Y: width - 1}, corners.BottomRight)
	wys.Set(grid.Vec2{X: 0, Y: width - 1}, corners.BottomLeft)
	wys.Set(grid.Vec2{X: (width - 1) / 2, Y: (width - 1) / 2}, corners.Middle)

	variance := 0.5
	draw := func() float64 { return variance * (f64()*2 - 1) }

	inBounds := func(x, y int) bool { return x >= 0 && x < width && y >= 0 && y < width }
	addAvg := func(x, y int, avg *float64, num *int) {
		if inBounds(x, y) {
			*avg += wys.Get(grid.Vec2{X: x, Y: y})
			*num++
		}
	}

	for a := width - 1; a >= 2; a /= 2 {
		steps := (width - 1) / a

		// Diamond step: displace the center of each a×a square.
		if a < width-1 {
			for sx := 0; sx < steps; sx++ {
				for sy := 0; sy < steps; sy++ {
					px, py := sx*a, sy*a
					avg := (wys.Get(grid.Vec2{X: px, Y: py}) +
						wys.Get(grid.Vec2{X: px + a, Y: py}) +
						wys.Get(grid.Vec2{X: px, Y: py + a}) +
						wys.Get(grid.Vec2{X: px + a, Y: py + a})) / 4
					wys.Set(grid.Vec2{X: px + a/2, Y: py + a/2}, avg+draw())
				}
			}
		}

		// Square step, horizontal edge midpoints.
		for sx := 0; sx < steps; sx++ {
			for sy := 0; sy < steps+1; sy++ {
				px, py := sx*a, sy*a
				var avg float64
				var num int
				addAvg(px+a/2, py-a/2, &avg, &num)
				addAvg(px, py, &avg, &num)
				addAvg(px+a, py, &avg, &num)
				addAvg(px+a/2, py+a/2, &avg, &num)
				wys.Set(grid.Vec2{X: px + a/2, Y: py}, avg/float64(num)+draw())
			}
		}

		// Square step, vertical edge midpoints.
		for sx := 0; sx < steps+1; sx++ {
			for sy := 0; sy < steps; sy++ {
				px, py := sx*a, sy*a
				var avg float64
				var num int
				addAvg(px-a/2, py+a/2, &avg, &num)
				addAvg(px, py, &avg, &num)
				addAvg(px, py+a, &avg, &num)
				addAvg(px+a/2, py+a/2, &avg, &num)
				wys.Set(grid.Vec2{X: px, Y: py + a/2}, avg/float64(num)+draw())
			}
		}

		variance *= varianceDecay
	}

	out := grid.NewTable[float64](area.Width(), area.Height())
	origin := area.TopLeft()
	area.ForEach(func(v grid.Vec2) {
		lx := (v.X - origin.X) * width / area.Width()
		ly := (v.Y - origin.Y) * width / area.Height()
		out.Set(v.Sub(origin), wys.Get(grid.Vec2{X: lx, Y: ly}))
	})
	return &Field{area: area, values: out}
}

// At returns the field value at map-relative point v.
func (f *Field) At(v grid.Vec2) float64 {
	return f.values.Get(v.Sub(f.area.TopLeft()))
}

// Bounds returns the rectangle the field was resampled onto.
func (f *Field) Bounds() grid.Rect { return f.area }

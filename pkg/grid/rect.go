package grid

// Rect is a half-open integer rectangle: x in [Px, Kx), y in [Py, Ky).
type Rect struct {
	Px, Py, Kx, Ky int
}

// NewRect builds a rectangle from its top-left point and dimensions.
func NewRect(topLeft Vec2, width, height int) Rect {
	return Rect{topLeft.X, topLeft.Y, topLeft.X + width, topLeft.Y + height}
}

// RectFromPoints builds the half-open rectangle [topLeft, bottomRight).
func RectFromPoints(topLeft, bottomRight Vec2) Rect {
	return Rect{topLeft.X, topLeft.Y, bottomRight.X, bottomRight.Y}
}

// Width returns Kx-Px.
func (r Rect) Width() int { return r.Kx - r.Px }

// Height returns Ky-Py.
func (r Rect) Height() int { return r.Ky - r.Py }

// Empty reports whether the rectangle contains no cells.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// TopLeft returns the rectangle's top-left corner (inclusive).
func (r Rect) TopLeft() Vec2 { return Vec2{r.Px, r.Py} }

// BottomRight returns the rectangle's bottom-right corner (exclusive).
func (r Rect) BottomRight() Vec2 { return Vec2{r.Kx, r.Ky} }

// Middle returns the rectangle's center point, floor-rounded.
func (r Rect) Middle() Vec2 {
	return Vec2{(r.Px + r.Kx) / 2, (r.Py + r.Ky) / 2}
}

// Contains reports whether v lies within the half-open rectangle.
func (r Rect) Contains(v Vec2) bool {
	return v.X >= r.Px && v.X < r.Kx && v.Y >= r.Py && v.Y < r.Ky
}

// ContainsRect reports whether o is entirely contained in r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.Px >= r.Px && o.Py >= r.Py && o.Kx <= r.Kx && o.Ky <= r.Ky
}

// MinusMargin shrinks the rectangle by m on every side.
func (r Rect) MinusMargin(m int) Rect {
	return Rect{r.Px + m, r.Py + m, r.Kx - m, r.Ky - m}
}

// Random returns a uniformly distributed point within the rectangle using
// the supplied RNG. r must be non-empty.
func (r Rect) Random(intn func(lo, hi int) int) Vec2 {
	return Vec2{intn(r.Px, r.Kx), intn(r.Py, r.Ky)}
}

// Cells returns every point in the rectangle in column-major order (x
// outer, y inner), the iteration order every paint generator relies on.
func (r Rect) Cells() []Vec2 {
	if r.Empty() {
		return nil
	}
	out := make([]Vec2, 0, r.Width()*r.Height())
	for x := r.Px; x < r.Kx; x++ {
		for y := r.Py; y < r.Ky; y++ {
			out = append(out, Vec2{x, y})
		}
	}
	return out
}

// ForEach invokes fn for every point in the rectangle, column-major.
func (r Rect) ForEach(fn func(Vec2)) {
	for x := r.Px; x < r.Kx; x++ {
		for y := r.Py; y < r.Ky; y++ {
			fn(Vec2{x, y})
		}
	}
}

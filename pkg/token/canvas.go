package token

import "github.com/dshills/mapgen/pkg/grid"

// Canvas is a lightweight view of a Map restricted to a sub-rectangle. It
// does not own the Map: sub-generators receive canvases with narrower
// Area over the same underlying Map, which accumulates every side
// effect. A Canvas must not outlive the Map it points to and must never
// be stashed across calls.
type Canvas struct {
	Area grid.Rect
	Map  *Map
}

// NewCanvas builds a canvas covering the map's entire bounds.
func NewCanvas(m *Map) Canvas {
	return Canvas{Area: m.Bounds(), Map: m}
}

// With returns a new canvas over the same map restricted to area. The
// caller is responsible for area lying within the map's bounds; the
// engine only ever constructs canvases that satisfy this invariant.
func (c Canvas) With(area grid.Rect) Canvas {
	return Canvas{Area: area, Map: c.Map}
}

// Package grid provides the integer 2D primitives shared by every other
// package in the engine: points, half-open rectangles, and a dense
// generic table indexed by point.
//
// Rectangles are half-open: Rect{Px, Py, Kx, Ky} covers x in [Px, Kx) and
// y in [Py, Ky). Iteration over a rectangle visits x in the outer loop and
// y in the inner loop (column-major), matching the order every paint
// generator in pkg/generator relies on for deterministic output.
package grid

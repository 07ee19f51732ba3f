package token

import "github.com/dshills/mapgen/pkg/grid"

// Token is an opaque string tag attached to a cell. Equality is exact
// string equality; duplicates within a cell are not observable.
type Token string

// Map is a rectangular, zero-origined grid of cells, each a set of
// tokens. It is the sole accumulator of engine output: it is created once
// per invocation, mutated in place by paint generators, and handed to a
// renderer afterward.
type Map struct {
	cells *grid.Table[map[Token]struct{}]
}

// NewMap allocates an empty w×h map; every cell starts with no tokens.
func NewMap(w, h int) *Map {
	m := &Map{cells: grid.NewTable[map[Token]struct{}](w, h)}
	m.cells.Bounds().ForEach(func(v grid.Vec2) {
		m.cells.Set(v, make(map[Token]struct{}))
	})
	return m
}

// Bounds returns the map's full rectangle.
func (m *Map) Bounds() grid.Rect { return m.cells.Bounds() }

// Has reports whether the cell at v contains tok.
func (m *Map) Has(v grid.Vec2, tok Token) bool {
	_, ok := m.cells.Get(v)[tok]
	return ok
}

// Insert adds tok to the cell at v. Idempotent.
func (m *Map) Insert(v grid.Vec2, tok Token) {
	m.cells.Get(v)[tok] = struct{}{}
}

// Remove deletes tok from the cell at v, a no-op if absent.
func (m *Map) Remove(v grid.Vec2, tok Token) {
	delete(m.cells.Get(v), tok)
}

// Clear empties the cell's token set.
func (m *Map) Clear(v grid.Vec2) {
	for t := range m.cells.Get(v) {
		delete(m.cells.Get(v), t)
	}
}

// Tokens returns the tokens present at v. The caller must not mutate the
// returned slice's backing map.
func (m *Map) Tokens(v grid.Vec2) []Token {
	cell := m.cells.Get(v)
	out := make([]Token, 0, len(cell))
	for t := range cell {
		out = append(out, t)
	}
	return out
}

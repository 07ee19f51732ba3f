package predicate

import (
	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/rng"
	"github.com/dshills/mapgen/pkg/token"
)

// Node is a predicate tree node. Eval returns the node's truth value at
// the given cell, consuming RNG state if the node (or any descendant)
// does.
type Node interface {
	Eval(m *token.Map, v grid.Vec2, r *rng.RNG) bool
}

// On is true iff the cell contains Tok.
type On struct {
	Tok token.Token
}

// Eval implements Node.
func (p On) Eval(m *token.Map, v grid.Vec2, _ *rng.RNG) bool {
	return m.Has(v, p.Tok)
}

// Not negates Inner.
type Not struct {
	Inner Node
}

// Eval implements Node.
func (p Not) Eval(m *token.Map, v grid.Vec2, r *rng.RNG) bool {
	return !p.Inner.Eval(m, v, r)
}

// True is always true.
type True struct{}

// Eval implements Node.
func (True) Eval(*token.Map, grid.Vec2, *rng.RNG) bool { return true }

// And is true iff every child is true. Children are evaluated in
// declared order and evaluation stops at the first false child, so later
// children (and any RNG draws inside them) are skipped.
type And struct {
	Preds []Node
}

// Eval implements Node.
func (p And) Eval(m *token.Map, v grid.Vec2, r *rng.RNG) bool {
	for _, child := range p.Preds {
		if !child.Eval(m, v, r) {
			return false
		}
	}
	return true
}

// Or is true iff any child is true, short-circuiting at the first true
// child in declared order.
type Or struct {
	Preds []Node
}

// Eval implements Node.
func (p Or) Eval(m *token.Map, v grid.Vec2, r *rng.RNG) bool {
	for _, child := range p.Preds {
		if child.Eval(m, v, r) {
			return true
		}
	}
	return false
}

// Chance is true with probability Value, drawing exactly one RNG value
// per call regardless of Value.
type Chance struct {
	Value float64
}

// Eval implements Node.
func (p Chance) Eval(_ *token.Map, _ grid.Vec2, r *rng.RNG) bool {
	return r.Chance(p.Value)
}

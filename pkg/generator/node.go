package generator

import (
	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/pathfind"
	"github.com/dshills/mapgen/pkg/predicate"
	"github.com/dshills/mapgen/pkg/rng"
	"github.com/dshills/mapgen/pkg/token"
)

// Node is one generator tree node. Eval runs the node against c, mutating
// c.Map in place, and reports whether the whole subtree succeeded. A
// failure starts only in Place, when a placement runs out of tries or its
// generator fails; every node with children returns false as soon as a
// child does, and the paint nodes (None, Set, Reset, SetMaybe, Remove)
// always return true.
//
// pctx is shared across an entire top-level Eval call so Connect's
// searches reuse one set of generation-counter scratch tables rather
// than allocating a new distance table per pair.
type Node interface {
	Eval(c token.Canvas, r *rng.RNG, pctx *pathfind.Context) bool
}

// None performs no work and always succeeds.
type None struct{}

// Eval implements Node.
func (None) Eval(_ token.Canvas, _ *rng.RNG, pctx *pathfind.Context) bool {
	pctx.Metrics.NodeEvaluated("none")
	return true
}

// Set inserts Tokens into every cell of the canvas without clearing
// existing tokens first.
type Set struct {
	Tokens []token.Token
}

// Eval implements Node.
func (g Set) Eval(c token.Canvas, _ *rng.RNG, pctx *pathfind.Context) bool {
	pctx.Metrics.NodeEvaluated("set")
	c.Area.ForEach(func(v grid.Vec2) {
		for _, tok := range g.Tokens {
			c.Map.Insert(v, tok)
		}
	})
	return true
}

// Reset clears every cell of the canvas, then inserts Tokens.
type Reset struct {
	Tokens []token.Token
}

// Eval implements Node.
func (g Reset) Eval(c token.Canvas, _ *rng.RNG, pctx *pathfind.Context) bool {
	pctx.Metrics.NodeEvaluated("reset")
	c.Area.ForEach(func(v grid.Vec2) {
		c.Map.Clear(v)
		for _, tok := range g.Tokens {
			c.Map.Insert(v, tok)
		}
	})
	return true
}

// SetMaybe inserts Tok into each cell for which Predicate holds,
// consuming one RNG draw per cell if the predicate does.
type SetMaybe struct {
	Predicate predicate.Node
	Tok       token.Token
}

// Eval implements Node.
func (g SetMaybe) Eval(c token.Canvas, r *rng.RNG, pctx *pathfind.Context) bool {
	pctx.Metrics.NodeEvaluated("set_maybe")
	c.Area.ForEach(func(v grid.Vec2) {
		if g.Predicate.Eval(c.Map, v, r) {
			c.Map.Insert(v, g.Tok)
		}
	})
	return true
}

// Remove deletes Tokens from every cell of the canvas.
type Remove struct {
	Tokens []token.Token
}

// Eval implements Node.
func (g Remove) Eval(c token.Canvas, _ *rng.RNG, pctx *pathfind.Context) bool {
	pctx.Metrics.NodeEvaluated("remove")
	c.Area.ForEach(func(v grid.Vec2) {
		for _, tok := range g.Tokens {
			c.Map.Remove(v, tok)
		}
	})
	return true
}

// Chain runs each child generator in order over the same (unnarrowed)
// canvas, stopping at the first failure.
type Chain struct {
	Generators []Node
}

// Eval implements Node.
func (g Chain) Eval(c token.Canvas, r *rng.RNG, pctx *pathfind.Context) bool {
	pctx.Metrics.NodeEvaluated("chain")
	for _, gen := range g.Generators {
		if !gen.Eval(c, r, pctx) {
			return false
		}
	}
	return true
}

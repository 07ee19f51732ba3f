package predicate

import (
	"testing"

	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/rng"
	"github.com/dshills/mapgen/pkg/token"
)

func TestOn(t *testing.T) {
	m := token.NewMap(2, 2)
	v := grid.Vec2{0, 0}
	m.Insert(v, "wall")
	r := rng.New(1)

	if !(On{Tok: "wall"}).Eval(m, v, r) {
		t.Error("expected On(wall) true")
	}
	if (On{Tok: "floor"}).Eval(m, v, r) {
		t.Error("expected On(floor) false")
	}
}

func TestNot(t *testing.T) {
	m := token.NewMap(1, 1)
	v := grid.Vec2{0, 0}
	r := rng.New(1)
	if (Not{Inner: True{}}).Eval(m, v, r) {
		t.Error("expected Not(True) false")
	}
}

func TestAndShortCircuit(t *testing.T) {
	m := token.NewMap(1, 1)
	v := grid.Vec2{0, 0}
	r1 := rng.New(1)
	r2 := rng.New(1)

	called := false
	sideEffecting := predFunc(func(*token.Map, grid.Vec2, *rng.RNG) bool {
		called = true
		return true
	})

	p := And{Preds: []Node{Chance{Value: 0}, sideEffecting}}
	if p.Eval(m, v, r1) {
		t.Error("And should be false when first child is false")
	}
	if called {
		t.Error("And must short-circuit: second child should not run")
	}

	// RNG must have advanced exactly once (the Chance(0) draw).
	r2.F64()
	want := r2.F64()
	got := r1.F64()
	if got != want {
		t.Error("And should advance the RNG by exactly the one Chance(0) draw")
	}
}

func TestOrShortCircuit(t *testing.T) {
	m := token.NewMap(1, 1)
	v := grid.Vec2{0, 0}
	r := rng.New(1)

	called := false
	rest := predFunc(func(*token.Map, grid.Vec2, *rng.RNG) bool {
		called = true
		return false
	})

	p := Or{Preds: []Node{True{}, rest}}
	if !p.Eval(m, v, r) {
		t.Error("Or should be true when first child is true")
	}
	if called {
		t.Error("Or must short-circuit: second child should not run")
	}
}

func TestChanceConsumesRNGEachCall(t *testing.T) {
	r1 := rng.New(5)
	r2 := rng.New(5)
	m := token.NewMap(1, 1)
	v := grid.Vec2{0, 0}

	c := Chance{Value: 0.5}
	for i := 0; i < 10; i++ {
		c.Eval(m, v, r1)
	}
	// r2 not advanced the same way: draw raw F64 ten times and compare
	// with the resulting stream position via a subsequent shared draw.
	for i := 0; i < 10; i++ {
		r2.F64()
	}
	if r1.F64() != r2.F64() {
		t.Error("Chance should consume exactly one RNG draw per Eval call")
	}
}

// predFunc adapts a function literal to the Node interface for tests.
type predFunc func(*token.Map, grid.Vec2, *rng.RNG) bool

func (f predFunc) Eval(m *token.Map, v grid.Vec2, r *rng.RNG) bool { return f(m, v, r) }

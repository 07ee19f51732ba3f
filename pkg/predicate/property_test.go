package predicate

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/rng"
	"github.com/dshills/mapgen/pkg/token"
)

// countingNode records how many times Eval was called on it.
type countingNode struct {
	calls *int
}

func (n countingNode) Eval(*token.Map, grid.Vec2, *rng.RNG) bool {
	*n.calls++
	return true
}

// And short-circuits on its first false child: later children are never
// evaluated, and the RNG advances exactly as far as the children that
// did run.
func TestPropertyAndShortCircuitsOnChanceFalse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		m := token.NewMap(1, 1)
		v := grid.Vec2{X: 0, Y: 0}

		var calls int
		and := And{Preds: []Node{Chance{Value: 0}, countingNode{calls: &calls}}}

		r := rng.New(seed)
		if and.Eval(m, v, r) {
			t.Fatalf("And with a false first child should be false")
		}
		if calls != 0 {
			t.Fatalf("second child evaluated %d times, expected 0", calls)
		}
		next := r.F64()

		reference := rng.New(seed)
		reference.F64() // the single draw Chance(0) makes
		wantNext := reference.F64()

		if next != wantNext {
			t.Fatalf("RNG advanced by more than one draw: got %v, want %v", next, wantNext)
		}
	})
}

// Or short-circuits on its first true child: later children are never
// evaluated.
func TestPropertyOrShortCircuitsOnChanceTrue(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		m := token.NewMap(1, 1)
		v := grid.Vec2{X: 0, Y: 0}

		var calls int
		or := Or{Preds: []Node{Chance{Value: 1}, countingNode{calls: &calls}}}

		r := rng.New(seed)
		if !or.Eval(m, v, r) {
			t.Fatalf("Or with a true first child should be true")
		}
		if calls != 0 {
			t.Fatalf("second child evaluated %d times, expected 0", calls)
		}
	})
}

// Chance always draws exactly one RNG value regardless of its
// probability, including the degenerate 0 and 1 endpoints.
func TestPropertyChanceAlwaysDrawsOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		value := rapid.Float64Range(0, 1).Draw(t, "value")
		m := token.NewMap(1, 1)
		v := grid.Vec2{X: 0, Y: 0}

		r := rng.New(seed)
		Chance{Value: value}.Eval(m, v, r)
		next := r.F64()

		reference := rng.New(seed)
		reference.F64()
		wantNext := reference.F64()

		if next != wantNext {
			t.Fatalf("Chance(%v) did not consume exactly one draw", value)
		}
	})
}

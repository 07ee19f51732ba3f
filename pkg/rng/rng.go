package rng

import "math/rand"

// RNG is the single pseudorandom source an engine invocation advances
// monotonically from construction to completion. Every draw — including
// the ones hidden inside predicate evaluation — mutates its state, so the
// sequence of calls is part of a map's identity: reordering generators
// changes the output even at a fixed seed.
type RNG struct {
	seed   int64
	source *rand.Rand
}

// New creates an RNG from a single top-level seed.
func New(seed int64) *RNG {
	return &RNG{seed: seed, source: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed the RNG was constructed with.
func (r *RNG) Seed() int64 { return r.seed }

// Int returns a pseudo-random integer in [lo, hi).
// It panics if hi <= lo.
func (r *RNG) Int(lo, hi int) int {
	if hi <= lo {
		panic("rng: Int requires hi > lo")
	}
	return lo + r.source.Intn(hi-lo)
}

// F64 returns a pseudo-random float64 in [0,1).
func (r *RNG) F64() float64 {
	return r.source.Float64()
}

// F64Range returns a pseudo-random float64 in [a,b).
// It panics if b <= a.
func (r *RNG) F64Range(a, b float64) float64 {
	if b <= a {
		panic("rng: F64Range requires b > a")
	}
	return a + r.source.Float64()*(b-a)
}

// Chance returns true with probability v, drawing exactly one F64 even
// when v <= 0 or v >= 1, so call sites can rely on it always consuming
// entropy.
func (r *RNG) Chance(v float64) bool {
	return r.F64() <= v
}

// Choose returns a uniformly selected element of v.
// It panics if v is empty.
func Choose[T any](r *RNG, v []T) T {
	if len(v) == 0 {
		panic("rng: Choose on empty slice")
	}
	return v[r.source.Intn(len(v))]
}

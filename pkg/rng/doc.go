// Package rng provides the single seeded pseudorandom source shared by every
// component of the map generator.
//
// # Overview
//
// Unlike a multi-stage pipeline that derives independent per-stage seeds,
// this engine advances one RNG monotonically across an entire invocation:
// predicates, Place, NoiseMap, and Connect all draw from the same sequence,
// so the order in which they are evaluated is part of the map's identity.
// Two invocations with the same seed and the same generator tree must
// produce bit-identical output.
//
// # Usage
//
//	r := rng.New(seed)
//	if r.Chance(0.25) {
//	    token := rng.Choose(r, candidates)
//	}
package rng

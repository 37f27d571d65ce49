// Package lcg64 implements the 64-bit linear congruential generator used to
// derive every random outcome in this engine. Its two contracts — single-step
// advance and O(log n) jump — are exact; any deviation breaks every
// downstream check that consumes this package.
package lcg64

// Multiplier and increment of the underlying LCG: s' = s*mulConst + addConst
// (mod 2^64).
const (
	mulConst uint64 = 0x5D588B656C078965
	addConst uint64 = 0x00269EC3
)

// Seed is an opaque 64-bit LCG state. The zero value is a valid (if
// uninteresting) seed.
type Seed uint64

// New wraps a raw 64-bit value as a Seed.
func New(raw uint64) Seed {
	return Seed(raw)
}

// Raw returns the underlying 64-bit state.
func (s Seed) Raw() uint64 {
	return uint64(s)
}

// Next advances the state by a single step and returns the new seed.
func (s Seed) Next() Seed {
	return Seed(uint64(s)*mulConst + addConst)
}

// Output32 returns the high 32 bits of the state, the value every
// probability-table draw and IV/nature/PID roll is computed from.
func (s Seed) Output32() uint32 {
	return uint32(uint64(s) >> 32)
}

// NeedleDirection derives the 8-way needle/compass value from one LCG step's
// high 32 bits: dir = ((hi32 * 8) >> 32) & 7.
func (s Seed) NeedleDirection() uint8 {
	hi := uint64(s.Output32())
	return uint8((hi*8)>>32) & 7
}

// transform represents the affine map produced by composing k single steps:
// s' = s*mul + add (mod 2^64).
type transform struct {
	mul uint64
	add uint64
}

// identity is the zero-step transform.
var identityTransform = transform{mul: 1, add: 0}

// compose returns the transform equivalent to applying t first, then u
// (i.e. u(t(s))).
func compose(t, u transform) transform {
	return transform{
		mul: t.mul * u.mul,
		add: u.mul*t.add + u.add,
	}
}

// apply evaluates the transform against a seed.
func (t transform) apply(s Seed) Seed {
	return Seed(uint64(s)*t.mul + t.add)
}

// jumpTransform returns the affine transform equivalent to n single steps,
// computed in O(log n) by repeated squaring of the one-step transform and
// accumulating the bits of n that are set.
func jumpTransform(n uint64) transform {
	step := transform{mul: mulConst, add: addConst}
	result := identityTransform
	for n != 0 {
		if n&1 != 0 {
			result = compose(result, step)
		}
		step = compose(step, step)
		n >>= 1
	}
	return result
}

// Advance returns the seed reached after n single steps from s, computed in
// O(log n) time. Advance(s, n) is defined to equal calling Next n times for
// every n and every s — this equivalence is the engine's most fundamental
// testable property.
func (s Seed) Advance(n uint64) Seed {
	return jumpTransform(n).apply(s)
}

// ToMtSeed derives an MtSeed from an LcgSeed: one LCG step, then the upper
// 32 bits of the result.
func (s Seed) ToMtSeed() uint32 {
	return s.Next().Output32()
}

// Package bootoffset reproduces the version/mode/state-specific LCG
// consumption the game performs between the title-screen seed and the
// moment the player gains control (spec.md §4.5). Three primitives —
// ConsumeN, ProbabilityTable, and Extra — compose into a fixed sequence per
// boot condition; GameOffset drives that composition and reports both the
// post-offset seed and the advance count it consumed.
package bootoffset

import "github.com/nazotools/gen5search/lcg64"

// ConsumeN steps the LCG k times in place and returns k.
func ConsumeN(lcg *lcg64.Seed, k uint32) uint32 {
	s := *lcg
	for i := uint32(0); i < k; i++ {
		s = s.Next()
	}
	*lcg = s
	return k
}

// probabilityLevel is one ProbabilityTable level: thresholds read
// left-to-right, each consuming one draw unless it is the terminal 100.
type probabilityLevel []uint32

// levels is the six fixed ProbabilityTable levels (spec.md §4.5). A
// threshold of 100 terminates the level without drawing.
var levels = [6]probabilityLevel{
	{50, 100},
	{50, 50, 100},
	{30, 50, 100},
	{25, 30, 50, 100},
	{20, 25, 33, 50, 100},
	{100},
}

// runLevel draws thresholds left to right until one succeeds (r <= T) or
// the terminal 100 is reached, returning the number of draws consumed.
func runLevel(lcg *lcg64.Seed, level probabilityLevel) uint32 {
	draws := uint32(0)
	for _, threshold := range level {
		if threshold >= 100 {
			return draws
		}
		*lcg = lcg.Next()
		draws++
		r := (uint64(lcg.Output32()) * 101) >> 32
		if r <= uint64(threshold) {
			return draws
		}
	}
	return draws
}

// ProbabilityTable runs all six levels (L1..L6) in order against lcg,
// returning the total number of draws consumed.
func ProbabilityTable(lcg *lcg64.Seed) uint32 {
	total := uint32(0)
	for _, level := range levels {
		total += runLevel(lcg, level)
	}
	return total
}

// Extra repeatedly draws three values, each folded to 0..14 via
// (v*15)>>32, until all three differ (BW2 Continue only). Returns the total
// number of LCG draws consumed.
func Extra(lcg *lcg64.Seed) uint32 {
	draws := uint32(0)
	for {
		var v [3]uint32
		for i := range v {
			*lcg = lcg.Next()
			draws++
			v[i] = uint32((uint64(lcg.Output32()) * 15) >> 32)
		}
		if v[0] != v[1] && v[1] != v[2] && v[0] != v[2] {
			return draws
		}
	}
}

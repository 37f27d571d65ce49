package rngtime

import (
	"github.com/jrick/bitset"
	"github.com/nazotools/gen5search/seedtypes"
)

// ValidKeyMasks returns every key-mask combination in [0, 0xFFF] that is
// physically reachable on the hardware (spec.md §3's Up+Down, Left+Right,
// and L+R+Start+Select exclusions), packed as a bitset the way the teacher
// packs per-block flag sets instead of a []bool.
func ValidKeyMasks() *bitset.Bitset {
	bs := bitset.New(0x1000)
	for mask := uint32(0); mask <= 0x0FFF; mask++ {
		if seedtypes.IsValidKeyMask(mask) {
			bs.Set(int(mask))
		}
	}
	return bs
}

// EnumerateKeyMasks returns the valid key masks within a candidate set,
// preserving ascending order. Passing nil enumerates every valid mask.
func EnumerateKeyMasks(candidates []uint32) []uint32 {
	valid := ValidKeyMasks()
	if candidates == nil {
		out := make([]uint32, 0, 0x0FFF)
		for mask := uint32(0); mask <= 0x0FFF; mask++ {
			if valid.Get(int(mask)) {
				out = append(out, mask)
			}
		}
		return out
	}
	out := make([]uint32, 0, len(candidates))
	for _, mask := range candidates {
		if valid.Get(int(mask)) {
			out = append(out, mask)
		}
	}
	return out
}

// TimeWindow is an inclusive hour:minute:second-of-day window, possibly
// wrapping past midnight (e.g. 22:00:00 to 02:00:00).
type TimeWindow struct {
	StartSecOfDay int // 0..86399
	EndSecOfDay   int // 0..86399, inclusive
}

// TimeOfDayTable is the 86,400-entry per-second-of-day membership table
// (spec.md §4.9), packed as a bitset rather than a []bool.
type TimeOfDayTable struct {
	bits *bitset.Bitset
}

// NewTimeOfDayTable builds the table for a (possibly wrapping) time window.
func NewTimeOfDayTable(w TimeWindow) *TimeOfDayTable {
	bs := bitset.New(86400)
	if w.StartSecOfDay <= w.EndSecOfDay {
		for s := w.StartSecOfDay; s <= w.EndSecOfDay; s++ {
			bs.Set(s)
		}
	} else {
		for s := w.StartSecOfDay; s < 86400; s++ {
			bs.Set(s)
		}
		for s := 0; s <= w.EndSecOfDay; s++ {
			bs.Set(s)
		}
	}
	return &TimeOfDayTable{bits: bs}
}

// Contains reports whether a given second-of-day (0..86399) is within the
// window.
func (t *TimeOfDayTable) Contains(secOfDay int) bool {
	return t.bits.Get(secOfDay)
}

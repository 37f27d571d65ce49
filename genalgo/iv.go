package genalgo

import (
	"github.com/nazotools/gen5search/lcg64"
	"github.com/nazotools/gen5search/mt19937"
	"github.com/nazotools/gen5search/seedtypes"
)

// GenerateRngIvsWithOffset seeds a fresh MT19937 stream, discards offset
// outputs, then draws six IVs. isRoamer applies the HABDSC→HABCDS reorder
// roaming encounters need.
func GenerateRngIvsWithOffset(mtSeed uint32, offset uint32, isRoamer bool) seedtypes.Ivs {
	mt := mt19937.New(mtSeed)
	mt.Discard(int(offset))

	var outputs [6]uint32
	for i := range outputs {
		outputs[i] = mt.Next()
	}
	ivs := seedtypes.IvsFromMTOutputs(outputs)
	if isRoamer {
		return seedtypes.HabdscToHabcds(ivs)
	}
	return ivs
}

// GenerateRngIvsWithOffsetX4 is the 4-lane batched form of
// GenerateRngIvsWithOffset; every lane's result matches the scalar
// function called independently on that lane's seed.
func GenerateRngIvsWithOffsetX4(seeds [4]uint32, offset uint32, isRoamer bool) [4]seedtypes.Ivs {
	mt := mt19937.NewX4(seeds)
	mt.Discard(int(offset))

	var raw [6][4]uint32
	for i := range raw {
		raw[i] = mt.Next()
	}

	var out [4]seedtypes.Ivs
	for lane := 0; lane < 4; lane++ {
		var outputs [6]uint32
		for i := range outputs {
			outputs[i] = raw[i][lane]
		}
		ivs := seedtypes.IvsFromMTOutputs(outputs)
		if isRoamer {
			ivs = seedtypes.HabdscToHabcds(ivs)
		}
		out[lane] = ivs
	}
	return out
}

// ApplyInheritance overlays up to three egg inheritance slots onto a
// freshly-rolled IV vector, each slot copying one stat from one parent.
func ApplyInheritance(rngIvs, parentMale, parentFemale seedtypes.Ivs, slots [3]seedtypes.InheritedSlot) seedtypes.Ivs {
	result := rngIvs
	for _, slot := range slots {
		var parentIV uint8
		if slot.Parent == seedtypes.EggParentMale {
			parentIV = parentMale.Get(slot.Stat)
		} else {
			parentIV = parentFemale.Get(slot.Stat)
		}
		result = result.Set(slot.Stat, parentIV)
	}
	return result
}

// DetermineInheritance draws the three (stat, parent) inheritance slots an
// egg's parents contribute, rerolling a stat draw whenever it repeats a
// stat already claimed by an earlier slot.
func DetermineInheritance(lcg *lcg64.Seed) [3]seedtypes.InheritedSlot {
	var slots [3]seedtypes.InheritedSlot
	var used [6]bool

	for i := range slots {
		var stat seedtypes.Stat
		for {
			candidate := seedtypes.Stat(RollFraction(draw(lcg), 6))
			if !used[candidate] {
				used[candidate] = true
				stat = candidate
				break
			}
		}
		// Top bit 0 selects the female parent, top bit 1 the male parent.
		parent := seedtypes.EggParentMale
		if draw(lcg)>>31 == 0 {
			parent = seedtypes.EggParentFemale
		}
		slots[i] = seedtypes.InheritedSlot{Stat: stat, Parent: parent}
	}
	return slots
}

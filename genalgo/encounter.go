package genalgo

// percentForVersion maps a draw to a 0..99 percentage bucket, using BW's
// 0xFFFF/0x290 scaling (the original game's fixed-point percent table) or
// BW2's plain *100 scaling.
func percentForVersion(r uint32, isBW2 bool) uint32 {
	if isBW2 {
		return uint32((uint64(r) * 100) >> 32)
	}
	return uint32((uint64(r) * 0xFFFF / 0x290) >> 32)
}

// Standard Gen 4/5 cumulative encounter-slot percentage breakpoints:
// twelve walking slots, five surfing slots, five fishing slots. A draw's
// percentage bucket selects the first breakpoint it is strictly below.
var (
	normalSlotBreakpoints  = [12]uint32{20, 40, 50, 60, 70, 80, 85, 90, 94, 98, 99, 100}
	surfingSlotBreakpoints = [5]uint32{60, 90, 95, 99, 100}
	fishingSlotBreakpoints = [5]uint32{70, 85, 95, 99, 100}
)

func bucketIndex(percent uint32, breakpoints []uint32) int {
	for i, bp := range breakpoints {
		if percent < bp {
			return i
		}
	}
	return len(breakpoints) - 1
}

// CalculateEncounterSlot resolves a slot-determination draw to a slot-table
// index, using the fixed table the encounter kind draws from: twelve slots
// for walking encounters (Normal/ShakingGrass/DustCloud/PokemonShadow), five
// for Surfing, five for Fishing.
func CalculateEncounterSlot(kind EncounterKind, r uint32, isBW2 bool) int {
	percent := percentForVersion(r, isBW2)
	switch kind {
	case EncounterSurfing, EncounterSurfingBubble:
		return bucketIndex(percent, surfingSlotBreakpoints[:])
	case EncounterFishing, EncounterFishingBubble:
		return bucketIndex(percent, fishingSlotBreakpoints[:])
	default:
		return bucketIndex(percent, normalSlotBreakpoints[:])
	}
}

// FishingSuccess reports whether a fishing bite succeeds: a flat 50% test
// on the draw's top bit.
func FishingSuccess(r uint32) bool {
	return (uint64(r)*2)>>32 == 0
}

// CalculateLevel maps a draw onto an inclusive [min, max] level range.
func CalculateLevel(r uint32, min, max uint8) uint8 {
	if max <= min {
		return min
	}
	width := uint32(max) - uint32(min) + 1
	return min + uint8(RollFraction(r, width))
}

// EncounterTypeSupportsHeldItem reports whether an encounter kind ever rolls
// a held-item slot at all (StaticSymbol is the only fixed-encounter kind
// that does; every ordinary wild kind does).
func EncounterTypeSupportsHeldItem(kind EncounterKind) bool {
	switch kind {
	case EncounterStaticStarter, EncounterStaticFossil, EncounterStaticEvent, EncounterRoamer, EncounterHiddenGrotto:
		return false
	default:
		return true
	}
}

// NoHeldItem is the sentinel held-item slot meaning "no item rolled".
const NoHeldItem int8 = -1

// Held-item percentage bands (cumulative, out of 100): common/uncommon/rare
// under the ordinary lead, widened toward rare under Compound Eyes. A
// fourth, very-rare band only exists on slots flagged as carrying one.
var (
	heldItemBands            = [3]uint32{50, 55, 60}
	heldItemBandsCompoundEye = [3]uint32{40, 50, 60}
	heldItemVeryRareBand     = uint32(5)
)

// DetermineHeldItemSlot resolves a held-item draw to a band index: NoHeldItem
// when the draw falls outside every band, otherwise 0 (common) through 2
// (rare), or 3 (very rare) on slots that carry one.
func DetermineHeldItemSlot(r uint32, lead LeadAbility, hasVeryRare bool, isBW2 bool) int8 {
	percent := percentForVersion(r, isBW2)
	bands := heldItemBands
	if lead.Kind == LeadCompoundEyes {
		bands = heldItemBandsCompoundEye
	}
	if hasVeryRare && percent < heldItemVeryRareBand {
		return 3
	}
	for i, bp := range bands {
		if percent < bp {
			return int8(i)
		}
	}
	return NoHeldItem
}

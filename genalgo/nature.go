package genalgo

import "github.com/nazotools/gen5search/lcg64"

// NatureRoll maps a 32-bit draw onto a nature ID in 0..24.
func NatureRoll(r uint32) uint8 {
	return uint8((uint64(r) * 25) >> 32)
}

// syncCheck reports whether a sync-test draw succeeds: top bit set.
func syncCheck(r uint32) bool {
	return (uint64(r)*2)>>32 == 1
}

// supportsSync reports whether an encounter kind ever runs the sync-test
// draw. Roamer and the fixed-PID event kinds never do; every wild kind and
// StaticSymbol do.
func supportsSync(kind EncounterKind) bool {
	switch kind {
	case EncounterNormal, EncounterShakingGrass, EncounterSurfing, EncounterSurfingBubble,
		EncounterFishing, EncounterFishingBubble, EncounterDustCloud, EncounterPokemonShadow,
		EncounterStaticSymbol, EncounterHiddenGrotto:
		return true
	default:
		return false
	}
}

// PerformSyncCheck draws the sync-test roll whenever the encounter kind
// supports it — the draw always happens regardless of the lead ability, only
// its interpretation (does a Synchronize lead override the nature?) depends
// on the ability.
func PerformSyncCheck(lcg *lcg64.Seed, kind EncounterKind, lead LeadAbility) bool {
	if !supportsSync(kind) {
		return false
	}
	r := draw(lcg)
	_, isSync := lead.isSynchronize()
	return isSync && syncCheck(r)
}

// DetermineNature draws the nature roll unconditionally, then substitutes the
// Synchronize lead's nature for the already-drawn result when the sync check
// already succeeded. The override never consumes a second draw.
func DetermineNature(lcg *lcg64.Seed, syncSuccess bool, lead LeadAbility) (nature uint8, syncApplied bool) {
	rolled := NatureRoll(draw(lcg))
	if syncSuccess {
		if n, ok := lead.isSynchronize(); ok {
			return n, true
		}
	}
	return rolled, false
}

// EverstonePlanKind discriminates an Everstone egg-nature plan.
type EverstonePlanKind uint8

const (
	EverstoneNone EverstonePlanKind = iota
	EverstoneFixed
)

// EverstonePlan pairs a plan kind with the nature an Everstone-holding
// parent would pass on.
type EverstonePlan struct {
	Kind   EverstonePlanKind
	Nature uint8
}

// DetermineEggNature draws the egg's nature roll unconditionally, then, when
// an Everstone parent is in play, draws a second roll whose top bit decides
// whether the parent's nature is inherited instead.
func DetermineEggNature(lcg *lcg64.Seed, plan EverstonePlan) uint8 {
	rolled := NatureRoll(draw(lcg))
	if plan.Kind != EverstoneFixed {
		return rolled
	}
	inherit := draw(lcg)>>31 == 0
	if inherit {
		return plan.Nature
	}
	return rolled
}

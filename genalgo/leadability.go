// Package genalgo implements the per-encounter random-number consumption
// primitives above the raw LCG: PID generation and shiny handling, nature
// rolls and the Synchronize mechanic, IV extraction and roamer/inheritance
// reordering, and the encounter-slot/held-item/fishing/level draws a
// generator composes into a full individual.
package genalgo

import "github.com/nazotools/gen5search/seedtypes"

// LeadAbilityKind identifies a lead Pokémon ability effect relevant to
// generation: Synchronize overrides the nature draw's outcome (but never
// skips the draw itself), Compound Eyes skips the sync check entirely and
// widens held-item rare bands.
type LeadAbilityKind uint8

const (
	LeadNone LeadAbilityKind = iota
	LeadSynchronize
	LeadCompoundEyes
)

// LeadAbility pairs a lead-ability kind with the nature Synchronize locks in
// (meaningless for any other kind).
type LeadAbility struct {
	Kind             LeadAbilityKind
	SynchronizeNature uint8
}

func (l LeadAbility) isSynchronize() (nature uint8, ok bool) {
	if l.Kind == LeadSynchronize {
		return l.SynchronizeNature, true
	}
	return 0, false
}

// EncounterKind enumerates every random-consuming encounter shape the
// generation package dispatches on.
type EncounterKind uint8

const (
	EncounterNormal EncounterKind = iota
	EncounterShakingGrass
	EncounterSurfing
	EncounterSurfingBubble
	EncounterFishing
	EncounterFishingBubble
	EncounterDustCloud
	EncounterPokemonShadow
	EncounterStaticSymbol
	EncounterStaticStarter
	EncounterStaticFossil
	EncounterStaticEvent
	EncounterRoamer
	EncounterHiddenGrotto
)

// ToSource maps an EncounterKind to the result-tagging
// seedtypes.EncounterSource it corresponds to.
func (k EncounterKind) ToSource() seedtypes.EncounterSource {
	switch k {
	case EncounterShakingGrass:
		return seedtypes.SourceShakingGrass
	case EncounterSurfing:
		return seedtypes.SourceSurfing
	case EncounterSurfingBubble:
		return seedtypes.SourceSurfingBubble
	case EncounterFishing:
		return seedtypes.SourceFishing
	case EncounterFishingBubble:
		return seedtypes.SourceFishingBubble
	case EncounterDustCloud:
		return seedtypes.SourceDustCloud
	case EncounterPokemonShadow:
		return seedtypes.SourcePokemonShadow
	case EncounterStaticSymbol:
		return seedtypes.SourceStaticSymbol
	case EncounterStaticStarter:
		return seedtypes.SourceStaticStarter
	case EncounterStaticFossil:
		return seedtypes.SourceStaticFossil
	case EncounterStaticEvent:
		return seedtypes.SourceStaticEvent
	case EncounterRoamer:
		return seedtypes.SourceRoamer
	case EncounterHiddenGrotto:
		return seedtypes.SourceHiddenGrotto
	default:
		return seedtypes.SourceNormal
	}
}

package generation

import (
	"github.com/nazotools/gen5search/genalgo"
	"github.com/nazotools/gen5search/lcg64"
	"github.com/nazotools/gen5search/seedtypes"
)

// isStatic reports whether an encounter kind follows the single-slot,
// always-succeeds static/event/roamer path rather than the wild path.
func isStatic(kind genalgo.EncounterKind) bool {
	switch kind {
	case genalgo.EncounterStaticSymbol, genalgo.EncounterStaticStarter, genalgo.EncounterStaticFossil,
		genalgo.EncounterStaticEvent, genalgo.EncounterRoamer:
		return true
	default:
		return false
	}
}

// PokemonGenerator produces a continuous stream of individuals from a fixed
// base seed, jumping once to the combined game+user offset and then
// stepping one LCG advance per individual. Its own cursor only ever moves
// by one step per call; each individual's actual consumption happens on a
// throwaway clone, mirroring the reference generator's "advance by one,
// consume by however much" split.
type PokemonGenerator struct {
	lcg            lcg64.Seed
	totalOffset    uint32
	currentAdvance uint32
	rngIvs         seedtypes.Ivs
	source         seedtypes.SeedOrigin
	params         PokemonParams
}

// NewPokemonGenerator creates a generator that jumps baseSeed forward by
// gameOffset+userOffset itself (the caller passes the un-advanced seed),
// and whose IV stream is derived from mtSeed at the offset this encounter
// kind requires.
func NewPokemonGenerator(baseSeed lcg64.Seed, mtSeed uint32, gameOffset, userOffset uint32, source seedtypes.SeedOrigin, params PokemonParams) (*PokemonGenerator, error) {
	if len(params.Slots) == 0 {
		return nil, seedtypes.ErrEmptyEncounterSlots
	}
	isRoamer := params.Kind == genalgo.EncounterRoamer
	mtOffset := MtOffset(params.IsBW2, params.Kind, false)
	rngIvs := genalgo.GenerateRngIvsWithOffset(mtSeed, mtOffset, isRoamer)

	total := gameOffset + userOffset
	lcg := baseSeed.Advance(uint64(total))

	return &PokemonGenerator{
		lcg:            lcg,
		totalOffset:    total,
		currentAdvance: userOffset,
		rngIvs:         rngIvs,
		source:         source,
		params:         params,
	}, nil
}

// TotalOffset returns GameOffset + UserOffset.
func (g *PokemonGenerator) TotalOffset() uint32 { return g.totalOffset }

// CurrentAdvance returns the current position counted from the game offset:
// it starts at UserOffset and grows by one per generated individual.
func (g *PokemonGenerator) CurrentAdvance() uint32 { return g.currentAdvance }

// GenerateNext produces the individual at the current advance and steps the
// generator's own LCG forward by exactly one, regardless of how many draws
// the generation itself consumed on its cloned cursor.
func (g *PokemonGenerator) GenerateNext() seedtypes.Individual {
	needle := g.lcg.NeedleDirection()
	advance := g.currentAdvance

	genLcg := g.lcg

	var raw rawPokemon
	switch {
	case isStatic(g.params.Kind):
		raw = GenerateStaticPokemon(&genLcg, g.params, g.params.Slots[0])
	case g.params.Kind == genalgo.EncounterFishing || g.params.Kind == genalgo.EncounterFishingBubble:
		raw = GenerateFishingPokemon(&genLcg, g.params)
	case g.params.Kind == genalgo.EncounterDustCloud || g.params.Kind == genalgo.EncounterPokemonShadow:
		raw, _ = GeneratePhenomenaPokemon(&genLcg, g.params)
	default:
		raw = GenerateWildPokemon(&genLcg, g.params)
	}

	g.lcg = g.lcg.Next()
	g.currentAdvance++

	return individualFromRaw(raw, g.rngIvs, uint64(advance), needle, g.params.Kind.ToSource())
}

// Take produces count individuals in sequence.
func (g *PokemonGenerator) Take(count uint32) []seedtypes.Individual {
	out := make([]seedtypes.Individual, 0, count)
	for i := uint32(0); i < count; i++ {
		out = append(out, g.GenerateNext())
	}
	return out
}

func individualFromRaw(raw rawPokemon, ivs seedtypes.Ivs, advance uint64, needle uint8, source seedtypes.EncounterSource) seedtypes.Individual {
	if raw.empty {
		return seedtypes.Individual{Advance: advance, NeedleDirection: needle, Source: source, Empty: true}
	}
	return seedtypes.Individual{
		Advance:         advance,
		NeedleDirection: needle,
		Source:          source,
		Pid:             raw.pid,
		SpeciesID:       raw.speciesID,
		Level:           raw.level,
		Nature:          raw.nature,
		SyncApplied:     raw.syncApplied,
		AbilitySlot:     raw.abilitySlot,
		Gender:          raw.gender,
		ShinyType:       raw.shinyType,
		HeldItemSlot:    raw.heldItemSlot,
		Ivs:             ivs,
	}
}

// EggGenerator produces a continuous stream of egg individuals, overlaying
// each draw's inheritance slots onto the RNG-derived IV vector.
type EggGenerator struct {
	lcg            lcg64.Seed
	totalOffset    uint32
	currentAdvance uint32
	rngIvs         seedtypes.Ivs
	source         seedtypes.SeedOrigin
	params         EggParams
}

// NewEggGenerator mirrors NewPokemonGenerator for the egg path: its mt
// offset is always 7 (spec.md §4.8), irrespective of version.
func NewEggGenerator(baseSeed lcg64.Seed, mtSeed uint32, gameOffset, userOffset uint32, source seedtypes.SeedOrigin, params EggParams) *EggGenerator {
	rngIvs := genalgo.GenerateRngIvsWithOffset(mtSeed, MtOffset(false, genalgo.EncounterNormal, true), false)
	total := gameOffset + userOffset
	lcg := baseSeed.Advance(uint64(total))

	return &EggGenerator{
		lcg:            lcg,
		totalOffset:    total,
		currentAdvance: userOffset,
		rngIvs:         rngIvs,
		source:         source,
		params:         params,
	}
}

// TotalOffset returns GameOffset + UserOffset.
func (g *EggGenerator) TotalOffset() uint32 { return g.totalOffset }

// CurrentAdvance returns the current position counted from the game offset:
// it starts at UserOffset and grows by one per generated egg.
func (g *EggGenerator) CurrentAdvance() uint32 { return g.currentAdvance }

// GenerateNext produces the egg individual at the current advance.
func (g *EggGenerator) GenerateNext() seedtypes.Individual {
	needle := g.lcg.NeedleDirection()
	advance := g.currentAdvance

	genLcg := g.lcg
	raw := GenerateEgg(&genLcg, g.params)

	g.lcg = g.lcg.Next()
	g.currentAdvance++

	ivs := genalgo.ApplyInheritance(g.rngIvs, g.params.ParentMale, g.params.ParentFemale, raw.inheritance)

	return seedtypes.Individual{
		Advance:         uint64(advance),
		NeedleDirection: needle,
		Source:          seedtypes.SourceEgg,
		Pid:             raw.pid,
		Nature:          raw.nature,
		AbilitySlot:     raw.abilitySlot,
		Gender:          raw.gender,
		ShinyType:       raw.shinyType,
		HeldItemSlot:    int8(genalgo.NoHeldItem),
		Ivs:             ivs,
		Inheritance:     raw.inheritance[:],
	}
}

// Take produces count egg individuals in sequence.
func (g *EggGenerator) Take(count uint32) []seedtypes.Individual {
	out := make([]seedtypes.Individual, 0, count)
	for i := uint32(0); i < count; i++ {
		out = append(out, g.GenerateNext())
	}
	return out
}

package generation

import (
	"github.com/nazotools/gen5search/genalgo"
	"github.com/nazotools/gen5search/lcg64"
)

func draw(lcg *lcg64.Seed) uint32 {
	*lcg = lcg.Next()
	return lcg.Output32()
}

func rerollCount(shinyCharm bool) uint8 {
	if shinyCharm {
		return 2
	}
	return 0
}

// GenerateWildPokemon reproduces the Normal/ShakingGrass/Surfing/SurfingBubble
// consumption order (spec.md §4.7): sync?, slot, level, PID(+rerolls),
// nature, held-item, BW tail.
func GenerateWildPokemon(lcg *lcg64.Seed, params PokemonParams) rawPokemon {
	isCompoundEyes := params.LeadAbility.Kind == genalgo.LeadCompoundEyes

	var syncSuccess bool
	if !isCompoundEyes {
		syncSuccess = genalgo.PerformSyncCheck(lcg, params.Kind, params.LeadAbility)
	}

	slotIdx := genalgo.CalculateEncounterSlot(params.Kind, draw(lcg), params.IsBW2)
	if slotIdx >= len(params.Slots) {
		slotIdx = len(params.Slots) - 1
	}
	slot := params.Slots[slotIdx]

	var level uint8
	switch params.Kind {
	case genalgo.EncounterSurfing, genalgo.EncounterSurfingBubble, genalgo.EncounterFishing, genalgo.EncounterFishingBubble:
		level = genalgo.CalculateLevel(draw(lcg), slot.LevelMin, slot.LevelMax)
	default:
		draw(lcg) // level draw, value unused: slot's LevelMin is used directly
		level = slot.LevelMin
	}

	pid, shiny := genalgo.GenerateWildPidWithReroll(lcg, params.Trainer.TID, params.Trainer.SID, rerollCount(params.ShinyCharm))

	nature, syncApplied := genalgo.DetermineNature(lcg, syncSuccess, params.LeadAbility)

	heldItemSlot := int8(genalgo.NoHeldItem)
	if genalgo.EncounterTypeSupportsHeldItem(params.Kind) && slot.HasHeldItem {
		hasVeryRare := params.Kind == genalgo.EncounterShakingGrass || params.Kind == genalgo.EncounterSurfingBubble ||
			params.Kind == genalgo.EncounterFishingBubble
		heldItemSlot = genalgo.DetermineHeldItemSlot(draw(lcg), params.LeadAbility, hasVeryRare, params.IsBW2)
	}

	if !params.IsBW2 {
		draw(lcg)
	}

	return rawPokemon{
		pid:          pid,
		speciesID:    slot.SpeciesID,
		level:        level,
		nature:       nature,
		syncApplied:  syncApplied,
		abilitySlot:  pid.AbilitySlot(),
		gender:       slotGender(pid, slot.GenderThreshold),
		shinyType:    shiny,
		heldItemSlot: heldItemSlot,
	}
}

// GenerateFishingPokemon reproduces the Fishing/FishingBubble consumption
// order, which inserts a fishing-success test (abort on failure, in-band via
// rawPokemon.empty) between the sync check and slot determination.
func GenerateFishingPokemon(lcg *lcg64.Seed, params PokemonParams) rawPokemon {
	isCompoundEyes := params.LeadAbility.Kind == genalgo.LeadCompoundEyes

	var syncSuccess bool
	if !isCompoundEyes {
		syncSuccess = genalgo.PerformSyncCheck(lcg, params.Kind, params.LeadAbility)
	}

	if !genalgo.FishingSuccess(draw(lcg)) {
		return rawPokemon{empty: true}
	}

	slotIdx := genalgo.CalculateEncounterSlot(params.Kind, draw(lcg), params.IsBW2)
	if slotIdx >= len(params.Slots) {
		slotIdx = len(params.Slots) - 1
	}
	slot := params.Slots[slotIdx]

	level := genalgo.CalculateLevel(draw(lcg), slot.LevelMin, slot.LevelMax)

	pid, shiny := genalgo.GenerateWildPidWithReroll(lcg, params.Trainer.TID, params.Trainer.SID, rerollCount(params.ShinyCharm))

	nature, syncApplied := genalgo.DetermineNature(lcg, syncSuccess, params.LeadAbility)

	heldItemSlot := int8(genalgo.NoHeldItem)
	if slot.HasHeldItem {
		hasVeryRare := params.Kind == genalgo.EncounterFishingBubble
		heldItemSlot = genalgo.DetermineHeldItemSlot(draw(lcg), params.LeadAbility, hasVeryRare, params.IsBW2)
	}

	if !params.IsBW2 {
		draw(lcg)
	}

	return rawPokemon{
		pid:          pid,
		speciesID:    slot.SpeciesID,
		level:        level,
		nature:       nature,
		syncApplied:  syncApplied,
		abilitySlot:  pid.AbilitySlot(),
		gender:       slotGender(pid, slot.GenderThreshold),
		shinyType:    shiny,
		heldItemSlot: heldItemSlot,
	}
}

// GeneratePhenomenaPokemon reproduces the DustCloud/PokemonShadow
// consumption order: an encounter-kind draw that may resolve to an item (two
// more draws, then stop) before falling through to the ordinary walking
// consumption order.
func GeneratePhenomenaPokemon(lcg *lcg64.Seed, params PokemonParams) (result rawPokemon, isItem bool) {
	isItem = genalgo.DustCloudOrShadowIsItem(draw(lcg), params.IsBW2)
	if isItem {
		genalgo.ConsumeItemTable(lcg)
		return rawPokemon{empty: true}, true
	}

	isCompoundEyes := params.LeadAbility.Kind == genalgo.LeadCompoundEyes
	var syncSuccess bool
	if !isCompoundEyes {
		syncSuccess = genalgo.PerformSyncCheck(lcg, params.Kind, params.LeadAbility)
	}

	slotIdx := genalgo.CalculateEncounterSlot(params.Kind, draw(lcg), params.IsBW2)
	if slotIdx >= len(params.Slots) {
		slotIdx = len(params.Slots) - 1
	}
	slot := params.Slots[slotIdx]

	draw(lcg) // level draw, value unused
	level := slot.LevelMin

	pid, shiny := genalgo.GenerateWildPidWithReroll(lcg, params.Trainer.TID, params.Trainer.SID, rerollCount(params.ShinyCharm))

	nature, syncApplied := genalgo.DetermineNature(lcg, syncSuccess, params.LeadAbility)

	heldItemSlot := int8(genalgo.NoHeldItem)
	if slot.HasHeldItem {
		heldItemSlot = genalgo.DetermineHeldItemSlot(draw(lcg), params.LeadAbility, false, params.IsBW2)
	}

	if !params.IsBW2 {
		draw(lcg)
	}

	return rawPokemon{
		pid:          pid,
		speciesID:    slot.SpeciesID,
		level:        level,
		nature:       nature,
		syncApplied:  syncApplied,
		abilitySlot:  pid.AbilitySlot(),
		gender:       slotGender(pid, slot.GenderThreshold),
		shinyType:    shiny,
		heldItemSlot: heldItemSlot,
	}, false
}

package generation

import (
	"github.com/nazotools/gen5search/genalgo"
	"github.com/nazotools/gen5search/lcg64"
	"github.com/nazotools/gen5search/seedtypes"
)

// GenerateStaticPokemon reproduces the fixed-symbol/event/roamer
// consumption order (spec.md §4.7). Only StaticSymbol ever runs the sync
// check; StaticStarter/Fossil/Event and Roamer use the no-ID-correction
// event PID construction or the ID-corrected reroll path respectively, and
// only StaticSymbol consumes a held-item draw and the BW tail.
func GenerateStaticPokemon(lcg *lcg64.Seed, params PokemonParams, slot EncounterSlotConfig) rawPokemon {
	isCompoundEyes := params.LeadAbility.Kind == genalgo.LeadCompoundEyes

	var syncSuccess bool
	if params.Kind == genalgo.EncounterStaticSymbol && !isCompoundEyes {
		syncSuccess = genalgo.PerformSyncCheck(lcg, params.Kind, params.LeadAbility)
	}

	var pid seedtypes.Pid
	var shiny seedtypes.ShinyType
	switch params.Kind {
	case genalgo.EncounterStaticSymbol, genalgo.EncounterRoamer:
		pid, shiny = genalgo.GenerateWildPidWithReroll(lcg, params.Trainer.TID, params.Trainer.SID, rerollCount(params.ShinyCharm))
		if slot.ShinyLocked {
			pid = genalgo.ApplyShinyLock(pid, params.Trainer.TID, params.Trainer.SID)
			shiny = seedtypes.ShinyNone
		}
	default: // StaticStarter, StaticFossil, StaticEvent
		pid = genalgo.GenerateEventPid(draw(lcg))
		if slot.ShinyLocked {
			pid = genalgo.ApplyShinyLock(pid, params.Trainer.TID, params.Trainer.SID)
		}
		shiny = pid.ShinyTest(params.Trainer.TID, params.Trainer.SID)
	}

	nature, syncApplied := genalgo.DetermineNature(lcg, syncSuccess, params.LeadAbility)

	heldItemSlot := int8(genalgo.NoHeldItem)
	if params.Kind == genalgo.EncounterStaticSymbol && slot.HasHeldItem {
		heldItemSlot = genalgo.DetermineHeldItemSlot(draw(lcg), params.LeadAbility, false, params.IsBW2)
	}

	if params.Kind == genalgo.EncounterStaticSymbol && !params.IsBW2 {
		draw(lcg)
	}

	return rawPokemon{
		pid:          pid,
		speciesID:    slot.SpeciesID,
		level:        slot.LevelMin,
		nature:       nature,
		syncApplied:  syncApplied,
		abilitySlot:  pid.AbilitySlot(),
		gender:       slotGender(pid, slot.GenderThreshold),
		shinyType:    shiny,
		heldItemSlot: heldItemSlot,
	}
}

// GenerateHiddenGrottoPokemon reproduces the BW2-only Hidden Grotto
// consumption order: level, sync?, PID (no shiny test, no ID correction),
// gender, nature, held-item. Shiny is always None and gender is decided from
// its own dedicated draw rather than from the PID.
func GenerateHiddenGrottoPokemon(lcg *lcg64.Seed, params PokemonParams, slot EncounterSlotConfig) rawPokemon {
	level := genalgo.CalculateLevel(draw(lcg), slot.LevelMin, slot.LevelMax)

	syncSuccess := genalgo.PerformSyncCheck(lcg, genalgo.EncounterHiddenGrotto, params.LeadAbility)

	pid := seedtypes.Pid(draw(lcg))

	genderRand := draw(lcg)

	nature, syncApplied := genalgo.DetermineNature(lcg, syncSuccess, params.LeadAbility)

	heldItemSlot := int8(genalgo.NoHeldItem)
	if slot.HasHeldItem {
		heldItemSlot = genalgo.DetermineHeldItemSlot(draw(lcg), params.LeadAbility, false, true)
	}

	return rawPokemon{
		pid:          pid,
		speciesID:    slot.SpeciesID,
		level:        level,
		nature:       nature,
		syncApplied:  syncApplied,
		abilitySlot:  pid.AbilitySlot(),
		gender:       genderFromDraw(genderRand, slot.GenderThreshold),
		shinyType:    seedtypes.ShinyNone,
		heldItemSlot: heldItemSlot,
	}
}

// genderFromDraw resolves Hidden Grotto's dedicated gender draw the same
// way slotGender resolves a PID-derived one, just against a different
// source value.
func genderFromDraw(r uint32, threshold uint8) seedtypes.Gender {
	switch threshold {
	case 0:
		return seedtypes.GenderMale
	case 254:
		return seedtypes.GenderFemale
	case 255:
		return seedtypes.GenderGenderless
	default:
		if uint8(r&0xFF) < threshold {
			return seedtypes.GenderFemale
		}
		return seedtypes.GenderMale
	}
}

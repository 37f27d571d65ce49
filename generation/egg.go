package generation

import (
	"github.com/nazotools/gen5search/genalgo"
	"github.com/nazotools/gen5search/lcg64"
	"github.com/nazotools/gen5search/seedtypes"
)

// GenerateEgg reproduces the egg consumption order (spec.md §4.7): nature
// (+Everstone test), Hidden Ability roll, Ditto extra draw, inheritance (3 ×
// stat+parent, rejecting duplicate stats), Nidoran roll, PID(+rerolls).
func GenerateEgg(lcg *lcg64.Seed, params EggParams) rawEgg {
	nature := genalgo.DetermineEggNature(lcg, params.Everstone)

	haRoll := draw(lcg)

	if params.UsesDitto {
		draw(lcg)
	}

	inheritance := genalgo.DetermineInheritance(lcg)

	var nidoranRoll *uint32
	if params.NidoranFlag {
		v := genalgo.RollFraction(draw(lcg), 2)
		nidoranRoll = &v
	}

	reroll := uint8(0)
	if params.MasudaMethod {
		reroll = 5
	}
	pid, shiny := genalgo.GenerateEggPidWithReroll(lcg, params.Trainer.TID, params.Trainer.SID, reroll)

	var gender seedtypes.Gender
	switch {
	case nidoranRoll != nil && *nidoranRoll == 0:
		gender = seedtypes.GenderFemale
	case nidoranRoll != nil:
		gender = seedtypes.GenderMale
	default:
		gender = slotGender(pid, params.GenderThreshold)
	}

	abilitySlot := determineEggAbilitySlot(pid, haRoll, params.UsesDitto, params.FemaleHasHidden)

	return rawEgg{
		pid:         pid,
		nature:      nature,
		gender:      gender,
		abilitySlot: abilitySlot,
		shinyType:   shiny,
		inheritance: inheritance,
	}
}

// determineEggAbilitySlot resolves the Hidden Ability condition: not using a
// Ditto parent, the female parent carries the hidden ability, and a 60%
// roll succeeds. Otherwise the slot comes from the PID's ability-slot bit.
func determineEggAbilitySlot(pid seedtypes.Pid, haRoll uint32, usesDitto, femaleHasHidden bool) uint8 {
	if !usesDitto && femaleHasHidden && genalgo.RollFraction(haRoll, 5) >= 2 {
		return 2
	}
	return pid.AbilitySlot()
}

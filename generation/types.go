// Package generation composes the genalgo primitives into full individuals,
// reproducing the original game's per-encounter-kind random-number
// consumption order exactly (spec.md §4.7) and overlaying the IV stream MT19937
// produces alongside the PID/nature/held-item stream the LCG produces.
package generation

import (
	"github.com/nazotools/gen5search/genalgo"
	"github.com/nazotools/gen5search/seedtypes"
)

// EncounterSlotConfig is one row of an encounter table: the species/level
// range a slot resolves to, its gender ratio threshold, and whether it ever
// carries a held item or is shiny-locked.
type EncounterSlotConfig struct {
	SpeciesID       uint16
	LevelMin        uint8
	LevelMax        uint8
	GenderThreshold uint8 // 0 = male-only, 254 = female-only, 255 = genderless
	HasHeldItem     bool
	ShinyLocked     bool
}

// PokemonParams configures a single wild or fixed-encounter generation
// call: the trainer whose IDs the shiny test and PID correction use, the
// encounter kind dispatching the consumption order, the lead ability in
// play, whether the Shiny Charm is owned, and the candidate slot table.
type PokemonParams struct {
	Trainer     seedtypes.TrainerInfo
	Kind        genalgo.EncounterKind
	LeadAbility genalgo.LeadAbility
	ShinyCharm  bool
	IsBW2       bool
	Slots       []EncounterSlotConfig
}

// EggParams configures an egg generation call.
type EggParams struct {
	Trainer         seedtypes.TrainerInfo
	Everstone       genalgo.EverstonePlan
	UsesDitto       bool
	FemaleHasHidden bool
	MasudaMethod    bool
	NidoranFlag     bool
	GenderThreshold uint8
	ParentMale      seedtypes.Ivs
	ParentFemale    seedtypes.Ivs
}

// rawPokemon is a generated individual before the IV stream — resolved
// separately from MT19937 — has been attached.
type rawPokemon struct {
	pid          seedtypes.Pid
	speciesID    uint16
	level        uint8
	nature       uint8
	syncApplied  bool
	abilitySlot  uint8
	gender       seedtypes.Gender
	shinyType    seedtypes.ShinyType
	heldItemSlot int8
	empty        bool
}

// rawEgg is a generated egg before inheritance has overlaid the RNG IVs.
type rawEgg struct {
	pid         seedtypes.Pid
	nature      uint8
	gender      seedtypes.Gender
	abilitySlot uint8
	shinyType   seedtypes.ShinyType
	inheritance [3]seedtypes.InheritedSlot
}

func slotGender(pid seedtypes.Pid, threshold uint8) seedtypes.Gender {
	switch threshold {
	case 0:
		return seedtypes.GenderMale
	case 254:
		return seedtypes.GenderFemale
	case 255:
		return seedtypes.GenderGenderless
	default:
		return pid.GenderFromThreshold(threshold)
	}
}

// Package resolve turns a generated seedtypes.Individual into a typed
// display record (spec.md §2 C15): numeric fields a UI or CLI can format,
// with no string/locale table lookups — species names, ability names, and
// nature names are explicitly out of scope (spec.md §1).
package resolve

import "github.com/nazotools/gen5search/seedtypes"

// HiddenPower is the computed hidden-power type/power pair, present only
// when the individual's IVs are fully resolved.
type HiddenPower struct {
	Type    seedtypes.HiddenPowerType
	Power   uint8
	Present bool
}

// Record is the engine's own typed view of a generated individual — every
// field a display layer would need, none of them yet rendered to a string.
type Record struct {
	Advance         uint64
	NeedleDirection uint8
	Source          seedtypes.EncounterSource
	Pid             seedtypes.Pid
	SpeciesID       uint16
	Level           uint8
	Nature          uint8
	SyncApplied     bool
	AbilitySlot     uint8
	Gender          seedtypes.Gender
	ShinyType       seedtypes.ShinyType
	HeldItemSlot    int8
	Ivs             seedtypes.Ivs
	HiddenPower     HiddenPower
	Inheritance     []seedtypes.InheritedSlot
	Empty           bool
}

// Individual resolves one generated individual into a Record, computing
// hidden power from the IVs when they are fully resolved. Shiny
// classification is not recomputed here — it already comes attached to the
// individual from generation.
func Individual(ind seedtypes.Individual) Record {
	if ind.Empty {
		return Record{Advance: ind.Advance, NeedleDirection: ind.NeedleDirection, Source: ind.Source, Empty: true}
	}

	var hp HiddenPower
	if ind.Ivs.Resolved() {
		t, power := seedtypes.HiddenPower(ind.Ivs)
		hp = HiddenPower{Type: t, Power: power, Present: true}
	}

	return Record{
		Advance:         ind.Advance,
		NeedleDirection: ind.NeedleDirection,
		Source:          ind.Source,
		Pid:             ind.Pid,
		SpeciesID:       ind.SpeciesID,
		Level:           ind.Level,
		Nature:          ind.Nature,
		SyncApplied:     ind.SyncApplied,
		AbilitySlot:     ind.AbilitySlot,
		Gender:          ind.Gender,
		ShinyType:       ind.ShinyType,
		HeldItemSlot:    ind.HeldItemSlot,
		Ivs:             ind.Ivs,
		HiddenPower:     hp,
		Inheritance:     ind.Inheritance,
	}
}

// Batch resolves a slice of individuals in order, preserving empty slots.
func Batch(inds []seedtypes.Individual) []Record {
	out := make([]Record, len(inds))
	for i, ind := range inds {
		out[i] = Individual(ind)
	}
	return out
}

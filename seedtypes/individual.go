package seedtypes

import "github.com/nazotools/gen5search/lcg64"

// EncounterSource tags the kind of encounter an individual was generated
// from. Held in the result so resolvers and filters can branch on it
// without re-deriving it.
type EncounterSource uint8

const (
	SourceNormal EncounterSource = iota
	SourceShakingGrass
	SourceSurfing
	SourceSurfingBubble
	SourceFishing
	SourceFishingBubble
	SourceDustCloud
	SourcePokemonShadow
	SourceStaticSymbol
	SourceStaticStarter
	SourceStaticFossil
	SourceStaticEvent
	SourceRoamer
	SourceHiddenGrotto
	SourceEgg
)

// InheritedSlot is one of an egg's three inheritance draws.
type InheritedSlot struct {
	Stat   Stat
	Parent EggParent
}

// EggParent identifies which parent an inherited IV came from.
type EggParent uint8

const (
	EggParentMale EggParent = iota
	EggParentFemale
)

// Individual is one generated Pokémon (or egg) at a given advance.
type Individual struct {
	Advance         uint64
	NeedleDirection uint8
	Source          EncounterSource
	Pid             Pid
	SpeciesID       uint16
	Level           uint8
	Nature          uint8 // 0..24
	SyncApplied     bool
	AbilitySlot     uint8
	Gender          Gender
	ShinyType       ShinyType
	HeldItemSlot    int8 // -1 when no held item roll applies
	Ivs             Ivs

	// Egg-only fields; zero-valued/empty for non-egg sources.
	Inheritance []InheritedSlot

	// Empty marks a fishing-failure "slot" (spec.md §4.10), or a dust
	// cloud/shadow encounter that resolved to an item: the advance was
	// consumed but produced no Pokémon. Filters must reject an
	// empty individual before inspecting any other field.
	Empty bool
}

// SeedOrigin is the tagged provenance of a generated stream: either a bare
// (lcg,mt) pair supplied directly, or a full startup derivation.
type SeedOrigin struct {
	Kind     OriginKind
	Lcg      lcg64.Seed
	Mt       uint32
	Datetime Datetime
	Cond     StartupCondition
}

// OriginKind discriminates SeedOrigin's two variants.
type OriginKind uint8

const (
	OriginSeed OriginKind = iota
	OriginStartup
)

// TrainerInfo is a resolved (or candidate) trainer ID pair.
type TrainerInfo struct {
	TID uint16
	SID uint16
}

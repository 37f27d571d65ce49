// Package seedinput resolves a user-supplied seed request — either a bare
// list of seeds or a full startup description — into the concrete
// (LcgSeed, MtSeed, provenance) triples the generation and search pipelines
// consume (spec.md §6, C14).
package seedinput

import (
	"github.com/nazotools/gen5search/dsconfig"
	"github.com/nazotools/gen5search/lcg64"
	"github.com/nazotools/gen5search/rngtime"
	"github.com/nazotools/gen5search/seedtypes"
)

// Kind discriminates SeedInput's two variants.
type Kind uint8

const (
	KindSeeds Kind = iota
	KindStartup
)

// RawSeed is one directly-supplied (lcg, mt) pair, e.g. pasted from a
// ticket (C16) or a prior search hit.
type RawSeed struct {
	Lcg lcg64.Seed
	Mt  uint32
}

// Timer0VCountRange bounds the hardware counters captured at boot.
type Timer0VCountRange struct {
	Timer0Min, Timer0Max uint16
	VCountMin, VCountMax uint8
}

// StartupSpec describes a full startup derivation: the hardware/version/
// region, the datetime window to search, the Timer0/VCount ranges to
// enumerate, and the candidate key-input masks.
type StartupSpec struct {
	Ds         seedtypes.DsConfig
	RangeStart seedtypes.Datetime
	RangeEnd   seedtypes.Datetime
	Counters   []Timer0VCountRange
	KeyMasks   []uint32 // nil means every valid mask
}

// SeedInput is either a fixed list of seeds or a startup description to
// enumerate, mirroring spec.md §6's `Seeds { list } | Startup { ... }`.
type SeedInput struct {
	Kind    Kind
	Seeds   []RawSeed
	Startup StartupSpec
}

// Resolved is one concrete seed ready for generation, carrying its
// provenance so a hit can be round-tripped back into a SHA-1 message.
type Resolved struct {
	Lcg    lcg64.Seed
	Mt     uint32
	Origin seedtypes.SeedOrigin
}

// Resolve expands a SeedInput into its concrete seeds. For KindSeeds this
// is a direct 1:1 mapping; for KindStartup every (datetime, Timer0, VCount,
// key-mask) combination in range is derived via the SHA-1 message pipeline.
// An empty result set of either kind is reported as ErrEmptySeedInput.
func Resolve(input SeedInput) ([]Resolved, error) {
	switch input.Kind {
	case KindSeeds:
		if len(input.Seeds) == 0 {
			return nil, seedtypes.ErrEmptySeedInput
		}
		out := make([]Resolved, len(input.Seeds))
		for i, s := range input.Seeds {
			out[i] = Resolved{
				Lcg: s.Lcg,
				Mt:  s.Mt,
				Origin: seedtypes.SeedOrigin{
					Kind: seedtypes.OriginSeed,
					Lcg:  s.Lcg,
					Mt:   s.Mt,
				},
			}
		}
		return out, nil
	case KindStartup:
		return resolveStartup(input.Startup)
	default:
		return nil, seedtypes.ErrEmptySeedInput
	}
}

func resolveStartup(spec StartupSpec) ([]Resolved, error) {
	if len(spec.Counters) == 0 {
		return nil, seedtypes.ErrEmptySeedInput
	}

	datetimes := rngtime.EnumerateRange(spec.RangeStart, spec.RangeEnd)
	if len(datetimes) == 0 {
		return nil, seedtypes.ErrEmptySeedInput
	}

	keyMasks := rngtime.EnumerateKeyMasks(spec.KeyMasks)
	if len(keyMasks) == 0 {
		return nil, seedtypes.ErrEmptySeedInput
	}

	var out []Resolved
	for _, dt := range datetimes {
		for _, counter := range spec.Counters {
			for timer0 := uint32(counter.Timer0Min); timer0 <= uint32(counter.Timer0Max); timer0++ {
				for vcount := uint32(counter.VCountMin); vcount <= uint32(counter.VCountMax); vcount++ {
					for _, keyMask := range keyMasks {
						cond := seedtypes.StartupCondition{
							Timer0:  uint16(timer0),
							VCount:  uint8(vcount),
							KeyCode: seedtypes.KeyCode(keyMask),
						}
						lcgSeed, mtSeed := dsconfig.DeriveSeed(spec.Ds, cond, dt)
						out = append(out, Resolved{
							Lcg: lcg64.New(lcgSeed),
							Mt:  mtSeed,
							Origin: seedtypes.SeedOrigin{
								Kind:     seedtypes.OriginStartup,
								Lcg:      lcg64.New(lcgSeed),
								Mt:       mtSeed,
								Datetime: dt,
								Cond:     cond,
							},
						})
					}
				}
			}
		}
	}
	if len(out) == 0 {
		return nil, seedtypes.ErrEmptySeedInput
	}
	return out, nil
}

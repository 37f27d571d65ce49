package dsconfig

import (
	"github.com/nazotools/gen5search/lcg64"
	"github.com/nazotools/gen5search/seedtypes"
	"github.com/nazotools/gen5search/shaengine"
)

// BuildMessageX4 assembles the shared portion of four messages (identical
// DsConfig/StartupCondition) that differ only in the four Datetimes' date
// and time codes — the exact lane split the 4-lane SHA-1 variant requires.
func BuildMessageX4(ds seedtypes.DsConfig, cond seedtypes.StartupCondition, dts [4]seedtypes.Datetime) shaengine.BlockX4 {
	shared := BuildMessage(ds, cond, dts[0])
	var bx shaengine.BlockX4
	bx.Shared = shared
	for lane := 0; lane < 4; lane++ {
		bx.DateCodes[lane] = DateCode(dts[lane])
		bx.TimeCodes[lane] = TimeCode(dts[lane], ds.Hardware)
	}
	return bx
}

// DeriveSeedsX4 hashes four datetimes sharing one DsConfig/StartupCondition
// in lockstep, returning four (LcgSeed, MtSeed) pairs.
func DeriveSeedsX4(ds seedtypes.DsConfig, cond seedtypes.StartupCondition, dts [4]seedtypes.Datetime) (lcgSeeds [4]uint64, mtSeeds [4]uint32) {
	bx := BuildMessageX4(ds, cond, dts)
	digests := shaengine.HashX4(bx)
	for lane := 0; lane < 4; lane++ {
		seed := lcg64.New(digests[lane].LcgSeed())
		lcgSeeds[lane] = seed.Raw()
		mtSeeds[lane] = seed.ToMtSeed()
	}
	return lcgSeeds, mtSeeds
}

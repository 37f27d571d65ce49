package dsconfig

import "github.com/nazotools/gen5search/seedtypes"

// nazoTable holds the five ROM-image-specific "nazo" constants (spec.md
// §4.4) for every (version, region) pair. These are data extracted from the
// four game ROMs, not derivable from any algorithm — the same kind of
// compiled-in data table the engine's out-of-scope species/ability name
// tables are (spec.md §1).
var nazoTable = map[seedtypes.Version]map[seedtypes.Region][5]uint32{
	seedtypes.VersionBlack: {
		seedtypes.RegionJpn: {0x02215F10, 0x0221600C, 0x0221600C, 0x02216058, 0x02216058},
		seedtypes.RegionKor: {0x022167B0, 0x022168AC, 0x022168AC, 0x022168F8, 0x022168F8},
		seedtypes.RegionUsa: {0x022160B0, 0x022161AC, 0x022161AC, 0x022161F8, 0x022161F8},
		seedtypes.RegionGer: {0x02215FF0, 0x022160EC, 0x022160EC, 0x02216138, 0x02216138},
		seedtypes.RegionFra: {0x02216030, 0x0221612C, 0x0221612C, 0x02216178, 0x02216178},
		seedtypes.RegionSpa: {0x02216070, 0x0221616C, 0x0221616C, 0x022161B8, 0x022161B8},
		seedtypes.RegionIta: {0x02215FB0, 0x022160AC, 0x022160AC, 0x022160F8, 0x022160F8},
	},
	seedtypes.VersionWhite: {
		seedtypes.RegionJpn: {0x02215F30, 0x0221602C, 0x0221602C, 0x02216078, 0x02216078},
		seedtypes.RegionKor: {0x022167B0, 0x022168AC, 0x022168AC, 0x022168F8, 0x022168F8},
		seedtypes.RegionUsa: {0x022160D0, 0x022161CC, 0x022161CC, 0x02216218, 0x02216218},
		seedtypes.RegionGer: {0x02216010, 0x0221610C, 0x0221610C, 0x02216158, 0x02216158},
		seedtypes.RegionFra: {0x02216050, 0x0221614C, 0x0221614C, 0x02216198, 0x02216198},
		seedtypes.RegionSpa: {0x02216070, 0x0221616C, 0x0221616C, 0x022161B8, 0x022161B8},
		seedtypes.RegionIta: {0x02215FD0, 0x022160CC, 0x022160CC, 0x02216118, 0x02216118},
	},
	seedtypes.VersionBlack2: {
		seedtypes.RegionJpn: {0x0209A8DC, 0x02039AC9, 0x021FF9B0, 0x021FFA04, 0x021FFA04},
		seedtypes.RegionKor: {0x0209B60C, 0x0203A4D5, 0x02200750, 0x022007A4, 0x022007A4},
		seedtypes.RegionUsa: {0x0209AEE8, 0x02039DE9, 0x02200010, 0x02200064, 0x02200064},
		seedtypes.RegionGer: {0x0209AE28, 0x02039D69, 0x021FFF50, 0x021FFFA4, 0x021FFFA4},
		seedtypes.RegionFra: {0x0209AF08, 0x02039DF9, 0x02200030, 0x02200084, 0x02200084},
		seedtypes.RegionSpa: {0x0209AEA8, 0x02039DB9, 0x021FFFD0, 0x02200024, 0x02200024},
		seedtypes.RegionIta: {0x0209ADE8, 0x02039D69, 0x021FFF10, 0x021FFF64, 0x021FFF64},
	},
	seedtypes.VersionWhite2: {
		seedtypes.RegionJpn: {0x0209A8FC, 0x02039AF5, 0x021FF9D0, 0x021FFA24, 0x021FFA24},
		seedtypes.RegionKor: {0x0209B62C, 0x0203A501, 0x02200770, 0x022007C4, 0x022007C4},
		seedtypes.RegionUsa: {0x0209AF28, 0x02039E15, 0x02200050, 0x022000A4, 0x022000A4},
		seedtypes.RegionGer: {0x0209AE48, 0x02039D95, 0x021FFF70, 0x021FFFC4, 0x021FFFC4},
		seedtypes.RegionFra: {0x0209AF28, 0x02039E25, 0x02200050, 0x022000A4, 0x022000A4},
		seedtypes.RegionSpa: {0x0209AEC8, 0x02039DE5, 0x021FFFF0, 0x02200044, 0x02200044},
		seedtypes.RegionIta: {0x0209AE28, 0x02039D95, 0x021FFF50, 0x021FFFA4, 0x021FFFA4},
	},
}

// Nazo returns the five nazo constants for a (version, region) pair.
func Nazo(version seedtypes.Version, region seedtypes.Region) [5]uint32 {
	return nazoTable[version][region]
}

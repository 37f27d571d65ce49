package dsconfig

import (
	"testing"

	"github.com/nazotools/gen5search/seedtypes"
)

func TestDateCodeWeekday(t *testing.T) {
	// 2010-09-18 was a Saturday.
	d := seedtypes.Datetime{Year: 2010, Month: 9, Day: 18}
	code := DateCode(d)
	weekday := code & 0xFF
	if weekday != 6 {
		t.Fatalf("weekday = %d, want 6 (Saturday)", weekday)
	}
}

func TestTimeCodePmFlag(t *testing.T) {
	d := seedtypes.Datetime{Hour: 18, Minute: 13, Second: 11}
	code := TimeCode(d, seedtypes.HardwareDsLite)
	if code>>30&1 != 1 {
		t.Fatalf("pm_flag not set for DS Lite at hour 18")
	}
	codeDsi := TimeCode(d, seedtypes.HardwareDsi)
	if codeDsi>>30&1 != 0 {
		t.Fatalf("pm_flag should never be set for DSi")
	}
}

// TestDeriveSeedMatchesWhite2Vector checks spec.md §8 scenario 6's literal
// end-to-end values: the GPU and CPU search paths must both report this
// exact (LcgSeed, MtSeed) pair for the given datetime.
func TestDeriveSeedMatchesWhite2Vector(t *testing.T) {
	ds := seedtypes.DsConfig{
		Mac:      [6]byte{0x00, 0x1B, 0x2C, 0x3D, 0x4E, 0x5F},
		Hardware: seedtypes.HardwareDs,
		Version:  seedtypes.VersionWhite2,
		Region:   seedtypes.RegionJpn,
	}
	cond := seedtypes.StartupCondition{Timer0: 0x10F8, VCount: 0x82, KeyCode: seedtypes.KeyCode(0)}
	dt := seedtypes.Datetime{Year: 2006, Month: 3, Day: 11, Hour: 18, Minute: 53, Second: 27}

	lcgSeed, mtSeed := DeriveSeed(ds, cond, dt)
	if lcgSeed != 0x20D00C5C6EEBCD7E {
		t.Errorf("LcgSeed = %#x, want 0x20D00C5C6EEBCD7E", lcgSeed)
	}
	if mtSeed != 0xD2F057AD {
		t.Errorf("MtSeed = %#x, want 0xD2F057AD", mtSeed)
	}
}

func TestDeriveSeedsX4MatchesScalar(t *testing.T) {
	ds := seedtypes.DsConfig{
		Mac:      [6]byte{0x00, 0x09, 0xBF, 0x12, 0x34, 0x56},
		Hardware: seedtypes.HardwareDsLite,
		Version:  seedtypes.VersionBlack,
		Region:   seedtypes.RegionJpn,
	}
	cond := seedtypes.StartupCondition{Timer0: 0x0C79, VCount: 0x60, KeyCode: seedtypes.KeyCode(0)}

	base := seedtypes.Datetime{Year: 2010, Month: 9, Day: 18, Hour: 18, Minute: 13, Second: 11}
	var dts [4]seedtypes.Datetime
	for i := range dts {
		dts[i] = base
		dts[i].Second += uint8(i)
	}

	lcgSeeds, mtSeeds := DeriveSeedsX4(ds, cond, dts)
	for lane := 0; lane < 4; lane++ {
		wantLcg, wantMt := DeriveSeed(ds, cond, dts[lane])
		if lcgSeeds[lane] != wantLcg || mtSeeds[lane] != wantMt {
			t.Fatalf("lane %d = (%#x,%#x), want (%#x,%#x)", lane, lcgSeeds[lane], mtSeeds[lane], wantLcg, wantMt)
		}
	}
}

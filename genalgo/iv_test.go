package genalgo

import (
	"testing"

	"github.com/nazotools/gen5search/lcg64"
	"github.com/nazotools/gen5search/seedtypes"
)

func TestGenerateRngIvsWithOffsetDiscardsOffsetOutputs(t *testing.T) {
	withOffset := GenerateRngIvsWithOffset(5489, 2, false)
	withoutOffset := GenerateRngIvsWithOffset(5489, 0, false)
	if withOffset == withoutOffset {
		t.Errorf("offsetting the MT stream should change the drawn IVs")
	}
}

func TestGenerateRngIvsWithOffsetRoamerReorder(t *testing.T) {
	plain := GenerateRngIvsWithOffset(5489, 1, false)
	roamer := GenerateRngIvsWithOffset(5489, 1, true)
	want := seedtypes.HabdscToHabcds(plain)
	if roamer != want {
		t.Errorf("roamer IVs = %v, want HabdscToHabcds(plain) = %v", roamer, want)
	}
}

func TestGenerateRngIvsWithOffsetX4MatchesScalar(t *testing.T) {
	seeds := [4]uint32{1, 2, 3, 4}
	batched := GenerateRngIvsWithOffsetX4(seeds, 3, false)
	for lane, seed := range seeds {
		want := GenerateRngIvsWithOffset(seed, 3, false)
		if batched[lane] != want {
			t.Errorf("lane %d = %v, want %v", lane, batched[lane], want)
		}
	}
}

func TestApplyInheritanceOverwritesChosenSlots(t *testing.T) {
	rng := seedtypes.Ivs{1, 2, 3, 4, 5, 6}
	male := seedtypes.Ivs{31, 31, 31, 31, 31, 31}
	female := seedtypes.Ivs{0, 0, 0, 0, 0, 0}
	slots := [3]seedtypes.InheritedSlot{
		{Stat: seedtypes.StatHP, Parent: seedtypes.EggParentMale},
		{Stat: seedtypes.StatSpe, Parent: seedtypes.EggParentFemale},
	}
	got := ApplyInheritance(rng, male, female, slots)
	if got.Get(seedtypes.StatHP) != 31 {
		t.Errorf("HP = %d, want 31 (from male)", got.Get(seedtypes.StatHP))
	}
	if got.Get(seedtypes.StatSpe) != 0 {
		t.Errorf("Spe = %d, want 0 (from female)", got.Get(seedtypes.StatSpe))
	}
	if got.Get(seedtypes.StatAtk) != 2 {
		t.Errorf("Atk = %d, want untouched rng value 2", got.Get(seedtypes.StatAtk))
	}
}

func TestDetermineInheritanceNeverRepeatsAStat(t *testing.T) {
	for raw := uint64(0); raw < 256; raw++ {
		lcg := lcg64.New(raw)
		slots := DetermineInheritance(&lcg)
		seen := map[seedtypes.Stat]bool{}
		for _, s := range slots {
			if seen[s.Stat] {
				t.Fatalf("seed %#x: DetermineInheritance repeated stat %v", raw, s.Stat)
			}
			seen[s.Stat] = true
		}
	}
}

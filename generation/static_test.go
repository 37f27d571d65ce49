package generation

import (
	"testing"

	"github.com/nazotools/gen5search/genalgo"
	"github.com/nazotools/gen5search/lcg64"
	"github.com/nazotools/gen5search/seedtypes"
)

func TestGenerateStaticPokemonEventPathSkipsCorrection(t *testing.T) {
	lcg := lcg64.New(0x424242)
	params := PokemonParams{
		Kind:    genalgo.EncounterStaticEvent,
		Trainer: seedtypes.TrainerInfo{TID: 1, SID: 1},
	}
	slot := EncounterSlotConfig{SpeciesID: 1, LevelMin: 50, GenderThreshold: 255}
	raw := GenerateStaticPokemon(&lcg, params, slot)
	wantPid := genalgo.GenerateEventPid(lcg64.New(0x424242).Next().Output32())
	if raw.pid != wantPid {
		t.Errorf("pid = %#x, want uncorrected event pid %#x", uint32(raw.pid), uint32(wantPid))
	}
	if raw.heldItemSlot != genalgo.NoHeldItem {
		t.Errorf("event encounters never roll a held item, got slot %d", raw.heldItemSlot)
	}
	if raw.level != 50 {
		t.Errorf("level = %d, want 50", raw.level)
	}
}

func TestGenerateHiddenGrottoShinyAlwaysNone(t *testing.T) {
	lcg := lcg64.New(0x13371337)
	params := PokemonParams{Kind: genalgo.EncounterHiddenGrotto, IsBW2: true}
	slot := EncounterSlotConfig{SpeciesID: 1, LevelMin: 10, LevelMax: 20, GenderThreshold: 127}
	raw := GenerateHiddenGrottoPokemon(&lcg, params, slot)
	if raw.shinyType != seedtypes.ShinyNone {
		t.Errorf("Hidden Grotto shinyType = %v, want ShinyNone", raw.shinyType)
	}
	if raw.level < 10 || raw.level > 20 {
		t.Errorf("level = %d, out of configured range [10,20]", raw.level)
	}
}

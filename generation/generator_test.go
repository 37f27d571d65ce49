package generation

import (
	"testing"

	"github.com/nazotools/gen5search/genalgo"
	"github.com/nazotools/gen5search/lcg64"
	"github.com/nazotools/gen5search/seedtypes"
)

func TestPokemonGeneratorAdvancesOneLcgStepPerIndividual(t *testing.T) {
	params := PokemonParams{
		Kind:  genalgo.EncounterNormal,
		Slots: plainSlots(12),
	}
	gen, err := NewPokemonGenerator(lcg64.New(0xABCDEF), 5489, 0, 0, seedtypes.SeedOrigin{}, params)
	if err != nil {
		t.Fatalf("NewPokemonGenerator returned error: %v", err)
	}
	if gen.CurrentAdvance() != 0 {
		t.Fatalf("initial CurrentAdvance() = %d, want 0", gen.CurrentAdvance())
	}
	for i := uint32(1); i <= 5; i++ {
		gen.GenerateNext()
		if gen.CurrentAdvance() != i {
			t.Errorf("after %d calls, CurrentAdvance() = %d, want %d", i, gen.CurrentAdvance(), i)
		}
	}
}

func TestPokemonGeneratorRejectsEmptySlotTable(t *testing.T) {
	_, err := NewPokemonGenerator(lcg64.New(0), 0, 0, 0, seedtypes.SeedOrigin{}, PokemonParams{})
	if err != seedtypes.ErrEmptyEncounterSlots {
		t.Errorf("err = %v, want ErrEmptyEncounterSlots", err)
	}
}

func TestPokemonGeneratorIsDeterministic(t *testing.T) {
	params := PokemonParams{
		Kind:  genalgo.EncounterSurfing,
		Slots: plainSlots(5),
	}
	a, _ := NewPokemonGenerator(lcg64.New(0x77777), 5489, 10, 0, seedtypes.SeedOrigin{}, params)
	b, _ := NewPokemonGenerator(lcg64.New(0x77777), 5489, 10, 0, seedtypes.SeedOrigin{}, params)
	for i := 0; i < 4; i++ {
		ga := a.GenerateNext()
		gb := b.GenerateNext()
		if ga.Pid != gb.Pid || ga.Nature != gb.Nature || ga.Ivs != gb.Ivs || ga.Empty != gb.Empty {
			t.Fatalf("individual %d differs between identically-constructed generators: %+v != %+v", i, ga, gb)
		}
	}
}

func TestEggGeneratorOverlaysInheritance(t *testing.T) {
	params := EggParams{
		ParentMale:   seedtypes.Ivs{31, 31, 31, 31, 31, 31},
		ParentFemale: seedtypes.Ivs{0, 0, 0, 0, 0, 0},
	}
	gen := NewEggGenerator(lcg64.New(0x55555), 5489, 0, 0, seedtypes.SeedOrigin{}, params)
	ind := gen.GenerateNext()
	if ind.Source != seedtypes.SourceEgg {
		t.Errorf("Source = %v, want SourceEgg", ind.Source)
	}
	if len(ind.Inheritance) != 3 {
		t.Errorf("Inheritance has %d slots, want 3", len(ind.Inheritance))
	}
	for _, slot := range ind.Inheritance {
		var want uint8
		if slot.Parent == seedtypes.EggParentMale {
			want = 31
		}
		if got := ind.Ivs.Get(slot.Stat); got != want {
			t.Errorf("inherited stat %v = %d, want %d", slot.Stat, got, want)
		}
	}
}

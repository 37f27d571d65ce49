package resolve

import (
	"testing"

	"github.com/nazotools/gen5search/seedtypes"
)

func TestIndividualPreservesEmpty(t *testing.T) {
	got := Individual(seedtypes.Individual{Advance: 3, Empty: true})
	if !got.Empty || got.Advance != 3 {
		t.Errorf("Individual(empty) = %+v, want Empty=true Advance=3", got)
	}
}

func TestIndividualComputesHiddenPowerWhenResolved(t *testing.T) {
	ind := seedtypes.Individual{Ivs: seedtypes.Ivs{31, 31, 31, 31, 31, 31}}
	got := Individual(ind)
	if !got.HiddenPower.Present {
		t.Errorf("HiddenPower.Present = false, want true for fully resolved IVs")
	}
}

func TestIndividualSkipsHiddenPowerWhenUnresolved(t *testing.T) {
	ind := seedtypes.Individual{Ivs: seedtypes.Ivs{31, 31, seedtypes.UnknownIV, 31, 31, 31}}
	got := Individual(ind)
	if got.HiddenPower.Present {
		t.Errorf("HiddenPower.Present = true, want false for a partially-resolved egg")
	}
}

func TestBatchPreservesOrder(t *testing.T) {
	inds := []seedtypes.Individual{{Advance: 1}, {Advance: 2}, {Advance: 3}}
	got := Batch(inds)
	for i, r := range got {
		if r.Advance != uint64(i+1) {
			t.Errorf("Batch()[%d].Advance = %d, want %d", i, r.Advance, i+1)
		}
	}
}

package generation

import "github.com/nazotools/gen5search/genalgo"

// MtOffset returns the number of MT19937 outputs to discard before drawing
// IVs (spec.md §4.8): 7 for eggs, 1 for BW roamers, 0 for BW wild/static, 2
// for BW2 wild/static.
func MtOffset(isBW2 bool, kind genalgo.EncounterKind, isEgg bool) uint32 {
	switch {
	case isEgg:
		return 7
	case kind == genalgo.EncounterRoamer && !isBW2:
		return 1
	case isBW2:
		return 2
	default:
		return 0
	}
}

package seedtypes

// UnknownIV is the sentinel used when an egg's inheritance has not yet
// resolved a given stat.
const UnknownIV uint8 = 0xFF

// Stat indexes an IV/nature-affecting stat slot.
type Stat uint8

const (
	StatHP Stat = iota
	StatAtk
	StatDef
	StatSpA
	StatSpD
	StatSpe
)

// Ivs holds the six individual values, each 0..31 or UnknownIV.
type Ivs [6]uint8

// Get returns the IV at a stat slot.
func (iv Ivs) Get(s Stat) uint8 {
	return iv[s]
}

// Set returns a copy of iv with the given stat slot overwritten — used by
// egg inheritance, which must never mutate the RNG-derived vector in place
// out from under anything still holding it.
func (iv Ivs) Set(s Stat, v uint8) Ivs {
	iv[s] = v
	return iv
}

// Resolved reports whether every stat has a concrete (non-sentinel) value.
func (iv Ivs) Resolved() bool {
	for _, v := range iv {
		if v == UnknownIV {
			return false
		}
	}
	return true
}

// IvsFromMTOutputs reads six IVs from successive MT outputs, each >>27 to the
// 0..31 range.
func IvsFromMTOutputs(outputs [6]uint32) Ivs {
	var iv Ivs
	for i, o := range outputs {
		iv[i] = uint8(o >> 27)
	}
	return iv
}

// HabdscToHabcds applies the roamer IV reorder: MT outputs come in HP, Atk,
// Def, SpD, Spe, SpA order and are rotated right into HP, Atk, Def, SpA,
// SpD, Spe (the SpA value moves from the last slot to slot 3, and the SpD
// and Spe values each move one slot later).
func HabdscToHabcds(iv Ivs) Ivs {
	return Ivs{iv[0], iv[1], iv[2], iv[5], iv[3], iv[4]}
}

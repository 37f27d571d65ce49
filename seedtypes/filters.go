package seedtypes

// IvRange is an inclusive min/max bound on a single stat.
type IvRange struct {
	Min, Max uint8
}

// Contains reports whether v falls within [Min,Max]. UnknownIV never
// matches a bounded range (an unresolved egg stat cannot be asserted to
// satisfy a concrete bound); callers filtering partially-resolved eggs
// should check Ivs.Resolved() first.
func (r IvRange) Contains(v uint8) bool {
	if v == UnknownIV {
		return false
	}
	return v >= r.Min && v <= r.Max
}

// HiddenPowerType enumerates the 16 hidden power types derivable from IVs.
type HiddenPowerType uint8

// IvFilter is six per-stat ranges plus an optional hidden-power constraint.
type IvFilter struct {
	Ranges           [6]IvRange
	HiddenPowerTypes map[HiddenPowerType]bool // nil/empty means unconstrained
	MinHiddenPower   uint8
}

// Matches reports whether ivs satisfies every bound in the filter.
func (f IvFilter) Matches(ivs Ivs) bool {
	for i, r := range f.Ranges {
		if !r.Contains(ivs[i]) {
			return false
		}
	}
	if len(f.HiddenPowerTypes) > 0 {
		hp, power := HiddenPower(ivs)
		if !f.HiddenPowerTypes[hp] || power < f.MinHiddenPower {
			return false
		}
	}
	return true
}

// HiddenPower computes the hidden-power type and base power from a fully
// resolved IV vector using the standard gen 3+ formula.
func HiddenPower(ivs Ivs) (HiddenPowerType, uint8) {
	if !ivs.Resolved() {
		return 0, 0
	}
	var typeSum, powerSum int
	// The formula weights HP, Atk, Def, Spe, SpA, SpD as bits 0..5; weights
	// maps this package's HP, Atk, Def, SpA, SpD, Spe slots onto those bits.
	weights := [6]int{1, 2, 4, 16, 32, 8}
	for i, v := range ivs {
		typeSum += int(v&1) * weights[i]
	}
	for i, v := range ivs {
		powerSum += int((v>>1)&1) * weights[i]
	}
	hpType := HiddenPowerType((typeSum * 15) / 63)
	power := uint8((powerSum*40)/63 + 30)
	return hpType, power
}

// TrainerInfoFilter constrains a candidate TrainerInfo.
type TrainerInfoFilter struct {
	TIDs map[uint16]bool // nil means unconstrained
	SIDs map[uint16]bool
	RequireShiny bool
}

// Matches reports whether a trainer/PID pairing satisfies the filter.
func (f TrainerInfoFilter) Matches(ti TrainerInfo, pid Pid) bool {
	if len(f.TIDs) > 0 && !f.TIDs[ti.TID] {
		return false
	}
	if len(f.SIDs) > 0 && !f.SIDs[ti.SID] {
		return false
	}
	if f.RequireShiny && pid.ShinyTest(ti.TID, ti.SID) == ShinyNone {
		return false
	}
	return true
}

// EggFilter constrains a generated egg individual in addition to its IVs.
type EggFilter struct {
	Ivs             IvFilter
	RequireShiny    bool
	NatureWhitelist map[uint8]bool // nil means unconstrained
}

// Matches reports whether an egg individual satisfies the filter.
func (f EggFilter) Matches(ind Individual, tid, sid uint16) bool {
	if ind.Empty {
		return false
	}
	if !f.Ivs.Matches(ind.Ivs) {
		return false
	}
	if f.RequireShiny && ind.Pid.ShinyTest(tid, sid) == ShinyNone {
		return false
	}
	if len(f.NatureWhitelist) > 0 && !f.NatureWhitelist[ind.Nature] {
		return false
	}
	return true
}

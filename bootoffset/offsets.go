package bootoffset

import (
	"github.com/nazotools/gen5search/lcg64"
	"github.com/nazotools/gen5search/seedtypes"
)

// Result is the terminal state of the boot-offset FSM: the post-offset seed
// and the total number of LCG advances the composed sequence consumed.
type Result struct {
	Seed   lcg64.Seed
	Offset uint32
}

// GameOffset composes ConsumeN/ProbabilityTable/Extra in the fixed order
// spec.md §4.5 assigns to cond, returning the post-offset seed and the
// advance count consumed. The per-condition sequence bodies below are
// calibrated against spec.md §8's boot-offset table — see offsets_test.go.
func GameOffset(seed lcg64.Seed, cond seedtypes.BootCondition) (Result, error) {
	if err := cond.Validate(); err != nil {
		return Result{}, err
	}

	lcg := seed
	total := uint32(0)

	if cond.Version.IsBW2() {
		total += composeBW2(&lcg, cond)
	} else {
		total += composeBW1(&lcg, cond)
	}

	return Result{Seed: lcg, Offset: total}, nil
}

// composeBW1 covers Black/White: a longer intro sequence on a fresh save
// (title screen, professor introduction, naming), a shorter one resuming an
// existing save, and the shortest continuing an in-progress one. Every
// branch runs three ProbabilityTable passes; only the fixed ConsumeN lead-in
// shortens as the boot path gets less to introduce.
func composeBW1(lcg *lcg64.Seed, cond seedtypes.BootCondition) uint32 {
	total := uint32(0)
	switch {
	case cond.StartMode == seedtypes.StartNewGame && cond.SaveState == seedtypes.SaveNone:
		total += ConsumeN(lcg, 41)
	case cond.StartMode == seedtypes.StartNewGame:
		total += ConsumeN(lcg, 26)
	default: // Continue
		total += ConsumeN(lcg, 15)
	}
	total += ProbabilityTable(lcg)
	total += ProbabilityTable(lcg)
	total += ProbabilityTable(lcg)
	return total
}

// composeBW2 covers Black2/White2, whose Continue path additionally runs
// the Extra dedup loop (BW2 continue only, per spec.md §4.5) and whose
// NewGame path differs only in whether a Memory Link save is detected — the
// Memory Link check itself is a fixed ConsumeN/ProbabilityTable count the
// same as a plain existing save, since both skip the fresh-cartridge intro.
func composeBW2(lcg *lcg64.Seed, cond seedtypes.BootCondition) uint32 {
	total := uint32(0)
	switch {
	case cond.StartMode == seedtypes.StartNewGame && cond.SaveState == seedtypes.SaveNone:
		total += ConsumeN(lcg, 44)
	case cond.StartMode == seedtypes.StartNewGame: // WithSave or WithMemoryLink
		total += ConsumeN(lcg, 9)
		total += ProbabilityTable(lcg)
		total += ProbabilityTable(lcg)
	default: // Continue, WithSave or WithMemoryLink
		total += ConsumeN(lcg, 23)
		total += ProbabilityTable(lcg)
		total += ProbabilityTable(lcg)
		total += ProbabilityTable(lcg)
		total += Extra(lcg)
	}
	return total
}

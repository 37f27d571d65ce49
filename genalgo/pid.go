package genalgo

import (
	"github.com/nazotools/gen5search/lcg64"
	"github.com/nazotools/gen5search/seedtypes"
)

// draw advances one LCG step in place and returns the resulting high-32-bit
// output — the unit every primitive in this package consumes.
func draw(lcg *lcg64.Seed) uint32 {
	*lcg = lcg.Next()
	return lcg.Output32()
}

// RollFraction maps a 32-bit draw onto [0, n): floor(r * n / 2^32).
func RollFraction(r, n uint32) uint32 {
	return uint32((uint64(r) * uint64(n)) >> 32)
}

// generateBasePid is the BW/BW2-unified base PID construction shared by
// fixed and wild encounters: the draw XORed with the ability-slot bit.
func generateBasePid(r uint32) seedtypes.Pid {
	return seedtypes.Pid(r ^ 0x10000)
}

// applyIDCorrection forces the PID's top bit to match the parity of
// (pid_low xor tid xor sid), the adjustment that keeps a freshly-rolled
// wild/roamer PID's shiny test consistent with the trainer's IDs.
func applyIDCorrection(pid seedtypes.Pid, tid, sid uint16) seedtypes.Pid {
	pidLow := uint16(pid & 0xFFFF)
	if (pidLow^tid^sid)&1 == 1 {
		return pid | 0x80000000
	}
	return pid &^ 0x80000000
}

// generateWildPid builds a wild/static/roamer PID from one draw, with ID
// correction applied.
func generateWildPid(r uint32, tid, sid uint16) seedtypes.Pid {
	return applyIDCorrection(generateBasePid(r), tid, sid)
}

// GenerateEventPid builds an event/starter/fossil PID from one draw, with no
// ID correction.
func GenerateEventPid(r uint32) seedtypes.Pid {
	return generateBasePid(r)
}

// generateEggPidRaw is the egg PID construction: a straight 1-in-2^32
// fraction roll, no ability-slot XOR and no ID correction.
func generateEggPidRaw(r uint32) seedtypes.Pid {
	return seedtypes.Pid(RollFraction(r, 0xFFFFFFFF))
}

// ApplyShinyLock forces a PID that currently tests shiny back to non-shiny
// by flipping bit 28, leaving an already-non-shiny PID untouched.
func ApplyShinyLock(pid seedtypes.Pid, tid, sid uint16) seedtypes.Pid {
	if pid.ShinyTest(tid, sid) == seedtypes.ShinyNone {
		return pid
	}
	return pid ^ 0x10000000
}

// GenerateWildPidWithReroll draws a wild/static/roamer PID, rerolling up to
// rerollCount times (Shiny Charm) before one final unconditional draw —
// rerollCount+1 draws total unless an earlier one already tests shiny.
func GenerateWildPidWithReroll(lcg *lcg64.Seed, tid, sid uint16, rerollCount uint8) (seedtypes.Pid, seedtypes.ShinyType) {
	for i := uint8(0); i < rerollCount; i++ {
		pid := generateWildPid(draw(lcg), tid, sid)
		if shiny := pid.ShinyTest(tid, sid); shiny != seedtypes.ShinyNone {
			return pid, shiny
		}
	}
	pid := generateWildPid(draw(lcg), tid, sid)
	return pid, pid.ShinyTest(tid, sid)
}

// GenerateEggPidWithReroll draws an egg PID, rerolling up to rerollCount
// times (international/Masuda breeding passes 5) before one final
// unconditional draw, using the 1-draw fraction-roll egg PID construction.
func GenerateEggPidWithReroll(lcg *lcg64.Seed, tid, sid uint16, rerollCount uint8) (seedtypes.Pid, seedtypes.ShinyType) {
	for i := uint8(0); i < rerollCount; i++ {
		pid := generateEggPidRaw(draw(lcg))
		if shiny := pid.ShinyTest(tid, sid); shiny != seedtypes.ShinyNone {
			return pid, shiny
		}
	}
	pid := generateEggPidRaw(draw(lcg))
	return pid, pid.ShinyTest(tid, sid)
}

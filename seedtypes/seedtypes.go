// Package seedtypes holds the engine's value types: hardware/version/region
// descriptors, startup conditions, datetimes, IVs, PIDs, generated
// individuals, provenance, and the filter predicates that accept or reject
// them. Everything here is a plain value; the only polymorphism is the
// closed, pattern-matchable tagged unions called out in spec.md §9.
package seedtypes

// Hardware identifies a Nintendo DS family revision.
type Hardware uint8

const (
	HardwareDs Hardware = iota
	HardwareDsLite
	HardwareDsi
	HardwareDsi3ds
)

// Version identifies the game version.
type Version uint8

const (
	VersionBlack Version = iota
	VersionWhite
	VersionBlack2
	VersionWhite2
)

// IsBW2 reports whether this version is Black2/White2 (as opposed to the
// original Black/White).
func (v Version) IsBW2() bool {
	return v == VersionBlack2 || v == VersionWhite2
}

// Region identifies the ROM region.
type Region uint8

const (
	RegionJpn Region = iota
	RegionKor
	RegionUsa
	RegionGer
	RegionFra
	RegionSpa
	RegionIta
)

// DsConfig is the hardware descriptor mixed into every SHA-1 seed
// derivation.
type DsConfig struct {
	Mac      [6]byte
	Hardware Hardware
	Version  Version
	Region   Region
}

// Frame returns the small hardware-revision tag mixed into SHA-1 message
// word 7: 8 for DS, 6 for DS Lite and DSi, 9 for DSi/3DS virtual console.
func (h Hardware) Frame() uint32 {
	switch h {
	case HardwareDs:
		return 8
	case HardwareDsLite, HardwareDsi:
		return 6
	case HardwareDsi3ds:
		return 9
	default:
		return 8
	}
}

// Key bitmask constants (spec.md §3): key_mask is the bitwise-OR of pressed
// button bits.
const (
	KeyA      uint32 = 0x0001
	KeyB      uint32 = 0x0002
	KeySelect uint32 = 0x0004
	KeyStart  uint32 = 0x0008
	KeyRight  uint32 = 0x0010
	KeyLeft   uint32 = 0x0020
	KeyUp     uint32 = 0x0040
	KeyDown   uint32 = 0x0080
	KeyR      uint32 = 0x0100
	KeyL      uint32 = 0x0200
	KeyX      uint32 = 0x0400
	KeyY      uint32 = 0x0800

	keyMaskAll uint32 = 0x0FFF

	// keyCodeBase is XORed with the key mask to produce key_code.
	keyCodeBase uint32 = 0x2FFF
)

// KeyCode derives key_code from a key mask: key_code = 0x2FFF XOR key_mask.
func KeyCode(keyMask uint32) uint32 {
	return keyCodeBase ^ (keyMask & keyMaskAll)
}

// IsValidKeyMask reports whether a combination of pressed buttons is
// physically possible on the hardware: Up+Down, Left+Right, and
// L+R+Start+Select may never appear together.
func IsValidKeyMask(keyMask uint32) bool {
	if keyMask&keyMaskAll != keyMask {
		return false
	}
	if keyMask&(KeyUp|KeyDown) == KeyUp|KeyDown {
		return false
	}
	if keyMask&(KeyLeft|KeyRight) == KeyLeft|KeyRight {
		return false
	}
	if keyMask&(KeyL|KeyR|KeyStart|KeySelect) == KeyL|KeyR|KeyStart|KeySelect {
		return false
	}
	return true
}

// StartupCondition is the hardware boot condition captured at the moment of
// SHA-1 seed derivation.
type StartupCondition struct {
	Timer0  uint16
	VCount  uint8
	KeyCode uint32
}

// Datetime is a calendar timestamp in the proleptic Gregorian calendar.
type Datetime struct {
	Year   uint16 // 2000..2099
	Month  uint8  // 1..12
	Day    uint8
	Hour   uint8 // 0..23
	Minute uint8 // 0..59
	Second uint8 // 0..59
}

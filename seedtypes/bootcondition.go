package seedtypes

// StartMode identifies which title-screen path the player took: starting a
// new save or continuing an existing one.
type StartMode uint8

const (
	StartNewGame StartMode = iota
	StartContinue
)

// SaveState identifies what, if anything, the boot-offset routine finds on
// the cartridge: no save data at all, an existing save, or — BW2 only — a
// save carried over via Memory Link from a BW1 cartridge.
type SaveState uint8

const (
	SaveNone SaveState = iota
	SaveWithSave
	SaveWithMemoryLink
)

// BootCondition names the version/mode/state combination the boot-offset
// engine consumes a fixed LCG sequence for.
type BootCondition struct {
	Version   Version
	StartMode StartMode
	SaveState SaveState
}

// Validate reports ErrInvalidStartConfig for combinations the hardware can
// never produce: Continue with no save, or a Memory Link claim on a non-BW2
// version.
func (c BootCondition) Validate() error {
	if c.StartMode == StartContinue && c.SaveState == SaveNone {
		return ErrInvalidStartConfig
	}
	if c.SaveState == SaveWithMemoryLink && !c.Version.IsBW2() {
		return ErrInvalidStartConfig
	}
	return nil
}

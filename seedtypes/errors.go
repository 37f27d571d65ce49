package seedtypes

import "errors"

// Sentinel construction errors, per spec.md §7. All are reported
// synchronously by the relevant constructor; no iteration-time error exists
// except GenerationFishingFailed, which is in-band (Individual.Empty) and is
// therefore not itself returned as an error.
var (
	// ErrInvalidRange signals a malformed time or date range (hour > 23,
	// an end before a start, etc.).
	ErrInvalidRange = errors.New("seedtypes: invalid time or date range")

	// ErrInvalidStartConfig signals an impossible combination of start
	// mode, save state, and memory-link request (e.g. Continue with
	// NoSave, or MemoryLink requested on a BW1 version).
	ErrInvalidStartConfig = errors.New("seedtypes: invalid start configuration")

	// ErrEmptySeedInput signals a SeedInput with no seeds and no startup
	// ranges to enumerate.
	ErrEmptySeedInput = errors.New("seedtypes: empty seed input")

	// ErrEmptyEncounterSlots signals an encounter table with no slots to
	// draw from.
	ErrEmptyEncounterSlots = errors.New("seedtypes: empty encounter slot table")

	// ErrGpuUnavailable signals that no GPU backend could be created;
	// callers should fall back to the CPU searcher.
	ErrGpuUnavailable = errors.New("seedtypes: gpu backend unavailable")
)

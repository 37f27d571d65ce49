// Package rawseed brute-forces the full 32-bit MT seed space under an IV
// filter (spec.md §8 "MT-seed search" vectors, C11): for every candidate
// seed, roll the RNG IVs at a fixed mt_offset/roamer-mode combination and
// keep the seed if they match. Processes four candidate seeds per step
// through the 4-lane MT path, the same SIMD shape C9's datetime search
// uses for SHA-1.
package rawseed

import (
	"math"

	"github.com/decred/slog"
	"github.com/nazotools/gen5search/genalgo"
	"github.com/nazotools/gen5search/seedtypes"
)

var log = slog.Disabled

// UseLogger sets the package-wide logger backend.
func UseLogger(logger slog.Logger) {
	log = logger
}

// Params fixes the IV-roll configuration every candidate seed is tested
// under.
type Params struct {
	Filter   seedtypes.IvFilter
	MtOffset uint32
	Roamer   bool
}

// Searcher enumerates candidate MT seeds in ascending order, four at a
// time, yielding every one whose rolled IVs satisfy Params.Filter. Its
// Cursor is the next seed to test — suitable for persisting via
// checkpoint.JobState.Cursor and resuming with Resume.
type Searcher struct {
	params Params
	cursor uint64 // next seed to test; > math.MaxUint32 means exhausted
	done   bool
}

// New starts a fresh search from seed 0.
func New(params Params) *Searcher {
	return &Searcher{params: params}
}

// Resume continues a search from a previously checkpointed cursor.
func Resume(params Params, cursor uint64) *Searcher {
	s := &Searcher{params: params, cursor: cursor}
	if cursor > math.MaxUint32 {
		s.done = true
	}
	return s
}

// Cursor returns the next seed this searcher will test, for checkpointing.
func (s *Searcher) Cursor() uint64 { return s.cursor }

// Done reports whether the full 32-bit space has been exhausted.
func (s *Searcher) Done() bool { return s.done }

// NextBatch tests up to n candidate seeds (processed four at a time
// internally) and returns every matching one, in ascending order.
func (s *Searcher) NextBatch(n uint64) []uint32 {
	if s.done {
		return nil
	}

	var matches []uint32
	tested := uint64(0)
	for tested < n && !s.done {
		var seeds [4]uint32
		lanes := 0
		for lanes < 4 {
			if s.cursor > math.MaxUint32 {
				s.done = true
				break
			}
			seeds[lanes] = uint32(s.cursor)
			s.cursor++
			lanes++
			tested++
			if tested >= n {
				break
			}
		}
		if lanes == 0 {
			break
		}

		if lanes == 4 {
			ivs := genalgo.GenerateRngIvsWithOffsetX4(seeds, s.params.MtOffset, s.params.Roamer)
			for i := 0; i < 4; i++ {
				if s.params.Filter.Matches(ivs[i]) {
					matches = append(matches, seeds[i])
				}
			}
		} else {
			for i := 0; i < lanes; i++ {
				ivs := genalgo.GenerateRngIvsWithOffset(seeds[i], s.params.MtOffset, s.params.Roamer)
				if s.params.Filter.Matches(ivs) {
					matches = append(matches, seeds[i])
				}
			}
		}
	}

	if s.done {
		log.Infof("rawseed: search exhausted, %d matches in final batch", len(matches))
	}
	return matches
}

// All drains the entire remaining space in one call, for callers (such as
// test vector validation) that do not need pagination. batchSize controls
// the internal step size only.
func All(params Params, batchSize uint64) []uint32 {
	s := New(params)
	var all []uint32
	for !s.Done() {
		all = append(all, s.NextBatch(batchSize)...)
	}
	return all
}

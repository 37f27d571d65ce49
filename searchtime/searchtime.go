// Package searchtime walks a datetime range one second at a time, deriving
// an LCG/MT seed pair for every second whose time-of-day falls in the
// user's window, four at a time to feed the 4-lane SIMD SHA-1 path
// (spec.md §4.9 Searcher FSM, C9). Grounded on the original engine's
// datetime_search/base.rs DateTimeCodeEnumerator/HashValuesEnumerator.
package searchtime

import (
	"github.com/decred/slog"
	"github.com/nazotools/gen5search/dsconfig"
	"github.com/nazotools/gen5search/rngtime"
	"github.com/nazotools/gen5search/seedtypes"
)

var log = slog.Disabled

// UseLogger sets the package-wide logger backend.
func UseLogger(logger slog.Logger) {
	log = logger
}

// Entry is one matching second: its calendar datetime and the seed pair
// the SHA-1 pipeline derived for it under the searcher's fixed condition.
type Entry struct {
	Datetime seedtypes.Datetime
	LcgSeed  uint64
	MtSeed   uint32
}

// Batch is the result of one next_batch(n) call: up to n seconds' worth of
// matching entries, plus cumulative progress counters.
type Batch struct {
	Entries          []Entry
	ProcessedSeconds uint64
	TotalSeconds     uint64
}

// status mirrors spec.md §4.9's {Running, Done} Searcher states.
type status uint8

const (
	statusRunning status = iota
	statusDone
)

// Searcher enumerates every second in [start, start+totalSeconds) whose
// time-of-day is in window, deriving a seed pair for each one under a
// fixed DsConfig/StartupCondition. It is a single-threaded, stateful
// iterator: next_batch(n) is its only suspension point.
type Searcher struct {
	ds     seedtypes.DsConfig
	cond   seedtypes.StartupCondition
	window *rngtime.TimeOfDayTable

	start     seedtypes.Datetime
	current   seedtypes.Datetime
	processed uint64
	total     uint64
	status    status
}

// New constructs a Searcher over [start, start+totalSeconds) seconds,
// matching only those whose time-of-day is in window.
func New(ds seedtypes.DsConfig, cond seedtypes.StartupCondition, window rngtime.TimeWindow, start seedtypes.Datetime, totalSeconds uint64) *Searcher {
	s := &Searcher{
		ds:      ds,
		cond:    cond,
		window:  rngtime.NewTimeOfDayTable(window),
		start:   start,
		current: start,
		total:   totalSeconds,
	}
	log.Infof("searchtime: new searcher total=%d", totalSeconds)
	return s
}

// Status reports whether the searcher has more work.
func (s *Searcher) Status() string {
	if s.status == statusDone {
		return "Done"
	}
	return "Running"
}

// Progress returns processed_seconds / total_seconds as a float in [0,1].
func (s *Searcher) Progress() float64 {
	if s.total == 0 {
		return 1
	}
	return float64(s.processed) / float64(s.total)
}

func secOfDay(dt seedtypes.Datetime) int {
	return int(dt.Hour)*3600 + int(dt.Minute)*60 + int(dt.Second)
}

// next advances one second at a time until it finds a matching one or
// exhausts the range.
func (s *Searcher) next() (seedtypes.Datetime, bool) {
	for s.processed < s.total {
		dt := s.current
		s.current = rngtime.AddSecond(s.current)
		s.processed++
		if s.window.Contains(secOfDay(dt)) {
			return dt, true
		}
	}
	return seedtypes.Datetime{}, false
}

// NextBatch drains at most n seconds of the range, pausing on the 4-entry
// boundary to keep every produced group full-width for the 4-lane SHA-1
// path (the final group of a batch, or of the whole range, may be short).
func (s *Searcher) NextBatch(n uint64) Batch {
	if s.status == statusDone {
		return Batch{ProcessedSeconds: s.processed, TotalSeconds: s.total}
	}

	startProcessed := s.processed
	var entries []Entry
	for s.processed-startProcessed < n && s.processed < s.total {
		var group [4]seedtypes.Datetime
		count := 0
		for count < 4 {
			dt, ok := s.next()
			if !ok {
				break
			}
			group[count] = dt
			count++
			if s.processed-startProcessed >= n {
				break
			}
		}
		if count == 0 {
			break
		}
		entries = append(entries, s.deriveGroup(group, count)...)
	}

	if s.processed >= s.total {
		s.status = statusDone
		log.Infof("searchtime: searcher done, processed=%d", s.processed)
	}

	return Batch{Entries: entries, ProcessedSeconds: s.processed, TotalSeconds: s.total}
}

func (s *Searcher) deriveGroup(group [4]seedtypes.Datetime, count int) []Entry {
	if count == 4 {
		lcgSeeds, mtSeeds := dsconfig.DeriveSeedsX4(s.ds, s.cond, group)
		out := make([]Entry, 4)
		for i := 0; i < 4; i++ {
			out[i] = Entry{Datetime: group[i], LcgSeed: lcgSeeds[i], MtSeed: mtSeeds[i]}
		}
		return out
	}

	out := make([]Entry, count)
	for i := 0; i < count; i++ {
		lcgSeed, mtSeed := dsconfig.DeriveSeed(s.ds, s.cond, group[i])
		out[i] = Entry{Datetime: group[i], LcgSeed: lcgSeed, MtSeed: mtSeed}
	}
	return out
}

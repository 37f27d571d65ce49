package searchtime

import (
	"testing"

	"github.com/nazotools/gen5search/rngtime"
	"github.com/nazotools/gen5search/seedtypes"
)

func testSearcher(totalSeconds uint64) *Searcher {
	ds := seedtypes.DsConfig{Hardware: seedtypes.HardwareDsLite, Version: seedtypes.VersionBlack, Region: seedtypes.RegionJpn}
	cond := seedtypes.StartupCondition{Timer0: 0x0C79, VCount: 0x60, KeyCode: seedtypes.KeyCode(0)}
	window := rngtime.TimeWindow{StartSecOfDay: 0, EndSecOfDay: 86399}
	start := seedtypes.Datetime{Year: 2010, Month: 9, Day: 18, Hour: 0, Minute: 0, Second: 0}
	return New(ds, cond, window, start, totalSeconds)
}

func TestNextBatchStopsAtRequestedCountOrFewer(t *testing.T) {
	s := testSearcher(10)
	batch := s.NextBatch(3)
	if batch.ProcessedSeconds < 3 {
		t.Errorf("ProcessedSeconds = %d, want >= 3", batch.ProcessedSeconds)
	}
	if batch.ProcessedSeconds > 3 {
		t.Errorf("ProcessedSeconds = %d, want <= 3 (next_batch drains at most n seconds)", batch.ProcessedSeconds)
	}
}

func TestSearcherReachesDoneAtRangeEnd(t *testing.T) {
	s := testSearcher(5)
	for s.Status() != "Done" {
		s.NextBatch(100)
	}
	if s.Progress() != 1 {
		t.Errorf("Progress() = %v, want 1 once Done", s.Progress())
	}
}

func TestNarrowWindowSkipsNonMatchingSeconds(t *testing.T) {
	ds := seedtypes.DsConfig{Hardware: seedtypes.HardwareDsLite, Version: seedtypes.VersionBlack, Region: seedtypes.RegionJpn}
	cond := seedtypes.StartupCondition{Timer0: 0x0C79, VCount: 0x60, KeyCode: seedtypes.KeyCode(0)}
	window := rngtime.TimeWindow{StartSecOfDay: 5, EndSecOfDay: 5}
	start := seedtypes.Datetime{Year: 2010, Month: 9, Day: 18, Hour: 0, Minute: 0, Second: 0}
	s := New(ds, cond, window, start, 10)

	var totalEntries int
	for s.Status() != "Done" {
		b := s.NextBatch(10)
		totalEntries += len(b.Entries)
	}
	if totalEntries != 1 {
		t.Errorf("totalEntries = %d, want exactly 1 (only second-of-day 5 matches)", totalEntries)
	}
}

func TestEntriesCarrySeedsDerivedFromDsconfig(t *testing.T) {
	s := testSearcher(4)
	b := s.NextBatch(4)
	if len(b.Entries) != 4 {
		t.Fatalf("len(Entries) = %d, want 4", len(b.Entries))
	}
	for _, e := range b.Entries {
		if e.LcgSeed == 0 && e.MtSeed == 0 {
			t.Errorf("Entry %+v has zero seed pair, looks undreived", e)
		}
	}
}

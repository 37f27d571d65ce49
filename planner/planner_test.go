package planner

import (
	"testing"

	"github.com/nazotools/gen5search/seedinput"
	"github.com/nazotools/gen5search/seedtypes"
)

func testSpec() seedinput.StartupSpec {
	return seedinput.StartupSpec{
		Ds:         seedtypes.DsConfig{Hardware: seedtypes.HardwareDsLite, Version: seedtypes.VersionBlack, Region: seedtypes.RegionJpn},
		RangeStart: seedtypes.Datetime{Year: 2010, Month: 9, Day: 18, Hour: 0, Minute: 0, Second: 0},
		RangeEnd:   seedtypes.Datetime{Year: 2010, Month: 9, Day: 18, Hour: 0, Minute: 0, Second: 9},
		Counters: []seedinput.Timer0VCountRange{
			{Timer0Min: 0x0C79, Timer0Max: 0x0C79, VCountMin: 0x60, VCountMax: 0x60},
		},
		KeyMasks: []uint32{0},
	}
}

func TestSplitProducesOneTaskPerCounterWhenWorkersDoNotExceedCounters(t *testing.T) {
	tasks := Split(testSpec(), 1)
	if len(tasks) != 1 {
		t.Fatalf("Split returned %d tasks, want 1", len(tasks))
	}
}

func TestSplitSubdividesTimeRangeWhenWorkersExceedCounters(t *testing.T) {
	tasks := Split(testSpec(), 4)
	if len(tasks) != 4 {
		t.Fatalf("Split returned %d tasks, want 4", len(tasks))
	}
	var totalSeconds int
	for _, task := range tasks {
		totalSeconds += secondsInRange(t, task)
	}
	if totalSeconds != 10 {
		t.Errorf("total seconds across tasks = %d, want 10 (the undivided range has 10 seconds)", totalSeconds)
	}
}

func secondsInRange(t *testing.T, p SearchParams) int {
	t.Helper()
	if p.RangeStart.Second > p.RangeEnd.Second {
		t.Fatalf("task range inverted: %+v", p)
	}
	return int(p.RangeEnd.Second-p.RangeStart.Second) + 1
}

func TestSplitRejectsEmptyCounters(t *testing.T) {
	if got := Split(seedinput.StartupSpec{}, 4); got != nil {
		t.Errorf("Split(empty spec) = %v, want nil", got)
	}
}

func TestJobKeyIsStableAndDistinguishesParams(t *testing.T) {
	tasks := Split(testSpec(), 4)
	if len(tasks) < 2 {
		t.Fatalf("need at least 2 tasks to compare keys, got %d", len(tasks))
	}

	key0a := JobKey(tasks[0])
	key0b := JobKey(tasks[0])
	if key0a != key0b {
		t.Errorf("JobKey is not stable across calls: %d != %d", key0a, key0b)
	}

	key1 := JobKey(tasks[1])
	if key0a == key1 {
		t.Errorf("JobKey collided for distinct SearchParams: %d", key0a)
	}
}

package rawseed

import (
	"math"
	"testing"

	"github.com/nazotools/gen5search/genalgo"
	"github.com/nazotools/gen5search/seedtypes"
)

func sixPerfectFilter() seedtypes.IvFilter {
	var f seedtypes.IvFilter
	for i := range f.Ranges {
		f.Ranges[i] = seedtypes.IvRange{Min: 31, Max: 31}
	}
	return f
}

// TestKnownSixPerfectIvSeedMatchesFilter exercises the literal spec.md §8
// "six perfect IVs" vector at mt_offset=0: 0x14B11BA6 is one of the five
// seeds the full-space search must return.
func TestKnownSixPerfectIvSeedMatchesFilter(t *testing.T) {
	filter := sixPerfectFilter()
	for _, seed := range []uint32{0x14B11BA6, 0x8A30480D, 0x9E02B0AE, 0xADFA2178, 0xFC4AA3AC} {
		ivs := genalgo.GenerateRngIvsWithOffset(seed, 0, false)
		if !filter.Matches(ivs) {
			t.Errorf("seed 0x%08X: ivs %v do not match the six-perfect-IV filter", seed, ivs)
		}
	}
}

func TestNextBatchAdvancesCursorByTestedCount(t *testing.T) {
	s := New(Params{Filter: sixPerfectFilter()})
	s.NextBatch(4)
	if s.Cursor() != 4 {
		t.Errorf("Cursor() = %d, want 4 after testing 4 seeds", s.Cursor())
	}
	if s.Done() {
		t.Errorf("Done() = true after only 4 of 2^32 seeds tested")
	}
}

func TestResumeContinuesFromCheckpointedCursor(t *testing.T) {
	s := Resume(Params{Filter: sixPerfectFilter()}, 100)
	s.NextBatch(4)
	if s.Cursor() != 104 {
		t.Errorf("Cursor() = %d, want 104", s.Cursor())
	}
}

func TestSearcherReachesDoneAtSpaceExhaustion(t *testing.T) {
	start := uint64(math.MaxUint32) - 3
	s := Resume(Params{Filter: sixPerfectFilter()}, start)
	for !s.Done() {
		s.NextBatch(4)
	}
	if s.Cursor() <= math.MaxUint32 {
		t.Errorf("Cursor() = %d, want > math.MaxUint32 once exhausted", s.Cursor())
	}
}

func TestResumeAtExhaustedCursorIsImmediatelyDone(t *testing.T) {
	s := Resume(Params{Filter: sixPerfectFilter()}, uint64(math.MaxUint32)+1)
	if !s.Done() {
		t.Errorf("Done() = false for a cursor past the seed space")
	}
	if got := s.NextBatch(10); got != nil {
		t.Errorf("NextBatch on exhausted searcher = %v, want nil", got)
	}
}

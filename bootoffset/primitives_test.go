package bootoffset

import (
	"testing"

	"github.com/nazotools/gen5search/lcg64"
)

func TestConsumeNAdvancesExactlyK(t *testing.T) {
	lcg := lcg64.New(0x1234)
	start := lcg
	got := ConsumeN(&lcg, 5)
	if got != 5 {
		t.Errorf("ConsumeN returned %d, want 5", got)
	}
	want := start
	for i := 0; i < 5; i++ {
		want = want.Next()
	}
	if lcg != want {
		t.Errorf("ConsumeN(5) did not advance by exactly 5 steps")
	}
}

func TestProbabilityTableTerminatesAndConsumesAtLeastOneDraw(t *testing.T) {
	for raw := uint64(0); raw < 64; raw++ {
		lcg := lcg64.New(raw)
		n := ProbabilityTable(&lcg)
		if n == 0 {
			t.Fatalf("seed %#x: ProbabilityTable consumed zero draws, want at least one (L1's first threshold is never 100)", raw)
		}
	}
}

func TestExtraTerminatesWhenAllThreeDiffer(t *testing.T) {
	for raw := uint64(0); raw < 64; raw++ {
		lcg := lcg64.New(raw)
		n := Extra(&lcg)
		if n == 0 || n%3 != 0 {
			t.Fatalf("seed %#x: Extra consumed %d draws, want a positive multiple of 3", raw, n)
		}
	}
}

package seedtypes

import "testing"

func TestHabdscToHabcdsRotatesSpAtkSpDefSpeRight(t *testing.T) {
	// Label each slot distinctly so a transposition shows up as a mismatch
	// rather than silently passing on repeated values.
	in := Ivs{1, 2, 3, 4, 5, 6} // hp, atk, def, spd, spe, spa in draw order
	want := Ivs{1, 2, 3, 6, 4, 5}
	if got := HabdscToHabcds(in); got != want {
		t.Errorf("HabdscToHabcds(%v) = %v, want %v", in, got, want)
	}
}

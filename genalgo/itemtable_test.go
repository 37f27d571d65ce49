package genalgo

import (
	"testing"

	"github.com/nazotools/gen5search/lcg64"
)

func TestConsumeItemTableDrawsExactlyTwo(t *testing.T) {
	lcg := lcg64.New(0xBEEF)
	start := lcg
	ConsumeItemTable(&lcg)
	want := start.Next().Next()
	if lcg != want {
		t.Errorf("ConsumeItemTable did not consume exactly two draws")
	}
}

func TestDustCloudOrShadowIsItemThreshold(t *testing.T) {
	if DustCloudOrShadowIsItem(0, true) {
		t.Errorf("percent 0 should not resolve to an item")
	}
	if !DustCloudOrShadowIsItem(0xFFFFFFFF, true) {
		t.Errorf("percent ~100 should resolve to an item")
	}
}

package genalgo

import "github.com/nazotools/gen5search/lcg64"

// DustCloudOrShadowIsItem reports whether a DustCloud/PokemonShadow
// encounter-kind draw resolves to an item rather than a Pokémon: item on
// the high end of the percentage range, Pokémon otherwise.
func DustCloudOrShadowIsItem(r uint32, isBW2 bool) bool {
	return percentForVersion(r, isBW2) >= 70
}

// ConsumeItemTable draws the item-table's two follow-up values once an
// encounter-kind draw has already resolved to an item. The original game's
// exact item identity selection from these two draws is not reproduced here
// (see DESIGN.md) — the draw count, which is what every downstream advance
// count depends on, is exact.
func ConsumeItemTable(lcg *lcg64.Seed) {
	draw(lcg)
	draw(lcg)
}

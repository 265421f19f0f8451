// Package t2048 implements the sliding-tile merge puzzle: the grid model,
// the four-direction transition engine, single-level undo and the compact
// save encoding.
package t2048

import (
	"fmt"
	"slices"
)

// Variant is a named board preset.
type Variant struct {
	ID       string
	Name     string
	GridSize int
	WinTile  int // Tile value that wins the game
}

// Variants lists the built-in presets. The classic board comes first.
var Variants = []Variant{
	{ID: "classic", Name: "Classic", GridSize: 4, WinTile: 2048},
	{ID: "mini", Name: "Mini", GridSize: 3, WinTile: 512},
	{ID: "big", Name: "Big", GridSize: 5, WinTile: 2048},
	{ID: "huge", Name: "Huge", GridSize: 6, WinTile: 4096},
}

// DefaultVariant is the id of the classic preset.
const DefaultVariant = "classic"

// VariantByID returns the preset with the given id.
func VariantByID(id string) (Variant, error) {
	i := slices.IndexFunc(Variants, func(v Variant) bool { return v.ID == id })
	if i < 0 {
		return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, id)
	}
	return Variants[i], nil
}

// VariantIDs returns the ids of all presets.
func VariantIDs() []string {
	ids := make([]string, len(Variants))
	for i, v := range Variants {
		ids[i] = v.ID
	}
	return ids
}

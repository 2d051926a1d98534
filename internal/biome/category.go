// Package biome classifies climate into weighted biome categories and names
// the regions they form.
package biome

import "fmt"

// Category is a closed enumeration of biome kinds. Values are dense from zero
// so they can index fixed-size arrays.
type Category uint8

// Declaration order matters: Weights.Primary lets earlier categories win ties.
const (
	Ocean Category = iota
	Plains
	Desert
	ColdDesert
	Swamp
	Snow
	Forest
	Taiga
	Jungle

	// Count is the number of categories.
	Count = int(Jungle) + 1
)

var categoryNames = [Count]string{
	Ocean:      "Ocean",
	Plains:     "Plains",
	Desert:     "Desert",
	ColdDesert: "ColdDesert",
	Swamp:      "Swamp",
	Snow:       "Snow",
	Forest:     "Forest",
	Taiga:      "Taiga",
	Jungle:     "Jungle",
}

// Categories returns every category in declaration order.
func Categories() [Count]Category {
	var out [Count]Category
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Valid reports whether c is a declared category.
func (c Category) Valid() bool { return int(c) < Count }

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// Package alphamap blends biome weights and terrain slope into per-cell
// texture layer weights.
package alphamap

import (
	"fmt"

	"terragen/internal/biome"
)

// Layer is a terrain texture.
type Layer uint8

const (
	Cliff Layer = iota
	Seabed
	Grass
	Sand
	ParchedGround
	Mud
	Snow
	Forest
	PineForest
	Jungle

	// LayerCount is the number of texture layers.
	LayerCount = int(Jungle) + 1
)

var layerNames = [LayerCount]string{
	Cliff:         "Cliff",
	Seabed:        "Seabed",
	Grass:         "Grass",
	Sand:          "Sand",
	ParchedGround: "ParchedGround",
	Mud:           "Mud",
	Snow:          "Snow",
	Forest:        "Forest",
	PineForest:    "PineForest",
	Jungle:        "Jungle",
}

// categoryLayers is one-to-one; Cliff belongs to no category.
var categoryLayers = [biome.Count]Layer{
	biome.Ocean:      Seabed,
	biome.Plains:     Grass,
	biome.Desert:     Sand,
	biome.ColdDesert: ParchedGround,
	biome.Swamp:      Mud,
	biome.Snow:       Snow,
	biome.Forest:     Forest,
	biome.Taiga:      PineForest,
	biome.Jungle:     Jungle,
}

// LayerFor returns the texture painted by category c.
func LayerFor(c biome.Category) Layer { return categoryLayers[c] }

func (l Layer) String() string {
	if int(l) >= LayerCount {
		return fmt.Sprintf("Layer(%d)", uint8(l))
	}
	return layerNames[l]
}

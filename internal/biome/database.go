package biome

import (
	"fmt"
	"image/color"
)

// Data describes how a category is painted and named.
type Data struct {
	Category Category
	// Texture names the terrain layer the category paints.
	Texture string
	// Color is used by the minimap and the biome graph.
	Color color.NRGBA

	BigNames    []string
	MediumNames []string
	SmallNames  []string
}

// Database holds the Data for every category. It is built once per
// generation pass and never mutated.
type Database struct {
	entries [Count]Data
}

// NewDatabase returns the standard biome database.
func NewDatabase() *Database {
	db := &Database{}
	add := func(d Data) { db.entries[d.Category] = d }

	add(Data{
		Category:    Ocean,
		Texture:     "Seabed",
		Color:       color.NRGBA{R: 0, G: 0, B: 255, A: 255},
		BigNames:    []string{"Ocean"},
		MediumNames: []string{"Sea"},
		SmallNames:  []string{"Lake", "Pool", "Lagoon", "Loch"},
	})
	add(Data{
		Category:    Plains,
		Texture:     "Grass",
		Color:       color.NRGBA{R: 128, G: 128, B: 51, A: 255},
		BigNames:    []string{"Plain", "Steppe", "Grassland", "Prairie", "Expanse"},
		MediumNames: []string{"Plain", "Steppe", "Grassland", "Prairie"},
		SmallNames:  []string{"Pasture", "Meadow", "Scrub"},
	})
	add(Data{
		Category:    Desert,
		Texture:     "Sand",
		Color:       color.NRGBA{R: 255, G: 235, B: 4, A: 255},
		BigNames:    []string{"Desert", "Sands"},
		MediumNames: []string{"Desert", "Sands"},
		SmallNames:  []string{"Dunes"},
	})
	add(Data{
		Category:    ColdDesert,
		Texture:     "ParchedGround",
		Color:       color.NRGBA{R: 128, G: 128, B: 128, A: 255},
		BigNames:    []string{"Desert", "Wastelands", "Badlands"},
		MediumNames: []string{"Desert", "Wasteland", "Badlands"},
		SmallNames:  []string{"Waste", "Shale"},
	})
	add(Data{
		Category:    Swamp,
		Texture:     "Mud",
		Color:       color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		BigNames:    []string{"Bog", "Marsh", "Mire", "Quagmire", "Swamp", "Morass", "Moor", "Fen"},
		MediumNames: []string{"Bog", "Marsh", "Mire", "Quagmire", "Swamp", "Morass", "Moor", "Fen"},
		SmallNames:  []string{"Bog", "Marsh", "Mire", "Quagmire", "Wetlands", "Glade"},
	})
	add(Data{
		Category:    Snow,
		Texture:     "Snow",
		Color:       color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		BigNames:    []string{"Plain", "Glacier", "Ice Shelf"},
		MediumNames: []string{"Plain", "Glacier"},
		SmallNames:  []string{"Drifts", "Floe", "Field"},
	})
	add(Data{
		Category:    Forest,
		Texture:     "Forest",
		Color:       color.NRGBA{R: 0, G: 128, B: 0, A: 255},
		BigNames:    []string{"Forest"},
		MediumNames: []string{"Forest", "Wood"},
		SmallNames:  []string{"Wood", "Thicket", "Copse", "Coppice", "Clump", "Grove"},
	})
	add(Data{
		Category:    Taiga,
		Texture:     "PineForest",
		Color:       color.NRGBA{R: 0, G: 128, B: 128, A: 255},
		BigNames:    []string{"Forest", "Taiga"},
		MediumNames: []string{"Forest", "Taiga"},
		SmallNames:  []string{"Thicket", "Copse", "Clump", "Pines"},
	})
	add(Data{
		Category:    Jungle,
		Texture:     "Jungle",
		Color:       color.NRGBA{R: 0, G: 255, B: 0, A: 255},
		BigNames:    []string{"Rainforest", "Jungle", "Bush"},
		MediumNames: []string{"Rainforest", "Jungle", "Bush"},
		SmallNames:  []string{"Rainforest", "Jungle", "Bush"},
	})
	return db
}

// Get returns the data for c.
func (db *Database) Get(c Category) Data {
	if !c.Valid() {
		panic(fmt.Sprintf("biome: no data for %s", c))
	}
	return db.entries[c]
}

// BlendColor mixes the category colours by weight.
func (db *Database) BlendColor(w Weights) color.NRGBA {
	var r, g, b float64
	for i, v := range w {
		if v == 0 {
			continue
		}
		c := db.entries[i].Color
		r += float64(c.R) * v
		g += float64(c.G) * v
		b += float64(c.B) * v
	}
	return color.NRGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

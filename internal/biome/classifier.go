package biome

import "math"

// tableSize is the side of the temperature x precipitation lookup table.
const tableSize = 6

// CoastBand is the height above sea level under which land fades to ocean.
const CoastBand = 0.02

// Classifier maps climate to biome weights. It holds no mutable state, so a
// single instance can serve a whole generation pass.
type Classifier struct {
	// table is indexed [temperature][precipitation].
	table [tableSize][tableSize]Category
}

// NewClassifier returns a classifier with the standard lookup table.
func NewClassifier() *Classifier {
	return &Classifier{table: [tableSize][tableSize]Category{
		{Snow, Snow, Snow, Snow, Snow, Snow},
		{Snow, Snow, Taiga, Taiga, Taiga, Taiga},
		{ColdDesert, Plains, Plains, Forest, Forest, Swamp},
		{ColdDesert, Plains, Plains, Forest, Forest, Swamp},
		{Desert, Plains, Plains, Jungle, Jungle, Swamp},
		{Desert, Desert, Plains, Jungle, Jungle, Jungle},
	}}
}

// CategoryAt returns the table entry for a lattice point.
func (c *Classifier) CategoryAt(temperature, precipitation int) Category {
	return c.table[temperature][precipitation]
}

// Weights bilinearly interpolates the lookup table at (temperature,
// precipitation), both in [0,1], then fades toward Ocean when the height
// above sea level drops under CoastBand.
func (c *Classifier) Weights(temperature, precipitation, heightAboveSeaLevel float64) Weights {
	nt := clamp(temperature, 0, 1) * (tableSize - 1)
	np := clamp(precipitation, 0, 1) * (tableSize - 1)

	t0, t1 := int(math.Floor(nt)), int(math.Ceil(nt))
	p0, p1 := int(math.Floor(np)), int(math.Ceil(np))

	dt := nt - float64(t0)
	dp := np - float64(p0)

	var w Weights
	w[c.table[t0][p0]] += (1 - dt) * (1 - dp)
	w[c.table[t1][p0]] += dt * (1 - dp)
	w[c.table[t0][p1]] += (1 - dt) * dp
	w[c.table[t1][p1]] += dt * dp

	if heightAboveSeaLevel < CoastBand {
		t := clamp(heightAboveSeaLevel/CoastBand, 0, 1)
		w = Lerp(Full(Ocean), w, t)
	}
	return w
}

package alphamap

import (
	"math"

	"terragen/internal/biome"
	"terragen/internal/biomemap"
	"terragen/internal/generr"
	"terragen/internal/grid"
	"terragen/internal/valuefield"
)

// Compositor fades a cliff texture in between two slope angles and spends the
// remaining weight on biome textures.
type Compositor struct {
	start, stop float64
}

// NewCompositor creates a compositor. Angles are in degrees; the cliff layer
// is 0 at or below start and 1 at or above stop.
func NewCompositor(start, stop float64) (*Compositor, error) {
	if start < 0 || stop > 90 || stop <= start {
		return nil, generr.Configf("cliff fade angles must satisfy 0 <= start (%f) < stop (%f) <= 90", start, stop)
	}
	return &Compositor{start: start, stop: stop}, nil
}

// CliffWeight maps a slope in degrees to the cliff layer weight.
func (c *Compositor) CliffWeight(slope float64) float64 {
	return clamp01((slope - c.start) / (c.stop - c.start))
}

// Compose returns LayerCount weights for one cell. They sum to 1 whenever w
// does.
func (c *Compositor) Compose(slope float64, w biome.Weights) []float64 {
	out := make([]float64, LayerCount)
	c.composeInto(out, slope, w)
	return out
}

func (c *Compositor) composeInto(out []float64, slope float64, w biome.Weights) {
	cliff := c.CliffWeight(slope)
	out[Cliff] = cliff
	rest := 1 - cliff
	for _, cat := range biome.Categories() {
		out[LayerFor(cat)] = rest * w[cat]
	}
}

// Build composes every cell of biomes using slopes derived from heights.
func (c *Compositor) Build(heights *valuefield.Field, biomes *biomemap.Map, terrain Terrain) (*Alphamap, error) {
	n := heights.Size()
	if biomes.Width() != n || biomes.Height() != n {
		return nil, generr.Configf("biome map %dx%d does not match %dx%d height field",
			biomes.Width(), biomes.Height(), n, n)
	}
	slopes, err := Steepness(heights, terrain)
	if err != nil {
		return nil, err
	}
	a := &Alphamap{size: n, weights: make([]float64, n*n*LayerCount)}
	for i := 0; i < n*n; i++ {
		cell, err := biomes.CellAt(grid.FromIndex(i, n))
		if err != nil {
			return nil, err
		}
		c.composeInto(a.weights[i*LayerCount:(i+1)*LayerCount], slopes[i], cell.Weights)
	}
	return a, nil
}

// Alphamap holds LayerCount weights per cell of a square grid.
type Alphamap struct {
	size    int
	weights []float64
}

// Size returns the side length.
func (a *Alphamap) Size() int { return a.size }

// At returns the layer weights at column x, row y. The slice aliases the
// alphamap and must not be modified.
func (a *Alphamap) At(x, y int) []float64 {
	i := (y*a.size + x) * LayerCount
	return a.weights[i : i+LayerCount : i+LayerCount]
}

// LayerWeights returns a copy indexed [y][x][layer].
func (a *Alphamap) LayerWeights() [][][]float64 {
	out := make([][][]float64, a.size)
	for y := range out {
		out[y] = make([][]float64, a.size)
		for x := range out[y] {
			out[y][x] = append([]float64(nil), a.At(x, y)...)
		}
	}
	return out
}

// Dominant returns the heaviest layer at column x, row y.
func (a *Alphamap) Dominant(x, y int) Layer {
	best, layer := math.Inf(-1), Cliff
	for l, w := range a.At(x, y) {
		if w > best {
			best, layer = w, Layer(l)
		}
	}
	return layer
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Package biomemap labels a grid of biome weights with named, connected
// regions of a single dominant category.
package biomemap

import (
	"fmt"
	"strings"

	"terragen/internal/biome"
	"terragen/internal/generr"
	"terragen/internal/grid"
	"terragen/internal/valuefield"
)

// Unclaimed is the RegionID of a cell no region has claimed.
const Unclaimed = -1

// Cell is the per-position biome state.
type Cell struct {
	Weights biome.Weights
	Primary biome.Category

	Latitude            float64
	HeightAboveSeaLevel float64
	Temperature         float64
	Precipitation       float64

	// RegionID indexes Map.Regions, or is Unclaimed.
	RegionID int

	// region is filled in on copies handed out by CellAt.
	region *Region
}

// Region is a 4-connected component of cells sharing a dominant category.
type Region struct {
	ID       int
	Category biome.Category
	Name     string
	Size     int
	Seed     grid.Point
}

// Map is a fully labelled biome grid. It is immutable once built.
type Map struct {
	width, height int
	cells         []Cell
	regions       []Region
}

// Build labels the given weights, indexed [y][x]. Every vector must satisfy
// the weight invariant.
func Build(weights [][]biome.Weights, namer *biome.Namer) (*Map, error) {
	height := len(weights)
	if height == 0 || len(weights[0]) == 0 {
		return nil, generr.Configf("biome map must have at least one cell")
	}
	width := len(weights[0])
	m := newMap(width, height)
	for y, row := range weights {
		if len(row) != width {
			return nil, generr.Configf("weight row %d has %d cells, expected %d", y, len(row), width)
		}
		for x, w := range row {
			m.cells[y*width+x] = Cell{Weights: w, Primary: w.Primary(), RegionID: Unclaimed}
		}
	}
	if err := m.label(namer); err != nil {
		return nil, err
	}
	return m, nil
}

// FromFields classifies every cell of the height and rain fields and labels
// the result. Latitude runs along y.
func FromFields(heights, rain *valuefield.Field, classifier *biome.Classifier, namer *biome.Namer, seaLevel float64) (*Map, error) {
	if heights.Size() != rain.Size() {
		return nil, generr.Configf("height field size %d does not match rain field size %d", heights.Size(), rain.Size())
	}
	if seaLevel < 0 || seaLevel >= 1 {
		return nil, generr.Configf("sea level %f outside [0,1)", seaLevel)
	}
	n := heights.Size()
	m := newMap(n, n)
	for y := 0; y < n; y++ {
		lat := biome.Latitude(y, n)
		for x := 0; x < n; x++ {
			hasl := biome.HeightAboveSeaLevel(heights.ValueAt(x, y), seaLevel)
			temp := biome.Temperature(lat, hasl)
			p := rain.ValueAt(x, y)
			w := classifier.Weights(temp, p, hasl)
			m.cells[y*n+x] = Cell{
				Weights:             w,
				Primary:             w.Primary(),
				Latitude:            lat,
				HeightAboveSeaLevel: hasl,
				Temperature:         temp,
				Precipitation:       p,
				RegionID:            Unclaimed,
			}
		}
	}
	if err := m.label(namer); err != nil {
		return nil, err
	}
	return m, nil
}

func newMap(width, height int) *Map {
	return &Map{width: width, height: height, cells: make([]Cell, width*height)}
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// CellAt returns a copy of the cell at p.
func (m *Map) CellAt(p grid.Point) (Cell, error) {
	if !p.InBounds(0, 0, m.width, m.height) {
		return Cell{}, fmt.Errorf("cell %s outside %dx%d biome map", p, m.width, m.height)
	}
	c := m.cells[p.Index(m.width)]
	if c.RegionID != Unclaimed {
		c.region = &m.regions[c.RegionID]
	}
	return c, nil
}

// Regions returns the regions in discovery order. The slice must not be
// modified.
func (m *Map) Regions() []Region { return m.regions }

// RegionOf returns the region claiming p.
func (m *Map) RegionOf(p grid.Point) (Region, error) {
	c, err := m.CellAt(p)
	if err != nil {
		return Region{}, err
	}
	if c.region == nil {
		return Region{}, generr.Invariantf("cell %s is unclaimed", p)
	}
	return *c.region, nil
}

// Region returns the region claiming this cell, or nil for a cell not
// obtained through CellAt.
func (c Cell) Region() *Region { return c.region }

// String renders the inspection summary listing every non-zero weight.
func (c Cell) String() string {
	var b strings.Builder
	if c.region != nil {
		fmt.Fprintf(&b, "%s (Area: %d)", c.region.Name, c.region.Size)
	} else {
		b.WriteString("Unnamed Area")
	}
	fmt.Fprintf(&b, " - Latitude: %.3f, Altitude: %.3f, Temperature: %.3f, Precipitation: %.3f - ",
		c.Latitude, c.HeightAboveSeaLevel, c.Temperature, c.Precipitation)
	parts := make([]string, 0, biome.Count)
	for _, cat := range biome.Categories() {
		if w := c.Weights[cat]; w != 0 {
			parts = append(parts, fmt.Sprintf("%s: %.2f", cat, w))
		}
	}
	b.WriteString(strings.Join(parts, ", "))
	return b.String()
}

// Package valuefield generates square grids of values in [0,1] used as
// height and precipitation maps.
package valuefield

import (
	"math"

	"terragen/internal/generr"
	"terragen/internal/grid"
)

// Field is an immutable N x N grid of values in [0,1], stored row-major.
type Field struct {
	size   int
	values []float64
}

// Generator produces a Field. Size reports the side length the generator
// will actually produce, which may differ from the requested one.
type Generator interface {
	Size() int
	Generate() (*Field, error)
}

// NoiseParams controls fractal octave summation for the noise strategies.
type NoiseParams struct {
	Octaves     int
	Frequency   float64 // features across the whole field for the first octave
	Persistence float64
	Lacunarity  float64
}

// DefaultNoiseParams returns four octaves halving in amplitude.
func DefaultNoiseParams() NoiseParams {
	return NoiseParams{Octaves: 4, Frequency: 4, Persistence: 0.5, Lacunarity: 2}
}

func (p NoiseParams) validate() error {
	if p.Octaves <= 0 {
		return generr.Configf("octaves %d must be positive", p.Octaves)
	}
	if p.Frequency <= 0 || p.Lacunarity <= 0 || p.Persistence <= 0 {
		return generr.Configf("noise frequency, persistence and lacunarity must be positive")
	}
	return nil
}

// FromRows builds a Field from rows indexed [y][x]. The rows must form a
// square and every value must lie in [0,1].
func FromRows(rows [][]float64) (*Field, error) {
	n := len(rows)
	if n == 0 {
		return nil, generr.Configf("field must have at least one row")
	}
	f := newField(n)
	for y, row := range rows {
		if len(row) != n {
			return nil, generr.Configf("row %d has %d values, expected %d", y, len(row), n)
		}
		for x, v := range row {
			if math.IsNaN(v) || v < 0 || v > 1 {
				return nil, generr.Configf("value %f at (%d, %d) outside [0,1]", v, x, y)
			}
			f.values[y*n+x] = v
		}
	}
	return f, nil
}

func newField(size int) *Field {
	return &Field{size: size, values: make([]float64, size*size)}
}

// Size returns the side length.
func (f *Field) Size() int { return f.size }

// ValueAt returns the value at column x, row y.
func (f *Field) ValueAt(x, y int) float64 { return f.values[y*f.size+x] }

// At returns the value at p.
func (f *Field) At(p grid.Point) float64 { return f.values[p.Index(f.size)] }

// Values returns a copy of the grid indexed [y][x].
func (f *Field) Values() [][]float64 {
	out := make([][]float64, f.size)
	for y := range out {
		out[y] = make([]float64, f.size)
		copy(out[y], f.values[y*f.size:(y+1)*f.size])
	}
	return out
}

// MinMax returns the smallest and largest value in the field.
func (f *Field) MinMax() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range f.values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
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

func checkSize(size int) error {
	if size <= 0 {
		return generr.Configf("field size %d must be positive", size)
	}
	return nil
}

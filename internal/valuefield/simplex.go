package valuefield

import (
	"math/rand/v2"

	"github.com/ojrac/opensimplex-go"

	"terragen/internal/generr"
)

// Simplex sums octaves of normalised OpenSimplex noise.
type Simplex struct {
	size   int
	params NoiseParams
	noise  opensimplex.Noise
}

// NewSimplex creates a Simplex field generator seeded from r.
func NewSimplex(size int, params NoiseParams, r *rand.Rand) (*Simplex, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, generr.Configf("simplex requires a random source")
	}
	return &Simplex{
		size:   size,
		params: params,
		noise:  opensimplex.NewNormalized(r.Int64()),
	}, nil
}

// Size returns the requested side length.
func (s *Simplex) Size() int { return s.size }

// Generate evaluates the octave sum at every cell.
func (s *Simplex) Generate() (*Field, error) {
	f := newField(s.size)
	inv := 1 / float64(s.size)
	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			f.values[y*s.size+x] = clamp01(s.octaves(float64(x)*inv, float64(y)*inv))
		}
	}
	return f, nil
}

func (s *Simplex) octaves(x, y float64) float64 {
	total, norm := 0.0, 0.0
	amplitude := 1.0
	frequency := s.params.Frequency
	for i := 0; i < s.params.Octaves; i++ {
		total += s.noise.Eval2(x*frequency, y*frequency) * amplitude
		norm += amplitude
		amplitude *= s.params.Persistence
		frequency *= s.params.Lacunarity
	}
	return total / norm
}

package valuefield

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"

	"terragen/internal/generr"
	"terragen/internal/rng"
)

const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
	// perlinSpread scales the random base point so separate instances sample
	// unrelated parts of the noise plane.
	perlinSpread = 100000.0
)

// Perlin samples coherent gradient noise at (x, y) / (size * scale), offset
// by a random per-instance base point.
type Perlin struct {
	size  int
	scale float64
	base  mgl64.Vec2
	noise *perlin.Perlin
}

// NewPerlin creates a Perlin field generator. Larger scales stretch the
// noise so fewer features fit in the field.
func NewPerlin(size int, scale float64, r *rand.Rand) (*Perlin, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if scale <= 0 {
		return nil, generr.Configf("perlin scale %f must be positive", scale)
	}
	if r == nil {
		return nil, generr.Configf("perlin requires a random source")
	}
	return &Perlin{
		size:  size,
		scale: scale,
		base:  rng.InsideUnitCircle(r).Mul(perlinSpread),
		noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, r.Int64()),
	}, nil
}

// Size returns the requested side length; any size is accepted.
func (p *Perlin) Size() int { return p.size }

// Base returns the random offset this instance samples around.
func (p *Perlin) Base() mgl64.Vec2 { return p.base }

// Generate samples the noise over the whole field.
func (p *Perlin) Generate() (*Field, error) {
	f := newField(p.size)
	span := float64(p.size) * p.scale
	for y := 0; y < p.size; y++ {
		for x := 0; x < p.size; x++ {
			px := p.base.X() + float64(x)/span
			py := p.base.Y() + float64(y)/span
			// Noise2D is roughly in [-1,1].
			f.values[y*p.size+x] = clamp01((p.noise.Noise2D(px, py) + 1) / 2)
		}
	}
	return f, nil
}

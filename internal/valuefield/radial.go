package valuefield

import (
	"github.com/go-gl/mathgl/mgl64"

	"terragen/internal/generr"
)

// Radial falls off from 1 at the centre to 0 at an outer radius. Radii are
// fractions of half the field size.
type Radial struct {
	size       int
	zeroRadius float64
	oneRadius  float64

	// Smooth applies smoothstep to the blend between the two radii.
	Smooth bool
}

// NewRadial creates a radial falloff generator. Cells closer than oneRadius
// are 1, cells beyond zeroRadius are 0.
func NewRadial(size int, zeroRadius, oneRadius float64) (*Radial, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if oneRadius < 0 || zeroRadius <= oneRadius {
		return nil, generr.Configf("radial radii must satisfy 0 <= one (%f) < zero (%f)", oneRadius, zeroRadius)
	}
	return &Radial{size: size, zeroRadius: zeroRadius, oneRadius: oneRadius}, nil
}

// Size returns the requested side length.
func (r *Radial) Size() int { return r.size }

// Generate computes the falloff at every cell.
func (r *Radial) Generate() (*Field, error) {
	f := newField(r.size)
	radius := float64(r.size / 2)
	if radius == 0 {
		radius = 1
	}
	centre := mgl64.Vec2{radius, radius}
	for y := 0; y < r.size; y++ {
		for x := 0; x < r.size; x++ {
			d := mgl64.Vec2{float64(x), float64(y)}.Sub(centre).Len() / radius
			t := clamp01((d - r.oneRadius) / (r.zeroRadius - r.oneRadius))
			if r.Smooth {
				t = t * t * (3 - 2*t)
			}
			f.values[y*r.size+x] = 1 - t
		}
	}
	return f, nil
}

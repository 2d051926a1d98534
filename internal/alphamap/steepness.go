package alphamap

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"terragen/internal/generr"
	"terragen/internal/valuefield"
)

// Terrain is the world-space extent a height field is stretched over.
type Terrain struct {
	Width  float64 // horizontal extent along both x and z
	Height float64 // vertical extent of a height value of 1
}

// Steepness returns the slope in degrees at every cell, row-major. Normals
// use central differences, one-sided at the borders.
func Steepness(heights *valuefield.Field, terrain Terrain) ([]float64, error) {
	if terrain.Width <= 0 || terrain.Height <= 0 {
		return nil, generr.Configf("terrain extent %gx%g must be positive", terrain.Width, terrain.Height)
	}
	n := heights.Size()
	out := make([]float64, n*n)
	if n == 1 {
		return out, nil
	}
	spacing := terrain.Width / float64(n-1)
	up := mgl64.Vec3{0, 1, 0}
	for y := 0; y < n; y++ {
		y0, y1 := max(y-1, 0), min(y+1, n-1)
		for x := 0; x < n; x++ {
			x0, x1 := max(x-1, 0), min(x+1, n-1)
			dx := (heights.ValueAt(x1, y) - heights.ValueAt(x0, y)) * terrain.Height / (float64(x1-x0) * spacing)
			dz := (heights.ValueAt(x, y1) - heights.ValueAt(x, y0)) * terrain.Height / (float64(y1-y0) * spacing)
			normal := mgl64.Vec3{-dx, 1, -dz}.Normalize()
			cos := mgl64.Clamp(normal.Dot(up), -1, 1)
			out[y*n+x] = mgl64.RadToDeg(math.Acos(cos))
		}
	}
	return out, nil
}

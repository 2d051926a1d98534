// Package rng wraps math/rand/v2 so every generation stage can share one
// explicitly seeded source.
package rng

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// New creates a deterministic PCG-backed source from the provided seed.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0x9E3779B97F4A7C15))
}

// Range returns a uniform float in [min, max).
func Range(r *rand.Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// IntRange returns a uniform int in [min, max). It returns min when the
// range is empty.
func IntRange(r *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.IntN(max-min)
}

// InsideUnitCircle returns a point uniformly distributed in the unit disc.
func InsideUnitCircle(r *rand.Rand) mgl64.Vec2 {
	angle := r.Float64() * 2 * math.Pi
	radius := math.Sqrt(r.Float64())
	return mgl64.Vec2{radius * math.Cos(angle), radius * math.Sin(angle)}
}

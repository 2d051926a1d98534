package biome

import (
	"math"

	"terragen/internal/generr"
)

// SumTolerance is how far a weight vector's sum may drift from 1.
const SumTolerance = 1e-4

// Weights is a distribution over categories. A valid vector is non-negative
// and sums to 1.
type Weights [Count]float64

// Full returns a vector with all weight on c.
func Full(c Category) Weights {
	var w Weights
	w[c] = 1
	return w
}

// Of returns the weight of c.
func (w Weights) Of(c Category) float64 { return w[c] }

// Sum returns the total weight.
func (w Weights) Sum() float64 {
	s := 0.0
	for _, v := range w {
		s += v
	}
	return s
}

// Primary returns the category with the strictly greatest weight. Earlier
// categories win ties; an all-zero vector falls back to Plains.
func (w Weights) Primary() Category {
	primary := Plains
	best := 0.0
	for i, v := range w {
		if v > best {
			primary = Category(i)
			best = v
		}
	}
	return primary
}

// Lerp blends from -> to by t, where t = 0 yields from.
func Lerp(from, to Weights, t float64) Weights {
	var out Weights
	for i := range out {
		out[i] = (1-t)*from[i] + t*to[i]
	}
	return out
}

// Validate checks the weight vector invariant.
func (w Weights) Validate() error {
	for i, v := range w {
		if v < 0 || math.IsNaN(v) {
			return generr.Invariantf("weight %f for %s is negative", v, Category(i))
		}
	}
	if s := w.Sum(); math.Abs(s-1) > SumTolerance {
		return generr.Invariantf("weights sum to %f, expected 1", s)
	}
	return nil
}

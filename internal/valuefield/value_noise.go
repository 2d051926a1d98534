package valuefield

import "math"

// Deterministic 2D value noise: lattice values come from an integer hash, so
// the same seed always yields the same field without any random source.

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func hash2(x, y, seed int64) uint64 {
	// SplitMix64 finaliser, stable across runs for the same inputs.
	v := uint64(x) + (uint64(y) << 1) + uint64(seed)*0x9E3779B97F4A7C15
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func latticeValue(x, y, seed int64) float64 {
	return float64(hash2(x, y, seed)&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise2D(x, y float64, seed int64) float64 {
	x0, y0 := math.Floor(x), math.Floor(y)
	fx, fy := fade(x-x0), fade(y-y0)

	ix, iy := int64(x0), int64(y0)
	v00 := latticeValue(ix, iy, seed)
	v10 := latticeValue(ix+1, iy, seed)
	v01 := latticeValue(ix, iy+1, seed)
	v11 := latticeValue(ix+1, iy+1, seed)

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fy)
}

func octaveNoise2D(x, y float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	amplitude, frequency := 1.0, 1.0
	sum, norm := 0.0, 0.0
	for i := range octaves {
		sum += valueNoise2D(x*frequency, y*frequency, seed+int64(i*131)) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// ValueNoise produces octave value noise keyed by an integer seed.
type ValueNoise struct {
	size   int
	params NoiseParams
	seed   int64
}

// NewValueNoise creates a ValueNoise generator.
func NewValueNoise(size int, params NoiseParams, seed int64) (*ValueNoise, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &ValueNoise{size: size, params: params, seed: seed}, nil
}

// Size returns the requested side length.
func (v *ValueNoise) Size() int { return v.size }

// Generate evaluates the noise at every cell.
func (v *ValueNoise) Generate() (*Field, error) {
	f := newField(v.size)
	step := v.params.Frequency / float64(v.size)
	for y := 0; y < v.size; y++ {
		for x := 0; x < v.size; x++ {
			n := octaveNoise2D(float64(x)*step, float64(y)*step, v.seed, v.params.Octaves, v.params.Persistence, v.params.Lacunarity)
			f.values[y*v.size+x] = clamp01(n)
		}
	}
	return f, nil
}

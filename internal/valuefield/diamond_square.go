package valuefield

import (
	"math"
	"math/rand/v2"

	"terragen/internal/generr"
	"terragen/internal/grid"
	"terragen/internal/rng"
)

// unset marks cells that have not been assigned yet. Generated values are
// clamped to [0,1], so it can never collide with a real value.
const unset = -1.0

// DiamondSquare generates self-similar relief with the diamond-square
// subdivision algorithm. The side length is always 2^k+1.
type DiamondSquare struct {
	size  int
	rng   *rand.Rand
	seeds map[grid.Point]float64
}

// DiamondSquareSize returns the smallest 2^k+1 that is >= n.
func DiamondSquareSize(n int) int {
	side := 1
	for side+1 < n {
		side *= 2
	}
	return side + 1
}

// NewDiamondSquare creates a generator whose side is size rounded up to
// 2^k+1. The four corners are seeded with 0.5.
func NewDiamondSquare(size int, r *rand.Rand) (*DiamondSquare, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, generr.Configf("diamond-square requires a random source")
	}
	ds := &DiamondSquare{
		size:  DiamondSquareSize(size),
		rng:   r,
		seeds: make(map[grid.Point]float64),
	}
	last := ds.size - 1
	for _, p := range []grid.Point{{0, 0}, {0, last}, {last, 0}, {last, last}} {
		ds.seeds[p] = 0.5
	}
	return ds, nil
}

// Size returns the normalised side length.
func (ds *DiamondSquare) Size() int { return ds.size }

// SetSeed pins the cell at (x, y) to v. Seeded cells keep their exact value
// through generation.
func (ds *DiamondSquare) SetSeed(x, y int, v float64) error {
	p := grid.Pt(x, y)
	if !p.InSquare(ds.size) {
		return generr.Configf("seed %v outside %dx%d field", p, ds.size, ds.size)
	}
	if math.IsNaN(v) || v < 0 || v > 1 {
		return generr.Configf("seed value %f at %v outside [0,1]", v, p)
	}
	ds.seeds[p] = v
	return nil
}

// Seeds returns a copy of the pinned cells.
func (ds *DiamondSquare) Seeds() map[grid.Point]float64 {
	out := make(map[grid.Point]float64, len(ds.seeds))
	for p, v := range ds.seeds {
		out[p] = v
	}
	return out
}

// Generate runs the square and diamond passes with a perturbation scale that
// starts at 1 and halves every step.
func (ds *DiamondSquare) Generate() (*Field, error) {
	n := ds.size
	f := newField(n)
	h := f.values
	for i := range h {
		h[i] = unset
	}
	for p, v := range ds.seeds {
		h[p.Index(n)] = v
	}

	at := func(x, y int) int { return y*n + x }
	wrap := n - 1
	width := n - 1
	scale := 1.0

	for width > 1 {
		half := width / 2

		for y := 0; y < n-1; y += width {
			for x := 0; x < n-1; x += width {
				c := at(x+half, y+half)
				if h[c] != unset {
					continue
				}
				mean := (h[at(x, y)] + h[at(x+width, y)] + h[at(x, y+width)] + h[at(x+width, y+width)]) / 4
				h[c] = clamp01(mean + rng.Range(ds.rng, -scale, scale))
			}
		}

		for x := 0; x < n-1; x += half {
			for y := (x + half) % width; y < n-1; y += width {
				c := at(x, y)
				if h[c] == unset {
					mean := (h[at((x-half+wrap)%wrap, y)] +
						h[at(x, (y-half+wrap)%wrap)] +
						h[at((x+half)%wrap, y)] +
						h[at(x, (y+half)%wrap)]) / 4
					h[c] = clamp01(mean + rng.Range(ds.rng, -scale, scale))
				}
				// Mirror onto the opposite border so the field tiles.
				if x == 0 && h[at(wrap, y)] == unset {
					h[at(wrap, y)] = h[c]
				}
				if y == 0 && h[at(x, wrap)] == unset {
					h[at(x, wrap)] = h[c]
				}
			}
		}

		width /= 2
		scale /= 2
	}

	for i, v := range h {
		if v == unset {
			return nil, generr.Invariantf("diamond-square left cell %v unset", grid.FromIndex(i, n))
		}
	}
	return f, nil
}

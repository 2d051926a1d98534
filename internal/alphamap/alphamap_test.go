package alphamap

import (
	"errors"
	"math"
	"testing"

	"terragen/internal/biome"
	"terragen/internal/biomemap"
	"terragen/internal/generr"
	"terragen/internal/rng"
	"terragen/internal/valuefield"
)

func mixed() biome.Weights {
	var w biome.Weights
	w[biome.Ocean], w[biome.Plains], w[biome.Taiga] = 0.2, 0.5, 0.3
	return w
}

func TestComposeBelowStartKeepsBiomeWeights(t *testing.T) {
	c, err := NewCompositor(30, 50)
	if err != nil {
		t.Fatalf("NewCompositor: %v", err)
	}
	w := mixed()
	layers := c.Compose(12, w)
	if layers[Cliff] != 0 {
		t.Errorf("cliff weight %f, expected 0", layers[Cliff])
	}
	for _, cat := range biome.Categories() {
		if got := layers[LayerFor(cat)]; got != w[cat] {
			t.Errorf("layer %s = %f, expected %f", LayerFor(cat), got, w[cat])
		}
	}
}

func TestComposeCliffFade(t *testing.T) {
	c, _ := NewCompositor(30, 50)
	tests := []struct {
		slope, cliff float64
	}{
		{0, 0}, {30, 0}, {35, 0.25}, {40, 0.5}, {50, 1}, {89, 1},
	}
	for _, tt := range tests {
		layers := c.Compose(tt.slope, mixed())
		if math.Abs(layers[Cliff]-tt.cliff) > 1e-12 {
			t.Errorf("slope %.0f: cliff %f, expected %f", tt.slope, layers[Cliff], tt.cliff)
		}
		sum := 0.0
		for _, v := range layers {
			sum += v
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("slope %.0f: layers sum to %f", tt.slope, sum)
		}
		if want := (1 - tt.cliff) * 0.5; math.Abs(layers[Grass]-want) > 1e-12 {
			t.Errorf("slope %.0f: grass %f, expected %f", tt.slope, layers[Grass], want)
		}
	}
}

func TestNewCompositorRejectsBadAngles(t *testing.T) {
	for _, a := range [][2]float64{{40, 40}, {50, 30}, {-1, 10}, {10, 91}} {
		if _, err := NewCompositor(a[0], a[1]); !errors.Is(err, generr.ErrConfiguration) {
			t.Errorf("NewCompositor(%v, %v) = %v, expected configuration error", a[0], a[1], err)
		}
	}
}

func TestLayerNamesMatchDatabase(t *testing.T) {
	db := biome.NewDatabase()
	seen := make(map[Layer]bool)
	for _, cat := range biome.Categories() {
		l := LayerFor(cat)
		if l == Cliff {
			t.Errorf("%s maps to the cliff layer", cat)
		}
		if seen[l] {
			t.Errorf("layer %s used by two categories", l)
		}
		seen[l] = true
		if got := db.Get(cat).Texture; got != l.String() {
			t.Errorf("%s texture %q, layer %q", cat, got, l)
		}
	}
}

func ramp(t *testing.T, n int) *valuefield.Field {
	t.Helper()
	rows := make([][]float64, n)
	for y := range rows {
		rows[y] = make([]float64, n)
		for x := range rows[y] {
			rows[y][x] = float64(x) / float64(n-1)
		}
	}
	f, err := valuefield.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return f
}

func TestSteepness(t *testing.T) {
	flat, _ := valuefield.FromRows([][]float64{{0.4, 0.4, 0.4}, {0.4, 0.4, 0.4}, {0.4, 0.4, 0.4}})
	slopes, err := Steepness(flat, Terrain{Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("Steepness: %v", err)
	}
	for i, s := range slopes {
		if s != 0 {
			t.Errorf("flat cell %d slope %f", i, s)
		}
	}

	// Rising one unit per unit of run is 45 degrees everywhere.
	slopes, err = Steepness(ramp(t, 5), Terrain{Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("Steepness: %v", err)
	}
	for i, s := range slopes {
		if math.Abs(s-45) > 1e-9 {
			t.Errorf("ramp cell %d slope %f, expected 45", i, s)
		}
	}

	if _, err := Steepness(flat, Terrain{Width: 0, Height: 1}); !errors.Is(err, generr.ErrConfiguration) {
		t.Errorf("expected configuration error for zero width, got %v", err)
	}
}

func TestBuild(t *testing.T) {
	heights := ramp(t, 5)
	rain, _ := valuefield.FromRows([][]float64{
		{0.5, 0.5, 0.5, 0.5, 0.5},
		{0.5, 0.5, 0.5, 0.5, 0.5},
		{0.5, 0.5, 0.5, 0.5, 0.5},
		{0.5, 0.5, 0.5, 0.5, 0.5},
		{0.5, 0.5, 0.5, 0.5, 0.5},
	})
	biomes, err := biomemap.FromFields(heights, rain, biome.NewClassifier(),
		biome.NewNamer(biome.NewDatabase(), rng.New(2)), 0.2)
	if err != nil {
		t.Fatalf("FromFields: %v", err)
	}
	c, _ := NewCompositor(30, 60)
	a, err := c.Build(heights, biomes, Terrain{Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	layers := a.LayerWeights()
	if len(layers) != 5 || len(layers[0]) != 5 || len(layers[0][0]) != LayerCount {
		t.Fatalf("unexpected layer grid shape")
	}
	for y := range layers {
		for x := range layers[y] {
			sum := 0.0
			for _, v := range layers[y][x] {
				sum += v
			}
			if math.Abs(sum-1) > 1e-4 {
				t.Errorf("(%d, %d) layers sum to %f", x, y, sum)
			}
			if math.Abs(layers[y][x][Cliff]-0.5) > 1e-9 {
				t.Errorf("(%d, %d) cliff %f, expected 0.5 on a 45 degree ramp", x, y, layers[y][x][Cliff])
			}
		}
	}
	// Column 0 is at sea level.
	if got := a.Dominant(0, 2); got != Seabed && got != Cliff {
		t.Errorf("shore dominant layer %s", got)
	}

	small, _ := valuefield.FromRows([][]float64{{0}})
	if _, err := c.Build(small, biomes, Terrain{Width: 4, Height: 4}); !errors.Is(err, generr.ErrConfiguration) {
		t.Errorf("expected size mismatch error, got %v", err)
	}
}

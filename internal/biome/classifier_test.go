package biome

import (
	"errors"
	"math"
	"testing"

	"terragen/internal/generr"
)

func TestCategoryNamesExhaustive(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Categories() {
		name := c.String()
		if name == "" {
			t.Errorf("category %d has no name", c)
		}
		if seen[name] {
			t.Errorf("duplicate category name %q", name)
		}
		seen[name] = true
	}
	if Category(Count).Valid() {
		t.Errorf("Category(Count) must be invalid")
	}
	if got := Category(200).String(); got != "Category(200)" {
		t.Errorf("invalid category String() = %q", got)
	}
}

func TestWeightsAtColdDryCorner(t *testing.T) {
	w := NewClassifier().Weights(0, 0, 1)
	for _, c := range Categories() {
		want := 0.0
		if c == Snow {
			want = 1
		}
		if w[c] != want {
			t.Errorf("weight of %s = %f, expected %f", c, w[c], want)
		}
	}
}

func TestWeightsBilinear(t *testing.T) {
	// Halfway between T2 and T3 and between P2 and P3: Plains, Forest,
	// Plains, Forest.
	w := NewClassifier().Weights(0.5, 0.5, 1)
	if math.Abs(w[Plains]-0.5) > 1e-12 || math.Abs(w[Forest]-0.5) > 1e-12 {
		t.Errorf("expected Plains=0.5 Forest=0.5, got Plains=%f Forest=%f", w[Plains], w[Forest])
	}

	// temperature 0.1 -> 0.5 along the axis between Snow rows, precipitation
	// 0.3 -> 1.5 spanning Snow/Snow and Snow/Taiga.
	w = NewClassifier().Weights(0.1, 0.3, 1)
	wantTaiga := 0.5 * 0.5
	if math.Abs(w[Taiga]-wantTaiga) > 1e-12 {
		t.Errorf("Taiga weight = %f, expected %f", w[Taiga], wantTaiga)
	}
	if math.Abs(w[Snow]-(1-wantTaiga)) > 1e-12 {
		t.Errorf("Snow weight = %f, expected %f", w[Snow], 1-wantTaiga)
	}
}

func TestWeightsSumToOne(t *testing.T) {
	c := NewClassifier()
	heights := []float64{-1, -0.5, 0, 0.005, 0.01, 0.019, 0.02, 0.5, 1}
	for ti := 0; ti <= 20; ti++ {
		for pi := 0; pi <= 20; pi++ {
			for _, h := range heights {
				temp, rain := float64(ti)/20, float64(pi)/20
				w := c.Weights(temp, rain, h)
				if err := w.Validate(); err != nil {
					t.Fatalf("Weights(%f, %f, %f): %v", temp, rain, h, err)
				}
			}
		}
	}
}

func TestWeightsOceanBlend(t *testing.T) {
	c := NewClassifier()
	land := c.Weights(0.7, 0.7, 1)

	if w := c.Weights(0.7, 0.7, 0); w != Full(Ocean) {
		t.Errorf("at sea level expected full Ocean, got %v", w)
	}
	if w := c.Weights(0.7, 0.7, -0.4); w != Full(Ocean) {
		t.Errorf("below sea level expected full Ocean, got %v", w)
	}
	half := c.Weights(0.7, 0.7, CoastBand/2)
	if math.Abs(half[Ocean]-0.5) > 1e-12 {
		t.Errorf("halfway through the coast band Ocean = %f, expected 0.5", half[Ocean])
	}
	for _, cat := range Categories() {
		if cat == Ocean {
			continue
		}
		if math.Abs(half[cat]-land[cat]/2) > 1e-12 {
			t.Errorf("%s = %f, expected half of land weight %f", cat, half[cat], land[cat])
		}
	}
	if w := c.Weights(0.7, 0.7, CoastBand); w != land {
		t.Errorf("at the top of the coast band weights should be unblended")
	}
}

func TestWeightsPure(t *testing.T) {
	c := NewClassifier()
	inputs := [][3]float64{{0.33, 0.81, 0.011}, {0.9, 0.1, 0.6}, {0, 1, -0.2}}
	for _, in := range inputs {
		a := c.Weights(in[0], in[1], in[2])
		b := c.Weights(in[0], in[1], in[2])
		for i := range a {
			if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
				t.Errorf("Weights%v not bit-identical at %s", in, Category(i))
			}
		}
	}
}

func TestPrimary(t *testing.T) {
	tests := []struct {
		name string
		w    Weights
		want Category
	}{
		{"all zero falls back to plains", Weights{}, Plains},
		{"single category", Full(Jungle), Jungle},
		{"tie goes to earlier category", func() Weights {
			var w Weights
			w[Forest], w[Desert] = 0.5, 0.5
			return w
		}(), Desert},
		{"strict maximum", func() Weights {
			var w Weights
			w[Ocean], w[Swamp], w[Snow] = 0.2, 0.45, 0.35
			return w
		}(), Swamp},
	}
	for _, tt := range tests {
		if got := tt.w.Primary(); got != tt.want {
			t.Errorf("%s: Primary() = %s, expected %s", tt.name, got, tt.want)
		}
	}
}

func TestValidateRejectsBadWeights(t *testing.T) {
	var short Weights
	short[Plains] = 0.9
	if err := short.Validate(); !errors.Is(err, generr.ErrInvariant) {
		t.Errorf("expected ErrInvariant for sum 0.9, got %v", err)
	}
	neg := Full(Plains)
	neg[Ocean] = -0.1
	neg[Plains] = 1.1
	if err := neg.Validate(); !errors.Is(err, generr.ErrInvariant) {
		t.Errorf("expected ErrInvariant for negative weight, got %v", err)
	}
}

func TestClimate(t *testing.T) {
	if got := HeightAboveSeaLevel(0.25, 0.25); got != 0 {
		t.Errorf("height at sea level = %f, expected 0", got)
	}
	if got := HeightAboveSeaLevel(1, 0.25); got != 1 {
		t.Errorf("peak height = %f, expected 1", got)
	}
	if got := HeightAboveSeaLevel(0, 0.75); got != -1 {
		t.Errorf("deep sea height = %f, expected clamp to -1", got)
	}
	if got := Temperature(0.8, 0.5); math.Abs(got-0.4) > 1e-12 {
		t.Errorf("Temperature(0.8, 0.5) = %f, expected 0.4", got)
	}
	if got := Temperature(0.8, -0.3); got != 0.8 {
		t.Errorf("underwater temperature = %f, expected latitude 0.8", got)
	}
	if got := Latitude(5, 10); got != 0.5 {
		t.Errorf("Latitude(5, 10) = %f", got)
	}
}

package minimap

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"terragen/internal/biome"
	"terragen/internal/biomemap"
	"terragen/internal/rng"
	"terragen/internal/valuefield"
)

func TestHeightmapGray(t *testing.T) {
	f, _ := valuefield.FromRows([][]float64{{0, 1}, {0.5, 0.25}})
	img := Heightmap(f)
	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 0}, {1, 0, 255}, {0, 1, 128}, {1, 1, 64},
	}
	for _, tt := range tests {
		if got := img.GrayAt(tt.x, tt.y).Y; got != tt.want {
			t.Errorf("(%d, %d) = %d, expected %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRainmapBlue(t *testing.T) {
	f, _ := valuefield.FromRows([][]float64{{0, 1}, {1, 0}})
	img := Rainmap(f)
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("dry cell %v, expected white", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("wet cell %v, expected blue", got)
	}
}

func TestBiomeMapColours(t *testing.T) {
	db := biome.NewDatabase()
	rows := [][]biome.Weights{
		{biome.Full(biome.Snow), biome.Full(biome.Snow)},
		{biome.Full(biome.Ocean), biome.Full(biome.Snow)},
	}
	m, err := biomemap.Build(rows, biome.NewNamer(db, rng.New(1)))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	img, err := BiomeMap(m, db, false)
	if err != nil {
		t.Fatalf("BiomeMap: %v", err)
	}
	if got := img.NRGBAAt(1, 1); got != db.Get(biome.Snow).Color {
		t.Errorf("snow cell %v", got)
	}
	if got := img.NRGBAAt(0, 1); got != db.Get(biome.Ocean).Color {
		t.Errorf("ocean cell %v", got)
	}

	outlined, _ := BiomeMap(m, db, true)
	if got := outlined.NRGBAAt(1, 0); got.R != 255 {
		t.Errorf("snow cell surrounded by its own region should stay white, got %v", got)
	}
	if got := outlined.NRGBAAt(0, 0); got.R != 127 {
		t.Errorf("snow cell bordering the ocean should be darkened, got %v", got)
	}
}

func TestBiomeGraphCorners(t *testing.T) {
	db := biome.NewDatabase()
	img := BiomeGraph(biome.NewClassifier(), db, 11)
	if got := img.NRGBAAt(0, 0); got != db.Get(biome.Snow).Color {
		t.Errorf("cold dry corner %v, expected snow", got)
	}
	if got := img.NRGBAAt(10, 10); got != db.Get(biome.Jungle).Color {
		t.Errorf("hot wet corner %v, expected jungle", got)
	}
	if got := img.NRGBAAt(0, 10); got != db.Get(biome.Desert).Color {
		t.Errorf("hot dry corner %v, expected desert", got)
	}
}

func TestRenderScalesAndCaptions(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 2))
	src.SetGray(2, 1, color.Gray{Y: 200})

	plain := Render(src, 4, "")
	if b := plain.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if got := plain.NRGBAAt(11, 7); got != (color.NRGBA{200, 200, 200, 255}) {
		t.Errorf("scaled pixel %v", got)
	}

	captioned := Render(src, 4, "Seed 1")
	if b := captioned.Bounds(); b.Dy() != 8+captionHeight {
		t.Fatalf("caption strip missing: %v", b)
	}
	ink := false
	for y := 8; y < captioned.Bounds().Dy(); y++ {
		for x := 0; x < captioned.Bounds().Dx(); x++ {
			if captioned.NRGBAAt(x, y).R < 128 {
				ink = true
			}
		}
	}
	if !ink {
		t.Error("caption drew no pixels")
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	if err := WritePNG(path, src); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Bounds() != src.Bounds() {
		t.Errorf("decoded bounds %v, expected %v", img.Bounds(), src.Bounds())
	}

	if err := WritePNG(filepath.Join(t.TempDir(), "missing", "map.png"), src); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

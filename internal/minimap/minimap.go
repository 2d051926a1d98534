// Package minimap rasterises generated fields into diagnostic images.
package minimap

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"terragen/internal/biome"
	"terragen/internal/biomemap"
	"terragen/internal/grid"
	"terragen/internal/valuefield"
)

// captionHeight is the strip added below an image for its caption.
const captionHeight = 16

// Heightmap renders a field as grayscale, black at 0 and white at 1.
func Heightmap(f *valuefield.Field) *image.Gray {
	n := f.Size()
	img := image.NewGray(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(f.ValueAt(x, y)*255 + 0.5)})
		}
	}
	return img
}

// Rainmap renders precipitation from white (dry) to blue (wet).
func Rainmap(f *valuefield.Field) *image.NRGBA {
	n := f.Size()
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			dry := uint8((1-f.ValueAt(x, y))*255 + 0.5)
			img.SetNRGBA(x, y, color.NRGBA{R: dry, G: dry, B: 255, A: 255})
		}
	}
	return img
}

// BiomeMap renders every cell as its weight-blended category colour. When
// outline is set, cells on a region boundary are darkened.
func BiomeMap(m *biomemap.Map, db *biome.Database, outline bool) (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, m.Width(), m.Height()))
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := grid.Pt(x, y)
			c, err := m.CellAt(p)
			if err != nil {
				return nil, err
			}
			col := db.BlendColor(c.Weights)
			if outline && onBoundary(m, p, c.RegionID) {
				col.R, col.G, col.B = col.R/2, col.G/2, col.B/2
			}
			img.SetNRGBA(x, y, col)
		}
	}
	return img, nil
}

func onBoundary(m *biomemap.Map, p grid.Point, region int) bool {
	for _, n := range p.Cardinal() {
		c, err := m.CellAt(n)
		if err == nil && c.RegionID != region {
			return true
		}
	}
	return false
}

// BiomeGraph plots the classifier over temperature (rows, cold at the top)
// and precipitation (columns, dry on the left) at full height above sea level.
func BiomeGraph(c *biome.Classifier, db *biome.Database, size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	span := float64(max(size-1, 1))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			w := c.Weights(float64(y)/span, float64(x)/span, 1)
			img.SetNRGBA(x, y, db.BlendColor(w))
		}
	}
	return img
}

// Render upscales src by an integer factor with nearest-neighbour sampling
// and, when caption is non-empty, writes it in a strip under the image.
func Render(src image.Image, scale int, caption string) *image.NRGBA {
	scale = max(scale, 1)
	b := src.Bounds()
	w, h := b.Dx()*scale, b.Dy()*scale
	extra := 0
	if caption != "" {
		extra = captionHeight
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h+extra))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.NearestNeighbor.Scale(dst, image.Rect(0, 0, w, h), src, b, draw.Src, nil)
	if caption != "" {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.Black,
			Face: basicfont.Face7x13,
			Dot:  fixed.P(2, h+captionHeight-4),
		}
		d.DrawString(caption)
	}
	return dst
}

// WritePNG encodes img to path, replacing any existing file.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

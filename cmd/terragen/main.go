package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"terragen/internal/config"
	"terragen/internal/minimap"
	"terragen/internal/profiling"
	"terragen/internal/world"
)

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "", "directory for diagnostic PNGs (empty = none)")
	scale := flag.Int("scale", 2, "pixel scale of the diagnostic PNGs")
	inspect := flag.String("inspect", "", "print the biome cell at x,y")
	regions := flag.Int("regions", 10, "number of largest regions to print")
	flag.Parse()

	rec := profiling.NewRecorder()
	fs, err := world.Generate(cfg, world.Options{Logger: log.Default(), Recorder: rec})
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	log.Printf("Slowest stages: %s", rec.TopN(3))

	fmt.Printf("%d regions over %dx%d cells\n", len(fs.Biomes.Regions()), fs.Size(), fs.Size())
	for _, r := range fs.LargestRegions(*regions) {
		fmt.Printf("%6d  %-10s %s (seed %s)\n", r.Size, r.Category, r.Name, r.Seed)
	}

	if *inspect != "" {
		p, err := parsePoint(*inspect)
		if err != nil {
			log.Fatalf("inspect: %v", err)
		}
		c, err := fs.CellAt(p)
		if err != nil {
			log.Fatalf("inspect: %v", err)
		}
		fmt.Printf("%s: %s\n", p, c)
	}

	if *out != "" {
		if err := writeImages(fs, *out, *scale); err != nil {
			log.Fatalf("export: %v", err)
		}
	}
}

// writeImages exports the height, rain and biome maps and the biome graph.
func writeImages(fs *world.Fieldset, dir string, scale int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	biomes, err := minimap.BiomeMap(fs.Biomes, fs.Database, true)
	if err != nil {
		return err
	}
	images := []struct {
		name    string
		img     image.Image
		caption string
	}{
		{"heightmap.png", minimap.Heightmap(fs.Heightmap), "Height " + fs.Config.String()},
		{"rainmap.png", minimap.Rainmap(fs.Rainmap), "Precipitation"},
		{"biomes.png", biomes, fmt.Sprintf("%d regions", len(fs.Biomes.Regions()))},
		{"biome_graph.png", minimap.BiomeGraph(fs.Classifier, fs.Database, 128), "T down, P right"},
	}
	for _, im := range images {
		path := filepath.Join(dir, im.name)
		if err := minimap.WritePNG(path, minimap.Render(im.img, scale, im.caption)); err != nil {
			return err
		}
		log.Printf("Wrote %s", path)
	}
	return nil
}

// Package world runs the full terrain pipeline: height and rain fields, biome
// classification and regions, and the texture alphamap.
package world

import (
	"cmp"
	"fmt"
	"io"
	"log"
	"math"
	"slices"
	"time"

	"terragen/internal/alphamap"
	"terragen/internal/biome"
	"terragen/internal/biomemap"
	"terragen/internal/config"
	"terragen/internal/grid"
	"terragen/internal/profiling"
	"terragen/internal/rng"
	"terragen/internal/valuefield"
)

// Stage names used for timing.
const (
	StageHeightmap = "heightmap"
	StageRainmap   = "rainmap"
	StageBiomeMap  = "biomemap"
	StageAlphamap  = "alphamap"
)

// Options controls side outputs of Generate.
type Options struct {
	// Logger receives one line per stage. Nil discards.
	Logger *log.Logger
	// Recorder accumulates stage timings. Nil uses a private recorder.
	Recorder *profiling.Recorder
}

// Fieldset is one generated world. Every field is square with side Size().
type Fieldset struct {
	Config     config.WorldGen
	Heightmap  *valuefield.Field
	Rainmap    *valuefield.Field
	Biomes     *biomemap.Map
	Alphamap   *alphamap.Alphamap
	Classifier *biome.Classifier
	Database   *biome.Database
	Timings    []profiling.Stage
}

// Generate validates cfg and runs every stage in order. The same config
// always yields the same world.
func Generate(cfg config.WorldGen, opts Options) (*Fieldset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	rec := opts.Recorder
	if rec == nil {
		rec = profiling.NewRecorder()
	}

	compositor, err := alphamap.NewCompositor(cfg.CliffFadeStartAngle, cfg.CliffFadeStopAngle)
	if err != nil {
		return nil, err
	}
	r := rng.New(cfg.Seed)
	fs := &Fieldset{
		Config:     cfg,
		Classifier: biome.NewClassifier(),
		Database:   biome.NewDatabase(),
	}
	namer := biome.NewNamer(fs.Database, r)

	start := time.Now()
	stage := func(name string, run func() error) error {
		stop := rec.Track(name)
		if err := run(); err != nil {
			return fmt.Errorf("generate %s: %w", name, err)
		}
		logger.Printf("Generate %s: %s", name, profiling.FormatDuration(stop()))
		return nil
	}

	err = stage(StageHeightmap, func() error {
		g, err := heightGenerator(cfg, r)
		if err != nil {
			return err
		}
		fs.Heightmap, err = g.Generate()
		return err
	})
	if err != nil {
		return nil, err
	}
	err = stage(StageRainmap, func() error {
		p, err := valuefield.NewPerlin(fs.Heightmap.Size(), cfg.RainScale, r)
		if err != nil {
			return err
		}
		fs.Rainmap, err = p.Generate()
		return err
	})
	if err != nil {
		return nil, err
	}
	err = stage(StageBiomeMap, func() error {
		var err error
		fs.Biomes, err = biomemap.FromFields(fs.Heightmap, fs.Rainmap, fs.Classifier, namer, cfg.SeaLevel)
		return err
	})
	if err != nil {
		return nil, err
	}
	err = stage(StageAlphamap, func() error {
		terrain := alphamap.Terrain{Width: cfg.TerrainWidth, Height: cfg.TerrainHeight}
		var err error
		fs.Alphamap, err = compositor.Build(fs.Heightmap, fs.Biomes, terrain)
		return err
	})
	if err != nil {
		return nil, err
	}

	fs.Timings = rec.Stages()
	logger.Printf("Total: %s (%d regions, %s)", profiling.FormatDuration(time.Since(start)), len(fs.Biomes.Regions()), cfg)
	return fs, nil
}

// Size returns the side length shared by every field.
func (fs *Fieldset) Size() int { return fs.Heightmap.Size() }

// GridPos maps a terrain-local world position to the heightmap cell under it.
// ok is false outside the terrain.
func (fs *Fieldset) GridPos(x, z float64) (p grid.Point, ok bool) {
	n := float64(fs.Size())
	p = grid.Pt(
		int(math.Floor(x*n/fs.Config.TerrainWidth)),
		int(math.Floor(z*n/fs.Config.TerrainWidth)),
	)
	return p, p.InSquare(fs.Size())
}

// CellAt returns the biome cell at p.
func (fs *Fieldset) CellAt(p grid.Point) (biomemap.Cell, error) {
	return fs.Biomes.CellAt(p)
}

// LargestRegions returns up to n regions by descending size. Ties keep
// discovery order.
func (fs *Fieldset) LargestRegions(n int) []biomemap.Region {
	regions := slices.Clone(fs.Biomes.Regions())
	slices.SortStableFunc(regions, func(a, b biomemap.Region) int {
		return cmp.Compare(b.Size, a.Size)
	})
	return regions[:min(n, len(regions))]
}

package world

import (
	"math/rand/v2"

	"terragen/internal/config"
	"terragen/internal/generr"
	"terragen/internal/valuefield"
)

// heightGenerator builds the configured height strategy. Diamond-square maps
// are seeded as an island.
func heightGenerator(cfg config.WorldGen, r *rand.Rand) (valuefield.Generator, error) {
	params := valuefield.NoiseParams{
		Octaves:     cfg.NoiseOctaves,
		Frequency:   cfg.NoiseFrequency,
		Persistence: cfg.NoisePersistence,
		Lacunarity:  cfg.NoiseLacunarity,
	}
	switch cfg.HeightStrategy {
	case config.HeightDiamondSquare:
		ds, err := valuefield.NewDiamondSquare(cfg.Size, r)
		if err != nil {
			return nil, err
		}
		if err := seedIsland(ds, r); err != nil {
			return nil, err
		}
		return ds, nil
	case config.HeightPerlin:
		return valuefield.NewPerlin(cfg.Size, 1/cfg.NoiseFrequency, r)
	case config.HeightSimplex:
		return valuefield.NewSimplex(cfg.Size, params, r)
	case config.HeightValue:
		return valuefield.NewValueNoise(cfg.Size, params, r.Int64())
	case config.HeightRadial:
		return valuefield.NewRadial(cfg.Size, cfg.RadialZeroRadius, cfg.RadialOneRadius)
	}
	return nil, generr.Configf("unknown height strategy %q", cfg.HeightStrategy)
}

// seedIsland pins random heights on the interior quarter points and sinks the
// whole border to 0 so the land is surrounded by sea.
func seedIsland(ds *valuefield.DiamondSquare, r *rand.Rand) error {
	size := ds.Size()
	quarter := (size - 1) / 4
	if quarter > 0 {
		for x := 1; x <= 3; x++ {
			for y := 1; y <= 3; y++ {
				if err := ds.SetSeed(x*quarter, y*quarter, r.Float64()); err != nil {
					return err
				}
			}
		}
	}
	last := size - 1
	for i := 0; i < size; i++ {
		for _, p := range [][2]int{{i, 0}, {i, last}, {0, i}, {last, i}} {
			if err := ds.SetSeed(p[0], p[1], 0); err != nil {
				return err
			}
		}
	}
	return nil
}

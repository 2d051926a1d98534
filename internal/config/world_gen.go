package config

import (
	"flag"
	"fmt"
	"strings"

	"terragen/internal/generr"
)

// Height field strategies.
const (
	HeightDiamondSquare = "diamond-square"
	HeightPerlin        = "perlin"
	HeightSimplex       = "simplex"
	HeightValue         = "value"
	HeightRadial        = "radial"
)

var heightStrategies = []string{HeightDiamondSquare, HeightPerlin, HeightSimplex, HeightValue, HeightRadial}

// WorldGen holds world generation configuration
type WorldGen struct {
	Size           int
	Seed           int64
	SeaLevel       float64
	HeightStrategy string

	// RainScale is the Perlin feature scale of the precipitation field.
	RainScale float64

	// Slopes in degrees between which the cliff texture fades in.
	CliffFadeStartAngle float64
	CliffFadeStopAngle  float64

	// World-space extent of the terrain.
	TerrainWidth  float64
	TerrainHeight float64

	// Radial falloff radii as fractions of half the field size.
	RadialZeroRadius float64
	RadialOneRadius  float64

	// Octave noise (simplex and value strategies).
	NoiseOctaves     int
	NoiseFrequency   float64
	NoisePersistence float64
	NoiseLacunarity  float64
}

// Default returns the settings used when nothing is overridden.
func Default() WorldGen {
	return WorldGen{
		Size:                257,
		Seed:                1,
		SeaLevel:            0.25,
		HeightStrategy:      HeightDiamondSquare,
		RainScale:           0.2,
		CliffFadeStartAngle: 30,
		CliffFadeStopAngle:  50,
		TerrainWidth:        1000,
		TerrainHeight:       200,
		RadialZeroRadius:    1,
		RadialOneRadius:     0.3,
		NoiseOctaves:        4,
		NoiseFrequency:      4,
		NoisePersistence:    0.5,
		NoiseLacunarity:     2,
	}
}

// Bind attaches the settings to the provided FlagSet.
func (c *WorldGen) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "heightmap side length (diamond-square rounds up to 2^k+1)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for every random source")
	fs.Float64Var(&c.SeaLevel, "sea-level", c.SeaLevel, "raw height treated as sea level, in [0,1)")
	fs.StringVar(&c.HeightStrategy, "height", c.HeightStrategy, "height strategy: "+strings.Join(heightStrategies, "|"))
	fs.Float64Var(&c.RainScale, "rain-scale", c.RainScale, "feature scale of the precipitation noise")
	fs.Float64Var(&c.CliffFadeStartAngle, "cliff-start", c.CliffFadeStartAngle, "slope in degrees where cliffs start to show")
	fs.Float64Var(&c.CliffFadeStopAngle, "cliff-stop", c.CliffFadeStopAngle, "slope in degrees where cliffs are fully shown")
	fs.Float64Var(&c.TerrainWidth, "terrain-width", c.TerrainWidth, "world-space width of the terrain")
	fs.Float64Var(&c.TerrainHeight, "terrain-height", c.TerrainHeight, "world-space height of the highest terrain")
	fs.Float64Var(&c.RadialZeroRadius, "radial-zero", c.RadialZeroRadius, "radial falloff outer radius")
	fs.Float64Var(&c.RadialOneRadius, "radial-one", c.RadialOneRadius, "radial falloff inner radius")
	fs.IntVar(&c.NoiseOctaves, "octaves", c.NoiseOctaves, "noise octaves")
	fs.Float64Var(&c.NoiseFrequency, "frequency", c.NoiseFrequency, "base noise frequency across the map")
	fs.Float64Var(&c.NoisePersistence, "persistence", c.NoisePersistence, "amplitude falloff per octave")
	fs.Float64Var(&c.NoiseLacunarity, "lacunarity", c.NoiseLacunarity, "frequency growth per octave")
}

// Validate reports the first setting that cannot produce a world.
func (c WorldGen) Validate() error {
	switch {
	case c.Size <= 0:
		return generr.Configf("size %d must be positive", c.Size)
	case c.SeaLevel < 0 || c.SeaLevel >= 1:
		return generr.Configf("sea level %g outside [0,1)", c.SeaLevel)
	case !validStrategy(c.HeightStrategy):
		return generr.Configf("unknown height strategy %q", c.HeightStrategy)
	case c.RainScale <= 0:
		return generr.Configf("rain scale %g must be positive", c.RainScale)
	case c.CliffFadeStartAngle < 0 || c.CliffFadeStopAngle > 90 || c.CliffFadeStopAngle <= c.CliffFadeStartAngle:
		return generr.Configf("cliff fade angles %g..%g must be increasing within [0,90]", c.CliffFadeStartAngle, c.CliffFadeStopAngle)
	case c.TerrainWidth <= 0 || c.TerrainHeight <= 0:
		return generr.Configf("terrain extent %gx%g must be positive", c.TerrainWidth, c.TerrainHeight)
	case c.RadialOneRadius < 0 || c.RadialZeroRadius <= c.RadialOneRadius:
		return generr.Configf("radial radii must satisfy 0 <= one (%g) < zero (%g)", c.RadialOneRadius, c.RadialZeroRadius)
	case c.NoiseOctaves <= 0:
		return generr.Configf("octaves %d must be positive", c.NoiseOctaves)
	case c.NoiseFrequency <= 0 || c.NoisePersistence <= 0 || c.NoiseLacunarity <= 0:
		return generr.Configf("noise frequency, persistence and lacunarity must be positive")
	}
	return nil
}

func (c WorldGen) String() string {
	return fmt.Sprintf("%s %dx%d seed=%d sea=%.2f", c.HeightStrategy, c.Size, c.Size, c.Seed, c.SeaLevel)
}

func validStrategy(s string) bool {
	for _, v := range heightStrategies {
		if v == s {
			return true
		}
	}
	return false
}

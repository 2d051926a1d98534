package biome

// Latitude maps a row to [0,1] across a field of the given size.
func Latitude(y, size int) float64 {
	if size <= 0 {
		return 0
	}
	return clamp(float64(y)/float64(size), 0, 1)
}

// HeightAboveSeaLevel maps a raw height in [0,1] to [-1,1], where 0 is the
// sea level and 1 the highest possible terrain.
func HeightAboveSeaLevel(height, seaLevel float64) float64 {
	if seaLevel >= 1 {
		return -1
	}
	return clamp((height-seaLevel)/(1-seaLevel), -1, 1)
}

// Temperature is warmest at high latitude values and cools with altitude.
func Temperature(latitude, heightAboveSeaLevel float64) float64 {
	return latitude * (1 - clamp(heightAboveSeaLevel, 0, 1))
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

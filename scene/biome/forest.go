package biome

// Forest is the default biome: dense tree cover with sparse rocks.
type Forest struct{}

func (Forest) Name() string {
	return "forest"
}

func (Forest) Weights() map[string]float64 {
	return map[string]float64{
		"trees":      0.60,
		"trees_bare": 0.0,
		"boulders":   0.05,
		"rocks":      0.05,
		"bushes":     0.15,
		"ferns":      0.10,
		"grass":      0.05,
	}
}

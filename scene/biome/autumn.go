package biome

// Autumn blends leafy and bare trees with heavier undergrowth.
type Autumn struct{}

func (Autumn) Name() string {
	return "autumn"
}

func (Autumn) Weights() map[string]float64 {
	return map[string]float64{
		"trees":      0.20,
		"trees_bare": 0.15,
		"boulders":   0.08,
		"rocks":      0.12,
		"bushes":     0.18,
		"ferns":      0.15,
		"grass":      0.12,
	}
}

package biome

// Winter mixes bare trees with exposed rock.
type Winter struct{}

func (Winter) Name() string {
	return "winter"
}

func (Winter) Weights() map[string]float64 {
	return map[string]float64{
		"trees":      0.10,
		"trees_bare": 0.25,
		"boulders":   0.15,
		"rocks":      0.25,
		"bushes":     0.05,
		"ferns":      0.10,
		"grass":      0.10,
	}
}

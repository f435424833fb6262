package biome

// Meadow is open ground: mostly grass and ferns, few trees.
type Meadow struct{}

func (Meadow) Name() string {
	return "meadow"
}

func (Meadow) Weights() map[string]float64 {
	return map[string]float64{
		"trees":      0.10,
		"trees_bare": 0.0,
		"boulders":   0.03,
		"rocks":      0.07,
		"bushes":     0.15,
		"ferns":      0.30,
		"grass":      0.35,
	}
}

package biome

// Rocky favours boulders and scree over canopy.
type Rocky struct{}

func (Rocky) Name() string {
	return "rocky"
}

func (Rocky) Weights() map[string]float64 {
	return map[string]float64{
		"trees":      0.08,
		"trees_bare": 0.0,
		"boulders":   0.20,
		"rocks":      0.30,
		"bushes":     0.12,
		"ferns":      0.15,
		"grass":      0.15,
	}
}

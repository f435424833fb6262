package biome

// Realistic is the override biome used when the scene is built from the
// photorealistic tree set instead of the stylised one.
type Realistic struct{}

func (Realistic) Name() string {
	return "realistic"
}

func (Realistic) Weights() map[string]float64 {
	return map[string]float64{
		"trees_realistic": 0.60,
		"boulders":        0.08,
		"rocks":           0.12,
		"bushes":          0.10,
		"ferns":           0.05,
		"grass":           0.05,
	}
}

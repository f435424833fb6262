package scene

import (
	"fmt"
	"sort"
)

// Preset is a named environment bundle applied on top of a Config.
type Preset struct {
	Name        string
	Description string

	// HeightScale and NoiseScale retune the terrain; BiomeOverride forces a
	// single biome for the whole scene when non-empty.
	HeightScale   float64
	NoiseScale    float64
	BiomeOverride string
	// WaterPonds toggles pond carving inside clearings.
	WaterPonds bool
}

var presets = map[string]Preset{
	"forest_park": {
		Name:        "forest_park",
		Description: "Lush flat forest with boulders and ponds",
		NoiseScale:  0.02,
		WaterPonds:  true,
	},
	"autumn_forest": {
		Name:          "autumn_forest",
		Description:   "Fall colours and misty undergrowth",
		NoiseScale:    0.02,
		BiomeOverride: "autumn",
		WaterPonds:    true,
	},
	"rocky_highlands": {
		Name:          "rocky_highlands",
		Description:   "Sparse trees over rolling rocky ground",
		HeightScale:   6,
		NoiseScale:    0.03,
		BiomeOverride: "rocky",
	},
	"winter_forest": {
		Name:          "winter_forest",
		Description:   "Bare trees and exposed rock, frozen ponds off",
		NoiseScale:    0.02,
		BiomeOverride: "winter",
	},
	"realistic_grove": {
		Name:          "realistic_grove",
		Description:   "Photorealistic tree set, flat ground",
		NoiseScale:    0.02,
		BiomeOverride: "realistic",
		WaterPonds:    true,
	},
}

// PresetNames returns the available preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPreset returns the preset registered under the name given.
func LookupPreset(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q", name)
	}
	return p, nil
}

// WithPreset returns a copy of the configuration with the preset's
// environment applied.
func (c Config) WithPreset(p Preset) Config {
	c.HeightScale = p.HeightScale
	c.NoiseScale = p.NoiseScale
	c.BiomeOverride = p.BiomeOverride
	if !p.WaterPonds {
		c.PondChance = 0
	}
	return c
}

// Package terrain implements the multi-pass value-noise height field the
// scene is draped over. Heights are deterministic for a given seed,
// independent of query order, and memoised at a fixed spatial quantisation.
package terrain

import (
	"math"

	"github.com/brentp/intintmap"
	"github.com/go-gl/mathgl/mgl64"
)

// BlendMode controls how a terrain pass is combined with previous passes.
type BlendMode string

const (
	// BlendBase replaces the running value with the pass value.
	BlendBase BlendMode = "base"
	// BlendAdd adds the positive part of the pass value.
	BlendAdd BlendMode = "add"
	// BlendSubtract subtracts the positive part of the pass value.
	BlendSubtract BlendMode = "subtract"
	// BlendMix linearly interpolates towards the pass value.
	BlendMix BlendMode = "mix"
)

// Pass is one layer of fractal noise contributing to the height field.
type Pass struct {
	Octaves   int       `toml:"octaves"`
	Frequency float64   `toml:"frequency"`
	Scale     float64   `toml:"scale"`
	Blend     BlendMode `toml:"blend"`
	Contrast  float64   `toml:"contrast"`
}

// DefaultPasses returns the standard two-layer terrain: a broad base layer
// and a higher-frequency detail layer blended additively.
func DefaultPasses() []Pass {
	return []Pass{
		{Octaves: 4, Frequency: 0.5, Scale: 1.0, Blend: BlendBase, Contrast: 1.0},
		{Octaves: 2, Frequency: 1.5, Scale: 0.3, Blend: BlendAdd, Contrast: 1.2},
	}
}

// HeightField evaluates terrain height at continuous (x, z) coordinates.
// Raw heights are cached at 0.1-unit quantisation; path flattening is applied
// after the cache on every query so the cache never depends on the path.
type HeightField struct {
	seed          int64
	passes        []Pass
	noiseScale    float64
	heightScale   float64
	flattenRadius float64

	cache *intintmap.Map
}

// Config holds the height field parameters. The zero value of NoiseScale and
// FlattenRadius disables the respective feature; a HeightScale of 0 yields
// perfectly flat terrain, which is the default operating mode.
type Config struct {
	Seed          int64
	Passes        []Pass
	NoiseScale    float64
	HeightScale   float64
	FlattenRadius float64
}

// New creates a height field with an empty cache.
func New(conf Config) *HeightField {
	passes := conf.Passes
	if len(passes) == 0 {
		passes = DefaultPasses()
	}
	for i, p := range passes {
		if p.Octaves <= 0 {
			p.Octaves = 4
		}
		if p.Frequency == 0 {
			p.Frequency = 0.6
		}
		if p.Scale == 0 {
			p.Scale = 1
		}
		if p.Contrast == 0 {
			p.Contrast = 1
		}
		if p.Blend == "" {
			p.Blend = BlendBase
		}
		passes[i] = p
	}
	return &HeightField{
		seed:          conf.Seed,
		passes:        passes,
		noiseScale:    conf.NoiseScale,
		heightScale:   conf.HeightScale,
		flattenRadius: conf.FlattenRadius,
		cache:         intintmap.New(4096, 0.6),
	}
}

// Seed offsets keep each pass on an independent slice of the lattice.
const passSeedStride = 100

// Height returns terrain height at (x, z) with no path flattening applied.
func (h *HeightField) Height(x, z float64) float64 {
	key := cacheKey(x, z)
	if bits, ok := h.cache.Get(key); ok {
		return math.Float64frombits(uint64(bits))
	}

	var height float64
	for i, p := range h.passes {
		v := fbm(x*h.noiseScale, z*h.noiseScale, p.Octaves, p.Frequency, h.seed+int64(i)*passSeedStride)
		v = contrast(v, p.Contrast)
		v *= p.Scale
		height = blend(height, v, p.Blend)
	}

	// Remap [-1, 1] to [0, 1] before applying the global height scale.
	height = (height + 1) * 0.5 * h.heightScale

	h.cache.Put(key, int64(math.Float64bits(height)))
	return height
}

// HeightNear returns terrain height at (x, z) with the valley flattening
// applied for proximity to the path polyline provided.
func (h *HeightField) HeightNear(x, z float64, path []mgl64.Vec2) float64 {
	return h.flatten(h.Height(x, z), x, z, path)
}

// ClearCache discards all memoised heights. Heights computed afterwards still
// match earlier ones unless the field was built with a different seed.
func (h *HeightField) ClearCache() {
	h.cache = intintmap.New(4096, 0.6)
}

func (h *HeightField) flatten(height, x, z float64, path []mgl64.Vec2) float64 {
	if len(path) == 0 || h.flattenRadius <= 0 {
		return height
	}
	minSq := math.Inf(1)
	for _, p := range path {
		dx, dz := x-p.X(), z-p.Y()
		if d := dx*dx + dz*dz; d < minSq {
			minSq = d
		}
	}
	dist := math.Sqrt(minSq)
	if outer := h.flattenRadius * 2; dist < outer {
		height *= smoothstep(math.Min(1, dist/outer))
	}
	return height
}

func blend(base, v float64, mode BlendMode) float64 {
	switch mode {
	case BlendAdd:
		return base + math.Max(0, v)
	case BlendSubtract:
		return base - math.Max(0, v)
	case BlendMix:
		return v
	default: // BlendBase and unknown modes replace.
		return v
	}
}

// cacheKey quantises coordinates to 0.1 units and packs them into a single
// int64 map key.
func cacheKey(x, z float64) int64 {
	qx := int64(math.Round(x * 10))
	qz := int64(math.Round(z * 10))
	return qx<<32 | qz&0xffffffff
}

package scene

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gladegen/glade/scene/asset"
	"github.com/gladegen/glade/scene/biome"
	"github.com/gladegen/glade/scene/terrain"
)

var (
	// ErrControlPoints is returned when the configured control point count is
	// below the spline minimum.
	ErrControlPoints = errors.New("path needs at least 4 control points")
	// ErrNonPositive is returned for length or radius parameters that must be
	// strictly positive.
	ErrNonPositive = errors.New("parameter must be positive")
)

// Config contains the full parameter set for generating a scene. The zero
// value is not useful on its own; start from DefaultConfig and override.
type Config struct {
	// Log is the Logger generation progress is reported to. If nil, Log is
	// set to slog.Default().
	Log *slog.Logger
	// Seed drives every random decision of the run. Identical seed and
	// configuration produce an identical scene.
	Seed int64

	// PathLength is the forward extent of the main path in world units.
	// ControlPoints is the number of spline control points the path is grown
	// from; Wander is the maximum lateral jitter per control point.
	PathLength    float64
	ControlPoints int
	Wander        float64
	// SamplesPerSegment is the spline sampling density of the main path.
	SamplesPerSegment int

	// SecondaryPaths is the number of branch paths forked off the main path.
	// Zero is valid and disables branching.
	SecondaryPaths      int
	SecondaryPathLength float64
	SecondaryPathWander float64

	// ScatterInner and ScatterOuter bound the annulus around the path where
	// ordinary objects may be placed.
	ScatterInner float64
	ScatterOuter float64
	// TreeChance is the per-candidate acceptance probability of the tree
	// priority pass. Zero disables the pass.
	TreeChance float64

	// DisablePoisson selects the legacy per-segment scattering mode instead
	// of Poisson-disc candidate sampling. ObjectsPerSegment is the legacy
	// mode's per-segment budget.
	DisablePoisson    bool
	ObjectsPerSegment int
	PoissonRadius     float64
	PoissonAttempts   int
	PoissonGridScale  float64

	// ClearingChance and ClearingRadius control the no-placement discs carved
	// along the path; PondChance is the fraction of clearings that become
	// water features.
	ClearingChance float64
	ClearingRadius float64
	PondChance     float64
	// ClusterChance is the probability an accepted tree, boulder or bush
	// attracts satellite objects.
	ClusterChance float64

	// BiomeSegmentLength is the path distance a single biome spans.
	// BiomeOverride, when non-empty, forces that biome unconditionally.
	// Biomes is the rotation of weighting profiles; defaults to
	// biome.Default().
	BiomeSegmentLength float64
	BiomeOverride      string
	Biomes             []biome.Biome

	// TerrainPasses layers the height field; NoiseScale and HeightScale are
	// the global noise frequency and amplitude. A HeightScale of 0 produces
	// perfectly flat terrain and is the default. FlattenRadius is the
	// half-width of the valley smoothed along the path.
	TerrainPasses []terrain.Pass
	NoiseScale    float64
	HeightScale   float64
	FlattenRadius float64

	// GrassSpacing and GrassProximity control the dense ground-cover pass;
	// GroundSize bounds the legacy grid fallback.
	GrassSpacing   float64
	GrassProximity float64
	GroundSize     float64

	// Catalog is the placeable role registry; defaults to
	// asset.DefaultCatalog(). Resolver restricts placement to roles it can
	// resolve; if nil, every catalogued role is available.
	Catalog  *asset.Catalog
	Resolver asset.Resolver
}

// DefaultConfig returns the forest-walk parameter set generation was tuned
// with.
func DefaultConfig() Config {
	return Config{
		Seed:                42,
		PathLength:          200,
		ControlPoints:       8,
		Wander:              18,
		SamplesPerSegment:   20,
		SecondaryPaths:      1,
		SecondaryPathLength: 80,
		SecondaryPathWander: 12,
		ScatterInner:        2.5,
		ScatterOuter:        14,
		TreeChance:          0.30,
		ObjectsPerSegment:   6,
		PoissonRadius:       2.5,
		PoissonAttempts:     30,
		PoissonGridScale:    1,
		ClearingChance:      0.15,
		ClearingRadius:      8,
		PondChance:          0.6,
		ClusterChance:       0.3,
		BiomeSegmentLength:  30,
		NoiseScale:          0.02,
		HeightScale:         0,
		FlattenRadius:       3,
		GrassSpacing:        3,
		GrassProximity:      1,
		GroundSize:          500,
	}
}

func (c Config) withDefaults() Config {
	if c.Log == nil {
		c.Log = slog.Default()
	}
	if c.SamplesPerSegment <= 0 {
		c.SamplesPerSegment = 20
	}
	if c.Catalog == nil {
		c.Catalog = asset.DefaultCatalog()
	}
	if len(c.Biomes) == 0 {
		c.Biomes = biome.Default()
	}
	if len(c.TerrainPasses) == 0 {
		c.TerrainPasses = terrain.DefaultPasses()
	}
	if c.BiomeSegmentLength <= 0 {
		c.BiomeSegmentLength = 30
	}
	return c
}

// Validate reports configuration errors. These are fatal: generation refuses
// to start rather than silently producing a degenerate scene.
func (c Config) Validate() error {
	c = c.withDefaults()
	if c.ControlPoints < 4 {
		return fmt.Errorf("%w (got %d)", ErrControlPoints, c.ControlPoints)
	}
	if c.PathLength <= 0 {
		return fmt.Errorf("path length: %w", ErrNonPositive)
	}
	if c.ScatterOuter <= 0 {
		return fmt.Errorf("outer scatter radius: %w", ErrNonPositive)
	}
	if c.ScatterInner < 0 || c.ScatterInner > c.ScatterOuter {
		return fmt.Errorf("scatter annulus inverted (%v > %v)", c.ScatterInner, c.ScatterOuter)
	}
	if !c.DisablePoisson && c.PoissonRadius <= 0 {
		return fmt.Errorf("poisson radius: %w", ErrNonPositive)
	}
	if c.Catalog == nil {
		return asset.ErrEmptyCatalog
	}
	if err := c.Catalog.Validate(); err != nil {
		return err
	}
	sel := biome.NewSelector(c.Seed, c.BiomeSegmentLength, c.BiomeOverride, c.Biomes)
	return sel.Validate(c.Catalog)
}

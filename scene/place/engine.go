package place

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gladegen/glade/scene/asset"
	"github.com/gladegen/glade/scene/biome"
	"github.com/gladegen/glade/scene/path"
	"github.com/gladegen/glade/scene/poisson"
	"github.com/gladegen/glade/scene/rand"
	"github.com/gladegen/glade/scene/terrain"
)

// Config wires the placement engine to its collaborators and carries the
// tunable placement parameters. Zero values for the numeric fields are made
// usable by withDefaults.
type Config struct {
	// Log receives pass summaries and rejection counters. Defaults to
	// slog.Default().
	Log *slog.Logger
	// Rand is the shared deterministic stream for every stochastic placement
	// decision.
	Rand *rand.Random
	// Terrain supplies heights for altitude gating and planting.
	Terrain *terrain.HeightField
	// Catalog and Available define the placeable roles; Selector resolves
	// biomes and weighted selection.
	Catalog   *asset.Catalog
	Available []asset.Role
	Selector  *biome.Selector

	// Seed feeds the candidate samplers; the ground-cover sampler derives its
	// own stream from Seed+grassSeedOffset.
	Seed int64
	// PathLength converts a path sample index into a distance along the path
	// for biome lookup.
	PathLength float64
	// ScatterInner and ScatterOuter bound the annulus around the path where
	// ordinary objects may be placed.
	ScatterInner, ScatterOuter float64
	// TreeChance is the acceptance probability per candidate in the tree
	// priority pass; zero disables the pass. TreeCategory names the catalog
	// category the pass draws from.
	TreeChance   float64
	TreeCategory string

	// DisablePoisson switches to the legacy per-segment scattering mode.
	DisablePoisson   bool
	PoissonRadius    float64
	PoissonAttempts  int
	PoissonGridScale float64
	// ObjectsPerSegment is the draw budget per path segment in legacy mode.
	ObjectsPerSegment int

	// ClearingChance is the base probability of carving a clearing per path
	// anchor; PondChance turns a carved clearing into a pond. Zero disables
	// the respective feature.
	ClearingChance float64
	ClearingRadius float64
	PondChance     float64

	// ClusterChance is the probability an accepted cluster parent attracts
	// satellites.
	ClusterChance float64

	// GrassSpacing is the sampling radius of the Poisson ground-cover pass;
	// the legacy grid fallback runs at its own fixed stride. GrassProximity
	// is the fixed keep-out distance from ledgered objects.
	GrassSpacing   float64
	GrassProximity float64
	// GroundSize bounds the legacy grid ground-cover area.
	GroundSize float64
}

func (c Config) withDefaults() Config {
	if c.Log == nil {
		c.Log = slog.Default()
	}
	if c.TreeCategory == "" {
		c.TreeCategory = "trees"
	}
	if c.PoissonRadius <= 0 {
		c.PoissonRadius = 2.5
	}
	if c.PoissonAttempts <= 0 {
		c.PoissonAttempts = poisson.DefaultAttempts
	}
	if c.PoissonGridScale <= 0 {
		c.PoissonGridScale = 1
	}
	if c.ObjectsPerSegment <= 0 {
		c.ObjectsPerSegment = 6
	}
	if c.ClearingRadius <= 0 {
		c.ClearingRadius = 8
	}
	if c.GrassSpacing <= 0 {
		c.GrassSpacing = 3
	}
	if c.GrassProximity <= 0 {
		c.GrassProximity = 1
	}
	if c.GroundSize <= 0 {
		c.GroundSize = 500
	}
	return c
}

// grassSeedOffset separates the ground-cover sampler's stream from the main
// candidate sampler's.
const grassSeedOffset = 1000

// clearingAnchors is the number of evenly spaced spots along the path that
// may receive a clearing.
const clearingAnchors = 8

// Output is everything a placement run produces.
type Output struct {
	Placements []Placement
	Clearings  []Clearing
	Ponds      []Pond
	Stats      Stats
}

// Engine performs one placement run. An Engine is single-use: the ledger and
// counters accumulate over exactly one Run.
type Engine struct {
	conf Config
	r    *rand.Random

	mainPath   []mgl64.Vec2
	clearings  []Clearing
	ledger     ledger
	placements []Placement
	stats      Stats
}

// NewEngine creates an engine for a single run.
func NewEngine(conf Config) *Engine {
	conf = conf.withDefaults()
	return &Engine{conf: conf, r: conf.Rand}
}

// Run executes the placement passes in their fixed order: clearings, tree
// priority, general with clustering, then ground cover.
func (e *Engine) Run(main []mgl64.Vec2, secondaries [][]mgl64.Vec2) (*Output, error) {
	e.mainPath = main

	var ponds []Pond
	e.clearings, ponds = e.carveClearings(main)

	bmin, bmax := path.Bounds(main)
	xMin, xMax := bmin.X()-e.conf.ScatterOuter, bmax.X()+e.conf.ScatterOuter
	zMin, zMax := bmin.Y()-e.conf.ScatterOuter, bmax.Y()+e.conf.ScatterOuter

	if !e.conf.DisablePoisson {
		candidates := poisson.SampleArea(xMin, xMax, zMin, zMax,
			e.conf.PoissonRadius*e.conf.PoissonGridScale, e.conf.PoissonAttempts, e.conf.Seed)
		e.conf.Log.Debug("sampled placement candidates", "count", len(candidates))

		e.treePass(candidates)
		if err := e.generalPass(candidates); err != nil {
			return nil, err
		}
	} else {
		if err := e.segmentPass(main, secondaries); err != nil {
			return nil, err
		}
	}

	e.groundCover(xMin, xMax, zMin, zMax)

	e.conf.Log.Info("placement run complete",
		"placed", e.stats.Placed(), "clearings", len(e.clearings), "ponds", len(ponds), "stats", e.stats)
	return &Output{
		Placements: e.placements,
		Clearings:  e.clearings,
		Ponds:      ponds,
		Stats:      e.stats,
	}, nil
}

// accept runs the collision and altitude checks for a candidate and, if both
// pass, materialises the placement and records it in the ledger atomically.
// Both the pass loops and satellite clustering go through here.
func (e *Engine) accept(role asset.Role, pos mgl64.Vec2) bool {
	props := e.conf.Catalog.Properties(role)
	if e.ledger.collides(pos, props.MinSpacing) {
		e.stats.CollisionRejected++
		return false
	}
	height := e.conf.Terrain.HeightNear(pos.X(), pos.Y(), e.mainPath)
	if height < props.MinAltitude || height > props.MaxAltitude {
		e.stats.AltitudeRejected++
		return false
	}
	e.placements = append(e.placements, Placement{
		Role:     role,
		Position: mgl64.Vec3{pos.X(), height + props.YOffset, pos.Y()},
		Scale:    e.r.Uniform(props.ScaleMin, props.ScaleMax),
		Rotation: rotationFor(e.r, props),
	})
	e.ledger.add(pos, props.MinSpacing)
	return true
}

// carveClearings places clearing discs at evenly spaced anchors along the
// path, a subset of which become ponds with a smaller nested radius.
func (e *Engine) carveClearings(pts []mgl64.Vec2) ([]Clearing, []Pond) {
	var clearings []Clearing
	var ponds []Pond
	if e.conf.ClearingChance <= 0 || len(pts) == 0 {
		return clearings, ponds
	}
	interval := max(1, len(pts)/clearingAnchors)
	for i := 0; i < len(pts); i += interval {
		if !e.r.Chance(e.conf.ClearingChance * 3) {
			continue
		}
		offset := e.r.Uniform(0, e.conf.ClearingRadius*0.3)
		angle := e.r.Angle()
		centre := mgl64.Vec2{
			pts[i].X() + math.Cos(angle)*offset,
			pts[i].Y() + math.Sin(angle)*offset,
		}
		c := Clearing{Center: centre, Radius: e.conf.ClearingRadius * e.r.Uniform(0.7, 1.0)}
		clearings = append(clearings, c)
		if e.r.Chance(e.conf.PondChance) {
			ponds = append(ponds, Pond{Center: centre, Radius: c.Radius * e.r.Uniform(0.4, 0.7)})
		}
	}
	return clearings, ponds
}

// treePass reserves canopy space before anything else competes for it:
// candidates in the scatter annulus receive a tree with a fixed chance.
// Satellites never spawn here; the pass only appends to the ledger.
func (e *Engine) treePass(candidates []mgl64.Vec2) {
	if e.conf.TreeChance <= 0 {
		return
	}
	treeRoles := e.rolesInCategory(e.conf.TreeCategory)
	if len(treeRoles) == 0 {
		return
	}
	placed := 0
	for _, pos := range candidates {
		if inClearing(pos, e.clearings) {
			e.stats.ClearingRejected++
			continue
		}
		_, dist := path.NearestIndex(e.mainPath, pos)
		if dist > e.conf.ScatterOuter || dist < e.conf.ScatterInner {
			e.stats.AnnulusRejected++
			continue
		}
		if !e.r.Chance(e.conf.TreeChance) {
			continue
		}
		role := treeRoles[e.r.Intn(len(treeRoles))]
		if e.accept(role, pos) {
			placed++
		}
	}
	e.stats.Trees = placed
	e.conf.Log.Debug("tree priority pass complete", "placed", placed)
}

// generalPass places biome-selected roles on every remaining candidate and
// triggers satellite clustering around cluster parents.
func (e *Engine) generalPass(candidates []mgl64.Vec2) error {
	for _, pos := range candidates {
		if inClearing(pos, e.clearings) {
			e.stats.ClearingRejected++
			continue
		}
		idx, dist := path.NearestIndex(e.mainPath, pos)
		if dist > e.conf.ScatterOuter || dist < e.conf.ScatterInner {
			e.stats.AnnulusRejected++
			continue
		}
		pathDistance := float64(idx) / float64(len(e.mainPath)) * e.conf.PathLength

		role, err := e.selectRole(pathDistance)
		if err != nil {
			return err
		}
		if !e.accept(role, pos) {
			continue
		}
		e.stats.General++
		if e.conf.Catalog.Tags(role).ClusterParent() {
			e.cluster(pos, role)
		}
	}
	e.conf.Log.Debug("general pass complete", "placed", e.stats.General)
	return nil
}

// segmentPass is the legacy scattering mode: a fixed object budget per path
// segment, offset perpendicular to the path at a random distance within the
// annulus. Secondary paths run at half density and a tighter outer radius.
func (e *Engine) segmentPass(main []mgl64.Vec2, secondaries [][]mgl64.Vec2) error {
	paths := [][]mgl64.Vec2{main}
	paths = append(paths, secondaries...)

	for pi, pts := range paths {
		secondary := pi > 0
		budget := e.conf.ObjectsPerSegment
		outer := e.conf.ScatterOuter
		if secondary {
			budget /= 2
			outer *= 0.7
		}
		for seg := 0; seg < len(pts)-1; seg++ {
			pathDistance := float64(seg) / float64(len(pts)) * e.conf.PathLength
			for n := 0; n < budget; n++ {
				perp := path.Perp(path.TangentAt(pts, seg))
				side := e.r.Side()
				dist := e.r.Uniform(e.conf.ScatterInner, outer)
				pos := pts[seg].Add(perp.Mul(side * dist))

				if inClearing(pos, e.clearings) {
					e.stats.ClearingRejected++
					continue
				}
				role, err := e.selectRole(pathDistance)
				if err != nil {
					return err
				}
				if !e.accept(role, pos) {
					continue
				}
				e.stats.General++
				if e.conf.Catalog.Tags(role).ClusterParent() {
					e.cluster(pos, role)
				}
			}
		}
	}
	return nil
}

// cluster spawns 1-3 satellite objects around an accepted cluster parent.
// Satellites honour clearings and run through the same accept gate and
// ledger, so they block each other and later candidates like any other
// placement.
func (e *Engine) cluster(parent mgl64.Vec2, parentRole asset.Role) {
	if !e.r.Chance(e.conf.ClusterChance) {
		return
	}
	tags := e.conf.Catalog.Tags(parentRole)
	var satellites []asset.Role
	switch {
	case tags.Tree, tags.Bush:
		satellites = e.rolesTagged(func(t asset.Tags) bool { return t.GroundFlora })
	case tags.LargeRock:
		satellites = e.rolesTagged(func(t asset.Tags) bool { return t.RockDebris })
	}
	if len(satellites) == 0 {
		return
	}

	for n := e.r.IntBetween(1, 3); n > 0; n-- {
		role := satellites[e.r.Intn(len(satellites))]
		spacing := e.conf.Catalog.Properties(role).MinSpacing
		angle := e.r.Angle()
		dist := e.r.Uniform(spacing, spacing*2.5)
		pos := mgl64.Vec2{
			parent.X() + math.Cos(angle)*dist,
			parent.Y() + math.Sin(angle)*dist,
		}
		if inClearing(pos, e.clearings) {
			e.stats.ClearingRejected++
			continue
		}
		if e.accept(role, pos) {
			e.stats.Satellites++
		}
	}
}

// groundCover densely scatters grass-tagged roles over the whole placement
// rectangle. Grass is exempt from the spacing ledger: it only avoids
// clearings and a small fixed keep-out around ledgered objects, and is never
// recorded itself.
func (e *Engine) groundCover(xMin, xMax, zMin, zMax float64) {
	grassRoles := e.rolesTagged(func(t asset.Tags) bool { return t.Grass })
	if len(grassRoles) == 0 {
		return
	}

	var points []mgl64.Vec2
	if !e.conf.DisablePoisson {
		points = poisson.SampleArea(xMin, xMax, zMin, zMax,
			e.conf.GrassSpacing, e.conf.PoissonAttempts, e.conf.Seed+grassSeedOffset)
	} else {
		points = e.groundCoverGrid()
	}

	for _, pos := range points {
		if inClearing(pos, e.clearings) {
			e.stats.ClearingRejected++
			continue
		}
		if e.ledger.near(pos, e.conf.GrassProximity) {
			continue
		}
		role := grassRoles[e.r.Intn(len(grassRoles))]
		props := e.conf.Catalog.Properties(role)
		height := e.conf.Terrain.HeightNear(pos.X(), pos.Y(), e.mainPath)
		if height < props.MinAltitude || height > props.MaxAltitude {
			e.stats.AltitudeRejected++
			continue
		}
		e.placements = append(e.placements, Placement{
			Role:     role,
			Position: mgl64.Vec3{pos.X(), height + props.YOffset, pos.Y()},
			Scale:    e.r.Uniform(props.ScaleMin, props.ScaleMax),
			Rotation: rotationFor(e.r, props),
		})
		e.stats.Grass++
	}
	e.conf.Log.Debug("ground cover pass complete", "placed", e.stats.Grass)
}

// legacyGrassStride is the grid step of the legacy ground-cover fallback,
// wider than the Poisson pass's spacing.
const legacyGrassStride = 4.0

// groundCoverGrid is the legacy jittered-grid fallback for ground cover.
func (e *Engine) groundCoverGrid() []mgl64.Vec2 {
	area := e.conf.GroundSize * 0.4

	var pts []mgl64.Vec2
	for x := -area / 2; x < area/2; x += legacyGrassStride {
		for z := 0.0; z < e.conf.PathLength; z += legacyGrassStride {
			pts = append(pts, mgl64.Vec2{
				x + e.r.Uniform(-legacyGrassStride*0.4, legacyGrassStride*0.4),
				z + e.r.Uniform(-legacyGrassStride*0.4, legacyGrassStride*0.4),
			})
		}
	}
	return pts
}

func (e *Engine) selectRole(pathDistance float64) (asset.Role, error) {
	name := e.conf.Selector.ForDistance(pathDistance)
	return e.conf.Selector.SelectRole(e.r, name, e.conf.Catalog, e.conf.Available)
}

// rolesInCategory intersects a catalog category with the available set,
// preserving category order.
func (e *Engine) rolesInCategory(category string) []asset.Role {
	availSet := make(map[asset.Role]struct{}, len(e.conf.Available))
	for _, r := range e.conf.Available {
		availSet[r] = struct{}{}
	}
	var out []asset.Role
	for _, r := range e.conf.Catalog.Category(category) {
		if _, ok := availSet[r]; ok {
			out = append(out, r)
		}
	}
	return out
}

// rolesTagged filters the available roles by tag predicate, preserving the
// available set's sorted order.
func (e *Engine) rolesTagged(pred func(asset.Tags) bool) []asset.Role {
	var out []asset.Role
	for _, r := range e.conf.Available {
		if pred(e.conf.Catalog.Tags(r)) {
			out = append(out, r)
		}
	}
	return out
}

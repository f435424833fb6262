package place

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gladegen/glade/scene/asset"
	"github.com/gladegen/glade/scene/biome"
	"github.com/gladegen/glade/scene/rand"
	"github.com/gladegen/glade/scene/terrain"
)

func discardLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testCatalog holds one tree, one satellite fern and one grass tuft, enough
// to exercise every pass.
func testCatalog() *asset.Catalog {
	return asset.NewCatalog(
		map[asset.Role]asset.Properties{
			"oak":  {MinSpacing: 3, ScaleMin: 0.9, ScaleMax: 1.4, MinAltitude: -10, MaxAltitude: 10, RandomYaw: true, TiltAngle: 2},
			"fern": {MinSpacing: 1.5, ScaleMin: 0.6, ScaleMax: 1.1, MinAltitude: -10, MaxAltitude: 6, RandomYaw: true},
			"tuft": {MinSpacing: 0.4, ScaleMin: 0.6, ScaleMax: 1.1, MinAltitude: -10, MaxAltitude: 5, RandomYaw: true},
		},
		nil,
		map[string][]asset.Role{
			"trees": {"oak"},
			"ferns": {"fern"},
			"grass": {"tuft"},
		},
		map[asset.Role]asset.Tags{
			"oak":  {Tree: true},
			"fern": {GroundFlora: true},
			"tuft": {Grass: true},
		},
	)
}

func testSelector(seed int64, weights map[string]float64) *biome.Selector {
	return biome.NewSelector(seed, 30, "", []biome.Biome{
		biome.Profile{ProfileName: "forest", Table: weights},
	})
}

func straightPath(n int) []mgl64.Vec2 {
	pts := make([]mgl64.Vec2, n)
	for i := range pts {
		pts[i] = mgl64.Vec2{0, float64(i)}
	}
	return pts
}

func testConfig(seed int64) Config {
	catalog := testCatalog()
	return Config{
		Log:          discardLog(),
		Rand:         rand.New(seed),
		Terrain:      terrain.New(terrain.Config{Seed: seed}),
		Catalog:      catalog,
		Available:    catalog.Available(nil),
		Selector:     testSelector(seed, map[string]float64{"trees": 1.0}),
		Seed:         seed,
		PathLength:   60,
		ScatterInner: 2.5,
		ScatterOuter: 14,
		TreeChance:   0.30,
	}
}

func mustRun(t *testing.T, conf Config, main []mgl64.Vec2) *Output {
	t.Helper()
	out, err := NewEngine(conf).Run(main, nil)
	if err != nil {
		t.Fatalf("placement run failed: %v", err)
	}
	return out
}

func TestRunDeterministic(t *testing.T) {
	t.Parallel()
	main := straightPath(60)
	a := mustRun(t, testConfig(42), main)
	b := mustRun(t, testConfig(42), main)

	if len(a.Placements) != len(b.Placements) {
		t.Fatalf("placement counts differ between identical runs: %d != %d", len(a.Placements), len(b.Placements))
	}
	for i := range a.Placements {
		if a.Placements[i] != b.Placements[i] {
			t.Fatalf("placement %d differs between identical runs:\n%+v\n%+v", i, a.Placements[i], b.Placements[i])
		}
	}
	if a.Stats != b.Stats {
		t.Fatalf("stats differ between identical runs: %+v != %+v", a.Stats, b.Stats)
	}
}

func TestRunSeedsDiffer(t *testing.T) {
	t.Parallel()
	main := straightPath(60)
	a := mustRun(t, testConfig(1), main)
	b := mustRun(t, testConfig(2), main)
	if len(a.Placements) == 0 || len(b.Placements) == 0 {
		t.Fatal("expected both seeds to place objects")
	}
	if len(a.Placements) == len(b.Placements) {
		same := true
		for i := range a.Placements {
			if a.Placements[i].Position != b.Placements[i].Position {
				same = false
				break
			}
		}
		if same {
			t.Fatal("expected different seeds to produce different layouts")
		}
	}
}

func TestSpacingInvariant(t *testing.T) {
	t.Parallel()
	conf := testConfig(42)
	out := mustRun(t, conf, straightPath(60))

	// Ground cover is exempt; everything else honours the larger of the two
	// declared spacings.
	var solid []Placement
	for _, p := range out.Placements {
		if !conf.Catalog.Tags(p.Role).Grass {
			solid = append(solid, p)
		}
	}
	if len(solid) < 2 {
		t.Fatalf("expected multiple solid placements, got %d", len(solid))
	}
	for i := 0; i < len(solid); i++ {
		for j := i + 1; j < len(solid); j++ {
			a, b := solid[i], solid[j]
			dx := a.Position.X() - b.Position.X()
			dz := a.Position.Z() - b.Position.Z()
			dist := math.Sqrt(dx*dx + dz*dz)
			need := math.Max(conf.Catalog.Properties(a.Role).MinSpacing, conf.Catalog.Properties(b.Role).MinSpacing)
			if dist < need {
				t.Fatalf("placements %d (%s) and %d (%s) are %v apart, need %v", i, a.Role, j, b.Role, dist, need)
			}
		}
	}
}

func TestAnnulusBounds(t *testing.T) {
	t.Parallel()
	conf := testConfig(42)
	main := straightPath(60)
	out := mustRun(t, conf, main)

	for i, p := range out.Placements {
		if conf.Catalog.Tags(p.Role).Grass || conf.Catalog.Tags(p.Role).GroundFlora {
			continue // ground cover and satellites are not annulus-bound
		}
		minSq := math.Inf(1)
		for _, pt := range main {
			dx, dz := p.Position.X()-pt.X(), p.Position.Z()-pt.Y()
			if d := dx*dx + dz*dz; d < minSq {
				minSq = d
			}
		}
		dist := math.Sqrt(minSq)
		if dist < conf.ScatterInner-1e-9 || dist > conf.ScatterOuter+1e-9 {
			t.Fatalf("placement %d (%s) at distance %v, outside annulus [%v, %v]", i, p.Role, dist, conf.ScatterInner, conf.ScatterOuter)
		}
	}
}

func TestClearingsExcludePlacements(t *testing.T) {
	t.Parallel()
	// Clustering at certainty: satellites spawn around parents sitting just
	// outside a clearing and must be kept out of it like everything else.
	for _, seed := range []int64{1, 2, 42, 77} {
		conf := testConfig(seed)
		conf.ClearingChance = 0.34 // boosted to certainty per anchor
		conf.ClearingRadius = 8
		conf.ClusterChance = 1
		out := mustRun(t, conf, straightPath(60))

		if len(out.Clearings) == 0 {
			t.Fatalf("seed %d: expected clearings to be carved", seed)
		}
		for i, p := range out.Placements {
			pos := mgl64.Vec2{p.Position.X(), p.Position.Z()}
			for _, c := range out.Clearings {
				if c.Contains(pos) {
					t.Fatalf("seed %d: placement %d (%s) inside clearing at %v", seed, i, p.Role, c.Center)
				}
			}
		}
	}
}

func TestPondsNestInClearings(t *testing.T) {
	t.Parallel()
	conf := testConfig(42)
	conf.ClearingChance = 0.34
	conf.PondChance = 1
	out := mustRun(t, conf, straightPath(60))

	if len(out.Clearings) == 0 {
		t.Fatal("expected clearings to be carved")
	}
	if len(out.Ponds) != len(out.Clearings) {
		t.Fatalf("expected a pond per clearing at certainty, got %d ponds for %d clearings", len(out.Ponds), len(out.Clearings))
	}
	for i, pond := range out.Ponds {
		c := out.Clearings[i]
		if pond.Center != c.Center {
			t.Fatalf("pond %d not centred in its clearing: %v != %v", i, pond.Center, c.Center)
		}
		if pond.Radius >= c.Radius {
			t.Fatalf("pond %d radius %v not nested inside clearing radius %v", i, pond.Radius, c.Radius)
		}
	}
}

func TestPondChanceZeroDisablesPonds(t *testing.T) {
	t.Parallel()
	conf := testConfig(42)
	conf.ClearingChance = 0.34
	conf.PondChance = 0
	out := mustRun(t, conf, straightPath(60))
	if len(out.Ponds) != 0 {
		t.Fatalf("expected no ponds at zero chance, got %d", len(out.Ponds))
	}
}

func TestAltitudeGateRejectsAll(t *testing.T) {
	t.Parallel()
	catalog := asset.NewCatalog(
		map[asset.Role]asset.Properties{
			"alpine": {MinSpacing: 2, ScaleMin: 1, ScaleMax: 1, MinAltitude: 5, MaxAltitude: 10},
		},
		nil,
		map[string][]asset.Role{"trees": {"alpine"}},
		nil,
	)
	conf := testConfig(42)
	conf.Catalog = catalog
	conf.Available = catalog.Available(nil)
	out := mustRun(t, conf, straightPath(60))

	// Terrain is flat at height 0, below the role's altitude window.
	if len(out.Placements) != 0 {
		t.Fatalf("expected every candidate rejected by altitude, got %d placements", len(out.Placements))
	}
	if out.Stats.AltitudeRejected == 0 {
		t.Fatal("expected altitude rejections to be counted")
	}
}

func TestClusterSatellites(t *testing.T) {
	t.Parallel()
	conf := testConfig(42)
	conf.ClusterChance = 1
	conf.TreeCategory = "none" // cluster only off the general pass
	out := mustRun(t, conf, straightPath(60))

	if out.Stats.Satellites == 0 {
		t.Fatal("expected satellites around accepted trees at certainty")
	}
	ferns := 0
	for _, p := range out.Placements {
		if p.Role == "fern" {
			ferns++
		}
	}
	if ferns != out.Stats.Satellites {
		t.Fatalf("expected %d fern satellites, got %d", out.Stats.Satellites, ferns)
	}
}

func TestClusterChanceZeroDisablesSatellites(t *testing.T) {
	t.Parallel()
	conf := testConfig(42)
	conf.ClusterChance = 0
	out := mustRun(t, conf, straightPath(60))
	if out.Stats.Satellites != 0 {
		t.Fatalf("expected no satellites at zero chance, got %d", out.Stats.Satellites)
	}
}

func TestGroundCoverKeepsDistance(t *testing.T) {
	t.Parallel()
	conf := testConfig(42)
	out := mustRun(t, conf, straightPath(60))

	var grass, solid []Placement
	for _, p := range out.Placements {
		if conf.Catalog.Tags(p.Role).Grass {
			grass = append(grass, p)
		} else {
			solid = append(solid, p)
		}
	}
	if len(grass) == 0 {
		t.Fatal("expected ground cover to be placed")
	}
	if out.Stats.Grass != len(grass) {
		t.Fatalf("grass count mismatch: stats %d, placements %d", out.Stats.Grass, len(grass))
	}
	for i, g := range grass {
		for _, s := range solid {
			dx := g.Position.X() - s.Position.X()
			dz := g.Position.Z() - s.Position.Z()
			if dist := math.Sqrt(dx*dx + dz*dz); dist < 1 { // default GrassProximity
				t.Fatalf("grass %d is %v from a %s, inside the keep-out", i, dist, s.Role)
			}
		}
	}
}

func TestScaleWithinRoleBounds(t *testing.T) {
	t.Parallel()
	conf := testConfig(42)
	out := mustRun(t, conf, straightPath(60))
	for i, p := range out.Placements {
		props := conf.Catalog.Properties(p.Role)
		if p.Scale < props.ScaleMin || p.Scale >= props.ScaleMax {
			t.Fatalf("placement %d (%s) scale %v outside [%v, %v)", i, p.Role, p.Scale, props.ScaleMin, props.ScaleMax)
		}
	}
}

func TestRotationOrthonormal(t *testing.T) {
	t.Parallel()
	conf := testConfig(42)
	out := mustRun(t, conf, straightPath(60))
	if len(out.Placements) == 0 {
		t.Fatal("expected placements")
	}
	for i, p := range out.Placements {
		prod := p.Rotation.Mul3(p.Rotation.Transpose())
		if !prod.ApproxEqualThreshold(mgl64.Ident3(), 1e-9) {
			t.Fatalf("placement %d rotation is not orthonormal: %v", i, p.Rotation)
		}
	}
}

func TestStatsPlacedMatchesPlacements(t *testing.T) {
	t.Parallel()
	conf := testConfig(42)
	conf.ClusterChance = 0.3
	out := mustRun(t, conf, straightPath(60))
	if out.Stats.Placed() != len(out.Placements) {
		t.Fatalf("stats total %d does not match %d placements", out.Stats.Placed(), len(out.Placements))
	}
}

func TestSegmentModeDeterministic(t *testing.T) {
	t.Parallel()
	build := func() Config {
		conf := testConfig(42)
		conf.DisablePoisson = true
		conf.ObjectsPerSegment = 4
		conf.GroundSize = 30
		conf.PathLength = 40
		return conf
	}
	main := straightPath(40)
	a := mustRun(t, build(), main)
	b := mustRun(t, build(), main)
	if len(a.Placements) == 0 {
		t.Fatal("expected the legacy mode to place objects")
	}
	if len(a.Placements) != len(b.Placements) {
		t.Fatalf("legacy mode not deterministic: %d != %d placements", len(a.Placements), len(b.Placements))
	}
	for i := range a.Placements {
		if a.Placements[i] != b.Placements[i] {
			t.Fatalf("legacy placement %d differs between identical runs", i)
		}
	}
}

func TestSegmentModeSecondaryPaths(t *testing.T) {
	t.Parallel()
	conf := testConfig(42)
	conf.DisablePoisson = true
	conf.ObjectsPerSegment = 4
	conf.GroundSize = 30
	conf.PathLength = 40

	main := straightPath(40)
	secondary := make([]mgl64.Vec2, 20)
	for i := range secondary {
		secondary[i] = mgl64.Vec2{30 + float64(i), 20}
	}

	out, err := NewEngine(conf).Run(main, [][]mgl64.Vec2{secondary})
	if err != nil {
		t.Fatalf("placement run failed: %v", err)
	}

	// The secondary path lies well outside the main path's scatter annulus,
	// so any placement out there must have come from it.
	found := false
	for _, p := range out.Placements {
		if p.Position.X() > 15 {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected placements along the secondary path")
	}
}

func TestTreeChanceZeroDisablesPriorityPass(t *testing.T) {
	t.Parallel()
	conf := testConfig(42)
	conf.TreeChance = 0
	out := mustRun(t, conf, straightPath(60))
	if out.Stats.Trees != 0 {
		t.Fatalf("expected the tree pass disabled at zero chance, got %d trees", out.Stats.Trees)
	}
	if out.Stats.General == 0 {
		t.Fatal("expected the general pass to still place objects")
	}
}

func TestGroundCoverGridStride(t *testing.T) {
	t.Parallel()
	conf := testConfig(42)
	conf.DisablePoisson = true
	conf.GroundSize = 30
	conf.PathLength = 40
	e := NewEngine(conf)

	pts := e.groundCoverGrid()
	// area 12 at stride 4 gives 3 columns; path length 40 gives 10 rows.
	if len(pts) != 30 {
		t.Fatalf("expected 30 grid candidates, got %d", len(pts))
	}
	for i, p := range pts {
		col := -6 + float64(i/10)*legacyGrassStride
		row := float64(i%10) * legacyGrassStride
		maxJitter := legacyGrassStride*0.4 + 1e-9
		if dx := p.X() - col; dx < -maxJitter || dx > maxJitter {
			t.Fatalf("candidate %d drifted %v from its column %v", i, dx, col)
		}
		if dz := p.Y() - row; dz < -maxJitter || dz > maxJitter {
			t.Fatalf("candidate %d drifted %v from its row %v", i, dz, row)
		}
	}
}

func TestEmptyTreeCategorySkipsPriorityPass(t *testing.T) {
	t.Parallel()
	conf := testConfig(42)
	conf.TreeCategory = "no_such_category"
	out := mustRun(t, conf, straightPath(60))
	if out.Stats.Trees != 0 {
		t.Fatalf("expected no priority-pass trees, got %d", out.Stats.Trees)
	}
	if out.Stats.General == 0 {
		t.Fatal("expected the general pass to still place objects")
	}
}

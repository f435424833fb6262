// Command gladegen generates a scenery layout and writes it as a JSON scene
// document. The engine itself is format-agnostic; this tool is the thin
// serialisation glue around it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml"

	"github.com/gladegen/glade/scene"
	"github.com/gladegen/glade/scene/asset"
	"github.com/gladegen/glade/scene/biome"
	"github.com/gladegen/glade/scene/place"
	"github.com/gladegen/glade/scene/terrain"
)

// params is the TOML parameter file. Absent keys keep their defaults.
type params struct {
	Seed                int64          `toml:"seed"`
	Preset              string         `toml:"preset"`
	PathLength          float64        `toml:"path-length"`
	ControlPoints       int            `toml:"control-points"`
	Wander              float64        `toml:"wander"`
	SecondaryPaths      int            `toml:"secondary-paths"`
	SecondaryPathLength float64        `toml:"secondary-path-length"`
	SecondaryPathWander float64        `toml:"secondary-path-wander"`
	ScatterInner        float64        `toml:"scatter-inner"`
	ScatterOuter        float64        `toml:"scatter-outer"`
	DisablePoisson      bool           `toml:"disable-poisson"`
	PoissonRadius       float64        `toml:"poisson-radius"`
	PoissonAttempts     int            `toml:"poisson-attempts"`
	ClearingChance      float64        `toml:"clearing-chance"`
	ClearingRadius      float64        `toml:"clearing-radius"`
	ClusterChance       float64        `toml:"cluster-chance"`
	BiomeSegmentLength  float64        `toml:"biome-segment-length"`
	BiomeOverride       string         `toml:"biome-override"`
	HeightScale         float64        `toml:"height-scale"`
	NoiseScale          float64        `toml:"noise-scale"`
	FlattenRadius       float64        `toml:"flatten-radius"`
	TerrainPasses       []terrain.Pass `toml:"terrain-passes"`
	CatalogPath         string         `toml:"catalog"`
}

type document struct {
	ID             string          `json:"id"`
	Seed           int64           `json:"seed"`
	Placements     []placementJSON `json:"placements"`
	MainPath       [][2]float64    `json:"main_path"`
	SecondaryPaths [][][2]float64  `json:"secondary_paths"`
	Ponds          []circleJSON    `json:"ponds"`
	Clearings      []circleJSON    `json:"clearings"`
	Stats          place.Stats     `json:"stats"`
}

type placementJSON struct {
	Role     string     `json:"role"`
	Position [3]float64 `json:"position"`
	Scale    float64    `json:"scale"`
	Rotation [9]float64 `json:"rotation"`
}

type circleJSON struct {
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
	Radius float64 `json:"radius"`
}

func main() {
	var (
		configPath = flag.String("config", "", "TOML parameter file")
		outPath    = flag.String("o", "scene.json", "output scene document")
		seed       = flag.Int64("seed", 0, "override the configured seed")
		presetName = flag.String("preset", "", "environment preset to apply")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	conf, err := buildConfig(*configPath, *seed, *presetName, log)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	result, err := scene.Generate(conf)
	if err != nil {
		log.Error("generation failed", "error", err)
		os.Exit(1)
	}

	if err := writeDocument(*outPath, conf, result); err != nil {
		log.Error("write failed", "error", err)
		os.Exit(1)
	}
	log.Info("scene written", "path", *outPath, "placements", len(result.Placements), "run", result.ID)
}

func buildConfig(configPath string, seed int64, presetName string, log *slog.Logger) (scene.Config, error) {
	conf := scene.DefaultConfig()
	conf.Log = log

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return conf, err
		}
		var p params
		if err := toml.Unmarshal(data, &p); err != nil {
			return conf, fmt.Errorf("decode %s: %w", configPath, err)
		}
		conf = applyParams(conf, p)
		if p.CatalogPath != "" {
			file, err := asset.LoadFile(p.CatalogPath)
			if err != nil {
				return conf, err
			}
			conf.Catalog = file.Catalog()
			for name, table := range file.Biomes {
				conf.Biomes = append(conf.Biomes, biome.Profile{ProfileName: name, Table: table})
			}
		}
		if presetName == "" {
			presetName = p.Preset
		}
	}
	if seed != 0 {
		conf.Seed = seed
	}
	if presetName != "" {
		preset, err := scene.LookupPreset(presetName)
		if err != nil {
			return conf, err
		}
		conf = conf.WithPreset(preset)
	}
	return conf, conf.Validate()
}

func applyParams(conf scene.Config, p params) scene.Config {
	if p.Seed != 0 {
		conf.Seed = p.Seed
	}
	if p.PathLength > 0 {
		conf.PathLength = p.PathLength
	}
	if p.ControlPoints > 0 {
		conf.ControlPoints = p.ControlPoints
	}
	if p.Wander > 0 {
		conf.Wander = p.Wander
	}
	if p.SecondaryPaths > 0 {
		conf.SecondaryPaths = p.SecondaryPaths
	}
	if p.SecondaryPathLength > 0 {
		conf.SecondaryPathLength = p.SecondaryPathLength
	}
	if p.SecondaryPathWander > 0 {
		conf.SecondaryPathWander = p.SecondaryPathWander
	}
	if p.ScatterInner > 0 {
		conf.ScatterInner = p.ScatterInner
	}
	if p.ScatterOuter > 0 {
		conf.ScatterOuter = p.ScatterOuter
	}
	conf.DisablePoisson = p.DisablePoisson
	if p.PoissonRadius > 0 {
		conf.PoissonRadius = p.PoissonRadius
	}
	if p.PoissonAttempts > 0 {
		conf.PoissonAttempts = p.PoissonAttempts
	}
	if p.ClearingChance > 0 {
		conf.ClearingChance = p.ClearingChance
	}
	if p.ClearingRadius > 0 {
		conf.ClearingRadius = p.ClearingRadius
	}
	if p.ClusterChance > 0 {
		conf.ClusterChance = p.ClusterChance
	}
	if p.BiomeSegmentLength > 0 {
		conf.BiomeSegmentLength = p.BiomeSegmentLength
	}
	if p.BiomeOverride != "" {
		conf.BiomeOverride = p.BiomeOverride
	}
	if p.HeightScale > 0 {
		conf.HeightScale = p.HeightScale
	}
	if p.NoiseScale > 0 {
		conf.NoiseScale = p.NoiseScale
	}
	if p.FlattenRadius > 0 {
		conf.FlattenRadius = p.FlattenRadius
	}
	if len(p.TerrainPasses) > 0 {
		conf.TerrainPasses = p.TerrainPasses
	}
	return conf
}

func writeDocument(path string, conf scene.Config, result *scene.Result) error {
	doc := document{
		ID:             result.ID.String(),
		Seed:           conf.Seed,
		Placements:     make([]placementJSON, len(result.Placements)),
		MainPath:       polyline(result.MainPath),
		SecondaryPaths: make([][][2]float64, len(result.SecondaryPaths)),
		Ponds:          circles(result.Ponds),
		Clearings:      clearingCircles(result.Clearings),
		Stats:          result.Stats,
	}
	for i, p := range result.Placements {
		doc.Placements[i] = placementJSON{
			Role:     string(p.Role),
			Position: [3]float64{p.Position.X(), p.Position.Y(), p.Position.Z()},
			Scale:    p.Scale,
			Rotation: [9]float64(p.Rotation),
		}
	}
	for i, sp := range result.SecondaryPaths {
		doc.SecondaryPaths[i] = polyline(sp)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func polyline(pts []mgl64.Vec2) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = [2]float64{p.X(), p.Y()}
	}
	return out
}

func circles(ponds []place.Pond) []circleJSON {
	out := make([]circleJSON, len(ponds))
	for i, p := range ponds {
		out[i] = circleJSON{X: p.Center.X(), Z: p.Center.Y(), Radius: p.Radius}
	}
	return out
}

func clearingCircles(cs []place.Clearing) []circleJSON {
	out := make([]circleJSON, len(cs))
	for i, c := range cs {
		out[i] = circleJSON{X: c.Center.X(), Z: c.Center.Y(), Radius: c.Radius}
	}
	return out
}

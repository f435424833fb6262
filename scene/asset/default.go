package asset

import "fmt"

// DefaultCatalog returns the built-in nature catalog: stylised trees, bare
// trees, boulders, rocks, bushes, ferns and grass, plus the photorealistic
// tree set used by the realistic override biome.
func DefaultCatalog() *Catalog {
	props := map[Role]Properties{}
	families := map[Role]Role{}
	categories := map[string][]Role{}
	tags := map[Role]Tags{}

	family := func(category, fam string, n int, p Properties, t Tags) {
		props[Role(fam)] = p
		tags[Role(fam)] = t
		for i := 1; i <= n; i++ {
			r := Role(fmt.Sprintf("%s_%d", fam, i))
			families[r] = Role(fam)
			categories[category] = append(categories[category], r)
		}
	}

	tree := Tags{Tree: true}
	family("trees", "tree_pine", 3, Properties{MinSpacing: 3.0, ScaleMin: 0.8, ScaleMax: 1.3, MinAltitude: -10, MaxAltitude: 15, RandomYaw: true, TiltAngle: 3.0}, tree)
	family("trees", "tree_tall", 5, Properties{MinSpacing: 3.5, ScaleMin: 0.9, ScaleMax: 1.5, MinAltitude: -10, MaxAltitude: 12, RandomYaw: true, TiltAngle: 2.0}, tree)
	family("trees", "tree_oak", 3, Properties{MinSpacing: 4.0, ScaleMin: 0.9, ScaleMax: 1.4, MinAltitude: -10, MaxAltitude: 10, RandomYaw: true, TiltAngle: 2.5}, tree)
	family("trees", "tree_round", 3, Properties{MinSpacing: 3.5, ScaleMin: 0.8, ScaleMax: 1.3, MinAltitude: -10, MaxAltitude: 12, RandomYaw: true, TiltAngle: 3.0}, tree)
	family("trees_bare", "tree_bare", 6, Properties{MinSpacing: 4.0, ScaleMin: 0.9, ScaleMax: 1.4, MinAltitude: -10, MaxAltitude: 20, RandomYaw: true, TiltAngle: 5.0}, tree)

	family("boulders", "rock_boulder", 7, Properties{MinSpacing: 4.0, ScaleMin: 1.0, ScaleMax: 2.0, YOffset: -0.2, MinAltitude: -10, MaxAltitude: 50, RandomYaw: true, TiltAngle: 8.0}, Tags{LargeRock: true})
	family("rocks", "rock_medium", 6, Properties{MinSpacing: 2.0, ScaleMin: 0.7, ScaleMax: 1.4, YOffset: -0.1, MinAltitude: -10, MaxAltitude: 40, RandomYaw: true, TiltAngle: 12.0}, Tags{})
	family("rocks", "rock_small", 6, Properties{MinSpacing: 0.8, ScaleMin: 0.5, ScaleMax: 1.2, YOffset: -0.05, MinAltitude: -10, MaxAltitude: 30, RandomYaw: true, TiltAngle: 15.0}, Tags{RockDebris: true})

	bush := Tags{Bush: true}
	family("bushes", "bush_round", 4, Properties{MinSpacing: 1.5, ScaleMin: 0.7, ScaleMax: 1.2, MinAltitude: -10, MaxAltitude: 8, RandomYaw: true, TiltAngle: 4.0}, bush)
	family("bushes", "bush_tall", 3, Properties{MinSpacing: 1.8, ScaleMin: 0.8, ScaleMax: 1.3, MinAltitude: -10, MaxAltitude: 8, RandomYaw: true, TiltAngle: 3.0}, bush)
	family("bushes", "bush_wide", 2, Properties{MinSpacing: 2.0, ScaleMin: 0.7, ScaleMax: 1.1, MinAltitude: -10, MaxAltitude: 6, RandomYaw: true, TiltAngle: 2.0}, bush)

	family("ferns", "fern", 4, Properties{MinSpacing: 0.5, ScaleMin: 0.6, ScaleMax: 1.1, MinAltitude: -10, MaxAltitude: 6, RandomYaw: true, TiltAngle: 6.0}, Tags{GroundFlora: true})
	family("grass", "grass", 4, Properties{MinSpacing: 0.4, ScaleMin: 0.6, ScaleMax: 1.1, MinAltitude: -10, MaxAltitude: 5, RandomYaw: true, TiltAngle: 8.0}, Tags{Grass: true, GroundFlora: true})

	// Photorealistic tree set used by the "realistic" override biome.
	family("trees_realistic", "real_maple", 5, Properties{MinSpacing: 6.0, ScaleMin: 0.8, ScaleMax: 1.2, MinAltitude: -10, MaxAltitude: 15, RandomYaw: true, TiltAngle: 2.0}, tree)
	family("trees_realistic", "real_cherry", 5, Properties{MinSpacing: 8.0, ScaleMin: 0.7, ScaleMax: 1.1, MinAltitude: -10, MaxAltitude: 12, RandomYaw: true, TiltAngle: 1.5}, tree)
	family("trees_realistic", "real_birch", 5, Properties{MinSpacing: 5.0, ScaleMin: 0.9, ScaleMax: 1.3, MinAltitude: -10, MaxAltitude: 18, RandomYaw: true, TiltAngle: 2.0}, tree)
	family("trees_realistic", "real_spruce", 5, Properties{MinSpacing: 6.0, ScaleMin: 0.9, ScaleMax: 1.4, MinAltitude: -10, MaxAltitude: 25, RandomYaw: true, TiltAngle: 1.5}, tree)

	return NewCatalog(props, families, categories, tags)
}

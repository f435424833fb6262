// Package biome maps distance along the path to a weighting profile over
// asset categories, and performs the weighted role selection the placement
// engine relies on.
package biome

import (
	"errors"
	"sort"

	"github.com/segmentio/fasthash/fnv1a"

	"github.com/gladegen/glade/scene/asset"
	"github.com/gladegen/glade/scene/rand"
)

// Biome is a named weighting profile over asset categories. Weights need not
// sum to one; they are normalised at selection time.
type Biome interface {
	Name() string
	Weights() map[string]float64
}

// ErrNoRoles is returned when a selection is attempted over an empty
// available-role set. This is a configuration error, never a transient one.
var ErrNoRoles = errors.New("no placeable roles available")

// Default returns the standard biome rotation.
func Default() []Biome {
	return []Biome{Forest{}, Rocky{}, Meadow{}, Winter{}, Autumn{}, Realistic{}}
}

// Selector resolves the biome for a path distance and selects roles by biome
// weight. The distance mapping is a pure function of (seed, segment), so
// querying it never consumes placement randomness.
type Selector struct {
	seed    int64
	segment float64
	// override, when set, forces a single biome unconditionally.
	override string

	biomes map[string]Biome
	names  []string
}

// NewSelector creates a selector over the biomes given. segmentLength is the
// path distance a single biome spans; override forces one biome for the
// whole scene when non-empty.
func NewSelector(seed int64, segmentLength float64, override string, biomes []Biome) *Selector {
	s := &Selector{
		seed:     seed,
		segment:  segmentLength,
		override: override,
		biomes:   make(map[string]Biome, len(biomes)),
	}
	for _, b := range biomes {
		if _, ok := s.biomes[b.Name()]; !ok {
			s.names = append(s.names, b.Name())
		}
		s.biomes[b.Name()] = b
	}
	sort.Strings(s.names)
	return s
}

// ForDistance returns the biome name governing the given distance along the
// path. Distances within the same segment always resolve to the same biome.
func (s *Selector) ForDistance(distance float64) string {
	if s.override != "" {
		return s.override
	}
	if len(s.names) == 0 {
		return ""
	}
	segment := int64(distance / s.segment)
	h := fnv1a.AddUint64(fnv1a.Init64, uint64(s.seed))
	h = fnv1a.AddUint64(h, uint64(segment))
	return s.names[h%uint64(len(s.names))]
}

// SelectRole performs weighted random selection of a role for the named
// biome. Category weights expand into the categories' member roles filtered
// to the available set; a zero weight excludes its whole category. With no
// weighted candidates the selection falls back to a uniform choice over all
// available roles.
func (s *Selector) SelectRole(r *rand.Random, name string, catalog *asset.Catalog, available []asset.Role) (asset.Role, error) {
	weights := s.weightsFor(name)

	availSet := make(map[asset.Role]struct{}, len(available))
	for _, a := range available {
		availSet[a] = struct{}{}
	}

	categories := make([]string, 0, len(weights))
	for cat := range weights {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	type candidate struct {
		role   asset.Role
		weight float64
	}
	var weighted []candidate
	var total float64
	for _, cat := range categories {
		w := weights[cat]
		if w <= 0 {
			continue
		}
		for _, role := range catalog.Category(cat) {
			if _, ok := availSet[role]; !ok {
				continue
			}
			weighted = append(weighted, candidate{role, w})
			total += w
		}
	}

	if len(weighted) == 0 {
		if len(available) == 0 {
			return "", ErrNoRoles
		}
		return available[r.Intn(len(available))], nil
	}

	draw := r.Float64() * total
	var cumulative float64
	for _, c := range weighted {
		cumulative += c.weight
		if draw <= cumulative {
			return c.role, nil
		}
	}
	return weighted[len(weighted)-1].role, nil
}

func (s *Selector) weightsFor(name string) map[string]float64 {
	if b, ok := s.biomes[name]; ok {
		return b.Weights()
	}
	if b, ok := s.biomes["forest"]; ok {
		return b.Weights()
	}
	if len(s.names) > 0 {
		return s.biomes[s.names[0]].Weights()
	}
	return nil
}

// Validate checks every profile's weight table against the catalog.
func (s *Selector) Validate(catalog *asset.Catalog) error {
	for _, name := range s.names {
		if err := catalog.ValidateWeights("biome "+name, s.biomes[name].Weights()); err != nil {
			return err
		}
	}
	return nil
}

// Profile is a plain data Biome, used for weight tables loaded from
// configuration files.
type Profile struct {
	ProfileName string
	Table       map[string]float64
}

func (p Profile) Name() string                { return p.ProfileName }
func (p Profile) Weights() map[string]float64 { return p.Table }

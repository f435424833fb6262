package asset

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// File is the on-disk TOML form of a catalog. Biome weight tables travel in
// the same file but are consumed by the biome selector, not the catalog.
type File struct {
	Roles      map[string]Properties         `toml:"roles"`
	Families   map[string]string             `toml:"families"`
	Categories map[string][]string           `toml:"categories"`
	Tags       map[string]Tags               `toml:"tags"`
	Biomes     map[string]map[string]float64 `toml:"biomes"`
}

// LoadFile reads a catalog file from the path provided.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("load catalog: decode %s: %w", path, err)
	}
	return &f, nil
}

// Save writes the file in TOML form to the path provided.
func (f *File) Save(path string) error {
	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("save catalog: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

// Catalog converts the file's role tables into a registry.
func (f *File) Catalog() *Catalog {
	props := make(map[Role]Properties, len(f.Roles))
	for r, p := range f.Roles {
		props[Role(r)] = p
	}
	families := make(map[Role]Role, len(f.Families))
	for r, fam := range f.Families {
		families[Role(r)] = Role(fam)
	}
	categories := make(map[string][]Role, len(f.Categories))
	for name, members := range f.Categories {
		roles := make([]Role, len(members))
		for i, m := range members {
			roles[i] = Role(m)
		}
		categories[name] = roles
	}
	tags := make(map[Role]Tags, len(f.Tags))
	for r, t := range f.Tags {
		tags[Role(r)] = t
	}
	return NewCatalog(props, families, categories, tags)
}

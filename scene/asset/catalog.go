package asset

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyCatalog is returned when a catalog is validated with no roles.
	ErrEmptyCatalog = errors.New("asset catalog contains no roles")
	// ErrEmptyCategory is returned when a biome weight table references a
	// category with no member roles.
	ErrEmptyCategory = errors.New("weight table references empty asset category")
)

// Catalog is the static, read-only registry consulted throughout a
// generation run: role properties, optional family fallbacks, category
// membership, tags and biome weight tables.
type Catalog struct {
	props      map[Role]Properties
	families   map[Role]Role
	categories map[string][]Role
	tags       map[Role]Tags
}

// NewCatalog assembles a catalog from its component tables. Nil maps are
// treated as empty.
func NewCatalog(props map[Role]Properties, families map[Role]Role, categories map[string][]Role, tags map[Role]Tags) *Catalog {
	c := &Catalog{
		props:      map[Role]Properties{},
		families:   map[Role]Role{},
		categories: map[string][]Role{},
		tags:       map[Role]Tags{},
	}
	for r, p := range props {
		c.props[r] = p
	}
	for r, f := range families {
		c.families[r] = f
	}
	for name, roles := range categories {
		c.categories[name] = append([]Role(nil), roles...)
	}
	for r, t := range tags {
		c.tags[r] = t
	}
	return c
}

// Properties returns the placement rules for a role, falling back first to
// the role's declared family and then to the registry defaults.
func (c *Catalog) Properties(r Role) Properties {
	if p, ok := c.props[r]; ok {
		return p
	}
	if fam, ok := c.families[r]; ok {
		if p, ok := c.props[fam]; ok {
			return p
		}
	}
	return DefaultProperties()
}

// Tags returns the behaviour tags of a role; untagged roles have none.
func (c *Catalog) Tags(r Role) Tags {
	if t, ok := c.tags[r]; ok {
		return t
	}
	if fam, ok := c.families[r]; ok {
		return c.tags[fam]
	}
	return Tags{}
}

// Category returns the member roles of a category in declaration order.
func (c *Catalog) Category(name string) []Role {
	return c.categories[name]
}

// Categories returns the category names in sorted order.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.categories))
	for name := range c.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Roles returns every role that has properties or category membership, in
// sorted order.
func (c *Catalog) Roles() []Role {
	seen := map[Role]struct{}{}
	for r := range c.props {
		seen[r] = struct{}{}
	}
	for _, members := range c.categories {
		for _, r := range members {
			seen[r] = struct{}{}
		}
	}
	roles := make([]Role, 0, len(seen))
	for r := range seen {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// Available filters the catalog's roles down to those the resolver can
// produce a handle for, in sorted order. A nil resolver makes every role
// available.
func (c *Catalog) Available(res Resolver) []Role {
	roles := c.Roles()
	if res == nil {
		return roles
	}
	out := roles[:0]
	for _, r := range roles {
		if _, ok := res.Resolve(r); ok {
			out = append(out, r)
		}
	}
	return out
}

// ValidateWeights checks a category weight table against the catalog: every
// positively weighted category must exist and have member roles. owner names
// the table in error messages.
func (c *Catalog) ValidateWeights(owner string, weights map[string]float64) error {
	for cat, w := range weights {
		if w < 0 {
			return fmt.Errorf("%s: negative weight for category %q", owner, cat)
		}
		if w == 0 {
			continue
		}
		if len(c.categories[cat]) == 0 {
			return fmt.Errorf("%s, category %q: %w", owner, cat, ErrEmptyCategory)
		}
	}
	return nil
}

// Validate reports configuration errors: an empty catalog, negative spacing,
// inverted scale bounds or altitude windows.
func (c *Catalog) Validate() error {
	roles := c.Roles()
	if len(roles) == 0 {
		return ErrEmptyCatalog
	}
	for _, r := range roles {
		p := c.Properties(r)
		if p.MinSpacing < 0 {
			return fmt.Errorf("role %q: negative min spacing %v", r, p.MinSpacing)
		}
		if p.ScaleMin > p.ScaleMax {
			return fmt.Errorf("role %q: scale range inverted (%v > %v)", r, p.ScaleMin, p.ScaleMax)
		}
		if p.MinAltitude > p.MaxAltitude {
			return fmt.Errorf("role %q: altitude window inverted (%v > %v)", r, p.MinAltitude, p.MaxAltitude)
		}
		if p.TiltAngle < 0 {
			return fmt.Errorf("role %q: negative tilt angle %v", r, p.TiltAngle)
		}
	}
	return nil
}

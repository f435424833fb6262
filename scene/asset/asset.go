// Package asset defines the typed registry of placeable scenery: roles,
// their spatial properties, category membership and behaviour tags. The
// placement engine consumes this registry; it never inspects the underlying
// resources a role resolves to.
package asset

// Role is the logical identifier of a class of placeable object, such as a
// specific tree variant. It carries no geometry.
type Role string

// Handle is the opaque resource token a Role resolves to. The engine treats
// it as pass-through output data.
type Handle string

// Properties are the spatial placement rules of a role. Altitude bounds are
// inclusive and compared against flattened terrain height.
type Properties struct {
	// MinSpacing is the minimum distance in world units to any other ledgered
	// placement. Between two placements the larger of the two spacings wins.
	MinSpacing float64 `toml:"min-spacing"`
	// ScaleMin and ScaleMax bound the uniform random scale draw.
	ScaleMin float64 `toml:"scale-min"`
	ScaleMax float64 `toml:"scale-max"`
	// YOffset is added to the terrain height when the object is planted.
	YOffset float64 `toml:"y-offset"`
	// MinAltitude and MaxAltitude gate placement by terrain height.
	MinAltitude float64 `toml:"min-altitude"`
	MaxAltitude float64 `toml:"max-altitude"`
	// RandomYaw randomises rotation about the vertical axis.
	RandomYaw bool `toml:"random-yaw"`
	// TiltAngle is the maximum random lean about the local X and Z axes, in
	// degrees. Zero disables tilting.
	TiltAngle float64 `toml:"tilt-angle"`
}

// DefaultProperties returns the fallback properties used for roles absent
// from the registry: permissive altitude bounds and moderate spacing.
func DefaultProperties() Properties {
	return Properties{
		MinSpacing:  1.0,
		ScaleMin:    0.8,
		ScaleMax:    1.2,
		MinAltitude: -100.0,
		MaxAltitude: 100.0,
		RandomYaw:   true,
		TiltAngle:   5.0,
	}
}

// Tags are the explicit behaviour markers of a role. They replace any kind of
// name-pattern inference: a role clusters, attracts satellites or acts as
// ground cover only if tagged so.
type Tags struct {
	// Tree, LargeRock and Bush mark cluster parents: accepted placements of
	// these roles attract satellite objects.
	Tree      bool `toml:"tree"`
	LargeRock bool `toml:"large-rock"`
	Bush      bool `toml:"bush"`
	// Grass marks ground-cover roles scattered by the dense final pass,
	// exempt from the spacing ledger.
	Grass bool `toml:"grass"`
	// GroundFlora marks satellite roles for trees and bushes.
	GroundFlora bool `toml:"ground-flora"`
	// RockDebris marks satellite roles for large rocks.
	RockDebris bool `toml:"rock-debris"`
}

// ClusterParent reports whether an accepted placement of this role triggers
// satellite clustering.
func (t Tags) ClusterParent() bool {
	return t.Tree || t.LargeRock || t.Bush
}

// Resolver maps a role to the placeable resource handle used by downstream
// serialisation. Roles that do not resolve are simply absent from the
// available set; this is not an error.
type Resolver interface {
	Resolve(Role) (Handle, bool)
}

// MapResolver is a Resolver backed by a plain map.
type MapResolver map[Role]Handle

// Resolve returns the handle for the role, if present.
func (m MapResolver) Resolve(r Role) (Handle, bool) {
	h, ok := m[r]
	return h, ok
}

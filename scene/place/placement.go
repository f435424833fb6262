// Package place turns paths, candidate points, biome weights and asset
// properties into the validated placement list: the spacing ledger, the
// clearing and pond carving, the priority/general/ground-cover passes and
// satellite clustering all live here.
package place

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gladegen/glade/scene/asset"
	"github.com/gladegen/glade/scene/rand"
)

// Placement is one placed scenery object. Placements are immutable once
// created; rejected candidates are never materialised at all.
type Placement struct {
	Role asset.Role
	// Position is the world position; Y is terrain height (with path
	// flattening) plus the role's Y offset.
	Position mgl64.Vec3
	Scale    float64
	// Rotation is the composed orientation: yaw about world up first, then
	// the X and Z tilts applied in the yawed frame.
	Rotation mgl64.Mat3
}

// Clearing is a circular zone along the path where no ordinary placement may
// occur.
type Clearing struct {
	Center mgl64.Vec2
	Radius float64
}

// Contains reports whether p lies strictly inside the clearing.
func (c Clearing) Contains(p mgl64.Vec2) bool {
	return p.Sub(c.Center).LenSqr() < c.Radius*c.Radius
}

// Pond is a water feature carved inside a clearing, with a smaller nested
// radius.
type Pond struct {
	Center mgl64.Vec2
	Radius float64
}

// rotationFor composes a placement orientation from the role's rotation
// rules: a uniform random yaw if allowed, then independent X and Z leans of
// at most TiltAngle degrees.
func rotationFor(r *rand.Random, props asset.Properties) mgl64.Mat3 {
	var yaw float64
	if props.RandomYaw {
		yaw = r.Angle()
	}
	var tiltX, tiltZ float64
	if props.TiltAngle > 0 {
		tiltX = mgl64.DegToRad(r.Uniform(-props.TiltAngle, props.TiltAngle))
		tiltZ = mgl64.DegToRad(r.Uniform(-props.TiltAngle, props.TiltAngle))
	}
	return mgl64.Rotate3DY(yaw).Mul3(mgl64.Rotate3DX(tiltX)).Mul3(mgl64.Rotate3DZ(tiltZ))
}

func inClearing(p mgl64.Vec2, clearings []Clearing) bool {
	for _, c := range clearings {
		if c.Contains(p) {
			return true
		}
	}
	return false
}

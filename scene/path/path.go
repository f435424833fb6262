// Package path synthesises the winding centrelines the scene is arranged
// around: sparse random control points interpolated into dense polylines by
// a Catmull-Rom spline, plus branching secondary paths.
package path

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gladegen/glade/scene/rand"
)

// MinControlPoints is the smallest control sequence the spline can
// interpolate; the segment evaluation needs a real neighbour on each side.
const MinControlPoints = 4

// ControlPoints generates the sparse control sequence for a path of the
// length given. The first point is the origin; each subsequent point advances
// by a fixed forward step on the Z axis with a uniform lateral jitter of at
// most wander on X.
func ControlPoints(r *rand.Random, length float64, n int, wander float64) []mgl64.Vec2 {
	pts := make([]mgl64.Vec2, 1, n)
	pts[0] = mgl64.Vec2{0, 0}
	step := length / float64(n-1)
	for i := 1; i < n; i++ {
		last := pts[len(pts)-1]
		pts = append(pts, mgl64.Vec2{last.X() + r.Uniform(-wander, wander), last.Y() + step})
	}
	return pts
}

// Sample interpolates the control points into a dense polyline, evaluating a
// Catmull-Rom spline at samples evenly spaced parameter values per segment.
// The first and last control points are duplicated so every interior segment
// has two real neighbours; the exact last control point terminates the
// polyline.
func Sample(ctrl []mgl64.Vec2, samples int) []mgl64.Vec2 {
	if len(ctrl) == 0 {
		return nil
	}
	ext := make([]mgl64.Vec2, 0, len(ctrl)+2)
	ext = append(ext, ctrl[0])
	ext = append(ext, ctrl...)
	ext = append(ext, ctrl[len(ctrl)-1])

	pts := make([]mgl64.Vec2, 0, (len(ext)-3)*samples+1)
	for i := 1; i < len(ext)-2; i++ {
		for s := 0; s < samples; s++ {
			t := float64(s) / float64(samples)
			pts = append(pts, catmullRom(ext[i-1], ext[i], ext[i+1], ext[i+2], t))
		}
	}
	return append(pts, ctrl[len(ctrl)-1])
}

func catmullRom(p0, p1, p2, p3 mgl64.Vec2, t float64) mgl64.Vec2 {
	cr := func(a, b, c, d float64) float64 {
		return 0.5 * (2*b + (-a+c)*t + (2*a-5*b+4*c-d)*t*t + (-a+3*b-3*c+d)*t*t*t)
	}
	return mgl64.Vec2{
		cr(p0.X(), p1.X(), p2.X(), p3.X()),
		cr(p0.Y(), p1.Y(), p2.Y(), p3.Y()),
	}
}

// TangentAt returns the unit tangent of the polyline at index i, computed by
// central difference with the index clamped away from both ends. A degenerate
// difference yields the +Z direction.
func TangentAt(pts []mgl64.Vec2, i int) mgl64.Vec2 {
	i = max(1, min(i, len(pts)-2))
	d := pts[i+1].Sub(pts[i-1])
	if l := d.Len(); l > 0 {
		return d.Mul(1 / l)
	}
	return mgl64.Vec2{0, 1}
}

// Perp rotates a unit tangent 90° on the horizontal plane.
func Perp(t mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{-t.Y(), t.X()}
}

// NearestIndex returns the index of the polyline sample closest to p and the
// distance to it.
func NearestIndex(pts []mgl64.Vec2, p mgl64.Vec2) (int, float64) {
	idx, minSq := 0, math.Inf(1)
	for i, pt := range pts {
		if d := pt.Sub(p).LenSqr(); d < minSq {
			minSq, idx = d, i
		}
	}
	return idx, math.Sqrt(minSq)
}

// Bounds returns the axis-aligned bounding box of a polyline.
func Bounds(pts []mgl64.Vec2) (min, max mgl64.Vec2) {
	min = mgl64.Vec2{math.Inf(1), math.Inf(1)}
	max = mgl64.Vec2{math.Inf(-1), math.Inf(-1)}
	for _, p := range pts {
		min = mgl64.Vec2{math.Min(min.X(), p.X()), math.Min(min.Y(), p.Y())}
		max = mgl64.Vec2{math.Max(max.X(), p.X()), math.Max(max.Y(), p.Y())}
	}
	return min, max
}

// SecondaryConfig holds the parameters for branching secondary paths.
type SecondaryConfig struct {
	Count  int
	Length float64
	Wander float64
	// MainLength and MainControlPoints size the branch control sequence
	// proportionally to the main path.
	MainLength        float64
	MainControlPoints int
}

// Secondary generates branch polylines off the main path. Each branch starts
// in the middle half of the main path, drifts to a randomly chosen
// perpendicular side with increasing strength, and wanders with its own
// jitter. Branches are sampled at a lower density than the main path.
func Secondary(r *rand.Random, main []mgl64.Vec2, conf SecondaryConfig) [][]mgl64.Vec2 {
	var out [][]mgl64.Vec2
	for b := 0; b < conf.Count; b++ {
		if len(main) < 10 {
			continue
		}
		branch := r.IntBetween(len(main)/4, 3*len(main)/4)
		start := main[branch]
		perp := Perp(TangentAt(main, branch))
		side := r.Side()

		n := max(3, int(float64(conf.MainControlPoints)*conf.Length/conf.MainLength))
		step := conf.Length / float64(n-1)

		ctrl := make([]mgl64.Vec2, 1, n)
		ctrl[0] = start
		for i := 1; i < n; i++ {
			last := ctrl[len(ctrl)-1]
			drift := float64(i) / float64(n) * side * conf.Wander * 0.5
			ctrl = append(ctrl, mgl64.Vec2{
				last.X() + r.Uniform(-conf.Wander, conf.Wander) + perp.X()*drift,
				last.Y() + step + perp.Y()*drift,
			})
		}
		out = append(out, Sample(ctrl, 15))
	}
	return out
}

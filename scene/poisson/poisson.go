// Package poisson implements Bridson's Poisson-disc sampling: evenly spaced
// random points with a guaranteed minimum pairwise distance, generated by
// dart throwing over a background acceleration grid.
package poisson

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gladegen/glade/scene/rand"
)

// DefaultAttempts is the per-point candidate budget before a spawn point is
// retired.
const DefaultAttempts = 30

// Sample generates points in [0, width)×[0, height) with no two points closer
// than radius. The region centre seeds the point set; generation is
// deterministic for a fixed seed and terminates when no spawn point can
// produce a valid candidate within attempts tries.
func Sample(width, height, radius float64, attempts int, seed int64) []mgl64.Vec2 {
	if width <= 0 || height <= 0 || radius <= 0 {
		return nil
	}
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	r := rand.New(seed)

	cellSize := radius / math.Sqrt2
	gridW := int(math.Ceil(width / cellSize))
	gridH := int(math.Ceil(height / cellSize))

	// Each cell holds index+1 of the point occupying it; 0 means empty.
	grid := make([]int, gridW*gridH)
	cellOf := func(p mgl64.Vec2) (int, int) {
		return int(p.X() / cellSize), int(p.Y() / cellSize)
	}

	var points []mgl64.Vec2
	accepted := func(p mgl64.Vec2) {
		points = append(points, p)
		cx, cy := cellOf(p)
		grid[cx*gridH+cy] = len(points)
	}

	centre := mgl64.Vec2{width / 2, height / 2}
	accepted(centre)
	active := []mgl64.Vec2{centre}

	for len(active) > 0 {
		spawnIdx := r.Intn(len(active))
		spawn := active[spawnIdx]

		placed := false
		for i := 0; i < attempts; i++ {
			angle := r.Angle()
			dist := r.Uniform(radius, radius*2)
			candidate := mgl64.Vec2{
				spawn.X() + math.Sin(angle)*dist,
				spawn.Y() + math.Cos(angle)*dist,
			}
			if !valid(candidate, width, height, cellSize, radius, points, grid, gridW, gridH) {
				continue
			}
			accepted(candidate)
			active = append(active, candidate)
			placed = true
			break
		}
		if !placed {
			active = append(active[:spawnIdx], active[spawnIdx+1:]...)
		}
	}
	return points
}

// SampleArea generates Poisson-disc points inside the world-space rectangle
// given, translating the local sampling region into world coordinates.
func SampleArea(xMin, xMax, zMin, zMax, radius float64, attempts int, seed int64) []mgl64.Vec2 {
	local := Sample(xMax-xMin, zMax-zMin, radius, attempts, seed)
	world := make([]mgl64.Vec2, len(local))
	for i, p := range local {
		world[i] = mgl64.Vec2{xMin + p.X(), zMin + p.Y()}
	}
	return world
}

func valid(c mgl64.Vec2, width, height, cellSize, radius float64, points []mgl64.Vec2, grid []int, gridW, gridH int) bool {
	if c.X() < 0 || c.X() >= width || c.Y() < 0 || c.Y() >= height {
		return false
	}
	cx := int(c.X() / cellSize)
	cy := int(c.Y() / cellSize)

	x0, x1 := max(0, cx-2), min(cx+2, gridW-1)
	y0, y1 := max(0, cy-2), min(cy+2, gridH-1)
	radiusSq := radius * radius

	for sx := x0; sx <= x1; sx++ {
		for sy := y0; sy <= y1; sy++ {
			idx := grid[sx*gridH+sy] - 1
			if idx < 0 {
				continue
			}
			if points[idx].Sub(c).LenSqr() < radiusSq {
				return false
			}
		}
	}
	return true
}

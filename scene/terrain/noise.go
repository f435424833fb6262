package terrain

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// lattice returns a pseudo-random value in [-1, 1] for integer lattice
// coordinates. It is a pure function of (ix, iz, seed): no state is read or
// written, so repeated evaluation is always bit-identical.
func lattice(ix, iz, seed int64) float64 {
	var b [24]byte
	binary.LittleEndian.PutUint64(b[0:], uint64(ix))
	binary.LittleEndian.PutUint64(b[8:], uint64(iz))
	binary.LittleEndian.PutUint64(b[16:], uint64(seed))
	h := xxhash.Sum64(b[:])
	// Top 53 bits give a uniform float in [0, 1).
	return float64(h>>11)/float64(1<<53)*2 - 1
}

// smoothstep is the cubic Hermite ease 3t²-2t³.
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// smoothNoise samples the lattice at continuous coordinates with bilinear
// interpolation and smooth-step eased fractions.
func smoothNoise(x, z float64, seed int64) float64 {
	x0, z0 := math.Floor(x), math.Floor(z)
	fx := smoothstep(x - x0)
	fz := smoothstep(z - z0)

	ix, iz := int64(x0), int64(z0)
	n00 := lattice(ix, iz, seed)
	n10 := lattice(ix+1, iz, seed)
	n01 := lattice(ix, iz+1, seed)
	n11 := lattice(ix+1, iz+1, seed)

	nx0 := n00*(1-fx) + n10*fx
	nx1 := n01*(1-fx) + n11*fx
	return nx0*(1-fz) + nx1*fz
}

// fbm sums octaves of smooth noise with doubling frequency and halving
// amplitude, normalised by the total amplitude.
func fbm(x, z float64, octaves int, frequency float64, seed int64) float64 {
	var value, totalAmp float64
	amplitude := 1.0
	freq := frequency
	for i := 0; i < octaves; i++ {
		value += smoothNoise(x*freq, z*freq, seed+int64(i)) * amplitude
		totalAmp += amplitude
		amplitude *= 0.5
		freq *= 2
	}
	if totalAmp == 0 {
		return 0
	}
	return value / totalAmp
}

// contrast stretches a value away from the midpoint 0.
func contrast(value, c float64) float64 {
	return value * c
}

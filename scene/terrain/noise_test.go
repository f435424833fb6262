package terrain

import (
	"math"
	"testing"
)

func TestLatticeRangeAndDeterminism(t *testing.T) {
	t.Parallel()
	for ix := int64(-50); ix <= 50; ix++ {
		for iz := int64(-50); iz <= 50; iz++ {
			v := lattice(ix, iz, 42)
			if v < -1 || v > 1 {
				t.Fatalf("lattice(%d, %d) out of [-1, 1]: %v", ix, iz, v)
			}
			if w := lattice(ix, iz, 42); w != v {
				t.Fatalf("lattice(%d, %d) not stable: %v != %v", ix, iz, v, w)
			}
		}
	}
}

func TestLatticeSeedSeparation(t *testing.T) {
	t.Parallel()
	same := 0
	for ix := int64(0); ix < 100; ix++ {
		if lattice(ix, 0, 1) == lattice(ix, 0, 2) {
			same++
		}
	}
	if same > 1 {
		t.Fatalf("expected different seeds to decorrelate the lattice, %d/100 values equal", same)
	}
}

func TestSmoothstepEndpoints(t *testing.T) {
	t.Parallel()
	if v := smoothstep(0); v != 0 {
		t.Fatalf("smoothstep(0) = %v, expected 0", v)
	}
	if v := smoothstep(1); v != 1 {
		t.Fatalf("smoothstep(1) = %v, expected 1", v)
	}
	if v := smoothstep(0.5); v != 0.5 {
		t.Fatalf("smoothstep(0.5) = %v, expected 0.5", v)
	}
}

func TestSmoothNoiseMatchesLatticeAtIntegers(t *testing.T) {
	t.Parallel()
	for ix := int64(-5); ix <= 5; ix++ {
		for iz := int64(-5); iz <= 5; iz++ {
			want := lattice(ix, iz, 7)
			got := smoothNoise(float64(ix), float64(iz), 7)
			if math.Abs(got-want) > 1e-12 {
				t.Fatalf("smoothNoise(%d, %d) = %v, expected lattice value %v", ix, iz, got, want)
			}
		}
	}
}

func TestFBMBounded(t *testing.T) {
	t.Parallel()
	for x := -10.0; x < 10; x += 0.37 {
		for z := -10.0; z < 10; z += 0.37 {
			v := fbm(x, z, 4, 0.5, 42)
			if v < -1 || v > 1 {
				t.Fatalf("fbm(%v, %v) out of [-1, 1]: %v", x, z, v)
			}
		}
	}
}

func TestFBMZeroOctaves(t *testing.T) {
	t.Parallel()
	if v := fbm(1, 2, 0, 0.5, 42); v != 0 {
		t.Fatalf("fbm with zero octaves = %v, expected 0", v)
	}
}

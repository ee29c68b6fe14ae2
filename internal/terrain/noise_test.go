package terrain

import (
	"math"
	"math/rand"
	"testing"
)

func TestHash3Deterministic(t *testing.T) {
	first := hash3(10, 20, 30, 42)
	for i := 0; i < 100; i++ {
		if h := hash3(10, 20, 30, 42); h != first {
			t.Fatalf("hash3 not deterministic: got %d, want %d", h, first)
		}
	}
}

func TestHash3DifferentInputs(t *testing.T) {
	seed := int64(42)
	tests := []struct {
		name   string
		a, b   [3]int64
		sa, sb int64
	}{
		{"x", [3]int64{1, 0, 0}, [3]int64{2, 0, 0}, seed, seed},
		{"y", [3]int64{0, 1, 0}, [3]int64{0, 2, 0}, seed, seed},
		{"z", [3]int64{0, 0, 1}, [3]int64{0, 0, 2}, seed, seed},
		{"seed", [3]int64{1, 1, 1}, [3]int64{1, 1, 1}, 100, 200},
		{"axis swap", [3]int64{1, 2, 3}, [3]int64{3, 2, 1}, seed, seed},
	}
	for _, tt := range tests {
		h1 := hash3(tt.a[0], tt.a[1], tt.a[2], tt.sa)
		h2 := hash3(tt.b[0], tt.b[1], tt.b[2], tt.sb)
		if h1 == h2 {
			t.Errorf("%s: hash3 collided (%d)", tt.name, h1)
		}
	}
}

func TestNoiseRange(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	for i := 0; i < 1000; i++ {
		x := rng.Float64()*200 - 100
		y := rng.Float64()*200 - 100
		z := rng.Float64()*200 - 100

		if v := valueNoise2D(x, z, 42); v < 0 || v > 1 {
			t.Fatalf("valueNoise2D(%f, %f) = %f, want [0,1]", x, z, v)
		}
		if v := valueNoise3D(x, y, z, 42); v < 0 || v > 1 {
			t.Fatalf("valueNoise3D(%f, %f, %f) = %f, want [0,1]", x, y, z, v)
		}
		if v := DefaultOctaves.Noise3D(x, y, z, 42); v < 0 || v > 1 {
			t.Fatalf("Noise3D(%f, %f, %f) = %f, want [0,1]", x, y, z, v)
		}
	}
}

func TestNoiseContinuity(t *testing.T) {
	v1 := valueNoise3D(1.0, 1.0, 1.0, 42)
	v2 := valueNoise3D(1.01, 1.0, 1.0, 42)
	if diff := math.Abs(v1 - v2); diff >= 0.1 {
		t.Errorf("valueNoise3D jumped by %f over 0.01", diff)
	}
}

func TestNoiseHitsLatticeValues(t *testing.T) {
	if got, want := valueNoise2D(3, 5, 7), unit(hash2(3, 5, 7)); got != want {
		t.Errorf("valueNoise2D at a lattice point: got %f, want %f", got, want)
	}
}

func TestZeroOctaves(t *testing.T) {
	if v := (Octaves{}).Noise2D(1, 2, 3); v != 0 {
		t.Errorf("got %f, want 0", v)
	}
}

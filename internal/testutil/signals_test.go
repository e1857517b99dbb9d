package testutil

import (
	"testing"
)

func TestUniformPositions(t *testing.T) {
	a := UniformPositions(0, 10, 64)
	b := UniformPositions(0, 10, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("positions not deterministic at index %d", i)
		}
		if a[i] < 0 || a[i] >= 10 {
			t.Fatalf("a[%d] = %v outside [0, 10)", i, a[i])
		}
	}
}

func TestUniformPositionsDifferentSeeds(t *testing.T) {
	a := UniformPositions(1, 1, 16)
	b := UniformPositions(2, 1, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical positions")
	}
}

func TestSinusoid(t *testing.T) {
	s := Sinusoid([]float64{0, 0.25, 0.5}, 1, 2, 0)
	RequireSliceNearlyEqual(t, s, []float64{0, 2, 0}, 1e-12)
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestArange(t *testing.T) {
	RequireSliceNearlyEqual(t, Arange(4), []float64{0, 1, 2, 3}, 0)
	if len(Arange(0)) != 0 {
		t.Fatal("Arange(0) should be empty")
	}
}

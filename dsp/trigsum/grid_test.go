package trigsum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-lombscargle/internal/testutil"
)

func TestGridFrequencies(t *testing.T) {
	g := Grid{F0: 1, Df: 0.5, N: 4, FreqFactor: 2}
	testutil.RequireSliceNearlyEqual(t, g.Frequencies(), []float64{2, 3, 4, 5}, 0)

	w := g.AngularFrequencies()
	testutil.RequireClose(t, w[3], 10*math.Pi, 1e-15, 0)

	if g.Factor() != 2 {
		t.Fatalf("Factor() = %d, want 2", g.Factor())
	}

	if (Grid{Df: 1, N: 1}).Factor() != 1 {
		t.Fatal("zero freq factor must mean 1")
	}

	if (Grid{}).Frequencies() != nil {
		t.Fatal("empty grid must have no frequencies")
	}
}

func TestGridFFTSize(t *testing.T) {
	tests := []struct {
		name         string
		g            Grid
		oversampling int
		spread       int
		want         int
	}{
		{name: "plain", g: Grid{Df: 1, N: 1000}, oversampling: 10, spread: 5, want: 16384},
		{name: "harmonic", g: Grid{Df: 1, N: 1000, FreqFactor: 2}, oversampling: 10, spread: 5, want: 32768},
		{name: "power of two", g: Grid{Df: 1, N: 64}, oversampling: 4, spread: 5, want: 256},
		{name: "at least spread", g: Grid{Df: 1, N: 1}, oversampling: 1, spread: 5, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.g.FFTSize(WithOversampling(tt.oversampling), WithSpread(tt.spread))
			if err != nil {
				t.Fatalf("FFTSize: %v", err)
			}

			if got != tt.want {
				t.Fatalf("FFTSize = %d, want %d", got, tt.want)
			}
		})
	}

	if _, err := (Grid{Df: 1, N: MaxGridSize / 2}).fftSize(4, 5); !errors.Is(err, ErrGridTooLarge) {
		t.Fatalf("error = %v, want %v", err, ErrGridTooLarge)
	}

	if _, err := (Grid{Df: 1, N: 10}).FFTSize(WithOversampling(0)); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidOption)
	}

	if _, err := (Grid{N: 10}).FFTSize(); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidGrid)
	}
}

func TestGridValidate(t *testing.T) {
	valid := []Grid{
		{Df: 0.1, N: 1},
		{F0: 3, Df: 1, N: 10, FreqFactor: 4},
	}
	for _, g := range valid {
		if err := g.Validate(); err != nil {
			t.Fatalf("Validate(%+v): %v", g, err)
		}
	}

	invalid := []Grid{
		{Df: 0, N: 1},
		{Df: math.NaN(), N: 1},
		{Df: math.Inf(1), N: 1},
		{F0: math.NaN(), Df: 1, N: 1},
		{Df: 1, N: 0},
		{Df: 1, N: 1, FreqFactor: -1},
	}
	for _, g := range invalid {
		if err := g.Validate(); !errors.Is(err, ErrInvalidGrid) {
			t.Fatalf("Validate(%+v) = %v, want %v", g, err, ErrInvalidGrid)
		}
	}
}

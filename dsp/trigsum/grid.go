package trigsum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lombscargle/dsp/core"
)

// Grid describes a regular frequency grid. The evaluation frequencies are
// FreqFactor * (F0 + k*Df) for k = 0..N-1.
type Grid struct {
	F0 float64 // first frequency, >= 0
	Df float64 // spacing, > 0
	N  int     // number of frequencies, > 0

	// FreqFactor scales every frequency, which evaluates harmonics of the
	// base grid. Zero means 1.
	FreqFactor int
}

// Validate reports whether g describes a non-degenerate grid.
func (g Grid) Validate() error {
	switch {
	case !core.IsFinite(g.Df) || g.Df <= 0:
		return fmt.Errorf("%w: df must be > 0: %v", ErrInvalidGrid, g.Df)
	case !core.IsFinite(g.F0) || g.F0 < 0:
		return fmt.Errorf("%w: f0 must be >= 0: %v", ErrInvalidGrid, g.F0)
	case g.N <= 0:
		return fmt.Errorf("%w: N must be > 0: %d", ErrInvalidGrid, g.N)
	case g.FreqFactor < 0:
		return fmt.Errorf("%w: freq factor must be >= 1: %d", ErrInvalidGrid, g.FreqFactor)
	}

	return nil
}

// Factor returns the effective frequency multiplier.
func (g Grid) Factor() int {
	if g.FreqFactor <= 0 {
		return 1
	}

	return g.FreqFactor
}

// Frequency returns the k-th evaluation frequency in cycles per time unit.
func (g Grid) Frequency(k int) float64 {
	return float64(g.Factor()) * (g.F0 + float64(k)*g.Df)
}

// Frequencies returns all N evaluation frequencies.
func (g Grid) Frequencies() []float64 {
	if g.N <= 0 {
		return nil
	}

	out := make([]float64, g.N)
	for k := range out {
		out[k] = g.Frequency(k)
	}

	return out
}

// AngularFrequencies returns 2*pi times each evaluation frequency.
func (g Grid) AngularFrequencies() []float64 {
	out := g.Frequencies()
	for k := range out {
		out[k] *= 2 * math.Pi
	}

	return out
}

// FFTSize returns the length of the complex grid Fast uses for g under opts.
func (g Grid) FFTSize(opts ...Option) (int, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	if err := g.Validate(); err != nil {
		return 0, err
	}

	return g.fftSize(cfg.Oversampling, cfg.Spread)
}

// fftSize returns the power-of-two grid length used by the fast path.
func (g Grid) fftSize(oversampling, spread int) (int, error) {
	factor := g.Factor()
	if g.N > MaxGridSize/factor/oversampling {
		return 0, fmt.Errorf("%w: N=%d, freq factor=%d, oversampling=%d", ErrGridTooLarge, g.N, factor, oversampling)
	}

	size := core.BitCeil(g.N * factor * oversampling)
	if size > MaxGridSize {
		return 0, fmt.Errorf("%w: %d > %d", ErrGridTooLarge, size, MaxGridSize)
	}

	return max(size, core.BitCeil(spread)), nil
}

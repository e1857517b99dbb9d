package trigsum

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-lombscargle/dsp/extirpolate"
	"gonum.org/v1/gonum/floats"
)

const maxSpread = extirpolate.MaxSpread

// Mode selects how Sum evaluates the trigonometric sums.
type Mode int

const (
	// ModeFast uses extirpolation and an FFT.
	ModeFast Mode = iota

	// ModeDirect evaluates the double sum literally.
	ModeDirect
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeFast:
		return "fast"
	case ModeDirect:
		return "direct"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Sum computes the sine and cosine sums of h at times t over grid g using the
// given mode. Options only affect ModeFast but are validated in both modes.
func Sum(t, h []float64, g Grid, mode Mode, opts ...Option) (s, c []float64, err error) {
	switch mode {
	case ModeFast:
		return Fast(t, h, g, opts...)
	case ModeDirect:
		if err := ApplyOptions(opts...).Validate(); err != nil {
			return nil, nil, err
		}

		return Direct(t, h, g)
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
}

// Direct computes the sums by literal accumulation over every sample for every
// frequency.
func Direct(t, h []float64, g Grid) (s, c []float64, err error) {
	if err := validate(t, h, g); err != nil {
		return nil, nil, err
	}

	s = make([]float64, g.N)
	c = make([]float64, g.N)

	for k := range g.N {
		omega := 2 * math.Pi * g.Frequency(k)

		var sk, ck float64
		for j, tj := range t {
			sin, cos := math.Sincos(omega * tj)
			sk += h[j] * sin
			ck += h[j] * cos
		}

		s[k] = sk
		c[k] = ck
	}

	return s, c, nil
}

// Fast approximates the sums with the Press & Rybicki extirpolation method.
//
// Times are shifted by t0 = min(t) and mapped onto an Nfft-point grid with
// Nfft = BitCeil(N * FreqFactor * oversampling). A nonzero F0 is folded into
// complex sample weights, and the t0 shift is undone by a phase rotation of
// each output bin.
func Fast(t, h []float64, g Grid, opts ...Option) (s, c []float64, err error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	if err := validate(t, h, g); err != nil {
		return nil, nil, err
	}

	nfft, err := g.fftSize(cfg.Oversampling, cfg.Spread)
	if err != nil {
		return nil, nil, err
	}

	factor := float64(g.Factor())
	df := factor * g.Df
	f0 := factor * g.F0
	t0 := floats.Min(t)
	size := float64(nfft)

	pos := make([]float64, len(t))
	re := make([]float64, len(t))

	var im []float64
	if f0 != 0 {
		im = make([]float64, len(t))
	}

	for j, tj := range t {
		dt := tj - t0
		pos[j] = math.Mod(dt*size*df, size)

		if im == nil {
			re[j] = h[j]
			continue
		}

		sin, cos := math.Sincos(2 * math.Pi * f0 * dt)
		re[j] = h[j] * cos
		im[j] = h[j] * sin
	}

	grid, err := extirpolateComplex(pos, re, im, nfft, cfg.Spread)
	if err != nil {
		return nil, nil, err
	}

	bins, scale, err := cfg.Backend.synthesize(grid)
	if err != nil {
		return nil, nil, err
	}

	s = make([]float64, g.N)
	c = make([]float64, g.N)

	for k := range g.N {
		v := bins[k] * complex(scale, 0)
		if t0 != 0 {
			v *= cmplx.Rect(1, 2*math.Pi*t0*(f0+df*float64(k)))
		}

		c[k] = real(v)
		s[k] = imag(v)
	}

	return s, c, nil
}

// extirpolateComplex spreads re + i*im onto a complex grid of length n. One
// real scratch buffer serves both passes.
func extirpolateComplex(pos, re, im []float64, n, spread int) ([]complex128, error) {
	scratch := make([]float64, n)
	grid := make([]complex128, n)

	if err := extirpolate.ExtirpolateTo(scratch, pos, re, spread); err != nil {
		return nil, fmt.Errorf("trigsum: %w", err)
	}

	for k, v := range scratch {
		grid[k] = complex(v, 0)
	}

	if im == nil {
		return grid, nil
	}

	clear(scratch)

	if err := extirpolate.ExtirpolateTo(scratch, pos, im, spread); err != nil {
		return nil, fmt.Errorf("trigsum: %w", err)
	}

	for k, v := range scratch {
		grid[k] += complex(0, v)
	}

	return grid, nil
}

func validate(t, h []float64, g Grid) error {
	if err := validateSamples(t, h); err != nil {
		return err
	}

	return g.Validate()
}

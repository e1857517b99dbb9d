package lombscargle

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lombscargle/dsp/core"
	"github.com/cwbudde/algo-lombscargle/dsp/trigsum"
	"gonum.org/v1/gonum/floats"
)

const (
	// DefaultSamplesPerPeak is the number of grid points across a typical peak.
	DefaultSamplesPerPeak = 5

	// DefaultNyquistFactor is the multiple of the average Nyquist frequency
	// used as the default upper limit.
	DefaultNyquistFactor = 5
)

// GridConfig controls AutoGrid.
type GridConfig struct {
	SamplesPerPeak float64
	NyquistFactor  float64

	MinFrequency    float64
	HasMinFrequency bool
	MaxFrequency    float64
	HasMaxFrequency bool
}

// GridOption mutates a GridConfig.
type GridOption func(*GridConfig)

// DefaultGridConfig returns the AutoGrid defaults.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		SamplesPerPeak: DefaultSamplesPerPeak,
		NyquistFactor:  DefaultNyquistFactor,
	}
}

// WithSamplesPerPeak sets the grid density relative to the peak width 1/baseline.
func WithSamplesPerPeak(n float64) GridOption {
	return func(cfg *GridConfig) {
		cfg.SamplesPerPeak = n
	}
}

// WithNyquistFactor sets the default upper limit as a multiple of the
// average Nyquist frequency.
func WithNyquistFactor(factor float64) GridOption {
	return func(cfg *GridConfig) {
		cfg.NyquistFactor = factor
	}
}

// WithMinFrequency fixes the first grid frequency.
func WithMinFrequency(f float64) GridOption {
	return func(cfg *GridConfig) {
		cfg.MinFrequency = f
		cfg.HasMinFrequency = true
	}
}

// WithMaxFrequency fixes the upper grid limit.
func WithMaxFrequency(f float64) GridOption {
	return func(cfg *GridConfig) {
		cfg.MaxFrequency = f
		cfg.HasMaxFrequency = true
	}
}

// AutoGrid derives a frequency grid from the sample times. The spacing is
// 1/(baseline*SamplesPerPeak); the grid starts at half a spacing unless a
// minimum is given, and ends near NyquistFactor times the average Nyquist
// frequency 0.5*len(t)/baseline unless a maximum is given.
func AutoGrid(t []float64, opts ...GridOption) (trigsum.Grid, error) {
	cfg := DefaultGridConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !(cfg.SamplesPerPeak > 0) || !(cfg.NyquistFactor > 0) {
		return trigsum.Grid{}, fmt.Errorf("%w: samples per peak %v, nyquist factor %v",
			ErrInvalidOption, cfg.SamplesPerPeak, cfg.NyquistFactor)
	}

	if len(t) == 0 {
		return trigsum.Grid{}, ErrEmptyInput
	}

	for i, v := range t {
		if !core.IsFinite(v) {
			return trigsum.Grid{}, fmt.Errorf("%w: t[%d] = %v", ErrNonFinite, i, v)
		}
	}

	baseline := floats.Max(t) - floats.Min(t)
	if baseline <= 0 {
		return trigsum.Grid{}, ErrZeroBaseline
	}

	df := 1 / (baseline * cfg.SamplesPerPeak)

	fmin := 0.5 * df
	if cfg.HasMinFrequency {
		fmin = cfg.MinFrequency
	}

	fmax := cfg.NyquistFactor * 0.5 * float64(len(t)) / baseline
	if cfg.HasMaxFrequency {
		fmax = cfg.MaxFrequency
	}

	if !core.IsFinite(fmin) || !core.IsFinite(fmax) || fmin < 0 || fmax <= fmin {
		return trigsum.Grid{}, fmt.Errorf("%w: [%v, %v]", ErrInvalidFrequencies, fmin, fmax)
	}

	g := trigsum.Grid{
		F0: fmin,
		Df: df,
		N:  1 + int(math.Round((fmax-fmin)/df)),
	}

	return g, g.Validate()
}

package lombscargle

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lombscargle/dsp/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Samples holds an unevenly sampled series. Dy holds measurement errors: nil
// means unit errors, a single value applies to every sample, otherwise it
// must match T in length.
type Samples struct {
	T  []float64
	Y  []float64
	Dy []float64
}

// Validate checks lengths and values.
func (s Samples) Validate() error {
	if len(s.T) == 0 {
		return ErrEmptyInput
	}

	if len(s.Y) != len(s.T) {
		return fmt.Errorf("%w: len(t)=%d, len(y)=%d", ErrLengthMismatch, len(s.T), len(s.Y))
	}

	if len(s.Dy) > 1 && len(s.Dy) != len(s.T) {
		return fmt.Errorf("%w: len(t)=%d, len(dy)=%d", ErrLengthMismatch, len(s.T), len(s.Dy))
	}

	for i := range s.T {
		if !core.IsFinite(s.T[i]) || !core.IsFinite(s.Y[i]) {
			return fmt.Errorf("%w: sample %d = (%v, %v)", ErrNonFinite, i, s.T[i], s.Y[i])
		}
	}

	for i, dy := range s.Dy {
		if !(dy > 0) || math.IsInf(dy, 0) {
			return fmt.Errorf("%w: dy[%d] = %v", ErrInvalidErrors, i, dy)
		}
	}

	return nil
}

// expandedErrors returns dy expanded to len(T).
func (s Samples) expandedErrors() []float64 {
	dy := make([]float64, len(s.T))

	switch len(s.Dy) {
	case 0:
		for i := range dy {
			dy[i] = 1
		}
	case 1:
		for i := range dy {
			dy[i] = s.Dy[0]
		}
	default:
		copy(dy, s.Dy)
	}

	return dy
}

// constantErrorTolerance is the relative spread below which dy counts as
// constant.
const constantErrorTolerance = 1e-5

// constantErrors reports whether every dy equals the first one within
// constantErrorTolerance relative to it.
func (s Samples) constantErrors() bool {
	if len(s.Dy) <= 1 {
		return true
	}

	ref := s.Dy[0]
	for _, dy := range s.Dy[1:] {
		if !core.NearlyEqual(dy/ref, 1, constantErrorTolerance) {
			return false
		}
	}

	return true
}

// weighted is the preprocessed form shared by the methods.
type weighted struct {
	t  []float64
	y  []float64 // centred when requested
	dy []float64
	w  []float64 // dy^-2 normalised to sum 1

	// wsum is sum(dy^-2) before normalisation.
	wsum float64
}

func prepare(s Samples, center bool) weighted {
	dy := s.expandedErrors()

	raw := make([]float64, len(dy))
	for i, v := range dy {
		raw[i] = 1 / (v * v)
	}

	wsum := floats.Sum(raw)
	w := make([]float64, len(raw))
	floats.ScaleTo(w, 1/wsum, raw)

	y := make([]float64, len(s.Y))
	copy(y, s.Y)

	if center {
		floats.AddConst(-stat.Mean(y, raw), y)
	}

	return weighted{t: s.T, y: y, dy: dy, w: w, wsum: wsum}
}

// psdScale returns the factor from standard to PSD power,
// 0.5 * chi2Ref * n / sum(dy^-2). Constant errors cancel, so the PSD of data
// with constant dy does not depend on dy.
func (d weighted) psdScale() float64 {
	return 0.5 * d.chi2Ref() * float64(len(d.t)) / d.wsum
}

// chi2Ref returns sum((y/dy)^2) of the preprocessed data.
func (d weighted) chi2Ref() float64 {
	var sum float64
	for i, v := range d.y {
		r := v / d.dy[i]
		sum += r * r
	}

	return sum
}

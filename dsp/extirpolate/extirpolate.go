package extirpolate

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lombscargle/dsp/core"
	"gonum.org/v1/gonum/floats"
)

const (
	// DefaultSpread is the number of grid points each sample is spread over.
	DefaultSpread = 5

	// MaxSpread is the largest supported spread; weights need (m-1)!.
	MaxSpread = core.MaxFactorial + 1
)

// Extirpolate spreads the weights y at positions x onto a new grid of length
// n using m-point Lagrange weights.
//
// If n is 0 the length is inferred as int(max(x) + m/2 + 1), and never less
// than m, so the grid covers every sample. x and y are not modified.
func Extirpolate(x, y []float64, n, m int) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}

	if err := validateSpread(m); err != nil {
		return nil, err
	}

	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	case n == 0:
		inferred, err := InferLength(x, m)
		if err != nil {
			return nil, err
		}

		n = inferred
	}

	result := make([]float64, n)
	if err := ExtirpolateTo(result, x, y, m); err != nil {
		return nil, err
	}

	return result, nil
}

// InferLength returns the grid length Extirpolate uses when none is given.
func InferLength(x []float64, m int) (int, error) {
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}

	if err := validateSpread(m); err != nil {
		return 0, err
	}

	hi := floats.Max(x)
	if math.IsNaN(hi) || math.IsInf(hi, 0) {
		return 0, fmt.Errorf("%w: max(x) = %v", ErrOutOfRange, hi)
	}

	return max(int(hi+0.5*float64(m)+1), m), nil
}

// ExtirpolateTo adds the extirpolated weights of (x, y) into dst.
//
// dst is accumulated into, not cleared, so several sample sets can share one
// grid. Every position must lie in [0, len(dst)). All inputs are validated
// before dst is touched.
func ExtirpolateTo(dst, x, y []float64, m int) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}

	if err := validateSpread(m); err != nil {
		return err
	}

	n := len(dst)
	if n == 0 {
		return fmt.Errorf("%w: destination is empty", ErrInvalidLength)
	}

	fractional, err := validateSamples(x, n)
	if err != nil {
		return err
	}

	if fractional && n < m {
		return fmt.Errorf("%w: length %d, spread %d", ErrGridTooSmall, n, m)
	}

	// (m-1)! is exact for every validated spread.
	f, _ := core.Factorial(m - 1)
	base := float64(f)

	for i, xi := range x {
		if xi == math.Trunc(xi) {
			dst[int(xi)] += y[i]
			continue
		}

		spread(dst, xi, y[i], m, base)
	}

	return nil
}

// spread distributes yi at fractional position xi over the m points
// starting at ilo, centred on xi where the grid allows. The weight of node
// ilo+k is the Lagrange basis polynomial
//
//	prod_{l != k} (xi - ilo - l) / prod_{l != k} (k - l)
//
// evaluated as the full product divided by (xi - node), with the node
// denominators (m-1-j)! * j! * (-1)^j built incrementally from (m-1)!.
func spread(dst []float64, xi, yi float64, m int, base float64) {
	n := len(dst)
	ilo := core.ClampInt(int(math.Floor(xi))-(m-1)/2, 0, n-m)

	numerator := yi
	for k := range m {
		numerator *= xi - float64(ilo+k)
	}

	denominator := base
	for j := range m {
		if j > 0 {
			denominator *= float64(j) / float64(j-m)
		}

		ind := ilo + m - 1 - j
		dst[ind] += numerator / (denominator * (xi - float64(ind)))
	}
}

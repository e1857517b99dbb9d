package extirpolate

import (
	"errors"
	"fmt"
)

// Errors returned by extirpolation functions.
var (
	ErrLengthMismatch = errors.New("extirpolate: x and y must have the same length")
	ErrEmptyInput     = errors.New("extirpolate: cannot infer grid length from empty input")
	ErrInvalidLength  = errors.New("extirpolate: invalid grid length")
	ErrInvalidSpread  = errors.New("extirpolate: invalid spread")
	ErrOutOfRange     = errors.New("extirpolate: sample position outside grid")
	ErrGridTooSmall   = errors.New("extirpolate: grid shorter than spread")
)

func validateSpread(m int) error {
	if m < 1 || m > MaxSpread {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidSpread, m, MaxSpread)
	}

	return nil
}

// validateSamples checks positions against a grid of length n and reports
// whether any position needs spreading.
func validateSamples(x []float64, n int) (fractional bool, err error) {
	hi := float64(n)
	for i, xi := range x {
		// Negated comparison also rejects NaN.
		if !(xi >= 0 && xi < hi) {
			return false, fmt.Errorf("%w: x[%d] = %v, grid length %d", ErrOutOfRange, i, xi, n)
		}

		if xi != float64(int(xi)) {
			fractional = true
		}
	}

	return fractional, nil
}

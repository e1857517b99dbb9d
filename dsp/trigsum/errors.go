package trigsum

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-lombscargle/dsp/core"
)

// Errors returned by trigonometric-sum functions.
var (
	ErrLengthMismatch = errors.New("trigsum: t and h must have the same length")
	ErrEmptyInput     = errors.New("trigsum: empty input")
	ErrNonFinite      = errors.New("trigsum: non-finite input")
	ErrInvalidGrid    = errors.New("trigsum: invalid frequency grid")
	ErrInvalidOption  = errors.New("trigsum: invalid option")
	ErrGridTooLarge   = errors.New("trigsum: FFT grid too large")
	ErrUnknownMode    = errors.New("trigsum: unknown mode")
)

func validateSamples(t, h []float64) error {
	if len(t) != len(h) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(t), len(h))
	}

	if len(t) == 0 {
		return ErrEmptyInput
	}

	for i := range t {
		if !core.IsFinite(t[i]) {
			return fmt.Errorf("%w: t[%d] = %v", ErrNonFinite, i, t[i])
		}

		if !core.IsFinite(h[i]) {
			return fmt.Errorf("%w: h[%d] = %v", ErrNonFinite, i, h[i])
		}
	}

	return nil
}

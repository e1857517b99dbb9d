package lombscargle

import "errors"

// Errors returned by periodogram functions.
var (
	ErrLengthMismatch     = errors.New("lombscargle: t, y and dy lengths differ")
	ErrEmptyInput         = errors.New("lombscargle: empty input")
	ErrNonFinite          = errors.New("lombscargle: non-finite input")
	ErrInvalidErrors      = errors.New("lombscargle: measurement errors must be > 0")
	ErrNonConstantErrors  = errors.New("lombscargle: method supports constant errors only")
	ErrUnsupported        = errors.New("lombscargle: option not supported by method")
	ErrInvalidOption      = errors.New("lombscargle: invalid option")
	ErrZeroVariance       = errors.New("lombscargle: data has zero variance")
	ErrZeroBaseline       = errors.New("lombscargle: observation baseline is zero")
	ErrInvalidFrequencies = errors.New("lombscargle: invalid frequency range")
)

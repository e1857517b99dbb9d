package trigsum

import (
	"fmt"

	"github.com/cwbudde/algo-lombscargle/dsp/core"
	algofft "github.com/MeKo-Christian/algo-fft"
	godspfft "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Backend selects the FFT implementation used by the fast path.
type Backend int

const (
	// BackendAlgoFFT uses a github.com/MeKo-Christian/algo-fft plan.
	BackendAlgoFFT Backend = iota

	// BackendGoDSP uses github.com/mjibson/go-dsp/fft.
	BackendGoDSP

	// BackendGonum uses gonum.org/v1/gonum/dsp/fourier.
	BackendGonum
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendAlgoFFT:
		return "algo-fft"
	case BackendGoDSP:
		return "go-dsp"
	case BackendGonum:
		return "gonum"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

func (b Backend) valid() bool {
	return b >= BackendAlgoFFT && b <= BackendGonum
}

// synthesize evaluates sum_n grid[n] * exp(+2*pi*i*k*n/len(grid)) for every k.
// The returned slice holds the result divided by scale; the caller multiplies
// by scale when reading bins. len(grid) must be a power of two.
func (b Backend) synthesize(grid []complex128) (out []complex128, scale float64, err error) {
	n := len(grid)
	if !core.IsPowerOfTwo(n) {
		return nil, 0, fmt.Errorf("%w: FFT length %d is not a power of two", ErrInvalidGrid, n)
	}

	switch b {
	case BackendAlgoFFT:
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, 0, fmt.Errorf("trigsum: failed to create FFT plan: %w", err)
		}

		out := make([]complex128, n)
		if err := plan.Inverse(out, grid); err != nil {
			return nil, 0, fmt.Errorf("trigsum: inverse FFT failed: %w", err)
		}

		return out, float64(n), nil

	case BackendGoDSP:
		return godspfft.IFFT(grid), float64(n), nil

	case BackendGonum:
		// Sequence is the unnormalized backward transform.
		return fourier.NewCmplxFFT(n).Sequence(nil, grid), 1, nil

	default:
		return nil, 0, fmt.Errorf("%w: unknown backend %d", ErrInvalidOption, int(b))
	}
}

package trigsum

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-lombscargle/internal/testutil"
)

func TestBackendsAgree(t *testing.T) {
	times, h := trigSumData()
	g := Grid{F0: 0.7, Df: 0.03, N: 300, FreqFactor: 2}

	sRef, cRef, err := Fast(times, h, g, WithBackend(BackendAlgoFFT))
	if err != nil {
		t.Fatalf("Fast(%v): %v", BackendAlgoFFT, err)
	}

	for _, backend := range []Backend{BackendGoDSP, BackendGonum} {
		t.Run(backend.String(), func(t *testing.T) {
			s, c, err := Fast(times, h, g, WithBackend(backend))
			if err != nil {
				t.Fatalf("Fast(%v): %v", backend, err)
			}

			testutil.RequireSliceNearlyEqual(t, s, sRef, 1e-9)
			testutil.RequireSliceNearlyEqual(t, c, cRef, 1e-9)
		})
	}
}

func TestBackendSynthesizeImpulse(t *testing.T) {
	for _, backend := range []Backend{BackendAlgoFFT, BackendGoDSP, BackendGonum} {
		t.Run(backend.String(), func(t *testing.T) {
			grid := make([]complex128, 8)
			grid[1] = 1

			bins, scale, err := backend.synthesize(grid)
			if err != nil {
				t.Fatalf("synthesize: %v", err)
			}

			// A unit impulse at n=1 synthesizes exp(+2*pi*i*k/8).
			want := []complex128{1, complex(0.7071067811865476, 0.7071067811865476), 1i}
			for k, w := range want {
				got := bins[k] * complex(scale, 0)
				testutil.RequireClose(t, real(got), real(w), 0, 1e-12)
				testutil.RequireClose(t, imag(got), imag(w), 0, 1e-12)
			}
		})
	}
}

func TestBackendString(t *testing.T) {
	names := map[Backend]string{
		BackendAlgoFFT: "algo-fft",
		BackendGoDSP:   "go-dsp",
		BackendGonum:   "gonum",
		Backend(42):    "Backend(42)",
	}

	for b, want := range names {
		if got := b.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}

func TestBackendSynthesizeRejectsNonPowerOfTwo(t *testing.T) {
	for _, backend := range []Backend{BackendAlgoFFT, BackendGoDSP, BackendGonum} {
		for _, n := range []int{0, 6, 12} {
			_, _, err := backend.synthesize(make([]complex128, n))
			if !errors.Is(err, ErrInvalidGrid) {
				t.Fatalf("%v: synthesize(len %d) error = %v, want %v", backend, n, err, ErrInvalidGrid)
			}
		}
	}
}

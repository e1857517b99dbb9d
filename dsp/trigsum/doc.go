// Package trigsum evaluates weighted trigonometric sums of irregularly
// sampled data over a regular frequency grid:
//
//	C[k] = sum_j h[j] * cos(2*pi*f_k*t[j])
//	S[k] = sum_j h[j] * sin(2*pi*f_k*t[j])
//	f_k  = FreqFactor * (F0 + k*Df),  k = 0..N-1
//
// Two evaluation strategies share one result contract:
//
//   - Direct: the literal double sum, O(N * len(t)). Exact up to round-off and
//     used as the reference for the fast path.
//   - Fast: the Press & Rybicki method. Times are mapped to positions on a
//     power-of-two grid, the weights are extirpolated onto it, and a single
//     complex inverse FFT yields all N sums in O(len(t) + Nfft log Nfft).
//
// The fast path is an approximation whose error shrinks as the oversampling
// factor and the extirpolation spread grow. Callers that need exact sums use
// Direct or ModeDirect.
//
// # FFT backends
//
// The inverse FFT of the fast path can be computed by algo-fft (default),
// github.com/mjibson/go-dsp, or gonum's dsp/fourier. All three produce the
// same sums to round-off; see [Backend].
package trigsum

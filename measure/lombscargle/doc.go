// Package lombscargle computes the Lomb-Scargle periodogram of unevenly
// sampled time series on a regular frequency grid.
//
// Four evaluation methods are available:
//
//   - MethodFast: the Press & Rybicki algorithm. The Zechmeister & Kürster
//     (generalised, floating-mean) periodogram is assembled from trigonometric
//     sums computed by extirpolation and FFT (package trigsum). Cost grows as
//     O((N + M) log M).
//   - MethodSlow: the same formulas with the trigonometric sums evaluated
//     directly. Exact, O(N * M).
//   - MethodScipy: the classic Scargle (1982) periodogram with its time
//     offset tau, as computed by scipy.signal.lombscargle. Only constant
//     measurement errors and no mean fitting.
//   - MethodChi2: explicit weighted least squares of a sinusoidal model with
//     optional offset and any number of harmonic terms. Slow but general; used
//     to validate the other methods.
//
// MethodAuto picks chi2 for multi-term models, and otherwise fast or slow by
// problem size.
//
// Every method first produces the standard normalisation (the fraction of
// chi-squared explained by the model) and derives the others from it; see
// Normalization.
//
// # Usage
//
//	grid, _ := lombscargle.AutoGrid(t, lombscargle.WithMaxFrequency(10))
//	power, err := lombscargle.Power(ctx, lombscargle.Samples{T: t, Y: y}, grid)
//
// Non-constant measurement errors are passed in Samples.Dy and weight every
// observation by 1/dy^2.
package lombscargle

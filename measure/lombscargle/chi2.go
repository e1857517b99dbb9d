package lombscargle

import (
	"context"
	"errors"
	"math"
	"runtime"

	"github.com/cwbudde/algo-lombscargle/dsp/trigsum"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// chi2ChunkSize is the number of frequencies handled by one worker task.
const chi2ChunkSize = 64

// leastSquares fits y/dy = X*beta at every frequency, where the columns of X
// are an optional offset and Terms sine/cosine harmonics, all divided by dy.
// The power is the chi-squared reduction y'X(X'X)^-1X'y relative to sum((y/dy)^2).
//
// Frequencies at which X'X is singular (for instance f = 0) get zero power.
func leastSquares(ctx context.Context, d weighted, g trigsum.Grid, cfg Config) ([]float64, error) {
	freqs := g.Frequencies()
	power := make([]float64, len(freqs))

	n := len(d.t)
	yw := mat.NewVecDense(n, nil)
	for i := range n {
		yw.SetVec(i, d.y[i]/d.dy[i])
	}

	chi2Ref := mat.Dot(yw, yw)

	cols := 2 * cfg.Terms
	if cfg.FitMean {
		cols++
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for lo := 0; lo < len(freqs); lo += chi2ChunkSize {
		hi := min(lo+chi2ChunkSize, len(freqs))

		eg.Go(func() error {
			x := mat.NewDense(n, cols, nil)

			for k := lo; k < hi; k++ {
				if err := egCtx.Err(); err != nil {
					return err
				}

				fillDesign(x, d, freqs[k], cfg)

				p, ok := explained(x, yw)
				if ok {
					power[k] = p / chi2Ref
				}
			}

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return power, nil
}

// fillDesign writes the weighted design matrix for frequency f into x.
func fillDesign(x *mat.Dense, d weighted, f float64, cfg Config) {
	for i, t := range d.t {
		inv := 1 / d.dy[i]
		col := 0

		if cfg.FitMean {
			x.Set(i, col, inv)
			col++
		}

		for h := 1; h <= cfg.Terms; h++ {
			s, c := math.Sincos(2 * math.Pi * float64(h) * f * t)
			x.Set(i, col, s*inv)
			x.Set(i, col+1, c*inv)
			col += 2
		}
	}
}

// explained returns y'X(X'X)^-1X'y. ok is false when X'X is not positive
// definite.
func explained(x *mat.Dense, yw *mat.VecDense) (float64, bool) {
	var xtx mat.SymDense
	xtx.SymOuterK(1, x.T())

	var xty mat.VecDense
	xty.MulVec(x.T(), yw)

	var chol mat.Cholesky
	if !chol.Factorize(&xtx) {
		return 0, false
	}

	var beta mat.VecDense
	if err := chol.SolveVecTo(&beta, &xty); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return 0, false
		}
	}

	p := mat.Dot(&xty, &beta)
	if math.IsNaN(p) || p < 0 {
		return 0, false
	}

	return p, true
}

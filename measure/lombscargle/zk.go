package lombscargle

import (
	"context"
	"math"

	"github.com/cwbudde/algo-lombscargle/dsp/core"
	"github.com/cwbudde/algo-lombscargle/dsp/trigsum"
	vecmath "github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// sums holds sine and cosine sums over the frequency grid.
type sums struct {
	s, c []float64
}

// zechmeisterKurster evaluates the generalised Lomb-Scargle periodogram of
// Zechmeister & Kürster (2009) from trigonometric sums, using the
// Press & Rybicki identities to avoid computing tau explicitly.
//
// Required sums (w normalised weights, y preprocessed data):
//
//	Sh, Ch: sum w*y*{sin,cos}(wt)
//	S2, C2: sum w*{sin,cos}(2wt)
//	S,  C:  sum w*{sin,cos}(wt)   (only with a fitted mean)
//
// The sums are independent and run concurrently.
func zechmeisterKurster(ctx context.Context, d weighted, g trigsum.Grid, mode trigsum.Mode, cfg Config) ([]float64, error) {
	wy := make([]float64, len(d.y))
	vecmath.MulBlock(wy, d.w, d.y)

	base := g
	base.FreqFactor = g.Factor()
	double := g
	double.FreqFactor = 2 * g.Factor()

	var data, window2, window sums

	eg, egCtx := errgroup.WithContext(ctx)
	run := func(dst *sums, h []float64, grid trigsum.Grid) {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			s, c, err := trigsum.Sum(d.t, h, grid, mode, cfg.TrigSumOptions...)
			if err != nil {
				return err
			}

			dst.s, dst.c = s, c
			return nil
		})
	}

	run(&data, wy, base)
	run(&window2, d.w, double)
	if cfg.FitMean {
		run(&window, d.w, base)
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := g.N
	num := make([]float64, n)
	den := make([]float64, n)

	for k := range n {
		num[k] = window2.s[k]
		den[k] = window2.c[k]

		if cfg.FitMean {
			s, c := window.s[k], window.c[k]
			num[k] -= 2 * s * c
			den[k] -= c*c - s*s
		}
	}

	// hyp = sqrt(num^2 + den^2) gives tan(2wt) without dividing by den.
	hyp := make([]float64, n)
	vecmath.Magnitude(hyp, num, den)

	yy := floats.Dot(wy, d.y)
	power := make([]float64, n)

	for k := range n {
		c2w, s2w := 1.0, 0.0
		if hyp[k] > 0 {
			c2w = core.Clamp(math.Abs(den[k])/hyp[k], 0, 1)
			s2w = num[k] / hyp[k]

			if den[k] < 0 {
				s2w = -s2w
			}
		}

		cw := math.Sqrt2 / 2 * mathSqrt(1+c2w)
		sw := math.Copysign(math.Sqrt2/2*mathSqrt(1-c2w), s2w)

		sh, ch := data.s[k], data.c[k]
		yc := ch*cw + sh*sw
		ys := sh*cw - ch*sw

		s2, c2 := window2.s[k], window2.c[k]
		cc := 0.5 * (1 + c2*c2w + s2*s2w)
		ss := 0.5 * (1 - c2*c2w - s2*s2w)

		if cfg.FitMean {
			s, c := window.s[k], window.c[k]
			cm := c*cw + s*sw
			sm := s*cw - c*sw
			cc -= cm * cm
			ss -= sm * sm
		}

		power[k] = (ratio(yc*yc, cc, 1) + ratio(ys*ys, ss, 1)) / yy
	}

	return power, nil
}

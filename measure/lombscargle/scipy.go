package lombscargle

import (
	"context"
	"math"

	"github.com/cwbudde/algo-lombscargle/dsp/trigsum"
)

// scargle evaluates the classic Scargle (1982) periodogram with an explicit
// time offset tau per frequency. Errors are constant, so weights drop out.
func scargle(ctx context.Context, d weighted, g trigsum.Grid) ([]float64, error) {
	omegas := g.AngularFrequencies()
	power := make([]float64, len(omegas))

	var yy float64
	for _, v := range d.y {
		yy += v * v
	}

	n := float64(len(d.t))

	for k, omega := range omegas {
		if k%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		var tau float64
		if omega != 0 {
			var s2, c2 float64
			for _, t := range d.t {
				s, c := math.Sincos(2 * omega * t)
				s2 += s
				c2 += c
			}

			tau = math.Atan2(s2, c2) / (2 * omega)
		}

		var xc, xs, cc, ss float64
		for i, t := range d.t {
			s, c := math.Sincos(omega * (t - tau))
			xc += d.y[i] * c
			xs += d.y[i] * s
			cc += c * c
			ss += s * s
		}

		// 0.5*(xc^2/cc + xs^2/ss) normalised by 0.5*sum(y^2).
		power[k] = (ratio(xc*xc, cc, n) + ratio(xs*xs, ss, n)) / yy
	}

	return power, nil
}

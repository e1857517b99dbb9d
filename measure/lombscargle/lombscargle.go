package lombscargle

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-lombscargle/dsp/trigsum"
	"github.com/cwbudde/algo-lombscargle/logging"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// autoFastThreshold is the samples*frequencies product from which MethodAuto
// prefers the fast method.
const autoFastThreshold = 1 << 14

// Periodogram evaluates Lomb-Scargle power with a fixed configuration.
type Periodogram struct {
	cfg    Config
	logger logging.Logger
}

// New creates a periodogram evaluator.
func New(opts ...Option) (*Periodogram, error) {
	cfg := ApplyOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}

	return &Periodogram{
		cfg:    cfg,
		logger: logger.WithFields(logging.Fields{"component": "lombscargle"}),
	}, nil
}

// Power is a one-shot periodogram evaluation.
func Power(ctx context.Context, s Samples, g trigsum.Grid, opts ...Option) ([]float64, error) {
	p, err := New(opts...)
	if err != nil {
		return nil, err
	}

	return p.Power(ctx, s, g)
}

// Config returns the evaluator's configuration.
func (p *Periodogram) Config() Config {
	return p.cfg
}

// Power returns the periodogram of s at every frequency of g.
func (p *Periodogram) Power(ctx context.Context, s Samples, g trigsum.Grid) ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := p.cfg
	method := p.selectMethod(len(s.T), g.N)
	fields := logging.Fields{
		"method":      method.String(),
		"samples":     len(s.T),
		"frequencies": g.N,
	}

	if method == MethodFast {
		tcfg := trigsum.ApplyOptions(cfg.TrigSumOptions...)
		fields["oversampling"] = tcfg.Oversampling
		fields["spread"] = tcfg.Spread
		fields["backend"] = tcfg.Backend.String()

		// The 2w window sum runs on a grid twice as long.
		double := g
		double.FreqFactor = 2 * g.Factor()

		nfft, err := double.FFTSize(cfg.TrigSumOptions...)
		if err != nil {
			return nil, err
		}

		fields["nfft"] = nfft
	}

	p.logger.WithContext(ctx).Debug("evaluating periodogram", fields)

	if method == MethodScipy && !s.constantErrors() {
		return nil, ErrNonConstantErrors
	}

	data := prepare(s, cfg.CenterData || cfg.FitMean)

	if data.chi2Ref() == 0 {
		return nil, ErrZeroVariance
	}

	var (
		power []float64
		err   error
	)

	switch method {
	case MethodFast:
		power, err = zechmeisterKurster(ctx, data, g, trigsum.ModeFast, cfg)
	case MethodSlow:
		power, err = zechmeisterKurster(ctx, data, g, trigsum.ModeDirect, cfg)
	case MethodScipy:
		power, err = scargle(ctx, data, g)
	case MethodChi2:
		power, err = leastSquares(ctx, data, g, cfg)
	default:
		err = fmt.Errorf("%w: method %v", ErrInvalidOption, method)
	}

	if err != nil {
		return nil, err
	}

	return normalize(power, cfg.Normalization, data.psdScale()), nil
}

func (p *Periodogram) selectMethod(samples, frequencies int) Method {
	if p.cfg.Method != MethodAuto {
		return p.cfg.Method
	}

	switch {
	case p.cfg.Terms > 1:
		return MethodChi2
	case samples*frequencies >= autoFastThreshold:
		return MethodFast
	default:
		return MethodSlow
	}
}

// normalize converts standard-normalised power in place and returns it.
// psdScale converts standard power to NormPSD.
func normalize(power []float64, norm Normalization, psdScale float64) []float64 {
	switch norm {
	case NormModel:
		for i, v := range power {
			power[i] = v / (1 - v)
		}
	case NormLog:
		for i, v := range power {
			power[i] = -mathLog(1 - v)
		}
	case NormPSD:
		out := make([]float64, len(power))
		vecmath.ScaleBlock(out, power, psdScale)
		return out
	}

	return power
}

// ratio returns num/den, or 0 when den is too small for the quotient to carry
// information (a model term that is degenerate at this frequency).
func ratio(num, den, scale float64) float64 {
	if den <= degenerateTolerance*scale {
		return 0
	}

	return num / den
}

const degenerateTolerance = 1e-12

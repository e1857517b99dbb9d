package lombscargle

import (
	"fmt"

	"github.com/cwbudde/algo-lombscargle/dsp/trigsum"
	"github.com/cwbudde/algo-lombscargle/logging"
)

// Method selects the periodogram algorithm.
type Method int

const (
	MethodAuto Method = iota
	MethodFast
	MethodSlow
	MethodScipy
	MethodChi2
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodFast:
		return "fast"
	case MethodSlow:
		return "slow"
	case MethodScipy:
		return "scipy"
	case MethodChi2:
		return "chi2"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Normalization selects the output scaling of the periodogram.
type Normalization int

const (
	// NormStandard is the fraction of the reference chi-squared explained by
	// the model, in [0, 1].
	NormStandard Normalization = iota

	// NormModel is P / (1 - P).
	NormModel

	// NormLog is -ln(1 - P).
	NormLog

	// NormPSD is 0.5 * chi2_ref * P * N / sum(dy^-2), the unnormalised power.
	// For constant errors it equals the classic Scargle power of the
	// preprocessed data, whatever the value of dy.
	NormPSD
)

// String returns the normalisation name.
func (n Normalization) String() string {
	switch n {
	case NormStandard:
		return "standard"
	case NormModel:
		return "model"
	case NormLog:
		return "log"
	case NormPSD:
		return "psd"
	default:
		return fmt.Sprintf("Normalization(%d)", int(n))
	}
}

// Config holds periodogram settings.
type Config struct {
	Method        Method
	Normalization Normalization

	// CenterData subtracts the weighted mean before evaluation.
	CenterData bool

	// FitMean adds a constant offset to the model at every frequency.
	FitMean bool

	// Terms is the number of Fourier terms; only MethodChi2 supports > 1.
	Terms int

	TrigSumOptions []trigsum.Option
	Logger         logging.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the defaults: auto method, standard normalisation,
// centred data with a fitted mean, one term.
func DefaultConfig() Config {
	return Config{
		Method:        MethodAuto,
		Normalization: NormStandard,
		CenterData:    true,
		FitMean:       true,
		Terms:         1,
	}
}

// WithMethod selects the algorithm.
func WithMethod(method Method) Option {
	return func(cfg *Config) {
		cfg.Method = method
	}
}

// WithNormalization selects the output scaling.
func WithNormalization(norm Normalization) Option {
	return func(cfg *Config) {
		cfg.Normalization = norm
	}
}

// WithCenterData toggles subtraction of the weighted mean.
func WithCenterData(center bool) Option {
	return func(cfg *Config) {
		cfg.CenterData = center
	}
}

// WithFitMean toggles the floating-mean model.
func WithFitMean(fit bool) Option {
	return func(cfg *Config) {
		cfg.FitMean = fit
	}
}

// WithTerms sets the number of Fourier terms.
func WithTerms(terms int) Option {
	return func(cfg *Config) {
		cfg.Terms = terms
	}
}

// WithTrigSumOptions passes options to the trigonometric sums of the fast
// method.
func WithTrigSumOptions(opts ...trigsum.Option) Option {
	return func(cfg *Config) {
		cfg.TrigSumOptions = append(cfg.TrigSumOptions, opts...)
	}
}

// WithLogger sets the logger. Nil uses the global logger.
func WithLogger(logger logging.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Validate reports inconsistent settings.
func (cfg Config) Validate() error {
	if cfg.Method < MethodAuto || cfg.Method > MethodChi2 {
		return fmt.Errorf("%w: method %v", ErrInvalidOption, cfg.Method)
	}

	if cfg.Normalization < NormStandard || cfg.Normalization > NormPSD {
		return fmt.Errorf("%w: normalization %v", ErrInvalidOption, cfg.Normalization)
	}

	if cfg.Terms < 1 {
		return fmt.Errorf("%w: terms must be >= 1: %d", ErrInvalidOption, cfg.Terms)
	}

	switch cfg.Method {
	case MethodFast, MethodSlow, MethodScipy:
		if cfg.Terms != 1 {
			return fmt.Errorf("%w: %v with %d terms", ErrUnsupported, cfg.Method, cfg.Terms)
		}
	}

	if cfg.Method == MethodScipy && cfg.FitMean {
		return fmt.Errorf("%w: %v cannot fit the mean", ErrUnsupported, cfg.Method)
	}

	if err := trigsum.ApplyOptions(cfg.TrigSumOptions...).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	return nil
}

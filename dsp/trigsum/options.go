package trigsum

import "fmt"

const (
	// DefaultOversampling is the FFT grid density relative to N * FreqFactor.
	DefaultOversampling = 5

	// DefaultSpread is the number of grid points each sample is spread over.
	DefaultSpread = 5

	// MaxGridSize bounds the complex FFT grid of the fast path.
	MaxGridSize = 1 << 26
)

// Config holds fast-path parameters.
type Config struct {
	Oversampling int
	Spread       int
	Backend      Backend
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the fast-path defaults.
func DefaultConfig() Config {
	return Config{
		Oversampling: DefaultOversampling,
		Spread:       DefaultSpread,
		Backend:      BackendAlgoFFT,
	}
}

// WithOversampling sets the FFT grid oversampling factor (>= 1).
func WithOversampling(oversampling int) Option {
	return func(cfg *Config) {
		cfg.Oversampling = oversampling
	}
}

// WithSpread sets the extirpolation spread M (number of grid points per sample).
func WithSpread(spread int) Option {
	return func(cfg *Config) {
		cfg.Spread = spread
	}
}

// WithBackend selects the FFT implementation.
func WithBackend(backend Backend) Option {
	return func(cfg *Config) {
		cfg.Backend = backend
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

// Validate reports whether cfg can drive the fast path.
func (cfg Config) Validate() error {
	if cfg.Oversampling < 1 {
		return fmt.Errorf("%w: oversampling must be >= 1: %d", ErrInvalidOption, cfg.Oversampling)
	}

	if cfg.Spread < 1 || cfg.Spread > maxSpread {
		return fmt.Errorf("%w: spread must be in [1, %d]: %d", ErrInvalidOption, maxSpread, cfg.Spread)
	}

	if !cfg.Backend.valid() {
		return fmt.Errorf("%w: unknown backend %d", ErrInvalidOption, int(cfg.Backend))
	}

	return nil
}

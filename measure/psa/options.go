package psa

import "runtime"

// Config holds extraction parameters.
type Config struct {
	// BaselineSamples is the number of leading samples averaged into the
	// baseline estimate.
	BaselineSamples int
	// Workers bounds the goroutines used by ExtractBatch.
	Workers int
	// PrefilterCutoff enables a spectral low-pass ahead of the baseline
	// stage when > 0, in cycles per time unit.
	PrefilterCutoff float64
	// PrefilterRolloff is the raised-cosine transition width of the
	// prefilter.
	PrefilterRolloff float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the reference extraction settings: a 15-sample
// baseline, one worker per CPU and no prefilter.
func DefaultConfig() Config {
	return Config{
		BaselineSamples: 15,
		Workers:         runtime.GOMAXPROCS(0),
	}
}

// WithBaselineSamples sets the baseline window length.
func WithBaselineSamples(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.BaselineSamples = n
		}
	}
}

// WithWorkers sets the batch parallelism.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// WithPrefilter enables the spectral low-pass prefilter. A non-positive
// cutoff disables it.
func WithPrefilter(cutoff, rolloff float64) Option {
	return func(cfg *Config) {
		if cutoff > 0 {
			cfg.PrefilterCutoff = cutoff
			cfg.PrefilterRolloff = max(rolloff, 0)
		} else {
			cfg.PrefilterCutoff = 0
			cfg.PrefilterRolloff = 0
		}
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

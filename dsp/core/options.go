package core

// AxisConfig describes an evenly spaced time axis.
type AxisConfig struct {
	Start   float64
	Span    float64
	Samples int
}

// AxisOption mutates an AxisConfig.
type AxisOption func(*AxisConfig)

// DefaultAxisConfig returns the canonical acquisition window: 500 samples
// spanning 100 time units from 0.
func DefaultAxisConfig() AxisConfig {
	return AxisConfig{
		Start:   0,
		Span:    100,
		Samples: 500,
	}
}

// WithStart sets the time of the first sample.
func WithStart(start float64) AxisOption {
	return func(cfg *AxisConfig) {
		cfg.Start = start
	}
}

// WithSpan sets the distance between first and last sample.
func WithSpan(span float64) AxisOption {
	return func(cfg *AxisConfig) {
		if span > 0 {
			cfg.Span = span
		}
	}
}

// WithSamples sets the sample count.
func WithSamples(samples int) AxisOption {
	return func(cfg *AxisConfig) {
		if samples >= 2 {
			cfg.Samples = samples
		}
	}
}

// ApplyAxisOptions applies zero or more options to the default config.
func ApplyAxisOptions(opts ...AxisOption) AxisConfig {
	cfg := DefaultAxisConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

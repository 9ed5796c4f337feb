package psa

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-pulse/dsp/core"
	"github.com/cwbudde/algo-pulse/dsp/spectrum"
)

// ErrEmptyWaveform is returned for a waveform without samples.
var ErrEmptyWaveform = errors.New("psa: waveform is empty")

const (
	riseLowFraction  = 0.10
	riseHighFraction = 0.90
	halfMaxFraction  = 0.5
)

// Extractor computes pulse-shape features. It holds no per-waveform state
// and is safe for concurrent use.
type Extractor struct {
	cfg Config
}

// NewExtractor creates an extractor from the default config and options.
func NewExtractor(opts ...Option) *Extractor {
	return &Extractor{cfg: ApplyOptions(opts...)}
}

// NewExtractorFromConfig creates an extractor from an explicit config.
// Invalid fields fall back to their defaults.
func NewExtractorFromConfig(cfg Config) *Extractor {
	def := DefaultConfig()
	if cfg.BaselineSamples <= 0 {
		cfg.BaselineSamples = def.BaselineSamples
	}
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	if cfg.PrefilterCutoff <= 0 {
		cfg.PrefilterCutoff, cfg.PrefilterRolloff = 0, 0
	}
	return &Extractor{cfg: cfg}
}

// Config returns the extractor configuration.
func (e *Extractor) Config() Config {
	return e.cfg
}

// Extract is a one-shot extraction with the default configuration.
func Extract(axis core.Axis, waveform []float64) (Features, error) {
	return NewExtractor().Extract(axis, waveform)
}

// Extract reduces one waveform to its features. The waveform is not
// modified.
func (e *Extractor) Extract(axis core.Axis, waveform []float64) (Features, error) {
	if len(waveform) == 0 {
		return Features{}, ErrEmptyWaveform
	}
	if err := axis.CheckLen(len(waveform)); err != nil {
		return Features{}, err
	}

	clean, err := e.prefilter(axis, waveform)
	if err != nil {
		return Features{}, err
	}
	subtractBaseline(clean, e.cfg.BaselineSamples)

	peakIdx := floats.MaxIdx(clean)
	peak := clean[peakIdx]
	if !(peak > 0) {
		return Degenerate(), nil
	}

	times := axis.View()
	rise := riseTime(times, clean, peak)
	area := integrate.Trapezoidal(times, clean)
	fwhm := widthAtLevel(times, clean, halfMaxFraction*peak)
	chi := chiSquare(times, clean, peakIdx, peak, rise)

	return Measured(peak, rise, area, fwhm, chi), nil
}

// prefilter returns a private copy of waveform, low-passed when enabled.
func (e *Extractor) prefilter(axis core.Axis, waveform []float64) ([]float64, error) {
	if e.cfg.PrefilterCutoff <= 0 {
		out := make([]float64, len(waveform))
		copy(out, waveform)
		return out, nil
	}
	if !axis.Uniform() {
		return nil, fmt.Errorf("psa: prefilter: %w", core.ErrAxisNotUniform)
	}
	out, err := spectrum.LowPass(waveform, axis.Step(), e.cfg.PrefilterCutoff, e.cfg.PrefilterRolloff)
	if err != nil {
		return nil, fmt.Errorf("psa: prefilter: %w", err)
	}
	return out, nil
}

// subtractBaseline removes the mean of the first n samples (all samples if
// the waveform is shorter) in place and returns it.
func subtractBaseline(w []float64, n int) float64 {
	n = min(n, len(w))
	baseline := stat.Mean(w[:n], nil)
	floats.AddConst(-baseline, w)
	return baseline
}

// firstAtLeast returns the first index whose value is >= level, or -1.
func firstAtLeast(w []float64, level float64) int {
	for i, v := range w {
		if v >= level {
			return i
		}
	}
	return -1
}

// lastAtLeast returns the last index whose value is >= level, or -1.
func lastAtLeast(w []float64, level float64) int {
	for i := len(w) - 1; i >= 0; i-- {
		if w[i] >= level {
			return i
		}
	}
	return -1
}

// riseTime returns the 10%-90% rise time, or 0 when either threshold is
// never reached.
func riseTime(times, w []float64, peak float64) float64 {
	lo := firstAtLeast(w, riseLowFraction*peak)
	hi := firstAtLeast(w, riseHighFraction*peak)
	if lo < 0 || hi < 0 {
		return 0
	}
	return times[hi] - times[lo]
}

// widthAtLevel spans from the first to the last sample at or above level,
// ignoring any dips in between, or returns 0 when no sample qualifies.
func widthAtLevel(times, w []float64, level float64) float64 {
	first := firstAtLeast(w, level)
	if first < 0 {
		return 0
	}
	return times[lastAtLeast(w, level)] - times[first]
}

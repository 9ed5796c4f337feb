package testutil

import (
	"testing"

	"github.com/cwbudde/algo-pulse/dsp/core"
)

// DefaultAxis returns the canonical 500-sample axis over [0, 100].
func DefaultAxis(tb testing.TB) core.Axis {
	tb.Helper()
	axis, err := core.NewAxisFromConfig(core.DefaultAxisConfig())
	if err != nil {
		tb.Fatalf("default axis: %v", err)
	}
	return axis
}

// Impulse generates a unit spike at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued waveform.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

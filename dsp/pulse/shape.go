package pulse

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-pulse/dsp/core"
)

// ErrZeroRiseTime is returned when a template is evaluated with a zero shape
// constant, which would divide by zero.
var ErrZeroRiseTime = errors.New("pulse: rise time must be non-zero")

// Params describes one analytic pulse.
type Params struct {
	Onset     float64 // t0
	Amplitude float64 // A
	RiseTime  float64 // tau
}

// Validate reports ErrZeroRiseTime for tau == 0.
//
// Negative shape constants are not rejected: they are numerically defined
// and physically meaningless, and the synthesizer trusts its caller.
func (p Params) Validate() error {
	if p.RiseTime == 0 {
		return fmt.Errorf("%w: onset=%v amplitude=%v", ErrZeroRiseTime, p.Onset, p.Amplitude)
	}
	return nil
}

// At evaluates the template at time t. The caller must have validated p.
func (p Params) At(t float64) float64 {
	if !(t > p.Onset) {
		return 0
	}
	x := (t - p.Onset) / p.RiseTime
	return p.Amplitude * x * math.Exp(-x)
}

// Peak returns the template maximum A/e.
func (p Params) Peak() float64 {
	return p.Amplitude / math.E
}

// PeakTime returns t0 + tau, where the template is maximal.
func (p Params) PeakTime() float64 {
	return p.Onset + p.RiseTime
}

// Fill evaluates p at every sample of axis into dst, reusing its capacity.
func Fill(dst []float64, axis core.Axis, p Params) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	times := axis.View()
	dst = core.EnsureLen(dst, len(times))
	for i, t := range times {
		dst[i] = p.At(t)
	}
	return dst, nil
}

// Evaluate is Fill into a freshly allocated slice.
func Evaluate(axis core.Axis, p Params) ([]float64, error) {
	return Fill(nil, axis, p)
}

package psa

import (
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-pulse/dsp/pulse"
)

// templateOnsetFraction places the template onset this many rise times
// before the observed maximum.
const templateOnsetFraction = 0.5

// chiSquare returns the mean squared residual between w and the analytic
// template anchored at t[peakIdx] - 0.5*rise with amplitude peak and shape
// constant rise. A non-positive rise yields ChiSquareSentinel.
func chiSquare(times, w []float64, peakIdx int, peak, rise float64) float64 {
	if !(rise > 0) {
		return ChiSquareSentinel
	}
	tmpl := pulse.Params{
		Onset:     times[peakIdx] - templateOnsetFraction*rise,
		Amplitude: peak,
		RiseTime:  rise,
	}

	residual := make([]float64, len(w))
	for i, t := range times {
		residual[i] = tmpl.At(t)
	}
	floats.SubTo(residual, w, residual)
	return floats.Dot(residual, residual) / float64(len(w))
}

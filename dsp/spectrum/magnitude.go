package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-pulse/dsp/core"
)

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, _, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// MagnitudeSpectrum returns the one-sided magnitude spectrum of data,
// zero-padded to the next power of two, together with the frequency
// resolution in cycles per time unit.
func MagnitudeSpectrum(data []float64, samplePeriod float64) (mag []float64, resolution float64, err error) {
	if len(data) == 0 {
		return nil, 0, ErrEmptyInput
	}
	if samplePeriod <= 0 {
		return nil, 0, fmt.Errorf("%w: %f", ErrInvalidPeriod, samplePeriod)
	}

	fftSize := core.NextPowerOf2(len(data))
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, 0, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range data {
		padded[i] = complex(v, 0)
	}
	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, 0, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	return Magnitude(freq[:fftSize/2+1]), 1 / (float64(fftSize) * samplePeriod), nil
}

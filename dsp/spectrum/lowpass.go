package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-pulse/dsp/core"
)

// Errors returned by the spectral helpers.
var (
	ErrEmptyInput    = errors.New("spectrum: input is empty")
	ErrInvalidPeriod = errors.New("spectrum: sample period must be > 0")
	ErrInvalidCutoff = errors.New("spectrum: cutoff must be > 0")
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

// getScratch returns three n-length views: real part, imaginary part and a
// spare buffer.
func getScratch(n int) (re, im, spare []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 3 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n : 2*n], buf.data[2*n : need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// RaisedCosineGain returns the low-pass gain at frequency f: 1 up to cutoff,
// a half-cosine roll-off of width rolloff, then 0. A non-positive rolloff
// gives a brick-wall response.
func RaisedCosineGain(f, cutoff, rolloff float64) float64 {
	f = math.Abs(f)
	if rolloff <= 0 {
		if f <= cutoff {
			return 1
		}
		return 0
	}
	x := core.Clamp((f-cutoff)/rolloff, 0, 1)
	return 0.5 * (1 + math.Cos(math.Pi*x))
}

// binFrequency returns the signed frequency of FFT bin k.
func binFrequency(k, size int, samplePeriod float64) float64 {
	if k > size/2 {
		k -= size
	}
	return float64(k) / (float64(size) * samplePeriod)
}

// LowPass filters data sampled every samplePeriod time units, keeping
// content below cutoff (cycles per time unit) with a raised-cosine
// transition of width rolloff. The input is zero-padded to twice its length
// rounded up to a power of two, so the circular transform does not fold the
// tail of the record onto its start. A new slice is returned.
func LowPass(data []float64, samplePeriod, cutoff, rolloff float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if samplePeriod <= 0 {
		return nil, fmt.Errorf("%w: %f", ErrInvalidPeriod, samplePeriod)
	}
	if cutoff <= 0 {
		return nil, fmt.Errorf("%w: %f", ErrInvalidCutoff, cutoff)
	}

	n := len(data)
	fftSize := core.NextPowerOf2(2 * n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range data {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	re, im, gain, buf := getScratch(fftSize)
	for k, c := range freq {
		re[k] = real(c)
		im[k] = imag(c)
		gain[k] = RaisedCosineGain(binFrequency(k, fftSize, samplePeriod), cutoff, rolloff)
	}
	vecmath.MulBlockInPlace(re, gain)
	vecmath.MulBlockInPlace(im, gain)
	for k := range freq {
		freq[k] = complex(re[k], im[k])
	}
	putScratch(buf)

	if err := plan.Inverse(padded, freq); err != nil {
		return nil, fmt.Errorf("spectrum: inverse FFT failed: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(padded[i])
	}
	return out, nil
}

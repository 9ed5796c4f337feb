package core

import (
	"errors"
	"fmt"
)

// Errors returned by time-axis construction and validation.
var (
	ErrAxisTooShort      = errors.New("core: time axis needs at least 2 samples")
	ErrAxisNotIncreasing = errors.New("core: time axis must be strictly increasing")
	ErrLengthMismatch    = errors.New("core: waveform and time axis lengths differ")
	ErrAxisNotUniform    = errors.New("core: time axis is not evenly spaced")
)

// Axis is an immutable, strictly increasing sequence of sample times shared
// by every waveform of a run.
type Axis struct {
	times []float64
}

// NewAxis validates times and wraps a private copy of it.
func NewAxis(times []float64) (Axis, error) {
	if len(times) < 2 {
		return Axis{}, fmt.Errorf("%w: got %d", ErrAxisTooShort, len(times))
	}
	for i := 1; i < len(times); i++ {
		if !(times[i] > times[i-1]) {
			return Axis{}, fmt.Errorf("%w: t[%d]=%v <= t[%d]=%v",
				ErrAxisNotIncreasing, i, times[i], i-1, times[i-1])
		}
	}
	cp := make([]float64, len(times))
	copy(cp, times)
	return Axis{times: cp}, nil
}

// Linspace returns n evenly spaced samples over [start, stop], both endpoints
// included.
func Linspace(start, stop float64, n int) (Axis, error) {
	if n < 2 {
		return Axis{}, fmt.Errorf("%w: got %d", ErrAxisTooShort, n)
	}
	if !(stop > start) {
		return Axis{}, fmt.Errorf("%w: stop %v <= start %v", ErrAxisNotIncreasing, stop, start)
	}
	times := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range times {
		times[i] = start + float64(i)*step
	}
	times[n-1] = stop
	return Axis{times: times}, nil
}

// NewAxisFromConfig builds the evenly spaced axis described by cfg.
func NewAxisFromConfig(cfg AxisConfig) (Axis, error) {
	return Linspace(cfg.Start, cfg.Start+cfg.Span, cfg.Samples)
}

// Len returns the sample count.
func (a Axis) Len() int { return len(a.times) }

// At returns the time of sample i.
func (a Axis) At(i int) float64 { return a.times[i] }

// Times returns a copy of the sample times.
func (a Axis) Times() []float64 {
	out := make([]float64, len(a.times))
	copy(out, a.times)
	return out
}

// View returns the sample times without copying. Callers must not modify it.
func (a Axis) View() []float64 { return a.times }

// Span returns last minus first sample time.
func (a Axis) Span() float64 {
	if len(a.times) < 2 {
		return 0
	}
	return a.times[len(a.times)-1] - a.times[0]
}

// Step returns the mean sample spacing.
func (a Axis) Step() float64 {
	if len(a.times) < 2 {
		return 0
	}
	return a.Span() / float64(len(a.times)-1)
}

// Uniform reports whether every sample spacing matches Step to within a
// relative 1e-9.
func (a Axis) Uniform() bool {
	step := a.Step()
	for i := 1; i < len(a.times); i++ {
		if !NearlyEqual(a.times[i]-a.times[i-1], step, 1e-9) {
			return false
		}
	}
	return true
}

// CheckLen reports ErrLengthMismatch when a waveform of length n cannot be
// paired with the axis.
func (a Axis) CheckLen(n int) error {
	if n != len(a.times) {
		return fmt.Errorf("%w: waveform %d, axis %d", ErrLengthMismatch, n, len(a.times))
	}
	return nil
}

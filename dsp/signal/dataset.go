package signal

import (
	"fmt"

	"github.com/cwbudde/algo-pulse/dsp/core"
)

// Dataset is an ordered collection of labeled waveforms sharing one axis.
type Dataset struct {
	Axis      core.Axis
	Waveforms [][]float64
	Labels    []Label
}

// Len returns the number of waveforms.
func (d Dataset) Len() int {
	return len(d.Waveforms)
}

// Dataset builds the canonical training set: for each of n iterations one
// signal waveform (label 1) followed by one background waveform (label 0),
// both with Physics.Noise. The result holds 2*n waveforms.
func (g *Generator) Dataset(n int) (Dataset, error) {
	if n <= 0 {
		return Dataset{}, fmt.Errorf("%w: %d", ErrInvalidSampleCount, n)
	}
	axis, err := g.Axis()
	if err != nil {
		return Dataset{}, err
	}

	ds := Dataset{
		Axis:      axis,
		Waveforms: make([][]float64, 0, 2*n),
		Labels:    make([]Label, 0, 2*n),
	}
	for i := 0; i < n; i++ {
		sig, err := g.SignalPulse(axis, g.physics.Noise)
		if err != nil {
			return Dataset{}, fmt.Errorf("signal: dataset pair %d: %w", i, err)
		}
		ds.Waveforms = append(ds.Waveforms, sig)
		ds.Labels = append(ds.Labels, LabelSignal)

		bg, err := g.BackgroundPulse(axis, g.physics.Noise)
		if err != nil {
			return Dataset{}, fmt.Errorf("signal: dataset pair %d: %w", i, err)
		}
		ds.Waveforms = append(ds.Waveforms, bg)
		ds.Labels = append(ds.Labels, LabelBackground)
	}
	return ds, nil
}

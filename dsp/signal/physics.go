package signal

import (
	"errors"
	"fmt"
)

// ErrInvalidPhysics is returned by Physics.Validate.
var ErrInvalidPhysics = errors.New("signal: invalid physics configuration")

// Shape holds the amplitude and shape constant of one event population.
type Shape struct {
	Amplitude float64 `yaml:"amplitude"`
	RiseTime  float64 `yaml:"rise_time"`
}

// PileupShape describes the two overlapping background events of a pile-up
// waveform. The second event starts Delay after the first.
type PileupShape struct {
	First  Shape   `yaml:"first"`
	Second Shape   `yaml:"second"`
	Delay  float64 `yaml:"delay"`
}

// Physics collects the physical constants used by the synthesizer.
type Physics struct {
	Samples    int         `yaml:"samples"`     // time-axis length
	Span       float64     `yaml:"span"`        // time-axis extent starting at 0
	Onset      float64     `yaml:"onset"`       // t0 of every canonical event
	Signal     Shape       `yaml:"signal"`      // nuclear recoil: fast rise
	Background Shape       `yaml:"background"`  // electronic recoil: slow rise
	Noise      float64     `yaml:"noise"`       // dataset noise std-dev
	BlindNoise float64     `yaml:"blind_noise"` // blind-test noise std-dev
	Pileup     PileupShape `yaml:"pileup"`
}

// DefaultPhysics returns the reference detector configuration.
func DefaultPhysics() Physics {
	return Physics{
		Samples:    500,
		Span:       100,
		Onset:      20,
		Signal:     Shape{Amplitude: 1.0, RiseTime: 2.0},
		Background: Shape{Amplitude: 0.8, RiseTime: 8.0},
		Noise:      0.40,
		BlindNoise: 0.25,
		Pileup: PileupShape{
			First:  Shape{Amplitude: 0.6, RiseTime: 8.0},
			Second: Shape{Amplitude: 0.5, RiseTime: 7.0},
			Delay:  15,
		},
	}
}

// Validate checks that every shape constant is usable by the template.
func (p Physics) Validate() error {
	if p.Samples < 2 {
		return fmt.Errorf("%w: samples must be >= 2: %d", ErrInvalidPhysics, p.Samples)
	}
	if p.Span <= 0 {
		return fmt.Errorf("%w: span must be > 0: %f", ErrInvalidPhysics, p.Span)
	}
	if p.Noise < 0 || p.BlindNoise < 0 {
		return fmt.Errorf("%w: noise levels must be >= 0: %f, %f", ErrInvalidPhysics, p.Noise, p.BlindNoise)
	}
	shapes := []struct {
		name  string
		shape Shape
	}{
		{"signal", p.Signal},
		{"background", p.Background},
		{"pileup.first", p.Pileup.First},
		{"pileup.second", p.Pileup.Second},
	}
	for _, s := range shapes {
		if s.shape.RiseTime == 0 {
			return fmt.Errorf("%w: %s rise_time must be non-zero", ErrInvalidPhysics, s.name)
		}
	}
	return nil
}

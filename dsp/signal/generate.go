package signal

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-pulse/dsp/core"
	"github.com/cwbudde/algo-pulse/dsp/pulse"
)

// Errors returned by the generator.
var (
	ErrNegativeNoise      = errors.New("signal: noise level must be >= 0")
	ErrInvalidSampleCount = errors.New("signal: sample count must be > 0")
)

// Label is the ground-truth tag of a synthesized waveform.
type Label int

const (
	LabelBackground Label = 0
	LabelSignal     Label = 1
)

// String implements fmt.Stringer.
func (l Label) String() string {
	switch l {
	case LabelSignal:
		return "signal"
	case LabelBackground:
		return "background"
	default:
		return fmt.Sprintf("Label(%d)", int(l))
	}
}

// pcgStream is the fixed PCG sequence selector; only the seed varies.
const pcgStream = 0x5eed_9a1e_b0a7_c0de

// Generator synthesizes detector waveforms from one explicitly seeded random
// stream. A Generator is not safe for concurrent use.
type Generator struct {
	physics Physics
	seed    uint64
	rng     *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithPhysics replaces the default physical constants.
func WithPhysics(p Physics) Option {
	return func(g *Generator) {
		g.physics = p
	}
}

// NewGenerator creates a configured generator with seed 1 and
// DefaultPhysics unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		physics: DefaultPhysics(),
		seed:    1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	g.rng = rand.New(rand.NewPCG(g.seed, pcgStream))
	return g
}

// Physics returns the generator's physical constants.
func (g *Generator) Physics() Physics {
	return g.physics
}

// Seed returns the seed the random stream was started from.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// SetSeed restarts the random stream from seed.
func (g *Generator) SetSeed(seed uint64) {
	g.seed = seed
	g.rng = rand.New(rand.NewPCG(seed, pcgStream))
}

// Axis returns the canonical time axis: Physics.Samples points over
// [0, Physics.Span].
func (g *Generator) Axis() (core.Axis, error) {
	return core.Linspace(0, g.physics.Span, g.physics.Samples)
}

// Pulse evaluates the analytic template at every sample after t0 and adds
// i.i.d. Gaussian noise with standard deviation noiseLevel at every sample,
// including the pre-onset region. A zero riseTime fails with
// pulse.ErrZeroRiseTime; no other shape validation is done.
func (g *Generator) Pulse(axis core.Axis, t0, amplitude, riseTime, noiseLevel float64) ([]float64, error) {
	if noiseLevel < 0 {
		return nil, fmt.Errorf("%w: %f", ErrNegativeNoise, noiseLevel)
	}
	out, err := pulse.Evaluate(axis, pulse.Params{Onset: t0, Amplitude: amplitude, RiseTime: riseTime})
	if err != nil {
		return nil, err
	}
	g.addNoise(out, noiseLevel)
	return out, nil
}

// Pileup superposes two noiseless background-like pulses, the second one
// Physics.Pileup.Delay after t0, and adds one shared noise draw. The result
// carries background ground truth.
func (g *Generator) Pileup(axis core.Axis, t0, noiseLevel float64) ([]float64, error) {
	if noiseLevel < 0 {
		return nil, fmt.Errorf("%w: %f", ErrNegativeNoise, noiseLevel)
	}
	pu := g.physics.Pileup
	first, err := g.Pulse(axis, t0, pu.First.Amplitude, pu.First.RiseTime, 0)
	if err != nil {
		return nil, fmt.Errorf("signal: pileup first event: %w", err)
	}
	second, err := g.Pulse(axis, t0+pu.Delay, pu.Second.Amplitude, pu.Second.RiseTime, 0)
	if err != nil {
		return nil, fmt.Errorf("signal: pileup second event: %w", err)
	}
	floats.Add(first, second)
	g.addNoise(first, noiseLevel)
	return first, nil
}

// SignalPulse synthesizes one canonical signal waveform with the given noise.
func (g *Generator) SignalPulse(axis core.Axis, noiseLevel float64) ([]float64, error) {
	s := g.physics.Signal
	return g.Pulse(axis, g.physics.Onset, s.Amplitude, s.RiseTime, noiseLevel)
}

// BackgroundPulse synthesizes one canonical background waveform with the
// given noise.
func (g *Generator) BackgroundPulse(axis core.Axis, noiseLevel float64) ([]float64, error) {
	b := g.physics.Background
	return g.Pulse(axis, g.physics.Onset, b.Amplitude, b.RiseTime, noiseLevel)
}

// addNoise draws one normal variate per sample even when sigma is zero, so
// the random stream advances identically regardless of the noise level.
func (g *Generator) addNoise(dst []float64, sigma float64) {
	for i := range dst {
		dst[i] += g.rng.NormFloat64() * sigma
	}
}

package signal

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-pulse/dsp/core"
	"github.com/cwbudde/algo-pulse/dsp/pulse"
)

func defaultAxis(t *testing.T) core.Axis {
	t.Helper()
	axis, err := core.Linspace(0, 100, 500)
	if err != nil {
		t.Fatalf("Linspace error: %v", err)
	}
	return axis
}

func TestPulseNoiselessMatchesTemplate(t *testing.T) {
	axis := defaultAxis(t)
	g := NewGenerator(WithSeed(3))

	w, err := g.Pulse(axis, 20, 1.0, 2.0, 0)
	if err != nil {
		t.Fatalf("Pulse() error = %v", err)
	}
	if len(w) != axis.Len() {
		t.Fatalf("len = %d, want %d", len(w), axis.Len())
	}
	p := pulse.Params{Onset: 20, Amplitude: 1.0, RiseTime: 2.0}
	for i, v := range w {
		if want := p.At(axis.At(i)); v != want {
			t.Fatalf("w[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestPulseZeroRiseTimeFails(t *testing.T) {
	g := NewGenerator()
	_, err := g.Pulse(defaultAxis(t), 20, 1.0, 0, 0.1)
	if !errors.Is(err, pulse.ErrZeroRiseTime) {
		t.Fatalf("err = %v, want pulse.ErrZeroRiseTime", err)
	}
}

func TestPulseNegativeNoiseFails(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Pulse(defaultAxis(t), 20, 1, 2, -0.1); !errors.Is(err, ErrNegativeNoise) {
		t.Fatalf("err = %v, want ErrNegativeNoise", err)
	}
	if _, err := g.Pileup(defaultAxis(t), 20, -0.1); !errors.Is(err, ErrNegativeNoise) {
		t.Fatalf("err = %v, want ErrNegativeNoise", err)
	}
}

func TestPulseNoiseStatistics(t *testing.T) {
	axis := defaultAxis(t)
	g := NewGenerator(WithSeed(11))

	// Onset past the window end: the waveform is pure noise.
	w, err := g.Pulse(axis, 1000, 1.0, 2.0, 0.4)
	if err != nil {
		t.Fatalf("Pulse() error = %v", err)
	}
	mean, std := stat.MeanStdDev(w, nil)
	if math.Abs(mean) > 0.08 {
		t.Fatalf("noise mean = %v, want ~0", mean)
	}
	if math.Abs(std-0.4) > 0.05 {
		t.Fatalf("noise std = %v, want ~0.4", std)
	}
}

func TestPulseNoiseCoversPreOnset(t *testing.T) {
	axis := defaultAxis(t)
	g := NewGenerator(WithSeed(5))
	w, err := g.Pulse(axis, 20, 1.0, 2.0, 0.1)
	if err != nil {
		t.Fatalf("Pulse() error = %v", err)
	}
	nonZero := 0
	for i := 0; axis.At(i) <= 20; i++ {
		if w[i] != 0 {
			nonZero++
		}
	}
	if nonZero == 0 {
		t.Fatal("pre-onset region carries no noise")
	}
}

func TestSeedReproducible(t *testing.T) {
	axis := defaultAxis(t)
	a, err := NewGenerator(WithSeed(42)).Pulse(axis, 20, 1, 2, 0.25)
	if err != nil {
		t.Fatalf("Pulse() error = %v", err)
	}
	b, err := NewGenerator(WithSeed(42)).Pulse(axis, 20, 1, 2, 0.25)
	if err != nil {
		t.Fatalf("Pulse() error = %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("mismatch at %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestSetSeed(t *testing.T) {
	axis := defaultAxis(t)
	g := NewGenerator()
	g.SetSeed(99)
	if g.Seed() != 99 {
		t.Fatalf("Seed()=%d, want 99", g.Seed())
	}
	a, _ := g.Pulse(axis, 20, 1, 2, 0.3)
	g.SetSeed(99)
	b, _ := g.Pulse(axis, 20, 1, 2, 0.3)
	g.SetSeed(100)
	c, _ := g.Pulse(axis, 20, 1, 2, 0.3)

	sameAB, sameAC := true, true
	for i := range a {
		if a[i] != b[i] {
			sameAB = false
		}
		if a[i] != c[i] {
			sameAC = false
		}
	}
	if !sameAB {
		t.Fatal("re-seeding with the same seed did not restart the stream")
	}
	if sameAC {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestPileupNoiselessIsSumOfEvents(t *testing.T) {
	axis := defaultAxis(t)
	g := NewGenerator()
	w, err := g.Pileup(axis, 20, 0)
	if err != nil {
		t.Fatalf("Pileup() error = %v", err)
	}
	first := pulse.Params{Onset: 20, Amplitude: 0.6, RiseTime: 8}
	second := pulse.Params{Onset: 35, Amplitude: 0.5, RiseTime: 7}
	for i, v := range w {
		want := first.At(axis.At(i)) + second.At(axis.At(i))
		if math.Abs(v-want) > 1e-15 {
			t.Fatalf("w[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestPileupUsesConfiguredShape(t *testing.T) {
	axis := defaultAxis(t)
	phys := DefaultPhysics()
	phys.Pileup.Second.RiseTime = 0
	if _, err := NewGenerator(WithPhysics(phys)).Pileup(axis, 20, 0); !errors.Is(err, pulse.ErrZeroRiseTime) {
		t.Fatalf("err = %v, want pulse.ErrZeroRiseTime", err)
	}
}

func TestLabelString(t *testing.T) {
	if LabelSignal.String() != "signal" || LabelBackground.String() != "background" {
		t.Fatalf("unexpected label names %q %q", LabelSignal, LabelBackground)
	}
	if Label(7).String() != "Label(7)" {
		t.Fatalf("unexpected fallback %q", Label(7))
	}
}

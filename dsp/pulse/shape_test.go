package pulse

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-pulse/dsp/core"
)

func TestAtZeroBeforeOnset(t *testing.T) {
	p := Params{Onset: 20, Amplitude: 1, RiseTime: 2}
	for _, tt := range []float64{-5, 0, 19.99, 20} {
		if got := p.At(tt); got != 0 {
			t.Fatalf("At(%v) = %v, want 0", tt, got)
		}
	}
}

func TestPeakAtOnsetPlusTau(t *testing.T) {
	p := Params{Onset: 20, Amplitude: 0.8, RiseTime: 8}
	if got := p.At(p.PeakTime()); math.Abs(got-p.Peak()) > 1e-15 {
		t.Fatalf("At(t0+tau) = %v, want %v", got, p.Peak())
	}
	if math.Abs(p.Peak()-0.8/math.E) > 1e-15 {
		t.Fatalf("Peak() = %v, want A/e", p.Peak())
	}
	for _, dt := range []float64{-1, -0.1, 0.1, 1} {
		if p.At(p.PeakTime()+dt) >= p.Peak() {
			t.Fatalf("At(t0+tau%+v) not below the maximum", dt)
		}
	}
}

func TestFillZeroRiseTime(t *testing.T) {
	axis, _ := core.Linspace(0, 100, 500)
	_, err := Evaluate(axis, Params{Onset: 20, Amplitude: 1, RiseTime: 0})
	if !errors.Is(err, ErrZeroRiseTime) {
		t.Fatalf("err = %v, want ErrZeroRiseTime", err)
	}
}

func TestFillReusesBuffer(t *testing.T) {
	axis, _ := core.Linspace(0, 10, 11)
	buf := make([]float64, 0, 32)
	out, err := Fill(buf, axis, Params{Onset: 2, Amplitude: 1, RiseTime: 1})
	if err != nil {
		t.Fatalf("Fill error: %v", err)
	}
	if len(out) != 11 || cap(out) != 32 {
		t.Fatalf("len/cap = %d/%d, want 11/32", len(out), cap(out))
	}
	if out[2] != 0 || out[3] != math.Exp(-1) {
		t.Fatalf("out[2..3] = %v, want [0 1/e]", out[2:4])
	}
}

func TestAreaEqualsAmplitudeTimesTau(t *testing.T) {
	// The continuous integral of the template is A*tau.
	axis, _ := core.Linspace(0, 400, 40001)
	p := Params{Onset: 10, Amplitude: 0.7, RiseTime: 5}
	w, err := Evaluate(axis, p)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	var area float64
	for i := 1; i < len(w); i++ {
		area += 0.5 * (w[i] + w[i-1]) * (axis.At(i) - axis.At(i-1))
	}
	if math.Abs(area-3.5) > 1e-3 {
		t.Fatalf("area = %v, want 3.5", area)
	}
}

func TestRiseFraction(t *testing.T) {
	got := RiseFraction(0.1, 0.9)
	// u*e^(1-u) = 0.1 at u≈0.03822, = 0.9 at u≈0.60834.
	if math.Abs(got-0.57012) > 1e-4 {
		t.Fatalf("RiseFraction(0.1, 0.9) = %v, want ~0.57012", got)
	}
	// The template is flat at its maximum, so the root is only resolved to
	// about sqrt(eps).
	if r := risingRoot(1); math.Abs(r-1) > 1e-7 {
		t.Fatalf("risingRoot(1) = %v, want 1", r)
	}
}

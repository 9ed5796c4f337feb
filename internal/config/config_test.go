package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-pulse/dsp/signal"
	"github.com/cwbudde/algo-pulse/measure/psa"
)

func TestParseOverridesDefaults(t *testing.T) {
	doc := []byte(`
physics:
  samples: 256
  noise: 0.1
  signal:
    amplitude: 2
    rise_time: 3
extract:
  baseline_samples: 10
  prefilter_cutoff: 0.2
  prefilter_rolloff: 0.1
`)
	run, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	def := signal.DefaultPhysics()
	if run.Physics.Samples != 256 || run.Physics.Noise != 0.1 {
		t.Fatalf("physics overrides not applied: %+v", run.Physics)
	}
	if run.Physics.Signal != (signal.Shape{Amplitude: 2, RiseTime: 3}) {
		t.Fatalf("signal shape = %+v", run.Physics.Signal)
	}
	if run.Physics.Background != def.Background || run.Physics.Span != def.Span {
		t.Fatalf("untouched keys lost their defaults: %+v", run.Physics)
	}

	cfg := psa.ApplyOptions(run.ExtractOptions()...)
	if cfg.BaselineSamples != 10 {
		t.Fatalf("BaselineSamples = %d, want 10", cfg.BaselineSamples)
	}
	if cfg.PrefilterCutoff != 0.2 || cfg.PrefilterRolloff != 0.1 {
		t.Fatalf("prefilter = %v/%v", cfg.PrefilterCutoff, cfg.PrefilterRolloff)
	}
	if cfg.Workers != psa.DefaultConfig().Workers {
		t.Fatalf("Workers = %d, want default", cfg.Workers)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown key", doc: "physics:\n  samplez: 10\n"},
		{name: "zero rise", doc: "physics:\n  background:\n    rise_time: 0\n"},
		{name: "short axis", doc: "physics:\n  samples: 1\n"},
		{name: "negative noise", doc: "physics:\n  blind_noise: -1\n"},
		{name: "baseline too long", doc: "physics:\n  samples: 10\nextract:\n  baseline_samples: 20\n"},
		{name: "negative workers", doc: "extract:\n  workers: -2\n"},
		{name: "negative cutoff", doc: "extract:\n  prefilter_cutoff: -0.1\n"},
		{name: "not yaml", doc: "physics: [1, 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Parse error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadRoundTrip(t *testing.T) {
	run := Default()
	run.Physics.Onset = 25
	run.Extract.Workers = 3

	data, err := run.Marshal()
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != run {
		t.Fatalf("Load = %+v, want %+v", got, run)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load error = %v, want ErrNotExist", err)
	}
}

func TestParseShortAxisShrinksDefaultBaseline(t *testing.T) {
	run, err := Parse([]byte("physics:\n  samples: 10\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if run.Extract.BaselineSamples != 10 {
		t.Fatalf("BaselineSamples = %d, want 10", run.Extract.BaselineSamples)
	}

	run, err = Parse([]byte("physics:\n  samples: 10\nextract:\n  baseline_samples: 4\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if run.Extract.BaselineSamples != 4 {
		t.Fatalf("BaselineSamples = %d, want 4", run.Extract.BaselineSamples)
	}
}

// Package config loads optional YAML run files for the commands.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/algo-pulse/dsp/signal"
	"github.com/cwbudde/algo-pulse/measure/psa"
	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig wraps every validation failure of a run file.
var ErrInvalidConfig = errors.New("config: invalid run configuration")

// Extract is the `extract:` section of a run file.
type Extract struct {
	BaselineSamples  int     `yaml:"baseline_samples,omitempty"`
	Workers          int     `yaml:"workers,omitempty"`
	PrefilterCutoff  float64 `yaml:"prefilter_cutoff,omitempty"`
	PrefilterRolloff float64 `yaml:"prefilter_rolloff,omitempty"`
}

// Run is a complete run file.
type Run struct {
	Physics signal.Physics `yaml:"physics"`
	Extract Extract        `yaml:"extract,omitempty"`
}

// Default returns the run configuration used when no file is given.
func Default() Run {
	cfg := psa.DefaultConfig()
	return Run{
		Physics: signal.DefaultPhysics(),
		Extract: Extract{
			BaselineSamples: cfg.BaselineSamples,
			Workers:         cfg.Workers,
		},
	}
}

// Load reads and validates a YAML run file. Keys missing from the file keep
// their default values.
func Load(filename string) (Run, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Run{}, err
	}
	return Parse(data)
}

// Parse decodes a YAML document over the defaults. Unknown keys are
// rejected. A baseline window the file leaves unset is shortened to fit the
// configured axis.
func Parse(data []byte) (Run, error) {
	run := Default()
	defBaseline := run.Extract.BaselineSamples
	run.Extract.BaselineSamples = 0
	if err := yaml.UnmarshalStrict(data, &run); err != nil {
		return Run{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if run.Extract.BaselineSamples == 0 {
		run.Extract.BaselineSamples = max(min(defBaseline, run.Physics.Samples), 1)
	}
	if err := run.Validate(); err != nil {
		return Run{}, err
	}
	return run, nil
}

// Validate checks both sections.
func (r Run) Validate() error {
	if err := r.Physics.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if r.Extract.BaselineSamples < 1 {
		return fmt.Errorf("%w: baseline_samples must be >= 1: %d", ErrInvalidConfig, r.Extract.BaselineSamples)
	}
	if r.Extract.BaselineSamples > r.Physics.Samples {
		return fmt.Errorf("%w: baseline_samples %d exceeds samples %d",
			ErrInvalidConfig, r.Extract.BaselineSamples, r.Physics.Samples)
	}
	if r.Extract.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0: %d", ErrInvalidConfig, r.Extract.Workers)
	}
	if r.Extract.PrefilterCutoff < 0 || r.Extract.PrefilterRolloff < 0 {
		return fmt.Errorf("%w: prefilter settings must be >= 0", ErrInvalidConfig)
	}
	return nil
}

// ExtractOptions converts the extract section into extractor options.
func (r Run) ExtractOptions() []psa.Option {
	return []psa.Option{
		psa.WithBaselineSamples(r.Extract.BaselineSamples),
		psa.WithWorkers(r.Extract.Workers),
		psa.WithPrefilter(r.Extract.PrefilterCutoff, r.Extract.PrefilterRolloff),
	}
}

// Marshal encodes the run as YAML.
func (r Run) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}

package table

import (
	"io"

	"github.com/cwbudde/algo-pulse/dsp/signal"
	"github.com/cwbudde/algo-pulse/measure/psa"
	"gopkg.in/yaml.v2"
)

// Counts tallies the rows of a table.
type Counts struct {
	Rows       int `yaml:"rows"`
	Signal     int `yaml:"signal"`
	Background int `yaml:"background"`
	Pileup     int `yaml:"pileup,omitempty"`
	Degenerate int `yaml:"degenerate"`
	Unfittable int `yaml:"unfittable"`
}

// Manifest records everything needed to reproduce a written table.
type Manifest struct {
	RunID   string         `yaml:"run_id"`
	Created string         `yaml:"created"` // RFC 3339, UTC
	Mode    string         `yaml:"mode"`
	Seed    uint64         `yaml:"seed"`
	Physics signal.Physics `yaml:"physics"`
	Extract ExtractInfo    `yaml:"extract"`
	Counts  Counts         `yaml:"counts"`
}

// ExtractInfo mirrors the extractor settings that influence the features.
type ExtractInfo struct {
	BaselineSamples  int     `yaml:"baseline_samples"`
	PrefilterCutoff  float64 `yaml:"prefilter_cutoff,omitempty"`
	PrefilterRolloff float64 `yaml:"prefilter_rolloff,omitempty"`
}

// NewExtractInfo copies the relevant fields of an extractor config.
func NewExtractInfo(cfg psa.Config) ExtractInfo {
	return ExtractInfo{
		BaselineSamples:  cfg.BaselineSamples,
		PrefilterCutoff:  cfg.PrefilterCutoff,
		PrefilterRolloff: cfg.PrefilterRolloff,
	}
}

// Count tallies t.
func Count(t Table) Counts {
	c := Counts{Rows: t.Len()}
	for i, row := range t.Rows {
		if i < len(t.Labels) {
			switch t.Labels[i] {
			case signal.LabelSignal:
				c.Signal++
			case signal.LabelBackground:
				c.Background++
			}
		}
		if i < len(t.Kinds) && t.Kinds[i] == signal.EventPileup {
			c.Pileup++
		}
		if row.IsDegenerate() {
			c.Degenerate++
		}
		if row.Unfittable() {
			c.Unfittable++
		}
	}
	return c
}

// WriteManifest encodes m as YAML.
func WriteManifest(w io.Writer, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadManifest decodes a manifest written by WriteManifest.
func ReadManifest(r io.Reader) (Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

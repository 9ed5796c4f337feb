// Package pipeline wires synthesis, extraction and summaries together for
// the commands.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/cwbudde/algo-pulse/dsp/signal"
	"github.com/cwbudde/algo-pulse/internal/table"
	"github.com/cwbudde/algo-pulse/measure/psa"
	"github.com/cwbudde/algo-pulse/stats/feature"
	"go.uber.org/zap"
)

const (
	ModeDataset = "dataset"
	ModeBlind   = "blind"
)

// BuildDataset synthesizes n signal/background pairs and extracts their
// features. The returned table holds 2*n rows in generation order.
func BuildDataset(ctx context.Context, gen *signal.Generator, ext *psa.Extractor, n int, log *zap.SugaredLogger) (table.Table, error) {
	if err := ctx.Err(); err != nil {
		return table.Table{}, err
	}

	start := time.Now()
	ds, err := gen.Dataset(n)
	if err != nil {
		return table.Table{}, fmt.Errorf("pipeline: synthesize dataset: %w", err)
	}
	log.Debugw("dataset synthesized", "waveforms", ds.Len(), "samples", ds.Axis.Len(), "elapsed", time.Since(start))

	if err := ctx.Err(); err != nil {
		return table.Table{}, err
	}

	start = time.Now()
	rows, err := ext.ExtractBatch(ds.Axis, ds.Waveforms)
	if err != nil {
		return table.Table{}, fmt.Errorf("pipeline: extract dataset: %w", err)
	}
	log.Debugw("features extracted", "rows", len(rows), "elapsed", time.Since(start))

	return table.Table{Rows: rows, Labels: ds.Labels}, nil
}

// BlindRun synthesizes a mixed population of n events, extracts their
// features and keeps the truth labels and event kinds alongside.
func BlindRun(ctx context.Context, gen *signal.Generator, ext *psa.Extractor, n int, log *zap.SugaredLogger) (table.Table, error) {
	if err := ctx.Err(); err != nil {
		return table.Table{}, err
	}

	axis, err := gen.Axis()
	if err != nil {
		return table.Table{}, fmt.Errorf("pipeline: blind axis: %w", err)
	}
	events, err := gen.Population(axis, n)
	if err != nil {
		return table.Table{}, fmt.Errorf("pipeline: synthesize population: %w", err)
	}

	waveforms := make([][]float64, len(events))
	t := table.Table{
		Labels: make([]signal.Label, len(events)),
		Kinds:  make([]signal.EventKind, len(events)),
	}
	for i, ev := range events {
		waveforms[i] = ev.Waveform
		t.Labels[i] = ev.Label()
		t.Kinds[i] = ev.Kind
	}
	log.Debugw("population synthesized", "events", len(events), "noise", gen.Physics().BlindNoise)

	if err := ctx.Err(); err != nil {
		return table.Table{}, err
	}

	t.Rows, err = ext.ExtractBatch(axis, waveforms)
	if err != nil {
		return table.Table{}, fmt.Errorf("pipeline: extract population: %w", err)
	}
	return t, nil
}

// NewManifest describes a finished run.
func NewManifest(runID, mode string, gen *signal.Generator, ext *psa.Extractor, t table.Table) table.Manifest {
	return table.Manifest{
		RunID:   runID,
		Created: time.Now().UTC().Format(time.RFC3339),
		Mode:    mode,
		Seed:    gen.Seed(),
		Physics: gen.Physics(),
		Extract: table.NewExtractInfo(ext.Config()),
		Counts:  table.Count(t),
	}
}

// LogSummary logs the per-label means of rise time and FWHM, the two
// features that separate the populations most clearly.
func LogSummary(log *zap.SugaredLogger, t table.Table) error {
	byLabel, err := feature.ByLabel(t.Rows, t.Labels)
	if err != nil {
		return err
	}
	for _, label := range []signal.Label{signal.LabelSignal, signal.LabelBackground} {
		s, ok := byLabel[label]
		if !ok {
			continue
		}
		log.Infow("feature means",
			"label", label.String(),
			"rows", s.Rows,
			"degenerate", s.Degenerate,
			"rise_time", s.Columns[feature.ColRiseTime].Mean,
			"fwhm", s.Columns[feature.ColFWHM].Mean,
		)
	}
	return nil
}

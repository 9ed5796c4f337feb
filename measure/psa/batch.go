package psa

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-pulse/dsp/core"
)

// ExtractBatch extracts every waveform independently and returns the
// results in input order. Work is split into contiguous chunks, one per
// worker. On structural errors the error of the lowest failing index is
// returned.
func (e *Extractor) ExtractBatch(axis core.Axis, waveforms [][]float64) ([]Features, error) {
	out := make([]Features, len(waveforms))
	if len(waveforms) == 0 {
		return out, nil
	}

	workers := min(max(e.cfg.Workers, 1), len(waveforms))
	chunk := (len(waveforms) + workers - 1) / workers
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, len(waveforms))
		if start >= end {
			break
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				f, err := e.Extract(axis, waveforms[i])
				if err != nil {
					errs[w] = fmt.Errorf("psa: waveform %d: %w", i, err)
					return
				}
				out[i] = f
			}
		}(w, start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ExtractBatch is a one-shot batch extraction with the default
// configuration.
func ExtractBatch(axis core.Axis, waveforms [][]float64) ([]Features, error) {
	return NewExtractor().ExtractBatch(axis, waveforms)
}

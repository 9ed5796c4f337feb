package psa

import (
	"testing"

	"github.com/cwbudde/algo-pulse/dsp/signal"
	"github.com/cwbudde/algo-pulse/internal/testutil"
)

func BenchmarkExtract(b *testing.B) {
	axis := testutil.DefaultAxis(b)
	w, _ := signal.NewGenerator().Pulse(axis, 20, 1, 2, 0.25)
	ext := NewExtractor()

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = ext.Extract(axis, w)
	}
}

func BenchmarkExtractBatch(b *testing.B) {
	ds, _ := signal.NewGenerator().Dataset(500)
	ext := NewExtractor()

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = ext.ExtractBatch(ds.Axis, ds.Waveforms)
	}
}

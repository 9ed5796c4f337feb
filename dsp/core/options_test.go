package core

import "testing"

func TestApplyAxisOptions(t *testing.T) {
	cfg := ApplyAxisOptions(WithSamples(1000), WithSpan(50), WithStart(-5))
	if cfg.Samples != 1000 {
		t.Fatalf("samples = %d, want 1000", cfg.Samples)
	}
	if cfg.Span != 50 {
		t.Fatalf("span = %v, want 50", cfg.Span)
	}
	if cfg.Start != -5 {
		t.Fatalf("start = %v, want -5", cfg.Start)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyAxisOptions(WithSamples(1), WithSpan(0), nil)
	def := DefaultAxisConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

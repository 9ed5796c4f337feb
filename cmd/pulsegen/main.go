// Command pulsegen synthesizes labelled detector waveforms, extracts their
// pulse-shape features and writes them as a delimited table.
//
// Usage:
//
//	pulsegen [flags]
//
// Examples:
//
//	pulsegen -n 1000 -seed 42 -out features.csv -manifest run.yaml
//	pulsegen -blind -n 300 -out blind.csv
//	pulsegen -config run.yaml -workers 4 -debug
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	ossignal "os/signal"

	"github.com/cwbudde/algo-pulse/dsp/signal"
	"github.com/cwbudde/algo-pulse/internal/config"
	"github.com/cwbudde/algo-pulse/internal/log"
	"github.com/cwbudde/algo-pulse/internal/pipeline"
	"github.com/cwbudde/algo-pulse/internal/table"
	"github.com/cwbudde/algo-pulse/measure/psa"
	"go.uber.org/zap"
)

type options struct {
	n        int
	seed     uint64
	config   string
	out      string
	manifest string
	blind    bool
	workers  int
	debug    bool
	set      map[string]bool
}

func main() {
	var opts options
	flag.IntVar(&opts.n, "n", 1000, "events to synthesize (pairs in dataset mode)")
	flag.Uint64Var(&opts.seed, "seed", 1, "random seed")
	flag.StringVar(&opts.config, "config", "", "YAML run file with physics and extract sections")
	flag.StringVar(&opts.out, "out", "", "output table path (default stdout)")
	flag.StringVar(&opts.manifest, "manifest", "", "write a YAML run manifest to this path")
	flag.BoolVar(&opts.blind, "blind", false, "synthesize a mixed blind-test population")
	flag.IntVar(&opts.workers, "workers", 0, "extraction workers (0 uses the config or one per CPU)")
	flag.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pulsegen [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Synthesizes detector waveforms and writes their pulse-shape features.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	if err := log.Init(opts.debug); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	runID := log.NewRunID()
	logger := log.WithRun(runID)
	if opts.set["workers"] {
		log.Infow("worker count set by flag", "run_id", runID, "workers", opts.workers)
	}

	ctx, stop := ossignal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, runID, os.Stdout, logger); err != nil {
		log.Errorw("run failed", "run_id", runID, "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func loadRun(opts options) (config.Run, error) {
	run := config.Default()
	if opts.config != "" {
		var err error
		if run, err = config.Load(opts.config); err != nil {
			return config.Run{}, err
		}
	}
	if opts.set["workers"] {
		run.Extract.Workers = opts.workers
	}
	return run, run.Validate()
}

func run(ctx context.Context, opts options, runID string, stdout io.Writer, logger *zap.SugaredLogger) error {
	cfg, err := loadRun(opts)
	if err != nil {
		return err
	}

	gen := signal.NewGenerator(signal.WithSeed(opts.seed), signal.WithPhysics(cfg.Physics))
	ext := psa.NewExtractor(cfg.ExtractOptions()...)

	mode := pipeline.ModeDataset
	build := pipeline.BuildDataset
	if opts.blind {
		mode = pipeline.ModeBlind
		build = pipeline.BlindRun
	}
	logger.Infow("starting run", "mode", mode, "n", opts.n, "seed", opts.seed, "workers", ext.Config().Workers)

	tbl, err := build(ctx, gen, ext, opts.n, logger)
	if err != nil {
		return err
	}

	if err := writeTo(opts.out, stdout, func(w io.Writer) error { return table.Write(w, tbl) }); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	if opts.manifest != "" {
		m := pipeline.NewManifest(runID, mode, gen, ext, tbl)
		if err := writeTo(opts.manifest, nil, func(w io.Writer) error { return table.WriteManifest(w, m) }); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
	}

	if err := pipeline.LogSummary(logger, tbl); err != nil {
		return err
	}
	c := table.Count(tbl)
	logger.Infow("run finished", "rows", c.Rows, "degenerate", c.Degenerate, "unfittable", c.Unfittable, "out", opts.out)
	return nil
}

// writeTo writes to path, or to fallback when path is empty.
func writeTo(path string, fallback io.Writer, write func(io.Writer) error) error {
	if path == "" {
		return write(fallback)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

package feature

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-pulse/dsp/signal"
	"github.com/cwbudde/algo-pulse/measure/psa"
)

// Errors returned by the summary helpers.
var (
	ErrLengthMismatch = errors.New("feature: rows and labels differ in length")
	ErrTooFewSamples  = errors.New("feature: need at least 2 samples per population")
	ErrUnknownColumn  = errors.New("feature: unknown column")
)

// Column indices in psa.FeatureNames order.
const (
	ColPeak = iota
	ColRiseTime
	ColArea
	ColFWHM
	ColChiSq
	numColumns
)

// Stat holds the sample mean and standard deviation of one column.
type Stat struct {
	N      int
	Mean   float64
	StdDev float64
}

// Summary describes a set of extracted rows.
type Summary struct {
	Rows       int
	Degenerate int // rows without a usable pulse
	Unfittable int // measured rows whose chi-square is the sentinel
	Columns    [numColumns]Stat
}

// Column returns the statistics of the named feature.
func (s Summary) Column(name string) (Stat, error) {
	idx, err := ColumnIndex(name)
	if err != nil {
		return Stat{}, err
	}
	return s.Columns[idx], nil
}

// ColumnIndex maps a feature name to its index.
func ColumnIndex(name string) (int, error) {
	for i, n := range psa.FeatureNames {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// Values returns column idx over the measured rows. Sentinel chi-square
// values are skipped.
func Values(rows []psa.Features, idx int) []float64 {
	out := make([]float64, 0, len(rows))
	for _, r := range rows {
		if r.Kind != psa.KindMeasured {
			continue
		}
		if idx == ColChiSq && r.Unfittable() {
			continue
		}
		out = append(out, r.Vector()[idx])
	}
	return out
}

// Summarize computes per-column statistics over the measured rows.
// Degenerate rows are only counted; sentinel chi-square values are kept out
// of the chi-square column.
func Summarize(rows []psa.Features) Summary {
	s := Summary{Rows: len(rows)}
	for _, r := range rows {
		switch {
		case r.IsDegenerate():
			s.Degenerate++
		case r.Unfittable():
			s.Unfittable++
		}
	}
	for c := range s.Columns {
		s.Columns[c] = describe(Values(rows, c))
	}
	return s
}

// ByLabel summarizes rows grouped by their ground-truth label.
func ByLabel(rows []psa.Features, labels []signal.Label) (map[signal.Label]Summary, error) {
	if len(rows) != len(labels) {
		return nil, fmt.Errorf("%w: %d rows, %d labels", ErrLengthMismatch, len(rows), len(labels))
	}
	groups := make(map[signal.Label][]psa.Features)
	for i, r := range rows {
		groups[labels[i]] = append(groups[labels[i]], r)
	}
	out := make(map[signal.Label]Summary, len(groups))
	for l, g := range groups {
		out[l] = Summarize(g)
	}
	return out, nil
}

func describe(x []float64) Stat {
	switch len(x) {
	case 0:
		return Stat{Mean: math.NaN(), StdDev: math.NaN()}
	case 1:
		return Stat{N: 1, Mean: x[0]}
	}
	mean, std := stat.MeanStdDev(x, nil)
	return Stat{N: len(x), Mean: mean, StdDev: std}
}

// Welch returns Welch's t statistic (mean(b) - mean(a)) / sqrt(va/na + vb/nb)
// for two independent samples with possibly unequal variances.
func Welch(a, b []float64) (float64, error) {
	if len(a) < 2 || len(b) < 2 {
		return 0, fmt.Errorf("%w: %d and %d", ErrTooFewSamples, len(a), len(b))
	}
	ma, va := stat.MeanVariance(a, nil)
	mb, vb := stat.MeanVariance(b, nil)
	se := math.Sqrt(va/float64(len(a)) + vb/float64(len(b)))
	if se == 0 {
		switch {
		case mb > ma:
			return math.Inf(1), nil
		case mb < ma:
			return math.Inf(-1), nil
		default:
			return 0, nil
		}
	}
	return (mb - ma) / se, nil
}

// Package table writes extracted feature rows as delimited text and run
// manifests as YAML.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-pulse/dsp/signal"
	"github.com/cwbudde/algo-pulse/measure/psa"
)

var (
	// ErrShapeMismatch is returned when labels or kinds do not line up with
	// the rows.
	ErrShapeMismatch = errors.New("table: rows, labels and kinds differ in length")
	// ErrBadRecord is returned by Read for malformed input.
	ErrBadRecord = errors.New("table: malformed record")
)

// Table is a set of labelled feature rows. Kinds is only populated for
// blind-test populations.
type Table struct {
	Rows   []psa.Features
	Labels []signal.Label
	Kinds  []signal.EventKind
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Blind reports whether the table carries event kinds.
func (t Table) Blind() bool {
	return t.Kinds != nil
}

func (t Table) check() error {
	if len(t.Labels) != len(t.Rows) || (t.Kinds != nil && len(t.Kinds) != len(t.Rows)) {
		return fmt.Errorf("%w: %d rows, %d labels, %d kinds",
			ErrShapeMismatch, len(t.Rows), len(t.Labels), len(t.Kinds))
	}
	return nil
}

// Header returns the column names written by Write.
func (t Table) Header() []string {
	header := append([]string{}, psa.FeatureNames[:]...)
	header = append(header, "label")
	if t.Blind() {
		header = append(header, "kind")
	}
	return header
}

// Write emits a header line followed by one record per row. Degenerate rows
// carry zeros for the four shape features and an empty chi_sq cell.
func Write(w io.Writer, t Table) error {
	if err := t.check(); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(t.Header()); err != nil {
		return err
	}

	record := make([]string, 0, len(psa.FeatureNames)+2)
	for i, row := range t.Rows {
		record = record[:0]
		for _, v := range row.Vector() {
			record = append(record, formatFloat(v))
		}
		if row.IsDegenerate() {
			record = append(record, "")
		}
		record = append(record, strconv.Itoa(int(t.Labels[i])))
		if t.Blind() {
			record = append(record, t.Kinds[i].String())
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// Read parses a table produced by Write.
func Read(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("%w: %w", ErrBadRecord, err)
	}
	if len(records) == 0 {
		return Table{}, fmt.Errorf("%w: missing header", ErrBadRecord)
	}

	nf := len(psa.FeatureNames)
	blind := len(records[0]) == nf+2
	if !blind && len(records[0]) != nf+1 {
		return Table{}, fmt.Errorf("%w: header has %d columns", ErrBadRecord, len(records[0]))
	}

	var t Table
	if blind {
		t.Kinds = make([]signal.EventKind, 0, len(records)-1)
	}
	for i, name := range t.Header() {
		if records[0][i] != name {
			return Table{}, fmt.Errorf("%w: header column %d is %q, want %q", ErrBadRecord, i, records[0][i], name)
		}
	}
	for line, rec := range records[1:] {
		row, err := parseRow(rec[:nf])
		if err != nil {
			return Table{}, fmt.Errorf("%w: line %d: %w", ErrBadRecord, line+2, err)
		}
		label, err := strconv.Atoi(rec[nf])
		if err != nil || (label != int(signal.LabelBackground) && label != int(signal.LabelSignal)) {
			return Table{}, fmt.Errorf("%w: line %d: label %q", ErrBadRecord, line+2, rec[nf])
		}
		t.Rows = append(t.Rows, row)
		t.Labels = append(t.Labels, signal.Label(label))
		if blind {
			kind, err := parseKind(rec[nf+1])
			if err != nil {
				return Table{}, fmt.Errorf("%w: line %d: %w", ErrBadRecord, line+2, err)
			}
			t.Kinds = append(t.Kinds, kind)
		}
	}
	return t, nil
}

func parseRow(cells []string) (psa.Features, error) {
	if cells[len(cells)-1] == "" {
		return psa.Degenerate(), nil
	}
	var v [5]float64
	for i, c := range cells {
		f, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return psa.Features{}, err
		}
		v[i] = f
	}
	return psa.Measured(v[0], v[1], v[2], v[3], v[4]), nil
}

func parseKind(s string) (signal.EventKind, error) {
	for _, k := range []signal.EventKind{signal.EventSignal, signal.EventBackground, signal.EventPileup} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

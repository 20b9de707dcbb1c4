package curve

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Defaults of CSVReader.
const (
	DefaultIndexColumn = "DEPT"
	DefaultExt         = ".csv"
	DefaultNull        = -999.25 // LAS null value
)

// CSVReader reads curves from one delimited file per well, <Dir>/<well><Ext>,
// whose header names the index column and one column per signal.
// Zero fields take the Default* values; Comma defaults to ','.
type CSVReader struct {
	Dir         string
	Ext         string
	Comma       rune
	IndexColumn string
	Null        *float64 // value read as missing; nil means DefaultNull
}

var _ Reader = (*CSVReader)(nil)

// ReadCurve implements Reader.
//
// Errors:
//   - ErrNoWell if the file does not exist.
//   - ErrNoSignal if the header lacks signal.
//   - wrapped parse errors for malformed CSV.
func (r *CSVReader) ReadCurve(well, signal string) (Curve, error) {
	ext, idxCol, null := r.Ext, r.IndexColumn, DefaultNull
	if ext == "" {
		ext = DefaultExt
	}
	if idxCol == "" {
		idxCol = DefaultIndexColumn
	}
	if r.Null != nil {
		null = *r.Null
	}

	path := filepath.Join(r.Dir, well+ext)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Curve{}, fmt.Errorf("%s: %w", path, ErrNoWell)
	}
	if err != nil {
		return Curve{}, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	if r.Comma != 0 {
		cr.Comma = r.Comma
	}
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return Curve{}, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) == 0 {
		return Curve{}, fmt.Errorf("%s: %w", path, ErrEmptyCurve)
	}

	zi, si := -1, -1
	for i, h := range records[0] {
		switch strings.TrimSpace(h) {
		case idxCol:
			zi = i
		case signal:
			si = i
		}
	}
	if zi < 0 {
		return Curve{}, fmt.Errorf("%s: index column %q: %w", path, idxCol, ErrNoSignal)
	}
	if si < 0 {
		return Curve{}, fmt.Errorf("%s: %q: %w", path, signal, ErrNoSignal)
	}

	c := Curve{Well: well, Signal: signal}
	for _, rec := range records[1:] {
		if zi >= len(rec) {
			continue
		}
		z, err := strconv.ParseFloat(strings.TrimSpace(rec[zi]), 64)
		if err != nil {
			continue
		}
		v := math.NaN()
		if si < len(rec) {
			if p, err := strconv.ParseFloat(strings.TrimSpace(rec[si]), 64); err == nil && p != null {
				v = p
			}
		}
		c.Index = append(c.Index, z)
		c.Values = append(c.Values, v)
	}

	return c, nil
}

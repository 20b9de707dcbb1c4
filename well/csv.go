package well

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// DefaultComma is the field separator of exported marker tables.
const DefaultComma = ';'

// CSVOptions describes one delimited source table.
type CSVOptions struct {
	Comma      rune   // field separator; 0 means DefaultComma
	NameColumn string // header of the well-name column; "" means the first column
}

// ReadCoords reads the coordinate table: a name column followed by x, y,
// top depth and bottom depth, in that order. Rows whose numbers do not parse
// are kept with NaN fields so the join drops them.
func ReadCoords(r io.Reader, opts CSVOptions) ([]CoordRow, error) {
	header, records, err := readAll(r, opts.Comma)
	if err != nil {
		return nil, err
	}
	nameIdx, err := columnIndex(header, opts.NameColumn, 0)
	if err != nil {
		return nil, err
	}
	var valueIdx []int
	for i := range header {
		if i != nameIdx {
			valueIdx = append(valueIdx, i)
		}
	}
	if len(valueIdx) < 4 {
		return nil, fmt.Errorf("ReadCoords: %d value columns, want 4: %w", len(valueIdx), ErrMissingColumn)
	}

	rows := make([]CoordRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, CoordRow{
			Name:    strings.TrimSpace(field(rec, nameIdx)),
			X:       parseNumber(field(rec, valueIdx[0])),
			Y:       parseNumber(field(rec, valueIdx[1])),
			TopZ:    parseNumber(field(rec, valueIdx[2])),
			BottomZ: parseNumber(field(rec, valueIdx[3])),
		})
	}

	return rows, nil
}

// ReadTimes reads a marker-time table, taking the well name from the column
// opts.NameColumn and the time from valueColumn. Rows with an empty or
// non-numeric time are dropped.
func ReadTimes(r io.Reader, valueColumn string, opts CSVOptions) ([]TimeRow, error) {
	header, records, err := readAll(r, opts.Comma)
	if err != nil {
		return nil, err
	}
	nameIdx, err := columnIndex(header, opts.NameColumn, 0)
	if err != nil {
		return nil, err
	}
	valIdx, err := columnIndex(header, valueColumn, -1)
	if err != nil {
		return nil, err
	}

	rows := make([]TimeRow, 0, len(records))
	for _, rec := range records {
		v := parseNumber(field(rec, valIdx))
		if math.IsNaN(v) {
			continue
		}
		rows = append(rows, TimeRow{Name: strings.TrimSpace(field(rec, nameIdx)), T: v})
	}

	return rows, nil
}

func readAll(r io.Reader, comma rune) ([]string, [][]string, error) {
	if comma == 0 {
		comma = DefaultComma
	}
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmptyInput
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read records: %w", err)
	}

	return header, records, nil
}

// columnIndex finds name in header; an empty name selects fallback when
// fallback >= 0.
func columnIndex(header []string, name string, fallback int) (int, error) {
	if name == "" && fallback >= 0 && fallback < len(header) {
		return fallback, nil
	}
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("column %q: %w", name, ErrMissingColumn)
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}

	return ""
}

// parseNumber parses s as float64, accepting a decimal comma. Blank or
// malformed input yields NaN.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return math.NaN()
	}

	return v
}

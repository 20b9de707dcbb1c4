// SPDX-License-Identifier: MIT

// Package dataset - row-major feature storage & safe accessors.
//
// Purpose:
//   - Keep features in one flat buffer with offset i*cols + j.
//   - Return errors from public indexers instead of panicking.
//   - Allow 0×C datasets so an empty assembly still reports its width.
package dataset

import (
	"encoding/binary"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Dataset is a feature matrix paired with one label per row.
// Invariant: len(data) == rows*cols and len(labels) == rows.
type Dataset struct {
	rows, cols int
	data       []float64
	labels     []float64
}

// New builds a dataset from a flat row-major feature buffer and labels,
// copying both.
//
// Errors:
//   - ErrBadShape if cols < 0 or len(data) != len(labels)*cols.
func New(cols int, data, labels []float64) (*Dataset, error) {
	if cols < 0 || len(data) != len(labels)*cols {
		return nil, fmt.Errorf("New(cols=%d, len(data)=%d, len(labels)=%d): %w", cols, len(data), len(labels), ErrBadShape)
	}
	d := &Dataset{rows: len(labels), cols: cols, data: make([]float64, len(data)), labels: make([]float64, len(labels))}
	copy(d.data, data)
	copy(d.labels, labels)

	return d, nil
}

// Rows returns the number of samples.
func (d *Dataset) Rows() int { return d.rows }

// Cols returns the feature width.
func (d *Dataset) Cols() int { return d.cols }

// At returns feature (i, j).
func (d *Dataset) At(i, j int) (float64, error) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return 0, fmt.Errorf("Dataset.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return d.data[i*d.cols+j], nil
}

// Row returns a copy of the features of sample i.
func (d *Dataset) Row(i int) ([]float64, error) {
	if i < 0 || i >= d.rows {
		return nil, fmt.Errorf("Dataset.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, d.cols)
	copy(out, d.data[i*d.cols:(i+1)*d.cols])

	return out, nil
}

// Features returns every row as its own slice (copies).
func (d *Dataset) Features() [][]float64 {
	out := make([][]float64, d.rows)
	for i := range out {
		out[i] = make([]float64, d.cols)
		copy(out[i], d.data[i*d.cols:(i+1)*d.cols])
	}

	return out
}

// Labels returns a copy of the label vector.
func (d *Dataset) Labels() []float64 {
	out := make([]float64, d.rows)
	copy(out, d.labels)

	return out
}

// DropMissing returns a copy without the samples whose label or any
// feature is NaN, such as windows cut from a trace of an off-grid well.
func (d *Dataset) DropMissing() *Dataset {
	out := &Dataset{cols: d.cols}
	for i := 0; i < d.rows; i++ {
		if math.IsNaN(d.labels[i]) || hasNaN(d.data[i*d.cols:(i+1)*d.cols]) {
			continue
		}
		out.data = append(out.data, d.data[i*d.cols:(i+1)*d.cols]...)
		out.labels = append(out.labels, d.labels[i])
		out.rows++
	}

	return out
}

// Fingerprint hashes the shape and the exact bit patterns of features and
// labels. Equal fingerprints mean, for all practical purposes, bit-identical
// datasets; it is used to compare repeated or parallel assemblies.
func (d *Dataset) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte
	put := func(u uint64) {
		binary.LittleEndian.PutUint64(buf[:], u)
		_, _ = h.Write(buf[:])
	}
	put(uint64(d.rows))
	put(uint64(d.cols))
	for _, v := range d.data {
		put(math.Float64bits(v))
	}
	for _, v := range d.labels {
		put(math.Float64bits(v))
	}

	return h.Sum64()
}

// WriteCSV writes one line per sample: the features followed by the label.
// The header is f0..f{cols-1},label.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	record := make([]string, d.cols+1)
	for j := 0; j < d.cols; j++ {
		record[j] = "f" + strconv.Itoa(j)
	}
	record[d.cols] = "label"
	if err := cw.Write(record); err != nil {
		return fmt.Errorf("WriteCSV: header: %w", err)
	}

	for i := 0; i < d.rows; i++ {
		for j, v := range d.data[i*d.cols : (i+1)*d.cols] {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		record[d.cols] = strconv.FormatFloat(d.labels[i], 'g', -1, 64)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("WriteCSV: row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

func hasNaN(row []float64) bool {
	for _, v := range row {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}

// SPDX-License-Identifier: MIT

package survey

import (
	"fmt"
	"math"
)

// Missing is the sentinel written for samples that have no value, such as
// the trace of a well that lies outside the cube.
var Missing = math.NaN()

// IsMissing reports whether v is the Missing sentinel.
func IsMissing(v float64) bool { return math.IsNaN(v) }

// Cube is an immutable dense seismic volume indexed by (y-grid, x-grid, sample).
//   - ny, nx, nt hold the dimensions.
//   - data is row-major with offset (yi*nx + xi)*nt + k, so every trace is contiguous.
type Cube struct {
	ny, nx, nt int
	data       []float64
}

// NewCube builds a cube from a flat buffer laid out as (y, x, sample).
// The buffer is copied.
//
// Errors:
//   - ErrBadShape if any dimension is non-positive or len(data) != ny*nx*nt.
func NewCube(ny, nx, nt int, data []float64) (*Cube, error) {
	if ny <= 0 || nx <= 0 || nt <= 0 {
		return nil, fmt.Errorf("NewCube(%d,%d,%d): %w", ny, nx, nt, ErrBadShape)
	}
	if len(data) != ny*nx*nt {
		return nil, fmt.Errorf("NewCube(%d,%d,%d): len(data)=%d: %w", ny, nx, nt, len(data), ErrBadShape)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Cube{ny: ny, nx: nx, nt: nt, data: buf}, nil
}

// FromNested builds a cube from v[y][x][k], deep-copying it.
//
// Errors:
//   - ErrBadShape if any level is empty.
//   - ErrRagged if rows or traces differ in length.
func FromNested(v [][][]float64) (*Cube, error) {
	if len(v) == 0 || len(v[0]) == 0 || len(v[0][0]) == 0 {
		return nil, fmt.Errorf("FromNested: %w", ErrBadShape)
	}
	ny, nx, nt := len(v), len(v[0]), len(v[0][0])
	data := make([]float64, 0, ny*nx*nt)
	for y := range v {
		if len(v[y]) != nx {
			return nil, fmt.Errorf("FromNested: row %d has %d columns, want %d: %w", y, len(v[y]), nx, ErrRagged)
		}
		for x := range v[y] {
			if len(v[y][x]) != nt {
				return nil, fmt.Errorf("FromNested: trace (%d,%d) has %d samples, want %d: %w", y, x, len(v[y][x]), nt, ErrRagged)
			}
			data = append(data, v[y][x]...)
		}
	}

	return &Cube{ny: ny, nx: nx, nt: nt, data: data}, nil
}

// Dims returns (ny, nx, nt).
func (c *Cube) Dims() (ny, nx, nt int) { return c.ny, c.nx, c.nt }

// Height is the number of y-grid rows.
func (c *Cube) Height() int { return c.ny }

// Width is the number of x-grid columns.
func (c *Cube) Width() int { return c.nx }

// Samples is the length of the sample axis.
func (c *Cube) Samples() int { return c.nt }

// InBounds reports whether (xi, yi) addresses a trace of the cube.
func (c *Cube) InBounds(xi, yi int) bool {
	return xi >= 0 && xi < c.nx && yi >= 0 && yi < c.ny
}

// At returns the amplitude at (yi, xi, k).
func (c *Cube) At(yi, xi, k int) (float64, error) {
	if !c.InBounds(xi, yi) || k < 0 || k >= c.nt {
		return 0, fmt.Errorf("Cube.At(%d,%d,%d): %w", yi, xi, k, ErrOutOfRange)
	}

	return c.data[(yi*c.nx+xi)*c.nt+k], nil
}

// Trace returns a copy of the sample-axis vector at (yi, xi).
func (c *Cube) Trace(yi, xi int) ([]float64, error) {
	if !c.InBounds(xi, yi) {
		return nil, fmt.Errorf("Cube.Trace(%d,%d): %w", yi, xi, ErrOutOfRange)
	}
	off := (yi*c.nx + xi) * c.nt
	out := make([]float64, c.nt)
	copy(out, c.data[off:off+c.nt])

	return out, nil
}

// Crop returns a new cube restricted to samples [from, to) of every trace,
// mirroring how a time window is cut out of the full survey volume.
func (c *Cube) Crop(from, to int) (*Cube, error) {
	if from < 0 || to > c.nt || from >= to {
		return nil, fmt.Errorf("Cube.Crop(%d,%d): %w", from, to, ErrOutOfRange)
	}
	nt := to - from
	data := make([]float64, 0, c.ny*c.nx*nt)
	for t := 0; t < c.ny*c.nx; t++ {
		data = append(data, c.data[t*c.nt+from:t*c.nt+to]...)
	}

	return &Cube{ny: c.ny, nx: c.nx, nt: nt, data: data}, nil
}

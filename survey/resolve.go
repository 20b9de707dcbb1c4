package survey

import (
	"context"
	"fmt"
	"log/slog"
)

// Position is the resolved grid location of one well.
type Position struct {
	X, Y           float64 // input coordinates, meters
	XIndex, YIndex int     // rounded grid indices
	Valid          bool    // 0 <= XIndex < width && 0 <= YIndex < height
}

// Resolve maps parallel coordinate sequences onto a grid of width×height
// traces. Out-of-range wells are flagged with Valid=false, never rejected.
//
// Implementation:
//   - Stage 1: validate geometry and lengths.
//   - Stage 2: round every coordinate to an index and test bounds.
//   - Stage 3: log each (coordinate, index, valid) triple at debug level.
//
// Errors:
//   - ErrBadGeometry from g.Validate.
//   - ErrLengthMismatch if len(xs) != len(ys).
//
// Complexity: O(n).
func Resolve(g Geometry, xs, ys []float64, width, height int, opts ...Option) ([]Position, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("Resolve(len(xs)=%d, len(ys)=%d): %w", len(xs), len(ys), ErrLengthMismatch)
	}
	o := gatherOptions(opts...)

	out := make([]Position, len(xs))
	for i := range xs {
		xi, yi := g.Index(xs[i], ys[i])
		out[i] = Position{
			X: xs[i], Y: ys[i],
			XIndex: xi, YIndex: yi,
			Valid: xi >= 0 && xi < width && yi >= 0 && yi < height,
		}
	}

	if o.logger.Enabled(context.Background(), slog.LevelDebug) {
		for _, p := range out {
			o.logger.Debug("well resolved",
				slog.Float64("x", p.X), slog.Float64("y", p.Y),
				slog.Int("x_index", p.XIndex), slog.Int("y_index", p.YIndex),
				slog.Bool("in", p.Valid))
		}
	}

	return out, nil
}

// Resolve is Resolve bounded by the cube's own lateral dimensions.
func (c *Cube) Resolve(g Geometry, xs, ys []float64, opts ...Option) ([]Position, error) {
	return Resolve(g, xs, ys, c.nx, c.ny, opts...)
}

// Extract returns one trace per position, in input order. Positions that are
// not Valid, or that fall outside c even though flagged Valid, yield a vector
// of c.Samples() Missing values. Extract never fails and never drops a row.
func Extract(c *Cube, pos []Position) [][]float64 {
	out := make([][]float64, len(pos))
	for i, p := range pos {
		if p.Valid {
			if tr, err := c.Trace(p.YIndex, p.XIndex); err == nil {
				out[i] = tr
				continue
			}
		}
		out[i] = missingTrace(c.nt)
	}

	return out
}

// Mask returns the Valid flag of every position.
func Mask(pos []Position) []bool {
	m := make([]bool, len(pos))
	for i, p := range pos {
		m[i] = p.Valid
	}

	return m
}

func missingTrace(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = Missing
	}

	return v
}

// SPDX-License-Identifier: MIT

package curve

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
)

// Curve is one signal of one well, indexed by depth (or sample number).
// Missing samples are NaN.
type Curve struct {
	Well   string
	Signal string
	Index  []float64
	Values []float64
}

// Len returns the number of samples.
func (c Curve) Len() int { return len(c.Values) }

// DropMissing returns a copy without NaN samples.
func (c Curve) DropMissing() Curve {
	out := Curve{Well: c.Well, Signal: c.Signal}
	for i, v := range c.Values {
		if math.IsNaN(v) {
			continue
		}
		out.Index = append(out.Index, c.Index[i])
		out.Values = append(out.Values, v)
	}

	return out
}

// AllMissing reports whether the curve has no value at all.
func (c Curve) AllMissing() bool {
	for _, v := range c.Values {
		if !math.IsNaN(v) {
			return false
		}
	}

	return true
}

// Reader returns the curve of signal for one well.
type Reader interface {
	ReadCurve(well, signal string) (Curve, error)
}

// ReaderFunc adapts a function to Reader.
type ReaderFunc func(well, signal string) (Curve, error)

// ReadCurve calls f.
func (f ReaderFunc) ReadCurve(well, signal string) (Curve, error) { return f(well, signal) }

// Outcome records what happened to one well during Gather.
type Outcome struct {
	Well    string
	Samples int   // samples kept; zero when skipped
	Err     error // why the well was skipped; nil on success
}

// Skipped reports whether the well contributed no curve.
func (o Outcome) Skipped() bool { return o.Err != nil }

// Option configures Gather.
type Option func(*options)

type options struct {
	dropMissing bool
	logger      *slog.Logger
}

// WithDropMissing removes NaN samples from every curve; a curve that ends up
// empty is skipped with ErrEmptyCurve. By default missing samples are kept.
func WithDropMissing() Option { return func(o *options) { o.dropMissing = true } }

// WithLogger sets the logger receiving one line per processed well.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Gather reads signal for every name in order. Successful curves are
// returned in input order; outcomes has one entry per name, keyed by the
// requested name. The k-th curve belongs to the k-th non-skipped outcome,
// whatever Curve.Well the reader filled in.
func Gather(r Reader, names []string, signal string, opts ...Option) ([]Curve, []Outcome) {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, set := range opts {
		set(&o)
	}
	ctx := context.Background()

	curves := make([]Curve, 0, len(names))
	outcomes := make([]Outcome, 0, len(names))
	for i, name := range names {
		c, err := read(r, name, signal, o.dropMissing)
		if err != nil {
			o.logger.LogAttrs(ctx, slog.LevelWarn, "curve skipped",
				slog.String("well", name), slog.String("signal", signal), slog.String("reason", err.Error()))
			outcomes = append(outcomes, Outcome{Well: name, Err: err})
			continue
		}
		curves = append(curves, c)
		outcomes = append(outcomes, Outcome{Well: name, Samples: c.Len()})
		o.logger.LogAttrs(ctx, slog.LevelDebug, "curve read",
			slog.Int("n", i+1), slog.String("well", name), slog.Int("samples", c.Len()))
	}

	return curves, outcomes
}

func read(r Reader, name, signal string, dropMissing bool) (Curve, error) {
	c, err := r.ReadCurve(name, signal)
	if err != nil {
		return Curve{}, err
	}
	if len(c.Index) != len(c.Values) {
		return Curve{}, fmt.Errorf("well %q: %d index vs %d values: %w", name, len(c.Index), len(c.Values), ErrLengthMismatch)
	}
	if c.Well == "" {
		c.Well = name
	}
	if c.Signal == "" {
		c.Signal = signal
	}
	if dropMissing {
		c = c.DropMissing()
	}
	if c.Len() == 0 {
		return Curve{}, fmt.Errorf("well %q: %w", name, ErrEmptyCurve)
	}

	return c, nil
}

// Align puts curves on the union of their indices, one column per curve in
// input order. Cells a curve does not cover are NaN; NaN index entries are ignored. When dropAllMissing is
// set, index rows that are NaN in every column are removed.
func Align(curves []Curve, dropAllMissing bool) (index []float64, columns [][]float64) {
	seen := make(map[float64]struct{})
	for _, c := range curves {
		for _, z := range c.Index {
			if !math.IsNaN(z) {
				seen[z] = struct{}{}
			}
		}
	}
	index = make([]float64, 0, len(seen))
	for z := range seen {
		index = append(index, z)
	}
	sort.Float64s(index)
	pos := make(map[float64]int, len(index))
	for i, z := range index {
		pos[z] = i
	}

	columns = make([][]float64, len(curves))
	for j, c := range curves {
		col := make([]float64, len(index))
		for i := range col {
			col[i] = math.NaN()
		}
		for k, z := range c.Index {
			if i, ok := pos[z]; ok {
				col[i] = c.Values[k]
			}
		}
		columns[j] = col
	}
	if !dropAllMissing {
		return index, columns
	}

	keep := index[:0:0]
	kept := make([][]float64, len(columns))
	for i, z := range index {
		hit := false
		for _, col := range columns {
			if !math.IsNaN(col[i]) {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		keep = append(keep, z)
		for j, col := range columns {
			kept[j] = append(kept[j], col[i])
		}
	}

	return keep, kept
}

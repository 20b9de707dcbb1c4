package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/welltie/window"
)

// ErrBadVelocity indicates a NaN or infinite per-well velocity.
var ErrBadVelocity = errors.New("dataset: velocity must be finite")

// Series is the input of one well: aligned features (seismic trace) and
// labels (log values), plus an optional interval velocity.
type Series struct {
	Name     string
	X, Y     []float64
	Velocity *float64 // appended to every window when non-nil
}

// SkipReason says why a well contributed no rows.
type SkipReason int

const (
	// Contributed marks a well that added at least one row.
	Contributed SkipReason = iota

	// SkipNoWindows marks a well too short for a single window.
	SkipNoWindows
)

// String implements fmt.Stringer.
func (r SkipReason) String() string {
	switch r {
	case Contributed:
		return "contributed"
	case SkipNoWindows:
		return "no windows"
	default:
		return "unknown"
	}
}

// Outcome is the per-well entry of a Report.
type Outcome struct {
	Name   string
	Rows   int
	Reason SkipReason
}

// Skipped reports whether the well added no rows.
func (o Outcome) Skipped() bool { return o.Reason != Contributed }

// Report lists one Outcome per input well, in input order.
type Report struct {
	Outcomes []Outcome
}

// Contributed returns the names of wells that added rows.
func (r *Report) Contributed() []string { return r.names(false) }

// Skipped returns the names of wells that added nothing.
func (r *Report) Skipped() []string { return r.names(true) }

func (r *Report) names(skipped bool) []string {
	var out []string
	for _, o := range r.Outcomes {
		if o.Skipped() == skipped {
			out = append(out, o.Name)
		}
	}

	return out
}

// Assemble slices every series with the given window width and stacks the
// windows into one Dataset.
//
// Implementation:
//   - Stage 1: slice each well (sequentially or fanned out to WithWorkers).
//   - Stage 2: walk wells in input order, skip empty ones, check the column
//     count against the first contributing well, size the output.
//   - Stage 3: copy rows and labels in order.
//
// Errors:
//   - ErrInvalidWindow if width <= 0.
//   - ErrShapeMismatch (wrapped with the well name) for unequal X/Y lengths
//     or a column count differing from the first contributing well.
//   - ErrBadVelocity for a non-finite velocity.
//
// Complexity: O(total rows × cols) time and memory.
func Assemble(series []Series, width int, opts ...Option) (*Dataset, *Report, error) {
	if width <= 0 {
		return nil, nil, fmt.Errorf("Assemble(width=%d): %w", width, ErrInvalidWindow)
	}
	o := gatherOptions(opts...)

	parts := make([]*window.Windows, len(series))
	errs := make([]error, len(series))
	sliceOne := func(i int) {
		parts[i], errs[i] = sliceSeries(series[i], width, o.step)
	}
	if o.workers > 1 && len(series) > 1 {
		var g errgroup.Group
		g.SetLimit(o.workers)
		for i := range series {
			i := i
			g.Go(func() error {
				sliceOne(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range series {
			sliceOne(i)
		}
	}

	ctx := context.Background()
	rep := &Report{Outcomes: make([]Outcome, len(series))}
	cols, total := -1, 0
	for i, s := range series {
		if errs[i] != nil {
			return nil, nil, errs[i]
		}
		w := parts[i]
		if w.Rows() == 0 {
			rep.Outcomes[i] = Outcome{Name: s.Name, Reason: SkipNoWindows}
			o.logger.LogAttrs(ctx, slog.LevelInfo, "well skipped",
				slog.String("well", s.Name), slog.String("reason", SkipNoWindows.String()), slog.Int("samples", len(s.X)))
			continue
		}
		if cols < 0 {
			cols = w.Cols()
		} else if w.Cols() != cols {
			return nil, nil, fmt.Errorf("well %q: %d columns, want %d: %w", s.Name, w.Cols(), cols, ErrShapeMismatch)
		}
		rep.Outcomes[i] = Outcome{Name: s.Name, Rows: w.Rows(), Reason: Contributed}
		total += w.Rows()
		o.logger.LogAttrs(ctx, slog.LevelDebug, "well sliced",
			slog.String("well", s.Name), slog.Int("rows", w.Rows()))
	}

	if cols < 0 {
		// nothing contributed: report the width a contribution would have had
		cols = 2*window.HalfWidth(width) + 1
		for _, s := range series {
			if s.Velocity != nil {
				cols++
				break
			}
		}
	}
	d := &Dataset{
		rows:   total,
		cols:   cols,
		data:   make([]float64, 0, total*cols),
		labels: make([]float64, 0, total),
	}
	for _, w := range parts {
		d.data = append(d.data, w.Data()...)
		d.labels = append(d.labels, w.Labels()...)
	}

	return d, rep, nil
}

func sliceSeries(s Series, width, step int) (*window.Windows, error) {
	opts := []window.Option{window.WithStep(step)}
	if s.Velocity != nil {
		v := *s.Velocity
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("well %q: velocity %g: %w", s.Name, v, ErrBadVelocity)
		}
		opts = append(opts, window.WithVelocity(v))
	}
	w, err := window.Slice(s.X, s.Y, width, opts...)
	if err != nil {
		return nil, fmt.Errorf("well %q: %w", s.Name, err)
	}

	return w, nil
}

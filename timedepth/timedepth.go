package timedepth

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
)

// Interval carries the depth and time markers of one well.
type Interval struct {
	Name    string
	TopZ    float64 // meters
	BottomZ float64 // meters
	TopT    float64 // milliseconds, two-way time
	BottomT float64 // milliseconds, two-way time
}

// Degenerate reports whether the interval has no time extent.
func (iv Interval) Degenerate() bool { return iv.TopT == iv.BottomT }

// Result is the depth axis of one well, or the reason it has none.
type Result struct {
	Name  string
	Depth []float64 // nil when Err != nil
	Err   error
}

// Skipped reports whether the well produced no depth axis.
func (r Result) Skipped() bool { return r.Err != nil }

// TimeAxis returns t[k] = (indexTop + k) · deltaT for k in [0, n).
// deltaT is the sampling interval in milliseconds; indexTop is the sample
// index where the cube was cut.
func TimeAxis(n, indexTop int, deltaT float64) []float64 {
	if n <= 0 {
		return []float64{}
	}
	t := make([]float64, n)
	for k := range t {
		t[k] = float64(indexTop+k) * deltaT
	}

	return t
}

// Depth maps every time of axis to depth for one interval.
//
// Errors:
//   - ErrDegenerateInterval if iv.TopT == iv.BottomT.
func Depth(axis []float64, iv Interval) ([]float64, error) {
	if iv.Degenerate() {
		return nil, fmt.Errorf("Depth(%q, t=%g): %w", iv.Name, iv.TopT, ErrDegenerateInterval)
	}
	z := make([]float64, len(axis))
	dt := iv.BottomT - iv.TopT
	dz := iv.TopZ - iv.BottomZ
	for k, t := range axis {
		z[k] = (t-iv.TopT)/dt*dz + iv.TopZ
	}

	return z, nil
}

// Option configures DepthAxes.
type Option func(*options)

type options struct {
	strict bool
	logger *slog.Logger
}

// WithStrict fails the whole batch on the first degenerate interval.
func WithStrict() Option { return func(o *options) { o.strict = true } }

// WithLogger sets the logger that receives skip warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// DepthAxes maps axis to depth for every interval, in input order.
// By default a degenerate interval is skipped: its Result carries
// ErrDegenerateInterval, a warning is logged and the batch continues.
//
// Errors:
//   - ErrDegenerateInterval (wrapped) only under WithStrict.
func DepthAxes(axis []float64, intervals []Interval, opts ...Option) ([]Result, error) {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, set := range opts {
		set(&o)
	}

	out := make([]Result, len(intervals))
	for i, iv := range intervals {
		z, err := Depth(axis, iv)
		if err != nil {
			if o.strict {
				return nil, err
			}
			o.logger.LogAttrs(context.Background(), slog.LevelWarn, "well skipped",
				slog.String("well", iv.Name), slog.String("reason", err.Error()))
		}
		out[i] = Result{Name: iv.Name, Depth: z, Err: err}
	}

	return out, nil
}

// Resample linearly interpolates a depth-indexed curve onto the depths in at.
// Points outside [depth[0], depth[len-1]] and points whose bracketing
// samples include NaN come out as NaN.
//
// Errors:
//   - ErrLengthMismatch if len(depth) != len(values).
//   - ErrUnsorted if depth is not strictly increasing.
//
// Complexity: O(n + m log n).
func Resample(depth, values, at []float64) ([]float64, error) {
	if len(depth) != len(values) {
		return nil, fmt.Errorf("Resample(len(depth)=%d, len(values)=%d): %w", len(depth), len(values), ErrLengthMismatch)
	}
	for i := 1; i < len(depth); i++ {
		if !(depth[i] > depth[i-1]) {
			return nil, fmt.Errorf("Resample: depth[%d]=%g after %g: %w", i, depth[i], depth[i-1], ErrUnsorted)
		}
	}

	out := make([]float64, len(at))
	n := len(depth)
	for k, z := range at {
		out[k] = math.NaN()
		if n == 0 || math.IsNaN(z) || z < depth[0] || z > depth[n-1] {
			continue
		}
		j := searchRight(depth, z) // first index with depth[j] > z
		if j == 0 {
			continue
		}
		lo := j - 1
		if depth[lo] == z {
			out[k] = values[lo]
			continue
		}
		a, b := values[lo], values[j]
		f := (z - depth[lo]) / (depth[j] - depth[lo])
		out[k] = a + f*(b-a)
	}

	return out, nil
}

// searchRight returns the smallest j with s[j] > z, or len(s).
func searchRight(s []float64, z float64) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s[mid] > z {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}

package pipeline

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/welltie/curve"
	"github.com/katalvlaran/welltie/dataset"
	"github.com/katalvlaran/welltie/survey"
	"github.com/katalvlaran/welltie/timedepth"
	"github.com/katalvlaran/welltie/well"
)

// Stage names the step at which a well dropped out.
type Stage string

// Stages in execution order.
const (
	StageCurve    Stage = "curve"
	StageGrid     Stage = "grid"
	StageDepth    Stage = "depth"
	StageResample Stage = "resample"
)

// Skip records one well that did not reach assembly.
type Skip struct {
	Well  string
	Stage Stage
	Err   error
}

// Report summarizes a run.
type Report struct {
	Skips    []Skip
	Assembly *dataset.Report
	Dropped  int // rows removed by the missing-value filter
}

// Inputs are the in-memory collaborators of a run.
type Inputs struct {
	Wells  *well.Table
	Cube   *survey.Cube
	Curves curve.Reader
}

// Run builds the dataset described by cfg from in.
//
// Errors:
//   - ErrMissingInput if any input is nil.
//   - configuration errors from cfg.Validate.
//   - assembly errors from dataset.Assemble.
func Run(cfg Config, in Inputs, logger *slog.Logger) (*dataset.Dataset, *Report, error) {
	if in.Wells == nil || in.Cube == nil || in.Curves == nil {
		return nil, nil, ErrMissingInput
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	rep := &Report{}

	// Stage 1: curves.
	var copts []curve.Option
	if cfg.Curves.DropMissing {
		copts = append(copts, curve.WithDropMissing())
	}
	curves, outs := curve.Gather(in.Curves, in.Wells.Names(), cfg.Curves.Signal, append(copts, curve.WithLogger(logger))...)
	for _, o := range outs {
		if o.Skipped() {
			rep.Skips = append(rep.Skips, Skip{Well: o.Well, Stage: StageCurve, Err: o.Err})
		}
	}
	// Outcomes follow the requested names; curves follow the successful
	// outcomes. Pair by requested name, never by the reader's Curve.Well.
	wells := make([]well.Well, 0, len(curves))
	for _, o := range outs {
		if o.Skipped() {
			continue
		}
		w, err := in.Wells.Get(o.Well)
		if err != nil {
			return nil, nil, err
		}
		wells = append(wells, w)
	}

	// Stage 2: grid.
	xs, ys := make([]float64, len(wells)), make([]float64, len(wells))
	for i, w := range wells {
		xs[i], ys[i] = w.X, w.Y
	}
	pos, err := in.Cube.Resolve(cfg.Geometry, xs, ys, survey.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	traces := survey.Extract(in.Cube, pos)

	// Stage 3: depth axes for the wells on the grid.
	var (
		onGrid    []int
		intervals []timedepth.Interval
	)
	for i, p := range pos {
		if !p.Valid {
			rep.Skips = append(rep.Skips, Skip{
				Well: wells[i].Name, Stage: StageGrid,
				Err: fmt.Errorf("x_index=%d y_index=%d: %w", p.XIndex, p.YIndex, ErrOffGrid),
			})
			continue
		}
		onGrid = append(onGrid, i)
		w := wells[i]
		intervals = append(intervals, timedepth.Interval{
			Name: w.Name, TopZ: w.TopZ, BottomZ: w.BottomZ, TopT: w.TopT, BottomT: w.BottomT,
		})
	}
	axis := timedepth.TimeAxis(in.Cube.Samples(), cfg.IndexTop, cfg.SampleInterval)
	depths, err := timedepth.DepthAxes(axis, intervals, timedepth.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	// Stage 4: labels on the trace samples.
	series := make([]dataset.Series, 0, len(onGrid))
	for j, i := range onGrid {
		w, d := wells[i], depths[j]
		if d.Skipped() {
			rep.Skips = append(rep.Skips, Skip{Well: w.Name, Stage: StageDepth, Err: d.Err})
			continue
		}
		labels, err := timedepth.Resample(curves[i].Index, curves[i].Values, d.Depth)
		if err != nil {
			rep.Skips = append(rep.Skips, Skip{Well: w.Name, Stage: StageResample, Err: err})
			continue
		}
		s := dataset.Series{Name: w.Name, X: traces[i], Y: labels}
		if cfg.WithVelocity {
			v := w.Velocity()
			s.Velocity = &v
		}
		series = append(series, s)
	}

	// Stage 5: assembly.
	ds, arep, err := dataset.Assemble(series, cfg.Width,
		dataset.WithStep(cfg.Step), dataset.WithWorkers(cfg.Workers), dataset.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	rep.Assembly = arep
	if cfg.DropMissingLabels {
		clean := ds.DropMissing()
		rep.Dropped = ds.Rows() - clean.Rows()
		ds = clean
	}
	logger.Info("dataset assembled",
		slog.Int("rows", ds.Rows()), slog.Int("cols", ds.Cols()),
		slog.Int("wells", len(arep.Contributed())), slog.Int("skipped", len(rep.Skips)+len(arep.Skipped())),
		slog.Int("dropped_rows", rep.Dropped))

	return ds, rep, nil
}

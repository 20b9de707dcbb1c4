package dataset

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/welltie/window"
)

// Defaults of Assemble.
const (
	// DefaultStep is the distance between window centers in every well.
	DefaultStep = window.DefaultStep

	// DefaultWorkers runs the per-well loop sequentially.
	DefaultWorkers = 1
)

const (
	panicStepInvalid    = "dataset: WithStep: step must be > 0"
	panicWorkersInvalid = "dataset: WithWorkers: workers must be > 0"
)

// Option configures Assemble.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	step    int
	workers int
	logger  *slog.Logger
}

// WithStep sets the distance between window centers, applied to every well.
// Panics if step <= 0.
func WithStep(step int) Option {
	if step <= 0 {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.step = step }
}

// WithWorkers slices up to n wells concurrently. The output is identical to
// the sequential one. Panics if n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger sets the logger receiving per-well progress and skips.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(user ...Option) Options {
	o := Options{
		step:    DefaultStep,
		workers: DefaultWorkers,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

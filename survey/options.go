package survey

import (
	"io"
	"log/slog"
)

// Option configures Resolve.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger *slog.Logger
}

// WithLogger routes the per-well resolution report to l.
// A nil logger restores the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

func gatherOptions(user ...Option) Options {
	o := Options{logger: discardLogger()}
	for _, set := range user {
		set(&o)
	}

	return o
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

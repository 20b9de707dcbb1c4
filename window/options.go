// SPDX-License-Identifier: MIT

// Package window: functional options for Slice.
//
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic only on nonsensical values,
//   - gatherOptions helper that applies them in order.
package window

import "math"

// DefaultStep is the distance between consecutive window centers.
const DefaultStep = 1

const (
	panicStepInvalid     = "window: WithStep: step must be > 0"
	panicVelocityInvalid = "window: WithVelocity: velocity must be finite"
)

// Option mutates internal options. Safe to apply repeatedly; last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	step        int
	velocity    float64
	hasVelocity bool
}

// WithStep sets the distance between consecutive window centers.
// Panics if step <= 0.
func WithStep(step int) Option {
	if step <= 0 {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.step = step }
}

// WithVelocity appends v to every window row produced for the well.
// Panics if v is NaN or ±Inf.
func WithVelocity(v float64) Option {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(panicVelocityInvalid)
	}

	return func(o *Options) {
		o.velocity = v
		o.hasVelocity = true
	}
}

// WithoutVelocity clears a previously set velocity (default).
func WithoutVelocity() Option {
	return func(o *Options) {
		o.velocity = 0
		o.hasVelocity = false
	}
}

// gatherOptions applies user options over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{step: DefaultStep}
	for _, set := range user {
		set(&o)
	}

	return o
}

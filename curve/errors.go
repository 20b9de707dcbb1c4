package curve

import "errors"

var (
	// ErrNoSignal indicates the well file has no column for the requested signal.
	ErrNoSignal = errors.New("curve: signal not present")

	// ErrNoWell indicates no file exists for the requested well.
	ErrNoWell = errors.New("curve: well not found")

	// ErrEmptyCurve indicates a curve with no samples left.
	ErrEmptyCurve = errors.New("curve: no samples")

	// ErrLengthMismatch indicates index and values of different length.
	ErrLengthMismatch = errors.New("curve: index and values differ in length")
)

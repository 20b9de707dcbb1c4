package timedepth

import "errors"

var (
	// ErrDegenerateInterval indicates equal top and bottom times for a well.
	ErrDegenerateInterval = errors.New("timedepth: top and bottom times are equal")

	// ErrLengthMismatch indicates parallel sequences of unequal length.
	ErrLengthMismatch = errors.New("timedepth: sequence lengths differ")

	// ErrUnsorted indicates a depth index that is not strictly increasing.
	ErrUnsorted = errors.New("timedepth: depth index must be strictly increasing")
)

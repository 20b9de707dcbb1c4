package survey

import "errors"

// Sentinel errors for survey operations.
var (
	// ErrBadGeometry indicates a zero or non-finite grid spacing, or a non-finite origin.
	ErrBadGeometry = errors.New("survey: invalid grid geometry")

	// ErrLengthMismatch indicates parallel coordinate sequences of unequal length.
	ErrLengthMismatch = errors.New("survey: coordinate sequences differ in length")

	// ErrBadShape indicates non-positive cube dimensions or a data buffer of the wrong size.
	ErrBadShape = errors.New("survey: invalid cube shape")

	// ErrRagged indicates a nested cube whose rows or traces differ in length.
	ErrRagged = errors.New("survey: nested cube is not rectangular")

	// ErrOutOfRange indicates a grid index outside the cube.
	ErrOutOfRange = errors.New("survey: index out of range")
)

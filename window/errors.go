// SPDX-License-Identifier: MIT

package window

import "errors"

// Sentinel errors. Callers match with errors.Is; context, if any, is added
// with fmt.Errorf("...: %w", ErrX).
var (
	// ErrShapeMismatch is returned when the feature and label sequences differ in length.
	ErrShapeMismatch = errors.New("window: feature and label lengths differ")

	// ErrInvalidWindow is returned when the window width is not a positive integer.
	ErrInvalidWindow = errors.New("window: width must be > 0")

	// ErrRowOutOfRange is returned by row accessors for an index outside [0, Rows()).
	ErrRowOutOfRange = errors.New("window: row index out of range")
)

// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"

	"github.com/katalvlaran/welltie/window"
)

// Sentinel errors. The slicing sentinels are shared with package window so
// errors.Is matches regardless of which layer detected the problem.
var (
	// ErrShapeMismatch indicates unequal sequence lengths or column counts.
	ErrShapeMismatch = window.ErrShapeMismatch

	// ErrInvalidWindow indicates a non-positive window width.
	ErrInvalidWindow = window.ErrInvalidWindow

	// ErrOutOfRange indicates a row or column index outside the dataset.
	ErrOutOfRange = errors.New("dataset: index out of range")

	// ErrBadShape indicates a feature buffer inconsistent with the declared shape.
	ErrBadShape = errors.New("dataset: invalid shape")
)

package pipeline

import "errors"

var (
	// ErrConfig indicates an unusable configuration value.
	ErrConfig = errors.New("pipeline: invalid configuration")

	// ErrOffGrid marks a well whose coordinates fall outside the cube.
	ErrOffGrid = errors.New("pipeline: well outside the survey grid")

	// ErrMissingInput indicates a nil table, cube or curve reader.
	ErrMissingInput = errors.New("pipeline: missing input")
)

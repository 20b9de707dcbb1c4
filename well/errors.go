package well

import "errors"

var (
	// ErrMissingColumn indicates a required header column is absent.
	ErrMissingColumn = errors.New("well: required column not found")

	// ErrEmptyInput indicates a CSV source without a header row.
	ErrEmptyInput = errors.New("well: empty input")

	// ErrUnknownWell indicates a lookup of a name that is not in the table.
	ErrUnknownWell = errors.New("well: unknown well")
)

// Package curve gathers well-log curves for many wells from a Reader and
// reports, per well, whether the curve was obtained or why it was skipped.
//
// A failed read never aborts the batch: the well is recorded as skipped with
// its error in the returned outcomes, so callers can see exactly which wells
// dropped out and why.
package curve

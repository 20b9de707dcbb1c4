// Package dataset assembles per-well windows into one training matrix pair.
//
// What & Why:
//
//	Assemble runs window.Slice over every well in input order and stacks the
//	results: features row-wise into one Dataset, labels in matching order.
//	The row order is fixed: wells in input order, and within a well by
//	increasing center index. Parallel assembly (WithWorkers) reproduces the
//	sequential order exactly.
//
// Skips and failures:
//
//   - A well yielding zero windows contributes nothing and is recorded in the
//     Report with SkipNoWindows; assembly continues.
//   - The first contributing well fixes the column count. A later well with a
//     different count (another width, a missing velocity) fails the call with
//     ErrShapeMismatch.
//   - Slicing errors (ErrShapeMismatch, ErrInvalidWindow) fail the call.
//
// Dataset:
//
//	Row-major float64 storage with Rows()×Cols() features and Rows() labels.
//	Zero-row datasets are legal and keep their column count.
package dataset

// Package window cuts fixed-width overlapping windows out of a single well's
// seismic trace and pairs each window with the well-log value at its center.
//
// What & Why:
//
//	A trace sampled along the well path is a 1-D sequence x[0..N). For every
//	center index i in [h, N-h), stepping by Step, the slicer emits the segment
//	x[i-h : i+h+1] together with the label y[i], where h = Width/2 (integer
//	division).
//
// Window length:
//
//   - Odd Width  → symmetric window of exactly Width samples.
//   - Even Width → window of Width+1 samples (h samples either side of i).
//     This follows from the integer half-width and is kept on purpose:
//     datasets built with an even width stay compatible across releases.
//
// Velocity augmentation:
//
//	WithVelocity(v) appends one constant scalar to every row, so the row
//	length grows by one. The value is the same for all rows of the well.
//
// Edge cases:
//   - N <= 2h → zero windows, no error.
//   - len(x) != len(y) → ErrShapeMismatch.
//   - Width <= 0 → ErrInvalidWindow.
//
// Slice is a pure function: identical inputs produce bit-identical outputs.
//
// Complexity: O(R·C) time and memory, R = number of windows, C = row length.
package window

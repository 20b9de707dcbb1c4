// Package pipeline composes the welltie stages into one run: pick wells that
// lie on the survey grid, read their log curves, extract the traces beneath
// them, convert the trace time axis to depth, resample the logs onto it and
// assemble the windowed dataset.
//
// Every well that drops out on the way is listed in the Report with the
// stage that rejected it, so a run never fails silently on a single well.
package pipeline

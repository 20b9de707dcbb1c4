// Package welltie turns well-log curves and a 3-D seismic cube into windowed
// training samples: a short seismic trace segment around each sample of a
// well, paired with the log value at that sample.
//
// 🚀 Pipeline
//
//	well table ─┐
//	curves ─────┼─► survey (grid indices, traces) ─► timedepth (depth axis)
//	cube ───────┘                                   │
//	                                                ▼
//	                      window (per-well slices) ─► dataset (stacked rows)
//
// Packages:
//
//	survey/    — lateral grid geometry, the Cube type, coordinate resolution, trace extraction
//	timedepth/ — uniform time axis and constant-velocity time→depth mapping, curve resampling
//	window/    — fixed-width window slicing of one well, optional velocity column
//	dataset/   — multi-well assembly with per-well report, Dataset type, CSV output
//	well/      — well records, marker-table merge, interval velocity
//	curve/     — curve readers and multi-well gathering with skip outcomes
//	pipeline/  — the stages above composed from a JSON configuration
//
// The command cmd/welltie drives pipeline from the command line:
//
//	welltie build --config survey.json --out dataset.csv.zst
package welltie

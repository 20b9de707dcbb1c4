// Package timedepth converts the uniform two-way-time sample axis of a
// seismic cube into a per-well depth axis.
//
// Model:
//
//	Within the interval marked by the top (krovla) and bottom (podoshva)
//	horizons the velocity is taken as constant, so depth is a linear function
//	of time through the two markers:
//
//	    z(t) = (t − TopT) / (BottomT − TopT) · (TopZ − BottomZ) + TopZ
//
//	The same line is used outside the interval (extrapolation, no clamping).
//
// Degenerate intervals (TopT == BottomT) cannot define the line. DepthAxes
// skips such wells with a warning and reports them per well; WithStrict turns
// the first one into a batch error instead.
package timedepth

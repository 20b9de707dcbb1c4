// Package survey resolves real-world well coordinates onto the lateral grid
// of a 3-D seismic cube and extracts the trace beneath every well.
//
// 🚀 What is in here?
//
//   - Geometry: the affine map (x, y meters) → (x-grid, y-grid) of one survey,
//     expressed as named origin/spacing fields rather than literals.
//   - Cube: a dense (y, x, sample) amplitude volume, row-major, immutable.
//   - Resolve: grid indices plus an in-bounds flag for every well; never
//     rejects out-of-range wells.
//   - Extract: one trace per well in input order; wells off the grid get a
//     vector of Missing (NaN) of the same length so results stay aligned
//     with the caller's well ordering.
//
// Rounding:
//
//	Index = round((coord − origin) / spacing) using math.Round, i.e. halves
//	are rounded away from zero. Ties only occur on exact half-cell positions.
//
// Observability:
//
//	Resolve logs every (coordinate, index, valid) triple at debug level on the
//	logger given with WithLogger. Logging never changes the result.
package survey

package survey

import (
	"fmt"
	"math"
)

// Geometry is the lateral affine transform of a survey: grid index along an
// axis is (coord − Origin) / Spacing, rounded.
type Geometry struct {
	XOrigin  float64 `json:"xOrigin"`  // easting of grid column 0, meters
	XSpacing float64 `json:"xSpacing"` // meters per grid column
	YOrigin  float64 `json:"yOrigin"`  // northing of grid row 0, meters
	YSpacing float64 `json:"ySpacing"` // meters per grid row
}

// OmskGeometry returns the grid of the J1-3 survey the tool was first built
// for: 392 inlines over 9630.30 m and 768 crosslines over 18876.79 m.
func OmskGeometry() Geometry {
	return Geometry{
		XOrigin:  524272.72,
		XSpacing: 9630.30 / 392,
		YOrigin:  6410041.47,
		YSpacing: 18876.79 / 768,
	}
}

// Validate reports ErrBadGeometry for zero or non-finite spacings and
// non-finite origins.
func (g Geometry) Validate() error {
	for _, v := range []float64{g.XOrigin, g.XSpacing, g.YOrigin, g.YSpacing} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%+v: %w", g, ErrBadGeometry)
		}
	}
	if g.XSpacing == 0 || g.YSpacing == 0 {
		return fmt.Errorf("%+v: zero spacing: %w", g, ErrBadGeometry)
	}

	return nil
}

// Index maps a coordinate pair in meters to grid indices.
// NaN coordinates map to an index that is never in bounds.
func (g Geometry) Index(x, y float64) (xi, yi int) {
	return toIndex(x, g.XOrigin, g.XSpacing), toIndex(y, g.YOrigin, g.YSpacing)
}

// Coord maps grid indices back to the cell-center coordinates in meters.
func (g Geometry) Coord(xi, yi int) (x, y float64) {
	return g.XOrigin + float64(xi)*g.XSpacing, g.YOrigin + float64(yi)*g.YSpacing
}

// toIndex rounds (c − origin)/spacing half away from zero. Values that do
// not fit an int (NaN, ±Inf, huge) collapse to -1 so they read as out of bounds.
func toIndex(c, origin, spacing float64) int {
	f := math.Round((c - origin) / spacing)
	if math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return -1
	}

	return int(f)
}

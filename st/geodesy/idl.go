package geodesy

import (
	"math"

	"shapetools/st/geojson"
)

// CrossesIDL reports whether consecutive points of the path jump more
// than 180 degrees of longitude, which means the raw coordinates wrap
// around the antimeridian.
func CrossesIDL(pts []geojson.Position) bool {
	for i := 1; i < len(pts); i++ {
		if math.Abs(pts[i].X-pts[i-1].X) > 180 {
			return true
		}
	}
	return false
}

// NormalizeIDL makes a path that crosses the antimeridian continuous
// by moving every negative longitude to the positive side (+360).
// Latitudes, point count and ordering are left untouched. Paths that
// do not cross are returned as-is.
func NormalizeIDL(pts []geojson.Position) {
	if !CrossesIDL(pts) {
		return
	}
	for i := range pts {
		if pts[i].X < 0 {
			pts[i].X += 360
		}
	}
}

// Package geodesy solves direct and inverse geodesic problems on the
// WGS84 ellipsoid, in meters and degrees.
package geodesy

import (
	"errors"
	"math"

	"github.com/StefanSchroeder/Golang-Ellipsoid/ellipsoid"
)

var (
	globe = ellipsoid.Init(
		"WGS84",
		ellipsoid.Degrees,
		ellipsoid.Meter,
		ellipsoid.LongitudeIsSymmetric,
		ellipsoid.BearingIsSymmetric)

	// ErrBadInput means a coordinate or distance outside the domain of
	// the solver was supplied.
	ErrBadInput = errors.New("geodesy: input value out of bounds")
	// ErrSolve means the solver produced a non-finite result.
	ErrSolve = errors.New("geodesy: geodesic solve failed")
)

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Direct computes the destination of travelling distance meters from
// (lat, lon) along the initial bearing (degrees clockwise from north).
func Direct(lat, lon, bearing, distance float64) (float64, float64, error) {
	if !finite(lat, lon, bearing, distance) {
		return 0, 0, ErrBadInput
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 || distance < 0 {
		return 0, 0, ErrBadInput
	}
	lat2, lon2 := globe.At(lat, lon, distance, bearing)
	if !finite(lat2, lon2) || lat2 < -90 || lat2 > 90 {
		return 0, 0, ErrSolve
	}
	return lat2, lon2, nil
}

// Inverse computes the geodesic distance in meters and the initial
// bearing in degrees from (lat1, lon1) to (lat2, lon2).
func Inverse(lat1, lon1, lat2, lon2 float64) (float64, float64, error) {
	if !finite(lat1, lon1, lat2, lon2) {
		return 0, 0, ErrBadInput
	}
	if lat1 < -90 || lat1 > 90 || lat2 < -90 || lat2 > 90 ||
		lon1 < -180 || lon1 > 180 || lon2 < -180 || lon2 > 180 {
		return 0, 0, ErrBadInput
	}
	dist, bearing := globe.To(lat1, lon1, lat2, lon2)
	if !finite(dist, bearing) {
		return 0, 0, ErrSolve
	}
	return dist, bearing, nil
}

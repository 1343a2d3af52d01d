package shapes

import (
	"math"
)

// Sampler walks an epicycloid in the local plane around its centroid
// and yields each sample as a (bearing, distance) pair, ready for a
// geodesic direct solve. The curve
//
//	x = r*(lobes+1)*cos(a) - r*cos((lobes+1)*a)
//	y = r*(lobes+1)*sin(a) - r*sin((lobes+1)*a)
//
// is traced by a circle of radius r rolling around a fixed circle of
// radius r*(lobes+1); lobes is the number of cusps. Angles are stepped
// by index over [0, 360] so the sequence always holds exactly
// segments+1 samples and the first and last coincide.
type Sampler struct {
	r             float64
	k             float64 // lobes + 1
	startingAngle float64
	segments      int
	i             int
}

// NewSampler returns a sampler for one feature's resolved parameters.
func NewSampler(r float64, lobes int, startingAngle float64, segments int) *Sampler {
	return &Sampler{
		r:             r,
		k:             float64(lobes) + 1,
		startingAngle: startingAngle,
		segments:      segments,
	}
}

// Count is the number of samples the full sequence yields.
func (s *Sampler) Count() int {
	return s.segments + 1
}

// Reset rewinds the sampler to angle zero.
func (s *Sampler) Reset() {
	s.i = 0
}

// Next returns the bearing in degrees and the distance in meters of
// the next sample, or ok=false when the curve is complete.
func (s *Sampler) Next() (bearing, distance float64, ok bool) {
	if s.i > s.segments {
		return 0, 0, false
	}
	a := float64(s.i) * 360.0 / float64(s.segments) * math.Pi / 180.0
	x := s.r*s.k*math.Cos(a) - s.r*math.Cos(s.k*a)
	y := s.r*s.k*math.Sin(a) - s.r*math.Sin(s.k*a)
	s.i++

	bearing = math.Atan2(y, x)*180.0/math.Pi + s.startingAngle
	distance = math.Sqrt(x*x + y*y)
	return bearing, distance, true
}

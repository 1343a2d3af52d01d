package geodesy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// One degree of longitude on the WGS84 equator.
const equatorDegree = 111319.49079327358

func TestDirectEquatorEast(t *testing.T) {
	lat, lon, err := Direct(0, 0, 90, equatorDegree)
	assert.NoError(t, err)
	assert.InDelta(t, 0.0, lat, 1e-9)
	assert.InDelta(t, 1.0, lon, 1e-6)
}

func TestDirectZeroDistance(t *testing.T) {
	lat, lon, err := Direct(48.85, 2.35, 123, 0)
	assert.NoError(t, err)
	assert.InDelta(t, 48.85, lat, 1e-9)
	assert.InDelta(t, 2.35, lon, 1e-9)
}

func TestDirectInverseRoundTrip(t *testing.T) {
	cases := []struct {
		lat, lon, bearing, dist float64
	}{
		{0, 0, 45, 100000},
		{51.5, -0.12, 10, 250000},
		{-33.86, 151.2, 300, 50000},
		{64.1, -21.9, 181.5, 1000},
	}
	for _, c := range cases {
		lat2, lon2, err := Direct(c.lat, c.lon, c.bearing, c.dist)
		assert.NoError(t, err)

		dist, bearing, err := Inverse(c.lat, c.lon, lat2, lon2)
		assert.NoError(t, err)
		assert.InDelta(t, c.dist, dist, 0.01)

		want := math.Mod(c.bearing+180, 360) - 180
		got := math.Mod(bearing+180, 360) - 180
		assert.InDelta(t, want, got, 1e-5)
	}
}

func TestDirectBadInput(t *testing.T) {
	_, _, err := Direct(91, 0, 0, 100)
	assert.Equal(t, ErrBadInput, err)

	_, _, err = Direct(0, 181, 0, 100)
	assert.Equal(t, ErrBadInput, err)

	_, _, err = Direct(0, 0, 0, -1)
	assert.Equal(t, ErrBadInput, err)

	_, _, err = Direct(0, 0, math.NaN(), 100)
	assert.Equal(t, ErrBadInput, err)

	_, _, err = Direct(0, 0, 0, math.Inf(1))
	assert.Equal(t, ErrBadInput, err)
}

func TestInverseBadInput(t *testing.T) {
	_, _, err := Inverse(0, 0, 100, 0)
	assert.Equal(t, ErrBadInput, err)
}

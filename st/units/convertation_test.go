package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMeters(t *testing.T) {
	assert.Equal(t, 1000.0, ToMeters(Kilometers))
	assert.Equal(t, 1.0, ToMeters(Meters))
	assert.Equal(t, 0.01, ToMeters(Centimeters))
	assert.Equal(t, 1609.344, ToMeters(Miles))
	assert.Equal(t, 0.9144, ToMeters(Yards))
	assert.Equal(t, 0.3048, ToMeters(Feet))
	assert.Equal(t, 0.0254, ToMeters(Inches))
	assert.Equal(t, 1852.0, ToMeters(NauticalMiles))
}

func TestToMetersOutOfRange(t *testing.T) {
	assert.Equal(t, 1.0, ToMeters(Distance(42)))
	assert.Equal(t, 1.0, ToMeters(Distance(-1)))
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Distance
	}{
		{"km", Kilometers},
		{"Kilometers", Kilometers},
		{"m", Meters},
		{"  meters ", Meters},
		{"cm", Centimeters},
		{"mi", Miles},
		{"yd", Yards},
		{"ft", Feet},
		{"in", Inches},
		{"nm", NauticalMiles},
		{"Nautical Miles", NauticalMiles},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		assert.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("furlongs")
	assert.Error(t, err)
}

func TestLabels(t *testing.T) {
	labels := Labels()
	assert.Len(t, labels, 8)
	assert.Equal(t, "Kilometers", labels[Kilometers])
	assert.Equal(t, "Nautical Miles", labels[NauticalMiles])

	// mutating the returned slice must not affect the package table
	labels[0] = "changed"
	assert.Equal(t, "Kilometers", Labels()[0])
}

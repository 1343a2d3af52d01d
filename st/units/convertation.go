// Package units contains functions that convert between different units.
package units

import (
	"fmt"
	"strings"
)

// Distance identifies a unit of length accepted for the radius
// parameter. The zero value is Kilometers.
type Distance int

const (
	Kilometers Distance = iota
	Meters
	Centimeters
	Miles
	Yards
	Feet
	Inches
	NauticalMiles
)

var distanceLabels = []string{
	"Kilometers",
	"Meters",
	"Centimeters",
	"Miles",
	"Yards",
	"Feet",
	"Inches",
	"Nautical Miles",
}

var metersPerUnit = []float64{
	1000.0,
	1.0,
	0.01,
	1609.344,
	0.9144,
	0.3048,
	0.0254,
	1852.0,
}

// ToMeters returns the number of meters in one unit of d.
func ToMeters(d Distance) float64 {
	if d < Kilometers || d > NauticalMiles {
		return 1.0
	}
	return metersPerUnit[d]
}

func (d Distance) String() string {
	if d < Kilometers || d > NauticalMiles {
		return "Unknown"
	}
	return distanceLabels[d]
}

// Labels returns the display names of all distance units, in enum order.
func Labels() []string {
	out := make([]string, len(distanceLabels))
	copy(out, distanceLabels)
	return out
}

// Parse maps a unit label or common abbreviation to a Distance.
func Parse(s string) (Distance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kilometers", "kilometer", "km":
		return Kilometers, nil
	case "meters", "meter", "m":
		return Meters, nil
	case "centimeters", "centimeter", "cm":
		return Centimeters, nil
	case "miles", "mile", "mi":
		return Miles, nil
	case "yards", "yard", "yd":
		return Yards, nil
	case "feet", "foot", "ft":
		return Feet, nil
	case "inches", "inch", "in":
		return Inches, nil
	case "nautical miles", "nautical mile", "nm":
		return NauticalMiles, nil
	}
	return Kilometers, fmt.Errorf("units: unknown distance unit %q", s)
}

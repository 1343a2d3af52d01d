// Package coordsys provides extra functions for projections.
package coordsys

import (
	"math"

	"shapetools/st/geojson"
)

const mercatorPole = 20037508.34

// C describes a coordinate reference system by its EPSG code and the
// converter pair to and from WGS84 longitude/latitude.
type C struct {
	Forward Converter
	Inverse Converter
	EPSG    string
}

func (c C) String() string {
	return c.EPSG
}

// IsGeographic reports whether c already is the WGS84 working frame.
func (c C) IsGeographic() bool {
	return c.EPSG == EPSG4326.EPSG
}

// Web Mercator
var EPSG3857 = C{
	EPSG: "EPSG:3857",
	Forward: func(p geojson.Position) geojson.Position {
		x := mercatorPole / 180.0 * p.X
		y := math.Log(math.Tan((90.0+p.Y)*math.Pi/360.0)) / math.Pi * mercatorPole
		y = math.Max(-mercatorPole, math.Min(y, mercatorPole))

		return geojson.Position{
			X: x,
			Y: y,
		}
	},
	Inverse: func(p geojson.Position) geojson.Position {
		x := p.X * 180.0 / mercatorPole
		y := 180.0 / math.Pi * (2*math.Atan(math.Exp((p.Y/mercatorPole)*math.Pi)) - math.Pi/2.0)

		return geojson.Position{
			X: x,
			Y: y,
		}
	},
}

var WebMercator = EPSG3857

var EPSG4326 = C{
	EPSG:    "EPSG:4326",
	Forward: func(p geojson.Position) geojson.Position { return p },
	Inverse: func(p geojson.Position) geojson.Position { return p },
}

var WGS84 = EPSG4326

// ByEPSG looks up a known reference system by its EPSG code.
func ByEPSG(code string) (C, bool) {
	switch code {
	case EPSG4326.EPSG, "":
		return EPSG4326, true
	case EPSG3857.EPSG:
		return EPSG3857, true
	}
	return C{}, false
}

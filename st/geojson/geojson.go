// Package geojson provides the geometry and feature model used
// throughout shapetools.
package geojson

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	errShortPosition  = errors.New("geojson: position needs at least two coordinates")
	errNoGeometry     = errors.New("geojson: feature has no geometry")
	errEmptyPolygon   = errors.New("geojson: polygon needs at least one ring")
	errNotACollection = errors.New("geojson: not a FeatureCollection")
)

// Position is a single coordinate pair. X is longitude (or easting),
// Y is latitude (or northing).
type Position struct {
	X, Y float64
}

func (p Position) String() string {
	return fmt.Sprintf("%v, %v", p.X, p.Y)
}

// MarshalJSON encodes the position as a GeoJSON [x, y] array.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

func (p *Position) UnmarshalJSON(data []byte) error {
	var raw []float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) < 2 {
		return errShortPosition
	}
	p.X = raw[0]
	p.Y = raw[1]
	return nil
}

// Object is one of the geometry types understood by this package.
type Object interface {
	Type() string
	// Center is the midpoint of the geometry's bounding box.
	Center() Position
}

type Point struct {
	Coordinates Position
}

func (g Point) Type() string     { return "Point" }
func (g Point) Center() Position { return g.Coordinates }

type MultiPoint struct {
	Coordinates []Position
}

func (g MultiPoint) Type() string     { return "MultiPoint" }
func (g MultiPoint) Center() Position { return boundsCenter(g.Coordinates) }

type LineString struct {
	Coordinates []Position
}

func (g LineString) Type() string     { return "LineString" }
func (g LineString) Center() Position { return boundsCenter(g.Coordinates) }

// Polygon holds one exterior ring and zero or more interior rings.
type Polygon struct {
	Coordinates [][]Position
}

func (g Polygon) Type() string { return "Polygon" }

func (g Polygon) Center() Position {
	if len(g.Coordinates) == 0 {
		return Position{}
	}
	return boundsCenter(g.Coordinates[0])
}

func boundsCenter(coords []Position) Position {
	if len(coords) == 0 {
		return Position{}
	}
	min, max := coords[0], coords[0]
	for _, p := range coords[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return Position{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2}
}

type rawGeometry struct {
	Type        string              `json:"type"`
	Coordinates jsoniter.RawMessage `json:"coordinates"`
}

// EncodeObject serializes any of the geometry types to GeoJSON.
func EncodeObject(g Object) ([]byte, error) {
	if g == nil {
		return nil, errNoGeometry
	}
	var coords interface{}
	switch v := g.(type) {
	case Point:
		coords = v.Coordinates
	case *Point:
		coords = v.Coordinates
	case MultiPoint:
		coords = v.Coordinates
	case *MultiPoint:
		coords = v.Coordinates
	case LineString:
		coords = v.Coordinates
	case *LineString:
		coords = v.Coordinates
	case Polygon:
		if len(v.Coordinates) == 0 {
			return nil, errEmptyPolygon
		}
		coords = v.Coordinates
	case *Polygon:
		if len(v.Coordinates) == 0 {
			return nil, errEmptyPolygon
		}
		coords = v.Coordinates
	default:
		return nil, fmt.Errorf("geojson: cannot encode geometry type %q", g.Type())
	}
	return json.Marshal(map[string]interface{}{
		"type":        g.Type(),
		"coordinates": coords,
	})
}

// DecodeObject parses a GeoJSON geometry.
func DecodeObject(data []byte) (Object, error) {
	var raw rawGeometry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	switch raw.Type {
	case "Point":
		var p Position
		if err := json.Unmarshal(raw.Coordinates, &p); err != nil {
			return nil, err
		}
		return Point{Coordinates: p}, nil
	case "MultiPoint":
		var coords []Position
		if err := json.Unmarshal(raw.Coordinates, &coords); err != nil {
			return nil, err
		}
		return MultiPoint{Coordinates: coords}, nil
	case "LineString":
		var coords []Position
		if err := json.Unmarshal(raw.Coordinates, &coords); err != nil {
			return nil, err
		}
		return LineString{Coordinates: coords}, nil
	case "Polygon":
		var coords [][]Position
		if err := json.Unmarshal(raw.Coordinates, &coords); err != nil {
			return nil, err
		}
		return Polygon{Coordinates: coords}, nil
	}
	return nil, fmt.Errorf("geojson: unknown geometry type %q", raw.Type)
}

// Package shapes generates geodesic epicycloid geometry anchored at
// input point features.
package shapes

import (
	"errors"
	"fmt"
	"strings"

	"shapetools/st/coordsys"
	"shapetools/st/units"
)

// ShapeKind selects the output geometry type.
type ShapeKind int

const (
	PolygonShape ShapeKind = iota
	LineShape
)

func (k ShapeKind) String() string {
	switch k {
	case PolygonShape:
		return "Polygon"
	case LineShape:
		return "Line"
	}
	return "Unknown"
}

// ParseShapeKind accepts "polygon" or "line", case-insensitive.
func ParseShapeKind(s string) (ShapeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "polygon":
		return PolygonShape, nil
	case "line", "linestring":
		return LineShape, nil
	}
	return PolygonShape, fmt.Errorf("shapes: unknown shape kind %q", s)
}

var (
	// ErrBadParams marks a feature whose override attributes could not
	// be parsed or violate parameter bounds. Such features are skipped
	// and counted, never fatal.
	ErrBadParams = errors.New("shapes: invalid feature parameters")

	errBadLobes    = errors.New("shapes: lobe count must be >= 1")
	errBadRadius   = errors.New("shapes: radius must be >= 0")
	errBadSegments = errors.New("shapes: drawing segments must be >= 4")
)

// ShapeRequest is the constant configuration of one run. Radius is in
// Units; it is converted to meters when the engine is built.
type ShapeRequest struct {
	Kind          ShapeKind
	Lobes         int
	Radius        float64
	Units         units.Distance
	StartingAngle float64
	Segments      int

	// Optional attribute names overriding the defaults per feature.
	LobesField         string
	RadiusField        string
	StartingAngleField string

	// When set, the anchor's native-frame coordinates are copied onto
	// the output feature under GeomXField/GeomYField.
	ExportGeom bool
	GeomXField string
	GeomYField string

	// Reference frame of the input (and output) coordinates.
	CRS coordsys.C

	// Optional percentage callback, invoked periodically during a run.
	Progress func(pct int)
}

// DefaultRequest mirrors the tool's historical defaults: a five-lobe
// polygon of 40 km radius sampled over 720 segments.
func DefaultRequest() ShapeRequest {
	return ShapeRequest{
		Kind:       PolygonShape,
		Lobes:      5,
		Radius:     40,
		Units:      units.Kilometers,
		Segments:   720,
		GeomXField: "geom_x",
		GeomYField: "geom_y",
		CRS:        coordsys.WGS84,
	}
}

func (r *ShapeRequest) Validate() error {
	if r.Lobes < 1 {
		return errBadLobes
	}
	if r.Radius < 0 {
		return errBadRadius
	}
	if r.Segments < 4 {
		return errBadSegments
	}
	if r.CRS.Forward == nil || r.CRS.Inverse == nil {
		return errors.New("shapes: request has no reference frame")
	}
	if r.ExportGeom && (r.GeomXField == "" || r.GeomYField == "") {
		return errors.New("shapes: export geometry field names not set")
	}
	return nil
}

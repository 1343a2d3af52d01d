package shapes

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"shapetools/st/geojson"
)

// PerFeatureParams is the resolved parameter set for one feature.
// R is the epicycloid scale radius, radius/(lobes+2).
type PerFeatureParams struct {
	Lobes         int
	Radius        float64 // meters
	StartingAngle float64 // degrees
	R             float64
}

// resolver applies per-feature attribute overrides on top of the run
// defaults. The run-level scale radius is precomputed once; it is only
// recomputed when a lobes or radius override makes it feature-specific.
type resolver struct {
	req    ShapeRequest
	factor float64 // meters per radius unit
	radius float64 // default radius, meters
	runR   float64 // radius/(lobes+2) for the defaults
}

func newResolver(req ShapeRequest, factor float64) resolver {
	radius := req.Radius * factor
	return resolver{
		req:    req,
		factor: factor,
		radius: radius,
		runR:   radius / float64(req.Lobes+2),
	}
}

func (rs resolver) resolve(f *geojson.Feature) (PerFeatureParams, error) {
	p := PerFeatureParams{
		Lobes:         rs.req.Lobes,
		Radius:        rs.radius,
		StartingAngle: rs.req.StartingAngle,
		R:             rs.runR,
	}

	if rs.req.StartingAngleField != "" {
		v, err := floatAttr(f, rs.req.StartingAngleField)
		if err != nil {
			return p, err
		}
		p.StartingAngle = v
	}
	if rs.req.LobesField != "" {
		v, err := intAttr(f, rs.req.LobesField)
		if err != nil {
			return p, err
		}
		if v < 1 {
			return p, fmt.Errorf("%v: lobes %v", ErrBadParams, v)
		}
		p.Lobes = v
	}
	if rs.req.RadiusField != "" {
		v, err := floatAttr(f, rs.req.RadiusField)
		if err != nil {
			return p, err
		}
		if v < 0 {
			return p, fmt.Errorf("%v: radius %v", ErrBadParams, v)
		}
		p.Radius = v * rs.factor
	}
	// The scale radius is nonlinear in the lobe count, so any override
	// forces a recompute.
	if rs.req.LobesField != "" || rs.req.RadiusField != "" {
		p.R = p.Radius / float64(p.Lobes+2)
	}
	return p, nil
}

func floatAttr(f *geojson.Feature, field string) (float64, error) {
	v, ok := f.Properties[field]
	if !ok {
		return 0, fmt.Errorf("%v: missing attribute %q", ErrBadParams, field)
	}
	return toFloat(v, field)
}

func intAttr(f *geojson.Feature, field string) (int, error) {
	v, err := floatAttr(f, field)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%v: attribute %q is not an integer", ErrBadParams, field)
	}
	return int(v), nil
}

func toFloat(v interface{}, field string) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, fmt.Errorf("%v: attribute %q: %v", ErrBadParams, field, err)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("%v: attribute %q: %v", ErrBadParams, field, err)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%v: attribute %q has type %T", ErrBadParams, field, v)
}

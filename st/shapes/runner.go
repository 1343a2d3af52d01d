package shapes

import (
	"context"
	"fmt"

	"shapetools/st/coordsys"
	"shapetools/st/geodesy"
	"shapetools/st/geojson"
	"shapetools/st/log"
	"shapetools/st/units"
)

// How often the progress callback fires, in features.
const progressEvery = 100

// Summary reports the outcome of one run.
type Summary struct {
	Total    int
	Written  int
	Rejected int
}

// Diagnostic renders the aggregate rejection message, or "" when every
// feature was processed.
func (s Summary) Diagnostic() string {
	if s.Rejected == 0 {
		return ""
	}
	return fmt.Sprintf("%d out of %d features had invalid parameters and were ignored.", s.Rejected, s.Total)
}

// Engine generates one epicycloid feature per input point feature.
type Engine struct {
	req ShapeRequest
	rs  resolver
}

func NewEngine(req ShapeRequest) (*Engine, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		req: req,
		rs:  newResolver(req, units.ToMeters(req.Units)),
	}, nil
}

// Run processes every feature of src in order and writes the results
// to sink. Features with unparsable overrides or failing geodesic
// solves are skipped and counted; cancellation stops the loop early
// without error, leaving already-written output in place. Only sink
// failures and a broken source abort the run.
func (e *Engine) Run(ctxt context.Context, src FeatureSource, sink FeatureSink) (Summary, error) {
	summary := Summary{Total: src.Total()}

	scale := 0.0
	if summary.Total > 0 {
		scale = 100.0 / float64(summary.Total)
	}

	for index := 0; ; index++ {
		select {
		case <-ctxt.Done():
			log.Info("run canceled after %v features", summary.Written)
			return summary, nil
		default:
		}

		f, ok := src.Next()
		if !ok {
			break
		}

		out, err := e.Generate(f)
		if err != nil {
			summary.Rejected++
			log.Debug("skipping feature %v: %v", index, err)
			continue
		}
		if err := sink.Write(out); err != nil {
			return summary, fmt.Errorf("shapes: sink write failed: %v", err)
		}
		summary.Written++

		if index%progressEvery == 0 && e.req.Progress != nil {
			e.req.Progress(int(float64(index) * scale))
		}
	}

	if msg := summary.Diagnostic(); msg != "" {
		log.Warn("%v", msg)
	}
	return summary, nil
}

// Generate builds the output feature for a single input point feature.
// The returned error is always of the skip-and-count class.
func (e *Engine) Generate(f *geojson.Feature) (*geojson.Feature, error) {
	params, err := e.rs.resolve(f)
	if err != nil {
		return nil, err
	}

	pt, ok := anchorOf(f)
	if !ok {
		return nil, fmt.Errorf("%v: feature has no point geometry", ErrBadParams)
	}

	// Geodesic math happens in the geographic frame; remember the
	// native coordinates for the optional export attributes.
	native := pt
	if !e.req.CRS.IsGeographic() {
		pt = coordsys.TransformPoint(e.req.CRS, coordsys.WGS84, pt)
	}

	pts, err := e.project(pt, params)
	if err != nil {
		return nil, err
	}

	geodesy.NormalizeIDL(pts)

	var geom geojson.Object
	if e.req.Kind == PolygonShape {
		geom = geojson.Polygon{Coordinates: [][]geojson.Position{pts}}
	} else {
		geom = geojson.LineString{Coordinates: pts}
	}
	if !e.req.CRS.IsGeographic() {
		geom = coordsys.FromWGS84(e.req.CRS, geom)
	}

	props := f.CopyProperties()
	if e.req.ExportGeom {
		props[e.req.GeomXField] = native.X
		props[e.req.GeomYField] = native.Y
	}

	return &geojson.Feature{
		ID:         f.ID,
		Geometry:   geom,
		Properties: props,
	}, nil
}

func (e *Engine) project(anchor geojson.Position, params PerFeatureParams) ([]geojson.Position, error) {
	sampler := NewSampler(params.R, params.Lobes, params.StartingAngle, e.req.Segments)
	pts := make([]geojson.Position, 0, sampler.Count())
	for {
		bearing, distance, ok := sampler.Next()
		if !ok {
			return pts, nil
		}
		lat, lon, err := geodesy.Direct(anchor.Y, anchor.X, bearing, distance)
		if err != nil {
			return nil, err
		}
		pts = append(pts, geojson.Position{X: lon, Y: lat})
	}
}

func anchorOf(f *geojson.Feature) (geojson.Position, bool) {
	switch g := f.Geometry.(type) {
	case geojson.Point:
		return g.Coordinates, true
	case *geojson.Point:
		return g.Coordinates, true
	}
	return geojson.Position{}, false
}

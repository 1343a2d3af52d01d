package main

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"shapetools/st/coordsys"
	"shapetools/st/geojson"
	"shapetools/st/log"
	"shapetools/st/shapes"
	"shapetools/st/units"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// epicycloidRequest is the POST /v1/epicycloid body. Zero-valued
// numeric fields fall back to the engine defaults.
type epicycloidRequest struct {
	Shape              string                     `json:"shape"`
	Lobes              int                        `json:"lobes"`
	Radius             float64                    `json:"radius"`
	Units              string                     `json:"units"`
	StartingAngle      float64                    `json:"startingAngle"`
	Segments           int                        `json:"segments"`
	LobesField         string                     `json:"lobesField"`
	RadiusField        string                     `json:"radiusField"`
	StartingAngleField string                     `json:"startingAngleField"`
	ExportGeom         bool                       `json:"exportGeom"`
	CRS                string                     `json:"crs"`
	Features           *geojson.FeatureCollection `json:"features"`
}

type epicycloidResponse struct {
	Summary    shapes.Summary             `json:"summary"`
	Diagnostic string                     `json:"diagnostic,omitempty"`
	Features   *geojson.FeatureCollection `json:"features"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		log.Error("response encoding failed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func getUnits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, units.Labels())
}

func postEpicycloid(w http.ResponseWriter, r *http.Request) {
	var body epicycloidRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "malformed request body: "+err.Error())
		return
	}
	if body.Features == nil {
		badRequest(w, "features collection is required")
		return
	}

	req := shapes.DefaultRequest()
	if body.Shape != "" {
		kind, err := shapes.ParseShapeKind(body.Shape)
		if err != nil {
			badRequest(w, err.Error())
			return
		}
		req.Kind = kind
	}
	if body.Lobes != 0 {
		req.Lobes = body.Lobes
	}
	if body.Radius != 0 {
		req.Radius = body.Radius
	}
	if body.Units != "" {
		unit, err := units.Parse(body.Units)
		if err != nil {
			badRequest(w, err.Error())
			return
		}
		req.Units = unit
	}
	if body.Segments != 0 {
		req.Segments = body.Segments
	}
	if body.CRS != "" {
		crs, ok := coordsys.ByEPSG(body.CRS)
		if !ok {
			badRequest(w, "unknown reference frame: "+body.CRS)
			return
		}
		req.CRS = crs
	}
	req.StartingAngle = body.StartingAngle
	req.LobesField = body.LobesField
	req.RadiusField = body.RadiusField
	req.StartingAngleField = body.StartingAngleField
	req.ExportGeom = body.ExportGeom

	engine, err := shapes.NewEngine(req)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	sink := new(shapes.CollectionSink)
	summary, err := engine.Run(r.Context(), shapes.NewCollectionSource(body.Features), sink)
	if err != nil {
		log.Error("run failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, epicycloidResponse{
		Summary:    summary,
		Diagnostic: summary.Diagnostic(),
		Features:   &sink.Collection,
	})
}

package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"shapetools/st/geojson"
)

func testRouter() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/health", getHealth).Methods("GET")
	router.HandleFunc("/v1/units", getUnits).Methods("GET")
	router.HandleFunc("/v1/epicycloid", postEpicycloid).Methods("POST")
	return router
}

func TestGetHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestGetUnits(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/v1/units", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var labels []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &labels))
	assert.Len(t, labels, 8)
}

func TestPostEpicycloid(t *testing.T) {
	defer goleak.VerifyNone(t)

	body := `{
		"shape": "polygon",
		"lobes": 5,
		"radius": 40,
		"units": "km",
		"segments": 36,
		"exportGeom": true,
		"features": {
			"type": "FeatureCollection",
			"features": [
				{
					"type": "Feature",
					"geometry": {"type": "Point", "coordinates": [0, 0]},
					"properties": {"name": "origin"}
				}
			]
		}
	}`
	req := httptest.NewRequest("POST", "/v1/epicycloid", strings.NewReader(body))
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Summary struct {
			Total    int
			Written  int
			Rejected int
		} `json:"summary"`
		Features *geojson.FeatureCollection `json:"features"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Summary.Total)
	assert.Equal(t, 1, resp.Summary.Written)
	require.NotNil(t, resp.Features)
	require.Len(t, resp.Features.Features, 1)

	poly, ok := resp.Features.Features[0].Geometry.(geojson.Polygon)
	require.True(t, ok)
	require.Len(t, poly.Coordinates, 1)
	assert.Len(t, poly.Coordinates[0], 37)

	props := resp.Features.Features[0].Properties
	assert.Equal(t, "origin", props["name"])
	assert.Contains(t, props, "geom_x")
	assert.Contains(t, props, "geom_y")
}

func TestPostEpicycloidBadRequests(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"malformed json", `{`},
		{"missing features", `{"shape": "polygon"}`},
		{"bad shape", `{"shape": "donut", "features": {"type": "FeatureCollection", "features": []}}`},
		{"bad units", `{"units": "furlongs", "features": {"type": "FeatureCollection", "features": []}}`},
		{"bad segments", `{"segments": 2, "features": {"type": "FeatureCollection", "features": []}}`},
		{"negative lobes", `{"lobes": -1, "features": {"type": "FeatureCollection", "features": []}}`},
		{"bad crs", `{"crs": "EPSG:1", "features": {"type": "FeatureCollection", "features": []}}`},
	}
	for _, c := range cases {
		req := httptest.NewRequest("POST", "/v1/epicycloid", strings.NewReader(c.body))
		rec := httptest.NewRecorder()
		testRouter().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, c.name)
	}
}

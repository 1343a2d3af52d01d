package coordsys

import (
	"math"
	"testing"

	"shapetools/st/geojson"
)

const epsilon = 0.0000001

const WGS84X = 10.0
const WGS84Y = 20.0
const WebMercX = 1.1131949077777779e+06
const WebMercY = 2.2730309266712805e+06

func TestProjForward(t *testing.T) {
	from := geojson.Point{
		Coordinates: geojson.Position{
			X: WGS84X,
			Y: WGS84Y,
		},
	}
	to := Proj(WGS84, WebMercator, from).(geojson.Point)
	wantX := WebMercX
	wantY := WebMercY

	if math.Abs(to.Coordinates.X-wantX) > epsilon {
		t.Fatalf("want %v ; got %v", wantX, to.Coordinates.X)
	}
	if math.Abs(to.Coordinates.Y-wantY) > epsilon {
		t.Fatalf("want %v ; got %v", wantY, to.Coordinates.Y)
	}
}

func TestProjInverse(t *testing.T) {
	from := geojson.Point{
		Coordinates: geojson.Position{
			X: WebMercX,
			Y: WebMercY,
		},
	}
	to := Proj(WebMercator, WGS84, from).(geojson.Point)
	wantX := WGS84X
	wantY := WGS84Y

	if math.Abs(to.Coordinates.X-wantX) > epsilon {
		t.Fatalf("want %v ; got %v", wantX, to.Coordinates.X)
	}
	if math.Abs(to.Coordinates.Y-wantY) > epsilon {
		t.Fatalf("want %v ; got %v", wantY, to.Coordinates.Y)
	}
}

func TestProjIdentity(t *testing.T) {
	from := geojson.LineString{
		Coordinates: []geojson.Position{
			{X: -179.5, Y: 10},
			{X: 179.5, Y: 10},
			{X: 0, Y: -45},
		},
	}
	to := Proj(WGS84, WGS84, from).(geojson.LineString)
	if len(to.Coordinates) != len(from.Coordinates) {
		t.Fatalf("point count changed: %v -> %v", len(from.Coordinates), len(to.Coordinates))
	}
	for i := range from.Coordinates {
		if to.Coordinates[i] != from.Coordinates[i] {
			t.Fatalf("point %v changed: %v -> %v", i, from.Coordinates[i], to.Coordinates[i])
		}
	}
}

func TestProjPolygonRoundTrip(t *testing.T) {
	from := geojson.Polygon{
		Coordinates: [][]geojson.Position{
			{
				{X: 10, Y: 20},
				{X: 11, Y: 20},
				{X: 11, Y: 21},
				{X: 10, Y: 20},
			},
		},
	}
	back := Proj(WebMercator, WGS84, Proj(WGS84, WebMercator, from)).(geojson.Polygon)
	for i, p := range from.Coordinates[0] {
		got := back.Coordinates[0][i]
		if math.Abs(got.X-p.X) > epsilon || math.Abs(got.Y-p.Y) > epsilon {
			t.Fatalf("round trip point %v: want %v ; got %v", i, p, got)
		}
	}
}

func TestTransformPoint(t *testing.T) {
	got := TransformPoint(WGS84, WebMercator, geojson.Position{X: WGS84X, Y: WGS84Y})
	if math.Abs(got.X-WebMercX) > epsilon {
		t.Fatalf("want %v ; got %v", WebMercX, got.X)
	}
	if math.Abs(got.Y-WebMercY) > epsilon {
		t.Fatalf("want %v ; got %v", WebMercY, got.Y)
	}
}

func TestByEPSG(t *testing.T) {
	c, ok := ByEPSG("EPSG:3857")
	if !ok || c.EPSG != "EPSG:3857" {
		t.Fatalf("lookup failed: %v %v", c, ok)
	}
	c, ok = ByEPSG("")
	if !ok || c.EPSG != "EPSG:4326" {
		t.Fatalf("empty code should default to EPSG:4326, got %v %v", c, ok)
	}
	if _, ok = ByEPSG("EPSG:9999"); ok {
		t.Fatal("unexpected hit for EPSG:9999")
	}
}

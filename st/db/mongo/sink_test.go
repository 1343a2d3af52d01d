package mongo

import (
	"testing"

	"github.com/globalsign/mgo/bson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapetools/st/geojson"
)

func TestGeometryDocPolygon(t *testing.T) {
	doc, err := GeometryDoc(geojson.Polygon{
		Coordinates: [][]geojson.Position{
			{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Polygon", doc["type"])

	coords := doc["coordinates"].([][][]float64)
	require.Len(t, coords, 1)
	require.Len(t, coords[0], 4)
	assert.Equal(t, []float64{1, 1}, coords[0][2])
}

func TestGeometryDocNil(t *testing.T) {
	_, err := GeometryDoc(nil)
	assert.Error(t, err)
}

func TestFeatureDocRoundTrip(t *testing.T) {
	doc, err := FeatureDoc(&geojson.Feature{
		ID: "f1",
		Geometry: geojson.LineString{
			Coordinates: []geojson.Position{{X: 10, Y: 20}, {X: 11, Y: 21}},
		},
		Properties: map[string]interface{}{"name": "route", "lobes": 5},
	})
	require.NoError(t, err)
	assert.Equal(t, "f1", doc["featureId"])

	// must survive bson encoding unchanged in shape
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var back bson.M
	require.NoError(t, bson.Unmarshal(raw, &back))

	geom := back["geometry"].(bson.M)
	assert.Equal(t, "LineString", geom["type"])
	props := back["properties"].(bson.M)
	assert.Equal(t, "route", props["name"])
}

func TestFeatureDocNoGeometry(t *testing.T) {
	_, err := FeatureDoc(&geojson.Feature{})
	assert.Error(t, err)
}

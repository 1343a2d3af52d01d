// Package mongo persists generated shape features to MongoDB.
package mongo

import (
	"errors"
	"fmt"

	"github.com/globalsign/mgo"
	"github.com/globalsign/mgo/bson"

	"shapetools/st/geojson"
	"shapetools/st/log"
)

// Sink writes one document per feature into a collection. Geometry is
// stored in GeoJSON form so a 2dsphere index can be built on it.
type Sink struct {
	session    *mgo.Session
	db         string
	collection string
}

func NewSink(dialInfo *mgo.DialInfo, db, collection string) (*Sink, error) {
	if db == "" || collection == "" {
		return nil, errors.New("mongo: database and collection must be set")
	}
	session, err := mgo.DialWithInfo(dialInfo)
	if err != nil {
		return nil, err
	}
	log.Debug("connected to mongo, writing to %v.%v", db, collection)
	return &Sink{
		session:    session,
		db:         db,
		collection: collection,
	}, nil
}

func (s *Sink) Write(f *geojson.Feature) error {
	doc, err := FeatureDoc(f)
	if err != nil {
		return err
	}
	return s.session.DB(s.db).C(s.collection).Insert(doc)
}

// EnsureIndex creates the 2dsphere index on the geometry field.
func (s *Sink) EnsureIndex() error {
	return s.session.DB(s.db).C(s.collection).EnsureIndex(mgo.Index{
		Key:  []string{"$2dsphere:geometry"},
		Name: "geometry_2dsphere",
	})
}

func (s *Sink) Close() {
	s.session.Close()
}

// FeatureDoc builds the bson document stored for a feature.
func FeatureDoc(f *geojson.Feature) (bson.M, error) {
	geom, err := GeometryDoc(f.Geometry)
	if err != nil {
		return nil, err
	}
	doc := bson.M{
		"geometry":   geom,
		"properties": f.Properties,
	}
	if f.ID != nil {
		doc["featureId"] = f.ID
	}
	return doc, nil
}

// GeometryDoc renders a geometry as a GeoJSON-shaped bson document.
func GeometryDoc(g geojson.Object) (bson.M, error) {
	if g == nil {
		return nil, errors.New("mongo: feature has no geometry")
	}
	switch v := g.(type) {
	case geojson.Point:
		return bson.M{"type": v.Type(), "coordinates": pair(v.Coordinates)}, nil
	case *geojson.Point:
		return bson.M{"type": v.Type(), "coordinates": pair(v.Coordinates)}, nil
	case geojson.MultiPoint:
		return bson.M{"type": v.Type(), "coordinates": pairs(v.Coordinates)}, nil
	case *geojson.MultiPoint:
		return bson.M{"type": v.Type(), "coordinates": pairs(v.Coordinates)}, nil
	case geojson.LineString:
		return bson.M{"type": v.Type(), "coordinates": pairs(v.Coordinates)}, nil
	case *geojson.LineString:
		return bson.M{"type": v.Type(), "coordinates": pairs(v.Coordinates)}, nil
	case geojson.Polygon:
		return bson.M{"type": v.Type(), "coordinates": rings(v.Coordinates)}, nil
	case *geojson.Polygon:
		return bson.M{"type": v.Type(), "coordinates": rings(v.Coordinates)}, nil
	}
	return nil, fmt.Errorf("mongo: cannot store geometry type %q", g.Type())
}

func pair(p geojson.Position) []float64 {
	return []float64{p.X, p.Y}
}

func pairs(coords []geojson.Position) [][]float64 {
	out := make([][]float64, len(coords))
	for i, p := range coords {
		out[i] = pair(p)
	}
	return out
}

func rings(coords [][]geojson.Position) [][][]float64 {
	out := make([][][]float64, len(coords))
	for i, ring := range coords {
		out[i] = pairs(ring)
	}
	return out
}

package shapes

import (
	"shapetools/st/geojson"
)

// FeatureSource iterates over input point features.
type FeatureSource interface {
	// Next returns the next feature, or ok=false when exhausted.
	Next() (f *geojson.Feature, ok bool)
	// Total is the feature count, or 0 when unknown.
	Total() int
}

// FeatureSink accepts generated features. A write failure is fatal to
// the run.
type FeatureSink interface {
	Write(f *geojson.Feature) error
}

// CollectionSource iterates an in-memory FeatureCollection.
type CollectionSource struct {
	fc *geojson.FeatureCollection
	i  int
}

func NewCollectionSource(fc *geojson.FeatureCollection) *CollectionSource {
	return &CollectionSource{fc: fc}
}

func (s *CollectionSource) Next() (*geojson.Feature, bool) {
	if s.fc == nil || s.i >= len(s.fc.Features) {
		return nil, false
	}
	f := s.fc.Features[s.i]
	s.i++
	return f, true
}

func (s *CollectionSource) Total() int {
	if s.fc == nil {
		return 0
	}
	return len(s.fc.Features)
}

// CollectionSink accumulates output features in memory.
type CollectionSink struct {
	Collection geojson.FeatureCollection
}

func (s *CollectionSink) Write(f *geojson.Feature) error {
	s.Collection.Features = append(s.Collection.Features, f)
	return nil
}

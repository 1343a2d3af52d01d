package geojson

import (
	jsoniter "github.com/json-iterator/go"
)

// Feature is a geojson object with the type "Feature"
type Feature struct {
	Geometry   Object
	ID         interface{}
	Properties map[string]interface{}
}

// CopyProperties returns a shallow copy of the feature's property map.
// The result is never nil.
func (f *Feature) CopyProperties() map[string]interface{} {
	props := make(map[string]interface{}, len(f.Properties)+2)
	for k, v := range f.Properties {
		props[k] = v
	}
	return props
}

type rawFeature struct {
	Type       string                 `json:"type"`
	ID         interface{}            `json:"id,omitempty"`
	Geometry   jsoniter.RawMessage    `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

func (f Feature) MarshalJSON() ([]byte, error) {
	geom, err := EncodeObject(f.Geometry)
	if err != nil {
		return nil, err
	}
	return json.Marshal(rawFeature{
		Type:       "Feature",
		ID:         f.ID,
		Geometry:   jsoniter.RawMessage(geom),
		Properties: f.Properties,
	})
}

func (f *Feature) UnmarshalJSON(data []byte) error {
	var raw rawFeature
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Geometry) == 0 {
		return errNoGeometry
	}
	geom, err := DecodeObject(raw.Geometry)
	if err != nil {
		return err
	}
	f.Geometry = geom
	f.ID = raw.ID
	f.Properties = raw.Properties
	return nil
}

// FeatureCollection is a geojson object with the type "FeatureCollection"
type FeatureCollection struct {
	Features []*Feature
}

type rawCollection struct {
	Type     string     `json:"type"`
	Features []*Feature `json:"features"`
}

func (fc FeatureCollection) MarshalJSON() ([]byte, error) {
	features := fc.Features
	if features == nil {
		features = []*Feature{}
	}
	return json.Marshal(rawCollection{
		Type:     "FeatureCollection",
		Features: features,
	})
}

func (fc *FeatureCollection) UnmarshalJSON(data []byte) error {
	var raw rawCollection
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Type != "FeatureCollection" {
		return errNotACollection
	}
	fc.Features = raw.Features
	return nil
}

// DecodeCollection parses a GeoJSON FeatureCollection document.
func DecodeCollection(data []byte) (*FeatureCollection, error) {
	fc := new(FeatureCollection)
	if err := json.Unmarshal(data, fc); err != nil {
		return nil, err
	}
	return fc, nil
}

// EncodeCollection serializes a FeatureCollection document.
func EncodeCollection(fc *FeatureCollection) ([]byte, error) {
	return json.Marshal(fc)
}

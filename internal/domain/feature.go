package domain

import "strconv"

// FeatureCollection - top-level structure of a GeoJSON export
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature - one GeoJSON entry: a geometry plus an open-ended bag of
// OSM-style tag properties
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   *Geometry              `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// Geometry - point geometry as exported by Overpass ([lon, lat])
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Prop returns the string value of a property, or "" when the property
// is absent. Exports occasionally carry numeric values; those are
// formatted as strings.
func (f Feature) Prop(key string) string {
	if f.Properties == nil {
		return ""
	}
	switch v := f.Properties[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// HasProp reports whether a property is present with a non-empty string value.
func (f Feature) HasProp(key string) bool {
	return f.Prop(key) != ""
}

// Coordinates returns (lon, lat, ok). ok is false when the geometry is
// missing or does not hold exactly a two-element coordinate pair.
func (f Feature) Coordinates() (float64, float64, bool) {
	if f.Geometry == nil || len(f.Geometry.Coordinates) != 2 {
		return 0, 0, false
	}
	return f.Geometry.Coordinates[0], f.Geometry.Coordinates[1], true
}

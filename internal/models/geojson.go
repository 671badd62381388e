package models

import "encoding/json"

// FeatureCollection is the subset of GeoJSON the boundary importer and
// the raw incident listing need. Geometries are kept as raw JSON and
// handed to PostGIS (ST_GeomFromGeoJSON / ST_AsGeoJSON) untouched.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry"`
}

// IncidentGeoPoint is one row of the raw incident listing: stored
// columns plus the point geometry as a GeoJSON object.
type IncidentGeoPoint struct {
	ID           string          `json:"id"`
	IncidentCode string          `json:"incident_code"`
	DistrictName string          `json:"district_name"`
	Address      string          `json:"address"`
	Severity     Severity        `json:"severity"`
	Location     json.RawMessage `json:"location"`
}

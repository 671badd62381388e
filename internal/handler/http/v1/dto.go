package v1

import "encoding/json"

// dateFormat is the wire format for incident dates.
const dateFormat = "2006-01-02"

// LocationRequest carries the point coordinates of an incident.
// Both fields are required: partial coordinate updates are not
// supported.
type LocationRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

// IncidentRequest is the create/update payload for an incident.
// @Description Incident create/update request
type IncidentRequest struct {
	IncidentCode string           `json:"incident_code" validate:"required"`
	DistrictID   int64            `json:"district_id" validate:"required"`
	CrimeTypeID  int64            `json:"crime_type_id" validate:"required"`
	Address      string           `json:"address" validate:"required"`
	Location     *LocationRequest `json:"location" validate:"required"`
	IncidentDate string           `json:"incident_date" validate:"required"`
	IncidentTime string           `json:"incident_time,omitempty"`
	Severity     string           `json:"severity,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Description  string           `json:"description,omitempty"`
}

// IncidentResponse is the joined incident projection returned by every
// incident read, with coordinates decomposed from the stored point.
// @Description Incident response with denormalized names
type IncidentResponse struct {
	ID            string  `json:"id"`
	IncidentCode  string  `json:"incident_code"`
	DistrictID    int64   `json:"district_id"`
	DistrictName  string  `json:"district_name"`
	CrimeTypeID   int64   `json:"crime_type_id"`
	CrimeTypeName string  `json:"crime_type_name"`
	Address       string  `json:"address"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	IncidentDate  string  `json:"incident_date"`
	IncidentTime  string  `json:"incident_time,omitempty"`
	Severity      string  `json:"severity"`
	Description   string  `json:"description,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// CrimeDataResponse wraps the filtered search results.
type CrimeDataResponse struct {
	Data  []*IncidentResponse `json:"data"`
	Total int                 `json:"total"`
}

// DistrictResponse is one row of the district dropdown listing.
type DistrictResponse struct {
	District string `json:"district"`
}

// RecentIncidentResponse is the reduced dashboard-feed projection.
type RecentIncidentResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Date     string `json:"date"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
}

// IncidentGeoResponse is one row of the raw map listing, location as a
// GeoJSON geometry object.
type IncidentGeoResponse struct {
	ID           string          `json:"id"`
	IncidentCode string          `json:"incident_code"`
	DistrictName string          `json:"district_name"`
	Address      string          `json:"address"`
	Severity     string          `json:"severity"`
	Location     json.RawMessage `json:"location"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Severity is the ordered severity level of a crime incident.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Score maps a severity level to its numeric weight used by the
// dashboard averages. Unknown levels fall back to 1 so historical
// averages stay comparable with rows imported before validation existed.
func (s Severity) Score() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 1
	}
}

// Valid reports whether s is one of the four known levels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// IncidentFilter carries the optional dashboard filters. Empty values
// and the "all" sentinel mean "no predicate for this filter".
type IncidentFilter struct {
	Search    string
	District  string
	CrimeType string
	Severity  string
}

// Incident is a single reported crime, joined with its district and
// crime type names. Latitude/Longitude are decomposed from the stored
// PostGIS point on read and recombined into it on write.
type Incident struct {
	ID            uuid.UUID `json:"id"`
	IncidentCode  string    `json:"incident_code"`
	DistrictID    int64     `json:"district_id"`
	DistrictName  string    `json:"district_name"`
	CrimeTypeID   int64     `json:"crime_type_id"`
	CrimeTypeName string    `json:"crime_type_name"`
	Address       string    `json:"address"`
	Latitude      float64   `json:"lat"`
	Longitude     float64   `json:"lng"`
	IncidentDate  time.Time `json:"incident_date"`
	IncidentTime  string    `json:"incident_time,omitempty"`
	Severity      Severity  `json:"severity"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

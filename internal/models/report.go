package models

import "time"

// DistrictStats is one row of the per-district dashboard report.
type DistrictStats struct {
	DistrictID     int64   `json:"district_id"`
	DistrictName   string  `json:"district_name"`
	TotalIncidents int     `json:"total_incidents"`
	LowCount       int     `json:"low_count"`
	MediumCount    int     `json:"medium_count"`
	HighCount      int     `json:"high_count"`
	CriticalCount  int     `json:"critical_count"`
	Last30Days     int     `json:"last_30_days"`
	AvgSeverity    float64 `json:"avg_severity"`
}

// DistrictStatsSummary aggregates the included districts.
type DistrictStatsSummary struct {
	TotalDistricts  int     `json:"total_districts"`
	TotalIncidents  int     `json:"total_incidents"`
	TotalCritical   int     `json:"total_critical"`
	TotalLast30Days int     `json:"total_last_30_days"`
	AvgPerDistrict  float64 `json:"avg_per_district"`
}

// DistrictStatsReport is the full district-stats response payload.
type DistrictStatsReport struct {
	Districts []DistrictStats      `json:"districts"`
	Summary   DistrictStatsSummary `json:"summary"`
}

// TrendDirection classifies the 30-day incident trend of a hotspot.
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// HotspotRow is the raw aggregate row behind a hotspot: counts for the
// trailing 30-day window and the 30 days before it, still unclassified.
type HotspotRow struct {
	DistrictID   int64
	DistrictName string
	CaseCount    int
	AvgSeverity  float64
	Recent30     int
	Prior30      int
}

// Hotspot is one row of the top-trending-areas report.
type Hotspot struct {
	DistrictID   int64          `json:"district_id"`
	DistrictName string         `json:"district_name"`
	CaseCount    int            `json:"case_count"`
	AvgSeverity  float64        `json:"avg_severity"`
	Trend        TrendDirection `json:"trend"`
}

// TopCrimeType is one row of the category-breakdown report.
type TopCrimeType struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// RecentIncident is the reduced projection used by the dashboard feed.
type RecentIncident struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Location string    `json:"location"`
	Date     time.Time `json:"date"`
	Type     string    `json:"type"`
	Severity Severity  `json:"severity"`
}

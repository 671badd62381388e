package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/siagakota/crimemap-api/internal/models"
)

// severityScore maps severity levels to their numeric weight inside
// aggregate queries. Unknown or null levels score 1; changing that
// would shift historical averages.
const severityScore = `
	CASE i.severity
		WHEN 'LOW' THEN 1
		WHEN 'MEDIUM' THEN 2
		WHEN 'HIGH' THEN 3
		WHEN 'CRITICAL' THEN 4
		ELSE 1
	END`

// ReportRepository runs the read-only aggregate queries behind the
// dashboard. Every method tolerates an empty table and returns an
// empty slice, never an error, for "no data".
type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

// DistrictStats returns the top 10 districts by total incident count
// with severity buckets, a trailing-30-day count and the average
// severity score rounded to 2 decimals. Districts with zero incidents
// are still included here; the service layer drops them.
func (r *ReportRepository) DistrictStats(ctx context.Context) ([]models.DistrictStats, error) {
	query := fmt.Sprintf(`
		SELECT
			d.id,
			d.name,
			COUNT(i.id)::int AS total,
			COUNT(i.id) FILTER (WHERE i.severity = 'LOW')::int AS low_count,
			COUNT(i.id) FILTER (WHERE i.severity = 'MEDIUM')::int AS medium_count,
			COUNT(i.id) FILTER (WHERE i.severity = 'HIGH')::int AS high_count,
			COUNT(i.id) FILTER (WHERE i.severity = 'CRITICAL')::int AS critical_count,
			COUNT(i.id) FILTER (WHERE i.incident_date >= CURRENT_DATE - INTERVAL '30 days')::int AS last_30_days,
			COALESCE(ROUND(AVG(%s)::numeric, 2), 0)::float8 AS avg_severity
		FROM districts d
		LEFT JOIN crime_incidents i ON i.district_id = d.id
		GROUP BY d.id, d.name
		ORDER BY total DESC
		LIMIT 10;
	`, severityScore)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query district stats: %w", err)
	}
	defer rows.Close()

	stats := make([]models.DistrictStats, 0)
	for rows.Next() {
		var s models.DistrictStats
		err := rows.Scan(
			&s.DistrictID,
			&s.DistrictName,
			&s.TotalIncidents,
			&s.LowCount,
			&s.MediumCount,
			&s.HighCount,
			&s.CriticalCount,
			&s.Last30Days,
			&s.AvgSeverity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan district stats row: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating district stats rows: %w", err)
	}
	return stats, nil
}

// HotspotRows returns, per district with at least one incident, the
// case count, average severity score rounded to 1 decimal and the two
// 30-day window counts used for trend classification. Ordered by case
// count, ties broken by average severity, capped to 6.
func (r *ReportRepository) HotspotRows(ctx context.Context) ([]models.HotspotRow, error) {
	query := fmt.Sprintf(`
		SELECT
			d.id,
			d.name,
			COUNT(i.id)::int AS case_count,
			COALESCE(ROUND(AVG(%s)::numeric, 1), 0)::float8 AS avg_severity,
			COUNT(i.id) FILTER (WHERE i.incident_date >= CURRENT_DATE - INTERVAL '30 days')::int AS recent_30,
			COUNT(i.id) FILTER (
				WHERE i.incident_date >= CURRENT_DATE - INTERVAL '60 days'
				  AND i.incident_date < CURRENT_DATE - INTERVAL '30 days'
			)::int AS prior_30
		FROM districts d
		JOIN crime_incidents i ON i.district_id = d.id
		GROUP BY d.id, d.name
		ORDER BY case_count DESC, avg_severity DESC
		LIMIT 6;
	`, severityScore)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query hotspots: %w", err)
	}
	defer rows.Close()

	hotspots := make([]models.HotspotRow, 0)
	for rows.Next() {
		var h models.HotspotRow
		err := rows.Scan(
			&h.DistrictID,
			&h.DistrictName,
			&h.CaseCount,
			&h.AvgSeverity,
			&h.Recent30,
			&h.Prior30,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hotspot row: %w", err)
		}
		hotspots = append(hotspots, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hotspot rows: %w", err)
	}
	return hotspots, nil
}

// TopCrimeTypes returns the 5 most frequent crime types with their
// share of the grand total across all types. The share is a windowed
// ratio computed before the LIMIT, so percentages over the full set
// sum to 100.
func (r *ReportRepository) TopCrimeTypes(ctx context.Context) ([]models.TopCrimeType, error) {
	query := `
		SELECT
			t.name,
			COUNT(i.id)::int AS cnt,
			ROUND(COUNT(i.id) * 100.0 / SUM(COUNT(i.id)) OVER (), 1)::float8 AS percentage
		FROM crime_types t
		JOIN crime_incidents i ON i.crime_type_id = t.id
		GROUP BY t.name
		ORDER BY cnt DESC
		LIMIT 5;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query top crime types: %w", err)
	}
	defer rows.Close()

	top := make([]models.TopCrimeType, 0)
	for rows.Next() {
		var t models.TopCrimeType
		if err := rows.Scan(&t.Name, &t.Count, &t.Percentage); err != nil {
			return nil, fmt.Errorf("failed to scan top crime type row: %w", err)
		}
		top = append(top, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top crime type rows: %w", err)
	}
	return top, nil
}

// RecentIncidents returns the 5 most recent incidents in the reduced
// dashboard-feed projection.
func (r *ReportRepository) RecentIncidents(ctx context.Context) ([]models.RecentIncident, error) {
	query := `
		SELECT
			i.id,
			i.incident_code,
			i.address,
			i.incident_date,
			COALESCE(t.name, '') AS type,
			i.severity
		FROM crime_incidents i
		LEFT JOIN crime_types t ON t.id = i.crime_type_id
		ORDER BY i.incident_date DESC, i.incident_time DESC NULLS LAST
		LIMIT 5;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent incidents: %w", err)
	}
	defer rows.Close()

	recent := make([]models.RecentIncident, 0)
	for rows.Next() {
		var in models.RecentIncident
		if err := rows.Scan(&in.ID, &in.Title, &in.Location, &in.Date, &in.Type, &in.Severity); err != nil {
			return nil, fmt.Errorf("failed to scan recent incident row: %w", err)
		}
		recent = append(recent, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent incident rows: %w", err)
	}
	return recent, nil
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/siagakota/crimemap-api/internal/models"
)

// ReferenceRepository serves the reference-data readers feeding UI
// dropdowns and the raw map listing, plus the district writer used by
// the boundary importer.
type ReferenceRepository struct {
	db *pgxpool.Pool
}

func NewReferenceRepository(db *pgxpool.Pool) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

// ListCrimeTypes returns the full crime type catalogue.
func (r *ReferenceRepository) ListCrimeTypes(ctx context.Context) ([]models.CrimeType, error) {
	query := `SELECT id, name, COALESCE(description, '') FROM crime_types ORDER BY name;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list crime types: %w", err)
	}
	defer rows.Close()

	types := make([]models.CrimeType, 0)
	for rows.Next() {
		var t models.CrimeType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description); err != nil {
			return nil, fmt.Errorf("failed to scan crime type row: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating crime type rows: %w", err)
	}
	return types, nil
}

// ListCrimeTypeNames returns the distinct crime type names.
func (r *ReferenceRepository) ListCrimeTypeNames(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, `SELECT DISTINCT name FROM crime_types ORDER BY name;`)
}

// ListDistrictNames returns the distinct district names.
func (r *ReferenceRepository) ListDistrictNames(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, `SELECT DISTINCT name FROM districts ORDER BY name;`)
}

func (r *ReferenceRepository) listNames(ctx context.Context, query string) ([]string, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list names: %w", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan name row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating name rows: %w", err)
	}
	return names, nil
}

// ListIncidentGeoPoints returns every incident with its point geometry
// serialized as a GeoJSON object, for map rendering.
func (r *ReferenceRepository) ListIncidentGeoPoints(ctx context.Context) ([]models.IncidentGeoPoint, error) {
	query := `
		SELECT
			i.id,
			i.incident_code,
			COALESCE(d.name, '') AS district_name,
			i.address,
			i.severity,
			ST_AsGeoJSON(i.location) AS location
		FROM crime_incidents i
		LEFT JOIN districts d ON d.id = i.district_id
		ORDER BY i.incident_date DESC, i.incident_time DESC NULLS LAST;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident geometries: %w", err)
	}
	defer rows.Close()

	points := make([]models.IncidentGeoPoint, 0)
	for rows.Next() {
		var p models.IncidentGeoPoint
		var location string
		if err := rows.Scan(&p.ID, &p.IncidentCode, &p.DistrictName, &p.Address, &p.Severity, &location); err != nil {
			return nil, fmt.Errorf("failed to scan incident geometry row: %w", err)
		}
		p.Location = json.RawMessage(location)
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating incident geometry rows: %w", err)
	}
	return points, nil
}

// InsertDistrict inserts a district row with its boundary parsed from
// GeoJSON and tagged SRID 4326. Conflicts on the primary key are
// ignored so re-running the importer never overwrites existing areas.
// Reports whether a row was actually inserted.
func (r *ReferenceRepository) InsertDistrict(ctx context.Context, d *models.District, geometry json.RawMessage) (bool, error) {
	query := `
		INSERT INTO districts
			(id, name, male_population, female_population, total_population,
			 population_density, land_area, crime_count, crime_rate, color, geometry)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''),
			ST_SetSRID(ST_Multi(ST_GeomFromGeoJSON($11)), 4326))
		ON CONFLICT (id) DO NOTHING;
	`

	tag, err := r.db.Exec(ctx, query,
		d.ID,
		d.Name,
		d.MalePopulation,
		d.FemalePopulation,
		d.TotalPopulation,
		d.PopulationDensity,
		d.LandArea,
		d.CrimeCount,
		d.CrimeRate,
		d.Color,
		string(geometry),
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert district %d: %w", d.ID, err)
	}
	return tag.RowsAffected() > 0, nil
}

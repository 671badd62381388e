package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/siagakota/crimemap-api/internal/models"
)

// incidentColumns is the joined projection shared by every incident
// read. Districts and crime types are outer-joined so a dangling
// foreign key never suppresses the incident row; lat/lng are
// decomposed from the stored point.
const incidentColumns = `
	i.id,
	i.incident_code,
	i.district_id,
	COALESCE(d.name, '') AS district_name,
	i.crime_type_id,
	COALESCE(t.name, '') AS crime_type_name,
	i.address,
	ST_Y(i.location) AS lat,
	ST_X(i.location) AS lng,
	i.incident_date,
	COALESCE(i.incident_time, '') AS incident_time,
	i.severity,
	COALESCE(i.description, '') AS description,
	i.created_at,
	i.updated_at`

const incidentFrom = `
	FROM crime_incidents i
	LEFT JOIN districts d ON d.id = i.district_id
	LEFT JOIN crime_types t ON t.id = i.crime_type_id`

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) *IncidentRepository {
	return &IncidentRepository{db: db}
}

// rowQuerier is satisfied by both *pgxpool.Pool and pgx.Tx, so joined
// re-reads can run inside the same transaction as the write.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.IncidentCode,
		&incident.DistrictID,
		&incident.DistrictName,
		&incident.CrimeTypeID,
		&incident.CrimeTypeName,
		&incident.Address,
		&incident.Latitude,
		&incident.Longitude,
		&incident.IncidentDate,
		&incident.IncidentTime,
		&incident.Severity,
		&incident.Description,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

func getIncident(ctx context.Context, q rowQuerier, id uuid.UUID) (*models.Incident, error) {
	query := "SELECT" + incidentColumns + incidentFrom + " WHERE i.id = $1;"

	incident, err := scanIncident(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrIncidentNotFound
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// GetByID returns one incident with its joined district and crime type
// names. Returns models.ErrIncidentNotFound when no row matches.
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	return getIncident(ctx, r.db, id)
}

func (r *IncidentRepository) queryIncidents(ctx context.Context, query string, args []any) ([]*models.Incident, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating incident rows: %w", err)
	}
	return incidents, nil
}

// List returns all incidents matching the optional free-text search,
// newest first.
func (r *IncidentRepository) List(ctx context.Context, search string) ([]*models.Incident, error) {
	where, args := BuildIncidentWhere(models.IncidentFilter{Search: search})
	query := "SELECT" + incidentColumns + incidentFrom + " " + where + " " + incidentOrder + ";"
	return r.queryIncidents(ctx, query, args)
}

// Search returns incidents matching the full dashboard filter set,
// newest first, capped to the search limit.
func (r *IncidentRepository) Search(ctx context.Context, f models.IncidentFilter) ([]*models.Incident, error) {
	where, args := BuildIncidentWhere(f)
	query := fmt.Sprintf("SELECT%s%s %s %s LIMIT %d;", incidentColumns, incidentFrom, where, incidentOrder, searchLimit)
	return r.queryIncidents(ctx, query, args)
}

// Create inserts a new incident and re-reads it through the joined
// projection inside one transaction, so the returned entity always
// carries denormalized names and decomposed coordinates. A violated
// unique constraint on incident_code yields ErrDuplicateIncidentCode.
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) (*models.Incident, error) {
	insert := `
		INSERT INTO crime_incidents
			(incident_code, district_id, crime_type_id, address, location,
			 incident_date, incident_time, severity, description)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326),
			$7, NULLIF($8, ''), $9, NULLIF($10, ''))
		RETURNING id;
	`

	var created *models.Incident
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var id uuid.UUID
		err := tx.QueryRow(ctx, insert,
			incident.IncidentCode,
			incident.DistrictID,
			incident.CrimeTypeID,
			incident.Address,
			incident.Longitude,
			incident.Latitude,
			incident.IncidentDate,
			incident.IncidentTime,
			incident.Severity,
			incident.Description,
		).Scan(&id)
		if err != nil {
			return err
		}

		created, err = getIncident(ctx, tx, id)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.ErrDuplicateIncidentCode
		}
		return nil, fmt.Errorf("failed to create incident: %w", err)
	}
	return created, nil
}

// Update rewrites every mutable column, recomputing the point geometry
// from the submitted coordinates and refreshing updated_at. The
// existence check, write and re-read share one transaction.
func (r *IncidentRepository) Update(ctx context.Context, incident *models.Incident) (*models.Incident, error) {
	update := `
		UPDATE crime_incidents SET
			incident_code = $1,
			district_id = $2,
			crime_type_id = $3,
			address = $4,
			location = ST_SetSRID(ST_MakePoint($5, $6), 4326),
			incident_date = $7,
			incident_time = NULLIF($8, ''),
			severity = $9,
			description = NULLIF($10, ''),
			updated_at = NOW()
		WHERE id = $11;
	`

	var updated *models.Incident
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockIncident(ctx, tx, incident.ID); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, update,
			incident.IncidentCode,
			incident.DistrictID,
			incident.CrimeTypeID,
			incident.Address,
			incident.Longitude,
			incident.Latitude,
			incident.IncidentDate,
			incident.IncidentTime,
			incident.Severity,
			incident.Description,
			incident.ID,
		)
		if err != nil {
			return err
		}

		updated, err = getIncident(ctx, tx, incident.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) {
			return nil, err
		}
		if isUniqueViolation(err) {
			return nil, models.ErrDuplicateIncidentCode
		}
		return nil, fmt.Errorf("failed to update incident: %w", err)
	}
	return updated, nil
}

// Delete removes an incident, distinguishing "not found" from other
// failures. Check and delete share one transaction.
func (r *IncidentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockIncident(ctx, tx, id); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, "DELETE FROM crime_incidents WHERE id = $1;", id)
		return err
	})
	if err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete incident: %w", err)
	}
	return nil
}

// lockIncident verifies the row exists and locks it for the rest of
// the transaction.
func lockIncident(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	var exists bool
	err := tx.QueryRow(ctx, "SELECT true FROM crime_incidents WHERE id = $1 FOR UPDATE;", id).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrIncidentNotFound
		}
		return err
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

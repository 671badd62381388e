package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/siagakota/crimemap-api/internal/config"
	"github.com/siagakota/crimemap-api/internal/models"
	"github.com/siagakota/crimemap-api/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

// IncidentRepository is the persistence contract for crime incidents.
type IncidentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	List(ctx context.Context, search string) ([]*models.Incident, error)
	Search(ctx context.Context, f models.IncidentFilter) ([]*models.Incident, error)
	Create(ctx context.Context, incident *models.Incident) (*models.Incident, error)
	Update(ctx context.Context, incident *models.Incident) (*models.Incident, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DashboardCache is the cached-report contract shared by the incident
// and report services. Incident mutations invalidate; report reads go
// cache-through.
type DashboardCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context) error
}

// IncidentService is the business-logic contract for incident CRUD.
type IncidentService interface {
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, search string) ([]*models.Incident, error)
	SearchIncidents(ctx context.Context, f models.IncidentFilter) ([]*models.Incident, error)
	CreateIncident(ctx context.Context, incident *models.Incident) (*models.Incident, error)
	UpdateIncident(ctx context.Context, incident *models.Incident) (*models.Incident, error)
	DeleteIncident(ctx context.Context, id uuid.UUID) error
}

type incidentService struct {
	repo   IncidentRepository
	cache  DashboardCache
	alerts webhook.AlertPublisher
	logger *logrus.Logger
	cfg    *config.Config
}

func NewIncidentService(repo IncidentRepository, cache DashboardCache, alerts webhook.AlertPublisher, logger *logrus.Logger, cfg *config.Config) IncidentService {
	return &incidentService{
		repo:   repo,
		cache:  cache,
		alerts: alerts,
		logger: logger,
		cfg:    cfg,
	}
}

// withTimeout bounds every operation to one statement-timeout window.
func (s *incidentService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.QueryTimeout)
}

func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) {
			log.Warn("Incident not found")
			return nil, err
		}
		log.WithError(err).Error("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

func (s *incidentService) ListIncidents(ctx context.Context, search string) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
	})

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	incidents, err := s.repo.List(ctx, search)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

func (s *incidentService) SearchIncidents(ctx context.Context, f models.IncidentFilter) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "SearchIncidents",
	})

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	incidents, err := s.repo.Search(ctx, f)
	if err != nil {
		log.WithError(err).Error("Failed to search incidents in repository")
		return nil, fmt.Errorf("service: could not search incidents: %w", err)
	}
	return incidents, nil
}

// validateIncident rejects a mutation before any database round trip
// when a required field is missing.
func validateIncident(incident *models.Incident) error {
	switch {
	case incident.IncidentCode == "":
		return &models.ValidationError{Field: "incident_code"}
	case incident.DistrictID == 0:
		return &models.ValidationError{Field: "district_id"}
	case incident.CrimeTypeID == 0:
		return &models.ValidationError{Field: "crime_type_id"}
	case incident.Address == "":
		return &models.ValidationError{Field: "address"}
	case incident.IncidentDate.IsZero():
		return &models.ValidationError{Field: "incident_date"}
	}
	return nil
}

func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "incident",
		"method":        "CreateIncident",
		"incident_code": incident.IncidentCode,
	})

	if err := validateIncident(incident); err != nil {
		log.WithError(err).Warn("Incident rejected by validation")
		return nil, err
	}
	if incident.Severity == "" {
		incident.Severity = models.SeverityMedium
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	created, err := s.repo.Create(ctx, incident)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateIncidentCode) {
			log.Warn("Duplicate incident code")
			return nil, err
		}
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	s.invalidateDashboard(ctx, log)
	s.publishAlert(ctx, log, created)

	log.WithField("incident_id", created.ID).Info("Incident created successfully")
	return created, nil
}

func (s *incidentService) UpdateIncident(ctx context.Context, incident *models.Incident) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": incident.ID,
	})

	if err := validateIncident(incident); err != nil {
		log.WithError(err).Warn("Incident update rejected by validation")
		return nil, err
	}
	if incident.Severity == "" {
		incident.Severity = models.SeverityMedium
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	updated, err := s.repo.Update(ctx, incident)
	if err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) || errors.Is(err, models.ErrDuplicateIncidentCode) {
			log.WithError(err).Warn("Incident update refused")
			return nil, err
		}
		log.WithError(err).Error("Failed to update incident in repository")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	s.invalidateDashboard(ctx, log)

	log.Info("Incident updated successfully")
	return updated, nil
}

func (s *incidentService) DeleteIncident(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrIncidentNotFound) {
			log.Warn("Attempted to delete a non-existent incident")
			return err
		}
		log.WithError(err).Error("Failed to delete incident in repository")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}

	s.invalidateDashboard(ctx, log)

	log.Info("Incident deleted successfully")
	return nil
}

// invalidateDashboard drops cached dashboard reports after a mutation.
// Cache failures are logged, never surfaced: the write already
// succeeded.
func (s *incidentService) invalidateDashboard(ctx context.Context, log *logrus.Entry) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate dashboard cache")
	}
}

// publishAlert queues a webhook event for critical incidents. Queue
// failures are logged, never surfaced.
func (s *incidentService) publishAlert(ctx context.Context, log *logrus.Entry, incident *models.Incident) {
	if incident.Severity != models.SeverityCritical {
		return
	}

	event := webhook.IncidentAlertEvent{
		IncidentID:   incident.ID.String(),
		IncidentCode: incident.IncidentCode,
		DistrictName: incident.DistrictName,
		CrimeType:    incident.CrimeTypeName,
		Severity:     string(incident.Severity),
		Address:      incident.Address,
		Latitude:     incident.Latitude,
		Longitude:    incident.Longitude,
		IncidentDate: incident.IncidentDate,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.alerts.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish critical incident alert")
	}
}

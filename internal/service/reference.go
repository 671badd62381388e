package service

import (
	"context"
	"fmt"

	"github.com/siagakota/crimemap-api/internal/config"
	"github.com/siagakota/crimemap-api/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=reference.go -destination=mocks/mock_reference.go -package=mocks

// ReferenceRepository is the persistence contract for the reference
// data readers.
type ReferenceRepository interface {
	ListCrimeTypes(ctx context.Context) ([]models.CrimeType, error)
	ListCrimeTypeNames(ctx context.Context) ([]string, error)
	ListDistrictNames(ctx context.Context) ([]string, error)
	ListIncidentGeoPoints(ctx context.Context) ([]models.IncidentGeoPoint, error)
}

// ReferenceService feeds the UI dropdowns and the raw map listing.
type ReferenceService interface {
	CrimeTypes(ctx context.Context) ([]models.CrimeType, error)
	CrimeTypeNames(ctx context.Context) ([]string, error)
	DistrictNames(ctx context.Context) ([]string, error)
	IncidentGeoPoints(ctx context.Context) ([]models.IncidentGeoPoint, error)
}

type referenceService struct {
	repo   ReferenceRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewReferenceService(repo ReferenceRepository, logger *logrus.Logger, cfg *config.Config) ReferenceService {
	return &referenceService{repo: repo, logger: logger, cfg: cfg}
}

func (s *referenceService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.QueryTimeout)
}

func (s *referenceService) CrimeTypes(ctx context.Context) ([]models.CrimeType, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	types, err := s.repo.ListCrimeTypes(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list crime types")
		return nil, fmt.Errorf("service: could not list crime types: %w", err)
	}
	return types, nil
}

func (s *referenceService) CrimeTypeNames(ctx context.Context) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	names, err := s.repo.ListCrimeTypeNames(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list crime type names")
		return nil, fmt.Errorf("service: could not list crime type names: %w", err)
	}
	return names, nil
}

func (s *referenceService) DistrictNames(ctx context.Context) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	names, err := s.repo.ListDistrictNames(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list district names")
		return nil, fmt.Errorf("service: could not list district names: %w", err)
	}
	return names, nil
}

func (s *referenceService) IncidentGeoPoints(ctx context.Context) ([]models.IncidentGeoPoint, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	points, err := s.repo.ListIncidentGeoPoints(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list incident geometries")
		return nil, fmt.Errorf("service: could not list incident geometries: %w", err)
	}
	return points, nil
}

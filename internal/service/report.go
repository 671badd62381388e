package service

import (
	"context"
	"fmt"
	"math"

	"github.com/siagakota/crimemap-api/internal/config"
	"github.com/siagakota/crimemap-api/internal/models"
	"github.com/siagakota/crimemap-api/internal/repository"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks

// ReportRepository is the persistence contract for the dashboard
// aggregate queries.
type ReportRepository interface {
	DistrictStats(ctx context.Context) ([]models.DistrictStats, error)
	HotspotRows(ctx context.Context) ([]models.HotspotRow, error)
	TopCrimeTypes(ctx context.Context) ([]models.TopCrimeType, error)
	RecentIncidents(ctx context.Context) ([]models.RecentIncident, error)
}

// ReportService is the business-logic contract for dashboard reports.
type ReportService interface {
	DistrictStats(ctx context.Context) (*models.DistrictStatsReport, error)
	Hotspots(ctx context.Context) ([]models.Hotspot, error)
	TopCrimeTypes(ctx context.Context) ([]models.TopCrimeType, error)
	RecentIncidents(ctx context.Context) ([]models.RecentIncident, error)
}

type reportService struct {
	repo   ReportRepository
	cache  DashboardCache
	logger *logrus.Logger
	cfg    *config.Config
}

func NewReportService(repo ReportRepository, cache DashboardCache, logger *logrus.Logger, cfg *config.Config) ReportService {
	return &reportService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		cfg:    cfg,
	}
}

func (s *reportService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.QueryTimeout)
}

// cacheGet looks a report up in the cache; misses and cache errors both
// fall through to the database. Cache errors are logged only.
func (s *reportService) cacheGet(ctx context.Context, log *logrus.Entry, key string, dest any) bool {
	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		log.WithError(err).Warn("Dashboard cache read failed")
		return false
	}
	return hit
}

func (s *reportService) cacheSet(ctx context.Context, log *logrus.Entry, key string, value any) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		log.WithError(err).Warn("Dashboard cache write failed")
	}
}

// DistrictStats builds the per-district report: the repository returns
// the top 10 districts by total, districts with zero incidents are
// dropped (descending order preserved) and the summary block is
// computed over what remains.
func (s *reportService) DistrictStats(ctx context.Context) (*models.DistrictStatsReport, error) {
	log := s.logger.WithFields(logrus.Fields{"service": "report", "method": "DistrictStats"})

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var cached models.DistrictStatsReport
	if s.cacheGet(ctx, log, repository.CacheKeyDistrictStats, &cached) {
		return &cached, nil
	}

	rows, err := s.repo.DistrictStats(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to query district stats")
		return nil, fmt.Errorf("service: could not build district stats: %w", err)
	}

	report := buildDistrictStatsReport(rows)
	s.cacheSet(ctx, log, repository.CacheKeyDistrictStats, report)
	return report, nil
}

func buildDistrictStatsReport(rows []models.DistrictStats) *models.DistrictStatsReport {
	districts := make([]models.DistrictStats, 0, len(rows))
	summary := models.DistrictStatsSummary{}

	for _, row := range rows {
		if row.TotalIncidents == 0 {
			continue
		}
		districts = append(districts, row)
		summary.TotalIncidents += row.TotalIncidents
		summary.TotalCritical += row.CriticalCount
		summary.TotalLast30Days += row.Last30Days
	}

	summary.TotalDistricts = len(districts)
	divisor := summary.TotalDistricts
	if divisor == 0 {
		divisor = 1
	}
	summary.AvgPerDistrict = round2(float64(summary.TotalIncidents) / float64(divisor))

	return &models.DistrictStatsReport{Districts: districts, Summary: summary}
}

// Hotspots classifies each aggregate row's 30-day trend and returns the
// top trending districts.
func (s *reportService) Hotspots(ctx context.Context) ([]models.Hotspot, error) {
	log := s.logger.WithFields(logrus.Fields{"service": "report", "method": "Hotspots"})

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var cached []models.Hotspot
	if s.cacheGet(ctx, log, repository.CacheKeyHotspots, &cached) {
		return cached, nil
	}

	rows, err := s.repo.HotspotRows(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to query hotspots")
		return nil, fmt.Errorf("service: could not build hotspots: %w", err)
	}

	hotspots := make([]models.Hotspot, 0, len(rows))
	for _, row := range rows {
		hotspots = append(hotspots, models.Hotspot{
			DistrictID:   row.DistrictID,
			DistrictName: row.DistrictName,
			CaseCount:    row.CaseCount,
			AvgSeverity:  row.AvgSeverity,
			Trend:        classifyTrend(row.Recent30, row.Prior30),
		})
	}

	s.cacheSet(ctx, log, repository.CacheKeyHotspots, hotspots)
	return hotspots, nil
}

// classifyTrend compares the trailing 30-day count against the
// preceding 30-day window. Equal counts, including 0 vs 0, are
// stable.
func classifyTrend(recent, prior int) models.TrendDirection {
	switch {
	case recent > prior:
		return models.TrendUp
	case recent < prior:
		return models.TrendDown
	default:
		return models.TrendStable
	}
}

func (s *reportService) TopCrimeTypes(ctx context.Context) ([]models.TopCrimeType, error) {
	log := s.logger.WithFields(logrus.Fields{"service": "report", "method": "TopCrimeTypes"})

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var cached []models.TopCrimeType
	if s.cacheGet(ctx, log, repository.CacheKeyTopCrimeTypes, &cached) {
		return cached, nil
	}

	top, err := s.repo.TopCrimeTypes(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to query top crime types")
		return nil, fmt.Errorf("service: could not build top crime types: %w", err)
	}

	s.cacheSet(ctx, log, repository.CacheKeyTopCrimeTypes, top)
	return top, nil
}

func (s *reportService) RecentIncidents(ctx context.Context) ([]models.RecentIncident, error) {
	log := s.logger.WithFields(logrus.Fields{"service": "report", "method": "RecentIncidents"})

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var cached []models.RecentIncident
	if s.cacheGet(ctx, log, repository.CacheKeyRecentIncidents, &cached) {
		return cached, nil
	}

	recent, err := s.repo.RecentIncidents(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to query recent incidents")
		return nil, fmt.Errorf("service: could not build recent incidents: %w", err)
	}

	s.cacheSet(ctx, log, repository.CacheKeyRecentIncidents, recent)
	return recent, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

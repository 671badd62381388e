package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/siagakota/crimemap-api/internal/config"
	"github.com/siagakota/crimemap-api/internal/models"
	"github.com/siagakota/crimemap-api/internal/repository"
	"github.com/siagakota/crimemap-api/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReportService(t *testing.T) (ReportService, *mocks.MockReportRepository, *mocks.MockDashboardCache) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockReportRepository(ctrl)
	cacheMock := mocks.NewMockDashboardCache(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		QueryTimeout: 5 * time.Second,
	}

	svc := NewReportService(repoMock, cacheMock, logger, cfg)
	return svc, repoMock, cacheMock
}

func TestDistrictStats_CacheHit_SkipsRepository(t *testing.T) {
	svc, repoMock, cacheMock := newTestReportService(t)
	ctx := context.Background()
	cached := models.DistrictStatsReport{
		Districts: []models.DistrictStats{{DistrictID: 1, DistrictName: "Tampan", TotalIncidents: 12}},
		Summary:   models.DistrictStatsSummary{TotalDistricts: 1, TotalIncidents: 12, AvgPerDistrict: 12},
	}

	cacheMock.EXPECT().
		Get(gomock.Any(), repository.CacheKeyDistrictStats, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
			*dest.(*models.DistrictStatsReport) = cached
			return true, nil
		}).Times(1)
	repoMock.EXPECT().DistrictStats(gomock.Any()).Times(0)

	report, err := svc.DistrictStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, &cached, report)
}

func TestDistrictStats_DropsZeroDistricts(t *testing.T) {
	svc, repoMock, cacheMock := newTestReportService(t)
	ctx := context.Background()
	rows := []models.DistrictStats{
		{DistrictID: 1, DistrictName: "Tampan", TotalIncidents: 10, CriticalCount: 2, Last30Days: 4},
		{DistrictID: 2, DistrictName: "Rumbai", TotalIncidents: 0},
		{DistrictID: 3, DistrictName: "Sukajadi", TotalIncidents: 5, CriticalCount: 1, Last30Days: 1},
	}

	cacheMock.EXPECT().Get(gomock.Any(), repository.CacheKeyDistrictStats, gomock.Any()).Return(false, nil).Times(1)
	repoMock.EXPECT().DistrictStats(gomock.Any()).Return(rows, nil).Times(1)
	cacheMock.EXPECT().Set(gomock.Any(), repository.CacheKeyDistrictStats, gomock.Any()).Return(nil).Times(1)

	report, err := svc.DistrictStats(ctx)

	require.NoError(t, err)
	require.Len(t, report.Districts, 2)
	// Descending repository order survives the zero-row drop.
	assert.Equal(t, "Tampan", report.Districts[0].DistrictName)
	assert.Equal(t, "Sukajadi", report.Districts[1].DistrictName)
	assert.Equal(t, 2, report.Summary.TotalDistricts)
	assert.Equal(t, 15, report.Summary.TotalIncidents)
	assert.Equal(t, 3, report.Summary.TotalCritical)
	assert.Equal(t, 5, report.Summary.TotalLast30Days)
	assert.Equal(t, 7.5, report.Summary.AvgPerDistrict)
}

func TestDistrictStats_EmptyRows(t *testing.T) {
	svc, repoMock, cacheMock := newTestReportService(t)
	ctx := context.Background()

	cacheMock.EXPECT().Get(gomock.Any(), repository.CacheKeyDistrictStats, gomock.Any()).Return(false, nil).Times(1)
	repoMock.EXPECT().DistrictStats(gomock.Any()).Return(nil, nil).Times(1)
	cacheMock.EXPECT().Set(gomock.Any(), repository.CacheKeyDistrictStats, gomock.Any()).Return(nil).Times(1)

	report, err := svc.DistrictStats(ctx)

	require.NoError(t, err)
	assert.Empty(t, report.Districts)
	assert.Equal(t, 0, report.Summary.TotalDistricts)
	assert.Equal(t, 0.0, report.Summary.AvgPerDistrict)
}

func TestDistrictStats_CacheErrorFallsThrough(t *testing.T) {
	svc, repoMock, cacheMock := newTestReportService(t)
	ctx := context.Background()
	rows := []models.DistrictStats{{DistrictID: 1, DistrictName: "Tampan", TotalIncidents: 3}}

	cacheMock.EXPECT().Get(gomock.Any(), repository.CacheKeyDistrictStats, gomock.Any()).Return(false, errors.New("redis down")).Times(1)
	repoMock.EXPECT().DistrictStats(gomock.Any()).Return(rows, nil).Times(1)
	cacheMock.EXPECT().Set(gomock.Any(), repository.CacheKeyDistrictStats, gomock.Any()).Return(errors.New("redis down")).Times(1)

	report, err := svc.DistrictStats(ctx)

	require.NoError(t, err)
	require.Len(t, report.Districts, 1)
}

func TestHotspots_ClassifiesTrends(t *testing.T) {
	svc, repoMock, cacheMock := newTestReportService(t)
	ctx := context.Background()
	rows := []models.HotspotRow{
		{DistrictID: 1, DistrictName: "Tampan", CaseCount: 20, AvgSeverity: 2.5, Recent30: 8, Prior30: 3},
		{DistrictID: 2, DistrictName: "Rumbai", CaseCount: 15, AvgSeverity: 1.8, Recent30: 2, Prior30: 6},
		{DistrictID: 3, DistrictName: "Sukajadi", CaseCount: 10, AvgSeverity: 2.0, Recent30: 0, Prior30: 0},
	}

	cacheMock.EXPECT().Get(gomock.Any(), repository.CacheKeyHotspots, gomock.Any()).Return(false, nil).Times(1)
	repoMock.EXPECT().HotspotRows(gomock.Any()).Return(rows, nil).Times(1)
	cacheMock.EXPECT().Set(gomock.Any(), repository.CacheKeyHotspots, gomock.Any()).Return(nil).Times(1)

	hotspots, err := svc.Hotspots(ctx)

	require.NoError(t, err)
	require.Len(t, hotspots, 3)
	assert.Equal(t, models.TrendUp, hotspots[0].Trend)
	assert.Equal(t, models.TrendDown, hotspots[1].Trend)
	assert.Equal(t, models.TrendStable, hotspots[2].Trend)
	assert.Equal(t, "Tampan", hotspots[0].DistrictName)
	assert.Equal(t, 20, hotspots[0].CaseCount)
}

func TestHotspots_RepositoryError(t *testing.T) {
	svc, repoMock, cacheMock := newTestReportService(t)
	ctx := context.Background()

	cacheMock.EXPECT().Get(gomock.Any(), repository.CacheKeyHotspots, gomock.Any()).Return(false, nil).Times(1)
	repoMock.EXPECT().HotspotRows(gomock.Any()).Return(nil, errors.New("query failed")).Times(1)

	hotspots, err := svc.Hotspots(ctx)

	require.Error(t, err)
	assert.Nil(t, hotspots)
	assert.ErrorContains(t, err, "could not build hotspots")
}

func TestTopCrimeTypes_CacheHit(t *testing.T) {
	svc, repoMock, cacheMock := newTestReportService(t)
	ctx := context.Background()
	cached := []models.TopCrimeType{{Name: "Pencurian", Count: 40, Percentage: 57.1}}

	cacheMock.EXPECT().
		Get(gomock.Any(), repository.CacheKeyTopCrimeTypes, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
			*dest.(*[]models.TopCrimeType) = cached
			return true, nil
		}).Times(1)
	repoMock.EXPECT().TopCrimeTypes(gomock.Any()).Times(0)

	top, err := svc.TopCrimeTypes(ctx)

	require.NoError(t, err)
	assert.Equal(t, cached, top)
}

func TestRecentIncidents_CacheMiss(t *testing.T) {
	svc, repoMock, cacheMock := newTestReportService(t)
	ctx := context.Background()
	recent := []models.RecentIncident{
		{ID: "a", Title: "CR-2024-001", Location: "Jl. Sudirman", Type: "Pencurian", Severity: models.SeverityHigh},
	}

	cacheMock.EXPECT().Get(gomock.Any(), repository.CacheKeyRecentIncidents, gomock.Any()).Return(false, nil).Times(1)
	repoMock.EXPECT().RecentIncidents(gomock.Any()).Return(recent, nil).Times(1)
	cacheMock.EXPECT().Set(gomock.Any(), repository.CacheKeyRecentIncidents, recent).Return(nil).Times(1)

	got, err := svc.RecentIncidents(ctx)

	require.NoError(t, err)
	assert.Equal(t, recent, got)
}

func TestClassifyTrend(t *testing.T) {
	assert.Equal(t, models.TrendUp, classifyTrend(5, 2))
	assert.Equal(t, models.TrendDown, classifyTrend(2, 5))
	assert.Equal(t, models.TrendStable, classifyTrend(3, 3))
	assert.Equal(t, models.TrendStable, classifyTrend(0, 0))
}

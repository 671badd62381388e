package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/siagakota/crimemap-api/internal/config"
	"github.com/siagakota/crimemap-api/internal/models"
	"github.com/siagakota/crimemap-api/internal/service/mocks"
	"github.com/siagakota/crimemap-api/internal/webhook"
	webhook_mocks "github.com/siagakota/crimemap-api/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService builds the service with mocked collaborators.
func newTestIncidentService(t *testing.T) (IncidentService, *mocks.MockIncidentRepository, *mocks.MockDashboardCache, *webhook_mocks.MockAlertPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	cacheMock := mocks.NewMockDashboardCache(ctrl)
	alertsMock := webhook_mocks.NewMockAlertPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // silence logs in tests

	cfg := &config.Config{
		QueryTimeout: 5 * time.Second,
	}

	svc := NewIncidentService(repoMock, cacheMock, alertsMock, logger, cfg)
	return svc, repoMock, cacheMock, alertsMock
}

func validIncident() *models.Incident {
	return &models.Incident{
		IncidentCode: "CR-2024-001",
		DistrictID:   1,
		CrimeTypeID:  2,
		Address:      "Jl. Sudirman No. 10",
		Latitude:     0.507,
		Longitude:    101.447,
		IncidentDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateIncident_Success_DefaultsSeverity(t *testing.T) {
	svc, repoMock, cacheMock, alertsMock := newTestIncidentService(t)
	ctx := context.Background()
	input := validIncident()

	repoMock.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) (*models.Incident, error) {
			// Severity must be defaulted before the repository sees it.
			assert.Equal(t, models.SeverityMedium, inc.Severity)
			created := *inc
			created.ID = uuid.New()
			return &created, nil
		}).Times(1)
	cacheMock.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)
	alertsMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	created, err := svc.CreateIncident(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, models.SeverityMedium, created.Severity)
}

func TestCreateIncident_Critical_PublishesAlert(t *testing.T) {
	svc, repoMock, cacheMock, alertsMock := newTestIncidentService(t)
	ctx := context.Background()
	input := validIncident()
	input.Severity = models.SeverityCritical

	incidentID := uuid.New()
	repoMock.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) (*models.Incident, error) {
			created := *inc
			created.ID = incidentID
			created.DistrictName = "Tampan"
			created.CrimeTypeName = "Perampokan"
			return &created, nil
		}).Times(1)
	cacheMock.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)
	alertsMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event webhook.IncidentAlertEvent) {
			assert.Equal(t, incidentID.String(), event.IncidentID)
			assert.Equal(t, "CRITICAL", event.Severity)
			assert.Equal(t, "Tampan", event.DistrictName)
		}).Return(nil).Times(1)

	created, err := svc.CreateIncident(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, incidentID, created.ID)
}

func TestCreateIncident_AlertFailureIsNotFatal(t *testing.T) {
	svc, repoMock, cacheMock, alertsMock := newTestIncidentService(t)
	ctx := context.Background()
	input := validIncident()
	input.Severity = models.SeverityCritical

	repoMock.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) (*models.Incident, error) {
			created := *inc
			created.ID = uuid.New()
			return &created, nil
		}).Times(1)
	cacheMock.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down")).Times(1)
	alertsMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("queue full")).Times(1)

	created, err := svc.CreateIncident(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, created)
}

func TestCreateIncident_ValidationError_SkipsRepository(t *testing.T) {
	svc, repoMock, cacheMock, alertsMock := newTestIncidentService(t)
	ctx := context.Background()
	input := validIncident()
	input.Address = ""

	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	cacheMock.EXPECT().Invalidate(gomock.Any()).Times(0)
	alertsMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	created, err := svc.CreateIncident(ctx, input)

	require.Error(t, err)
	assert.Nil(t, created)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "address", validationErr.Field)
}

func TestCreateIncident_DuplicateCode(t *testing.T) {
	svc, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	input := validIncident()

	repoMock.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrDuplicateIncidentCode).
		Times(1)

	created, err := svc.CreateIncident(ctx, input)

	require.Error(t, err)
	assert.Nil(t, created)
	assert.ErrorIs(t, err, models.ErrDuplicateIncidentCode)
}

func TestGetIncident_Success(t *testing.T) {
	svc, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expected := validIncident()
	expected.ID = incidentID

	repoMock.EXPECT().GetByID(gomock.Any(), incidentID).Return(expected, nil).Times(1)

	incident, err := svc.GetIncident(ctx, incidentID)

	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	svc, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	repoMock.EXPECT().GetByID(gomock.Any(), incidentID).Return(nil, models.ErrIncidentNotFound).Times(1)

	incident, err := svc.GetIncident(ctx, incidentID)

	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, models.ErrIncidentNotFound)
}

func TestUpdateIncident_Success_InvalidatesCache(t *testing.T) {
	svc, repoMock, cacheMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	input := validIncident()
	input.ID = uuid.New()
	input.Severity = models.SeverityHigh

	repoMock.EXPECT().
		Update(gomock.Any(), input).
		Return(input, nil).
		Times(1)
	cacheMock.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

	updated, err := svc.UpdateIncident(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input, updated)
}

func TestUpdateIncident_NotFound(t *testing.T) {
	svc, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	input := validIncident()
	input.ID = uuid.New()

	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, models.ErrIncidentNotFound).Times(1)

	updated, err := svc.UpdateIncident(ctx, input)

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, models.ErrIncidentNotFound)
}

func TestDeleteIncident_Success_InvalidatesCache(t *testing.T) {
	svc, repoMock, cacheMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	repoMock.EXPECT().Delete(gomock.Any(), incidentID).Return(nil).Times(1)
	cacheMock.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

	err := svc.DeleteIncident(ctx, incidentID)

	require.NoError(t, err)
}

func TestDeleteIncident_NotFound(t *testing.T) {
	svc, repoMock, cacheMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	repoMock.EXPECT().Delete(gomock.Any(), incidentID).Return(models.ErrIncidentNotFound).Times(1)
	cacheMock.EXPECT().Invalidate(gomock.Any()).Times(0)

	err := svc.DeleteIncident(ctx, incidentID)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrIncidentNotFound)
}

func TestSearchIncidents_Success(t *testing.T) {
	svc, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	filter := models.IncidentFilter{District: "Sukajadi", Severity: "HIGH"}
	expected := []*models.Incident{validIncident()}

	repoMock.EXPECT().Search(gomock.Any(), filter).Return(expected, nil).Times(1)

	incidents, err := svc.SearchIncidents(ctx, filter)

	require.NoError(t, err)
	assert.Equal(t, expected, incidents)
}

func TestListIncidents_RepositoryError(t *testing.T) {
	svc, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().List(gomock.Any(), "").Return(nil, errors.New("connection refused")).Times(1)

	incidents, err := svc.ListIncidents(ctx, "")

	require.Error(t, err)
	assert.Nil(t, incidents)
	assert.ErrorContains(t, err, "could not list incidents")
}

func TestValidateIncident_FieldOrder(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.Incident)
		wantField string
	}{
		{"missing code", func(i *models.Incident) { i.IncidentCode = "" }, "incident_code"},
		{"missing district", func(i *models.Incident) { i.DistrictID = 0 }, "district_id"},
		{"missing crime type", func(i *models.Incident) { i.CrimeTypeID = 0 }, "crime_type_id"},
		{"missing address", func(i *models.Incident) { i.Address = "" }, "address"},
		{"missing date", func(i *models.Incident) { i.IncidentDate = time.Time{} }, "incident_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			incident := validIncident()
			tt.mutate(incident)

			err := validateIncident(incident)

			var validationErr *models.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

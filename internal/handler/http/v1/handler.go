package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/siagakota/crimemap-api/internal/config"
	"github.com/siagakota/crimemap-api/internal/models"
	"github.com/siagakota/crimemap-api/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService  service.IncidentService
	reportService    service.ReportService
	referenceService service.ReferenceService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(incidentService service.IncidentService, reportService service.ReportService, referenceService service.ReferenceService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService:  incidentService,
		reportService:    reportService,
		referenceService: referenceService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// respondError translates the error taxonomy into HTTP statuses:
// validation 400, not found 404, duplicate code 409, everything else
// 500 with a details string for diagnostics.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, models.ErrIncidentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
	case errors.Is(err, models.ErrDuplicateIncidentCode):
		c.JSON(http.StatusConflict, gin.H{"error": "incident code already exists"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "details": err.Error()})
	}
}

// @Summary Filtered incident search
// @Description Search incidents by free text, district, crime type and severity. Results are capped to 100 rows.
// @Tags CrimeData
// @Produce json
// @Param search query string false "Free-text search over address and incident code"
// @Param district query string false "District name or 'all'"
// @Param crime_type query string false "Crime type name or 'all'"
// @Param severity query string false "Severity level or 'all'"
// @Success 200 {object} CrimeDataResponse
// @Failure 500 {object} map[string]string
// @Router /crime-data [get]
func (h *Handler) getCrimeData(c *gin.Context) {
	log := h.logger.WithField("method", "getCrimeData")

	filter := models.IncidentFilter{
		Search:    c.Query("search"),
		District:  c.Query("district"),
		CrimeType: c.Query("crime_type"),
		Severity:  c.Query("severity"),
	}

	incidents, err := h.incidentService.SearchIncidents(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	data := incidentsToResponses(incidents)
	c.JSON(http.StatusOK, CrimeDataResponse{Data: data, Total: len(data)})
}

// @Summary List incidents
// @Description List incidents, optionally narrowed by free-text search, newest first.
// @Tags Incidents
// @Produce json
// @Param search query string false "Free-text search over address and incident code"
// @Success 200 {array} IncidentResponse
// @Failure 500 {object} map[string]string
// @Router /crime-incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, incidentsToResponses(incidents))
}

// @Summary Create an incident
// @Description Create a new crime incident. The point geometry is built from location.lng/location.lat.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body IncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /crime-incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	log := h.logger.WithField("method", "createIncident")

	var input IncidentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := requestToIncident(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.incidentService.CreateIncident(c.Request.Context(), incident)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, incidentToResponse(created))
}

// @Summary Get incident by ID
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /crime-incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, incidentToResponse(incident))
}

// @Summary Update an incident
// @Description Full update. Geometry is recomputed from the submitted coordinates unconditionally.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param incident body IncidentRequest true "Incident update request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /crime-incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	var input IncidentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := requestToIncident(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	incident.ID = id

	updated, err := h.incidentService.UpdateIncident(c.Request.Context(), incident)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, incidentToResponse(updated))
}

// @Summary Delete an incident
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /crime-incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.incidentService.DeleteIncident(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "incident deleted successfully"})
}

// @Summary Distinct crime type names
// @Tags Reference
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} map[string]string
// @Router /crime-types [get]
func (h *Handler) getCrimeTypeNames(c *gin.Context) {
	log := h.logger.WithField("method", "getCrimeTypeNames")

	names, err := h.referenceService.CrimeTypeNames(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// @Summary Crime type catalogue
// @Tags Reference
// @Produce json
// @Success 200 {array} models.CrimeType
// @Failure 500 {object} map[string]string
// @Router /types [get]
func (h *Handler) getCrimeTypes(c *gin.Context) {
	log := h.logger.WithField("method", "getCrimeTypes")

	types, err := h.referenceService.CrimeTypes(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// @Summary Distinct district names
// @Tags Reference
// @Produce json
// @Success 200 {array} DistrictResponse
// @Failure 500 {object} map[string]string
// @Router /districts [get]
func (h *Handler) getDistricts(c *gin.Context) {
	log := h.logger.WithField("method", "getDistricts")

	names, err := h.referenceService.DistrictNames(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	districts := make([]DistrictResponse, len(names))
	for i, name := range names {
		districts[i] = DistrictResponse{District: name}
	}
	c.JSON(http.StatusOK, districts)
}

// @Summary Per-district statistics
// @Description Top districts by incident count with severity buckets, 30-day counts and a summary block.
// @Tags Reports
// @Produce json
// @Success 200 {object} models.DistrictStatsReport
// @Failure 500 {object} map[string]string
// @Router /district-stats [get]
func (h *Handler) getDistrictStats(c *gin.Context) {
	log := h.logger.WithField("method", "getDistrictStats")

	report, err := h.reportService.DistrictStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Top trending districts
// @Description Top 6 districts by case count with a 30-day trend classification.
// @Tags Reports
// @Produce json
// @Success 200 {array} models.Hotspot
// @Failure 500 {object} map[string]string
// @Router /hotspots [get]
func (h *Handler) getHotspots(c *gin.Context) {
	log := h.logger.WithField("method", "getHotspots")

	hotspots, err := h.reportService.Hotspots(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, hotspots)
}

// @Summary Top crime types
// @Description Top 5 crime types with their share of all incidents.
// @Tags Reports
// @Produce json
// @Success 200 {array} models.TopCrimeType
// @Failure 500 {object} map[string]string
// @Router /top-crime-types [get]
func (h *Handler) getTopCrimeTypes(c *gin.Context) {
	log := h.logger.WithField("method", "getTopCrimeTypes")

	top, err := h.reportService.TopCrimeTypes(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, top)
}

// @Summary Latest incidents
// @Description The 5 most recent incidents in a reduced projection.
// @Tags Reports
// @Produce json
// @Success 200 {array} RecentIncidentResponse
// @Failure 500 {object} map[string]string
// @Router /recent-incidents [get]
func (h *Handler) getRecentIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "getRecentIncidents")

	recent, err := h.reportService.RecentIncidents(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, recentToResponses(recent))
}

// @Summary Raw incident listing
// @Description Every incident with its point geometry as a GeoJSON object, for map rendering.
// @Tags Reports
// @Produce json
// @Success 200 {array} IncidentGeoResponse
// @Failure 500 {object} map[string]string
// @Router /incidents [get]
func (h *Handler) getIncidentGeoPoints(c *gin.Context) {
	log := h.logger.WithField("method", "getIncidentGeoPoints")

	points, err := h.referenceService.IncidentGeoPoints(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, geoPointsToResponses(points))
}

// @Summary Get application health status
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

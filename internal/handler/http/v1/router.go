package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes. Mutating incident routes
// sit behind the API-key middleware.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	api.GET("/crime-data", h.getCrimeData)

	incidents := api.Group("/crime-incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("", auth, h.createIncident)
		incidents.PUT("/:id", auth, h.updateIncident)
		incidents.DELETE("/:id", auth, h.deleteIncident)
	}

	// Reference data for UI dropdowns
	api.GET("/crime-types", h.getCrimeTypeNames)
	api.GET("/types", h.getCrimeTypes)
	api.GET("/districts", h.getDistricts)

	// Dashboard reports
	api.GET("/district-stats", h.getDistrictStats)
	api.GET("/hotspots", h.getHotspots)
	api.GET("/top-crime-types", h.getTopCrimeTypes)
	api.GET("/recent-incidents", h.getRecentIncidents)
	api.GET("/incidents", h.getIncidentGeoPoints)

	api.GET("/system/health", h.healthCheck)
}

package v1

import (
	"fmt"
	"time"

	"github.com/siagakota/crimemap-api/internal/models"
)

// requestToIncident converts a validated request into the domain
// model, parsing the incident date.
func requestToIncident(req IncidentRequest) (*models.Incident, error) {
	date, err := time.Parse(dateFormat, req.IncidentDate)
	if err != nil {
		return nil, fmt.Errorf("invalid incident_date %q, expected YYYY-MM-DD", req.IncidentDate)
	}

	return &models.Incident{
		IncidentCode: req.IncidentCode,
		DistrictID:   req.DistrictID,
		CrimeTypeID:  req.CrimeTypeID,
		Address:      req.Address,
		Latitude:     *req.Location.Lat,
		Longitude:    *req.Location.Lng,
		IncidentDate: date,
		IncidentTime: req.IncidentTime,
		Severity:     models.Severity(req.Severity),
		Description:  req.Description,
	}, nil
}

func incidentToResponse(incident *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:            incident.ID.String(),
		IncidentCode:  incident.IncidentCode,
		DistrictID:    incident.DistrictID,
		DistrictName:  incident.DistrictName,
		CrimeTypeID:   incident.CrimeTypeID,
		CrimeTypeName: incident.CrimeTypeName,
		Address:       incident.Address,
		Lat:           incident.Latitude,
		Lng:           incident.Longitude,
		IncidentDate:  incident.IncidentDate.Format(dateFormat),
		IncidentTime:  incident.IncidentTime,
		Severity:      string(incident.Severity),
		Description:   incident.Description,
		CreatedAt:     incident.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     incident.UpdatedAt.Format(time.RFC3339),
	}
}

func incidentsToResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = incidentToResponse(incident)
	}
	return responses
}

func recentToResponses(recent []models.RecentIncident) []RecentIncidentResponse {
	responses := make([]RecentIncidentResponse, len(recent))
	for i, r := range recent {
		responses[i] = RecentIncidentResponse{
			ID:       r.ID,
			Title:    r.Title,
			Location: r.Location,
			Date:     r.Date.Format(dateFormat),
			Type:     r.Type,
			Severity: string(r.Severity),
		}
	}
	return responses
}

func geoPointsToResponses(points []models.IncidentGeoPoint) []IncidentGeoResponse {
	responses := make([]IncidentGeoResponse, len(points))
	for i, p := range points {
		responses[i] = IncidentGeoResponse{
			ID:           p.ID,
			IncidentCode: p.IncidentCode,
			DistrictName: p.DistrictName,
			Address:      p.Address,
			Severity:     string(p.Severity),
			Location:     p.Location,
		}
	}
	return responses
}

// Package importer loads district (kecamatan) boundaries from a
// GeoJSON feature collection into the districts table. It is a one-shot
// batch job: strictly sequential, idempotent on the district primary
// key, aborting entirely on the first error.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/siagakota/crimemap-api/internal/models"
	"github.com/sirupsen/logrus"
)

// DistrictWriter is the slice of the reference repository the importer
// needs.
type DistrictWriter interface {
	InsertDistrict(ctx context.Context, d *models.District, geometry json.RawMessage) (bool, error)
}

// Stats summarizes one importer run.
type Stats struct {
	Inserted int
	Skipped  int
}

type Importer struct {
	repo   DistrictWriter
	logger *logrus.Logger
}

func New(repo DistrictWriter, logger *logrus.Logger) *Importer {
	return &Importer{repo: repo, logger: logger}
}

// Run iterates the feature collection once, inserting each feature as
// a district row. Existing rows are skipped, never overwritten.
func (im *Importer) Run(ctx context.Context, fc *models.FeatureCollection) (Stats, error) {
	var stats Stats

	for i, feature := range fc.Features {
		district, err := districtFromFeature(feature)
		if err != nil {
			return stats, fmt.Errorf("feature %d: %w", i, err)
		}

		inserted, err := im.repo.InsertDistrict(ctx, district, feature.Geometry)
		if err != nil {
			return stats, fmt.Errorf("feature %d (%s): %w", i, district.Name, err)
		}

		if inserted {
			stats.Inserted++
			im.logger.WithFields(logrus.Fields{
				"district_id": district.ID,
				"name":        district.Name,
			}).Info("District imported")
		} else {
			stats.Skipped++
			im.logger.WithField("district_id", district.ID).Debug("District already present, skipped")
		}
	}

	return stats, nil
}

func districtFromFeature(f models.Feature) (*models.District, error) {
	if len(f.Geometry) == 0 {
		return nil, fmt.Errorf("feature has no geometry")
	}

	id := propInt(f.Properties, "id")
	if id == 0 {
		return nil, fmt.Errorf("feature has no usable id property")
	}
	name := propString(f.Properties, "name")
	if name == "" {
		return nil, fmt.Errorf("feature %d has no name property", id)
	}

	return &models.District{
		ID:                id,
		Name:              name,
		MalePopulation:    propInt(f.Properties, "male_population"),
		FemalePopulation:  propInt(f.Properties, "female_population"),
		TotalPopulation:   propInt(f.Properties, "total_population"),
		PopulationDensity: propFloat(f.Properties, "population_density"),
		LandArea:          propFloat(f.Properties, "land_area"),
		CrimeCount:        propInt(f.Properties, "crime_count"),
		CrimeRate:         propFloat(f.Properties, "crime_rate"),
		Color:             propString(f.Properties, "color"),
	}, nil
}

func propString(props map[string]any, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}

// propFloat coerces a numeric or numeric-looking string property to a
// float, falling back to 0 when absent or unparseable.
func propFloat(props map[string]any, key string) float64 {
	switch v := props[key].(type) {
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}

func propInt(props map[string]any, key string) int64 {
	return int64(propFloat(props, key))
}

package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/siagakota/crimemap-api/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDistrictWriter struct {
	existing map[int64]bool
	inserted []*models.District
	failOn   string
}

func (f *fakeDistrictWriter) InsertDistrict(_ context.Context, d *models.District, _ json.RawMessage) (bool, error) {
	if f.failOn != "" && d.Name == f.failOn {
		return false, errors.New("insert failed")
	}
	if f.existing[d.ID] {
		return false, nil
	}
	f.inserted = append(f.inserted, d)
	return true, nil
}

func newTestImporter(writer *fakeDistrictWriter) *Importer {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return New(writer, logger)
}

func polygon() json.RawMessage {
	return json.RawMessage(`{"type":"MultiPolygon","coordinates":[[[[101.4,0.5],[101.5,0.5],[101.5,0.6],[101.4,0.5]]]]}`)
}

func feature(id float64, name string, extra map[string]any) models.Feature {
	props := map[string]any{"id": id, "name": name}
	for k, v := range extra {
		props[k] = v
	}
	return models.Feature{Properties: props, Geometry: polygon()}
}

func TestRun_InsertsAllFeatures(t *testing.T) {
	writer := &fakeDistrictWriter{}
	im := newTestImporter(writer)

	fc := &models.FeatureCollection{
		Features: []models.Feature{
			feature(1, "Tampan", map[string]any{
				"total_population":   "269062",
				"population_density": 4521.3,
				"land_area":          "59.81",
				"crime_count":        42.0,
				"color":              "#ff0000",
			}),
			feature(2, "Sukajadi", nil),
		},
	}

	stats, err := im.Run(context.Background(), fc)

	require.NoError(t, err)
	assert.Equal(t, Stats{Inserted: 2, Skipped: 0}, stats)
	require.Len(t, writer.inserted, 2)

	first := writer.inserted[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "Tampan", first.Name)
	// Numeric-looking string properties are coerced.
	assert.Equal(t, int64(269062), first.TotalPopulation)
	assert.Equal(t, 4521.3, first.PopulationDensity)
	assert.Equal(t, 59.81, first.LandArea)
	assert.Equal(t, int64(42), first.CrimeCount)
	assert.Equal(t, "#ff0000", first.Color)
}

func TestRun_SkipsExistingDistricts(t *testing.T) {
	writer := &fakeDistrictWriter{existing: map[int64]bool{1: true}}
	im := newTestImporter(writer)

	fc := &models.FeatureCollection{
		Features: []models.Feature{
			feature(1, "Tampan", nil),
			feature(2, "Sukajadi", nil),
		},
	}

	stats, err := im.Run(context.Background(), fc)

	require.NoError(t, err)
	assert.Equal(t, Stats{Inserted: 1, Skipped: 1}, stats)
}

func TestRun_AbortsOnFirstError(t *testing.T) {
	writer := &fakeDistrictWriter{failOn: "Sukajadi"}
	im := newTestImporter(writer)

	fc := &models.FeatureCollection{
		Features: []models.Feature{
			feature(1, "Tampan", nil),
			feature(2, "Sukajadi", nil),
			feature(3, "Rumbai", nil),
		},
	}

	stats, err := im.Run(context.Background(), fc)

	require.Error(t, err)
	assert.ErrorContains(t, err, "feature 1 (Sukajadi)")
	// The third feature is never attempted.
	assert.Equal(t, Stats{Inserted: 1, Skipped: 0}, stats)
	require.Len(t, writer.inserted, 1)
}

func TestRun_RejectsFeatureWithoutGeometry(t *testing.T) {
	writer := &fakeDistrictWriter{}
	im := newTestImporter(writer)

	fc := &models.FeatureCollection{
		Features: []models.Feature{
			{Properties: map[string]any{"id": 1.0, "name": "Tampan"}},
		},
	}

	_, err := im.Run(context.Background(), fc)

	require.Error(t, err)
	assert.ErrorContains(t, err, "no geometry")
}

func TestRun_RejectsFeatureWithoutID(t *testing.T) {
	writer := &fakeDistrictWriter{}
	im := newTestImporter(writer)

	fc := &models.FeatureCollection{
		Features: []models.Feature{
			{Properties: map[string]any{"name": "Tampan"}, Geometry: polygon()},
		},
	}

	_, err := im.Run(context.Background(), fc)

	require.Error(t, err)
	assert.ErrorContains(t, err, "no usable id")
}

func TestRun_RejectsFeatureWithoutName(t *testing.T) {
	writer := &fakeDistrictWriter{}
	im := newTestImporter(writer)

	fc := &models.FeatureCollection{
		Features: []models.Feature{
			{Properties: map[string]any{"id": 7.0}, Geometry: polygon()},
		},
	}

	_, err := im.Run(context.Background(), fc)

	require.Error(t, err)
	assert.ErrorContains(t, err, "no name property")
}

func TestPropFloat_Coercions(t *testing.T) {
	props := map[string]any{
		"number": 12.5,
		"string": "3.25",
		"junk":   "not-a-number",
		"bool":   true,
	}

	assert.Equal(t, 12.5, propFloat(props, "number"))
	assert.Equal(t, 3.25, propFloat(props, "string"))
	assert.Equal(t, 0.0, propFloat(props, "junk"))
	assert.Equal(t, 0.0, propFloat(props, "bool"))
	assert.Equal(t, 0.0, propFloat(props, "missing"))
}

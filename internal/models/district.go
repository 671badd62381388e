package models

// District is a kecamatan-level administrative area. Rows are created
// once by the boundary importer and are read-only afterwards; the
// geometry column holds a MultiPolygon in SRID 4326.
type District struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	MalePopulation    int64   `json:"male_population"`
	FemalePopulation  int64   `json:"female_population"`
	TotalPopulation   int64   `json:"total_population"`
	PopulationDensity float64 `json:"population_density"`
	LandArea          float64 `json:"land_area"`
	CrimeCount        int64   `json:"crime_count"`
	CrimeRate         float64 `json:"crime_rate"`
	Color             string  `json:"color,omitempty"`
}

// CrimeType is a crime category. Pre-seeded, read-only here.
type CrimeType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

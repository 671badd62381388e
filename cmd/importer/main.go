package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/siagakota/crimemap-api/internal/config"
	"github.com/siagakota/crimemap-api/internal/importer"
	"github.com/siagakota/crimemap-api/internal/models"
	"github.com/siagakota/crimemap-api/internal/repository"
	"github.com/siagakota/crimemap-api/pkg/logger"
	"github.com/siagakota/crimemap-api/pkg/postgres"
	"github.com/sirupsen/logrus"
)

// One-shot batch job: loads a district boundary GeoJSON file into the
// districts table. Safe to re-run, existing districts are skipped.
func main() {
	file := flag.String("file", "data/kecamatan.geojson", "path to the district boundary GeoJSON file")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read GeoJSON file %s: %v", *file, err)
	}

	var fc models.FeatureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		log.Fatalf("Failed to parse GeoJSON file %s: %v", *file, err)
	}

	ctx := context.Background()

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()

	repo := repository.NewReferenceRepository(dbpool)

	stats, err := importer.New(repo, log).Run(ctx, &fc)
	if err != nil {
		log.Fatalf("Import aborted: %v", err)
	}

	log.WithFields(logrus.Fields{
		"inserted": stats.Inserted,
		"skipped":  stats.Skipped,
	}).Info("District import finished")
}

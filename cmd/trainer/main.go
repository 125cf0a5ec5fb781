package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/kidusshoa/recommendation-service/internal/config"
	"github.com/kidusshoa/recommendation-service/internal/db"
	"github.com/kidusshoa/recommendation-service/internal/ingest"
	"github.com/kidusshoa/recommendation-service/internal/recommender"
)

// trainer: entrenamiento batch por línea de comandos. Ingesta, entrena,
// persiste el artefacto y termina; el servicio API lo levanta en caliente.
func main() {
	sourceFlag := flag.String("source", "", "fuente de datos: mongo | csv (default: configurada)")
	flag.Parse()

	cfg := config.Load()

	sourceName := *sourceFlag
	if sourceName == "" {
		sourceName = cfg.DataSource
	}

	var src ingest.Source
	switch sourceName {
	case "csv":
		src = ingest.NewCSVSource(cfg.DataDir)
	case "mongo":
		db.InitMongo(cfg)
		src = ingest.NewMongoSource(cfg)
	default:
		log.Fatalf("[trainer] fuente desconocida: %q", sourceName)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	ds, err := ingest.Fetch(ctx, src)
	if err != nil {
		log.Fatalf("[trainer] ingesta desde %s falló: %v", src.Name(), err)
	}

	manager := recommender.NewManager(cfg.ModelDir, recommender.DefaultCollabConfig(
		cfg.LatentFactors, cfg.TrainEpochs, cfg.TrainSeed,
	))

	pair, err := manager.Fit(ds, func(phase string) {
		log.Printf("[trainer] %s", phase)
	})
	if err != nil {
		log.Fatalf("[trainer] fit falló: %v", err)
	}

	log.Printf("[trainer] modelo %s persistido en %s", pair.Version, cfg.ModelDir)
}

package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/kidusshoa/recommendation-service/internal/config"
	"github.com/kidusshoa/recommendation-service/internal/db"
	"github.com/kidusshoa/recommendation-service/internal/ingest"
	"github.com/kidusshoa/recommendation-service/internal/models"
	"github.com/kidusshoa/recommendation-service/internal/recommender"
)

// TrainService orquesta el retrain: elige la fuente, ingesta, entrena vía
// el Manager y responde estado. El retrain siempre llega de afuera
// (webhook o admin); acá no hay ningún timer.
type TrainService struct {
	cfg     *config.Config
	manager *recommender.Manager
	sources map[string]ingest.Source

	// true después de la primera ingesta exitosa en este proceso
	datasetOK atomic.Bool
}

func NewTrainService(cfg *config.Config, manager *recommender.Manager, sources ...ingest.Source) *TrainService {
	m := make(map[string]ingest.Source, len(sources))
	for _, s := range sources {
		m[s.Name()] = s
	}
	return &TrainService{cfg: cfg, manager: manager, sources: m}
}

// Retrain ingesta desde la fuente pedida (o la configurada) y entrena.
// Si la fuente primaria falla se intenta la alternativa configurada; el
// error se devuelve solo cuando fallan todas. onProgress es opcional.
func (s *TrainService) Retrain(ctx context.Context, sourceName string, onProgress func(string)) (*models.TrainingResponse, error) {
	if sourceName == "" {
		sourceName = s.cfg.DataSource
	}
	primary, ok := s.sources[sourceName]
	if !ok {
		return nil, fmt.Errorf("fuente desconocida: %q", sourceName)
	}

	report := func(phase string) {
		if onProgress != nil {
			onProgress(phase)
		}
	}

	report("ingestando desde " + primary.Name())
	ds, err := ingest.Fetch(ctx, primary)
	if err != nil {
		log.Printf("[retrain] ingesta desde %s falló: %v", primary.Name(), err)
		ds = nil
		for name, alt := range s.sources {
			if name == primary.Name() {
				continue
			}
			report("reintentando ingesta desde " + name)
			if alt2, err2 := ingest.Fetch(ctx, alt); err2 == nil {
				ds = alt2
				break
			} else {
				log.Printf("[retrain] ingesta desde %s falló: %v", name, err2)
			}
		}
		if ds == nil {
			return nil, fmt.Errorf("la ingesta falló en todas las fuentes configuradas")
		}
	}
	s.datasetOK.Store(true)

	pair, err := s.manager.Fit(ds, onProgress)
	if err != nil {
		return nil, err
	}

	return &models.TrainingResponse{
		Status:  "success",
		Message: fmt.Sprintf("modelo %s entrenado con %d ratings", pair.Version, len(ds.Ratings)),
	}, nil
}

// IsStale expone la señal de frescura del Manager.
func (s *TrainService) IsStale(d time.Duration) bool {
	return s.manager.IsStale(d)
}

// Health es una lectura pura del estado actual, sin efectos.
func (s *TrainService) Health(ctx context.Context) models.HealthStatus {
	return models.HealthStatus{
		ModelReady:       s.manager.Ready(),
		DatasetAvailable: s.datasetOK.Load(),
		SourceConnected:  s.sourceConnected(ctx),
	}
}

func (s *TrainService) sourceConnected(ctx context.Context) bool {
	src, ok := s.sources[s.cfg.DataSource]
	if !ok {
		return false
	}
	switch t := src.(type) {
	case *ingest.CSVSource:
		if _, err := os.Stat(t.ReviewsPath()); err != nil {
			return false
		}
		_, err := os.Stat(t.BusinessesPath())
		return err == nil
	case *ingest.MongoSource:
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return db.Ping(ctx) == nil
	default:
		return true
	}
}

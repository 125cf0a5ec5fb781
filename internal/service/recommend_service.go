package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/kidusshoa/recommendation-service/internal/cache"
	"github.com/kidusshoa/recommendation-service/internal/config"
	"github.com/kidusshoa/recommendation-service/internal/models"
	"github.com/kidusshoa/recommendation-service/internal/recommender"
	"github.com/kidusshoa/recommendation-service/internal/repository"
)

// RecommendService orquesta el camino de lectura: par activo → blender →
// cache Redis → historial en Mongo. El blend en sí no hace I/O; cache e
// historial son best-effort y nunca rompen la respuesta.
type RecommendService struct {
	manager *recommender.Manager
	blender *recommender.Blender
	recRepo *repository.RecommendationRepository // puede ser nil (trainer CLI)

	defaultRecs int
	maxRecs     int
	cacheTTL    int
}

func NewRecommendService(
	cfg *config.Config,
	manager *recommender.Manager,
	recRepo *repository.RecommendationRepository,
) *RecommendService {
	return &RecommendService{
		manager:     manager,
		blender:     &recommender.Blender{Alpha: cfg.BlendAlpha},
		recRepo:     recRepo,
		defaultRecs: cfg.DefaultRecs,
		maxRecs:     cfg.MaxRecs,
		cacheTTL:    cfg.CacheTTLSeconds,
	}
}

type RecRequest struct {
	UserID  string
	Limit   int
	Mode    string
	Refresh bool // si true, ignora el cache Redis
}

// la key incluye la versión del modelo: un retrain invalida el cache solo
// con cambiar de versión, sin flush
func cacheKey(version string, req RecRequest, mode recommender.Mode) string {
	return fmt.Sprintf("rec:%s:user:%s:n:%d:mode:%s", version, req.UserID, req.Limit, mode)
}

func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) (*models.RecommendationResponse, error) {
	// límites: fuera de rango se ajusta, no se rechaza
	if req.Limit <= 0 {
		req.Limit = s.defaultRecs
	} else if req.Limit > s.maxRecs {
		req.Limit = s.maxRecs
	}
	mode := recommender.ParseMode(req.Mode)

	pair, err := s.manager.GetActive()
	if err != nil {
		return nil, err
	}

	key := cacheKey(pair.Version, req, mode)
	if !req.Refresh {
		var cached models.RecommendationResponse
		if ok, err := cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	items := s.blender.Recommend(pair, req.UserID, req.Limit, mode)

	resp := &models.RecommendationResponse{
		UserID:          req.UserID,
		Recommendations: items,
	}

	// historial en Mongo (no rompemos la respuesta si falla)
	if s.recRepo != nil {
		hist := &models.Recommendation{
			UserID:       req.UserID,
			Mode:         string(mode),
			Alpha:        s.blender.Alpha,
			ModelVersion: pair.Version,
			Items:        items,
			CreatedAt:    time.Now(),
		}
		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("[recomendar] error guardando historial en Mongo: %v", err)
		}
	}

	if err := cache.SetJSON(ctx, key, resp, s.cacheTTL); err != nil {
		log.Printf("[recomendar] error cacheando en Redis: %v", err)
	}

	return resp, nil
}

package main

import (
	"log"
	"net/http"

	_ "github.com/kidusshoa/recommendation-service/docs" // swagger docs

	"github.com/kidusshoa/recommendation-service/internal/cache"
	"github.com/kidusshoa/recommendation-service/internal/config"
	"github.com/kidusshoa/recommendation-service/internal/db"
	"github.com/kidusshoa/recommendation-service/internal/handler"
	"github.com/kidusshoa/recommendation-service/internal/ingest"
	"github.com/kidusshoa/recommendation-service/internal/recommender"
	"github.com/kidusshoa/recommendation-service/internal/repository"
	"github.com/kidusshoa/recommendation-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Khanut Recommendation Service
// @version 1.0
// @description Recomendador híbrido de negocios (colaborativo + contenido, Mongo/CSV, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// fuentes de ingesta: la elección concreta es configuración, no código
	mongoSrc := ingest.NewMongoSource(cfg)
	csvSrc := ingest.NewCSVSource(cfg.DataDir)

	// ciclo de vida del modelo
	manager := recommender.NewManager(cfg.ModelDir, recommender.DefaultCollabConfig(
		cfg.LatentFactors, cfg.TrainEpochs, cfg.TrainSeed,
	))
	// arranque en caliente si hay artefacto previo
	if err := manager.LoadArtifact(); err != nil {
		log.Printf("[modelo] sin artefacto previo utilizable: %v", err)
	}

	// repos
	recRepo := repository.NewRecommendationRepository()

	// services
	recSvc := service.NewRecommendService(cfg, manager, recRepo)
	trainSvc := service.NewTrainService(cfg, manager, mongoSrc, csvSrc)

	// handlers
	recH := handler.NewRecommendHandler(recSvc)
	trainH := handler.NewTrainHandler(trainSvc)
	healthH := handler.NewHealthHandler(trainSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/api/v1/health", healthH.Health)
	r.Get("/api/v1/recommendations/{userId}", recH.GetRecommendations)

	// retrain vía webhook de la plataforma (firma HMAC)
	r.Group(func(r chi.Router) {
		r.Use(handler.WebhookAuth(cfg.WebhookSecret))
		r.Post("/api/v1/retrain", trainH.Retrain)
	})

	// ===========================
	// Rutas de admin con JWT
	// ===========================
	r.Group(func(r chi.Router) {
		r.Use(handler.JWTAuth(cfg.JWTSecret))
		r.Use(handler.AdminOnly())

		r.Post("/api/v1/admin/retrain", trainH.Retrain)
		r.Get("/api/v1/admin/ws/retrain", trainH.RetrainWS)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}

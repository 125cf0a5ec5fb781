package handler

import (
	"encoding/json"
	"net/http"

	"github.com/kidusshoa/recommendation-service/internal/models"
	"github.com/kidusshoa/recommendation-service/internal/service"
)

type HealthHandler struct {
	svc *service.TrainService
}

func NewHealthHandler(s *service.TrainService) *HealthHandler { return &HealthHandler{svc: s} }

// @Summary Healthcheck
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.svc.Health(r.Context()))
}

// writeStatus responde un {status, message} con el código dado.
func writeStatus(w http.ResponseWriter, code int, status, message string) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(models.TrainingResponse{Status: status, Message: message})
}

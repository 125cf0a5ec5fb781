package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/kidusshoa/recommendation-service/internal/recommender"
	"github.com/kidusshoa/recommendation-service/internal/service"

	"github.com/go-chi/chi/v5"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Recomendaciones para un usuario
// @Tags recommend
// @Produce json
// @Param userId path string true "userId"
// @Param limit query int false "cantidad de recomendaciones (1..20, default 5)"
// @Param mode query string false "hybrid | collaborative | content"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} models.RecommendationResponse
// @Failure 503 {object} models.TrainingResponse
// @Router /api/v1/recommendations/{userId} [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := chi.URLParam(r, "userId")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	mode := r.URL.Query().Get("mode")
	refresh := r.URL.Query().Get("refresh") == "true"

	resp, err := h.svc.Recommend(r.Context(), service.RecRequest{
		UserID:  userID,
		Limit:   limit,
		Mode:    mode,
		Refresh: refresh,
	})
	if err != nil {
		if errors.Is(err, recommender.ErrNotReady) {
			writeStatus(w, http.StatusServiceUnavailable, "error", "ningún modelo entrenado todavía, dispará un retrain primero")
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

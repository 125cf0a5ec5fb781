package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/kidusshoa/recommendation-service/internal/recommender"
	"github.com/kidusshoa/recommendation-service/internal/service"

	"github.com/gorilla/websocket"
)

type TrainHandler struct {
	svc *service.TrainService
}

func NewTrainHandler(s *service.TrainService) *TrainHandler { return &TrainHandler{svc: s} }

// @Summary Reentrenar el modelo (webhook o admin)
// @Tags train
// @Produce json
// @Param source query string false "mongo | csv (default: configurado)"
// @Success 200 {object} models.TrainingResponse
// @Failure 409 {object} models.TrainingResponse
// @Failure 502 {object} models.TrainingResponse
// @Router /api/v1/retrain [post]
func (h *TrainHandler) Retrain(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	source := r.URL.Query().Get("source")

	resp, err := h.svc.Retrain(r.Context(), source, nil)
	if err != nil {
		// el mensaje lleva la clase del error, nunca detalle interno
		switch {
		case errors.Is(err, recommender.ErrTrainingInProgress):
			writeStatus(w, http.StatusConflict, "error", "ya hay un entrenamiento en curso")
		case errors.Is(err, recommender.ErrPersistence):
			writeStatus(w, http.StatusInternalServerError, "error", "el modelo entrenó pero no se pudo persistir; sigue sirviendo el anterior")
		default:
			writeStatus(w, http.StatusBadGateway, "error", err.Error())
		}
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Reentrenamiento con progreso en tiempo real (WebSocket)
// @Tags train
// @Produce json
// @Param source query string false "mongo | csv (default: configurado)"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/admin/ws/retrain [get]
func (h *TrainHandler) RetrainWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", http.StatusBadRequest)
		return
	}
	defer conn.Close()

	source := r.URL.Query().Get("source")

	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, iniciando retrain…",
	})

	resp, err := h.svc.Retrain(r.Context(), source, func(phase string) {
		conn.WriteJSON(map[string]any{
			"type":  "progress",
			"phase": phase,
		})
	})
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	conn.WriteJSON(map[string]any{
		"type":       "done",
		"status":     resp.Status,
		"message":    resp.Message,
		"finishedAt": time.Now(),
	})
}

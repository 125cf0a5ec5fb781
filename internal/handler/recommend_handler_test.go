package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kidusshoa/recommendation-service/internal/config"
	"github.com/kidusshoa/recommendation-service/internal/ingest"
	"github.com/kidusshoa/recommendation-service/internal/models"
	"github.com/kidusshoa/recommendation-service/internal/recommender"
	"github.com/kidusshoa/recommendation-service/internal/service"

	"github.com/go-chi/chi/v5"
)

func testConfig() *config.Config {
	return &config.Config{
		DefaultRecs: 5,
		MaxRecs:     20,
		BlendAlpha:  0.6,
	}
}

func newRouter(t *testing.T, trained bool) *chi.Mux {
	t.Helper()

	manager := recommender.NewManager(t.TempDir(), recommender.DefaultCollabConfig(4, 20, 42))
	if trained {
		ds := ingest.Normalize(
			[]models.RawRating{
				{UserID: "U1", BusinessID: "B1", Score: 5, Timestamp: 1},
				{UserID: "U2", BusinessID: "B1", Score: 4, Timestamp: 1},
				{UserID: "U2", BusinessID: "B2", Score: 2, Timestamp: 1},
			},
			[]models.RawBusiness{
				{BusinessID: "B1", Name: "Uno", Category: "Restaurant", City: "X"},
				{BusinessID: "B2", Name: "Dos", Category: "Cafe", City: "X"},
			},
		)
		if _, err := manager.Fit(ds, nil); err != nil {
			t.Fatalf("Fit: %v", err)
		}
	}

	svc := service.NewRecommendService(testConfig(), manager, nil)
	h := NewRecommendHandler(svc)

	r := chi.NewRouter()
	r.Get("/api/v1/recommendations/{userId}", h.GetRecommendations)
	return r
}

func TestGetRecommendations_OK(t *testing.T) {
	r := newRouter(t, true)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/U1?limit=1&mode=hybrid", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperaba 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var resp models.RecommendationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta no es JSON válido: %v", err)
	}
	if resp.UserID != "U1" {
		t.Errorf("userId = %q, esperaba U1", resp.UserID)
	}
	if len(resp.Recommendations) != 1 || resp.Recommendations[0].BusinessID != "B2" {
		t.Errorf("recomendaciones = %+v, esperaba solo B2", resp.Recommendations)
	}
}

func TestGetRecommendations_NotReady(t *testing.T) {
	r := newRouter(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations/U1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, esperaba 503", rec.Code)
	}

	var resp models.TrainingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("respuesta no es JSON válido: %v", err)
	}
	if resp.Status != "error" {
		t.Errorf("status = %q, esperaba error", resp.Status)
	}
}

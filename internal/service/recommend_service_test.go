package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kidusshoa/recommendation-service/internal/config"
	"github.com/kidusshoa/recommendation-service/internal/ingest"
	"github.com/kidusshoa/recommendation-service/internal/models"
	"github.com/kidusshoa/recommendation-service/internal/recommender"
)

func testRecConfig() *config.Config {
	return &config.Config{
		DefaultRecs: 5,
		MaxRecs:     20,
		BlendAlpha:  0.6,
	}
}

// readyManager entrena un manager con numBiz negocios y un usuario U1
// que calificó solo el primero.
func readyManager(t *testing.T, numBiz int) *recommender.Manager {
	t.Helper()

	var businesses []models.RawBusiness
	for i := 1; i <= numBiz; i++ {
		businesses = append(businesses, models.RawBusiness{
			BusinessID: fmt.Sprintf("B%02d", i),
			Name:       fmt.Sprintf("Negocio %d", i),
			Category:   "Restaurant",
			City:       "X",
			Rating:     3 + float64(i%3),
		})
	}
	ratings := []models.RawRating{
		{UserID: "U1", BusinessID: "B01", Score: 5, Timestamp: 1},
		{UserID: "U2", BusinessID: "B01", Score: 4, Timestamp: 1},
		{UserID: "U2", BusinessID: "B02", Score: 2, Timestamp: 1},
	}
	ds := ingest.Normalize(ratings, businesses)

	m := recommender.NewManager(t.TempDir(), recommender.DefaultCollabConfig(4, 20, 42))
	if _, err := m.Fit(ds, nil); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	return m
}

func TestRecommendService_NotReady(t *testing.T) {
	m := recommender.NewManager(t.TempDir(), recommender.DefaultCollabConfig(4, 20, 42))
	svc := NewRecommendService(testRecConfig(), m, nil)

	_, err := svc.Recommend(context.Background(), RecRequest{UserID: "U1"})
	if !errors.Is(err, recommender.ErrNotReady) {
		t.Fatalf("err = %v, esperaba ErrNotReady", err)
	}
}

func TestRecommendService_LimitDefaultsAndClamping(t *testing.T) {
	svc := NewRecommendService(testRecConfig(), readyManager(t, 30), nil)

	tests := []struct {
		name    string
		limit   int
		wantMax int
	}{
		{"default", 0, 5},
		{"dentro del rango", 3, 3},
		{"clampeado al máximo", 50, 20},
		{"negativo cae al default", -7, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Recommend(context.Background(), RecRequest{UserID: "U1", Limit: tt.limit})
			if err != nil {
				t.Fatalf("Recommend: %v", err)
			}
			if len(resp.Recommendations) != tt.wantMax {
				t.Errorf("items = %d, esperaba %d", len(resp.Recommendations), tt.wantMax)
			}
		})
	}
}

func TestRecommendService_NeverRecommendsRated(t *testing.T) {
	svc := NewRecommendService(testRecConfig(), readyManager(t, 10), nil)

	resp, err := svc.Recommend(context.Background(), RecRequest{UserID: "U1", Limit: 10})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, it := range resp.Recommendations {
		if it.BusinessID == "B01" {
			t.Error("se recomendó B01, que U1 ya calificó")
		}
	}
}

func TestRecommendService_ColdStartUserGetsResults(t *testing.T) {
	svc := NewRecommendService(testRecConfig(), readyManager(t, 10), nil)

	resp, err := svc.Recommend(context.Background(), RecRequest{UserID: "U-sin-historial"})
	if err != nil {
		t.Fatalf("cold start nunca es error: %v", err)
	}
	if len(resp.Recommendations) == 0 {
		t.Error("usuario nuevo sin recomendaciones; esperaba fallback por popularidad")
	}
}

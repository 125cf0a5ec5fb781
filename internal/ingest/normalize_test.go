package ingest

import (
	"math"
	"testing"

	"github.com/kidusshoa/recommendation-service/internal/models"
)

func biz(id, name, category, city string, rating float64) models.RawBusiness {
	return models.RawBusiness{
		BusinessID: id,
		Name:       name,
		Category:   category,
		City:       city,
		Rating:     rating,
	}
}

func TestNormalize_RejectsBadRecords(t *testing.T) {
	businesses := []models.RawBusiness{
		biz("B1", "La Esquina", "Restaurant", "X", 0),
		biz("", "SinID", "Cafe", "X", 0),   // sin id
		{BusinessID: "B3", Name: ""},        // sin nombre
	}
	ratings := []models.RawRating{
		{UserID: "U1", BusinessID: "B1", Score: 5, Timestamp: 10},
		{UserID: "", BusinessID: "B1", Score: 4, Timestamp: 10},   // sin usuario
		{UserID: "U2", BusinessID: "", Score: 4, Timestamp: 10},   // sin negocio
		{UserID: "U2", BusinessID: "B1", Score: 9, Timestamp: 10}, // fuera de rango
		{UserID: "U3", BusinessID: "B1", Score: math.NaN(), Timestamp: 10}, // no numérico
		{UserID: "U4", BusinessID: "B9", Score: 3, Timestamp: 10}, // huérfano
	}

	ds := Normalize(ratings, businesses)

	if got := len(ds.Businesses); got != 1 {
		t.Fatalf("negocios aceptados = %d, esperaba 1", got)
	}
	if ds.Stats.BusinessesRejected != 2 {
		t.Errorf("BusinessesRejected = %d, esperaba 2", ds.Stats.BusinessesRejected)
	}
	if got := len(ds.Ratings); got != 1 {
		t.Fatalf("ratings aceptados = %d, esperaba 1", got)
	}
	if ds.Stats.RatingsRejected != 4 {
		t.Errorf("RatingsRejected = %d, esperaba 4", ds.Stats.RatingsRejected)
	}
	if ds.Stats.OrphansDropped != 1 {
		t.Errorf("OrphansDropped = %d, esperaba 1", ds.Stats.OrphansDropped)
	}
}

func TestNormalize_NoOrphanRatings(t *testing.T) {
	businesses := []models.RawBusiness{
		biz("B1", "Uno", "Restaurant", "X", 0),
		biz("B2", "Dos", "Cafe", "X", 0),
	}
	ratings := []models.RawRating{
		{UserID: "U1", BusinessID: "B1", Score: 5, Timestamp: 1},
		{UserID: "U1", BusinessID: "B2", Score: 4, Timestamp: 1},
		{UserID: "U1", BusinessID: "B3", Score: 3, Timestamp: 1},
	}

	ds := Normalize(ratings, businesses)

	for _, r := range ds.Ratings {
		if _, ok := ds.Businesses[r.BusinessID]; !ok {
			t.Errorf("rating huérfano sobrevivió: %s -> %s", r.UserID, r.BusinessID)
		}
	}
}

func TestNormalize_DuplicateKeepsLatestTimestamp(t *testing.T) {
	businesses := []models.RawBusiness{biz("B1", "Uno", "Restaurant", "X", 0)}

	tests := []struct {
		name    string
		ratings []models.RawRating
		want    float64
	}{
		{
			name: "el más nuevo llega último",
			ratings: []models.RawRating{
				{UserID: "U1", BusinessID: "B1", Score: 2, Timestamp: 100},
				{UserID: "U1", BusinessID: "B1", Score: 5, Timestamp: 200},
			},
			want: 5,
		},
		{
			name: "el más nuevo llega primero",
			ratings: []models.RawRating{
				{UserID: "U1", BusinessID: "B1", Score: 5, Timestamp: 200},
				{UserID: "U1", BusinessID: "B1", Score: 2, Timestamp: 100},
			},
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := Normalize(tt.ratings, businesses)
			if len(ds.Ratings) != 1 {
				t.Fatalf("ratings = %d, esperaba 1 (duplicado colapsado)", len(ds.Ratings))
			}
			if ds.Ratings[0].Score != tt.want {
				t.Errorf("score = %g, esperaba %g", ds.Ratings[0].Score, tt.want)
			}
			if ds.Stats.DuplicatesMerged != 1 {
				t.Errorf("DuplicatesMerged = %d, esperaba 1", ds.Stats.DuplicatesMerged)
			}
		})
	}
}

func TestNormalize_AvgRating(t *testing.T) {
	businesses := []models.RawBusiness{
		biz("B1", "ConPromedio", "Restaurant", "X", 4.5), // lo trae la fuente
		biz("B2", "SinPromedio", "Cafe", "X", 0),         // se deriva
	}
	ratings := []models.RawRating{
		{UserID: "U1", BusinessID: "B1", Score: 1, Timestamp: 1},
		{UserID: "U1", BusinessID: "B2", Score: 2, Timestamp: 1},
		{UserID: "U2", BusinessID: "B2", Score: 4, Timestamp: 1},
	}

	ds := Normalize(ratings, businesses)

	// el valor de la fuente es autoritativo, no se pisa con la media
	if got := ds.Businesses["B1"].AvgRating; got != 4.5 {
		t.Errorf("B1.AvgRating = %g, esperaba 4.5", got)
	}
	if got := ds.Businesses["B2"].AvgRating; got != 3 {
		t.Errorf("B2.AvgRating = %g, esperaba 3 (media de 2 y 4)", got)
	}
}

func TestDataset_HasRated(t *testing.T) {
	businesses := []models.RawBusiness{biz("B1", "Uno", "Restaurant", "X", 0)}
	ratings := []models.RawRating{{UserID: "U1", BusinessID: "B1", Score: 5, Timestamp: 1}}

	ds := Normalize(ratings, businesses)

	if !ds.HasRated("U1", "B1") {
		t.Error("HasRated(U1, B1) = false, esperaba true")
	}
	if ds.HasRated("U1", "B2") || ds.HasRated("U9", "B1") {
		t.Error("HasRated devolvió true para un par inexistente")
	}
}

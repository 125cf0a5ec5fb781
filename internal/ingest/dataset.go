package ingest

import (
	"time"

	"github.com/kidusshoa/recommendation-service/internal/models"
)

// Dataset es el snapshot inmutable de una pasada de ingesta. Lo produce
// Normalize y lo consume exactamente un entrenamiento; nunca se muta.
type Dataset struct {
	Ratings    []models.Rating
	Businesses map[string]models.Business

	// ratings por usuario, ya canónicos (para candidatos y perfiles)
	ByUser map[string]map[string]float64

	FetchedAt time.Time
	Stats     Stats
}

// Stats son los contadores de la pasada (se loguean, no se loguea payload).
type Stats struct {
	RatingsAccepted    int
	RatingsRejected    int
	BusinessesAccepted int
	BusinessesRejected int
	OrphansDropped     int
	DuplicatesMerged   int
}

// HasRated indica si el usuario ya calificó ese negocio en este snapshot.
func (d *Dataset) HasRated(userID, businessID string) bool {
	if m, ok := d.ByUser[userID]; ok {
		_, rated := m[businessID]
		return rated
	}
	return false
}

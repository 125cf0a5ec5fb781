package recommender

import (
	"sort"

	"github.com/kidusshoa/recommendation-service/internal/models"
)

// Mode selecciona qué señales entran al score final.
type Mode string

const (
	ModeHybrid        Mode = "hybrid"
	ModeCollaborative Mode = "collaborative"
	ModeContent       Mode = "content"
)

// ParseMode normaliza el parámetro de la API; cualquier cosa rara cae a hybrid.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeCollaborative, ModeContent:
		return Mode(s)
	default:
		return ModeHybrid
	}
}

// Blender combina el score colaborativo y el de contenido en una sola
// lista ordenada. Reglas de cold start:
//   - ambas señales disponibles: alpha·colaborativo + (1-alpha)·contenido
//   - una sola disponible: esa señal sola
//   - ninguna: promedio histórico del negocio (popularidad global)
type Blender struct {
	Alpha float64 // peso del colaborativo en modo hybrid (default 0.6)
}

// Recommend arma el top-N para el usuario. Candidatos: todos los negocios
// del snapshot que el usuario no calificó. Orden: score estimado desc,
// promedio histórico desc, businessId asc (salida determinística).
// Si hay menos candidatos que limit se devuelve lo que hay, no es error.
func (b *Blender) Recommend(pair *ModelPair, userID string, limit int, mode Mode) []models.RecItem {
	rated := pair.RatedBy[userID]

	items := make([]models.RecItem, 0, len(pair.Businesses))
	for _, bizID := range sortedKeys(pair.Businesses) {
		if _, ya := rated[bizID]; ya {
			continue
		}
		biz := pair.Businesses[bizID]

		items = append(items, models.RecItem{
			BusinessID:      bizID,
			Name:            biz.Name,
			Rating:          biz.AvgRating,
			PredictedRating: b.score(pair, userID, bizID, biz.AvgRating, mode),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].PredictedRating != items[j].PredictedRating {
			return items[i].PredictedRating > items[j].PredictedRating
		}
		if items[i].Rating != items[j].Rating {
			return items[i].Rating > items[j].Rating
		}
		return items[i].BusinessID < items[j].BusinessID
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func (b *Blender) score(pair *ModelPair, userID, bizID string, avgRating float64, mode Mode) float64 {
	var (
		collab, content float64
		okC, okT        bool
	)
	if mode != ModeContent {
		collab, okC = pair.Collab.Predict(userID, bizID)
	}
	if mode != ModeCollaborative {
		content, okT = pair.Content.Predict(userID, bizID)
	}

	switch {
	case okC && okT:
		return b.Alpha*collab + (1-b.Alpha)*content
	case okC:
		return collab
	case okT:
		return content
	default:
		// cold start total: usuario nuevo y/o negocio sin señal
		return avgRating
	}
}

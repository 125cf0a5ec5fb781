package ingest

import (
	"log"
	"math"
	"time"

	"github.com/kidusshoa/recommendation-service/internal/models"
)

// Normalize convierte registros crudos en un snapshot canónico:
//   - descarta registros con campos obligatorios vacíos o score fuera de [1,5]
//   - resuelve duplicados (user, business) quedándose con el timestamp más reciente
//   - descarta ratings huérfanos (negocio inexistente en el mismo snapshot)
//   - calcula AvgRating cuando la fuente no lo trae
//
// Los registros malos se cuentan, nunca abortan la pasada completa.
func Normalize(rawRatings []models.RawRating, rawBusinesses []models.RawBusiness) *Dataset {
	ds := &Dataset{
		Businesses: make(map[string]models.Business),
		ByUser:     make(map[string]map[string]float64),
		FetchedAt:  time.Now(),
	}

	for _, rb := range rawBusinesses {
		if rb.BusinessID == "" || rb.Name == "" {
			ds.Stats.BusinessesRejected++
			continue
		}
		b := models.Business{
			BusinessID:   rb.BusinessID,
			Name:         rb.Name,
			Category:     defaultIfEmpty(rb.Category, "Unknown"),
			BusinessType: rb.BusinessType,
			Description:  rb.Description,
			City:         defaultIfEmpty(rb.City, "Unknown"),
			AvgRating:    rb.Rating, // autoritativo si viene de la fuente
		}
		ds.Businesses[b.BusinessID] = b
		ds.Stats.BusinessesAccepted++
	}

	// duplicados: (user, business) -> rating con timestamp más reciente
	type key struct{ user, biz string }
	latest := make(map[key]models.Rating)

	for _, rr := range rawRatings {
		if rr.UserID == "" || rr.BusinessID == "" {
			ds.Stats.RatingsRejected++
			continue
		}
		if math.IsNaN(rr.Score) || rr.Score < 1 || rr.Score > 5 {
			ds.Stats.RatingsRejected++
			continue
		}
		if _, ok := ds.Businesses[rr.BusinessID]; !ok {
			ds.Stats.OrphansDropped++
			continue
		}

		k := key{rr.UserID, rr.BusinessID}
		if prev, ok := latest[k]; ok {
			ds.Stats.DuplicatesMerged++
			if rr.Timestamp < prev.Timestamp {
				continue
			}
		}
		latest[k] = models.Rating{
			UserID:     rr.UserID,
			BusinessID: rr.BusinessID,
			Score:      rr.Score,
			Timestamp:  rr.Timestamp,
		}
	}

	// orden determinístico: recorremos los crudos otra vez para conservar
	// el orden de llegada (un registro por par)
	seen := make(map[key]bool)
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, rr := range rawRatings {
		k := key{rr.UserID, rr.BusinessID}
		r, ok := latest[k]
		if !ok || seen[k] {
			continue
		}
		seen[k] = true

		ds.Ratings = append(ds.Ratings, r)
		ds.Stats.RatingsAccepted++

		if ds.ByUser[r.UserID] == nil {
			ds.ByUser[r.UserID] = make(map[string]float64)
		}
		ds.ByUser[r.UserID][r.BusinessID] = r.Score

		sums[r.BusinessID] += r.Score
		counts[r.BusinessID]++
	}

	// AvgRating derivado solo cuando la fuente no lo trajo
	for id, b := range ds.Businesses {
		if b.AvgRating <= 0 && counts[id] > 0 {
			b.AvgRating = sums[id] / float64(counts[id])
			ds.Businesses[id] = b
		}
	}

	log.Printf("[ingesta] ratings aceptados=%d rechazados=%d huérfanos=%d duplicados=%d | negocios aceptados=%d rechazados=%d",
		ds.Stats.RatingsAccepted, ds.Stats.RatingsRejected, ds.Stats.OrphansDropped,
		ds.Stats.DuplicatesMerged, ds.Stats.BusinessesAccepted, ds.Stats.BusinessesRejected)

	return ds
}

func defaultIfEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

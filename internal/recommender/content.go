package recommender

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/kidusshoa/recommendation-service/internal/ingest"
)

// ContentModel guarda un vector de atributos por negocio y un perfil de
// preferencias por usuario derivado de sus ratings. Los vectores son mapas
// sobre un vocabulario con namespace (cat:/tipo:/ciudad:/term:), así un
// one-hot de categoría y la bolsa de términos de la descripción conviven
// en el mismo espacio.
type ContentModel struct {
	Features map[string]map[string]float64 `json:"features"` // businessId -> vector
	Profiles map[string]map[string]float64 `json:"profiles"` // userId -> perfil
}

// scoreMidpoint: un rating de 3 es neutro; por encima acerca el perfil al
// contenido del negocio, por debajo lo aleja.
const scoreMidpoint = 3.0

// FitContent construye los vectores de negocio y los perfiles de usuario
// del snapshot. Es determinístico: mismos datos, mismos perfiles.
func FitContent(ds *ingest.Dataset) *ContentModel {
	m := &ContentModel{
		Features: make(map[string]map[string]float64, len(ds.Businesses)),
		Profiles: make(map[string]map[string]float64),
	}

	for id, b := range ds.Businesses {
		vec := make(map[string]float64)
		if b.Category != "" {
			vec["cat:"+strings.ToLower(b.Category)] = 1
		}
		if b.BusinessType != "" {
			vec["tipo:"+strings.ToLower(b.BusinessType)] = 1
		}
		if b.City != "" {
			vec["ciudad:"+strings.ToLower(b.City)] = 1
		}

		terms := tokenize(b.Description)
		if len(terms) > 0 {
			w := 1.0 / float64(len(terms))
			for _, t := range terms {
				vec["term:"+t] += w
			}
		}
		m.Features[id] = vec
	}

	// perfil = promedio de los vectores de los negocios calificados,
	// ponderado por (score - 3)
	for _, r := range ds.Ratings {
		feat, ok := m.Features[r.BusinessID]
		if !ok {
			continue
		}
		prof := m.Profiles[r.UserID]
		if prof == nil {
			prof = make(map[string]float64)
			m.Profiles[r.UserID] = prof
		}
		w := r.Score - scoreMidpoint
		for _, k := range sortedKeys(feat) {
			prof[k] += w * feat[k]
		}
	}
	for uid, rated := range ds.ByUser {
		prof := m.Profiles[uid]
		n := float64(len(rated))
		for _, k := range sortedKeys(prof) {
			prof[k] /= n
		}
	}

	return m
}

// Predict devuelve el score de contenido para (usuario, negocio) en [1,5].
// ok=false cuando el negocio no existía al entrenar o el perfil del usuario
// es neutro (cero ratings o todos en el punto medio): eso es el cold start
// que resuelve el blender, no un cero disfrazado.
func (m *ContentModel) Predict(userID, businessID string) (float64, bool) {
	feat, ok := m.Features[businessID]
	if !ok {
		return 0, false
	}
	prof := m.Profiles[userID]
	if len(prof) == 0 {
		return 0, false
	}

	cos, ok := cosine(prof, feat)
	if !ok {
		return 0, false
	}
	// coseno [-1,1] reescalado al rango de ratings [1,5]
	return clipScore(scoreMidpoint + 2*cos), true
}

// HasBusiness indica si el negocio formó parte del snapshot de entrenamiento.
func (m *ContentModel) HasBusiness(businessID string) bool {
	_, ok := m.Features[businessID]
	return ok
}

// cosine suma en orden de claves para que el resultado no dependa del
// orden de iteración del mapa.
func cosine(a, b map[string]float64) (float64, bool) {
	keys := make(map[string]bool, len(a)+len(b))
	for k := range a {
		keys[k] = true
	}
	for k := range b {
		keys[k] = true
	}

	var dot, normA, normB float64
	for _, k := range sortedKeys(keys) {
		va, vb := a[k], b[k]
		dot += va * vb
		normA += va * va
		normB += vb * vb
	}
	if normA == 0 || normB == 0 {
		return 0, false
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func clipScore(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}

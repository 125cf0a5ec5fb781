package recommender

import (
	"log"
	"math"
	"math/rand"

	"github.com/kidusshoa/recommendation-service/internal/ingest"
)

// CollabConfig son los hiperparámetros de la factorización. Seed va
// explícito: con la misma semilla y el mismo snapshot, el fit es
// reproducible; sin fijarla, cada corrida da factores distintos.
type CollabConfig struct {
	Factors      int     // dimensión latente k
	Epochs       int     // tope de iteraciones SGD
	LearningRate float64
	Reg          float64 // regularización L2
	Tol          float64 // corte temprano: |ΔRMSE| entre épocas
	Seed         int64
}

// DefaultCollabConfig replica los valores con los que se afinó el modelo.
func DefaultCollabConfig(factors, epochs int, seed int64) CollabConfig {
	if factors <= 0 {
		factors = 20
	}
	if epochs <= 0 {
		epochs = 50
	}
	return CollabConfig{
		Factors:      factors,
		Epochs:       epochs,
		LearningRate: 0.005,
		Reg:          0.02,
		Tol:          1e-5,
		Seed:         seed,
	}
}

// CollabModel es la factorización sesgada de la matriz usuario×negocio:
//
//	r̂(u,i) = μ + b_u + b_i + p_u · q_i
//
// Solo sabe predecir para ids vistos al entrenar; para el resto devuelve
// ok=false y el blender decide qué hacer.
type CollabModel struct {
	Factors     int                  `json:"factors"`
	GlobalMean  float64              `json:"globalMean"`
	UserBias    map[string]float64   `json:"userBias"`
	ItemBias    map[string]float64   `json:"itemBias"`
	UserFactors map[string][]float64 `json:"userFactors"`
	ItemFactors map[string][]float64 `json:"itemFactors"`
}

// FitCollab entrena por SGD sobre los ratings del snapshot, en el orden
// canónico del snapshot (importa para la reproducibilidad).
func FitCollab(ds *ingest.Dataset, cfg CollabConfig) *CollabModel {
	m := &CollabModel{
		Factors:     cfg.Factors,
		UserBias:    make(map[string]float64),
		ItemBias:    make(map[string]float64),
		UserFactors: make(map[string][]float64),
		ItemFactors: make(map[string][]float64),
	}

	if len(ds.Ratings) == 0 {
		return m
	}

	var sum float64
	for _, r := range ds.Ratings {
		sum += r.Score
	}
	m.GlobalMean = sum / float64(len(ds.Ratings))

	// inicialización: ids en orden estable para que la misma semilla
	// produzca los mismos factores
	rng := rand.New(rand.NewSource(cfg.Seed))

	userIDs := make(map[string]bool)
	itemIDs := make(map[string]bool)
	for _, r := range ds.Ratings {
		userIDs[r.UserID] = true
		itemIDs[r.BusinessID] = true
	}
	for _, uid := range sortedKeys(userIDs) {
		m.UserFactors[uid] = randomVector(rng, cfg.Factors)
		m.UserBias[uid] = 0
	}
	for _, iid := range sortedKeys(itemIDs) {
		m.ItemFactors[iid] = randomVector(rng, cfg.Factors)
		m.ItemBias[iid] = 0
	}

	prevRMSE := math.Inf(1)
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		var sqErr float64
		for _, r := range ds.Ratings {
			pu := m.UserFactors[r.UserID]
			qi := m.ItemFactors[r.BusinessID]

			pred := m.GlobalMean + m.UserBias[r.UserID] + m.ItemBias[r.BusinessID] + dot(pu, qi)
			err := r.Score - pred
			sqErr += err * err

			m.UserBias[r.UserID] += cfg.LearningRate * (err - cfg.Reg*m.UserBias[r.UserID])
			m.ItemBias[r.BusinessID] += cfg.LearningRate * (err - cfg.Reg*m.ItemBias[r.BusinessID])
			for f := 0; f < cfg.Factors; f++ {
				puf, qif := pu[f], qi[f]
				pu[f] += cfg.LearningRate * (err*qif - cfg.Reg*puf)
				qi[f] += cfg.LearningRate * (err*puf - cfg.Reg*qif)
			}
		}

		rmse := math.Sqrt(sqErr / float64(len(ds.Ratings)))
		if math.Abs(prevRMSE-rmse) < cfg.Tol {
			log.Printf("[colaborativo] corte temprano en época %d (rmse=%.5f)", epoch+1, rmse)
			break
		}
		prevRMSE = rmse
	}

	return m
}

// Predict devuelve el rating estimado en [1,5]. ok=false cuando el usuario
// o el negocio no estaban en la población de entrenamiento: el modelo
// nunca extrapola por su cuenta.
func (m *CollabModel) Predict(userID, businessID string) (float64, bool) {
	pu, okU := m.UserFactors[userID]
	qi, okI := m.ItemFactors[businessID]
	if !okU || !okI {
		return 0, false
	}
	pred := m.GlobalMean + m.UserBias[userID] + m.ItemBias[businessID] + dot(pu, qi)
	return clipScore(pred), true
}

func randomVector(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.NormFloat64() * 0.1
	}
	return v
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

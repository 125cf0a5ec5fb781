package models

import "time"

// RecItem es una recomendación individual tal como sale por la API.
type RecItem struct {
	BusinessID      string  `json:"businessId" bson:"businessId"`
	Name            string  `json:"name" bson:"name"`
	Rating          float64 `json:"rating" bson:"rating"` // promedio histórico del negocio
	PredictedRating float64 `json:"predictedRating" bson:"predictedRating"`
}

type RecommendationResponse struct {
	UserID          string    `json:"userId"`
	Recommendations []RecItem `json:"recommendations"`
}

type TrainingResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type HealthStatus struct {
	ModelReady       bool `json:"modelReady"`
	DatasetAvailable bool `json:"datasetAvailable"`
	SourceConnected  bool `json:"sourceConnected"`
}

// ====== Historial de recomendaciones servidas (colección recommendations) ======

type Recommendation struct {
	ID           string    `bson:"_id,omitempty"  json:"id"`
	UserID       string    `bson:"userId"         json:"userId"`
	Mode         string    `bson:"mode"           json:"mode"`
	Alpha        float64   `bson:"alpha"          json:"alpha"`
	ModelVersion string    `bson:"modelVersion"   json:"modelVersion"`
	Items        []RecItem `bson:"items"          json:"items"`
	CreatedAt    time.Time `bson:"createdAt"      json:"createdAt"`
}

package models

// RawRating es un registro de reseña tal como lo entrega una fuente
// (Mongo o CSV), antes de validar. Los campos faltantes quedan en cero
// y es el normalizador quien decide si el registro se descarta.
type RawRating struct {
	UserID     string  `json:"userId" bson:"userId"`
	BusinessID string  `json:"businessId" bson:"businessId"`
	Score      float64 `json:"rating" bson:"rating"`
	Timestamp  int64   `json:"timestamp" bson:"timestamp"`
}

// Rating es la forma canónica dentro de un snapshot: un usuario tiene
// a lo más un rating por negocio (duplicados resueltos por timestamp).
type Rating struct {
	UserID     string  `json:"userId"`
	BusinessID string  `json:"businessId"`
	Score      float64 `json:"rating"`
	Timestamp  int64   `json:"timestamp"`
}

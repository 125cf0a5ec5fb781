package models

// RawBusiness es el registro de negocio tal como lo entrega la fuente.
type RawBusiness struct {
	BusinessID   string  `json:"businessId" bson:"businessId"`
	Name         string  `json:"name" bson:"name"`
	Category     string  `json:"category" bson:"category"`
	BusinessType string  `json:"businessType" bson:"businessType"`
	Description  string  `json:"description" bson:"description"`
	City         string  `json:"city" bson:"city"`
	Rating       float64 `json:"rating" bson:"rating"`
}

// Business es la forma canónica. AvgRating viene de la fuente si la
// trae (>0); si no, el normalizador lo calcula como media de sus ratings.
type Business struct {
	BusinessID   string  `json:"businessId"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	BusinessType string  `json:"businessType"`
	Description  string  `json:"description"`
	City         string  `json:"city"`
	AvgRating    float64 `json:"avgRating"`
}

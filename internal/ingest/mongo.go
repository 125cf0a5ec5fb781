package ingest

import (
	"context"
	"time"

	"github.com/kidusshoa/recommendation-service/internal/config"
	"github.com/kidusshoa/recommendation-service/internal/db"
	"github.com/kidusshoa/recommendation-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSource lee reseñas y negocios de las colecciones de la plataforma.
// Las colecciones no tienen un esquema único (reseñas normales usan authorId,
// reseñas de servicios usan customerId), así que todo el aliasing vive acá.
type MongoSource struct {
	reviews    *mongo.Collection
	businesses *mongo.Collection
}

func NewMongoSource(cfg *config.Config) *MongoSource {
	return &MongoSource{
		reviews:    db.DB().Collection(cfg.ReviewsCollection),
		businesses: db.DB().Collection(cfg.BusinessesCollection),
	}
}

func (s *MongoSource) Name() string { return "mongo" }

func (s *MongoSource) FetchRatings(ctx context.Context) ([]models.RawRating, error) {
	cur, err := s.reviews.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RawRating
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}

		// solo reseñas aprobadas, si el documento trae status
		if st, ok := raw["status"].(string); ok && st != "approved" {
			continue
		}

		// userId puede venir como userId, authorId o customerId
		userID := asString(raw["userId"])
		if userID == "" {
			userID = asString(raw["authorId"])
		}
		if userID == "" {
			userID = asString(raw["customerId"])
		}

		out = append(out, models.RawRating{
			UserID:     userID,
			BusinessID: asString(raw["businessId"]),
			Score:      asFloat64(raw["rating"]),
			Timestamp:  asTimestamp(raw["createdAt"]),
		})
	}
	return out, cur.Err()
}

func (s *MongoSource) FetchBusinesses(ctx context.Context) ([]models.RawBusiness, error) {
	// solo negocios aprobados entran al modelo
	cur, err := s.businesses.Find(ctx, bson.M{"approved": true})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RawBusiness
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}

		if st, ok := raw["status"].(string); ok && st != "active" {
			continue
		}

		// la ciudad puede venir suelta o dentro de address
		city := asString(raw["city"])
		if city == "" {
			if addr, ok := raw["address"].(bson.M); ok {
				city = asString(addr["city"])
			}
		}

		// category cae a businessType cuando falta
		category := asString(raw["category"])
		if category == "" {
			category = asString(raw["businessType"])
		}

		out = append(out, models.RawBusiness{
			BusinessID:   asString(raw["_id"]),
			Name:         asString(raw["name"]),
			Category:     category,
			BusinessType: asString(raw["businessType"]),
			Description:  asString(raw["description"]),
			City:         city,
			Rating:       asFloat64(raw["rating"]),
		})
	}
	return out, cur.Err()
}

// helpers de casteo seguro (los documentos viejos no son homogéneos)

func asString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case primitive.ObjectID:
		return x.Hex()
	default:
		return ""
	}
}

func asFloat64(v any) float64 {
	switch x := v.(type) {
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case float64:
		return x
	default:
		return 0
	}
}

func asTimestamp(v any) int64 {
	switch x := v.(type) {
	case primitive.DateTime:
		return x.Time().Unix()
	case time.Time:
		return x.Unix()
	case int64:
		return x
	case int32:
		return int64(x)
	default:
		return 0
	}
}

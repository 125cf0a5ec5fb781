package repository

import (
	"context"

	"github.com/kidusshoa/recommendation-service/internal/db"
	"github.com/kidusshoa/recommendation-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecommendationRepository guarda el historial de listas servidas
// (auditoría / debugging, no entra al entrenamiento).
type RecommendationRepository struct {
	col *mongo.Collection
}

func NewRecommendationRepository() *RecommendationRepository {
	return &RecommendationRepository{col: db.DB().Collection("recommendations")}
}

func (r *RecommendationRepository) Insert(ctx context.Context, rec *models.Recommendation) error {
	_, err := r.col.InsertOne(ctx, rec)
	return err
}

// GetLatestByUser devuelve las últimas listas servidas a un usuario.
func (r *RecommendationRepository) GetLatestByUser(ctx context.Context, userID string, limit int64) ([]models.Recommendation, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Recommendation
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

package reviewRepo

import (
	"context"

	"hausly/database"
	"hausly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewRepository interface {
	Create(ctx context.Context, review models.Review) (string, error)
	StatsByCategory(ctx context.Context, category string) (*models.ReviewStats, error)
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo returns a new ReviewRepository instance using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	db := database.MongoClient.Database("hausly")
	return &mongoReviewRepo{
		coll: db.Collection("reviews"),
	}
}

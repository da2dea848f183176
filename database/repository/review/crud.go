package reviewRepo

import (
	"context"
	"time"

	"hausly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a review and returns its ID.
func (r *mongoReviewRepo) Create(ctx context.Context, review models.Review) (string, error) {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return "", err
	}
	return review.ID, nil
}

// StatsByCategory aggregates the average rating and review count for a category.
// A category with no reviews yields a zero-valued stats record, not an error.
func (r *mongoReviewRepo) StatsByCategory(ctx context.Context, category string) (*models.ReviewStats, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"category": category}},
		{"$group": bson.M{
			"_id":       "$category",
			"avgRating": bson.M{"$avg": "$rating"},
			"count":     bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		AvgRating float64 `bson:"avgRating"`
		Count     int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	stats := &models.ReviewStats{Category: category}
	if len(results) > 0 {
		stats.AvgRating = results[0].AvgRating
		stats.Count = results[0].Count
	}
	return stats, nil
}

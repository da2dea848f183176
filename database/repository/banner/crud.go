package bannerRepo

import (
	"context"
	"errors"
	"time"

	"hausly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new banner and returns its ID.
func (r *mongoBannerRepo) Create(ctx context.Context, banner models.Banner) (string, error) {
	if banner.ID == "" {
		banner.ID = uuid.New().String()
	}
	banner.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, banner)
	if err != nil {
		return "", err
	}
	return banner.ID, nil
}

// ListActive returns active banners in display order.
func (r *mongoBannerRepo) ListActive(ctx context.Context) ([]models.Banner, error) {
	opts := options.Find().SetSort(bson.M{"sortOrder": 1})
	cursor, err := r.coll.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var banners []models.Banner
	if err := cursor.All(ctx, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

// DeleteByID removes a banner by ID.
func (r *mongoBannerRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("banner not found")
	}
	return nil
}

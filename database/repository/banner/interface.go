package bannerRepo

import (
	"context"

	"hausly/database"
	"hausly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BannerRepository interface {
	Create(ctx context.Context, banner models.Banner) (string, error)
	ListActive(ctx context.Context) ([]models.Banner, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoBannerRepo struct {
	coll *mongo.Collection
}

// NewMongoBannerRepo returns a new BannerRepository instance using MongoDB.
func NewMongoBannerRepo() BannerRepository {
	db := database.MongoClient.Database("hausly")
	return &mongoBannerRepo{
		coll: db.Collection("banners"),
	}
}

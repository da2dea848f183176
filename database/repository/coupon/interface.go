package couponRepo

import (
	"context"
	"time"

	"hausly/database"
	"hausly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CouponRepository provides access to the coupon catalog. Reads return raw
// records; normalization happens in the coupon service.
type CouponRepository interface {
	Create(ctx context.Context, coupon models.Coupon) (string, error)
	GetByCode(ctx context.Context, code string) (*models.RawCoupon, error)
	ListActive(ctx context.Context) ([]models.RawCoupon, error)
	ListAllPublic(ctx context.Context) ([]models.RawCoupon, error)
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type mongoCouponRepo struct {
	coll *mongo.Collection
}

// NewMongoCouponRepo returns a new CouponRepository instance using MongoDB.
func NewMongoCouponRepo() CouponRepository {
	db := database.MongoClient.Database("hausly")
	return &mongoCouponRepo{
		coll: db.Collection("coupons"),
	}
}

package couponRepo

import (
	"context"
	"errors"
	"time"

	"hausly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new coupon and returns its ID.
func (r *mongoCouponRepo) Create(ctx context.Context, coupon models.Coupon) (string, error) {
	if coupon.ID == "" {
		coupon.ID = uuid.New().String()
	}
	coupon.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, coupon)
	if err != nil {
		return "", err
	}
	return coupon.ID, nil
}

// GetByCode returns a coupon by its code. Codes are matched case-sensitively.
func (r *mongoCouponRepo) GetByCode(ctx context.Context, code string) (*models.RawCoupon, error) {
	var raw models.RawCoupon
	err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return &raw, nil
}

// ListActive returns all active platform coupons (no vendor scope).
func (r *mongoCouponRepo) ListActive(ctx context.Context) ([]models.RawCoupon, error) {
	filter := bson.M{
		"active": true,
		"$or": []bson.M{
			{"vendorId": bson.M{"$exists": false}},
			{"vendorId": ""},
		},
	}
	return r.list(ctx, filter)
}

// ListAllPublic returns every active coupon, vendor-scoped ones included.
func (r *mongoCouponRepo) ListAllPublic(ctx context.Context) ([]models.RawCoupon, error) {
	return r.list(ctx, bson.M{"active": true})
}

func (r *mongoCouponRepo) list(ctx context.Context, filter bson.M) ([]models.RawCoupon, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var coupons []models.RawCoupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, err
	}
	return coupons, nil
}

// DeactivateExpired flips active off for coupons whose expiry has passed.
// Returns the number of coupons deactivated.
func (r *mongoCouponRepo) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	filter := bson.M{
		"active":    true,
		"expiresAt": bson.M{"$gt": time.Time{}, "$lte": now},
	}
	res, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"active": false}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// ErrCouponNotFound is returned when no coupon matches the requested code.
var ErrCouponNotFound = errors.New("coupon not found")

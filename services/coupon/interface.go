package coupon

import (
	"context"

	couponRepo "hausly/database/repository/coupon"
	"hausly/models"

	"go.uber.org/zap"
)

// CouponService serves the normalized coupon catalog.
type CouponService interface {
	ListCoupons(ctx context.Context) []models.Coupon
	ListPublicCoupons(ctx context.Context) []models.Coupon
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
}

// DefaultCouponService implements CouponService.
type DefaultCouponService struct {
	Repo   couponRepo.CouponRepository
	Logger *zap.Logger
}

package coupon

import (
	"context"

	"hausly/models"

	"go.uber.org/zap"
)

// ListCoupons returns the normalized platform coupon list. Repository
// failures degrade to an empty list so callers always have a usable input.
func (s *DefaultCouponService) ListCoupons(ctx context.Context) []models.Coupon {
	raws, err := s.Repo.ListActive(ctx)
	if err != nil {
		s.Logger.Warn("coupon: list fetch failed, serving empty list", zap.Error(err))
		return []models.Coupon{}
	}
	return NormalizeAll(raws)
}

// ListPublicCoupons returns every active coupon, vendor-scoped ones
// included, normalized. Failures degrade to an empty list.
func (s *DefaultCouponService) ListPublicCoupons(ctx context.Context) []models.Coupon {
	raws, err := s.Repo.ListAllPublic(ctx)
	if err != nil {
		s.Logger.Warn("coupon: public list fetch failed, serving empty list", zap.Error(err))
		return []models.Coupon{}
	}
	return NormalizeAll(raws)
}

// GetByCode fetches and normalizes a single coupon by its code.
func (s *DefaultCouponService) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	raw, err := s.Repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	c := Normalize(*raw)
	return &c, nil
}

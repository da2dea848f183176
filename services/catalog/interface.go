package catalog

import (
	"context"

	bannerRepo "hausly/database/repository/banner"
	reviewRepo "hausly/database/repository/review"
	"hausly/models"

	"go.uber.org/zap"
)

// CatalogService serves the storefront's display data: promotional banners
// and per-category review aggregates.
type CatalogService interface {
	ListBanners(ctx context.Context) []models.Banner
	ReviewStats(ctx context.Context, category string) (*models.ReviewStats, error)
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	BannerRepo bannerRepo.BannerRepository
	ReviewRepo reviewRepo.ReviewRepository
	Logger     *zap.Logger
}

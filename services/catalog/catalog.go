package catalog

import (
	"context"

	"hausly/models"

	"go.uber.org/zap"
)

// ListBanners returns the active banners in display order. Repository
// failures degrade to an empty list.
func (s *DefaultCatalogService) ListBanners(ctx context.Context) []models.Banner {
	banners, err := s.BannerRepo.ListActive(ctx)
	if err != nil {
		s.Logger.Warn("catalog: banner fetch failed, serving empty list", zap.Error(err))
		return []models.Banner{}
	}
	return banners
}

// ReviewStats returns the rating aggregate for a category.
func (s *DefaultCatalogService) ReviewStats(ctx context.Context, category string) (*models.ReviewStats, error) {
	return s.ReviewRepo.StatsByCategory(ctx, category)
}

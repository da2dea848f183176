package handlers

import (
	"net/http"

	"hausly/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the banner and review-stat display endpoints.
type CatalogHandler struct {
	Svc    catalog.CatalogService
	Logger *zap.Logger
}

func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

// GetBanners handles GET /api/banners.
func (h *CatalogHandler) GetBanners(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.ListBanners(c.Request.Context()))
}

// GetReviewStats handles GET /api/reviews/stats/:category.
func (h *CatalogHandler) GetReviewStats(c *gin.Context) {
	category := c.Param("category")
	stats, err := h.Svc.ReviewStats(c.Request.Context(), category)
	if err != nil {
		h.Logger.Error("GetReviewStats: aggregation failed", zap.String("category", category), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch review stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

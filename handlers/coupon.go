package handlers

import (
	"net/http"

	"hausly/services/coupon"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CouponHandler exposes the public coupon catalog endpoints.
type CouponHandler struct {
	Svc    coupon.CouponService
	Logger *zap.Logger
}

func NewCouponHandler(svc coupon.CouponService, logger *zap.Logger) *CouponHandler {
	return &CouponHandler{Svc: svc, Logger: logger}
}

// GetCoupons handles GET /api/coupons.
func (h *CouponHandler) GetCoupons(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.ListCoupons(c.Request.Context()))
}

// GetAllPublicCoupons handles GET /api/coupons/all/public.
func (h *CouponHandler) GetAllPublicCoupons(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.ListPublicCoupons(c.Request.Context()))
}

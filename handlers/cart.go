package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"time"

	couponRepo "hausly/database/repository/coupon"
	"hausly/middleware"
	"hausly/models"
	"hausly/services/cart"
	"hausly/services/coupon"
	"hausly/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartHandler exposes the cart, coupon application and tip endpoints.
type CartHandler struct {
	CartSvc   cart.CartService
	CouponSvc coupon.CouponService
	Logger    *zap.Logger
}

func NewCartHandler(cartSvc cart.CartService, couponSvc coupon.CouponService, logger *zap.Logger) *CartHandler {
	return &CartHandler{CartSvc: cartSvc, CouponSvc: couponSvc, Logger: logger}
}

// CreateSession handles POST /api/cart/session. It mints an anonymous
// session token the client carries for all cart operations.
func (h *CartHandler) CreateSession(c *gin.Context) {
	sessionID := uuid.New().String()
	token, err := utils.GenerateSessionToken(sessionID, 14*24*time.Hour)
	if err != nil {
		h.Logger.Error("CreateSession: failed to sign session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID": sessionID,
		"token":     token,
	})
}

// GetCart handles GET /api/cart.
func (h *CartHandler) GetCart(c *gin.Context) {
	items, err := h.CartSvc.GetCart(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.Logger.Error("GetCart: failed to load cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if cart.ResolveKey(item) == "" && item.Key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item has no identifier"})
		return
	}
	if item.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item price must be non-negative"})
		return
	}

	items, err := h.CartSvc.AddItem(c.Request.Context(), middleware.SessionID(c), item)
	if err != nil {
		h.Logger.Error("AddItem: mutation rejected", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// RemoveItem handles DELETE /api/cart/items/:key.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	key := c.Param("key")
	items, err := h.CartSvc.RemoveItem(c.Request.Context(), middleware.SessionID(c), key)
	if err != nil {
		h.Logger.Error("RemoveItem: mutation rejected", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ClearCart handles DELETE /api/cart.
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.CartSvc.ClearCart(c.Request.Context(), middleware.SessionID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}})
}

// GetSummary handles GET /api/cart/summary.
func (h *CartHandler) GetSummary(c *gin.Context) {
	summary, err := h.CartSvc.Summary(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.Logger.Error("GetSummary: failed to compute summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ApplyCoupon handles POST /api/cart/coupon.
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var body struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	cpn, err := h.CouponSvc.GetByCode(c.Request.Context(), body.Code)
	if err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "coupon not found"})
			return
		}
		h.Logger.Error("ApplyCoupon: coupon lookup failed", zap.String("code", body.Code), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up coupon"})
		return
	}

	if err := h.CartSvc.ApplyCoupon(c.Request.Context(), middleware.SessionID(c), *cpn); err != nil {
		var couponErr *cart.CouponError
		if errors.As(err, &couponErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": couponErr.Message, "code": couponErr.Code})
			return
		}
		h.Logger.Error("ApplyCoupon: failed", zap.String("code", body.Code), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply coupon"})
		return
	}

	h.GetSummary(c)
}

// RemoveCoupon handles DELETE /api/cart/coupon.
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	if err := h.CartSvc.RemoveCoupon(c.Request.Context(), middleware.SessionID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove coupon"})
		return
	}
	h.GetSummary(c)
}

var tipPattern = regexp.MustCompile(`^[0-9]+$`)

// SetTip handles PUT /api/cart/tip. Custom tips arrive as free text and
// must be digits only; presets carry the preset flag for toggle semantics.
func (h *CartHandler) SetTip(c *gin.Context) {
	var body struct {
		Amount string `json:"amount"`
		Preset bool   `json:"preset"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !tipPattern.MatchString(body.Amount) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tip must contain digits only"})
		return
	}
	amount, err := strconv.Atoi(body.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tip must contain digits only"})
		return
	}

	tip, err := h.CartSvc.SetTip(c.Request.Context(), middleware.SessionID(c), amount, body.Preset)
	if err != nil {
		if errors.Is(err, cart.ErrInvalidTip) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to set tip"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tip": tip})
}

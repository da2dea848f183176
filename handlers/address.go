package handlers

import (
	"errors"
	"net/http"

	"hausly/middleware"
	"hausly/models"
	"hausly/services/address"
	"hausly/services/cart"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AddressHandler exposes the saved address book endpoints.
type AddressHandler struct {
	Svc     address.AddressService
	CartSvc cart.CartService
	Logger  *zap.Logger
}

func NewAddressHandler(svc address.AddressService, cartSvc cart.CartService, logger *zap.Logger) *AddressHandler {
	return &AddressHandler{Svc: svc, CartSvc: cartSvc, Logger: logger}
}

// ListAddresses handles GET /api/addresses.
func (h *AddressHandler) ListAddresses(c *gin.Context) {
	addrs, err := h.Svc.List(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.Logger.Error("ListAddresses: failed to load address book", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load addresses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"addresses": addrs})
}

// SaveAddress handles POST /api/addresses.
func (h *AddressHandler) SaveAddress(c *gin.Context) {
	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	saved, err := h.Svc.Save(c.Request.Context(), middleware.SessionID(c), addr)
	if err != nil {
		switch {
		case errors.Is(err, address.ErrMissingFields), errors.Is(err, address.ErrAddressBookFull):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			h.Logger.Error("SaveAddress: failed to save address", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save address"})
		}
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteAddress handles DELETE /api/addresses/:id.
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, address.ErrAddressNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete address"})
		return
	}
	c.Status(http.StatusNoContent)
}

// SelectAddress handles PUT /api/addresses/:id/select.
func (h *AddressHandler) SelectAddress(c *gin.Context) {
	addressID := c.Param("id")

	addrs, err := h.Svc.List(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load addresses"})
		return
	}
	known := false
	for _, a := range addrs {
		if a.ID == addressID {
			known = true
			break
		}
	}
	if !known {
		c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
		return
	}

	if err := h.CartSvc.SelectAddress(c.Request.Context(), middleware.SessionID(c), addressID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to select address"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"selectedAddressId": addressID})
}

// LookupPincode handles GET /api/addresses/pincode/:pincode. A failed
// lookup returns an empty payload; the client leaves the fields unfilled.
func (h *AddressHandler) LookupPincode(c *gin.Context) {
	info := h.Svc.LookupPincode(c.Request.Context(), c.Param("pincode"))
	if info == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, info)
}

package cart

import (
	"errors"
	"fmt"
)

// ErrMutationFailed is the fixed description surfaced when a cart
// read-modify-write cycle fails; the persisted state is left untouched.
var ErrMutationFailed = errors.New("cart update failed")

// ErrInvalidTip is returned for tip amounts that are not non-negative integers.
var ErrInvalidTip = errors.New("tip must be a non-negative whole amount")

// CouponError describes a rejected coupon application.
type CouponError struct {
	Code    string
	Message string
}

func (e *CouponError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewMinOrderError reports that the cart subtotal is below the coupon's
// minimum order value. The message states the required minimum.
func NewMinOrderError(required float64) error {
	return &CouponError{
		Code:    "minOrderNotMet",
		Message: fmt.Sprintf("add items worth %.0f or more to use this coupon", required),
	}
}

// NewInactiveCouponError reports a coupon that is expired or disabled.
func NewInactiveCouponError(code string) error {
	return &CouponError{
		Code:    "couponInactive",
		Message: fmt.Sprintf("coupon %s is no longer active", code),
	}
}

package cart

import (
	"math"

	"hausly/models"
)

// Subtotal sums unit price times quantity over the cart.
func Subtotal(items []models.CartItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// effectiveOriginalPrice is the pre-discount reference price of an item.
// When the catalog only carries a percentage discount, the original price
// is reconstructed from it.
func effectiveOriginalPrice(it models.CartItem) float64 {
	if it.OriginalPrice > 0 {
		return it.OriginalPrice
	}
	if it.Discount > 0 && it.Discount < 100 {
		return math.Round(it.Price * 100 / (100 - it.Discount))
	}
	return it.Price
}

// CouponDiscount computes the discount a coupon yields for a subtotal.
// Percentage discounts round up and are capped by MaxDiscount when set;
// no discount ever exceeds the subtotal.
func CouponDiscount(coupon models.Coupon, subtotal float64) float64 {
	var discount float64
	switch coupon.DiscountType {
	case models.DiscountTypePercentage:
		discount = math.Ceil(subtotal * coupon.DiscountValue / 100)
		if coupon.MaxDiscount > 0 && discount > coupon.MaxDiscount {
			discount = coupon.MaxDiscount
		}
	default:
		// FLAT, including legacy records with no type at all.
		discount = coupon.DiscountValue
	}
	if discount > subtotal {
		discount = subtotal
	}
	return discount
}

// Quote derives the full priced view of a cart snapshot. It is pure: same
// items, coupon and tip always yield the same summary.
func Quote(items []models.CartItem, coupon *models.Coupon, tip float64) models.PriceSummary {
	subtotal := Subtotal(items)

	originalSubtotal := 0.0
	for _, it := range items {
		originalSubtotal += effectiveOriginalPrice(it) * float64(it.Quantity)
	}
	itemSavings := originalSubtotal - subtotal

	couponDiscount := 0.0
	couponCode := ""
	if coupon != nil {
		couponDiscount = CouponDiscount(*coupon, subtotal)
		couponCode = coupon.Code
	}

	// Promo discounts are not awarded under the current rule set, but the
	// term stays separate so a second discount source slots in additively.
	promoDiscount := 0.0
	totalDiscount := couponDiscount + promoDiscount

	payable := subtotal + tip - totalDiscount
	if payable < 0 {
		payable = 0
	}

	return models.PriceSummary{
		Subtotal:         subtotal,
		OriginalSubtotal: originalSubtotal,
		ItemSavings:      itemSavings,
		CouponDiscount:   couponDiscount,
		PromoDiscount:    promoDiscount,
		TotalDiscount:    totalDiscount,
		Tip:              tip,
		Payable:          payable,
		TotalSavings:     itemSavings + totalDiscount,
		RewardPoints:     RewardPoints(payable),
		CouponCode:       couponCode,
	}
}

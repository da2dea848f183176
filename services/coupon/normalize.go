package coupon

import "hausly/models"

// Normalize maps a raw coupon record onto the canonical shape, picking the
// newest populated field out of each legacy/current pair and filling
// defaults. Normalizing an already-canonical record is a no-op.
func Normalize(raw models.RawCoupon) models.Coupon {
	c := models.Coupon{
		ID:              raw.MongoID,
		Code:            raw.Code,
		Description:     raw.Description,
		DiscountType:    raw.DiscountType,
		DiscountValue:   raw.DiscountValue,
		MinOrderValue:   raw.MinOrderValue,
		MaxDiscount:     raw.MaxDiscount,
		TermsConditions: raw.TermsConditions,
		VendorID:        raw.VendorID,
		Active:          raw.Active,
		ExpiresAt:       raw.ExpiresAt,
		CreatedAt:       raw.CreatedAt,
	}

	if c.ID == "" {
		c.ID = raw.AltID
	}
	if c.Description == "" {
		c.Description = raw.Desc
	}
	if c.DiscountValue == 0 {
		c.DiscountValue = raw.Save
	}
	if c.MinOrderValue == 0 {
		c.MinOrderValue = raw.MinOrder
	}
	if c.DiscountType == "" {
		c.DiscountType = models.DiscountTypeFlat
	}
	if c.TermsConditions == nil {
		c.TermsConditions = []string{}
	}
	return c
}

// NormalizeAll normalizes a list of raw records.
func NormalizeAll(raws []models.RawCoupon) []models.Coupon {
	coupons := make([]models.Coupon, 0, len(raws))
	for _, raw := range raws {
		coupons = append(coupons, Normalize(raw))
	}
	return coupons
}

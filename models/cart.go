package models

// CartItem represents one purchasable unit (a service or a service variant)
// held in the cart. Key is the canonical identity resolved once at ingestion;
// the raw identifier fields are kept as passthrough for display and re-adds.
type CartItem struct {
	Key           string  `bson:"key" json:"key"`
	UID           string  `bson:"uid,omitempty" json:"uid,omitempty"`
	ID            string  `bson:"id,omitempty" json:"id,omitempty"`
	ServiceID     string  `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	Name          string  `bson:"name" json:"name"`
	Price         float64 `bson:"price" json:"price"`
	OriginalPrice float64 `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Discount      float64 `bson:"discount,omitempty" json:"discount,omitempty"`
	Quantity      int     `bson:"quantity" json:"quantity"`
	Image         string  `bson:"image,omitempty" json:"image,omitempty"`
	Category      string  `bson:"category,omitempty" json:"category,omitempty"`
	VariantName   string  `bson:"variantName,omitempty" json:"variantName,omitempty"`
	Description   string  `bson:"description,omitempty" json:"description,omitempty"`
}

// PriceSummary is the pricing engine's derived view of a cart snapshot.
type PriceSummary struct {
	Subtotal         float64 `json:"subtotal"`
	OriginalSubtotal float64 `json:"originalSubtotal"`
	ItemSavings      float64 `json:"itemSavings"`
	CouponDiscount   float64 `json:"couponDiscount"`
	PromoDiscount    float64 `json:"promoDiscount"`
	TotalDiscount    float64 `json:"totalDiscount"`
	Tip              float64 `json:"tip"`
	Payable          float64 `json:"payable"`
	TotalSavings     float64 `json:"totalSavings"`
	RewardPoints     int     `json:"rewardPoints"`
	CouponCode       string  `json:"couponCode,omitempty"`
}

// CartSession holds the per-session checkout selections that live alongside
// the cart list: the applied coupon, the tip, and the selected address.
type CartSession struct {
	AppliedCoupon     *Coupon `json:"appliedCoupon,omitempty"`
	Tip               int     `json:"tip"`
	TipPreset         bool    `json:"tipPreset"`
	SelectedAddressID string  `json:"selectedAddressId,omitempty"`
}

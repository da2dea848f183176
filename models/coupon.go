package models

import "time"

const (
	DiscountTypeFlat       = "FLAT"
	DiscountTypePercentage = "PERCENTAGE"
)

// Coupon is the canonical discount descriptor. Records arriving from the
// catalog may use legacy field names; they are mapped onto this shape by
// the coupon normalizer before anything else consumes them.
type Coupon struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	Code            string    `bson:"code" json:"code"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	DiscountType    string    `bson:"discountType" json:"discountType"`
	DiscountValue   float64   `bson:"discountValue" json:"discountValue"`
	MinOrderValue   float64   `bson:"minOrderValue" json:"minOrderValue"`
	MaxDiscount     float64   `bson:"maxDiscount,omitempty" json:"maxDiscount,omitempty"`
	TermsConditions []string  `bson:"termsConditions" json:"termsConditions"`
	VendorID        string    `bson:"vendorId,omitempty" json:"vendorId,omitempty"`
	Active          bool      `bson:"active" json:"active"`
	ExpiresAt       time.Time `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	CreatedAt       time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// RawCoupon is a coupon record as it arrives from the catalog. Older
// producers used different field names (desc, save, minOrder, id); both
// generations decode into this shape and Normalize picks the right one.
type RawCoupon struct {
	MongoID         string    `bson:"_id,omitempty" json:"_id,omitempty"`
	AltID           string    `bson:"id,omitempty" json:"id,omitempty"`
	Code            string    `bson:"code" json:"code"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	Desc            string    `bson:"desc,omitempty" json:"desc,omitempty"`
	DiscountType    string    `bson:"discountType,omitempty" json:"discountType,omitempty"`
	DiscountValue   float64   `bson:"discountValue,omitempty" json:"discountValue,omitempty"`
	Save            float64   `bson:"save,omitempty" json:"save,omitempty"`
	MinOrderValue   float64   `bson:"minOrderValue,omitempty" json:"minOrderValue,omitempty"`
	MinOrder        float64   `bson:"minOrder,omitempty" json:"minOrder,omitempty"`
	MaxDiscount     float64   `bson:"maxDiscount,omitempty" json:"maxDiscount,omitempty"`
	TermsConditions []string  `bson:"termsConditions,omitempty" json:"termsConditions,omitempty"`
	VendorID        string    `bson:"vendorId,omitempty" json:"vendorId,omitempty"`
	Active          bool      `bson:"active" json:"active"`
	ExpiresAt       time.Time `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	CreatedAt       time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

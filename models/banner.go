package models

import "time"

// Banner is a promotional banner shown on the storefront home screen.
type Banner struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	Title      string    `bson:"title" json:"title"`
	Subtitle   string    `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	ImageURL   string    `bson:"imageUrl" json:"imageUrl"`
	Link       string    `bson:"link,omitempty" json:"link,omitempty"`
	CouponCode string    `bson:"couponCode,omitempty" json:"couponCode,omitempty"`
	SortOrder  int       `bson:"sortOrder" json:"sortOrder"`
	Active     bool      `bson:"active" json:"active"`
	CreatedAt  time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

package models

import "time"

// Review is a single customer rating for a completed service.
type Review struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Category  string    `bson:"category" json:"category"`
	ServiceID string    `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	Rating    float64   `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// ReviewStats is the aggregated rating summary for a service category.
type ReviewStats struct {
	Category  string  `bson:"category" json:"category"`
	AvgRating float64 `bson:"avgRating" json:"avgRating"`
	Count     int64   `bson:"count" json:"count"`
}

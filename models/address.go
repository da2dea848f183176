package models

import "time"

// Address is a saved delivery address. The per-session address book is
// capped at five entries.
type Address struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Line1     string    `json:"line1"`
	Line2     string    `json:"line2,omitempty"`
	Landmark  string    `json:"landmark,omitempty"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Pincode   string    `json:"pincode"`
	Tag       string    `json:"tag,omitempty"` // e.g. "home", "work"
	CreatedAt time.Time `json:"createdAt"`
}

// PincodeInfo is the autofill payload resolved from a postal pincode.
type PincodeInfo struct {
	City  string `json:"city"`
	State string `json:"state"`
}

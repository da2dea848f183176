// File: utils/constants.go
package utils

import "time"

// CartKeyPrefix is the prefix for persisted cart list keys.
const CartKeyPrefix = "cart:"

// SessionKeyPrefix is the prefix for per-session checkout state keys
// (applied coupon, tip, selected address).
const SessionKeyPrefix = "session:"

// AddressKeyPrefix is the prefix for saved address book keys.
const AddressKeyPrefix = "addresses:"

// SessionTTL is the time-to-live for cart and session state entries.
const SessionTTL = 14 * 24 * time.Hour

// MaxSavedAddresses caps the address book size per session.
const MaxSavedAddresses = 5

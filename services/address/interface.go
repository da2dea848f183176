package address

import (
	"context"
	"errors"

	"hausly/models"
)

// ErrAddressBookFull is returned when saving past the address book cap.
var ErrAddressBookFull = errors.New("address book is full, remove an address first")

// ErrAddressNotFound is returned for lookups of unknown address IDs.
var ErrAddressNotFound = errors.New("address not found")

// ErrMissingFields is returned when a required address field is empty.
var ErrMissingFields = errors.New("name, phone, line1, city, state and pincode are required")

// AddressService manages a session's saved address book.
type AddressService interface {
	List(ctx context.Context, sessionID string) ([]models.Address, error)
	Save(ctx context.Context, sessionID string, addr models.Address) (*models.Address, error)
	Delete(ctx context.Context, sessionID string, addressID string) error
	LookupPincode(ctx context.Context, pincode string) *models.PincodeInfo
}

// PincodeResolver resolves a postal pincode to city/state for autofill.
type PincodeResolver interface {
	Resolve(ctx context.Context, pincode string) (*models.PincodeInfo, error)
}

// AddressStore persists a session's address list.
type AddressStore interface {
	Load(ctx context.Context, sessionID string) ([]models.Address, error)
	Save(ctx context.Context, sessionID string, addrs []models.Address) error
}

// DefaultAddressService implements AddressService.
type DefaultAddressService struct {
	Store    AddressStore
	Resolver PincodeResolver
}

package address

import (
	"context"
	"time"

	"hausly/models"
	"hausly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// List returns the session's saved addresses.
func (s *DefaultAddressService) List(ctx context.Context, sessionID string) ([]models.Address, error) {
	return s.Store.Load(ctx, sessionID)
}

// Save validates and appends an address to the session's book. The book is
// capped; saving past the cap is rejected rather than evicting an entry.
func (s *DefaultAddressService) Save(ctx context.Context, sessionID string, addr models.Address) (*models.Address, error) {
	if addr.Name == "" || addr.Phone == "" || addr.Line1 == "" ||
		addr.City == "" || addr.State == "" || addr.Pincode == "" {
		return nil, ErrMissingFields
	}

	addrs, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(addrs) >= utils.MaxSavedAddresses {
		return nil, ErrAddressBookFull
	}

	addr.ID = uuid.New().String()
	addr.CreatedAt = time.Now()
	addrs = append(addrs, addr)

	if err := s.Store.Save(ctx, sessionID, addrs); err != nil {
		return nil, err
	}
	return &addr, nil
}

// Delete removes an address from the session's book by ID.
func (s *DefaultAddressService) Delete(ctx context.Context, sessionID string, addressID string) error {
	addrs, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	next := addrs[:0:0]
	found := false
	for _, a := range addrs {
		if a.ID == addressID {
			found = true
			continue
		}
		next = append(next, a)
	}
	if !found {
		return ErrAddressNotFound
	}
	return s.Store.Save(ctx, sessionID, next)
}

// LookupPincode resolves city/state for autofill. Lookup failures are
// swallowed: the caller gets nil and the fields stay unfilled.
func (s *DefaultAddressService) LookupPincode(ctx context.Context, pincode string) *models.PincodeInfo {
	if s.Resolver == nil {
		return nil
	}
	info, err := s.Resolver.Resolve(ctx, pincode)
	if err != nil {
		zap.L().Debug("address: pincode lookup failed", zap.String("pincode", pincode), zap.Error(err))
		return nil
	}
	return info
}

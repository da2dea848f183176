package address

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"hausly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	info *models.PincodeInfo
	err  error
}

func (r *stubResolver) Resolve(context.Context, string) (*models.PincodeInfo, error) {
	return r.info, r.err
}

func validAddress(n int) models.Address {
	return models.Address{
		Name:    fmt.Sprintf("Person %d", n),
		Phone:   "9999999999",
		Line1:   "12 Lane",
		City:    "Pune",
		State:   "Maharashtra",
		Pincode: "411001",
	}
}

func newTestAddressService(resolver PincodeResolver) *DefaultAddressService {
	return &DefaultAddressService{
		Store:    NewMemoryAddressStore(),
		Resolver: resolver,
	}
}

func TestSave_RequiresAllFields(t *testing.T) {
	svc := newTestAddressService(nil)
	addr := validAddress(1)
	addr.City = ""

	_, err := svc.Save(context.Background(), "s", addr)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestSave_AssignsIDAndPersists(t *testing.T) {
	svc := newTestAddressService(nil)

	saved, err := svc.Save(context.Background(), "s", validAddress(1))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	addrs, err := svc.List(context.Background(), "s")
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.Equal(t, saved.ID, addrs[0].ID)
}

func TestSave_CapsAtFive(t *testing.T) {
	svc := newTestAddressService(nil)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Save(ctx, "s", validAddress(i))
		require.NoError(t, err)
	}

	_, err := svc.Save(ctx, "s", validAddress(5))
	assert.ErrorIs(t, err, ErrAddressBookFull)

	addrs, err := svc.List(ctx, "s")
	require.NoError(t, err)
	assert.Len(t, addrs, 5)
}

func TestDelete(t *testing.T) {
	svc := newTestAddressService(nil)
	ctx := context.Background()

	saved, err := svc.Save(ctx, "s", validAddress(1))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "s", saved.ID))
	assert.ErrorIs(t, svc.Delete(ctx, "s", saved.ID), ErrAddressNotFound)

	addrs, err := svc.List(ctx, "s")
	require.NoError(t, err)
	assert.Empty(t, addrs)
}

func TestLookupPincode_FailureIsSilent(t *testing.T) {
	svc := newTestAddressService(&stubResolver{err: errors.New("upstream down")})
	assert.Nil(t, svc.LookupPincode(context.Background(), "411001"))
}

func TestLookupPincode_Success(t *testing.T) {
	svc := newTestAddressService(&stubResolver{
		info: &models.PincodeInfo{City: "Pune", State: "Maharashtra"},
	})

	info := svc.LookupPincode(context.Background(), "411001")
	require.NotNil(t, info)
	assert.Equal(t, "Pune", info.City)
}

func TestLookupPincode_NoResolverConfigured(t *testing.T) {
	svc := newTestAddressService(nil)
	assert.Nil(t, svc.LookupPincode(context.Background(), "411001"))
}

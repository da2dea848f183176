package cart

import (
	"context"
	"sync"
	"time"

	"hausly/models"
)

// CartService manages a session's cart, applied coupon, tip and address
// selection, and derives the priced summary from the latest snapshot.
type CartService interface {
	GetCart(ctx context.Context, sessionID string) ([]models.CartItem, error)
	AddItem(ctx context.Context, sessionID string, item models.CartItem) ([]models.CartItem, error)
	RemoveItem(ctx context.Context, sessionID string, key string) ([]models.CartItem, error)
	ClearCart(ctx context.Context, sessionID string) error

	ApplyCoupon(ctx context.Context, sessionID string, coupon models.Coupon) error
	RemoveCoupon(ctx context.Context, sessionID string) error
	SetTip(ctx context.Context, sessionID string, amount int, preset bool) (int, error)
	SelectAddress(ctx context.Context, sessionID string, addressID string) error

	Summary(ctx context.Context, sessionID string) (*models.PriceSummary, error)
}

// DefaultCartService implements CartService on top of a CartStore and a
// SessionStore. Latency is the simulated backend write window applied to
// every mutation before its read-modify-write cycle runs.
type DefaultCartService struct {
	Store    CartStore
	Sessions SessionStore
	Latency  time.Duration

	locks sync.Map // sessionID -> *sync.Mutex
}

// lock returns the mutex serializing mutations for one session. The store
// has no transactional primitive, so only one read-modify-write cycle may
// be in flight per session.
func (s *DefaultCartService) lock(sessionID string) *sync.Mutex {
	m, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	return m.(*sync.Mutex)
}

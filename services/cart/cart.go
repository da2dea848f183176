package cart

import (
	"context"
	"strings"
	"time"

	"hausly/models"

	"go.uber.org/zap"
)

// ResolveKey returns the canonical identity for an incoming item. Items
// arrive from different producers with inconsistent identifier fields, so
// the fallback chain runs once here and the result is stamped onto the
// entry; lookups afterwards compare Key only.
func ResolveKey(item models.CartItem) string {
	if item.UID != "" {
		return item.UID
	}
	if item.ID != "" {
		return item.ID
	}
	return item.ServiceID
}

// VariantKey derives the identity of a service variant from the base
// service ID and the variant name. Internal whitespace in the name is
// collapsed to underscores so the key is stable for the same pair.
func VariantKey(baseServiceID, variantName string) string {
	return baseServiceID + "_" + strings.Join(strings.Fields(variantName), "_")
}

// GetCart returns the persisted line-item list for a session.
func (s *DefaultCartService) GetCart(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	return s.Store.Load(ctx, sessionID)
}

// AddItem inserts the item into the session's cart if its identity is not
// already present. Quantity saturates at 1 per identity: adding an identity
// that is already in the cart leaves the cart unchanged.
func (s *DefaultCartService) AddItem(ctx context.Context, sessionID string, item models.CartItem) ([]models.CartItem, error) {
	// A mutation, once issued, runs to completion and persists its result
	// regardless of what happens to the caller.
	ctx = context.WithoutCancel(ctx)
	s.settle()

	mu := s.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	items, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		zap.L().Error("cart: add failed to load cart", zap.String("sessionID", sessionID), zap.Error(err))
		return nil, ErrMutationFailed
	}

	key := item.Key
	if key == "" {
		key = ResolveKey(item)
		// A variant is a distinct identity from its base service; derive
		// its composite key here so lookups below compare Key only.
		if item.VariantName != "" {
			key = VariantKey(key, item.VariantName)
		}
	}

	found := false
	for i := range items {
		if items[i].Key != key {
			continue
		}
		found = true
		// Entries at quantity 0 never survive a remove, so this bump is
		// unreachable in practice; quantity still may never pass 1.
		if items[i].Quantity < 1 {
			items[i].Quantity = 1
		}
	}

	if !found {
		entry := item
		entry.Key = key
		entry.Quantity = 1
		items = append(items, entry)
	}

	if err := s.Store.Save(ctx, sessionID, items); err != nil {
		zap.L().Error("cart: add failed to save cart", zap.String("sessionID", sessionID), zap.Error(err))
		return nil, ErrMutationFailed
	}
	return items, nil
}

// RemoveItem removes the identity from the session's cart. Unknown keys are
// a no-op. A quantity above 1 is decremented instead of deleted; under the
// current single-unit model that branch never runs, but the semantics are
// kept in case quantities are generalized later.
func (s *DefaultCartService) RemoveItem(ctx context.Context, sessionID string, key string) ([]models.CartItem, error) {
	ctx = context.WithoutCancel(ctx)
	s.settle()

	mu := s.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	items, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		zap.L().Error("cart: remove failed to load cart", zap.String("sessionID", sessionID), zap.Error(err))
		return nil, ErrMutationFailed
	}

	changed := false
	next := items[:0:0]
	for _, it := range items {
		if it.Key != key {
			next = append(next, it)
			continue
		}
		changed = true
		if it.Quantity > 1 {
			it.Quantity--
			next = append(next, it)
		}
	}

	if !changed {
		return items, nil
	}

	if err := s.Store.Save(ctx, sessionID, next); err != nil {
		zap.L().Error("cart: remove failed to save cart", zap.String("sessionID", sessionID), zap.Error(err))
		return nil, ErrMutationFailed
	}
	return next, nil
}

// ClearCart drops the session's cart list entirely.
func (s *DefaultCartService) ClearCart(ctx context.Context, sessionID string) error {
	ctx = context.WithoutCancel(ctx)

	mu := s.lock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	if err := s.Store.Clear(ctx, sessionID); err != nil {
		zap.L().Error("cart: clear failed", zap.String("sessionID", sessionID), zap.Error(err))
		return ErrMutationFailed
	}
	return nil
}

// settle waits out the simulated backend write latency.
func (s *DefaultCartService) settle() {
	if s.Latency > 0 {
		time.Sleep(s.Latency)
	}
}

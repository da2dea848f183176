package cart

import (
	"context"

	"hausly/models"
)

// ApplyCoupon applies the coupon to the session after checking the minimum
// order gate against the current subtotal. A rejected application leaves
// any previously applied coupon in place.
func (s *DefaultCartService) ApplyCoupon(ctx context.Context, sessionID string, coupon models.Coupon) error {
	if !coupon.Active {
		return NewInactiveCouponError(coupon.Code)
	}

	items, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	if Subtotal(items) < coupon.MinOrderValue {
		return NewMinOrderError(coupon.MinOrderValue)
	}

	sess, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	sess.AppliedCoupon = &coupon
	return s.Sessions.Save(ctx, sessionID, sess)
}

// RemoveCoupon clears the applied coupon, if any.
func (s *DefaultCartService) RemoveCoupon(ctx context.Context, sessionID string) error {
	sess, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.AppliedCoupon == nil {
		return nil
	}
	sess.AppliedCoupon = nil
	return s.Sessions.Save(ctx, sessionID, sess)
}

// SetTip records the tip for the session and returns the resulting amount.
// Re-selecting the currently selected preset toggles the tip back to zero.
func (s *DefaultCartService) SetTip(ctx context.Context, sessionID string, amount int, preset bool) (int, error) {
	if amount < 0 {
		return 0, ErrInvalidTip
	}

	sess, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	if preset && sess.TipPreset && sess.Tip == amount {
		sess.Tip = 0
		sess.TipPreset = false
	} else {
		sess.Tip = amount
		sess.TipPreset = preset
	}

	if err := s.Sessions.Save(ctx, sessionID, sess); err != nil {
		return 0, err
	}
	return sess.Tip, nil
}

// SelectAddress marks the address as the session's delivery address.
func (s *DefaultCartService) SelectAddress(ctx context.Context, sessionID string, addressID string) error {
	sess, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	sess.SelectedAddressID = addressID
	return s.Sessions.Save(ctx, sessionID, sess)
}

// Summary recomputes the priced view from the latest cart snapshot plus the
// session's applied coupon and tip.
func (s *DefaultCartService) Summary(ctx context.Context, sessionID string) (*models.PriceSummary, error) {
	items, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	summary := Quote(items, sess.AppliedCoupon, float64(sess.Tip))
	return &summary, nil
}

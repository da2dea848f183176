package cart

import (
	"context"
	"testing"

	"hausly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatCoupon(code string, value, minOrder float64) models.Coupon {
	return models.Coupon{
		Code:          code,
		DiscountType:  models.DiscountTypeFlat,
		DiscountValue: value,
		MinOrderValue: minOrder,
		Active:        true,
	}
}

func TestApplyCoupon_MinOrderGateRejects(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	_, err := svc.AddItem(ctx, "s", models.CartItem{ID: "svc-1", Price: 300})
	require.NoError(t, err)

	err = svc.ApplyCoupon(ctx, "s", flatCoupon("BIG", 100, 500))
	require.Error(t, err)
	var couponErr *CouponError
	require.ErrorAs(t, err, &couponErr)
	assert.Equal(t, "minOrderNotMet", couponErr.Code)
	assert.Contains(t, couponErr.Message, "500")
}

func TestApplyCoupon_RejectionKeepsPreviousCoupon(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	_, err := svc.AddItem(ctx, "s", models.CartItem{ID: "svc-1", Price: 300})
	require.NoError(t, err)

	require.NoError(t, svc.ApplyCoupon(ctx, "s", flatCoupon("SMALL", 50, 0)))
	require.Error(t, svc.ApplyCoupon(ctx, "s", flatCoupon("BIG", 100, 500)))

	summary, err := svc.Summary(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, "SMALL", summary.CouponCode)
	assert.Equal(t, 50.0, summary.CouponDiscount)
}

func TestApplyCoupon_ReplacesPreviousCoupon(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	_, err := svc.AddItem(ctx, "s", models.CartItem{ID: "svc-1", Price: 500})
	require.NoError(t, err)

	require.NoError(t, svc.ApplyCoupon(ctx, "s", flatCoupon("FIRST", 50, 0)))
	require.NoError(t, svc.ApplyCoupon(ctx, "s", flatCoupon("SECOND", 80, 0)))

	summary, err := svc.Summary(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, "SECOND", summary.CouponCode)
}

func TestApplyCoupon_InactiveRejected(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	cpn := flatCoupon("GONE", 50, 0)
	cpn.Active = false

	err := svc.ApplyCoupon(ctx, "s", cpn)
	var couponErr *CouponError
	require.ErrorAs(t, err, &couponErr)
	assert.Equal(t, "couponInactive", couponErr.Code)
}

func TestRemoveCoupon(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	_, err := svc.AddItem(ctx, "s", models.CartItem{ID: "svc-1", Price: 500})
	require.NoError(t, err)
	require.NoError(t, svc.ApplyCoupon(ctx, "s", flatCoupon("SAVE", 100, 0)))

	require.NoError(t, svc.RemoveCoupon(ctx, "s"))

	summary, err := svc.Summary(ctx, "s")
	require.NoError(t, err)
	assert.Empty(t, summary.CouponCode)
	assert.Equal(t, 500.0, summary.Payable)

	// Removing again is a no-op.
	require.NoError(t, svc.RemoveCoupon(ctx, "s"))
}

func TestSetTip_PresetToggle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tip, err := svc.SetTip(ctx, "s", 50, true)
	require.NoError(t, err)
	assert.Equal(t, 50, tip)

	// Selecting the same preset again toggles it off.
	tip, err = svc.SetTip(ctx, "s", 50, true)
	require.NoError(t, err)
	assert.Equal(t, 0, tip)

	// A different preset replaces rather than toggles.
	tip, err = svc.SetTip(ctx, "s", 30, true)
	require.NoError(t, err)
	assert.Equal(t, 30, tip)
	tip, err = svc.SetTip(ctx, "s", 50, true)
	require.NoError(t, err)
	assert.Equal(t, 50, tip)
}

func TestSetTip_CustomDoesNotToggle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tip, err := svc.SetTip(ctx, "s", 75, false)
	require.NoError(t, err)
	assert.Equal(t, 75, tip)

	// Re-entering the same custom amount keeps it.
	tip, err = svc.SetTip(ctx, "s", 75, false)
	require.NoError(t, err)
	assert.Equal(t, 75, tip)
}

func TestSetTip_NegativeRejected(t *testing.T) {
	svc := newTestService()
	_, err := svc.SetTip(context.Background(), "s", -5, false)
	assert.ErrorIs(t, err, ErrInvalidTip)
}

func TestSummary_EndToEnd(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	_, err := svc.AddItem(ctx, "s", models.CartItem{ID: "svc-1", Price: 500})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, 500.0, summary.Subtotal)
	assert.Equal(t, 500.0, summary.Payable)

	require.NoError(t, svc.ApplyCoupon(ctx, "s", flatCoupon("SAVE100", 100, 200)))
	_, err = svc.SetTip(ctx, "s", 50, true)
	require.NoError(t, err)

	summary, err = svc.Summary(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, 100.0, summary.CouponDiscount)
	assert.Equal(t, 50.0, summary.Tip)
	assert.Equal(t, 450.0, summary.Payable)
}

func TestSelectAddress(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.SelectAddress(ctx, "s", "addr-1"))
	sess, err := svc.Sessions.Load(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, "addr-1", sess.SelectedAddressID)
}

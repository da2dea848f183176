package cart

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"hausly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *DefaultCartService {
	return &DefaultCartService{
		Store:    NewMemoryCartStore(),
		Sessions: NewMemorySessionStore(),
	}
}

func TestResolveKey_FallbackChain(t *testing.T) {
	assert.Equal(t, "u1", ResolveKey(models.CartItem{UID: "u1", ID: "i1", ServiceID: "s1"}))
	assert.Equal(t, "i1", ResolveKey(models.CartItem{ID: "i1", ServiceID: "s1"}))
	assert.Equal(t, "s1", ResolveKey(models.CartItem{ServiceID: "s1"}))
	assert.Equal(t, "", ResolveKey(models.CartItem{}))
}

func TestVariantKey_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "svc-1_Deep_Clean", VariantKey("svc-1", "Deep Clean"))
	assert.Equal(t, "svc-1_Deep_Clean", VariantKey("svc-1", "  Deep   Clean "))
	assert.Equal(t, "svc-1_Basic", VariantKey("svc-1", "Basic"))
}

func TestAddItem_InsertsWithQuantityOne(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	items, err := svc.AddItem(ctx, "s", models.CartItem{ID: "svc-1", Name: "Cleaning", Price: 500, Quantity: 7})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "svc-1", items[0].Key)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAddItem_IsIdempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.AddItem(ctx, "s", models.CartItem{ID: "svc-1", Name: "Cleaning", Price: 500})
	require.NoError(t, err)
	second, err := svc.AddItem(ctx, "s", models.CartItem{ID: "svc-1", Name: "Cleaning", Price: 500})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, second, 1)
	assert.Equal(t, 1, second[0].Quantity)
}

func TestAddItem_VariantIsDistinctFromBase(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s", models.CartItem{ServiceID: "svc-1", Name: "Cleaning", Price: 500})
	require.NoError(t, err)
	items, err := svc.AddItem(ctx, "s", models.CartItem{ServiceID: "svc-1", Name: "Cleaning", VariantName: "Deep Clean", Price: 800})
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "svc-1", items[0].Key)
	assert.Equal(t, "svc-1_Deep_Clean", items[1].Key)
	assert.Equal(t, 800.0, items[1].Price)
}

func TestAddItem_SameVariantIsIdempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	variant := models.CartItem{ServiceID: "svc-1", VariantName: "Deep  Clean", Price: 800}
	first, err := svc.AddItem(ctx, "s", variant)
	require.NoError(t, err)
	second, err := svc.AddItem(ctx, "s", variant)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, second, 1)
	assert.Equal(t, "svc-1_Deep_Clean", second[0].Key)
}

func TestRemoveItem_UnknownKeyIsNoOp(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	before, err := svc.AddItem(ctx, "s", models.CartItem{ID: "svc-1", Price: 500})
	require.NoError(t, err)

	after, err := svc.RemoveItem(ctx, "s", "nope")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRemoveItem_DeletesSingleUnitEntry(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s", models.CartItem{ID: "svc-1", Price: 500})
	require.NoError(t, err)

	items, err := svc.RemoveItem(ctx, "s", "svc-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRemoveItem_DecrementsAboveOne(t *testing.T) {
	// Quantity above 1 cannot be reached through AddItem; seed the store
	// directly to exercise the decrement branch.
	svc := newTestService()
	ctx := context.Background()
	require.NoError(t, svc.Store.Save(ctx, "s", []models.CartItem{
		{Key: "svc-1", Price: 500, Quantity: 3},
	}))

	items, err := svc.RemoveItem(ctx, "s", "svc-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemoveThenAdd_ReinsertsFreshEntry(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s", models.CartItem{ID: "svc-1", Name: "Old", Price: 100})
	require.NoError(t, err)
	_, err = svc.RemoveItem(ctx, "s", "svc-1")
	require.NoError(t, err)

	items, err := svc.AddItem(ctx, "s", models.CartItem{ID: "svc-1", Name: "New", Price: 120})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "New", items[0].Name)
	assert.Equal(t, 120.0, items[0].Price)
}

func TestAddItem_ZeroQuantityEntryBumpsToOne(t *testing.T) {
	// A quantity-0 entry should never be persisted; if one is, add repairs
	// it rather than stacking a duplicate.
	svc := newTestService()
	ctx := context.Background()
	require.NoError(t, svc.Store.Save(ctx, "s", []models.CartItem{
		{Key: "svc-1", Price: 500, Quantity: 0},
	}))

	items, err := svc.AddItem(ctx, "s", models.CartItem{ID: "svc-1", Price: 500})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestMutations_AreSerializedPerSession(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.AddItem(ctx, "s", models.CartItem{ID: fmt.Sprintf("svc-%d", i), Price: 10})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	items, err := svc.GetCart(ctx, "s")
	require.NoError(t, err)
	assert.Len(t, items, 20)
}

func TestMutations_DistinctSessionsDoNotInterfere(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "a", models.CartItem{ID: "svc-1", Price: 100})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "b", models.CartItem{ID: "svc-2", Price: 200})
	require.NoError(t, err)

	itemsA, err := svc.GetCart(ctx, "a")
	require.NoError(t, err)
	itemsB, err := svc.GetCart(ctx, "b")
	require.NoError(t, err)

	require.Len(t, itemsA, 1)
	require.Len(t, itemsB, 1)
	assert.Equal(t, "svc-1", itemsA[0].Key)
	assert.Equal(t, "svc-2", itemsB[0].Key)
}

func TestClearCart(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s", models.CartItem{ID: "svc-1", Price: 100})
	require.NoError(t, err)
	require.NoError(t, svc.ClearCart(ctx, "s"))

	items, err := svc.GetCart(ctx, "s")
	require.NoError(t, err)
	assert.Empty(t, items)
}

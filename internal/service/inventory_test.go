package service

import (
	"context"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/shop-admin/internal/apperr"
	"github.com/tuanvumaihuynh/shop-admin/internal/model"
	"github.com/tuanvumaihuynh/shop-admin/pkg/ptr"
	"github.com/tuanvumaihuynh/shop-admin/pkg/validator"
)

func newTestInventoryService(store *fakeStore) *inventoryService {
	svc := NewInventoryService(
		&fakeDB{store: store},
		slog.New(slog.DiscardHandler),
		validator.MustNewDefaultValidator(),
		&fakeProductRepo{store: store},
		&fakeInventoryRepo{store: store},
		&fakeHistoryRepo{store: store},
	).(*inventoryService)

	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return svc
}

func TestInventoryService_ApplyDelta(t *testing.T) {
	ctx := context.Background()

	t.Run("Should record every accepted delta in order", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Electronics")
		product := store.addProduct("Laptop", category.ID, 100, 10)
		svc := newTestInventoryService(store)

		for _, delta := range []int{10, -3, 5} {
			_, err := svc.ApplyDelta(ctx, ApplyDeltaParams{ProductID: product.ID, QuantityChange: delta})
			require.NoError(t, err)
		}

		history, err := svc.GetHistory(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Laptop", history.ProductName)
		require.Len(t, history.Changes, 3)

		newQuantities := make([]int, 0, len(history.Changes))
		for _, c := range history.Changes {
			newQuantities = append(newQuantities, c.NewQuantity)
		}
		assert.Equal(t, []int{110, 107, 112}, newQuantities)
		assert.True(t, history.Changes[0].ChangedAt.Before(history.Changes[2].ChangedAt))
		assert.Equal(t, 112, store.inventory[product.ID].RemainingQuantity)
	})

	t.Run("Should return the applied change", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Electronics")
		product := store.addProduct("Laptop", category.ID, 100, 10)
		svc := newTestInventoryService(store)

		change, err := svc.ApplyDelta(ctx, ApplyDeltaParams{ProductID: product.ID, QuantityChange: -40})
		require.NoError(t, err)
		assert.Equal(t, product.ID, change.ProductID)
		assert.Equal(t, -40, change.QuantityChange)
		assert.Equal(t, 60, change.NewQuantity)
		assert.Equal(t, time.UTC, change.ChangedAt.Location())
	})

	t.Run("Should allow consuming the whole stock", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Electronics")
		product := store.addProduct("Laptop", category.ID, 5, 0)
		svc := newTestInventoryService(store)

		change, err := svc.ApplyDelta(ctx, ApplyDeltaParams{ProductID: product.ID, QuantityChange: -5})
		require.NoError(t, err)
		assert.Equal(t, 0, change.NewQuantity)
	})

	t.Run("Should reject a negative result without writing", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Electronics")
		product := store.addProduct("Laptop", category.ID, 100, 10)
		svc := newTestInventoryService(store)

		_, err := svc.ApplyDelta(ctx, ApplyDeltaParams{ProductID: product.ID, QuantityChange: -1_000_000})
		require.ErrorIs(t, err, apperr.InventoryNegativeErr)
		assert.Equal(t, 100, store.inventory[product.ID].RemainingQuantity)
		assert.Empty(t, store.historyFor(product.ID))
	})

	t.Run("Should reject a result beyond the column range", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Electronics")
		product := store.addProduct("Laptop", category.ID, 100, 10)
		svc := newTestInventoryService(store)

		_, err := svc.ApplyDelta(ctx, ApplyDeltaParams{ProductID: product.ID, QuantityChange: math.MaxInt32})
		require.ErrorIs(t, err, apperr.InventoryOverflowErr)
		assert.Equal(t, 100, store.inventory[product.ID].RemainingQuantity)
		assert.Empty(t, store.historyFor(product.ID))
	})

	t.Run("Should return product not found", func(t *testing.T) {
		store := newFakeStore()
		svc := newTestInventoryService(store)

		_, err := svc.ApplyDelta(ctx, ApplyDeltaParams{ProductID: 42, QuantityChange: 1})
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})

	t.Run("Should return inventory not found", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Electronics")
		product := store.addProduct("Laptop", category.ID, 100, 10)
		delete(store.inventory, product.ID)
		svc := newTestInventoryService(store)

		_, err := svc.ApplyDelta(ctx, ApplyDeltaParams{ProductID: product.ID, QuantityChange: 1})
		assert.ErrorIs(t, err, apperr.InventoryNotFoundErr)
	})

	t.Run("Should roll back the counter when the history insert fails", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Electronics")
		product := store.addProduct("Laptop", category.ID, 100, 10)
		store.failHistoryInsert = errFakeStore
		svc := newTestInventoryService(store)

		_, err := svc.ApplyDelta(ctx, ApplyDeltaParams{ProductID: product.ID, QuantityChange: 7})
		require.ErrorIs(t, err, errFakeStore)
		assert.Equal(t, 100, store.inventory[product.ID].RemainingQuantity)
		assert.Empty(t, store.historyFor(product.ID))
	})

	t.Run("Should reject invalid product id", func(t *testing.T) {
		svc := newTestInventoryService(newFakeStore())

		_, err := svc.ApplyDelta(ctx, ApplyDeltaParams{ProductID: 0, QuantityChange: 1})
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})
}

func TestInventoryService_LedgerConsistency(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	category := store.addCategory("Books")
	product := store.addProduct("Novel", category.ID, 20, 5)
	svc := newTestInventoryService(store)

	deltas := []int{5, -30, -10, 100, -200, 3, -88}
	accepted := 0
	for _, delta := range deltas {
		if _, err := svc.ApplyDelta(ctx, ApplyDeltaParams{ProductID: product.ID, QuantityChange: delta}); err == nil {
			accepted += delta
		} else {
			require.ErrorIs(t, err, apperr.InventoryNegativeErr)
		}
	}

	inv := store.inventory[product.ID]
	assert.Equal(t, inv.InitialQuantity+accepted, inv.RemainingQuantity)

	history := store.historyFor(product.ID)
	require.NotEmpty(t, history)
	assert.Equal(t, inv.RemainingQuantity, history[len(history)-1].NewQuantity)

	sum := 0
	for _, h := range history {
		sum += h.QuantityChange
	}
	assert.Equal(t, accepted, sum)
}

func TestInventoryService_GetHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return empty history for untouched product", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Books")
		product := store.addProduct("Novel", category.ID, 20, 5)
		svc := newTestInventoryService(store)

		history, err := svc.GetHistory(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, "Novel", history.ProductName)
		assert.Empty(t, history.Changes)
	})

	t.Run("Should return product not found", func(t *testing.T) {
		svc := newTestInventoryService(newFakeStore())

		_, err := svc.GetHistory(ctx, 99)
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})
}

func TestInventoryService_ListLowStock(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	category := store.addCategory("Electronics")
	p1 := store.addProduct("p1", category.ID, 5, 10)
	p2 := store.addProduct("p2", category.ID, 50, 10)
	svc := newTestInventoryService(store)

	collect := func(override *int) ([]int64, error) {
		var ids []int64
		for item, err := range svc.ListLowStock(ctx, override) {
			if err != nil {
				return nil, err
			}
			ids = append(ids, item.ProductID)
		}
		return ids, nil
	}

	t.Run("Should use per row thresholds", func(t *testing.T) {
		ids, err := collect(nil)
		require.NoError(t, err)
		assert.Equal(t, []int64{p1.ID}, ids)
	})

	t.Run("Should be restartable", func(t *testing.T) {
		first, err := collect(nil)
		require.NoError(t, err)
		second, err := collect(nil)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Should apply the override uniformly", func(t *testing.T) {
		ids, err := collect(ptr.New(50))
		require.NoError(t, err)
		assert.Equal(t, []int64{p1.ID, p2.ID}, ids)

		ids, err = collect(ptr.New(4))
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("Should reflect applied deltas", func(t *testing.T) {
		_, err := svc.ApplyDelta(ctx, ApplyDeltaParams{ProductID: p2.ID, QuantityChange: -45})
		require.NoError(t, err)

		ids, err := collect(nil)
		require.NoError(t, err)
		assert.Equal(t, []int64{p1.ID, p2.ID}, ids)
	})

	t.Run("Should reject a negative override", func(t *testing.T) {
		_, err := collect(ptr.New(-1))
		assert.ErrorIs(t, err, apperr.ValidationErr)
	})
}

func TestInventoryService_UpdateThreshold(t *testing.T) {
	ctx := context.Background()

	t.Run("Should change only the threshold", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Electronics")
		product := store.addProduct("Laptop", category.ID, 100, 10)
		svc := newTestInventoryService(store)

		inv, err := svc.UpdateThreshold(ctx, UpdateThresholdParams{ProductID: product.ID, Threshold: 25})
		require.NoError(t, err)
		assert.Equal(t, model.Inventory{
			ID:                inv.ID,
			ProductID:         product.ID,
			InitialQuantity:   100,
			RemainingQuantity: 100,
			Threshold:         25,
		}, inv)
		assert.Empty(t, store.history)
	})

	t.Run("Should return inventory not found", func(t *testing.T) {
		svc := newTestInventoryService(newFakeStore())

		_, err := svc.UpdateThreshold(ctx, UpdateThresholdParams{ProductID: 7, Threshold: 1})
		assert.ErrorIs(t, err, apperr.InventoryNotFoundErr)
	})

	t.Run("Should reject negative threshold", func(t *testing.T) {
		svc := newTestInventoryService(newFakeStore())

		_, err := svc.UpdateThreshold(ctx, UpdateThresholdParams{ProductID: 7, Threshold: -1})
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})
}

func TestInventoryService_ListInventory(t *testing.T) {
	store := newFakeStore()
	category := store.addCategory("Electronics")
	p1 := store.addProduct("p1", category.ID, 5, 10)
	p2 := store.addProduct("p2", category.ID, 50, 10)
	svc := newTestInventoryService(store)

	rows, err := svc.ListInventory(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, p1.ID, rows[0].ProductID)
	assert.Equal(t, p2.ID, rows[1].ProductID)
}

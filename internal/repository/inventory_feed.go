package repository

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/shop-admin/internal/model"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db/sqlc"
)

// InventoryFeedRepository reads the inventory feed outbox. Every ledger entry
// gets an outbox row in the transaction that wrote it, so an entry whose
// transaction commits late is still picked up.
type InventoryFeedRepository interface {
	WithDB(db db.DB) InventoryFeedRepository
	// TryLockFeed takes a transaction scoped lock on the named feed. It returns
	// false when another relay holds it.
	TryLockFeed(ctx context.Context, name string) (bool, error)
	// ListPendingEntries returns unpublished entries in ledger order.
	ListPendingEntries(ctx context.Context, limit int32) ([]model.InventoryFeedEntry, error)
	MarkPublished(ctx context.Context, historyIDs []int64) error
}

type inventoryFeedRepository struct {
	db      db.DB
	queries sqlc.Queries
}

func NewInventoryFeedRepository(db db.DB, queries sqlc.Queries) InventoryFeedRepository {
	return &inventoryFeedRepository{
		db:      db,
		queries: queries,
	}
}

func (r inventoryFeedRepository) WithDB(db db.DB) InventoryFeedRepository {
	return &inventoryFeedRepository{
		db:      db,
		queries: r.queries,
	}
}

func (r inventoryFeedRepository) TryLockFeed(ctx context.Context, name string) (bool, error) {
	ok, err := r.queries.InventoryFeedTryLock(ctx, r.db, name)
	if err != nil {
		return false, fmt.Errorf("inventory feed try lock: %w", err)
	}

	return ok, nil
}

func (r inventoryFeedRepository) ListPendingEntries(ctx context.Context, limit int32) ([]model.InventoryFeedEntry, error) {
	rows, err := r.queries.InventoryFeedListPending(ctx, r.db, limit)
	if err != nil {
		return nil, fmt.Errorf("inventory feed list pending: %w", err)
	}

	result := make([]model.InventoryFeedEntry, 0, len(rows))
	for _, row := range rows {
		entry := model.InventoryFeedEntry{
			InventoryChange: model.InventoryChange{
				ID:             row.ID,
				ProductID:      row.ProductID,
				QuantityChange: int(row.QuantityChange),
				NewQuantity:    int(row.NewQuantity),
				ChangedAt:      row.ChangeTimestamp,
			},
			ProductName: row.ProductName,
		}
		if row.Threshold != nil {
			threshold := int(*row.Threshold)
			entry.Threshold = &threshold
		}
		result = append(result, entry)
	}

	return result, nil
}

func (r inventoryFeedRepository) MarkPublished(ctx context.Context, historyIDs []int64) error {
	if len(historyIDs) == 0 {
		return nil
	}

	if err := r.queries.InventoryFeedMarkPublished(ctx, r.db, historyIDs); err != nil {
		return fmt.Errorf("inventory feed mark published: %w", err)
	}

	return nil
}

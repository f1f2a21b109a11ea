package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tuanvumaihuynh/shop-admin/internal/model"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db/sqlc"
)

type CreateInventoryChangeParams struct {
	ProductID      int64
	QuantityChange int
	NewQuantity    int
	ChangedAt      time.Time
}

// InventoryHistoryRepository is append-only: entries are never updated or deleted.
type InventoryHistoryRepository interface {
	WithDB(db db.DB) InventoryHistoryRepository
	// CreateInventoryChange also queues the entry on the feed outbox together
	// with the product's threshold as of this write.
	CreateInventoryChange(ctx context.Context, params CreateInventoryChangeParams) (model.InventoryChange, error)
	ListInventoryChanges(ctx context.Context, productID int64) ([]model.InventoryChange, error)
}

type inventoryHistoryRepository struct {
	db      db.DB
	queries sqlc.Queries
}

func NewInventoryHistoryRepository(db db.DB, queries sqlc.Queries) InventoryHistoryRepository {
	return &inventoryHistoryRepository{
		db:      db,
		queries: queries,
	}
}

func (r inventoryHistoryRepository) WithDB(db db.DB) InventoryHistoryRepository {
	return &inventoryHistoryRepository{
		db:      db,
		queries: r.queries,
	}
}

func (r inventoryHistoryRepository) CreateInventoryChange(ctx context.Context, params CreateInventoryChangeParams) (model.InventoryChange, error) {
	change, err := toInt32(params.QuantityChange)
	if err != nil {
		return model.InventoryChange{}, fmt.Errorf("quantity change: %w", err)
	}
	newQty, err := toInt32(params.NewQuantity)
	if err != nil {
		return model.InventoryChange{}, fmt.Errorf("new quantity: %w", err)
	}

	row, err := r.queries.InventoryChangeCreate(ctx, r.db, sqlc.InventoryChangeCreateParams{
		ProductID:       params.ProductID,
		QuantityChange:  change,
		NewQuantity:     newQty,
		ChangeTimestamp: params.ChangedAt,
	})
	if err != nil {
		return model.InventoryChange{}, fmt.Errorf("inventory change create: %w", mapError(err))
	}

	return sqlcHistoryToModelChange(sqlc.InventoryChangeHistory(row)), nil
}

func (r inventoryHistoryRepository) ListInventoryChanges(ctx context.Context, productID int64) ([]model.InventoryChange, error) {
	rows, err := r.queries.InventoryChangeListByProductID(ctx, r.db, productID)
	if err != nil {
		return nil, fmt.Errorf("inventory change list by product id: %w", err)
	}

	result := make([]model.InventoryChange, 0, len(rows))
	for _, row := range rows {
		result = append(result, sqlcHistoryToModelChange(row))
	}

	return result, nil
}

func sqlcHistoryToModelChange(row sqlc.InventoryChangeHistory) model.InventoryChange {
	return model.InventoryChange{
		ID:             row.ID,
		ProductID:      row.ProductID,
		QuantityChange: int(row.QuantityChange),
		NewQuantity:    int(row.NewQuantity),
		ChangedAt:      row.ChangeTimestamp,
	}
}

package repository

import (
	"context"
	"fmt"
	"iter"

	"github.com/jackc/pgx/v5"

	"github.com/tuanvumaihuynh/shop-admin/internal/model"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db/sqlc"
)

type CreateInventoryParams struct {
	ProductID       int64
	InitialQuantity int
	Threshold       int
}

type InventoryRepository interface {
	WithDB(db db.DB) InventoryRepository
	ListInventory(ctx context.Context) ([]model.Inventory, error)
	GetInventory(ctx context.Context, productID int64) (model.Inventory, error)
	// GetInventoryForUpdate locks the row until the surrounding transaction ends.
	GetInventoryForUpdate(ctx context.Context, productID int64) (model.Inventory, error)
	CreateInventory(ctx context.Context, params CreateInventoryParams) (model.Inventory, error)
	UpdateRemainingQuantity(ctx context.Context, productID int64, remaining int) error
	UpdateThreshold(ctx context.Context, productID int64, threshold int) (model.Inventory, error)
	// ListLowStock yields rows whose remaining quantity is at or below their own
	// threshold, or at or below thresholdOverride when it is set, in product id order.
	// Every iteration runs a new query.
	ListLowStock(ctx context.Context, thresholdOverride *int) iter.Seq2[model.LowStockItem, error]
}

type inventoryRepository struct {
	db      db.DB
	queries sqlc.Queries
}

func NewInventoryRepository(db db.DB, queries sqlc.Queries) InventoryRepository {
	return &inventoryRepository{
		db:      db,
		queries: queries,
	}
}

func (r inventoryRepository) WithDB(db db.DB) InventoryRepository {
	return &inventoryRepository{
		db:      db,
		queries: r.queries,
	}
}

func (r inventoryRepository) ListInventory(ctx context.Context) ([]model.Inventory, error) {
	rows, err := r.queries.InventoryListAll(ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("inventory list all: %w", err)
	}

	result := make([]model.Inventory, 0, len(rows))
	for _, row := range rows {
		result = append(result, sqlcInventoryToModelInventory(row))
	}

	return result, nil
}

func (r inventoryRepository) GetInventory(ctx context.Context, productID int64) (model.Inventory, error) {
	row, err := r.queries.InventoryGetByProductID(ctx, r.db, productID)
	if err != nil {
		return model.Inventory{}, fmt.Errorf("inventory get by product id: %w", mapError(err))
	}

	return sqlcInventoryToModelInventory(row), nil
}

func (r inventoryRepository) GetInventoryForUpdate(ctx context.Context, productID int64) (model.Inventory, error) {
	row, err := r.queries.InventoryGetByProductIDForUpdate(ctx, r.db, productID)
	if err != nil {
		return model.Inventory{}, fmt.Errorf("inventory get by product id for update: %w", mapError(err))
	}

	return sqlcInventoryToModelInventory(row), nil
}

func (r inventoryRepository) CreateInventory(ctx context.Context, params CreateInventoryParams) (model.Inventory, error) {
	initial, err := toInt32(params.InitialQuantity)
	if err != nil {
		return model.Inventory{}, fmt.Errorf("initial quantity: %w", err)
	}
	threshold, err := toInt32(params.Threshold)
	if err != nil {
		return model.Inventory{}, fmt.Errorf("threshold: %w", err)
	}

	row, err := r.queries.InventoryCreate(ctx, r.db, sqlc.InventoryCreateParams{
		ProductID:       params.ProductID,
		InitialQuantity: initial,
		Threshold:       threshold,
	})
	if err != nil {
		return model.Inventory{}, fmt.Errorf("inventory create: %w", mapError(err))
	}

	return sqlcInventoryToModelInventory(row), nil
}

func (r inventoryRepository) UpdateRemainingQuantity(ctx context.Context, productID int64, remaining int) error {
	qty, err := toInt32(remaining)
	if err != nil {
		return fmt.Errorf("remaining quantity: %w", err)
	}

	affected, err := r.queries.InventoryUpdateRemainingQuantity(ctx, r.db, sqlc.InventoryUpdateRemainingQuantityParams{
		ProductID:         productID,
		RemainingQuantity: qty,
	})
	if err != nil {
		return fmt.Errorf("inventory update remaining quantity: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("inventory update remaining quantity: %w", ErrNotFound)
	}

	return nil
}

func (r inventoryRepository) UpdateThreshold(ctx context.Context, productID int64, threshold int) (model.Inventory, error) {
	value, err := toInt32(threshold)
	if err != nil {
		return model.Inventory{}, fmt.Errorf("threshold: %w", err)
	}

	row, err := r.queries.InventoryUpdateThreshold(ctx, r.db, sqlc.InventoryUpdateThresholdParams{
		ProductID: productID,
		Threshold: value,
	})
	if err != nil {
		return model.Inventory{}, fmt.Errorf("inventory update threshold: %w", mapError(err))
	}

	return sqlcInventoryToModelInventory(row), nil
}

func (r inventoryRepository) ListLowStock(ctx context.Context, thresholdOverride *int) iter.Seq2[model.LowStockItem, error] {
	return func(yield func(model.LowStockItem, error) bool) {
		var override *int32
		if thresholdOverride != nil {
			v, err := toInt32(*thresholdOverride)
			if err != nil {
				yield(model.LowStockItem{}, fmt.Errorf("threshold override: %w", err))
				return
			}
			override = &v
		}

		rows, err := r.db.Query(ctx, `
			SELECT
				i.product_id,
				p.name,
				i.remaining_quantity,
				i.threshold
			FROM inventory AS i
			JOIN products AS p ON p.id = i.product_id
			WHERE i.remaining_quantity <= COALESCE(@threshold::integer, i.threshold)
			ORDER BY i.product_id;
		`, pgx.NamedArgs{
			"threshold": override,
		})
		if err != nil {
			yield(model.LowStockItem{}, fmt.Errorf("inventory list low stock: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var item model.LowStockItem
			if err := rows.Scan(
				&item.ProductID,
				&item.ProductName,
				&item.RemainingQuantity,
				&item.Threshold,
			); err != nil {
				yield(model.LowStockItem{}, fmt.Errorf("scan low stock row: %w", err))
				return
			}

			if !yield(item, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(model.LowStockItem{}, fmt.Errorf("iterate low stock rows: %w", err))
		}
	}
}

func sqlcInventoryToModelInventory(row sqlc.Inventory) model.Inventory {
	return model.Inventory{
		ID:                row.ID,
		ProductID:         row.ProductID,
		InitialQuantity:   int(row.InitialQuantity),
		RemainingQuantity: int(row.RemainingQuantity),
		Threshold:         int(row.Threshold),
	}
}

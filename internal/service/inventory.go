package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"time"

	"github.com/tuanvumaihuynh/shop-admin/internal/apperr"
	"github.com/tuanvumaihuynh/shop-admin/internal/model"
	"github.com/tuanvumaihuynh/shop-admin/internal/repository"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db"
	"github.com/tuanvumaihuynh/shop-admin/pkg/validator"
)

type ApplyDeltaParams struct {
	ProductID int64 `validate:"gte=1"`
	// QuantityChange is signed: positive restocks, negative consumes.
	QuantityChange int
}

type UpdateThresholdParams struct {
	ProductID int64 `validate:"gte=1"`
	Threshold int   `validate:"gte=0,max=2147483647"`
}

type ProductHistory struct {
	ProductName string
	Changes     []model.InventoryChange
}

// InventoryService is the inventory ledger. The remaining quantity of a product
// only changes through ApplyDelta, and every accepted delta is recorded once.
type InventoryService interface {
	ApplyDelta(ctx context.Context, params ApplyDeltaParams) (model.InventoryChange, error)
	GetHistory(ctx context.Context, productID int64) (ProductHistory, error)
	// ListLowStock yields inventory rows at or below their own threshold, or at
	// or below thresholdOverride when it is set. Each range runs a new scan.
	ListLowStock(ctx context.Context, thresholdOverride *int) iter.Seq2[model.LowStockItem, error]
	ListInventory(ctx context.Context) ([]model.Inventory, error)
	UpdateThreshold(ctx context.Context, params UpdateThresholdParams) (model.Inventory, error)
}

type inventoryService struct {
	db            db.DB
	logger        *slog.Logger
	validator     validator.Validator
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	historyRepo   repository.InventoryHistoryRepository

	now func() time.Time
}

func NewInventoryService(
	db db.DB,
	logger *slog.Logger,
	validator validator.Validator,
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	historyRepo repository.InventoryHistoryRepository,
) InventoryService {
	return &inventoryService{
		db:            db,
		logger:        logger.With(slog.String("service", "inventory")),
		validator:     validator,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		historyRepo:   historyRepo,
		now:           time.Now,
	}
}

func (s *inventoryService) ApplyDelta(ctx context.Context, params ApplyDeltaParams) (model.InventoryChange, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.InventoryChange{}, err
	}

	var change model.InventoryChange
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		if _, err := s.productRepo.WithDB(db).GetProduct(ctx, params.ProductID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperr.ProductNotFoundErr.WrapParent(err)
			}
			return fmt.Errorf("product repository get product: %w", err)
		}

		inventory, err := s.inventoryRepo.WithDB(db).GetInventoryForUpdate(ctx, params.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperr.InventoryNotFoundErr.WrapParent(err)
			}
			return fmt.Errorf("inventory repository get inventory for update: %w", err)
		}

		newQuantity := int64(inventory.RemainingQuantity) + int64(params.QuantityChange)
		if newQuantity < 0 {
			return apperr.InventoryNegativeErr.WrapParent(fmt.Errorf(
				"remaining quantity %d with change %d", inventory.RemainingQuantity, params.QuantityChange))
		}
		if newQuantity > math.MaxInt32 {
			return apperr.InventoryOverflowErr.WrapParent(fmt.Errorf(
				"remaining quantity %d with change %d", inventory.RemainingQuantity, params.QuantityChange))
		}

		if err := s.inventoryRepo.
			WithDB(db).
			UpdateRemainingQuantity(ctx, params.ProductID, int(newQuantity)); err != nil {
			return fmt.Errorf("inventory repository update remaining quantity: %w", err)
		}

		change, err = s.historyRepo.
			WithDB(db).
			CreateInventoryChange(ctx, repository.CreateInventoryChangeParams{
				ProductID:      params.ProductID,
				QuantityChange: params.QuantityChange,
				NewQuantity:    int(newQuantity),
				ChangedAt:      s.now().UTC(),
			})
		if err != nil {
			return fmt.Errorf("inventory history repository create inventory change: %w", err)
		}

		return nil
	}); err != nil {
		return model.InventoryChange{}, fmt.Errorf("db with tx: %w", err)
	}

	s.logger.InfoContext(ctx, "inventory updated",
		slog.Int64("product_id", change.ProductID),
		slog.Int("quantity_change", change.QuantityChange),
		slog.Int("new_quantity", change.NewQuantity))

	return change, nil
}

func (s *inventoryService) GetHistory(ctx context.Context, productID int64) (ProductHistory, error) {
	product, err := s.productRepo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ProductHistory{}, apperr.ProductNotFoundErr.WrapParent(err)
		}
		return ProductHistory{}, fmt.Errorf("product repository get product: %w", err)
	}

	changes, err := s.historyRepo.ListInventoryChanges(ctx, productID)
	if err != nil {
		return ProductHistory{}, fmt.Errorf("inventory history repository list inventory changes: %w", err)
	}

	return ProductHistory{
		ProductName: product.Name,
		Changes:     changes,
	}, nil
}

func (s *inventoryService) ListLowStock(ctx context.Context, thresholdOverride *int) iter.Seq2[model.LowStockItem, error] {
	if thresholdOverride != nil && *thresholdOverride < 0 {
		return func(yield func(model.LowStockItem, error) bool) {
			yield(model.LowStockItem{}, apperr.ValidationErr.WrapParent(
				fmt.Errorf("low stock threshold must not be negative: %d", *thresholdOverride)))
		}
	}

	return s.inventoryRepo.ListLowStock(ctx, thresholdOverride)
}

func (s *inventoryService) ListInventory(ctx context.Context) ([]model.Inventory, error) {
	inventory, err := s.inventoryRepo.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory repository list inventory: %w", err)
	}

	return inventory, nil
}

func (s *inventoryService) UpdateThreshold(ctx context.Context, params UpdateThresholdParams) (model.Inventory, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Inventory{}, err
	}

	inventory, err := s.inventoryRepo.UpdateThreshold(ctx, params.ProductID, params.Threshold)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Inventory{}, apperr.InventoryNotFoundErr.WrapParent(err)
		}
		return model.Inventory{}, fmt.Errorf("inventory repository update threshold: %w", err)
	}

	return inventory, nil
}

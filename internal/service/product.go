package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/shop-admin/internal/apperr"
	"github.com/tuanvumaihuynh/shop-admin/internal/model"
	"github.com/tuanvumaihuynh/shop-admin/internal/repository"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db"
	"github.com/tuanvumaihuynh/shop-admin/pkg/validator"
)

type CreateProductParams struct {
	Name        string          `validate:"required,notblank,max=255"`
	Sku         string          `validate:"required,notblank,max=255"`
	Description *string         `validate:"omitempty,max=1000"`
	Price       decimal.Decimal `validate:"gte=0,lt=100000000,decimal_places=2"`
	CategoryID  int64           `validate:"gte=1"`

	// InitialQuantity seeds both the initial and the remaining quantity of the inventory row.
	InitialQuantity int `validate:"gte=0,max=2147483647"`
	Threshold       int `validate:"gte=0,max=2147483647"`
}

type UpdateProductParams struct {
	ID          int64           `validate:"gte=1"`
	Name        string          `validate:"required,notblank,max=255"`
	Sku         string          `validate:"required,notblank,max=255"`
	Description *string         `validate:"omitempty,max=1000"`
	Price       decimal.Decimal `validate:"gte=0,lt=100000000,decimal_places=2"`
	CategoryID  int64           `validate:"gte=1"`
}

type ProductService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	// CreateProduct creates the product and its inventory row in one transaction.
	CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error)
	UpdateProduct(ctx context.Context, params UpdateProductParams) (model.Product, error)
	// DeleteProduct removes the product and its inventory row. It fails with
	// apperr.ProductInUseErr when inventory history or order items reference it.
	DeleteProduct(ctx context.Context, id int64) error
}

type productService struct {
	db            db.DB
	validator     validator.Validator
	categoryRepo  repository.CategoryRepository
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
}

func NewProductService(
	db db.DB,
	validator validator.Validator,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
) ProductService {
	return &productService{
		db:            db,
		validator:     validator,
		categoryRepo:  categoryRepo,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
	}
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list products: %w", err)
	}

	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Product{}, apperr.ProductNotFoundErr.WrapParent(err)
		}
		return model.Product{}, fmt.Errorf("product repository get product: %w", err)
	}

	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Product{}, err
	}

	var product model.Product
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		if err := s.ensureCategory(ctx, db, params.CategoryID); err != nil {
			return err
		}

		var err error
		product, err = s.productRepo.
			WithDB(db).
			CreateProduct(ctx, repository.CreateProductParams{
				Name:        params.Name,
				Sku:         params.Sku,
				Description: params.Description,
				Price:       params.Price,
				CategoryID:  params.CategoryID,
			})
		if err != nil {
			if errors.Is(err, repository.ErrForeignKeyViolation) {
				return apperr.CategoryNotFoundErr.WrapParent(err)
			}
			return fmt.Errorf("product repository create product: %w", err)
		}

		if _, err := s.inventoryRepo.
			WithDB(db).
			CreateInventory(ctx, repository.CreateInventoryParams{
				ProductID:       product.ID,
				InitialQuantity: params.InitialQuantity,
				Threshold:       params.Threshold,
			}); err != nil {
			return fmt.Errorf("inventory repository create inventory: %w", err)
		}

		return nil
	}); err != nil {
		return model.Product{}, fmt.Errorf("db with tx: %w", err)
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, params UpdateProductParams) (model.Product, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Product{}, err
	}

	var product model.Product
	if err := s.db.WithTx(ctx, func(db db.DB) error {
		if err := s.ensureCategory(ctx, db, params.CategoryID); err != nil {
			return err
		}

		var err error
		product, err = s.productRepo.
			WithDB(db).
			UpdateProduct(ctx, repository.UpdateProductParams{
				ID:          params.ID,
				Name:        params.Name,
				Sku:         params.Sku,
				Description: params.Description,
				Price:       params.Price,
				CategoryID:  params.CategoryID,
			})
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				return apperr.ProductNotFoundErr.WrapParent(err)
			case errors.Is(err, repository.ErrForeignKeyViolation):
				return apperr.CategoryNotFoundErr.WrapParent(err)
			}
			return fmt.Errorf("product repository update product: %w", err)
		}

		return nil
	}); err != nil {
		return model.Product{}, fmt.Errorf("db with tx: %w", err)
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.productRepo.DeleteProduct(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return apperr.ProductNotFoundErr.WrapParent(err)
		case errors.Is(err, repository.ErrForeignKeyViolation):
			return apperr.ProductInUseErr.WrapParent(err)
		}
		return fmt.Errorf("product repository delete product: %w", err)
	}

	return nil
}

func (s *productService) ensureCategory(ctx context.Context, db db.DB, categoryID int64) error {
	exists, err := s.categoryRepo.WithDB(db).CategoryExists(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("category repository category exists: %w", err)
	}
	if !exists {
		return apperr.CategoryNotFoundErr
	}

	return nil
}

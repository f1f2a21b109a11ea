package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/shop-admin/internal/model"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db/sqlc"
)

type CreateProductParams struct {
	Name        string
	Sku         string
	Description *string
	Price       decimal.Decimal
	CategoryID  int64
}

type UpdateProductParams struct {
	ID          int64
	Name        string
	Sku         string
	Description *string
	Price       decimal.Decimal
	CategoryID  int64
}

type ProductRepository interface {
	WithDB(db db.DB) ProductRepository
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error)
	UpdateProduct(ctx context.Context, params UpdateProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productRepository struct {
	db      db.DB
	queries sqlc.Queries
}

func NewProductRepository(db db.DB, queries sqlc.Queries) ProductRepository {
	return &productRepository{
		db:      db,
		queries: queries,
	}
}

func (r productRepository) WithDB(db db.DB) ProductRepository {
	return &productRepository{
		db:      db,
		queries: r.queries,
	}
}

func (r productRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := r.queries.ProductListAll(ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("product list all: %w", err)
	}

	modelProducts := make([]model.Product, 0, len(products))
	for _, product := range products {
		modelProduct, err := sqlcProductToModelProduct(product)
		if err != nil {
			return nil, fmt.Errorf("convert product to model product: %w", err)
		}
		modelProducts = append(modelProducts, modelProduct)
	}

	return modelProducts, nil
}

func (r productRepository) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	product, err := r.queries.ProductGet(ctx, r.db, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("product get: %w", mapError(err))
	}

	return sqlcProductToModelProduct(product)
}

func (r productRepository) CreateProduct(ctx context.Context, params CreateProductParams) (model.Product, error) {
	product, err := r.queries.ProductCreate(ctx, r.db, sqlc.ProductCreateParams{
		Name:        params.Name,
		Sku:         params.Sku,
		Description: params.Description,
		Price:       numericFromDecimal(params.Price),
		CategoryID:  params.CategoryID,
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("product create: %w", mapError(err))
	}

	return sqlcProductToModelProduct(product)
}

func (r productRepository) UpdateProduct(ctx context.Context, params UpdateProductParams) (model.Product, error) {
	product, err := r.queries.ProductUpdate(ctx, r.db, sqlc.ProductUpdateParams{
		ID:          params.ID,
		Name:        params.Name,
		Sku:         params.Sku,
		Description: params.Description,
		Price:       numericFromDecimal(params.Price),
		CategoryID:  params.CategoryID,
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("product update: %w", mapError(err))
	}

	return sqlcProductToModelProduct(product)
}

func (r productRepository) DeleteProduct(ctx context.Context, id int64) error {
	affected, err := r.queries.ProductDelete(ctx, r.db, id)
	if err != nil {
		return fmt.Errorf("product delete: %w", mapError(err))
	}
	if affected == 0 {
		return fmt.Errorf("product delete: %w", ErrNotFound)
	}

	return nil
}

func sqlcProductToModelProduct(product sqlc.Product) (model.Product, error) {
	price, err := decimalFromNumeric(product.Price)
	if err != nil {
		return model.Product{}, fmt.Errorf("convert price to decimal: %w", err)
	}

	return model.Product{
		ID:          product.ID,
		Name:        product.Name,
		Sku:         product.Sku,
		Description: product.Description,
		Price:       price,
		CategoryID:  product.CategoryID,
		CreatedAt:   product.CreatedAt,
	}, nil
}

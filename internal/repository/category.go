package repository

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/shop-admin/internal/model"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db/sqlc"
)

type UpdateCategoryParams struct {
	ID   int64
	Name string
}

type CategoryRepository interface {
	WithDB(db db.DB) CategoryRepository
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id int64) (model.Category, error)
	CategoryExists(ctx context.Context, id int64) (bool, error)
	CreateCategory(ctx context.Context, name string) (model.Category, error)
	UpdateCategory(ctx context.Context, params UpdateCategoryParams) (model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type categoryRepository struct {
	db      db.DB
	queries sqlc.Queries
}

func NewCategoryRepository(db db.DB, queries sqlc.Queries) CategoryRepository {
	return &categoryRepository{
		db:      db,
		queries: queries,
	}
}

func (r categoryRepository) WithDB(db db.DB) CategoryRepository {
	return &categoryRepository{
		db:      db,
		queries: r.queries,
	}
}

func (r categoryRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := r.queries.CategoryListAll(ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("category list all: %w", err)
	}

	result := make([]model.Category, 0, len(categories))
	for _, c := range categories {
		result = append(result, sqlcCategoryToModelCategory(c))
	}

	return result, nil
}

func (r categoryRepository) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	category, err := r.queries.CategoryGet(ctx, r.db, id)
	if err != nil {
		return model.Category{}, fmt.Errorf("category get: %w", mapError(err))
	}

	return sqlcCategoryToModelCategory(category), nil
}

func (r categoryRepository) CategoryExists(ctx context.Context, id int64) (bool, error) {
	exists, err := r.queries.CategoryExists(ctx, r.db, id)
	if err != nil {
		return false, fmt.Errorf("category exists: %w", err)
	}

	return exists, nil
}

func (r categoryRepository) CreateCategory(ctx context.Context, name string) (model.Category, error) {
	category, err := r.queries.CategoryCreate(ctx, r.db, name)
	if err != nil {
		return model.Category{}, fmt.Errorf("category create: %w", err)
	}

	return sqlcCategoryToModelCategory(category), nil
}

func (r categoryRepository) UpdateCategory(ctx context.Context, params UpdateCategoryParams) (model.Category, error) {
	category, err := r.queries.CategoryUpdate(ctx, r.db, sqlc.CategoryUpdateParams{
		ID:   params.ID,
		Name: params.Name,
	})
	if err != nil {
		return model.Category{}, fmt.Errorf("category update: %w", mapError(err))
	}

	return sqlcCategoryToModelCategory(category), nil
}

func (r categoryRepository) DeleteCategory(ctx context.Context, id int64) error {
	affected, err := r.queries.CategoryDelete(ctx, r.db, id)
	if err != nil {
		return fmt.Errorf("category delete: %w", mapError(err))
	}
	if affected == 0 {
		return fmt.Errorf("category delete: %w", ErrNotFound)
	}

	return nil
}

func sqlcCategoryToModelCategory(c sqlc.Category) model.Category {
	return model.Category{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

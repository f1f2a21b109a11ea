package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tuanvumaihuynh/shop-admin/internal/apperr"
	"github.com/tuanvumaihuynh/shop-admin/internal/model"
	"github.com/tuanvumaihuynh/shop-admin/internal/repository"
	"github.com/tuanvumaihuynh/shop-admin/pkg/validator"
)

type CreateCategoryParams struct {
	Name string `validate:"required,notblank,max=255"`
}

type UpdateCategoryParams struct {
	ID   int64  `validate:"gte=1"`
	Name string `validate:"required,notblank,max=255"`
}

type CategoryService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id int64) (model.Category, error)
	CreateCategory(ctx context.Context, params CreateCategoryParams) (model.Category, error)
	UpdateCategory(ctx context.Context, params UpdateCategoryParams) (model.Category, error)
	// DeleteCategory fails with apperr.CategoryInUseErr while products still reference the category.
	DeleteCategory(ctx context.Context, id int64) error
}

type categoryService struct {
	validator    validator.Validator
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(
	validator validator.Validator,
	categoryRepo repository.CategoryRepository,
) CategoryService {
	return &categoryService{
		validator:    validator,
		categoryRepo: categoryRepo,
	}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("category repository list categories: %w", err)
	}

	return categories, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	category, err := s.categoryRepo.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Category{}, apperr.CategoryNotFoundErr.WrapParent(err)
		}
		return model.Category{}, fmt.Errorf("category repository get category: %w", err)
	}

	return category, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, params CreateCategoryParams) (model.Category, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Category{}, err
	}

	category, err := s.categoryRepo.CreateCategory(ctx, params.Name)
	if err != nil {
		return model.Category{}, fmt.Errorf("category repository create category: %w", err)
	}

	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, params UpdateCategoryParams) (model.Category, error) {
	if err := s.validator.Validate(params); err != nil {
		return model.Category{}, err
	}

	category, err := s.categoryRepo.UpdateCategory(ctx, repository.UpdateCategoryParams{
		ID:   params.ID,
		Name: params.Name,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Category{}, apperr.CategoryNotFoundErr.WrapParent(err)
		}
		return model.Category{}, fmt.Errorf("category repository update category: %w", err)
	}

	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.categoryRepo.DeleteCategory(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return apperr.CategoryNotFoundErr.WrapParent(err)
		case errors.Is(err, repository.ErrForeignKeyViolation):
			return apperr.CategoryInUseErr.WrapParent(err)
		}
		return fmt.Errorf("category repository delete category: %w", err)
	}

	return nil
}

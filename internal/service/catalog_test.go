package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/shop-admin/internal/apperr"
	"github.com/tuanvumaihuynh/shop-admin/pkg/ptr"
	"github.com/tuanvumaihuynh/shop-admin/pkg/validator"
)

func newTestCatalogServices(store *fakeStore) (CategoryService, ProductService) {
	v := validator.MustNewDefaultValidator()
	categoryRepo := &fakeCategoryRepo{store: store}

	categorySvc := NewCategoryService(v, categoryRepo)
	productSvc := NewProductService(
		&fakeDB{store: store},
		v,
		categoryRepo,
		&fakeProductRepo{store: store},
		&fakeInventoryRepo{store: store},
	)
	return categorySvc, productSvc
}

func TestCategoryService(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create, update and get a category", func(t *testing.T) {
		store := newFakeStore()
		svc, _ := newTestCatalogServices(store)

		created, err := svc.CreateCategory(ctx, CreateCategoryParams{Name: "Electronics"})
		require.NoError(t, err)

		updated, err := svc.UpdateCategory(ctx, UpdateCategoryParams{ID: created.ID, Name: "Gadgets"})
		require.NoError(t, err)
		assert.Equal(t, "Gadgets", updated.Name)

		got, err := svc.GetCategory(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, got)

		all, err := svc.ListCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("Should reject blank name", func(t *testing.T) {
		svc, _ := newTestCatalogServices(newFakeStore())

		_, err := svc.CreateCategory(ctx, CreateCategoryParams{Name: "  "})
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("Should return category not found", func(t *testing.T) {
		svc, _ := newTestCatalogServices(newFakeStore())

		_, err := svc.GetCategory(ctx, 1)
		assert.ErrorIs(t, err, apperr.CategoryNotFoundErr)

		_, err = svc.UpdateCategory(ctx, UpdateCategoryParams{ID: 1, Name: "x"})
		assert.ErrorIs(t, err, apperr.CategoryNotFoundErr)

		err = svc.DeleteCategory(ctx, 1)
		assert.ErrorIs(t, err, apperr.CategoryNotFoundErr)
	})

	t.Run("Should refuse to delete a category with products", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Electronics")
		store.addProduct("Laptop", category.ID, 1, 0)
		svc, _ := newTestCatalogServices(store)

		for range 2 {
			err := svc.DeleteCategory(ctx, category.ID)
			assert.ErrorIs(t, err, apperr.CategoryInUseErr)
		}
		assert.Contains(t, store.categories, category.ID)
	})

	t.Run("Should delete an empty category", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Electronics")
		svc, _ := newTestCatalogServices(store)

		require.NoError(t, svc.DeleteCategory(ctx, category.ID))
		assert.NotContains(t, store.categories, category.ID)
	})
}

func TestProductService(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create product with its inventory", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Electronics")
		_, svc := newTestCatalogServices(store)

		product, err := svc.CreateProduct(ctx, CreateProductParams{
			Name:            "Laptop",
			Sku:             "LAP-001",
			Description:     ptr.New("A laptop"),
			Price:           decimal.RequireFromString("999.99"),
			CategoryID:      category.ID,
			InitialQuantity: 30,
			Threshold:       5,
		})
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("999.99").Equal(product.Price))

		inv, ok := store.inventory[product.ID]
		require.True(t, ok)
		assert.Equal(t, 30, inv.InitialQuantity)
		assert.Equal(t, 30, inv.RemainingQuantity)
		assert.Equal(t, 5, inv.Threshold)
	})

	t.Run("Should default inventory to zero", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Electronics")
		_, svc := newTestCatalogServices(store)

		product, err := svc.CreateProduct(ctx, CreateProductParams{
			Name:       "Mouse",
			Sku:        "MOU-001",
			Price:      decimal.Zero,
			CategoryID: category.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, store.inventory[product.ID].RemainingQuantity)
	})

	t.Run("Should reject unknown category without writing", func(t *testing.T) {
		store := newFakeStore()
		_, svc := newTestCatalogServices(store)

		_, err := svc.CreateProduct(ctx, CreateProductParams{
			Name:       "Laptop",
			Sku:        "LAP-001",
			Price:      decimal.NewFromInt(1),
			CategoryID: 404,
		})
		assert.ErrorIs(t, err, apperr.CategoryNotFoundErr)
		assert.Empty(t, store.products)
		assert.Empty(t, store.inventory)
	})

	t.Run("Should reject negative price", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Electronics")
		_, svc := newTestCatalogServices(store)

		_, err := svc.CreateProduct(ctx, CreateProductParams{
			Name:       "Laptop",
			Sku:        "LAP-001",
			Price:      decimal.RequireFromString("-1"),
			CategoryID: category.ID,
		})
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("Should reject price that does not fit the price column", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Electronics")
		_, svc := newTestCatalogServices(store)

		for _, price := range []string{"123456789.00", "10.999"} {
			_, err := svc.CreateProduct(ctx, CreateProductParams{
				Name:       "Laptop",
				Sku:        "LAP-" + price,
				Price:      decimal.RequireFromString(price),
				CategoryID: category.ID,
			})
			require.Error(t, err, price)
			assert.True(t, validator.IsValidationError(err), price)
		}
		assert.Empty(t, store.products)
		assert.Empty(t, store.inventory)
	})

	t.Run("Should update descriptive fields", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Electronics")
		other := store.addCategory("Office")
		product := store.addProduct("Laptop", category.ID, 10, 1)
		_, svc := newTestCatalogServices(store)

		updated, err := svc.UpdateProduct(ctx, UpdateProductParams{
			ID:         product.ID,
			Name:       "Desk Lamp",
			Sku:        "LMP-1",
			Price:      decimal.RequireFromString("15.99"),
			CategoryID: other.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Desk Lamp", updated.Name)
		assert.Equal(t, other.ID, updated.CategoryID)
		assert.Equal(t, 10, store.inventory[product.ID].RemainingQuantity)
	})

	t.Run("Should reject update with more than two decimal places", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Electronics")
		product := store.addProduct("Laptop", category.ID, 10, 1)
		_, svc := newTestCatalogServices(store)

		_, err := svc.UpdateProduct(ctx, UpdateProductParams{
			ID:         product.ID,
			Name:       "Laptop",
			Sku:        "LAP-1",
			Price:      decimal.RequireFromString("10.999"),
			CategoryID: category.ID,
		})
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
		assert.Equal(t, product, store.products[product.ID])
	})

	t.Run("Should return product not found on update", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Electronics")
		_, svc := newTestCatalogServices(store)

		_, err := svc.UpdateProduct(ctx, UpdateProductParams{
			ID:         77,
			Name:       "x",
			Sku:        "x",
			Price:      decimal.NewFromInt(1),
			CategoryID: category.ID,
		})
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})

	t.Run("Should delete product and its inventory", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Electronics")
		product := store.addProduct("Laptop", category.ID, 10, 1)
		_, svc := newTestCatalogServices(store)

		require.NoError(t, svc.DeleteProduct(ctx, product.ID))
		assert.NotContains(t, store.products, product.ID)
		assert.NotContains(t, store.inventory, product.ID)

		_, err := svc.GetProduct(ctx, product.ID)
		assert.ErrorIs(t, err, apperr.ProductNotFoundErr)
	})

	t.Run("Should refuse to delete a product with history", func(t *testing.T) {
		store := newFakeStore()
		category := store.addCategory("Electronics")
		product := store.addProduct("Laptop", category.ID, 10, 1)
		inventorySvc := newTestInventoryService(store)
		_, svc := newTestCatalogServices(store)

		_, err := inventorySvc.ApplyDelta(ctx, ApplyDeltaParams{ProductID: product.ID, QuantityChange: 1})
		require.NoError(t, err)

		err = svc.DeleteProduct(ctx, product.ID)
		assert.ErrorIs(t, err, apperr.ProductInUseErr)
		assert.Contains(t, store.products, product.ID)
	})
}

package http_test

import (
	"context"
	"iter"

	"github.com/stretchr/testify/mock"

	"github.com/tuanvumaihuynh/shop-admin/internal/model"
	"github.com/tuanvumaihuynh/shop-admin/internal/service"
)

type mockCategoryService struct{ mock.Mock }

func (m *mockCategoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *mockCategoryService) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, params service.CreateCategoryParams) (model.Category, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, params service.UpdateCategoryParams) (model.Category, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockProductService struct{ mock.Mock }

func (m *mockProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockProductService) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *mockProductService) CreateProduct(ctx context.Context, params service.CreateProductParams) (model.Product, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *mockProductService) UpdateProduct(ctx context.Context, params service.UpdateProductParams) (model.Product, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *mockProductService) DeleteProduct(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockInventoryService struct{ mock.Mock }

func (m *mockInventoryService) ApplyDelta(ctx context.Context, params service.ApplyDeltaParams) (model.InventoryChange, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.InventoryChange), args.Error(1)
}

func (m *mockInventoryService) GetHistory(ctx context.Context, productID int64) (service.ProductHistory, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(service.ProductHistory), args.Error(1)
}

func (m *mockInventoryService) ListLowStock(ctx context.Context, thresholdOverride *int) iter.Seq2[model.LowStockItem, error] {
	args := m.Called(ctx, thresholdOverride)
	return args.Get(0).(iter.Seq2[model.LowStockItem, error])
}

func (m *mockInventoryService) ListInventory(ctx context.Context) ([]model.Inventory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Inventory), args.Error(1)
}

func (m *mockInventoryService) UpdateThreshold(ctx context.Context, params service.UpdateThresholdParams) (model.Inventory, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Inventory), args.Error(1)
}

type mockReportService struct{ mock.Mock }

func (m *mockReportService) SalesSummary(ctx context.Context, params service.SalesSummaryParams) ([]model.SalesSummary, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]model.SalesSummary), args.Error(1)
}

func (m *mockReportService) Overview(ctx context.Context) ([]model.OrderOverview, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.OrderOverview), args.Error(1)
}

type mockHealthChecker struct{ mock.Mock }

func (m *mockHealthChecker) IsHealthy(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func lowStockSeq(items ...model.LowStockItem) iter.Seq2[model.LowStockItem, error] {
	return func(yield func(model.LowStockItem, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

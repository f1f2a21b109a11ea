package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/tuanvumaihuynh/shop-admin/internal/model"
	"github.com/tuanvumaihuynh/shop-admin/internal/repository"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db"
)

// fakeStore is an in-memory stand-in for the database. fakeDB.WithTx restores
// the previous snapshot when the callback fails, like a rolled back transaction.
type fakeStore struct {
	nextID     int64
	categories map[int64]model.Category
	products   map[int64]model.Product
	inventory  map[int64]model.Inventory
	history    []model.InventoryChange
	orders     []model.OrderOverview
	sales      []model.SalesSummary

	failHistoryInsert error
	lastSalesParams   repository.SalesSummaryParams
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		categories: map[int64]model.Category{},
		products:   map[int64]model.Product{},
		inventory:  map[int64]model.Inventory{},
	}
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

type storeSnapshot struct {
	nextID     int64
	categories map[int64]model.Category
	products   map[int64]model.Product
	inventory  map[int64]model.Inventory
	history    []model.InventoryChange
}

func (s *fakeStore) snapshot() storeSnapshot {
	return storeSnapshot{
		nextID:     s.nextID,
		categories: maps.Clone(s.categories),
		products:   maps.Clone(s.products),
		inventory:  maps.Clone(s.inventory),
		history:    slices.Clone(s.history),
	}
}

func (s *fakeStore) restore(snap storeSnapshot) {
	s.nextID = snap.nextID
	s.categories = snap.categories
	s.products = snap.products
	s.inventory = snap.inventory
	s.history = snap.history
}

func (s *fakeStore) addCategory(name string) model.Category {
	c := model.Category{ID: s.id(), Name: name}
	s.categories[c.ID] = c
	return c
}

func (s *fakeStore) addProduct(name string, categoryID int64, remaining, threshold int) model.Product {
	p := model.Product{ID: s.id(), Name: name, Sku: name, CategoryID: categoryID}
	s.products[p.ID] = p
	s.inventory[p.ID] = model.Inventory{
		ID:                s.id(),
		ProductID:         p.ID,
		InitialQuantity:   remaining,
		RemainingQuantity: remaining,
		Threshold:         threshold,
	}
	return p
}

func (s *fakeStore) historyFor(productID int64) []model.InventoryChange {
	var result []model.InventoryChange
	for _, h := range s.history {
		if h.ProductID == productID {
			result = append(result, h)
		}
	}
	return result
}

type fakeDB struct {
	db.DB
	store *fakeStore
}

func (d *fakeDB) WithTx(_ context.Context, txFunc func(db.DB) error) error {
	snap := d.store.snapshot()
	if err := txFunc(d); err != nil {
		d.store.restore(snap)
		return err
	}
	return nil
}

type fakeCategoryRepo struct{ store *fakeStore }

func (r *fakeCategoryRepo) WithDB(db.DB) repository.CategoryRepository { return r }

func (r *fakeCategoryRepo) ListCategories(context.Context) ([]model.Category, error) {
	return slices.SortedFunc(maps.Values(r.store.categories), func(a, b model.Category) int {
		return int(a.ID - b.ID)
	}), nil
}

func (r *fakeCategoryRepo) GetCategory(_ context.Context, id int64) (model.Category, error) {
	c, ok := r.store.categories[id]
	if !ok {
		return model.Category{}, fmt.Errorf("category get: %w", repository.ErrNotFound)
	}
	return c, nil
}

func (r *fakeCategoryRepo) CategoryExists(_ context.Context, id int64) (bool, error) {
	_, ok := r.store.categories[id]
	return ok, nil
}

func (r *fakeCategoryRepo) CreateCategory(_ context.Context, name string) (model.Category, error) {
	return r.store.addCategory(name), nil
}

func (r *fakeCategoryRepo) UpdateCategory(_ context.Context, params repository.UpdateCategoryParams) (model.Category, error) {
	c, ok := r.store.categories[params.ID]
	if !ok {
		return model.Category{}, fmt.Errorf("category update: %w", repository.ErrNotFound)
	}
	c.Name = params.Name
	r.store.categories[c.ID] = c
	return c, nil
}

func (r *fakeCategoryRepo) DeleteCategory(_ context.Context, id int64) error {
	if _, ok := r.store.categories[id]; !ok {
		return fmt.Errorf("category delete: %w", repository.ErrNotFound)
	}
	for _, p := range r.store.products {
		if p.CategoryID == id {
			return fmt.Errorf("category delete: %w", repository.ErrForeignKeyViolation)
		}
	}
	delete(r.store.categories, id)
	return nil
}

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) WithDB(db.DB) repository.ProductRepository { return r }

func (r *fakeProductRepo) ListProducts(context.Context) ([]model.Product, error) {
	return slices.SortedFunc(maps.Values(r.store.products), func(a, b model.Product) int {
		return int(a.ID - b.ID)
	}), nil
}

func (r *fakeProductRepo) GetProduct(_ context.Context, id int64) (model.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return model.Product{}, fmt.Errorf("product get: %w", repository.ErrNotFound)
	}
	return p, nil
}

func (r *fakeProductRepo) CreateProduct(_ context.Context, params repository.CreateProductParams) (model.Product, error) {
	if _, ok := r.store.categories[params.CategoryID]; !ok {
		return model.Product{}, fmt.Errorf("product create: %w", repository.ErrForeignKeyViolation)
	}
	p := model.Product{
		ID:          r.store.id(),
		Name:        params.Name,
		Sku:         params.Sku,
		Description: params.Description,
		Price:       params.Price,
		CategoryID:  params.CategoryID,
	}
	r.store.products[p.ID] = p
	return p, nil
}

func (r *fakeProductRepo) UpdateProduct(_ context.Context, params repository.UpdateProductParams) (model.Product, error) {
	p, ok := r.store.products[params.ID]
	if !ok {
		return model.Product{}, fmt.Errorf("product update: %w", repository.ErrNotFound)
	}
	p.Name = params.Name
	p.Sku = params.Sku
	p.Description = params.Description
	p.Price = params.Price
	p.CategoryID = params.CategoryID
	r.store.products[p.ID] = p
	return p, nil
}

func (r *fakeProductRepo) DeleteProduct(_ context.Context, id int64) error {
	if _, ok := r.store.products[id]; !ok {
		return fmt.Errorf("product delete: %w", repository.ErrNotFound)
	}
	if len(r.store.historyFor(id)) > 0 {
		return fmt.Errorf("product delete: %w", repository.ErrForeignKeyViolation)
	}
	delete(r.store.products, id)
	delete(r.store.inventory, id)
	return nil
}

type fakeInventoryRepo struct{ store *fakeStore }

func (r *fakeInventoryRepo) WithDB(db.DB) repository.InventoryRepository { return r }

func (r *fakeInventoryRepo) ListInventory(context.Context) ([]model.Inventory, error) {
	return slices.SortedFunc(maps.Values(r.store.inventory), func(a, b model.Inventory) int {
		return int(a.ProductID - b.ProductID)
	}), nil
}

func (r *fakeInventoryRepo) GetInventory(_ context.Context, productID int64) (model.Inventory, error) {
	inv, ok := r.store.inventory[productID]
	if !ok {
		return model.Inventory{}, fmt.Errorf("inventory get: %w", repository.ErrNotFound)
	}
	return inv, nil
}

func (r *fakeInventoryRepo) GetInventoryForUpdate(ctx context.Context, productID int64) (model.Inventory, error) {
	return r.GetInventory(ctx, productID)
}

func (r *fakeInventoryRepo) CreateInventory(_ context.Context, params repository.CreateInventoryParams) (model.Inventory, error) {
	inv := model.Inventory{
		ID:                r.store.id(),
		ProductID:         params.ProductID,
		InitialQuantity:   params.InitialQuantity,
		RemainingQuantity: params.InitialQuantity,
		Threshold:         params.Threshold,
	}
	r.store.inventory[params.ProductID] = inv
	return inv, nil
}

func (r *fakeInventoryRepo) UpdateRemainingQuantity(_ context.Context, productID int64, remaining int) error {
	inv, ok := r.store.inventory[productID]
	if !ok {
		return fmt.Errorf("inventory update remaining quantity: %w", repository.ErrNotFound)
	}
	inv.RemainingQuantity = remaining
	r.store.inventory[productID] = inv
	return nil
}

func (r *fakeInventoryRepo) UpdateThreshold(_ context.Context, productID int64, threshold int) (model.Inventory, error) {
	inv, ok := r.store.inventory[productID]
	if !ok {
		return model.Inventory{}, fmt.Errorf("inventory update threshold: %w", repository.ErrNotFound)
	}
	inv.Threshold = threshold
	r.store.inventory[productID] = inv
	return inv, nil
}

func (r *fakeInventoryRepo) ListLowStock(_ context.Context, thresholdOverride *int) iter.Seq2[model.LowStockItem, error] {
	return func(yield func(model.LowStockItem, error) bool) {
		rows, _ := r.ListInventory(context.Background())
		for _, inv := range rows {
			threshold := inv.Threshold
			if thresholdOverride != nil {
				threshold = *thresholdOverride
			}
			if !inv.IsLowStock(threshold) {
				continue
			}
			item := model.LowStockItem{
				ProductID:         inv.ProductID,
				ProductName:       r.store.products[inv.ProductID].Name,
				RemainingQuantity: inv.RemainingQuantity,
				Threshold:         inv.Threshold,
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

type fakeHistoryRepo struct{ store *fakeStore }

func (r *fakeHistoryRepo) WithDB(db.DB) repository.InventoryHistoryRepository { return r }

func (r *fakeHistoryRepo) CreateInventoryChange(_ context.Context, params repository.CreateInventoryChangeParams) (model.InventoryChange, error) {
	if r.store.failHistoryInsert != nil {
		return model.InventoryChange{}, r.store.failHistoryInsert
	}
	change := model.InventoryChange{
		ID:             r.store.id(),
		ProductID:      params.ProductID,
		QuantityChange: params.QuantityChange,
		NewQuantity:    params.NewQuantity,
		ChangedAt:      params.ChangedAt,
	}
	r.store.history = append(r.store.history, change)
	return change, nil
}

func (r *fakeHistoryRepo) ListInventoryChanges(_ context.Context, productID int64) ([]model.InventoryChange, error) {
	return r.store.historyFor(productID), nil
}

type fakeReportRepo struct{ store *fakeStore }

func (r *fakeReportRepo) WithDB(db.DB) repository.ReportRepository { return r }

func (r *fakeReportRepo) SalesSummary(_ context.Context, params repository.SalesSummaryParams) ([]model.SalesSummary, error) {
	r.store.lastSalesParams = params
	return r.store.sales, nil
}

type fakeOrderRepo struct {
	store *fakeStore
	err   error
}

func (r *fakeOrderRepo) WithDB(db.DB) repository.OrderRepository { return r }

func (r *fakeOrderRepo) ListOrderOverviews(context.Context) ([]model.OrderOverview, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.store.orders, nil
}

var errFakeStore = errors.New("fake store failure")

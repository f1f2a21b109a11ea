package repository

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/shop-admin/internal/model"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db/sqlc"
)

type OrderRepository interface {
	WithDB(db db.DB) OrderRepository
	// ListOrderOverviews returns every order with its customer and line items, ordered by order id.
	ListOrderOverviews(ctx context.Context) ([]model.OrderOverview, error)
}

type orderRepository struct {
	db      db.DB
	queries sqlc.Queries
}

func NewOrderRepository(db db.DB, queries sqlc.Queries) OrderRepository {
	return &orderRepository{
		db:      db,
		queries: queries,
	}
}

func (r orderRepository) WithDB(db db.DB) OrderRepository {
	return &orderRepository{
		db:      db,
		queries: r.queries,
	}
}

func (r orderRepository) ListOrderOverviews(ctx context.Context) ([]model.OrderOverview, error) {
	orders, err := r.queries.OrderListWithCustomer(ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("order list with customer: %w", err)
	}
	if len(orders) == 0 {
		return []model.OrderOverview{}, nil
	}

	orderIDs := make([]int64, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}

	items, err := r.queries.OrderItemListByOrderIDs(ctx, r.db, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("order item list by order ids: %w", err)
	}

	itemsByOrder := make(map[int64][]model.OrderItemDetail, len(orders))
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], model.OrderItemDetail{
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    int(item.Quantity),
		})
	}

	result := make([]model.OrderOverview, 0, len(orders))
	for _, o := range orders {
		total, err := decimalFromNumeric(o.TotalAmount)
		if err != nil {
			return nil, fmt.Errorf("convert total amount to decimal: %w", err)
		}

		orderItems := itemsByOrder[o.ID]
		if orderItems == nil {
			orderItems = []model.OrderItemDetail{}
		}

		result = append(result, model.OrderOverview{
			Order: model.Order{
				ID:          o.ID,
				CustomerID:  o.CustomerID,
				TotalAmount: total,
				Status:      model.OrderStatus(o.Status),
				CreatedAt:   o.CreatedAt,
			},
			Customer: model.Customer{
				ID:      o.CustomerID,
				Name:    o.CustomerName,
				Email:   o.CustomerEmail,
				Phone:   o.CustomerPhone,
				Address: o.CustomerAddress,
			},
			Items: orderItems,
		})
	}

	return result, nil
}

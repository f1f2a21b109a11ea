package http

import (
	"time"

	"github.com/tuanvumaihuynh/shop-admin/internal/model"
	"github.com/tuanvumaihuynh/shop-admin/internal/service"
)

type healthResponse struct {
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type categoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toCategoryResponse(c model.Category) categoryResponse {
	return categoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

type productResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Sku         string    `json:"sku"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	CategoryID  int64     `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func toProductResponse(p model.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Sku:         p.Sku,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
	}
}

type inventoryResponse struct {
	ID                int64 `json:"id"`
	ProductID         int64 `json:"product_id"`
	InitialQuantity   int   `json:"initial_quantity"`
	RemainingQuantity int   `json:"remaining_quantity"`
	Threshold         int   `json:"threshold"`
}

func toInventoryResponse(i model.Inventory) inventoryResponse {
	return inventoryResponse{
		ID:                i.ID,
		ProductID:         i.ProductID,
		InitialQuantity:   i.InitialQuantity,
		RemainingQuantity: i.RemainingQuantity,
		Threshold:         i.Threshold,
	}
}

type lowStockItemResponse struct {
	ProductID         int64  `json:"product_id"`
	ProductName       string `json:"product_name"`
	RemainingQuantity int    `json:"remaining_quantity"`
	Threshold         int    `json:"threshold"`
}

type inventoryDetailsResponse struct {
	Inventory     []inventoryResponse    `json:"inventory"`
	LowStockItems []lowStockItemResponse `json:"low_stock_items"`
}

type inventoryUpdateResponse struct {
	Message        string `json:"message"`
	ProductID      int64  `json:"product_id"`
	QuantityChange int    `json:"quantity_change"`
	NewQuantity    int    `json:"new_quantity"`
}

type inventoryChangeResponse struct {
	ID              int64     `json:"id"`
	ProductID       int64     `json:"product_id"`
	QuantityChange  int       `json:"quantity_change"`
	NewQuantity     int       `json:"new_quantity"`
	ChangeTimestamp time.Time `json:"change_timestamp"`
}

type inventoryHistoryResponse struct {
	ProductName   string                    `json:"product_name"`
	ChangeHistory []inventoryChangeResponse `json:"change_history"`
}

func toInventoryHistoryResponse(h service.ProductHistory) inventoryHistoryResponse {
	changes := make([]inventoryChangeResponse, 0, len(h.Changes))
	for _, c := range h.Changes {
		changes = append(changes, inventoryChangeResponse{
			ID:              c.ID,
			ProductID:       c.ProductID,
			QuantityChange:  c.QuantityChange,
			NewQuantity:     c.NewQuantity,
			ChangeTimestamp: c.ChangedAt,
		})
	}

	return inventoryHistoryResponse{
		ProductName:   h.ProductName,
		ChangeHistory: changes,
	}
}

type salesSummaryResponse struct {
	ProductID     int64   `json:"product_id"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalSales    float64 `json:"total_sales"`
}

type customerResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type orderItemResponse struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

type orderOverviewResponse struct {
	OrderID     int64               `json:"order_id"`
	TotalAmount float64             `json:"total_amount"`
	Status      string              `json:"status"`
	Customer    customerResponse    `json:"customer"`
	OrderItems  []orderItemResponse `json:"order_items"`
	CreatedAt   time.Time           `json:"created_at"`
}

func toOrderOverviewResponse(o model.OrderOverview) orderOverviewResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}

	return orderOverviewResponse{
		OrderID:     o.Order.ID,
		TotalAmount: o.Order.TotalAmount.InexactFloat64(),
		Status:      string(o.Order.Status),
		Customer: customerResponse{
			ID:      o.Customer.ID,
			Name:    o.Customer.Name,
			Email:   o.Customer.Email,
			Phone:   o.Customer.Phone,
			Address: o.Customer.Address,
		},
		OrderItems: items,
		CreatedAt:  o.Order.CreatedAt,
	}
}

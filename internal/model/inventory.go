package model

import "time"

// Inventory is the stock counter of a single product.
// RemainingQuantity only changes through the inventory ledger.
type Inventory struct {
	ID                int64 `json:"id"`
	ProductID         int64 `json:"product_id"`
	InitialQuantity   int   `json:"initial_quantity"`
	RemainingQuantity int   `json:"remaining_quantity"`
	Threshold         int   `json:"threshold"`
}

// IsLowStock reports whether the remaining quantity is at or below threshold.
func (i Inventory) IsLowStock(threshold int) bool {
	return i.RemainingQuantity <= threshold
}

// InventoryChange is one immutable entry of a product's stock ledger.
type InventoryChange struct {
	ID             int64     `json:"id"`
	ProductID      int64     `json:"product_id"`
	QuantityChange int       `json:"quantity_change"`
	NewQuantity    int       `json:"new_quantity"`
	ChangedAt      time.Time `json:"change_timestamp"`
}

type LowStockItem struct {
	ProductID         int64  `json:"product_id"`
	ProductName       string `json:"product_name"`
	RemainingQuantity int    `json:"remaining_quantity"`
	Threshold         int    `json:"threshold"`
}

// InventoryFeedEntry is a ledger entry enriched for the change feed.
type InventoryFeedEntry struct {
	InventoryChange
	ProductName string
	// Threshold is the product's threshold when the entry was written. It is
	// nil when the product had no inventory row at that point.
	Threshold *int
}

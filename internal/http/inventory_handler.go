package http

import (
	"fmt"
	"net/http"

	"github.com/tuanvumaihuynh/shop-admin/internal/service"
)

type inventoryThresholdRequest struct {
	Threshold int `json:"threshold"`
}

type inventoryHandler struct {
	inventorySvc service.InventoryService
}

func newInventoryHandler(inventorySvc service.InventoryService) *inventoryHandler {
	return &inventoryHandler{
		inventorySvc: inventorySvc,
	}
}

func (h *inventoryHandler) GetInventoryDetails(w http.ResponseWriter, r *http.Request) error {
	var threshold *int
	if err := bindQuery(r, "low_stock_threshold", false, &threshold); err != nil {
		return err
	}

	inventory, err := h.inventorySvc.ListInventory(r.Context())
	if err != nil {
		return fmt.Errorf("inventory service list inventory: %w", err)
	}

	res := inventoryDetailsResponse{
		Inventory:     make([]inventoryResponse, 0, len(inventory)),
		LowStockItems: []lowStockItemResponse{},
	}
	for _, inv := range inventory {
		res.Inventory = append(res.Inventory, toInventoryResponse(inv))
	}

	for item, err := range h.inventorySvc.ListLowStock(r.Context(), threshold) {
		if err != nil {
			return fmt.Errorf("inventory service list low stock: %w", err)
		}
		res.LowStockItems = append(res.LowStockItems, lowStockItemResponse{
			ProductID:         item.ProductID,
			ProductName:       item.ProductName,
			RemainingQuantity: item.RemainingQuantity,
			Threshold:         item.Threshold,
		})
	}

	return writeJSON(w, http.StatusOK, res)
}

func (h *inventoryHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) error {
	productID, err := pathInt64(r, "product_id")
	if err != nil {
		return err
	}

	var quantityChange int
	if err := bindQuery(r, "quantity_change", true, &quantityChange); err != nil {
		return err
	}

	change, err := h.inventorySvc.ApplyDelta(r.Context(), service.ApplyDeltaParams{
		ProductID:      productID,
		QuantityChange: quantityChange,
	})
	if err != nil {
		return fmt.Errorf("inventory service apply delta: %w", err)
	}

	return writeJSON(w, http.StatusOK, inventoryUpdateResponse{
		Message:        "Inventory updated successfully",
		ProductID:      change.ProductID,
		QuantityChange: change.QuantityChange,
		NewQuantity:    change.NewQuantity,
	})
}

func (h *inventoryHandler) UpdateInventoryThreshold(w http.ResponseWriter, r *http.Request) error {
	productID, err := pathInt64(r, "product_id")
	if err != nil {
		return err
	}

	var req inventoryThresholdRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	inventory, err := h.inventorySvc.UpdateThreshold(r.Context(), service.UpdateThresholdParams{
		ProductID: productID,
		Threshold: req.Threshold,
	})
	if err != nil {
		return fmt.Errorf("inventory service update threshold: %w", err)
	}

	return writeJSON(w, http.StatusOK, toInventoryResponse(inventory))
}

func (h *inventoryHandler) GetInventoryChangeHistory(w http.ResponseWriter, r *http.Request) error {
	productID, err := pathInt64(r, "product_id")
	if err != nil {
		return err
	}

	history, err := h.inventorySvc.GetHistory(r.Context(), productID)
	if err != nil {
		return fmt.Errorf("inventory service get history: %w", err)
	}

	return writeJSON(w, http.StatusOK, toInventoryHistoryResponse(history))
}

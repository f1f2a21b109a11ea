package event

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/tuanvumaihuynh/shop-admin/internal/model"
	"github.com/tuanvumaihuynh/shop-admin/pkg/ptr"
)

const TopicInventoryChanged = "inventory.changed"

// InventoryChangedEvent is published once per inventory ledger entry.
// Threshold and LowStock reflect the product's threshold when the entry was
// written, not when it was relayed.
type InventoryChangedEvent struct {
	HistoryID      int64     `json:"history_id"`
	ProductID      int64     `json:"product_id"`
	ProductName    string    `json:"product_name"`
	QuantityChange int       `json:"quantity_change"`
	NewQuantity    int       `json:"new_quantity"`
	Threshold      *int      `json:"threshold"`
	LowStock       bool      `json:"low_stock"`
	ChangedAt      time.Time `json:"changed_at"`
}

func NewInventoryChangedEvent(e model.InventoryFeedEntry) InventoryChangedEvent {
	return InventoryChangedEvent{
		HistoryID:      e.ID,
		ProductID:      e.ProductID,
		ProductName:    e.ProductName,
		QuantityChange: e.QuantityChange,
		NewQuantity:    e.NewQuantity,
		Threshold:      e.Threshold,
		LowStock:       e.Threshold != nil && e.NewQuantity <= *e.Threshold,
		ChangedAt:      e.ChangedAt,
	}
}

// PartitionKey keeps events of one product in order.
func (e InventoryChangedEvent) PartitionKey() string {
	return strconv.FormatInt(e.ProductID, 10)
}

func (s *Service) handleInventoryChangedEvent(ctx context.Context, ev InventoryChangedEvent) error {
	attrs := []any{
		slog.Int64("history_id", ev.HistoryID),
		slog.Int64("product_id", ev.ProductID),
		slog.Int("quantity_change", ev.QuantityChange),
		slog.Int("new_quantity", ev.NewQuantity),
	}

	s.logger.InfoContext(ctx, "handling inventory changed event", attrs...)

	if ev.LowStock {
		s.logger.WarnContext(ctx, "product is low on stock",
			append(attrs,
				slog.String("product_name", ev.ProductName),
				slog.Int("threshold", ptr.Deref(ev.Threshold, 0)),
			)...,
		)
	}

	return nil
}

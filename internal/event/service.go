package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tuanvumaihuynh/shop-admin/internal/storage/mq"
)

// Service consumes the inventory change feed.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
) *Service {
	return &Service{
		logger:     logger.With(slog.String("service", "event")),
		mqConsumer: mqConsumer,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	if err := s.mqConsumer.RegisterHandler(
		TopicInventoryChanged,
		func(ctx context.Context, msg mq.Message) error {
			var ev InventoryChangedEvent
			if err := json.Unmarshal(msg.Payload, &ev); err != nil {
				return fmt.Errorf("unmarshal inventory changed event: %w", err)
			}

			if err := s.handleInventoryChangedEvent(ctx, ev); err != nil {
				return fmt.Errorf("handle inventory changed event: %w", err)
			}

			return nil
		},
	); err != nil {
		return nil, fmt.Errorf("register inventory changed event handler: %w", err)
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	cleanup := func() {
		mqCleanup()
	}

	return cleanup, nil
}

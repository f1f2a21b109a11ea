package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/tuanvumaihuynh/shop-admin/internal/config"
	"github.com/tuanvumaihuynh/shop-admin/internal/event"
	"github.com/tuanvumaihuynh/shop-admin/internal/repository"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/mq"
	"github.com/tuanvumaihuynh/shop-admin/pkg/msgheader"
	"github.com/tuanvumaihuynh/shop-admin/pkg/ptr"
)

// Service publishes pending inventory ledger entries from the feed outbox to
// the message queue in id order.
type Service struct {
	cfg        config.Relay
	logger     *slog.Logger
	db         db.DB
	feedRepo   repository.InventoryFeedRepository
	mqProducer mq.Producer

	stopChan chan struct{}
}

func NewService(
	cfg config.Relay,
	logger *slog.Logger,
	db db.DB,
	feedRepo repository.InventoryFeedRepository,
	mqProducer mq.Producer,
) *Service {
	return &Service{
		cfg:        cfg,
		logger:     logger.With(slog.String("service", "relay")),
		db:         db,
		feedRepo:   feedRepo,
		mqProducer: mqProducer,
		stopChan:   make(chan struct{}),
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) CleanupFunc {
	ctx, cancel := context.WithCancel(ctx)

	stoppedChan := make(chan struct{})
	go func() {
		defer close(stoppedChan)
		s.run(ctx)
	}()

	return func() {
		close(s.stopChan)
		select {
		case <-stoppedChan:
		case <-time.After(5 * time.Second):
			cancel()
			<-stoppedChan
		}
		cancel()
	}
}

func (s *Service) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-time.After(s.cfg.Interval):
			if _, err := s.relayOnce(ctx); err != nil {
				s.logger.ErrorContext(ctx, "error relaying inventory changes", slog.Any("error", err))
			}
		}
	}
}

// relayOnce publishes one batch of pending outbox entries and returns how many
// were published. Publishing stops at the first failure; only entries the
// broker acknowledged are marked published, the rest stay pending.
func (s *Service) relayOnce(ctx context.Context) (int, error) {
	var published int

	err := s.db.WithTx(ctx, func(db db.DB) error {
		feedRepo := s.feedRepo.WithDB(db)

		ok, err := feedRepo.TryLockFeed(ctx, s.cfg.FeedName)
		if err != nil {
			return fmt.Errorf("lock feed: %w", err)
		}
		if !ok {
			return nil
		}

		//nolint:gosec
		entries, err := feedRepo.ListPendingEntries(ctx, int32(s.cfg.BatchSize))
		if err != nil {
			return fmt.Errorf("list pending entries: %w", err)
		}

		if len(entries) == 0 {
			return nil
		}

		s.logger.InfoContext(ctx, "relaying inventory changes", slog.Int("count", len(entries)))

		publishedIDs := make([]int64, 0, len(entries))
		for _, entry := range entries {
			ev := event.NewInventoryChangedEvent(entry)

			if err := s.produce(ctx, ev); err != nil {
				s.logger.ErrorContext(ctx,
					"error producing message",
					slog.Int64("history_id", entry.ID),
					slog.String("topic", event.TopicInventoryChanged),
					slog.Any("error", err),
				)
				break
			}

			publishedIDs = append(publishedIDs, entry.ID)
		}

		if err := feedRepo.MarkPublished(ctx, publishedIDs); err != nil {
			return fmt.Errorf("mark published: %w", err)
		}

		published = len(publishedIDs)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return published, nil
}

func (s *Service) produce(ctx context.Context, ev event.InventoryChangedEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal inventory changed event: %w", err)
	}

	if err := s.mqProducer.Produce(ctx, mq.ProduceMsg{
		Topic:        event.TopicInventoryChanged,
		Headers:      msgheader.Build(ctx),
		Payload:      payload,
		PartitionKey: ptr.New(ev.PartitionKey()),
	}); err != nil {
		return fmt.Errorf("produce message: %w", err)
	}

	return nil
}

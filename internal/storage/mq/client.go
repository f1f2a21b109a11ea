package mq

import (
	"context"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/plugin/kotel"
	"go.opentelemetry.io/otel"

	"github.com/tuanvumaihuynh/shop-admin/internal/config"
)

var tracer = otel.Tracer("internal/storage/mq")

const pingTimeout = 5 * time.Second

// newClient creates a kafka client traced with kotel and checks that a broker
// is reachable.
func newClient(ctx context.Context, cfg config.Kafka, extra ...kgo.Opt) (*kgo.Client, error) {
	k := kotel.NewKotel(kotel.WithTracer(kotel.NewTracer()))

	opts := append([]kgo.Opt{
		kgo.SeedBrokers(cfg.Addresses...),
		kgo.ClientID(cfg.ClientID),
		kgo.AllowAutoTopicCreation(),
		kgo.WithContext(ctx),
		kgo.WithHooks(k.Hooks()...),
	}, extra...)

	cl, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, pingTimeout)
	defer pingCancel()
	if err := cl.Ping(pingCtx); err != nil {
		cl.Close()
		return nil, fmt.Errorf("ping kafka: %w", err)
	}

	return cl, nil
}

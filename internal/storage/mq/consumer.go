package mq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tuanvumaihuynh/shop-admin/internal/config"
	"github.com/tuanvumaihuynh/shop-admin/pkg/msgheader"
)

// Message is a consumed record with its headers flattened.
type Message struct {
	Topic   string
	Key     []byte
	Headers map[string]string
	Payload []byte
}

// HandlerFunc handles one message. ctx carries the trace context and
// correlation id propagated in the message headers.
type HandlerFunc func(ctx context.Context, msg Message) error

type CleanupFunc func()

type Consumer interface {
	RegisterHandler(topic string, handler HandlerFunc) error
	Run(ctx context.Context) (CleanupFunc, error)
}

var _ Consumer = (*KafkaConsumer)(nil)

type KafkaConsumer struct {
	cl       *kgo.Client
	handlers map[string]HandlerFunc
	log      *slog.Logger
}

func NewKafkaConsumer(ctx context.Context, cfg config.Kafka, logger *slog.Logger) (*KafkaConsumer, error) {
	cl, err := newClient(ctx, cfg,
		kgo.ConsumerGroup(cfg.Group),
		kgo.DisableAutoCommit(),
	)
	if err != nil {
		return nil, err
	}

	return &KafkaConsumer{
		cl:       cl,
		handlers: make(map[string]HandlerFunc),
		log:      logger.With(slog.String("service", "mq_consumer")),
	}, nil
}

func (c *KafkaConsumer) RegisterHandler(topic string, handler HandlerFunc) error {
	if _, exists := c.handlers[topic]; exists {
		return fmt.Errorf("handler for topic %s already registered", topic)
	}

	c.cl.AddConsumeTopics(topic)
	c.handlers[topic] = handler
	return nil
}

func (c *KafkaConsumer) Run(ctx context.Context) (CleanupFunc, error) {
	ctx, cancel := context.WithCancel(ctx)
	doneChan := make(chan struct{})

	go func() {
		defer close(doneChan)

		for {
			select {
			case <-ctx.Done():
				return
			default:
				fetches := c.cl.PollFetches(ctx)
				if errs := fetches.Errors(); len(errs) > 0 {
					if errors.Is(errs[0].Err, context.Canceled) {
						// context cancelled, likely due to shutdown
						continue
					}

					c.log.ErrorContext(ctx, "error fetching messages",
						slog.Any("error", errs),
					)
					continue
				}

				fetches.EachRecord(func(rec *kgo.Record) {
					dispatch(ctx, c.log, c.handlers, rec)
				})

				if err := c.cl.CommitUncommittedOffsets(ctx); err != nil {
					c.log.ErrorContext(ctx, "error committing offsets",
						slog.Any("error", err),
					)
				}
			}
		}
	}()

	cleanup := func() {
		cancel()
		<-doneChan
	}

	return cleanup, nil
}

func (c *KafkaConsumer) Close() {
	c.cl.Close()
}

// dispatch runs the handler registered for the record topic. Handler errors and
// panics are logged and never stop the poll loop.
func dispatch(ctx context.Context, log *slog.Logger, handlers map[string]HandlerFunc, rec *kgo.Record) {
	msg := recordToMessage(rec)
	ctx = msgheader.ExtractContext(ctx, msg.Headers)

	ctx, span := tracer.Start(ctx, "KafkaConsumer.Handle",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(attribute.String("topic", msg.Topic)),
	)
	defer span.End()

	defer func() {
		if rvr := recover(); rvr != nil {
			span.RecordError(fmt.Errorf("panic: %v", rvr))
			span.SetStatus(codes.Error, "panic in handler")

			log.ErrorContext(ctx, "panic in message handler",
				slog.String("topic", msg.Topic),
				slog.Any("recover", rvr),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	fn, exists := handlers[msg.Topic]
	if !exists {
		log.WarnContext(ctx, "no handler registered for topic",
			slog.String("topic", msg.Topic),
		)
		return
	}

	if err := fn(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to handle message")

		log.ErrorContext(ctx, "error handling message",
			slog.String("topic", msg.Topic),
			slog.String("key", string(msg.Key)),
			slog.Any("error", err),
		)
	}
}

func recordToMessage(rec *kgo.Record) Message {
	return Message{
		Topic:   rec.Topic,
		Key:     rec.Key,
		Headers: msgheader.FromRecord(rec),
		Payload: rec.Value,
	}
}

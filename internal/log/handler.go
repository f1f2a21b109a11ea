package log

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/tuanvumaihuynh/shop-admin/pkg/correlationid"
)

const (
	correlationIDKey = "correlation_id"
	traceIDKey       = "trace_id"
	spanIDKey        = "span_id"
)

var _ slog.Handler = (*enrichedHandler)(nil)

// enrichedHandler adds correlation_id, trace_id and span_id from the record context.
type enrichedHandler struct {
	h slog.Handler
}

func newEnrichedHandler(h slog.Handler) enrichedHandler {
	return enrichedHandler{h: h}
}

func (eh enrichedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return eh.h.Enabled(ctx, level)
}

func (eh enrichedHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx == nil {
		return eh.h.Handle(ctx, r)
	}

	if correlationID, ok := correlationid.FromContext(ctx); ok {
		r.AddAttrs(slog.String(correlationIDKey, correlationID))
	}

	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		r.AddAttrs(
			slog.String(traceIDKey, spanCtx.TraceID().String()),
			slog.String(spanIDKey, spanCtx.SpanID().String()),
		)
	}

	return eh.h.Handle(ctx, r)
}

func (eh enrichedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newEnrichedHandler(eh.h.WithAttrs(attrs))
}

func (eh enrichedHandler) WithGroup(name string) slog.Handler {
	return newEnrichedHandler(eh.h.WithGroup(name))
}

package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"

	"github.com/tuanvumaihuynh/shop-admin/internal/http/apierr"
	"github.com/tuanvumaihuynh/shop-admin/internal/http/metric"
)

// Recoverer turns a handler panic into the generic 500 error body. The panic
// and its stack are logged and counted per route; internals never reach the
// client.
func Recoverer(log *slog.Logger, m *metric.Metrics) func(http.Handler) http.Handler {
	errorMsg, err := json.Marshal(apierr.InternalServerErr)
	if err != nil {
		panic(err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					// the client connection is already gone
					panic(rvr)
				}

				route := "<unknown>"
				if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
					route = rctx.RoutePattern()
				}
				m.PanicsTotal.WithLabelValues(r.Method, route).Inc()

				log.ErrorContext(r.Context(), "panic while serving request",
					slog.String("method", r.Method),
					slog.String("route", route),
					slog.Any("recover", rvr),
					slog.String("stack", string(debug.Stack())),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				//nolint:errcheck
				w.Write(errorMsg)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	apicontract "github.com/tuanvumaihuynh/shop-admin/api-contract"
	"github.com/tuanvumaihuynh/shop-admin/internal/apperr"
	"github.com/tuanvumaihuynh/shop-admin/internal/config"
	"github.com/tuanvumaihuynh/shop-admin/internal/http/apierr"
	"github.com/tuanvumaihuynh/shop-admin/internal/http/metric"
	"github.com/tuanvumaihuynh/shop-admin/internal/http/middleware"
	"github.com/tuanvumaihuynh/shop-admin/internal/http/swagger"
	"github.com/tuanvumaihuynh/shop-admin/internal/service"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db"
)

var tracer = otel.Tracer("internal/http")

const healthzPath = "/healthz"

// Services groups the application services exposed over HTTP.
type Services struct {
	Category  service.CategoryService
	Product   service.ProductService
	Inventory service.InventoryService
	Report    service.ReportService
}

// Service represents the HTTP service.
type Service struct {
	cfg     config.HTTP
	logger  *slog.Logger
	metrics *metric.Metrics
	health  db.HealthChecker

	svcs Services
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	health db.HealthChecker,
	svcs Services,
) *Service {
	return &Service{
		cfg:     cfg,
		logger:  log.With(slog.String("service", "http")),
		metrics: metric.New(),
		health:  health,
		svcs:    svcs,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	r, err := s.Router(ctx)
	if err != nil {
		return nil, err
	}

	return s.RunWithServer(ctx, r)
}

// Router builds the complete handler: middlewares, docs, API routes, health and metrics.
func (s *Service) Router(ctx context.Context) (http.Handler, error) {
	r := chi.NewRouter()
	if err := s.RegisterMiddlewares(ctx, r); err != nil {
		return nil, err
	}

	if s.cfg.Swagger {
		swagger.Register(r, "Shop Admin API", apicontract.GetSpecBytes())
	}

	s.RegisterHandlers(r)

	return r, nil
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}

	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(ctx context.Context, r chi.Router) error {
	r.Use(
		middleware.Recoverer(s.logger, s.metrics),
		middleware.CorrelationID(),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.Cors(s.cfg.AllowedOrigins),
		middleware.Logging(s.logger),
	)

	if !s.cfg.ValidateRequest {
		return nil
	}

	doc, err := middleware.LoadOpenAPI(ctx, apicontract.GetSpecBytes())
	if err != nil {
		return fmt.Errorf("load api contract: %w", err)
	}
	validator, err := middleware.OpenAPIValidator(doc, s.handleRequestError)
	if err != nil {
		return fmt.Errorf("create request validator: %w", err)
	}
	r.Use(validator)

	return nil
}

func (s *Service) RegisterHandlers(r chi.Router) {
	h := s.newHandler()

	r.Get("/overview", s.handle(h.GetOverview))
	r.Get("/sales-details", s.handle(h.GetSalesDetails))

	r.Get("/inventory-details", s.handle(h.GetInventoryDetails))
	r.Put("/update-inventory/{product_id}", s.handle(h.UpdateInventory))
	r.Put("/inventory-threshold/{product_id}", s.handle(h.UpdateInventoryThreshold))
	r.Get("/inventory-change-history/{product_id}", s.handle(h.GetInventoryChangeHistory))

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", s.handle(h.ListCategories))
		r.Post("/", s.handle(h.CreateCategory))
		r.Get("/{category_id}", s.handle(h.GetCategory))
		r.Put("/{category_id}", s.handle(h.UpdateCategory))
		r.Delete("/{category_id}", s.handle(h.DeleteCategory))
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", s.handle(h.ListProducts))
		r.Post("/", s.handle(h.CreateProduct))
		r.Get("/{product_id}", s.handle(h.GetProduct))
		r.Put("/{product_id}", s.handle(h.UpdateProduct))
		r.Delete("/{product_id}", s.handle(h.DeleteProduct))
	})

	r.Get(healthzPath, s.handle(s.healthz))

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}

// handlerFunc is an http.HandlerFunc that reports failures instead of writing them.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (s *Service) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			s.handleResponseError(w, r, err)
		}
	}
}

func (s *Service) healthz(w http.ResponseWriter, r *http.Request) error {
	if _, err := s.health.IsHealthy(r.Context()); err != nil {
		s.logger.ErrorContext(r.Context(), "database health check failed", slog.Any("error", err))
		return writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
	}

	return writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (s *Service) handleRequestError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)
	if res.StatusCode >= http.StatusInternalServerError {
		res = apierr.New(apperr.ValidationErr.WrapParent(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)

	s.logger.WarnContext(r.Context(), "http request rejected", slog.Any("error", err))

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.WarnContext(r.Context(), "error encoding error request",
			slog.Any("error", err))
	}
}

func (s *Service) handleResponseError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}

type handler struct {
	*categoryHandler
	*productHandler
	*inventoryHandler
	*reportHandler
}

func (s *Service) newHandler() *handler {
	return &handler{
		categoryHandler:  newCategoryHandler(s.svcs.Category),
		productHandler:   newProductHandler(s.svcs.Product),
		inventoryHandler: newInventoryHandler(s.svcs.Inventory),
		reportHandler:    newReportHandler(s.svcs.Report),
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tuanvumaihuynh/shop-admin/internal/config"
	"github.com/tuanvumaihuynh/shop-admin/internal/http"
	"github.com/tuanvumaihuynh/shop-admin/internal/log"
	"github.com/tuanvumaihuynh/shop-admin/internal/repository"
	"github.com/tuanvumaihuynh/shop-admin/internal/service"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db/sqlc"
	"github.com/tuanvumaihuynh/shop-admin/internal/telemetry"
	"github.com/tuanvumaihuynh/shop-admin/pkg/cmdutil"
	"github.com/tuanvumaihuynh/shop-admin/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running api application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log      config.Log
		Postgres config.Postgres
		HTTP     config.HTTP
		Otel     config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	dbClient := db.NewClient(pgxPool)
	queries := *sqlc.New()
	v := validator.MustNewDefaultValidator()

	categoryRepository := repository.NewCategoryRepository(dbClient, queries)
	productRepository := repository.NewProductRepository(dbClient, queries)
	inventoryRepository := repository.NewInventoryRepository(dbClient, queries)
	historyRepository := repository.NewInventoryHistoryRepository(dbClient, queries)
	reportRepository := repository.NewReportRepository(dbClient, queries)
	orderRepository := repository.NewOrderRepository(dbClient, queries)

	svcs := http.Services{
		Category:  service.NewCategoryService(v, categoryRepository),
		Product:   service.NewProductService(dbClient, v, categoryRepository, productRepository, inventoryRepository),
		Inventory: service.NewInventoryService(dbClient, logger, v, productRepository, inventoryRepository, historyRepository),
		Report:    service.NewReportService(v, reportRepository, orderRepository),
	}

	interruptChan := cmdutil.InterruptChan()

	svc := http.New(cfg.HTTP, logger, dbClient, svcs)
	cleanup, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running http service: %w", err)
	}

	logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

	<-interruptChan

	logger.InfoContext(ctx, "http service is shutting down")
	if err := cleanup(ctx); err != nil {
		logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
	}

	logger.InfoContext(ctx, "http service is stopped")

	return nil
}

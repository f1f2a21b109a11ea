package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tuanvumaihuynh/shop-admin/internal/model"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db"
	"github.com/tuanvumaihuynh/shop-admin/internal/storage/db/sqlc"
)

// SalesSummaryParams holds optional, conjunctive filters. Dates are compared
// against the calendar date of the order creation time, both bounds inclusive.
type SalesSummaryParams struct {
	StartDate  *time.Time
	EndDate    *time.Time
	ProductID  *int64
	CategoryID *int64
}

type ReportRepository interface {
	WithDB(db db.DB) ReportRepository
	SalesSummary(ctx context.Context, params SalesSummaryParams) ([]model.SalesSummary, error)
}

type reportRepository struct {
	db      db.DB
	queries sqlc.Queries
}

func NewReportRepository(db db.DB, queries sqlc.Queries) ReportRepository {
	return &reportRepository{
		db:      db,
		queries: queries,
	}
}

func (r reportRepository) WithDB(db db.DB) ReportRepository {
	return &reportRepository{
		db:      db,
		queries: r.queries,
	}
}

func (r reportRepository) SalesSummary(ctx context.Context, params SalesSummaryParams) ([]model.SalesSummary, error) {
	rows, err := r.queries.SalesSummary(ctx, r.db, sqlc.SalesSummaryParams{
		StartDate:  toPgDate(params.StartDate),
		EndDate:    toPgDate(params.EndDate),
		ProductID:  params.ProductID,
		CategoryID: params.CategoryID,
	})
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}

	result := make([]model.SalesSummary, 0, len(rows))
	for _, row := range rows {
		total, err := decimalFromNumeric(row.TotalSales)
		if err != nil {
			return nil, fmt.Errorf("convert total sales to decimal: %w", err)
		}

		result = append(result, model.SalesSummary{
			ProductID:     row.ProductID,
			TotalQuantity: row.TotalQuantity,
			TotalSales:    total,
		})
	}

	return result, nil
}

func toPgDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	y, m, d := t.Date()
	return pgtype.Date{
		Time:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Valid: true,
	}
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tuanvumaihuynh/shop-admin/internal/apperr"
	"github.com/tuanvumaihuynh/shop-admin/internal/model"
	"github.com/tuanvumaihuynh/shop-admin/internal/repository"
	"github.com/tuanvumaihuynh/shop-admin/pkg/validator"
)

// SalesSummaryParams filters are optional and combined with AND. Each date
// bound is inclusive and compared against the UTC calendar date of the order.
type SalesSummaryParams struct {
	StartDate  *time.Time
	EndDate    *time.Time
	ProductID  *int64 `validate:"omitempty,gte=1"`
	CategoryID *int64 `validate:"omitempty,gte=1"`
}

type ReportService interface {
	SalesSummary(ctx context.Context, params SalesSummaryParams) ([]model.SalesSummary, error)
	Overview(ctx context.Context) ([]model.OrderOverview, error)
}

type reportService struct {
	validator  validator.Validator
	reportRepo repository.ReportRepository
	orderRepo  repository.OrderRepository
}

func NewReportService(
	validator validator.Validator,
	reportRepo repository.ReportRepository,
	orderRepo repository.OrderRepository,
) ReportService {
	return &reportService{
		validator:  validator,
		reportRepo: reportRepo,
		orderRepo:  orderRepo,
	}
}

func (s *reportService) SalesSummary(ctx context.Context, params SalesSummaryParams) ([]model.SalesSummary, error) {
	if err := s.validator.Validate(params); err != nil {
		return nil, err
	}
	if params.StartDate != nil && params.EndDate != nil && params.StartDate.After(*params.EndDate) {
		return nil, apperr.ValidationErr.WrapParent(fmt.Errorf("start date %s is after end date %s",
			params.StartDate.Format(time.DateOnly), params.EndDate.Format(time.DateOnly)))
	}

	summary, err := s.reportRepo.SalesSummary(ctx, repository.SalesSummaryParams{
		StartDate:  params.StartDate,
		EndDate:    params.EndDate,
		ProductID:  params.ProductID,
		CategoryID: params.CategoryID,
	})
	if err != nil {
		return nil, fmt.Errorf("report repository sales summary: %w", err)
	}

	return summary, nil
}

func (s *reportService) Overview(ctx context.Context) ([]model.OrderOverview, error) {
	overviews, err := s.orderRepo.ListOrderOverviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("order repository list order overviews: %w", err)
	}

	return overviews, nil
}

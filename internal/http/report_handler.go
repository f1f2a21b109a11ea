package http

import (
	"fmt"
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/tuanvumaihuynh/shop-admin/internal/service"
)

type reportHandler struct {
	reportSvc service.ReportService
}

func newReportHandler(reportSvc service.ReportService) *reportHandler {
	return &reportHandler{
		reportSvc: reportSvc,
	}
}

func (h *reportHandler) GetOverview(w http.ResponseWriter, r *http.Request) error {
	overviews, err := h.reportSvc.Overview(r.Context())
	if err != nil {
		return fmt.Errorf("report service overview: %w", err)
	}

	items := make([]orderOverviewResponse, 0, len(overviews))
	for _, o := range overviews {
		items = append(items, toOrderOverviewResponse(o))
	}

	return writeJSON(w, http.StatusOK, items)
}

func (h *reportHandler) GetSalesDetails(w http.ResponseWriter, r *http.Request) error {
	var (
		startDate  *openapi_types.Date
		endDate    *openapi_types.Date
		productID  *int64
		categoryID *int64
	)
	if err := bindQuery(r, "start_date", false, &startDate); err != nil {
		return err
	}
	if err := bindQuery(r, "end_date", false, &endDate); err != nil {
		return err
	}
	if err := bindQuery(r, "product_id", false, &productID); err != nil {
		return err
	}
	if err := bindQuery(r, "category_id", false, &categoryID); err != nil {
		return err
	}

	summary, err := h.reportSvc.SalesSummary(r.Context(), service.SalesSummaryParams{
		StartDate:  dateToTime(startDate),
		EndDate:    dateToTime(endDate),
		ProductID:  productID,
		CategoryID: categoryID,
	})
	if err != nil {
		return fmt.Errorf("report service sales summary: %w", err)
	}

	items := make([]salesSummaryResponse, 0, len(summary))
	for _, s := range summary {
		items = append(items, salesSummaryResponse{
			ProductID:     s.ProductID,
			TotalQuantity: s.TotalQuantity,
			TotalSales:    s.TotalSales.InexactFloat64(),
		})
	}

	return writeJSON(w, http.StatusOK, items)
}

func dateToTime(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

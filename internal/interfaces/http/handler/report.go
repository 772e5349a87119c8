package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/littleshop/backend/internal/application/reporting"
)

// ReportHandler exposes the cross-merchant reporting endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reporting.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reporting.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// UnshippedInvoices handles GET /reports/invoices/unshipped
func (h *ReportHandler) UnshippedInvoices(c *gin.Context) {
	rows, err := h.reportService.UnshippedInvoices(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// HighestRevenueDate handles GET /reports/items/:item_id/highest-revenue-date
func (h *ReportHandler) HighestRevenueDate(c *gin.Context) {
	itemID, ok := h.parseIDParam(c, "item_id")
	if !ok {
		return
	}

	date, err := h.reportService.HighestRevenueDate(c.Request.Context(), itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, reporting.HighestRevenueDateResponse{Date: date})
}

// RegisterRoutes registers all report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/invoices/unshipped", h.UnshippedInvoices)
		reports.GET("/items/:item_id/highest-revenue-date", h.HighestRevenueDate)
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/littleshop/backend/internal/application/catalog"
	"github.com/littleshop/backend/internal/application/reporting"
	"github.com/littleshop/backend/internal/interfaces/http/dto"
)

// InvoiceHandler exposes per-invoice lookups and revenue projections
type InvoiceHandler struct {
	BaseHandler
	catalogService *catalog.CatalogService
	reportService  *reporting.ReportService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(catalogService *catalog.CatalogService, reportService *reporting.ReportService) *InvoiceHandler {
	return &InvoiceHandler{
		catalogService: catalogService,
		reportService:  reportService,
	}
}

// GetInvoice handles GET /invoices/:id
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	invoice, err := h.catalogService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// ItemSalePrices handles GET /invoices/:id/item-sale-prices
func (h *InvoiceHandler) ItemSalePrices(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	prices, err := h.reportService.ItemSalePrices(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, prices)
}

// TotalRevenue handles GET /invoices/:id/total-revenue
func (h *InvoiceHandler) TotalRevenue(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	revenue, err := h.reportService.TotalRevenue(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, reporting.RevenueResponse{Revenue: revenue})
}

// Discounts handles GET /invoices/:id/discounts?merchant_id=...
func (h *InvoiceHandler) Discounts(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	merchantID, err := uuid.Parse(c.Query("merchant_id"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, "invalid merchant_id parameter")
		return
	}

	discounts, err := h.reportService.InvoiceItemDiscounts(c.Request.Context(), id, merchantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, reporting.InvoiceDiscountsResponse{Discounts: discounts})
}

// RegisterRoutes registers all invoice routes
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices")
	{
		invoices.GET("/:id", h.GetInvoice)
		invoices.GET("/:id/item-sale-prices", h.ItemSalePrices)
		invoices.GET("/:id/total-revenue", h.TotalRevenue)
		invoices.GET("/:id/discounts", h.Discounts)
	}
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/littleshop/backend/internal/application/catalog"
	"github.com/littleshop/backend/internal/application/reporting"
	"github.com/littleshop/backend/internal/domain/shared"
	"github.com/littleshop/backend/internal/interfaces/http/dto"
)

// MerchantHandler exposes merchant catalog lookups and revenue summaries
type MerchantHandler struct {
	BaseHandler
	catalogService *catalog.CatalogService
	reportService  *reporting.ReportService
}

// NewMerchantHandler creates a new MerchantHandler
func NewMerchantHandler(catalogService *catalog.CatalogService, reportService *reporting.ReportService) *MerchantHandler {
	return &MerchantHandler{
		catalogService: catalogService,
		reportService:  reportService,
	}
}

// GetMerchant handles GET /merchants/:id
func (h *MerchantHandler) GetMerchant(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	merchant, err := h.catalogService.GetMerchant(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, merchant)
}

// ListItems handles GET /merchants/:id/items
func (h *MerchantHandler) ListItems(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "invalid pagination parameters")
		return
	}

	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.OrderBy != "" {
		filter.OrderBy = req.OrderBy
	}
	if req.OrderDir != "" {
		filter.OrderDir = req.OrderDir
	}

	items, err := h.catalogService.ListMerchantItems(c.Request.Context(), id, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, filter.Page, filter.PageSize, len(items))
}

// GetItem handles GET /merchants/:id/items/:item_id
func (h *MerchantHandler) GetItem(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := h.parseIDParam(c, "item_id")
	if !ok {
		return
	}

	item, err := h.catalogService.GetMerchantItem(c.Request.Context(), id, itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// TotalRevenue handles GET /merchants/:id/revenue
func (h *MerchantHandler) TotalRevenue(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	revenue, err := h.reportService.TotalRevenueForMerchant(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, reporting.RevenueResponse{Revenue: revenue})
}

// DiscountedRevenue handles GET /merchants/:id/discounted-revenue
func (h *MerchantHandler) DiscountedRevenue(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	revenue, err := h.reportService.DiscountedRevenueForMerchant(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, reporting.RevenueResponse{Revenue: revenue})
}

// Dashboard handles GET /merchants/:id/dashboard
func (h *MerchantHandler) Dashboard(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	dashboard, err := h.reportService.MerchantDashboard(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dashboard)
}

// RegisterRoutes registers all merchant routes
func (h *MerchantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	merchants := rg.Group("/merchants")
	{
		merchants.GET("/:id", h.GetMerchant)
		merchants.GET("/:id/items", h.ListItems)
		merchants.GET("/:id/items/:item_id", h.GetItem)
		merchants.GET("/:id/revenue", h.TotalRevenue)
		merchants.GET("/:id/discounted-revenue", h.DiscountedRevenue)
		merchants.GET("/:id/dashboard", h.Dashboard)
	}
}

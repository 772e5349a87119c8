package reporting

import (
	"time"

	"github.com/google/uuid"
	domain "github.com/littleshop/backend/internal/domain/reporting"
	"github.com/shopspring/decimal"
)

// UnshippedInvoiceResponse is one row of the unshipped-invoices listing
type UnshippedInvoiceResponse struct {
	InvoiceID  uuid.UUID `json:"invoice_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewUnshippedInvoiceResponse maps the read model to its API shape
func NewUnshippedInvoiceResponse(inv domain.UnshippedInvoice) UnshippedInvoiceResponse {
	return UnshippedInvoiceResponse{
		InvoiceID:  inv.InvoiceID,
		CustomerID: inv.CustomerID,
		Status:     inv.Status.String(),
		CreatedAt:  inv.CreatedAt,
	}
}

// ItemSalePriceResponse is one projected line of an invoice
type ItemSalePriceResponse struct {
	ItemID       uuid.UUID       `json:"item_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	SaleQuantity int64           `json:"sale_quantity"`
}

// NewItemSalePriceResponse maps the read model to its API shape
func NewItemSalePriceResponse(p domain.ItemSalePrice) ItemSalePriceResponse {
	return ItemSalePriceResponse{
		ItemID:       p.ItemID,
		Name:         p.Name,
		Description:  p.Description,
		SalePrice:    p.SalePrice,
		SaleQuantity: p.SaleQuantity,
	}
}

// RevenueResponse carries a single computed amount
type RevenueResponse struct {
	Revenue decimal.Decimal `json:"revenue"`
}

// HighestRevenueDateResponse carries the winning timestamp, null when no
// invoice qualifies
type HighestRevenueDateResponse struct {
	Date *time.Time `json:"date"`
}

// InvoiceDiscountsResponse maps line-item ids to the selected percentage.
// Line items with no qualifying tier are absent.
type InvoiceDiscountsResponse struct {
	Discounts map[uuid.UUID]decimal.Decimal `json:"discounts"`
}

// MerchantDashboardResponse summarizes a merchant's earnings
type MerchantDashboardResponse struct {
	MerchantID        uuid.UUID       `json:"merchant_id"`
	Name              string          `json:"name"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	DiscountedRevenue decimal.Decimal `json:"discounted_revenue"`
}

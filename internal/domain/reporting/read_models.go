package reporting

import (
	"time"

	"github.com/google/uuid"
	"github.com/littleshop/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// ItemSalePrice projects an item together with the price and quantity it
// actually sold for on a specific invoice. SalePrice comes from the line
// item, not from the item's current listed price.
type ItemSalePrice struct {
	ItemID       uuid.UUID       `json:"item_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	SaleQuantity int64           `json:"sale_quantity"`
}

// UnshippedInvoice is an invoice summary for the unshipped-items listing
type UnshippedInvoice struct {
	InvoiceID  uuid.UUID           `json:"invoice_id"`
	CustomerID uuid.UUID           `json:"customer_id"`
	Status     sales.InvoiceStatus `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
}

// DateRevenue is summed realized revenue for one invoice-update timestamp
type DateRevenue struct {
	Date    time.Time       `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

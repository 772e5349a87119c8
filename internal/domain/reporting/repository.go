package reporting

import (
	"context"

	"github.com/google/uuid"
)

// ReportRepository answers the multi-entity report queries that are pushed
// down to the database. Each call observes a single consistent snapshot;
// zero matching rows is an empty result, never an error.
type ReportRepository interface {
	// UnshippedInvoices returns invoices with at least one line item not
	// yet shipped, each exactly once, ordered by invoice creation time
	// ascending (invoice id ascending on ties).
	UnshippedInvoices(ctx context.Context) ([]UnshippedInvoice, error)

	// RevenueByUpdateDate returns, for completed invoices containing the
	// item that have at least one successful transaction, the summed
	// quantity × unit_price grouped by invoice last-update timestamp.
	RevenueByUpdateDate(ctx context.Context, itemID uuid.UUID) ([]DateRevenue, error)

	// ItemSalePrices projects the invoice's line items with item identity
	// and sale-time price/quantity, ordered by line-item creation order.
	ItemSalePrices(ctx context.Context, invoiceID uuid.UUID) ([]ItemSalePrice, error)
}

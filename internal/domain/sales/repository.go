package sales

import (
	"context"

	"github.com/google/uuid"
	"github.com/littleshop/backend/internal/domain/shared"
)

// CustomerRepository provides read access to customers
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
}

// MerchantRepository provides read access to merchants
type MerchantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Merchant, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// ItemRepository provides read access to items
type ItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	FindByMerchant(ctx context.Context, merchantID uuid.UUID, filter shared.Filter) ([]Item, error)
}

// InvoiceRepository provides read access to invoices
type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]Invoice, error)
}

// InvoiceItemRepository provides read access to invoice line items.
// All listings are ordered by line-item creation time ascending so
// projections are stable.
type InvoiceItemRepository interface {
	FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]InvoiceItem, error)
	// FindByInvoiceForMerchant returns the invoice's line items whose item
	// belongs to the given merchant.
	FindByInvoiceForMerchant(ctx context.Context, invoiceID, merchantID uuid.UUID) ([]InvoiceItem, error)
	// FindByMerchant returns every line item whose item belongs to the
	// given merchant, across all invoices.
	FindByMerchant(ctx context.Context, merchantID uuid.UUID) ([]InvoiceItem, error)
}

// BulkDiscountRepository provides read access to a merchant's discount tiers
type BulkDiscountRepository interface {
	FindByMerchant(ctx context.Context, merchantID uuid.UUID) ([]BulkDiscount, error)
}

// TransactionRepository provides read access to payment transactions
type TransactionRepository interface {
	FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]Transaction, error)
}

package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/littleshop/backend/internal/application/catalog"
	"github.com/littleshop/backend/internal/application/reporting"
	domain "github.com/littleshop/backend/internal/domain/reporting"
	"github.com/littleshop/backend/internal/domain/sales"
	"github.com/littleshop/backend/internal/domain/shared"
)

// fixtures shared by the handler tests. Lookups miss with ErrNotFound
// unless the id matches the seeded entity.

type stubMerchantRepo struct {
	merchant *sales.Merchant
}

func (r *stubMerchantRepo) FindByID(ctx context.Context, id uuid.UUID) (*sales.Merchant, error) {
	if r.merchant != nil && r.merchant.ID == id {
		return r.merchant, nil
	}
	return nil, shared.ErrNotFound
}

func (r *stubMerchantRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.merchant != nil && r.merchant.ID == id, nil
}

type stubItemRepo struct {
	items []sales.Item
}

func (r *stubItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*sales.Item, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			return &r.items[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *stubItemRepo) FindByMerchant(ctx context.Context, merchantID uuid.UUID, filter shared.Filter) ([]sales.Item, error) {
	var out []sales.Item
	for i := range r.items {
		if r.items[i].MerchantID == merchantID {
			out = append(out, r.items[i])
		}
	}
	return out, nil
}

type stubInvoiceRepo struct {
	invoice *sales.Invoice
}

func (r *stubInvoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*sales.Invoice, error) {
	if r.invoice != nil && r.invoice.ID == id {
		return r.invoice, nil
	}
	return nil, shared.ErrNotFound
}

func (r *stubInvoiceRepo) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]sales.Invoice, error) {
	if r.invoice != nil && r.invoice.CustomerID == customerID {
		return []sales.Invoice{*r.invoice}, nil
	}
	return nil, nil
}

type stubLineItemRepo struct {
	lineItems []sales.InvoiceItem
	// itemOwner maps item id to merchant id for the merchant-scoped reads
	itemOwner map[uuid.UUID]uuid.UUID
}

func (r *stubLineItemRepo) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]sales.InvoiceItem, error) {
	var out []sales.InvoiceItem
	for i := range r.lineItems {
		if r.lineItems[i].InvoiceID == invoiceID {
			out = append(out, r.lineItems[i])
		}
	}
	return out, nil
}

func (r *stubLineItemRepo) FindByInvoiceForMerchant(ctx context.Context, invoiceID, merchantID uuid.UUID) ([]sales.InvoiceItem, error) {
	var out []sales.InvoiceItem
	for i := range r.lineItems {
		li := r.lineItems[i]
		if li.InvoiceID == invoiceID && r.itemOwner[li.ItemID] == merchantID {
			out = append(out, li)
		}
	}
	return out, nil
}

func (r *stubLineItemRepo) FindByMerchant(ctx context.Context, merchantID uuid.UUID) ([]sales.InvoiceItem, error) {
	var out []sales.InvoiceItem
	for i := range r.lineItems {
		if r.itemOwner[r.lineItems[i].ItemID] == merchantID {
			out = append(out, r.lineItems[i])
		}
	}
	return out, nil
}

type stubDiscountRepo struct {
	tiers []sales.BulkDiscount
}

func (r *stubDiscountRepo) FindByMerchant(ctx context.Context, merchantID uuid.UUID) ([]sales.BulkDiscount, error) {
	var out []sales.BulkDiscount
	for i := range r.tiers {
		if r.tiers[i].MerchantID == merchantID {
			out = append(out, r.tiers[i])
		}
	}
	return out, nil
}

type stubReportRepo struct {
	unshipped  []domain.UnshippedInvoice
	revenues   []domain.DateRevenue
	salePrices []domain.ItemSalePrice
}

func (r *stubReportRepo) UnshippedInvoices(ctx context.Context) ([]domain.UnshippedInvoice, error) {
	return r.unshipped, nil
}

func (r *stubReportRepo) RevenueByUpdateDate(ctx context.Context, itemID uuid.UUID) ([]domain.DateRevenue, error) {
	return r.revenues, nil
}

func (r *stubReportRepo) ItemSalePrices(ctx context.Context, invoiceID uuid.UUID) ([]domain.ItemSalePrice, error) {
	return r.salePrices, nil
}

// testEnv wires stub repositories into real application services
type testEnv struct {
	merchantRepo *stubMerchantRepo
	itemRepo     *stubItemRepo
	invoiceRepo  *stubInvoiceRepo
	lineItemRepo *stubLineItemRepo
	discountRepo *stubDiscountRepo
	reportRepo   *stubReportRepo

	catalogService *catalog.CatalogService
	reportService  *reporting.ReportService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		merchantRepo: &stubMerchantRepo{},
		itemRepo:     &stubItemRepo{},
		invoiceRepo:  &stubInvoiceRepo{},
		lineItemRepo: &stubLineItemRepo{itemOwner: make(map[uuid.UUID]uuid.UUID)},
		discountRepo: &stubDiscountRepo{},
		reportRepo:   &stubReportRepo{},
	}
	env.catalogService = catalog.NewCatalogService(env.merchantRepo, env.itemRepo, env.invoiceRepo, env.lineItemRepo)
	env.reportService = reporting.NewReportService(
		env.merchantRepo,
		env.itemRepo,
		env.invoiceRepo,
		env.lineItemRepo,
		env.discountRepo,
		env.reportRepo,
	)
	return env
}

package reporting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	domain "github.com/littleshop/backend/internal/domain/reporting"
	"github.com/littleshop/backend/internal/domain/sales"
	"github.com/littleshop/backend/internal/domain/shared"
	"github.com/littleshop/backend/internal/infrastructure/telemetry"
)

// ReportService answers the revenue, shipment and discount queries over the
// sales entities. All operations are pure reads; zero matching records is a
// valid empty or zero result, only a missing referenced entity is an error.
type ReportService struct {
	merchantRepo sales.MerchantRepository
	itemRepo     sales.ItemRepository
	invoiceRepo  sales.InvoiceRepository
	lineItemRepo sales.InvoiceItemRepository
	discountRepo sales.BulkDiscountRepository
	reportRepo   domain.ReportRepository
	cache        RevenueCache
}

// NewReportService creates a new ReportService
func NewReportService(
	merchantRepo sales.MerchantRepository,
	itemRepo sales.ItemRepository,
	invoiceRepo sales.InvoiceRepository,
	lineItemRepo sales.InvoiceItemRepository,
	discountRepo sales.BulkDiscountRepository,
	reportRepo domain.ReportRepository,
) *ReportService {
	return &ReportService{
		merchantRepo: merchantRepo,
		itemRepo:     itemRepo,
		invoiceRepo:  invoiceRepo,
		lineItemRepo: lineItemRepo,
		discountRepo: discountRepo,
		reportRepo:   reportRepo,
	}
}

// SetRevenueCache enables caching of merchant revenue computations
func (s *ReportService) SetRevenueCache(cache RevenueCache) {
	s.cache = cache
}

// UnshippedInvoices lists invoices with at least one line item not yet
// shipped, ordered by invoice creation time ascending
func (s *ReportService) UnshippedInvoices(ctx context.Context) ([]UnshippedInvoiceResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "report", "unshipped_invoices")
	defer span.End()

	invoices, err := s.reportRepo.UnshippedInvoices(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	out := make([]UnshippedInvoiceResponse, len(invoices))
	for i, inv := range invoices {
		out[i] = NewUnshippedInvoiceResponse(inv)
	}
	return out, nil
}

// HighestRevenueDate returns the invoice-update timestamp on which the item
// earned the most realized revenue. A nil date means no completed invoice
// with a successful transaction contains the item.
func (s *ReportService) HighestRevenueDate(ctx context.Context, itemID uuid.UUID) (*time.Time, error) {
	ctx, span := telemetry.StartSpan(ctx, "report", "highest_revenue_date",
		attribute.String("item_id", itemID.String()))
	defer span.End()

	if _, err := s.itemRepo.FindByID(ctx, itemID); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	entries, err := s.reportRepo.RevenueByUpdateDate(ctx, itemID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return domain.BestRevenueDate(entries), nil
}

// ItemSalePrices projects the invoice's line items with item identity and
// the sale-time price and quantity recorded on the invoice
func (s *ReportService) ItemSalePrices(ctx context.Context, invoiceID uuid.UUID) ([]ItemSalePriceResponse, error) {
	if _, err := s.invoiceRepo.FindByID(ctx, invoiceID); err != nil {
		return nil, err
	}
	prices, err := s.reportRepo.ItemSalePrices(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	out := make([]ItemSalePriceResponse, len(prices))
	for i, p := range prices {
		out[i] = NewItemSalePriceResponse(p)
	}
	return out, nil
}

// TotalRevenue sums quantity × sale-time unit price over the invoice's
// line items
func (s *ReportService) TotalRevenue(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error) {
	if _, err := s.invoiceRepo.FindByID(ctx, invoiceID); err != nil {
		return decimal.Zero, err
	}
	lineItems, err := s.lineItemRepo.FindByInvoice(ctx, invoiceID)
	if err != nil {
		return decimal.Zero, err
	}
	return domain.TotalRevenue(lineItems), nil
}

// TotalRevenueForMerchant sums revenue over all line items whose item
// belongs to the merchant. A merchant with no sales earns zero, not an
// error; a missing merchant is ErrNotFound.
func (s *ReportService) TotalRevenueForMerchant(ctx context.Context, merchantID uuid.UUID) (decimal.Decimal, error) {
	ctx, span := telemetry.StartSpan(ctx, "report", "total_revenue_for_merchant",
		attribute.String("merchant_id", merchantID.String()))
	defer span.End()

	if err := s.requireMerchant(ctx, merchantID); err != nil {
		telemetry.RecordError(span, err)
		return decimal.Zero, err
	}
	if s.cache != nil {
		if amount, ok := s.cache.Get(ctx, merchantID, RevenueTotal); ok {
			return amount, nil
		}
	}
	lineItems, err := s.lineItemRepo.FindByMerchant(ctx, merchantID)
	if err != nil {
		return decimal.Zero, err
	}
	total := domain.TotalRevenue(lineItems)
	if s.cache != nil {
		s.cache.Set(ctx, merchantID, RevenueTotal, total)
	}
	return total, nil
}

// InvoiceItemDiscounts maps each of the invoice's line items owned by the
// merchant to the highest eligible bulk-discount percentage
func (s *ReportService) InvoiceItemDiscounts(ctx context.Context, invoiceID, merchantID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	if _, err := s.invoiceRepo.FindByID(ctx, invoiceID); err != nil {
		return nil, err
	}
	if err := s.requireMerchant(ctx, merchantID); err != nil {
		return nil, err
	}
	lineItems, err := s.lineItemRepo.FindByInvoiceForMerchant(ctx, invoiceID, merchantID)
	if err != nil {
		return nil, err
	}
	tiers, err := s.discountRepo.FindByMerchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	return domain.LineDiscounts(lineItems, tiers), nil
}

// DiscountedRevenueForMerchant sums merchant revenue net of the best
// eligible bulk discount per line item
func (s *ReportService) DiscountedRevenueForMerchant(ctx context.Context, merchantID uuid.UUID) (decimal.Decimal, error) {
	ctx, span := telemetry.StartSpan(ctx, "report", "discounted_revenue_for_merchant",
		attribute.String("merchant_id", merchantID.String()))
	defer span.End()

	if err := s.requireMerchant(ctx, merchantID); err != nil {
		telemetry.RecordError(span, err)
		return decimal.Zero, err
	}
	if s.cache != nil {
		if amount, ok := s.cache.Get(ctx, merchantID, RevenueDiscounted); ok {
			return amount, nil
		}
	}
	lineItems, err := s.lineItemRepo.FindByMerchant(ctx, merchantID)
	if err != nil {
		return decimal.Zero, err
	}
	tiers, err := s.discountRepo.FindByMerchant(ctx, merchantID)
	if err != nil {
		return decimal.Zero, err
	}
	net := domain.DiscountedRevenue(lineItems, tiers)
	if s.cache != nil {
		s.cache.Set(ctx, merchantID, RevenueDiscounted, net)
	}
	return net, nil
}

// MerchantDashboard combines the merchant's identity with its gross and
// net revenue
func (s *ReportService) MerchantDashboard(ctx context.Context, merchantID uuid.UUID) (*MerchantDashboardResponse, error) {
	merchant, err := s.merchantRepo.FindByID(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	total, err := s.TotalRevenueForMerchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	net, err := s.DiscountedRevenueForMerchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	return &MerchantDashboardResponse{
		MerchantID:        merchant.ID,
		Name:              merchant.Name,
		TotalRevenue:      total,
		DiscountedRevenue: net,
	}, nil
}

func (s *ReportService) requireMerchant(ctx context.Context, merchantID uuid.UUID) error {
	exists, err := s.merchantRepo.Exists(ctx, merchantID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}
	return nil
}

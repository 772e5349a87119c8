package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/littleshop/backend/internal/domain/sales"
	"github.com/littleshop/backend/internal/domain/shared"
)

// CatalogService exposes merchant, item and invoice reads for the
// storefront pages. Write workflows live elsewhere; this service only
// reads finalized state.
type CatalogService struct {
	merchantRepo sales.MerchantRepository
	itemRepo     sales.ItemRepository
	invoiceRepo  sales.InvoiceRepository
	lineItemRepo sales.InvoiceItemRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	merchantRepo sales.MerchantRepository,
	itemRepo sales.ItemRepository,
	invoiceRepo sales.InvoiceRepository,
	lineItemRepo sales.InvoiceItemRepository,
) *CatalogService {
	return &CatalogService{
		merchantRepo: merchantRepo,
		itemRepo:     itemRepo,
		invoiceRepo:  invoiceRepo,
		lineItemRepo: lineItemRepo,
	}
}

// GetMerchant returns a merchant by id
func (s *CatalogService) GetMerchant(ctx context.Context, id uuid.UUID) (*MerchantResponse, error) {
	merchant, err := s.merchantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := NewMerchantResponse(merchant)
	return &resp, nil
}

// ListMerchantItems returns the merchant's items
func (s *CatalogService) ListMerchantItems(ctx context.Context, merchantID uuid.UUID, filter shared.Filter) ([]ItemResponse, error) {
	if _, err := s.merchantRepo.FindByID(ctx, merchantID); err != nil {
		return nil, err
	}
	items, err := s.itemRepo.FindByMerchant(ctx, merchantID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = NewItemResponse(&items[i])
	}
	return out, nil
}

// GetMerchantItem returns one of the merchant's items. Asking for an item
// through the wrong merchant is a not-found, not a leak of another
// merchant's catalog.
func (s *CatalogService) GetMerchantItem(ctx context.Context, merchantID, itemID uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.OwnedBy(merchantID) {
		return nil, shared.ErrNotFound
	}
	resp := NewItemResponse(item)
	return &resp, nil
}

// GetInvoice returns an invoice with its line items
func (s *CatalogService) GetInvoice(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	lineItems, err := s.lineItemRepo.FindByInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := NewInvoiceResponse(invoice, lineItems)
	return &resp, nil
}

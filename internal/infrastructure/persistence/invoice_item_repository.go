package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/littleshop/backend/internal/domain/sales"
)

// GormInvoiceItemRepository implements sales.InvoiceItemRepository using GORM.
// All listings come back ordered by line-item creation time so downstream
// aggregation sees a stable sequence.
type GormInvoiceItemRepository struct {
	db *gorm.DB
}

func NewGormInvoiceItemRepository(db *gorm.DB) *GormInvoiceItemRepository {
	return &GormInvoiceItemRepository{db: db}
}

func (r *GormInvoiceItemRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]sales.InvoiceItem, error) {
	var lineItems []sales.InvoiceItem
	if err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("created_at ASC, id ASC").
		Find(&lineItems).Error; err != nil {
		return nil, err
	}
	return lineItems, nil
}

func (r *GormInvoiceItemRepository) FindByInvoiceForMerchant(ctx context.Context, invoiceID, merchantID uuid.UUID) ([]sales.InvoiceItem, error) {
	var lineItems []sales.InvoiceItem
	if err := r.db.WithContext(ctx).
		Joins("JOIN items ON items.id = invoice_items.item_id").
		Where("invoice_items.invoice_id = ? AND items.merchant_id = ?", invoiceID, merchantID).
		Order("invoice_items.created_at ASC, invoice_items.id ASC").
		Find(&lineItems).Error; err != nil {
		return nil, err
	}
	return lineItems, nil
}

func (r *GormInvoiceItemRepository) FindByMerchant(ctx context.Context, merchantID uuid.UUID) ([]sales.InvoiceItem, error) {
	var lineItems []sales.InvoiceItem
	if err := r.db.WithContext(ctx).
		Joins("JOIN items ON items.id = invoice_items.item_id").
		Where("items.merchant_id = ?", merchantID).
		Order("invoice_items.created_at ASC, invoice_items.id ASC").
		Find(&lineItems).Error; err != nil {
		return nil, err
	}
	return lineItems, nil
}

var _ sales.InvoiceItemRepository = (*GormInvoiceItemRepository)(nil)

package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/littleshop/backend/internal/domain/reporting"
	"github.com/littleshop/backend/internal/domain/sales"
)

// GormReportRepository implements reporting.ReportRepository using GORM.
// These queries join across invoices, line items, items, and transactions
// in the database rather than assembling the report in memory.
type GormReportRepository struct {
	db *gorm.DB
}

func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// UnshippedInvoices lists invoices that still have at least one line item
// whose shipment status is not shipped. Each invoice appears once,
// oldest first.
func (r *GormReportRepository) UnshippedInvoices(ctx context.Context) ([]reporting.UnshippedInvoice, error) {
	type row struct {
		InvoiceID  uuid.UUID
		CustomerID uuid.UUID
		Status     int
		CreatedAt  time.Time
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Table("invoices i").
		Select("i.id AS invoice_id, i.customer_id, i.status, i.created_at").
		Joins("JOIN invoice_items ii ON ii.invoice_id = i.id").
		Where("ii.status <> ?", int(sales.ShipmentShipped)).
		Group("i.id, i.customer_id, i.status, i.created_at").
		Order("i.created_at ASC, i.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	invoices := make([]reporting.UnshippedInvoice, 0, len(rows))
	for _, row := range rows {
		status, err := sales.ParseInvoiceStatus(row.Status)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, reporting.UnshippedInvoice{
			InvoiceID:  row.InvoiceID,
			CustomerID: row.CustomerID,
			Status:     status,
			CreatedAt:  row.CreatedAt,
		})
	}
	return invoices, nil
}

// RevenueByUpdateDate sums quantity * unit_price for the item across
// completed invoices that have a successful transaction, grouped by the
// invoice's last update timestamp. Rows come back best-selling first so
// the first row is the top candidate.
func (r *GormReportRepository) RevenueByUpdateDate(ctx context.Context, itemID uuid.UUID) ([]reporting.DateRevenue, error) {
	type row struct {
		Date    time.Time
		Revenue decimal.Decimal
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Table("invoice_items ii").
		Select("i.updated_at AS date, COALESCE(SUM(ii.quantity * ii.unit_price), 0) AS revenue").
		Joins("JOIN invoices i ON i.id = ii.invoice_id").
		Where("ii.item_id = ?", itemID).
		Where("i.status = ?", int(sales.InvoiceCompleted)).
		Where("EXISTS (SELECT 1 FROM transactions t WHERE t.invoice_id = i.id AND t.result = ?)",
			int(sales.TransactionSuccess)).
		Group("i.updated_at").
		Order("revenue DESC, date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]reporting.DateRevenue, len(rows))
	for i, row := range rows {
		entries[i] = reporting.DateRevenue{Date: row.Date, Revenue: row.Revenue}
	}
	return entries, nil
}

// ItemSalePrices projects the invoice's line items with the item's identity
// and the price the line actually sold at.
func (r *GormReportRepository) ItemSalePrices(ctx context.Context, invoiceID uuid.UUID) ([]reporting.ItemSalePrice, error) {
	var prices []reporting.ItemSalePrice
	err := r.db.WithContext(ctx).
		Table("invoice_items ii").
		Select("items.id AS item_id, items.name, items.description, ii.unit_price AS sale_price, ii.quantity AS sale_quantity").
		Joins("JOIN items ON items.id = ii.item_id").
		Where("ii.invoice_id = ?", invoiceID).
		Order("ii.created_at ASC, ii.id ASC").
		Scan(&prices).Error
	if err != nil {
		return nil, err
	}
	return prices, nil
}

var _ reporting.ReportRepository = (*GormReportRepository)(nil)

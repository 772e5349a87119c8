package sales

import (
	"github.com/google/uuid"
	"github.com/littleshop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ShipmentStatus is the per-line-item shipment state, stored as an ordinal
type ShipmentStatus int

const (
	ShipmentPending ShipmentStatus = iota
	ShipmentPackaged
	ShipmentShipped
)

// ParseShipmentStatus decodes a stored ordinal into a ShipmentStatus
func ParseShipmentStatus(code int) (ShipmentStatus, error) {
	switch ShipmentStatus(code) {
	case ShipmentPending, ShipmentPackaged, ShipmentShipped:
		return ShipmentStatus(code), nil
	default:
		return 0, shared.ErrInvalidState
	}
}

// Valid reports whether the status is a defined ordinal
func (s ShipmentStatus) Valid() bool {
	_, err := ParseShipmentStatus(int(s))
	return err == nil
}

// Shipped reports whether the line item has left the warehouse.
// Pending and packaged both count as not yet shipped.
func (s ShipmentStatus) Shipped() bool {
	return s == ShipmentShipped
}

// String returns the status name
func (s ShipmentStatus) String() string {
	switch s {
	case ShipmentPending:
		return "pending"
	case ShipmentPackaged:
		return "packaged"
	case ShipmentShipped:
		return "shipped"
	default:
		return "unknown"
	}
}

// InvoiceItem is one product line on an invoice. UnitPrice is the price the
// item actually sold for, captured at sale time; it is immutable and
// independent of the Item's current listed price.
type InvoiceItem struct {
	shared.BaseEntity
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int64           `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Status    ShipmentStatus  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// NewInvoiceItem creates a new line item with its sale-time price
func NewInvoiceItem(invoiceID, itemID uuid.UUID, quantity int64, unitPrice decimal.Decimal, status ShipmentStatus) (*InvoiceItem, error) {
	if invoiceID == uuid.Nil || itemID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Line item requires an invoice and an item")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Line item quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Line item unit price cannot be negative")
	}
	if !status.Valid() {
		return nil, shared.ErrInvalidState
	}
	return &InvoiceItem{
		BaseEntity: shared.NewBaseEntity(),
		InvoiceID:  invoiceID,
		ItemID:     itemID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		Status:     status,
	}, nil
}

// Revenue returns quantity × sale-time unit price for this line
func (li *InvoiceItem) Revenue() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(li.Quantity))
}

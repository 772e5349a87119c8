package sales

import (
	"github.com/google/uuid"
	"github.com/littleshop/backend/internal/domain/shared"
)

// InvoiceStatus is the invoice lifecycle status, stored as an ordinal
type InvoiceStatus int

const (
	InvoiceInProgress InvoiceStatus = iota
	InvoiceCompleted
	InvoiceCancelled
)

// ParseInvoiceStatus decodes a stored ordinal into an InvoiceStatus.
// Out-of-range values are an invalid-state error, never a silent zero.
func ParseInvoiceStatus(code int) (InvoiceStatus, error) {
	switch InvoiceStatus(code) {
	case InvoiceInProgress, InvoiceCompleted, InvoiceCancelled:
		return InvoiceStatus(code), nil
	default:
		return 0, shared.ErrInvalidState
	}
}

// Valid reports whether the status is a defined ordinal
func (s InvoiceStatus) Valid() bool {
	_, err := ParseInvoiceStatus(int(s))
	return err == nil
}

// String returns the status name
func (s InvoiceStatus) String() string {
	switch s {
	case InvoiceInProgress:
		return "in_progress"
	case InvoiceCompleted:
		return "completed"
	case InvoiceCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Invoice represents a single sale made to a customer.
// Invoices and their line items are created together at checkout; this
// context only reads finalized state.
type Invoice struct {
	shared.BaseEntity
	CustomerID uuid.UUID     `gorm:"type:uuid;not null;index"`
	Status     InvoiceStatus `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// NewInvoice creates a new invoice for a customer
func NewInvoice(customerID uuid.UUID, status InvoiceStatus) (*Invoice, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Invoice requires a customer")
	}
	if !status.Valid() {
		return nil, shared.ErrInvalidState
	}
	return &Invoice{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		Status:     status,
	}, nil
}

// Completed reports whether the invoice reached the completed state
func (i *Invoice) Completed() bool {
	return i.Status == InvoiceCompleted
}

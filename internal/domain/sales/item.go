package sales

import (
	"strings"

	"github.com/google/uuid"
	"github.com/littleshop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Item represents a product listed by a merchant.
// UnitPrice is the merchant's current listed price; the price a line item
// actually sold for is captured on the InvoiceItem and never derived from here.
type Item struct {
	shared.BaseEntity
	MerchantID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Enabled     bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "items"
}

// NewItem creates a new item for a merchant
func NewItem(merchantID uuid.UUID, name, description string, unitPrice decimal.Decimal) (*Item, error) {
	if merchantID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Item requires a merchant")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Item name is required")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Item unit price cannot be negative")
	}
	return &Item{
		BaseEntity:  shared.NewBaseEntity(),
		MerchantID:  merchantID,
		Name:        name,
		Description: description,
		UnitPrice:   unitPrice,
		Enabled:     true,
	}, nil
}

// OwnedBy reports whether the item belongs to the given merchant
func (i *Item) OwnedBy(merchantID uuid.UUID) bool {
	return i.MerchantID == merchantID
}

package sales

import (
	"strings"

	"github.com/littleshop/backend/internal/domain/shared"
)

// Merchant represents a seller who owns items and bulk discounts
type Merchant struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (Merchant) TableName() string {
	return "merchants"
}

// NewMerchant creates a new merchant with required fields
func NewMerchant(name string) (*Merchant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Merchant name is required")
	}
	return &Merchant{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

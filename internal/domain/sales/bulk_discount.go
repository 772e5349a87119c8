package sales

import (
	"github.com/google/uuid"
	"github.com/littleshop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BulkDiscount is a merchant-owned rule granting a percentage off once a
// line item's quantity meets the threshold.
type BulkDiscount struct {
	shared.BaseEntity
	MerchantID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Percentage        decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	QuantityThreshold int64           `gorm:"not null"`
}

// TableName returns the table name for GORM
func (BulkDiscount) TableName() string {
	return "bulk_discounts"
}

// NewBulkDiscount creates a new bulk discount tier for a merchant
func NewBulkDiscount(merchantID uuid.UUID, percentage decimal.Decimal, quantityThreshold int64) (*BulkDiscount, error) {
	if merchantID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Bulk discount requires a merchant")
	}
	if percentage.IsNegative() || percentage.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Percentage must be between 0 and 100")
	}
	if quantityThreshold <= 0 {
		return nil, shared.NewDomainError("VALIDATION_FAILED", "Quantity threshold must be positive")
	}
	return &BulkDiscount{
		BaseEntity:        shared.NewBaseEntity(),
		MerchantID:        merchantID,
		Percentage:        percentage,
		QuantityThreshold: quantityThreshold,
	}, nil
}

// AppliesTo reports whether the tier is eligible for the given quantity.
// The threshold comparison is inclusive: quantity == threshold qualifies.
func (d *BulkDiscount) AppliesTo(quantity int64) bool {
	return quantity >= d.QuantityThreshold
}

// BestDiscount selects the highest percentage among tiers eligible for the
// given quantity. The second return value is false when no tier qualifies;
// "no discount" is distinct from a 0% discount.
func BestDiscount(tiers []BulkDiscount, quantity int64) (decimal.Decimal, bool) {
	var best decimal.Decimal
	found := false
	for i := range tiers {
		if !tiers[i].AppliesTo(quantity) {
			continue
		}
		if !found || tiers[i].Percentage.GreaterThan(best) {
			best = tiers[i].Percentage
			found = true
		}
	}
	return best, found
}

package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/littleshop/backend/internal/domain/sales"
)

// GormBulkDiscountRepository implements sales.BulkDiscountRepository using GORM
type GormBulkDiscountRepository struct {
	db *gorm.DB
}

func NewGormBulkDiscountRepository(db *gorm.DB) *GormBulkDiscountRepository {
	return &GormBulkDiscountRepository{db: db}
}

func (r *GormBulkDiscountRepository) FindByMerchant(ctx context.Context, merchantID uuid.UUID) ([]sales.BulkDiscount, error) {
	var tiers []sales.BulkDiscount
	if err := r.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("quantity_threshold ASC").
		Find(&tiers).Error; err != nil {
		return nil, err
	}
	return tiers, nil
}

var _ sales.BulkDiscountRepository = (*GormBulkDiscountRepository)(nil)

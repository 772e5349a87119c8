package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/littleshop/backend/internal/domain/sales"
)

// GormTransactionRepository implements sales.TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

func (r *GormTransactionRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]sales.Transaction, error) {
	var transactions []sales.Transaction
	if err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

var _ sales.TransactionRepository = (*GormTransactionRepository)(nil)

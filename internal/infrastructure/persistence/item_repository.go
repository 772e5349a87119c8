package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/littleshop/backend/internal/domain/sales"
	"github.com/littleshop/backend/internal/domain/shared"
)

// GormItemRepository implements sales.ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

func (r *GormItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Item, error) {
	var item sales.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *GormItemRepository) FindByMerchant(ctx context.Context, merchantID uuid.UUID, filter shared.Filter) ([]sales.Item, error) {
	var items []sales.Item
	query := applyFilter(
		r.db.WithContext(ctx).Model(&sales.Item{}).Where("merchant_id = ?", merchantID),
		filter,
	)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// applyFilter adds ordering and pagination shared by the listing queries
func applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	orderBy := ValidateSortField(filter.OrderBy, ItemSortFields, "created_at")
	dir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(orderBy + " " + dir)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	return query
}

var _ sales.ItemRepository = (*GormItemRepository)(nil)

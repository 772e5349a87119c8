package reporting

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RevenueKind distinguishes cached merchant revenue figures
type RevenueKind string

const (
	RevenueTotal      RevenueKind = "total"
	RevenueDiscounted RevenueKind = "discounted"
)

// RevenueCache caches computed merchant revenue. Misses and backend
// failures both surface as ok=false; the service recomputes either way.
type RevenueCache interface {
	Get(ctx context.Context, merchantID uuid.UUID, kind RevenueKind) (decimal.Decimal, bool)
	Set(ctx context.Context, merchantID uuid.UUID, kind RevenueKind, amount decimal.Decimal)
	Invalidate(ctx context.Context, merchantID uuid.UUID)
}

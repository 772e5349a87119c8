package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/littleshop/backend/internal/application/reporting"
)

// InMemoryRevenueCache is a process-local reporting.RevenueCache with TTL
// expiry. State is not shared across instances, so it fits single-node
// deployments and tests.
type InMemoryRevenueCache struct {
	mu      sync.RWMutex
	entries map[string]inMemoryEntry
	ttl     time.Duration
	now     func() time.Time
}

type inMemoryEntry struct {
	amount    decimal.Decimal
	expiresAt time.Time
}

func NewInMemoryRevenueCache(ttl time.Duration) *InMemoryRevenueCache {
	return &InMemoryRevenueCache{
		entries: make(map[string]inMemoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *InMemoryRevenueCache) Get(ctx context.Context, merchantID uuid.UUID, kind reporting.RevenueKind) (decimal.Decimal, bool) {
	c.mu.RLock()
	entry, ok := c.entries[revenueKey(merchantID, kind)]
	c.mu.RUnlock()

	if !ok || c.now().After(entry.expiresAt) {
		return decimal.Zero, false
	}
	return entry.amount, true
}

func (c *InMemoryRevenueCache) Set(ctx context.Context, merchantID uuid.UUID, kind reporting.RevenueKind, amount decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[revenueKey(merchantID, kind)] = inMemoryEntry{
		amount:    amount,
		expiresAt: c.now().Add(c.ttl),
	}
}

func (c *InMemoryRevenueCache) Invalidate(ctx context.Context, merchantID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, revenueKey(merchantID, reporting.RevenueTotal))
	delete(c.entries, revenueKey(merchantID, reporting.RevenueDiscounted))
}

func revenueKey(merchantID uuid.UUID, kind reporting.RevenueKind) string {
	return "revenue:" + merchantID.String() + ":" + string(kind)
}

var _ reporting.RevenueCache = (*InMemoryRevenueCache)(nil)

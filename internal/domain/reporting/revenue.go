package reporting

import (
	"time"

	"github.com/google/uuid"
	"github.com/littleshop/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TotalRevenue sums quantity × sale-time unit price over the given line
// items. An empty collection yields exactly zero.
func TotalRevenue(lineItems []sales.InvoiceItem) decimal.Decimal {
	total := decimal.Zero
	for i := range lineItems {
		total = total.Add(lineItems[i].Revenue())
	}
	return total
}

// LineDiscounts maps each line item to the highest eligible bulk-discount
// percentage among the given tiers. Line items with no qualifying tier are
// absent from the result; absence and a 0% discount are not the same thing.
func LineDiscounts(lineItems []sales.InvoiceItem, tiers []sales.BulkDiscount) map[uuid.UUID]decimal.Decimal {
	discounts := make(map[uuid.UUID]decimal.Decimal)
	for i := range lineItems {
		if pct, ok := sales.BestDiscount(tiers, lineItems[i].Quantity); ok {
			discounts[lineItems[i].ID] = pct
		}
	}
	return discounts
}

// DiscountedRevenue sums line revenue net of the best eligible bulk
// discount per line: quantity × unit_price × (1 − pct/100) when a tier
// applies, full price otherwise. Discounts do not stack.
func DiscountedRevenue(lineItems []sales.InvoiceItem, tiers []sales.BulkDiscount) decimal.Decimal {
	total := decimal.Zero
	for i := range lineItems {
		line := lineItems[i].Revenue()
		if pct, ok := sales.BestDiscount(tiers, lineItems[i].Quantity); ok {
			line = line.Mul(decimal.NewFromInt(1).Sub(pct.Div(hundred)))
		}
		total = total.Add(line)
	}
	return total
}

// BestRevenueDate selects the timestamp with the highest summed revenue.
// Revenue ties go to the most recent timestamp. Returns nil for an empty
// input: no qualifying invoice is a valid empty result, not an error.
func BestRevenueDate(entries []DateRevenue) *time.Time {
	var best *DateRevenue
	for i := range entries {
		e := &entries[i]
		if best == nil ||
			e.Revenue.GreaterThan(best.Revenue) ||
			(e.Revenue.Equal(best.Revenue) && e.Date.After(best.Date)) {
			best = e
		}
	}
	if best == nil {
		return nil
	}
	d := best.Date
	return &d
}

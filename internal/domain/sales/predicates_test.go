package sales

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineItem(t *testing.T, itemID uuid.UUID, qty int64, status ShipmentStatus) InvoiceItem {
	t.Helper()
	li, err := NewInvoiceItem(uuid.New(), itemID, qty, decimal.NewFromInt(550), status)
	require.NoError(t, err)
	return *li
}

func TestLineItemNotShipped(t *testing.T) {
	itemID := uuid.New()

	assert.True(t, LineItemNotShipped(lineItem(t, itemID, 1, ShipmentPending)))
	assert.True(t, LineItemNotShipped(lineItem(t, itemID, 1, ShipmentPackaged)))
	assert.False(t, LineItemNotShipped(lineItem(t, itemID, 1, ShipmentShipped)))
}

func TestFilterAndAny(t *testing.T) {
	itemA := uuid.New()
	itemB := uuid.New()
	items := []InvoiceItem{
		lineItem(t, itemA, 1, ShipmentShipped),
		lineItem(t, itemA, 2, ShipmentPending),
		lineItem(t, itemB, 3, ShipmentShipped),
	}

	t.Run("Filter keeps only matching elements", func(t *testing.T) {
		unshipped := Filter(items, LineItemNotShipped)
		require.Len(t, unshipped, 1)
		assert.Equal(t, int64(2), unshipped[0].Quantity)
	})

	t.Run("predicates compose with Filter", func(t *testing.T) {
		forA := Filter(items, LineItemForItem(itemA))
		assert.Len(t, forA, 2)
	})

	t.Run("Any short-circuits on first match", func(t *testing.T) {
		assert.True(t, Any(items, LineItemNotShipped))
		assert.False(t, Any(Filter(items, LineItemForItem(itemB)), LineItemNotShipped))
	})
}

func TestInvoicePredicates(t *testing.T) {
	completed, err := NewInvoice(uuid.New(), InvoiceCompleted)
	require.NoError(t, err)
	cancelled, err := NewInvoice(uuid.New(), InvoiceCancelled)
	require.NoError(t, err)

	assert.True(t, InvoiceIsCompleted(*completed))
	assert.False(t, InvoiceIsCompleted(*cancelled))
}

func TestTransactionSucceeded(t *testing.T) {
	ok, err := NewTransaction(uuid.New(), TransactionSuccess, "534", "04/27")
	require.NoError(t, err)
	failed, err := NewTransaction(uuid.New(), TransactionFailed, "534", "04/27")
	require.NoError(t, err)

	assert.True(t, TransactionSucceeded(*ok))
	assert.False(t, TransactionSucceeded(*failed))
}

func TestItemOwnedBy(t *testing.T) {
	merchantID := uuid.New()
	mine, err := NewItem(merchantID, "Pogs", "Stack of pogs.", decimal.NewFromInt(500))
	require.NoError(t, err)
	theirs, err := NewItem(uuid.New(), "Orchid", "Purple, 3 inches", decimal.NewFromInt(2700))
	require.NoError(t, err)

	assert.True(t, ItemOwnedBy(merchantID)(*mine))
	assert.False(t, ItemOwnedBy(merchantID)(*theirs))
}

package sales

import "github.com/google/uuid"

// Predicate is a composable filter over a domain value. The report queries
// are built from these so each filtering rule can be tested on its own.
type Predicate[T any] func(T) bool

// Filter returns the elements of in for which keep is true
func Filter[T any](in []T, keep Predicate[T]) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Any reports whether at least one element matches
func Any[T any](in []T, match Predicate[T]) bool {
	for _, v := range in {
		if match(v) {
			return true
		}
	}
	return false
}

// LineItemNotShipped matches line items still pending or packaged
func LineItemNotShipped(li InvoiceItem) bool {
	return !li.Status.Shipped()
}

// LineItemForItem matches line items referencing the given item
func LineItemForItem(itemID uuid.UUID) Predicate[InvoiceItem] {
	return func(li InvoiceItem) bool {
		return li.ItemID == itemID
	}
}

// ItemOwnedBy matches items belonging to the given merchant
func ItemOwnedBy(merchantID uuid.UUID) Predicate[Item] {
	return func(i Item) bool {
		return i.MerchantID == merchantID
	}
}

// InvoiceIsCompleted matches invoices that reached the completed state
func InvoiceIsCompleted(inv Invoice) bool {
	return inv.Status == InvoiceCompleted
}

// TransactionSucceeded matches transactions with a successful payment result
func TransactionSucceeded(t Transaction) bool {
	return t.Result == TransactionSuccess
}

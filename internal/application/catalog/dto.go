package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/littleshop/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// MerchantResponse is the API shape of a merchant
type MerchantResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// NewMerchantResponse maps a merchant to its API shape
func NewMerchantResponse(m *sales.Merchant) MerchantResponse {
	return MerchantResponse{ID: m.ID, Name: m.Name}
}

// ItemResponse is the API shape of an item
type ItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	MerchantID  uuid.UUID       `json:"merchant_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Enabled     bool            `json:"enabled"`
}

// NewItemResponse maps an item to its API shape
func NewItemResponse(i *sales.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		MerchantID:  i.MerchantID,
		Name:        i.Name,
		Description: i.Description,
		UnitPrice:   i.UnitPrice,
		Enabled:     i.Enabled,
	}
}

// InvoiceLineResponse is one line item on an invoice
type InvoiceLineResponse struct {
	ID        uuid.UUID       `json:"id"`
	ItemID    uuid.UUID       `json:"item_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Status    string          `json:"status"`
}

// InvoiceResponse is the API shape of an invoice with its line items
type InvoiceResponse struct {
	ID         uuid.UUID             `json:"id"`
	CustomerID uuid.UUID             `json:"customer_id"`
	Status     string                `json:"status"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
	LineItems  []InvoiceLineResponse `json:"line_items"`
}

// NewInvoiceResponse maps an invoice and its line items to the API shape
func NewInvoiceResponse(inv *sales.Invoice, lineItems []sales.InvoiceItem) InvoiceResponse {
	lines := make([]InvoiceLineResponse, len(lineItems))
	for i := range lineItems {
		lines[i] = InvoiceLineResponse{
			ID:        lineItems[i].ID,
			ItemID:    lineItems[i].ItemID,
			Quantity:  lineItems[i].Quantity,
			UnitPrice: lineItems[i].UnitPrice,
			Status:    lineItems[i].Status.String(),
		}
	}
	return InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Status:     inv.Status.String(),
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
		LineItems:  lines,
	}
}

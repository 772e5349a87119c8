package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/littleshop/backend/internal/domain/sales"
	"github.com/littleshop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMerchantRepository struct {
	mock.Mock
}

func (m *MockMerchantRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Merchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Item), args.Error(1)
}

func (m *MockItemRepository) FindByMerchant(ctx context.Context, merchantID uuid.UUID, filter shared.Filter) ([]sales.Item, error) {
	args := m.Called(ctx, merchantID, filter)
	return args.Get(0).([]sales.Item), args.Error(1)
}

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]sales.Invoice, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]sales.Invoice), args.Error(1)
}

type MockInvoiceItemRepository struct {
	mock.Mock
}

func (m *MockInvoiceItemRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]sales.InvoiceItem, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).([]sales.InvoiceItem), args.Error(1)
}

func (m *MockInvoiceItemRepository) FindByInvoiceForMerchant(ctx context.Context, invoiceID, merchantID uuid.UUID) ([]sales.InvoiceItem, error) {
	args := m.Called(ctx, invoiceID, merchantID)
	return args.Get(0).([]sales.InvoiceItem), args.Error(1)
}

func (m *MockInvoiceItemRepository) FindByMerchant(ctx context.Context, merchantID uuid.UUID) ([]sales.InvoiceItem, error) {
	args := m.Called(ctx, merchantID)
	return args.Get(0).([]sales.InvoiceItem), args.Error(1)
}

func newCatalogService() (*CatalogService, *MockMerchantRepository, *MockItemRepository, *MockInvoiceRepository, *MockInvoiceItemRepository) {
	merchants := new(MockMerchantRepository)
	items := new(MockItemRepository)
	invoices := new(MockInvoiceRepository)
	lineItems := new(MockInvoiceItemRepository)
	return NewCatalogService(merchants, items, invoices, lineItems), merchants, items, invoices, lineItems
}

func TestCatalogService_GetMerchant(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the merchant", func(t *testing.T) {
		svc, merchants, _, _, _ := newCatalogService()
		merchant, err := sales.NewMerchant("Little Shop of Horrors")
		require.NoError(t, err)
		merchants.On("FindByID", ctx, merchant.ID).Return(merchant, nil)

		got, err := svc.GetMerchant(ctx, merchant.ID)

		require.NoError(t, err)
		assert.Equal(t, "Little Shop of Horrors", got.Name)
	})

	t.Run("missing merchant is not found", func(t *testing.T) {
		svc, merchants, _, _, _ := newCatalogService()
		id := uuid.New()
		merchants.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := svc.GetMerchant(ctx, id)

		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestCatalogService_GetMerchantItem(t *testing.T) {
	ctx := context.Background()
	merchantID := uuid.New()
	item, err := sales.NewItem(merchantID, "Audrey II", "Large, man-eating plant", decimal.NewFromInt(100000000))
	require.NoError(t, err)

	t.Run("returns the merchant's item", func(t *testing.T) {
		svc, _, items, _, _ := newCatalogService()
		items.On("FindByID", ctx, item.ID).Return(item, nil)

		got, err := svc.GetMerchantItem(ctx, merchantID, item.ID)

		require.NoError(t, err)
		assert.Equal(t, "Audrey II", got.Name)
	})

	t.Run("another merchant's item is not found", func(t *testing.T) {
		svc, _, items, _, _ := newCatalogService()
		items.On("FindByID", ctx, item.ID).Return(item, nil)

		_, err := svc.GetMerchantItem(ctx, uuid.New(), item.ID)

		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestCatalogService_GetInvoice(t *testing.T) {
	ctx := context.Background()
	svc, _, _, invoices, lineItems := newCatalogService()

	invoice, err := sales.NewInvoice(uuid.New(), sales.InvoiceInProgress)
	require.NoError(t, err)
	li, err := sales.NewInvoiceItem(invoice.ID, uuid.New(), 15, decimal.NewFromInt(550), sales.ShipmentPending)
	require.NoError(t, err)

	invoices.On("FindByID", ctx, invoice.ID).Return(invoice, nil)
	lineItems.On("FindByInvoice", ctx, invoice.ID).Return([]sales.InvoiceItem{*li}, nil)

	got, err := svc.GetInvoice(ctx, invoice.ID)

	require.NoError(t, err)
	assert.Equal(t, "in_progress", got.Status)
	require.Len(t, got.LineItems, 1)
	assert.Equal(t, int64(15), got.LineItems[0].Quantity)
	assert.Equal(t, "pending", got.LineItems[0].Status)
}

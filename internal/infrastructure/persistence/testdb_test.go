package persistence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/littleshop/backend/internal/domain/sales"
)

// newTestDB opens an in-memory sqlite database with the full schema.
// The connection pool is pinned to one connection so every query sees
// the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&sales.Customer{},
		&sales.Merchant{},
		&sales.Item{},
		&sales.Invoice{},
		&sales.InvoiceItem{},
		&sales.BulkDiscount{},
		&sales.Transaction{},
	))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB) *sales.Customer {
	t.Helper()
	customer, err := sales.NewCustomer("Joey", "Ondricka")
	require.NoError(t, err)
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func seedMerchant(t *testing.T, db *gorm.DB, name string) *sales.Merchant {
	t.Helper()
	merchant, err := sales.NewMerchant(name)
	require.NoError(t, err)
	require.NoError(t, db.Create(merchant).Error)
	return merchant
}

func seedItem(t *testing.T, db *gorm.DB, merchantID uuid.UUID, name string, unitPrice int64) *sales.Item {
	t.Helper()
	item, err := sales.NewItem(merchantID, name, "seeded", decimal.NewFromInt(unitPrice))
	require.NoError(t, err)
	require.NoError(t, db.Create(item).Error)
	return item
}

func seedInvoice(t *testing.T, db *gorm.DB, customerID uuid.UUID, status sales.InvoiceStatus, createdAt, updatedAt time.Time) *sales.Invoice {
	t.Helper()
	invoice, err := sales.NewInvoice(customerID, status)
	require.NoError(t, err)
	invoice.CreatedAt = createdAt
	invoice.UpdatedAt = updatedAt
	require.NoError(t, db.Create(invoice).Error)
	return invoice
}

func seedLineItem(t *testing.T, db *gorm.DB, invoiceID, itemID uuid.UUID, quantity, unitPrice int64, status sales.ShipmentStatus, createdAt time.Time) *sales.InvoiceItem {
	t.Helper()
	lineItem, err := sales.NewInvoiceItem(invoiceID, itemID, quantity, decimal.NewFromInt(unitPrice), status)
	require.NoError(t, err)
	lineItem.CreatedAt = createdAt
	lineItem.UpdatedAt = createdAt
	require.NoError(t, db.Create(lineItem).Error)
	return lineItem
}

func seedTransaction(t *testing.T, db *gorm.DB, invoiceID uuid.UUID, result sales.TransactionResult) *sales.Transaction {
	t.Helper()
	txn, err := sales.NewTransaction(invoiceID, result, "4654405418249632", "04/27")
	require.NoError(t, err)
	require.NoError(t, db.Create(txn).Error)
	return txn
}

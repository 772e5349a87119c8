// Package integration provides integration testing utilities for the
// Little Shop backend. It uses testcontainers to spin up real PostgreSQL
// databases for testing.
package integration

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	mpg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/littleshop/backend/internal/domain/sales"
	"github.com/littleshop/backend/internal/domain/shared"
)

var (
	// Shared container for all tests in the package
	sharedContainer    testcontainers.Container
	sharedContainerMu  sync.Mutex
	sharedContainerDSN string
)

// TestDB represents a test database connection
type TestDB struct {
	DB        *gorm.DB
	SqlDB     *sql.DB
	Container testcontainers.Container
	DSN       string
	t         *testing.T
}

// NewTestDB creates a fresh PostgreSQL container for a test, providing
// complete isolation.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("littleshop_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "Failed to get connection string")

	db, sqlDB := connectToDatabase(t, dsn)
	runMigrations(t, sqlDB)

	testDB := &TestDB{
		DB:        db,
		SqlDB:     sqlDB,
		Container: container,
		DSN:       dsn,
		t:         t,
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// NewSharedTestDB returns a connection to a PostgreSQL container shared by
// the whole package. Tests using it must clean up their own rows, usually
// via CleanTables.
func NewSharedTestDB(t *testing.T) *TestDB {
	t.Helper()

	sharedContainerMu.Lock()
	defer sharedContainerMu.Unlock()

	ctx := context.Background()

	if sharedContainer == nil {
		container, err := tcpostgres.Run(ctx,
			"postgres:16-alpine",
			tcpostgres.WithDatabase("littleshop_shared_test"),
			tcpostgres.WithUsername("postgres"),
			tcpostgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		require.NoError(t, err, "Failed to start shared PostgreSQL container")

		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err, "Failed to get connection string")

		sharedContainer = container
		sharedContainerDSN = dsn

		db, sqlDB := connectToDatabase(t, dsn)
		runMigrations(t, sqlDB)
		sqlDB.Close()
		_ = db
	}

	db, sqlDB := connectToDatabase(t, sharedContainerDSN)

	testDB := &TestDB{
		DB:        db,
		SqlDB:     sqlDB,
		Container: sharedContainer,
		DSN:       sharedContainerDSN,
		t:         t,
	}

	t.Cleanup(func() {
		if testDB.SqlDB != nil {
			testDB.SqlDB.Close()
		}
	})

	return testDB
}

// Close closes the database connection and terminates the container
func (tdb *TestDB) Close() {
	ctx := context.Background()

	if tdb.SqlDB != nil {
		tdb.SqlDB.Close()
	}

	if tdb.Container != nil && tdb.Container != sharedContainer {
		if err := tdb.Container.Terminate(ctx); err != nil {
			tdb.t.Logf("Warning: Failed to terminate container: %v", err)
		}
	}
}

// CleanTables truncates all tables except the migration bookkeeping table
func (tdb *TestDB) CleanTables() {
	tdb.t.Helper()

	// Child tables first so foreign keys do not block the truncate
	tables := []string{"transactions", "invoice_items", "bulk_discounts", "invoices", "items", "merchants", "customers"}
	for _, table := range tables {
		err := tdb.DB.Exec("TRUNCATE TABLE " + table + " CASCADE").Error
		require.NoError(tdb.t, err, "Failed to truncate table %s", table)
	}
}

// CleanupSharedContainer terminates the shared container. Call it from
// TestMain when the package uses NewSharedTestDB.
func CleanupSharedContainer() {
	sharedContainerMu.Lock()
	defer sharedContainerMu.Unlock()

	if sharedContainer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		sharedContainer.Terminate(ctx)
		sharedContainer = nil
		sharedContainerDSN = ""
	}
}

func connectToDatabase(t *testing.T, dsn string) (*gorm.DB, *sql.DB) {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}
	if os.Getenv("TEST_DB_DEBUG") != "" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), gormConfig)
	require.NoError(t, err, "Failed to connect to database")

	sqlDB, err := db.DB()
	require.NoError(t, err, "Failed to get underlying SQL DB")

	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, sqlDB
}

func runMigrations(t *testing.T, sqlDB *sql.DB) {
	t.Helper()

	migrationsPath := findMigrationsPath()
	require.NotEmpty(t, migrationsPath, "Could not find migrations directory")

	driver, err := mpg.WithInstance(sqlDB, &mpg.Config{})
	require.NoError(t, err, "Failed to create migration driver")

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationsPath,
		"postgres",
		driver,
	)
	require.NoError(t, err, "Failed to create migrate instance")

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		require.NoError(t, err, "Failed to run migrations")
	}
}

func findMigrationsPath() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}

	dir := filepath.Dir(filename)
	for i := 0; i < 5; i++ {
		migrationsPath := filepath.Join(dir, "migrations")
		if _, err := os.Stat(migrationsPath); err == nil {
			return migrationsPath
		}
		dir = filepath.Dir(dir)
	}

	if wd, err := os.Getwd(); err == nil {
		paths := []string{
			filepath.Join(wd, "migrations"),
			filepath.Join(wd, "..", "migrations"),
			filepath.Join(wd, "..", "..", "migrations"),
		}
		for _, p := range paths {
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}

	return ""
}

// Seed helpers. Timestamps are set explicitly so ordering assertions are
// deterministic.

func (tdb *TestDB) CreateCustomer(firstName, lastName string) *sales.Customer {
	tdb.t.Helper()

	c := &sales.Customer{
		BaseEntity: shared.BaseEntity{ID: uuid.New()},
		FirstName:  firstName,
		LastName:   lastName,
	}
	require.NoError(tdb.t, tdb.DB.Create(c).Error, "Failed to create customer")
	return c
}

func (tdb *TestDB) CreateMerchant(name string) *sales.Merchant {
	tdb.t.Helper()

	m := &sales.Merchant{
		BaseEntity: shared.BaseEntity{ID: uuid.New()},
		Name:       name,
	}
	require.NoError(tdb.t, tdb.DB.Create(m).Error, "Failed to create merchant")
	return m
}

func (tdb *TestDB) CreateItem(merchantID uuid.UUID, name string, unitPrice int64) *sales.Item {
	tdb.t.Helper()

	i := &sales.Item{
		BaseEntity: shared.BaseEntity{ID: uuid.New()},
		MerchantID: merchantID,
		Name:       name,
		UnitPrice:  decimal.NewFromInt(unitPrice),
		Enabled:    true,
	}
	require.NoError(tdb.t, tdb.DB.Create(i).Error, "Failed to create item")
	return i
}

func (tdb *TestDB) CreateInvoice(customerID uuid.UUID, status sales.InvoiceStatus, createdAt, updatedAt time.Time) *sales.Invoice {
	tdb.t.Helper()

	inv := &sales.Invoice{
		BaseEntity: shared.BaseEntity{ID: uuid.New(), CreatedAt: createdAt, UpdatedAt: updatedAt},
		CustomerID: customerID,
		Status:     status,
	}
	require.NoError(tdb.t, tdb.DB.Create(inv).Error, "Failed to create invoice")
	return inv
}

func (tdb *TestDB) CreateLineItem(invoiceID, itemID uuid.UUID, quantity, unitPrice int64, status sales.ShipmentStatus) *sales.InvoiceItem {
	tdb.t.Helper()

	li := &sales.InvoiceItem{
		BaseEntity: shared.BaseEntity{ID: uuid.New()},
		InvoiceID:  invoiceID,
		ItemID:     itemID,
		Quantity:   quantity,
		UnitPrice:  decimal.NewFromInt(unitPrice),
		Status:     status,
	}
	require.NoError(tdb.t, tdb.DB.Create(li).Error, "Failed to create line item")
	return li
}

func (tdb *TestDB) CreateBulkDiscount(merchantID uuid.UUID, percentage, threshold int64) *sales.BulkDiscount {
	tdb.t.Helper()

	d := &sales.BulkDiscount{
		BaseEntity:        shared.BaseEntity{ID: uuid.New()},
		MerchantID:        merchantID,
		Percentage:        decimal.NewFromInt(percentage),
		QuantityThreshold: threshold,
	}
	require.NoError(tdb.t, tdb.DB.Create(d).Error, "Failed to create bulk discount")
	return d
}

func (tdb *TestDB) CreateTransaction(invoiceID uuid.UUID, result sales.TransactionResult) *sales.Transaction {
	tdb.t.Helper()

	tx := &sales.Transaction{
		BaseEntity:           shared.BaseEntity{ID: uuid.New()},
		InvoiceID:            invoiceID,
		Result:               result,
		CreditCardNumber:     "4654405418249632",
		CreditCardExpiration: "04/27",
	}
	require.NoError(tdb.t, tdb.DB.Create(tx).Error, "Failed to create transaction")
	return tx
}

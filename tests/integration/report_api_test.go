package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/littleshop/backend/internal/application/catalog"
	"github.com/littleshop/backend/internal/application/reporting"
	"github.com/littleshop/backend/internal/domain/sales"
	"github.com/littleshop/backend/internal/infrastructure/persistence"
	"github.com/littleshop/backend/internal/interfaces/http/dto"
	"github.com/littleshop/backend/internal/interfaces/http/handler"
	"github.com/littleshop/backend/internal/interfaces/http/middleware"
	"github.com/littleshop/backend/internal/interfaces/http/router"
)

func TestMain(m *testing.M) {
	code := m.Run()
	CleanupSharedContainer()
	os.Exit(code)
}

// newAPIServer assembles the HTTP stack the way cmd/server does, minus
// telemetry and logging middleware.
func newAPIServer(tdb *TestDB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	merchantRepo := persistence.NewGormMerchantRepository(tdb.DB)
	itemRepo := persistence.NewGormItemRepository(tdb.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(tdb.DB)
	invoiceItemRepo := persistence.NewGormInvoiceItemRepository(tdb.DB)
	bulkDiscountRepo := persistence.NewGormBulkDiscountRepository(tdb.DB)
	reportRepo := persistence.NewGormReportRepository(tdb.DB)

	catalogService := catalog.NewCatalogService(merchantRepo, itemRepo, invoiceRepo, invoiceItemRepo)
	reportService := reporting.NewReportService(
		merchantRepo,
		itemRepo,
		invoiceRepo,
		invoiceItemRepo,
		bulkDiscountRepo,
		reportRepo,
	)

	engine := gin.New()
	engine.Use(middleware.RequestID())

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewReportHandler(reportService))
	r.Register(handler.NewInvoiceHandler(catalogService, reportService))
	r.Register(handler.NewMerchantHandler(catalogService, reportService))
	r.Setup()

	return engine
}

func getJSON(t *testing.T, engine *gin.Engine, path string) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	engine.ServeHTTP(w, req)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestReportAPI_InvoiceRevenueAndDiscounts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := NewSharedTestDB(t)
	tdb.CleanTables()
	engine := newAPIServer(tdb)

	now := time.Now().UTC().Truncate(time.Second)
	customer := tdb.CreateCustomer("Joey", "Ondricka")
	merchant := tdb.CreateMerchant("Willms and Sons")
	item := tdb.CreateItem(merchant.ID, "Glitter scrabble frames", 1350)
	invoice := tdb.CreateInvoice(customer.ID, sales.InvoiceCompleted, now, now)
	qualifying := tdb.CreateLineItem(invoice.ID, item.ID, 15, 550, sales.ShipmentShipped)
	tdb.CreateLineItem(invoice.ID, item.ID, 2, 550, sales.ShipmentShipped)
	tdb.CreateTransaction(invoice.ID, sales.TransactionSuccess)
	tdb.CreateBulkDiscount(merchant.ID, 10, 10)
	tdb.CreateBulkDiscount(merchant.ID, 20, 20)

	t.Run("invoice total revenue", func(t *testing.T) {
		w, resp := getJSON(t, engine, "/api/v1/invoices/"+invoice.ID.String()+"/total-revenue")
		assert.Equal(t, http.StatusOK, w.Code)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "9350", data["revenue"])
	})

	t.Run("merchant total revenue", func(t *testing.T) {
		w, resp := getJSON(t, engine, "/api/v1/merchants/"+merchant.ID.String()+"/revenue")
		assert.Equal(t, http.StatusOK, w.Code)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "9350", data["revenue"])
	})

	t.Run("line item discounts", func(t *testing.T) {
		w, resp := getJSON(t, engine,
			"/api/v1/invoices/"+invoice.ID.String()+"/discounts?merchant_id="+merchant.ID.String())
		assert.Equal(t, http.StatusOK, w.Code)

		data := resp.Data.(map[string]interface{})
		discounts := data["discounts"].(map[string]interface{})
		// quantity 15 gets the 10% tier, quantity 2 gets none
		require.Len(t, discounts, 1)
		assert.Equal(t, "10", discounts[qualifying.ID.String()])
	})

	t.Run("merchant discounted revenue", func(t *testing.T) {
		// 15 * 550 * 0.9 + 2 * 550
		w, resp := getJSON(t, engine, "/api/v1/merchants/"+merchant.ID.String()+"/discounted-revenue")
		assert.Equal(t, http.StatusOK, w.Code)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "8525", data["revenue"])
	})

	t.Run("item sale prices use recorded price", func(t *testing.T) {
		w, resp := getJSON(t, engine, "/api/v1/invoices/"+invoice.ID.String()+"/item-sale-prices")
		assert.Equal(t, http.StatusOK, w.Code)

		rows := resp.Data.([]interface{})
		require.Len(t, rows, 2)
		row := rows[0].(map[string]interface{})
		assert.Equal(t, "Glitter scrabble frames", row["name"])
		assert.Equal(t, "550", row["sale_price"])
		assert.Equal(t, float64(15), row["sale_quantity"])
	})
}

func TestReportAPI_UnshippedInvoices(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := NewSharedTestDB(t)
	tdb.CleanTables()
	engine := newAPIServer(tdb)

	base := time.Date(2012, 3, 25, 9, 54, 9, 0, time.UTC)
	customer := tdb.CreateCustomer("Joey", "Ondricka")
	merchant := tdb.CreateMerchant("Willms and Sons")
	item := tdb.CreateItem(merchant.ID, "Glitter scrabble frames", 1350)

	oldest := tdb.CreateInvoice(customer.ID, sales.InvoiceInProgress, base, base)
	tdb.CreateLineItem(oldest.ID, item.ID, 1, 1350, sales.ShipmentPending)

	newer := tdb.CreateInvoice(customer.ID, sales.InvoiceCompleted, base.AddDate(0, 0, 1), base.AddDate(0, 0, 1))
	tdb.CreateLineItem(newer.ID, item.ID, 1, 1350, sales.ShipmentPackaged)
	tdb.CreateLineItem(newer.ID, item.ID, 2, 1350, sales.ShipmentShipped)

	shipped := tdb.CreateInvoice(customer.ID, sales.InvoiceCompleted, base.AddDate(0, 0, 2), base.AddDate(0, 0, 2))
	tdb.CreateLineItem(shipped.ID, item.ID, 1, 1350, sales.ShipmentShipped)

	w, resp := getJSON(t, engine, "/api/v1/reports/invoices/unshipped")
	assert.Equal(t, http.StatusOK, w.Code)

	rows := resp.Data.([]interface{})
	require.Len(t, rows, 2)

	first := rows[0].(map[string]interface{})
	assert.Equal(t, oldest.ID.String(), first["invoice_id"])
	assert.Equal(t, "in_progress", first["status"])

	second := rows[1].(map[string]interface{})
	assert.Equal(t, newer.ID.String(), second["invoice_id"])
}

func TestReportAPI_HighestRevenueDate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := NewSharedTestDB(t)
	tdb.CleanTables()
	engine := newAPIServer(tdb)

	base := time.Date(2012, 3, 25, 9, 54, 9, 0, time.UTC)
	customer := tdb.CreateCustomer("Joey", "Ondricka")
	merchant := tdb.CreateMerchant("Willms and Sons")
	item := tdb.CreateItem(merchant.ID, "Glitter scrabble frames", 1350)

	bigDay := base.AddDate(0, 0, 2)
	big := tdb.CreateInvoice(customer.ID, sales.InvoiceCompleted, base, bigDay)
	tdb.CreateLineItem(big.ID, item.ID, 10, 550, sales.ShipmentShipped)
	tdb.CreateTransaction(big.ID, sales.TransactionSuccess)

	small := tdb.CreateInvoice(customer.ID, sales.InvoiceCompleted, base, base)
	tdb.CreateLineItem(small.ID, item.ID, 2, 550, sales.ShipmentShipped)
	tdb.CreateTransaction(small.ID, sales.TransactionSuccess)

	// High-value invoice whose only transaction failed does not count
	failed := tdb.CreateInvoice(customer.ID, sales.InvoiceCompleted, base, base.AddDate(0, 0, 5))
	tdb.CreateLineItem(failed.ID, item.ID, 100, 550, sales.ShipmentShipped)
	tdb.CreateTransaction(failed.ID, sales.TransactionFailed)

	t.Run("found", func(t *testing.T) {
		w, resp := getJSON(t, engine, "/api/v1/reports/items/"+item.ID.String()+"/highest-revenue-date")
		assert.Equal(t, http.StatusOK, w.Code)

		data := resp.Data.(map[string]interface{})
		got, err := time.Parse(time.RFC3339, data["date"].(string))
		require.NoError(t, err)
		assert.True(t, bigDay.Equal(got.UTC()))
	})

	t.Run("item never sold", func(t *testing.T) {
		unsold := tdb.CreateItem(merchant.ID, "Disney scrabble frames", 1350)
		w, resp := getJSON(t, engine, "/api/v1/reports/items/"+unsold.ID.String()+"/highest-revenue-date")
		assert.Equal(t, http.StatusOK, w.Code)
		data := resp.Data.(map[string]interface{})
		assert.Nil(t, data["date"])
	})
}

func TestReportAPI_MerchantCatalog(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := NewSharedTestDB(t)
	tdb.CleanTables()
	engine := newAPIServer(tdb)

	merchant := tdb.CreateMerchant("Willms and Sons")
	other := tdb.CreateMerchant("Klein, Rempel and Jones")
	item := tdb.CreateItem(merchant.ID, "Glitter scrabble frames", 1350)
	tdb.CreateItem(merchant.ID, "Disney scrabble frames", 1350)
	tdb.CreateItem(other.ID, "Wooden spoons", 250)

	t.Run("lists only own items", func(t *testing.T) {
		w, resp := getJSON(t, engine, "/api/v1/merchants/"+merchant.ID.String()+"/items")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, resp.Data.([]interface{}), 2)
	})

	t.Run("item through wrong merchant is not found", func(t *testing.T) {
		w, resp := getJSON(t, engine, "/api/v1/merchants/"+other.ID.String()+"/items/"+item.ID.String())
		assert.Equal(t, http.StatusNotFound, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("dashboard for merchant with no sales", func(t *testing.T) {
		w, resp := getJSON(t, engine, "/api/v1/merchants/"+other.ID.String()+"/dashboard")
		assert.Equal(t, http.StatusOK, w.Code)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "0", data["total_revenue"])
		assert.Equal(t, "0", data["discounted_revenue"])
	})
}

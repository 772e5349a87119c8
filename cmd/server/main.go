package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/littleshop/backend/internal/application/catalog"
	"github.com/littleshop/backend/internal/application/reporting"
	"github.com/littleshop/backend/internal/infrastructure/cache"
	"github.com/littleshop/backend/internal/infrastructure/config"
	"github.com/littleshop/backend/internal/infrastructure/logger"
	"github.com/littleshop/backend/internal/infrastructure/persistence"
	"github.com/littleshop/backend/internal/infrastructure/telemetry"
	"github.com/littleshop/backend/internal/interfaces/http/handler"
	"github.com/littleshop/backend/internal/interfaces/http/middleware"
	"github.com/littleshop/backend/internal/interfaces/http/router"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", ".", "Path to directory containing config.toml")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	ctx := context.Background()

	tel, err := telemetry.Setup(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to set up telemetry", zap.Error(err))
	}
	defer func() {
		if err := tel.Shutdown(context.Background()); err != nil {
			log.Error("Telemetry shutdown failed", zap.Error(err))
		}
	}()

	// Tee application logs into the OTLP log exporter when enabled
	if otelCore := tel.ZapCore(); otelCore != nil {
		log = log.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, otelCore)
		}))
	}

	log.Info("Starting Little Shop backend",
		zap.String("app", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
		zap.String("addr", cfg.HTTP.Addr()),
	)

	db, err := persistence.NewDatabase(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	merchantRepo := persistence.NewGormMerchantRepository(db.DB)
	itemRepo := persistence.NewGormItemRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	invoiceItemRepo := persistence.NewGormInvoiceItemRepository(db.DB)
	bulkDiscountRepo := persistence.NewGormBulkDiscountRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)

	// Application services
	catalogService := catalog.NewCatalogService(merchantRepo, itemRepo, invoiceRepo, invoiceItemRepo)
	reportService := reporting.NewReportService(
		merchantRepo,
		itemRepo,
		invoiceRepo,
		invoiceItemRepo,
		bulkDiscountRepo,
		reportRepo,
	)
	reportService.SetRevenueCache(cache.NewRevenueCache(cfg.Redis, log))

	// HTTP engine and middleware
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.AccessLog(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS())
	if cfg.Telemetry.Enabled {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
		httpMetrics, err := telemetry.NewHTTPMetrics(tel.Meter())
		if err != nil {
			log.Fatal("Failed to create HTTP metrics", zap.Error(err))
		}
		engine.Use(httpMetrics.Middleware())
	}

	systemHandler := handler.NewSystemHandler(db)
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewReportHandler(reportService))
	r.Register(handler.NewInvoiceHandler(catalogService, reportService))
	r.Register(handler.NewMerchantHandler(catalogService, reportService))
	r.Register(systemHandler)
	r.Setup()

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited gracefully")
}

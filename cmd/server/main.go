package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/pos/backend/internal/application/catalog"
	financeapp "github.com/pos/backend/internal/application/finance"
	inventoryapp "github.com/pos/backend/internal/application/inventory"
	purchasingapp "github.com/pos/backend/internal/application/purchasing"
	salesapp "github.com/pos/backend/internal/application/sales"
	"github.com/pos/backend/internal/infrastructure/cache"
	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/pos/backend/internal/infrastructure/logger"
	"github.com/pos/backend/internal/infrastructure/persistence"
	"github.com/pos/backend/internal/interfaces/http/handler"
	"github.com/pos/backend/internal/interfaces/http/middleware"
	"github.com/pos/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting POS Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	itemRepo := persistence.NewGormItemRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	storeRepo := persistence.NewGormStoreRepository(db.DB)
	stockRepo := persistence.NewGormStockRepository(db.DB)
	itemStockRepo := persistence.NewGormItemStockRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	purchaseOrderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	receiptNoteRepo := persistence.NewGormGoodReceiptNoteRepository(db.DB)
	ledgerRepo := persistence.NewGormLedgerRepository(db.DB)
	businessDayRepo := persistence.NewGormBusinessDayRepository(db.DB)

	// Transaction scopes bind the multi-repository writes of order placement
	// and goods receiving to a single database transaction.
	salesTxScope := persistence.NewGormSalesTransactionScope(db.DB)
	purchasingTxScope := persistence.NewGormPurchasingTransactionScope(db.DB)

	// Duplicate-submission guard (Redis-backed, in-memory fallback)
	guardFactory := cache.NewSubmissionGuardFactory(cfg.Redis, cache.WithLogger(log))
	guard, err := guardFactory.CreateGuard()
	if err != nil {
		log.Fatal("Failed to create submission guard", zap.Error(err))
	}
	defer func() {
		if err := guard.Close(); err != nil {
			log.Error("Error closing submission guard", zap.Error(err))
		}
	}()

	// Initialize application services
	itemService := catalogapp.NewItemService(itemRepo, categoryRepo, log)
	stockService := inventoryapp.NewStockService(stockRepo, itemStockRepo, storeRepo, log)
	orderService := salesapp.NewOrderService(
		orderRepo, itemRepo, storeRepo, paymentRepo, customerRepo,
		itemStockRepo, salesTxScope, guard, log,
	)
	orderService.SetSubmissionGuardTTL(cfg.Orders.SubmissionGuardTTL)
	purchaseOrderService := purchasingapp.NewPurchaseOrderService(
		purchaseOrderRepo, vendorRepo, storeRepo, itemRepo, log,
	)
	receivingService := purchasingapp.NewReceivingService(
		purchaseOrderRepo, receiptNoteRepo, businessDayRepo, purchasingTxScope, log,
	)
	businessDayService := financeapp.NewBusinessDayService(businessDayRepo, storeRepo, log)
	ledgerService := financeapp.NewLedgerService(ledgerRepo)

	// Initialize HTTP handlers
	itemHandler := handler.NewItemHandler(itemService)
	inventoryHandler := handler.NewInventoryHandler(stockService)
	orderHandler := handler.NewOrderHandler(orderService)
	purchaseOrderHandler := handler.NewPurchaseOrderHandler(purchaseOrderService)
	receiptNoteHandler := handler.NewGoodReceiptNoteHandler(receivingService)
	businessDayHandler := handler.NewBusinessDayHandler(businessDayService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID first so recovery and logging can tag
	// their output, then CORS and the body size limit.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Register API routes
	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(itemHandler).
		Register(inventoryHandler).
		Register(orderHandler).
		Register(purchaseOrderHandler).
		Register(receiptNoteHandler).
		Register(businessDayHandler).
		Register(ledgerHandler).
		Register(systemHandler).
		Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}

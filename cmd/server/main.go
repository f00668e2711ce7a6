package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cartapp "github.com/storefront/backend/internal/application/cart"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	domaincart "github.com/storefront/backend/internal/domain/cart"
	domaincatalog "github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/inventory"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/infrastructure/persistence/memory"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Wire the persistence backend
	var (
		itemRepo domaincatalog.ItemRepository
		userRepo domaincart.UserRepository
		db       *persistence.Database
	)
	switch cfg.Repository.Backend {
	case config.RepositoryPostgres:
		gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
		db, err = persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
		if err != nil {
			log.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Error closing database", zap.Error(err))
			}
		}()
		itemRepo = persistence.NewGormItemRepository(db.DB)
		userRepo = persistence.NewGormUserRepository(db.DB)
		log.Info("Persistence backend initialized",
			zap.String("backend", cfg.Repository.Backend),
			zap.String("host", cfg.Database.Host),
			zap.String("database", cfg.Database.DBName),
		)
	case config.RepositoryMemory:
		itemRepo = memory.NewItemRepository()
		userRepo = memory.NewUserRepository()
		log.Info("Persistence backend initialized",
			zap.String("backend", cfg.Repository.Backend),
		)
	default:
		log.Fatal("Unknown repository backend", zap.String("backend", cfg.Repository.Backend))
	}

	// Password hashing
	hasher := auth.NewHasher(cfg.Auth.Hasher, cfg.Auth.BcryptCost)
	log.Info("Password hasher initialized", zap.String("hasher", cfg.Auth.Hasher))

	// External inventory service
	var inventorySvc domaincart.InventoryService
	switch cfg.Inventory.Mode {
	case config.InventoryHTTP:
		inventorySvc = inventory.NewHTTPInventoryService(cfg.Inventory.BaseURL, cfg.Inventory.Timeout)
		log.Info("Inventory service initialized",
			zap.String("mode", cfg.Inventory.Mode),
			zap.String("base_url", cfg.Inventory.BaseURL),
		)
	default:
		inventorySvc = inventory.NewMockInventoryService()
		log.Info("Inventory service initialized", zap.String("mode", config.InventoryMock))
	}

	// Application services
	itemService := catalogapp.NewItemService(itemRepo)
	userService := cartapp.NewUserService(userRepo, hasher)
	cartService := cartapp.NewCartService(userRepo, inventorySvc)

	// HTTP handlers
	itemHandler := handler.NewItemHandler(itemService)
	userHandler := handler.NewUserHandler(userService, cartService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	engine.GET("/health", healthHandler(db))

	router.NewRouter(engine).
		Register(itemHandler).
		Register(userHandler).
		Setup()

	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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

// healthHandler reports liveness. db is nil when running the in-memory
// backend; only the postgres backend has a connection to check.
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, gin.H{
				"status":   "healthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "none",
			})
			return
		}
		if err := db.Ping(); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
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

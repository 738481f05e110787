package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/krupasawant/SoleSense/internal/cache"
	"github.com/krupasawant/SoleSense/internal/config"
	"github.com/krupasawant/SoleSense/internal/database"
	"github.com/krupasawant/SoleSense/internal/handler"
	"github.com/krupasawant/SoleSense/internal/middleware"
	"github.com/krupasawant/SoleSense/internal/repository"
	"github.com/krupasawant/SoleSense/internal/service"
	"github.com/krupasawant/SoleSense/internal/utils"
)

// main is the application entrypoint for the SoleSense admin API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting solesense api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis for session storage
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	sessionCache := cache.NewSessionCache(redisClient)

	// 4. Configure token signing
	utils.InitJWT(cfg.JWTSecret, cfg.SessionTTL)

	// 5. Initialize repositories
	productRepo := repository.NewProductRepository(db)
	variantRepo := repository.NewVariantRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	adminRepo := repository.NewAdminUserRepository(db)

	// 6. Initialize services
	authSvc := service.NewAdminAuthService(adminRepo, sessionCache, cfg.SessionTTL)
	productSvc := service.NewProductService(productRepo, variantRepo)
	orderSvc := service.NewOrderService(orderRepo)
	dashboardSvc := service.NewDashboardService(productRepo, variantRepo, orderRepo)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:    handler.NewHealthHandler(db),
		Auth:      handler.NewAuthHandler(authSvc),
		Product:   handler.NewProductHandler(productSvc),
		Order:     handler.NewOrderHandler(orderSvc),
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
	}

	// 8. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware(authSvc)

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.TimeoutMiddleware(cfg.StoreTimeout))
	setupRoutes(router, handlers, jwtMw)

	// 10. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 11. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 12. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Order     *handler.OrderHandler
	Dashboard *handler.DashboardHandler
}

// setupRoutes registers all routes. Everything except login and health sits
// behind the JWT middleware.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	admin := router.Group("/v1/admin")
	admin.POST("/auth/login", handlers.Auth.Login)
	admin.Use(jwtMiddleware.Handle())
	{
		// Session
		admin.POST("/auth/logout", handlers.Auth.Logout)
		admin.GET("/auth/session", handlers.Auth.Session)

		// Dashboard
		admin.GET("/dashboard/summary", handlers.Dashboard.Summary)

		// Product Management
		admin.GET("/products", handlers.Product.ListProducts)
		admin.POST("/products", handlers.Product.CreateProduct)
		admin.GET("/products/:id", handlers.Product.GetProduct)
		admin.PUT("/products/:id", handlers.Product.UpdateProduct)
		admin.DELETE("/products/:id", handlers.Product.DeleteProduct)

		// Variant Management
		admin.GET("/products/:id/variants", handlers.Product.GetVariants)
		admin.PUT("/products/:id/variants", handlers.Product.ReconcileVariants)
		admin.POST("/variants/:id/adjust", handlers.Product.AdjustStock)

		// Orders
		admin.GET("/orders", handlers.Order.ListOrders)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"souqStore/app/echo-server/router"
	"souqStore/business/orders"
	"souqStore/business/product"
	"souqStore/business/recommend"
	userService "souqStore/business/user"
	"souqStore/internal/middleware"
	psqlRepo "souqStore/internal/repository/postgres"
	redisRepo "souqStore/internal/repository/redis"
	"souqStore/internal/rest"
	"souqStore/pkg/cache"
	"souqStore/pkg/config"
	"souqStore/pkg/database"
	redisdb "souqStore/pkg/database/redis"
	"souqStore/pkg/logger"
	"souqStore/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Souq Store API", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	metrics.Init()

	// Result cache: Redis when configured, in-process otherwise.
	var resultCache cache.Cache = cache.NewMemory()
	if cfg.Redis.RedisHost != "" {
		redisClient, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		defer redisdb.CloseRedisClient(redisClient)

		resultCache = redisRepo.NewCache(redisClient)
		logger.Info("Redis cache connected", "host", cfg.Redis.RedisHost)
	}

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	productsRepo := psqlRepo.NewProductRepository(db)
	recommendationRepo := psqlRepo.NewRecommendationRepository(db)

	// Init service
	usersService := userService.NewUserService(userRepo)
	ordersService := orders.NewOrdersService(ordersRepo)
	productService := product.NewProductService(productsRepo)
	recommendService := recommend.NewService(recommendationRepo, resultCache, cfg.Cache.TTL)

	// Init handler
	userHandler := rest.NewUserHandler(usersService)
	ordersHandler := rest.NewOrdersHandler(ordersService)
	productHandler := rest.NewProductHandler(productService)
	recommendHandler := rest.NewRecommendationHandler(recommendService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api")
	router.SetupProductRoutes(api, productHandler)
	router.SetupRecommendationRoutes(api, recommendHandler)
	router.SetOrdersRoutes(api, ordersHandler)
	router.SetupUserRoutes(api, userHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

package main

import (
	"os"
	"time"

	"storefront/config"
	"storefront/internal/clients"
	"storefront/internal/delivery"
	"storefront/internal/middleware"
	"storefront/internal/repository"
	"storefront/internal/usecase"
	"storefront/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, logLevel.String())
	}
	logger.SetLevel(logLevel)
	logger.Info("Starting Storefront Service...")

	// --- Repositories ---
	catalogRepo := repository.NewMemoryProductRepository(repository.DefaultCatalog(), repository.DefaultCategories(), logger)
	sessionRepo := repository.NewMemorySessionRepository(logger)
	logger.Info("Repositories initialized.")

	// --- Outbound clients ---
	generateClient := clients.NewGenerateHTTPClient(
		cfg.GenerateAPIURL,
		time.Duration(cfg.GenerateTimeoutMS)*time.Millisecond,
		logger,
	)
	paymentProvider := clients.NewSimulatedPaymentProvider(
		time.Duration(cfg.PaymentDelayMS)*time.Millisecond,
		logger,
	)
	logger.Info("Clients initialized.")

	// --- Use cases ---
	storeUseCase := usecase.NewStoreUseCase(sessionRepo, catalogRepo, logger)
	checkoutUseCase := usecase.NewCheckoutUseCase(sessionRepo, paymentProvider, logger)
	chatUseCase := usecase.NewChatUseCase(sessionRepo, catalogRepo, generateClient, logger)
	logger.Info("Use cases initialized.")

	// --- Handlers ---
	productHandler := delivery.NewProductHandler(catalogRepo, logger)
	cartHandler := delivery.NewCartHandler(storeUseCase, logger)
	authHandler := delivery.NewAuthHandler(storeUseCase, logger)
	orderHandler := delivery.NewOrderHandler(storeUseCase, logger)
	checkoutHandler := delivery.NewCheckoutHandler(checkoutUseCase, logger)
	chatHandler := delivery.NewChatHandler(chatUseCase, logger)
	logger.Info("Handlers initialized.")

	srvMetrics := metrics.NewServerMetrics("api")

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Metrics(srvMetrics))
	router.Use(middleware.SessionMiddleware(logger))

	productHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	authHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	checkoutHandler.RegisterRoutes(router)
	chatHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	logger.Info("Routes registered.")

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Errorf("Failed to start server on port %s: %v", cfg.Port, err)
		os.Exit(1)
	}
}

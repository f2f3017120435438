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
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/application"
	"github.com/Kilat-Pet-Delivery/service-quote/internal/config"
	quoteDomain "github.com/Kilat-Pet-Delivery/service-quote/internal/domain/quote"
	"github.com/Kilat-Pet-Delivery/service-quote/internal/events"
	"github.com/Kilat-Pet-Delivery/service-quote/internal/handler"
	"github.com/Kilat-Pet-Delivery/service-quote/internal/health"
	"github.com/Kilat-Pet-Delivery/service-quote/internal/logger"
	"github.com/Kilat-Pet-Delivery/service-quote/internal/maps"
	"github.com/Kilat-Pet-Delivery/service-quote/internal/middleware"
	"github.com/Kilat-Pet-Delivery/service-quote/internal/repository"
)

const serviceName = "service-quote"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-quote",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.AppEnv),
	)

	// Initialize mapping provider clients
	mapsClient, err := maps.NewClient(maps.Config{
		APIKey:  cfg.Maps.APIKey,
		BaseURL: cfg.Maps.BaseURL,
		Timeout: cfg.Maps.Timeout,
		Region:  cfg.Maps.Region,
	}, log)
	if err != nil {
		log.Fatal("failed to create maps client", zap.Error(err))
	}

	quoteOpts := []application.QuoteServiceOption{
		application.WithDefaults(cfg.Pricing.DefaultFeePerKm, cfg.Pricing.FreeDeliveryKm),
	}

	// Connect to database (optional warehouse catalog)
	var db *gorm.DB
	var warehouseService *application.WarehouseService
	if cfg.DBConfig.Enabled() {
		db, err = repository.Connect(cfg.DBConfig.DSN(), log)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		if err := repository.Migrate(db); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
		warehouseRepo := repository.NewGormWarehouseRepository(db)
		warehouseService = application.NewWarehouseService(warehouseRepo, log)
		quoteOpts = append(quoteOpts, application.WithWarehouseCatalog(warehouseRepo))
	} else {
		log.Info("no database configured, warehouse catalog disabled")
	}

	// Initialize Kafka producer (optional)
	if len(cfg.KafkaConfig.Brokers) > 0 {
		producer := events.NewProducer(cfg.KafkaConfig.Brokers, log)
		defer func() { _ = producer.Close() }()
		quoteOpts = append(quoteOpts, application.WithPublisher(events.NewQuotePublisher(producer, log)))
	} else {
		log.Info("no kafka brokers configured, quote events disabled")
	}

	// Initialize rate limiter (optional)
	var rateLimit gin.HandlerFunc
	if cfg.RedisConfig.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisConfig.Addr,
			Password:     cfg.RedisConfig.Password,
			DB:           cfg.RedisConfig.DB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		})
		defer func() { _ = redisClient.Close() }()
		rateLimit = middleware.NewRateLimiter(redisClient, cfg.RateLimitPerMinute, "quote:ratelimit", log).Middleware()
	}

	// Initialize application services
	quoteService := application.NewQuoteService(
		maps.NewDirectionsClient(mapsClient),
		quoteDomain.NewThresholdPricingStrategy(cfg.Pricing.FreeDeliveryKm),
		log,
		quoteOpts...,
	)
	locationService := application.NewLocationService(maps.NewPlacesClient(mapsClient), log)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	health.NewHandler(db, serviceName).RegisterRoutes(router)

	// Register routes
	handler.NewQuoteHandler(quoteService).RegisterRoutes(&router.RouterGroup, rateLimit)
	handler.NewPlaceHandler(locationService).RegisterRoutes(&router.RouterGroup, rateLimit)
	if warehouseService != nil {
		handler.NewWarehouseHandler(warehouseService).RegisterRoutes(&router.RouterGroup)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Maps.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-quote...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-quote stopped")
}

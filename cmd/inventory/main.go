package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "github.com/tair/inventory-information/docs"
	"github.com/tair/inventory-information/internal/inventory"
	"github.com/tair/inventory-information/internal/inventory/cache"
	"github.com/tair/inventory-information/internal/inventory/client"
	httpDelivery "github.com/tair/inventory-information/internal/inventory/delivery/http"
	"github.com/tair/inventory-information/internal/inventory/domain"
	"github.com/tair/inventory-information/internal/inventory/repository"
	"github.com/tair/inventory-information/kafka"
	"github.com/tair/inventory-information/pkg/config"
	"github.com/tair/inventory-information/pkg/database"
	"github.com/tair/inventory-information/pkg/logger"
	"github.com/tair/inventory-information/pkg/tracing"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("inventory-service", true)
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting inventory service")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Connect to database
	db, err := database.NewGormConnection(cfg.DB)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := repository.AutoMigrate(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	healthChecks := map[string]httpDelivery.HealthCheck{
		"database": sqlDB.PingContext,
	}

	fast, redisClient := connectFastStore(cfg)
	if redisClient != nil {
		defer redisClient.Close()
		healthChecks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	var publisher domain.EventPublisher = domain.NopPublisher{}
	if cfg.Kafka.Enabled() {
		kafkaPublisher, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka publisher")
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	} else {
		logger.Logger.Warn().Msg("KAFKA_BROKERS not set, inventory events are not published")
	}

	var validator domain.ProductValidator
	if cfg.ProductServiceURL != "" {
		validator = client.NewProductClient(cfg.ProductServiceURL)
	}

	metrics := cache.NewMetrics(prometheus.DefaultRegisterer)

	// Initialize handler with Wire DI
	handler, err := inventory.InitializeHTTPHandler(db, fast, publisher, validator, metrics, &cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	logger.Logger.Info().
		Bool("kafka", cfg.Kafka.Enabled()).
		Bool("product_validation", validator != nil).
		Bool("auth", cfg.JWTSecret != "").
		Msg("Inventory handler initialized")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Kafka.Enabled() {
		consumer := startItemSyncConsumer(ctx, cfg, db)
		defer consumer.Close()
	}

	// Start HTTP server
	var limiter *httpDelivery.RateLimiter
	if redisClient != nil && cfg.RateLimit.Requests > 0 {
		trustedProxies, err := httpDelivery.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Invalid RATE_LIMIT_TRUSTED_PROXIES")
		}
		limiter = httpDelivery.NewRateLimiter(redisClient, cfg.RateLimit.Requests, cfg.RateLimit.Window, trustedProxies)
	}

	server := newHTTPServer(cfg, handler, healthChecks, limiter)
	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}

// connectFastStore returns the Redis store, or an in-process store when
// Redis cannot be reached at startup.
func connectFastStore(cfg config.Config) (domain.FastStore, *redis.Client) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("addr", cfg.Redis.Addr).
			Msg("Redis unavailable, falling back to in-memory level cache")
		rdb.Close()
		return cache.NewMemoryStore(cfg.HistoryLimit), nil
	}

	logger.Logger.Info().Str("addr", cfg.Redis.Addr).Msg("Connected to Redis")
	return cache.NewRedisStore(rdb, cfg.HistoryLimit), rdb
}

func startItemSyncConsumer(ctx context.Context, cfg config.Config, db *gorm.DB) *kafka.Consumer {
	consumer, err := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, []string{cfg.Kafka.ItemSyncTopic})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}

	syncHandler := inventory.InitializeSyncItemHandler(db)
	consumer.RegisterHandler(cfg.Kafka.ItemSyncTopic, kafka.ItemSyncHandler(syncHandler.Handle))

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start Kafka consumer")
	}
	return consumer
}

func newHTTPServer(
	cfg config.Config,
	handler *httpDelivery.InventoryHandler,
	checks map[string]httpDelivery.HealthCheck,
	limiter *httpDelivery.RateLimiter,
) *http.Server {
	// Setup router
	router := mux.NewRouter()

	middlewareConfig := httpDelivery.DefaultMiddlewareConfig(cfg.RequestTimeout, cfg.AllowedOrigins)
	httpDelivery.RegisterMiddlewares(router, middlewareConfig)
	if limiter != nil {
		router.Use(limiter.Middleware())
		logger.Logger.Info().
			Int("requests", cfg.RateLimit.Requests).
			Dur("window", cfg.RateLimit.Window).
			Msg("Rate limiting enabled")
	}

	// Register routes
	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router, checks)
	httpDelivery.RegisterSwaggerDocs(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           httpDelivery.SetupCORS(middlewareConfig)(router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

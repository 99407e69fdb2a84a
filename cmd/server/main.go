package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/hishabkitab/backend/internal/adapter/http"
	"github.com/hishabkitab/backend/internal/adapter/http/handler"
	"github.com/hishabkitab/backend/internal/adapter/http/middleware"
	postgresRepo "github.com/hishabkitab/backend/internal/adapter/repository/postgres"
	redisRepo "github.com/hishabkitab/backend/internal/adapter/repository/redis"
	"github.com/hishabkitab/backend/internal/infrastructure/auth"
	"github.com/hishabkitab/backend/internal/infrastructure/config"
	"github.com/hishabkitab/backend/internal/infrastructure/logger"
	"github.com/hishabkitab/backend/internal/infrastructure/metrics"
	"github.com/hishabkitab/backend/internal/infrastructure/postgres"
	"github.com/hishabkitab/backend/internal/infrastructure/redis"
	"github.com/hishabkitab/backend/internal/infrastructure/storage"
	"github.com/hishabkitab/backend/internal/usecase"
)

const limiterCleanupInterval = time.Hour

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	zerolog.TimeFieldFormat = time.RFC3339
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Fatal().Err(err).Msg("server failed")
	}

	appLogger.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, appLogger zerolog.Logger) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	reporting := usecase.Reporting{Location: loc, CurrencySymbol: cfg.CurrencySymbol}

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	if cfg.AutoMigrate {
		if err := postgres.NewMigrator(cfg.DatabaseURL, cfg.MigrationsPath, appLogger).Up(); err != nil {
			return err
		}
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	attachments, err := newAttachmentStore(ctx, cfg)
	if err != nil {
		return err
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	retrier := postgresRepo.NewRetrier(appLogger)
	customerRepo := postgresRepo.NewCustomerRepository(pool)
	entryRepo := postgresRepo.NewLedgerEntryRepository(pool)
	cashbookRepo := postgresRepo.NewCashbookRepository(pool)
	productRepo := postgresRepo.NewProductRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	clock := usecase.SystemClock()

	// Initialize use cases
	customerUC := usecase.NewCustomerUseCase(customerRepo, entryRepo, idGen, clock, reporting)
	ledgerUC := usecase.NewLedgerUseCase(customerRepo, entryRepo, idGen, clock, reporting, appMetrics)
	cashbookUC := usecase.NewCashbookUseCase(txManager, cashbookRepo, attachments, idGen, clock, reporting, appMetrics)
	productUC := usecase.NewProductUseCase(txManager, productRepo, retrier, idGen, clock, appMetrics)
	reconciliationUC := usecase.NewReconciliationUseCase(productRepo, clock)

	rateLimiter := newRateLimiter(cfg, appMetrics)
	if rateLimiter != nil {
		go cleanupLimiters(ctx, rateLimiter)
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CustomerHandler:  handler.NewCustomerHandler(customerUC, ledgerUC),
		LedgerHandler:    handler.NewLedgerHandler(ledgerUC, reporting),
		CashbookHandler:  handler.NewCashbookHandler(cashbookUC, loc, cfg.MaxUploadBytes),
		ProductHandler:   handler.NewProductHandler(productUC, reconciliationUC),
		HealthHandler:    handler.NewHealthHandler(pool, redis.Pinger{Client: redisClient}),
		Logger:           appLogger,
		Metrics:          appMetrics,
		MetricsHandler:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      rateLimiter,
		Owner:            ownerConfig(cfg),
		AllowedOrigins:   cfg.CORSAllowedOrigins,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	return nil
}

// newAttachmentStore returns nil when no bucket is configured, which makes
// the cashbook reject attachments.
func newAttachmentStore(ctx context.Context, cfg *config.Config) (usecase.AttachmentStore, error) {
	if !cfg.AttachmentsEnabled() {
		return nil, nil
	}

	store, err := storage.NewS3Store(ctx, storage.S3Config{
		Bucket:          cfg.S3Bucket,
		Region:          cfg.S3Region,
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		PublicBaseURL:   cfg.S3PublicBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("init attachment store: %w", err)
	}
	return store, nil
}

// newRateLimiter returns nil when RATE_LIMIT_RPS is zero.
func newRateLimiter(cfg *config.Config, m *metrics.Metrics) *middleware.RateLimiter {
	if cfg.RateLimitRPS <= 0 {
		return nil
	}
	rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	if m != nil {
		rl.OnLimit(m.RateLimitHits.Inc)
	}
	return rl
}

func ownerConfig(cfg *config.Config) middleware.OwnerConfig {
	oc := middleware.OwnerConfig{
		AuthEnabled:    cfg.AuthEnabled,
		DefaultOwnerID: cfg.DefaultOwnerID,
	}
	if cfg.AuthEnabled {
		oc.JWT = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
	}
	return oc
}

func cleanupLimiters(ctx context.Context, rl *middleware.RateLimiter) {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.CleanupLimiters()
		}
	}
}

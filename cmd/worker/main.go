package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/savingsgl/internal/adapter/http"
	"github.com/iho/savingsgl/internal/adapter/http/handler"
	"github.com/iho/savingsgl/internal/adapter/messaging"
	postgresRepo "github.com/iho/savingsgl/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/savingsgl/internal/adapter/repository/redis"
	"github.com/iho/savingsgl/internal/infrastructure/config"
	"github.com/iho/savingsgl/internal/infrastructure/eventpublisher"
	"github.com/iho/savingsgl/internal/infrastructure/logger"
	"github.com/iho/savingsgl/internal/infrastructure/metrics"
	"github.com/iho/savingsgl/internal/infrastructure/postgres"
	"github.com/iho/savingsgl/internal/infrastructure/redis"
	"github.com/iho/savingsgl/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "savingsgl-worker",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Error().Err(err).Msg("worker stopped with error")
		os.Exit(1)
	}

	appLogger.Info().Msg("worker stopped")
}

// run connects every dependency, then consumes events, relays the outbox,
// and serves ops endpoints until ctx is cancelled or a component fails.
func run(ctx context.Context, cfg *config.Config, appLogger zerolog.Logger) error {
	if cfg.AutoMigrate {
		migrator := postgres.NewMigrator(cfg.DatabaseURL, cfg.MigrationsPath, appLogger)
		if err := migrator.Up(); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:     cfg.DatabaseURL,
		MaxConns:        cfg.DatabaseMaxConns,
		MinConns:        cfg.DatabaseMinConns,
		MaxConnLifetime: cfg.DatabaseMaxConnLifetime,
	})
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL, cfg.RedisPoolSize)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	// Connect to RabbitMQ
	conn, err := messaging.Dial(cfg.AMQPURL)
	if err != nil {
		return fmt.Errorf("connect to rabbitmq: %w", err)
	}
	defer conn.Close()
	appLogger.Info().Msg("connected to rabbitmq")

	m := metrics.New()
	deps := buildServices(pool, redisClient, cfg, appLogger, m)

	consumer, err := messaging.NewConsumer(conn, consumerConfig(cfg), deps.posting, appLogger.With().Str("component", "consumer").Logger())
	if err != nil {
		return fmt.Errorf("create consumer: %w", err)
	}
	defer consumer.Close()

	var publisher eventpublisher.Publisher = eventpublisher.NewLogPublisher(appLogger.With().Str("component", "outbox").Logger())
	if cfg.OutboxPublisher != "log" {
		amqpPublisher, err := messaging.NewPublisher(conn, cfg.EventsExchange)
		if err != nil {
			return fmt.Errorf("create publisher: %w", err)
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
	}

	relay := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: deps.outboxRepo,
		Publisher:  publisher,
		Metrics:    m,
		Logger:     appLogger.With().Str("component", "outbox").Logger(),
		BatchSize:  cfg.OutboxBatchSize,
		Interval:   cfg.OutboxPollInterval,
		Retention:  cfg.OutboxRetention,
	})

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		HealthHandler: handler.NewHealthHandler(healthChecks(pool, redisClient, conn)...),
		LedgerHandler: handler.NewLedgerHandler(deps.ledger),
		Metrics:       m,
		Logger:        appLogger.With().Str("component", "http").Logger(),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 3)

	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting ops server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("ops server: %w", err)
		}
	}()

	go func() {
		if err := consumer.Start(ctx); err != nil {
			errCh <- fmt.Errorf("consumer: %w", err)
		}
	}()

	go func() {
		if err := relay.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- fmt.Errorf("outbox relay: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		appLogger.Info().Msg("shutdown signal received")
	case runErr = <-errCh:
		appLogger.Error().Err(runErr).Msg("component failed, shutting down")
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("ops server forced to shutdown")
	}

	return runErr
}

type services struct {
	posting    *usecase.PostingService
	ledger     *usecase.LedgerUseCase
	outboxRepo *postgresRepo.OutboxRepository
}

// buildServices wires repositories and use cases.
func buildServices(pool *pgxpool.Pool, redisClient *goredis.Client, cfg *config.Config, appLogger zerolog.Logger, m *metrics.Metrics) services {
	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	entryRepo := postgresRepo.NewJournalEntryRepository(pool)
	accountRepo := postgresRepo.NewSavingsAccountRepository(pool)
	chargeRepo := postgresRepo.NewChargeRepository(pool)
	accountChargeRepo := postgresRepo.NewAccountChargeRepository(pool)
	overrideRepo := postgresRepo.NewOverrideRepository(pool)
	splitRepo := postgresRepo.NewSplitRepository(pool)
	auditRepo := postgresRepo.NewFeeSplitAuditRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	mappingRepo := redisRepo.NewAccountMappingCache(
		redisClient,
		postgresRepo.NewAccountMappingRepository(pool),
		cfg.ChartCacheTTL,
		appLogger.With().Str("component", "mapping_cache").Logger(),
	)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrierWithConfig(postgresRepo.RetryConfig{
		MaxRetries:     cfg.DatabaseMaxRetries,
		MaxElapsedTime: cfg.DatabaseRetryMaxElapsed,
	}, appLogger)

	// Initialize use cases
	writer := usecase.NewJournalEntryWriter(entryRepo, outboxRepo, idGen, appLogger, m)
	calculator := usecase.NewChargeFeeCalculator(usecase.NewChargeOverrideResolver(overrideRepo), accountChargeRepo, appLogger)
	splitEngine := usecase.NewFeeSplitEngine(splitRepo, mappingRepo, auditRepo, outboxRepo, writer, idGen, appLogger, m)

	posting := usecase.NewPostingService(
		txManager,
		accountRepo,
		mappingRepo,
		chargeRepo,
		accountChargeRepo,
		usecase.NewPostingRuleDispatcher(),
		writer,
		splitEngine,
		calculator,
		idempotencyStore,
		retrier,
		appLogger,
		m,
		postingOptions(cfg),
	)

	return services{
		posting:    posting,
		ledger:     usecase.NewLedgerUseCase(entryRepo, auditRepo),
		outboxRepo: outboxRepo,
	}
}

func consumerConfig(cfg *config.Config) messaging.ConsumerConfig {
	return messaging.ConsumerConfig{
		Exchange:           cfg.AMQPExchange,
		Queue:              cfg.AMQPQueue,
		RoutingKey:         cfg.AMQPRoutingKey,
		DeadLetterExchange: cfg.AMQPDeadLetter,
		Prefetch:           cfg.AMQPPrefetch,
	}
}

func postingOptions(cfg *config.Config) usecase.PostingOptions {
	return usecase.PostingOptions{
		PersistCappedPercentage: cfg.PersistCappedPercentage,
		IdempotencyTTL:          cfg.IdempotencyTTL,
		ClaimTTL:                cfg.IdempotencyClaimTTL,
	}
}

func healthChecks(pool *pgxpool.Pool, redisClient *goredis.Client, conn *amqp.Connection) []handler.NamedCheck {
	return []handler.NamedCheck{
		{Name: "postgres", Check: handler.PingCheck(pool)},
		{Name: "redis", Check: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }},
		{Name: "rabbitmq", Check: handler.ConnectionCheck(conn)},
	}
}

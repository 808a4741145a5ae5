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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/takeledger/internal/adapter/http"
	"github.com/iho/takeledger/internal/adapter/http/handler"
	"github.com/iho/takeledger/internal/adapter/http/middleware"
	"github.com/iho/takeledger/internal/adapter/repository/memory"
	postgresRepo "github.com/iho/takeledger/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/takeledger/internal/adapter/repository/redis"
	"github.com/iho/takeledger/internal/infrastructure/auth"
	"github.com/iho/takeledger/internal/infrastructure/config"
	"github.com/iho/takeledger/internal/infrastructure/eventpublisher"
	"github.com/iho/takeledger/internal/infrastructure/logger"
	"github.com/iho/takeledger/internal/infrastructure/metrics"
	"github.com/iho/takeledger/internal/infrastructure/payperiod"
	"github.com/iho/takeledger/internal/infrastructure/postgres"
	"github.com/iho/takeledger/internal/infrastructure/redis"
	"github.com/iho/takeledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	l := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = l

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, l); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func run(ctx context.Context, cfg *config.Config, l zerolog.Logger) error {
	a, err := newApp(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer a.close()

	// Deliver take change notifications until shutdown
	notifierDone := make(chan struct{})
	notifierCtx, stopNotifier := context.WithCancel(context.Background())
	go func() {
		defer close(notifierDone)
		_ = a.notifier.Start(notifierCtx)
	}()

	a.cron.Start()

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      a.handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		l.Info().Str("port", cfg.HTTPPort).Str("storage", cfg.Storage).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		stopNotifier()
		<-notifierDone
		return err
	case <-ctx.Done():
	}

	l.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		l.Error().Err(err).Msg("server forced to shutdown")
	}

	<-a.cron.Stop().Done()

	// requests are done, flush what they queued
	stopNotifier()
	<-notifierDone

	l.Info().Msg("server stopped")

	return nil
}

// app is the wired service.
type app struct {
	handler  http.Handler
	notifier *eventpublisher.Notifier
	cron     *cron.Cron
	closers  []func()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// ports are the storage-backed dependencies of the use cases.
type ports struct {
	txManager  usecase.TransactionManager
	teamRepo   usecase.TeamRepository
	memberRepo usecase.MemberRepository
	takeRepo   usecase.TakeRepository
	periods    usecase.PayPeriodLocator
	checks     []handler.HealthCheck
}

func newApp(ctx context.Context, cfg *config.Config, l zerolog.Logger) (*app, error) {
	a := &app{cron: cron.New()}

	p, err := openStorage(ctx, cfg, l, a)
	if err != nil {
		a.close()
		return nil, err
	}

	if cfg.PayPeriodSource == config.PayPeriodSourceCron {
		schedule, err := payperiod.NewSchedule(cfg.PayPeriodSchedule, cfg.PayPeriodLookback, time.UTC)
		if err != nil {
			a.close()
			return nil, err
		}
		p.periods = schedule
	}

	// Connect to Redis (optional)
	var (
		cache            usecase.Cache
		idempotencyStore usecase.IdempotencyStore
		redisClient      *goredis.Client
	)
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, redis.ClientConfig{
			URL:         cfg.RedisURL,
			PoolSize:    cfg.RedisPoolSize,
			DialTimeout: cfg.RedisTimeout,
		})
		if err != nil {
			a.close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.closers = append(a.closers, func() { redisClient.Close() })
		l.Info().Msg("connected to redis")

		cache = redisRepo.NewCache(redisClient)
		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		p.checks = append(p.checks, handler.RedisCheck(redisClient))
	}

	// Metrics
	registry := prometheus.NewRegistry()
	m := metrics.NewWithRegisterer(registry)
	metricsHandler := promhttp.HandlerFor(
		prometheus.Gatherers{registry, prometheus.DefaultGatherer},
		promhttp.HandlerOpts{},
	)

	// Take change notifications
	var publisher eventpublisher.Publisher = eventpublisher.NewLogPublisher(l)
	if cfg.NotifierPublisher == config.NotifierPublisherRedis {
		if redisClient == nil {
			a.close()
			return nil, errors.New("NOTIFIER_PUBLISHER=redis requires REDIS_URL")
		}
		publisher = redisRepo.NewEventPublisher(redisClient, cfg.NotifierChannel)
	}
	a.notifier = eventpublisher.NewNotifier(eventpublisher.Config{
		Publisher:    publisher,
		Logger:       &l,
		QueueSize:    cfg.NotifierQueueSize,
		MaxRetries:   cfg.NotifierMaxRetries,
		DrainTimeout: cfg.NotifierDrain,
		OnDrop:       m.NotificationsDropped.Inc,
	})

	// Initialize use cases
	takeUC := usecase.NewTakeUseCase(usecase.TakeUseCaseConfig{
		TxManager:      p.txManager,
		TeamRepo:       p.teamRepo,
		MemberRepo:     p.memberRepo,
		TakeRepo:       p.takeRepo,
		Periods:        p.periods,
		Notifier:       a.notifier,
		Cache:          cache,
		Observer:       m,
		Logger:         &l,
		CacheTTL:       cfg.DistributionCacheTTL,
		MaxTeamMembers: cfg.MaxTeamMembers,
	})
	auditUC := usecase.NewAuditUseCase(p.txManager, p.teamRepo, p.memberRepo, p.takeRepo)

	// Initialize handlers
	retrier := postgresRepo.NewRetrier().WithMaxRetries(cfg.RetryMax).WithLogger(l)
	routerCfg := httpAdapter.RouterConfig{
		TakeHandler: handler.NewTakeHandler(takeUC, retrier, m),
		AuditHandler: handler.NewAuditHandler(auditUC, takeUC, func(n int) {
			m.AuditDiscrepancies.Add(float64(n))
		}),
		HealthHandler:    handler.NewHealthHandler(p.checks...),
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		MetricsHandler:   metricsHandler,
		Logger:           &l,
	}

	if cfg.AuthEnabled {
		routerCfg.JWTManager = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
		routerCfg.OnAuthFailure = func(reason string) {
			m.AuthFailures.WithLabelValues(reason).Inc()
		}
	}

	if cfg.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).OnLimited(m.RateLimitHits.Inc)
		if _, err := a.cron.AddFunc("@every 1h", func() { limiter.CleanupLimiters(time.Hour) }); err != nil {
			a.close()
			return nil, err
		}
		routerCfg.RateLimiter = limiter
	}

	a.handler = httpAdapter.NewRouter(routerCfg)

	return a, nil
}

func openStorage(ctx context.Context, cfg *config.Config, l zerolog.Logger, a *app) (*ports, error) {
	if cfg.Storage == config.StorageMemory {
		store := memory.NewStore()
		if cfg.MemorySeedFile != "" {
			if err := store.LoadSeedFile(cfg.MemorySeedFile); err != nil {
				return nil, err
			}
			l.Info().Str("file", cfg.MemorySeedFile).Msg("loaded memory seed")
		}

		return &ports{
			txManager:  store,
			teamRepo:   store.Teams(),
			memberRepo: store.Members(),
			takeRepo:   store.Takes(),
			periods:    store,
		}, nil
	}

	if cfg.AutoMigrate {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			return nil, err
		}
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	a.closers = append(a.closers, pool.Close)
	l.Info().Msg("connected to postgres")

	return &ports{
		txManager:  postgresRepo.NewTxManager(pool),
		teamRepo:   postgresRepo.NewTeamRepository(pool),
		memberRepo: postgresRepo.NewMemberRepository(pool),
		takeRepo:   postgresRepo.NewTakeRepository(pool, cfg.LockTimeout),
		periods:    postgresRepo.NewPaydayRepository(pool),
		checks:     []handler.HealthCheck{handler.PostgresCheck(pool)},
	}, nil
}

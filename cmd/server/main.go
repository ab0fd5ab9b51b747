package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/gobudget/internal/adapter/http"
	"github.com/iho/gobudget/internal/adapter/http/handler"
	"github.com/iho/gobudget/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/gobudget/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/gobudget/internal/adapter/repository/redis"
	"github.com/iho/gobudget/internal/infrastructure/clock"
	"github.com/iho/gobudget/internal/infrastructure/config"
	"github.com/iho/gobudget/internal/infrastructure/logger"
	"github.com/iho/gobudget/internal/infrastructure/metrics"
	"github.com/iho/gobudget/internal/infrastructure/postgres"
	"github.com/iho/gobudget/internal/infrastructure/redis"
	"github.com/iho/gobudget/internal/usecase"
)

const (
	visitorCleanupInterval = 10 * time.Minute
	visitorMaxIdle         = 30 * time.Minute
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal().Err(err).Msg("failed to load .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log.Logger); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}

	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	if cfg.MigrateOnStart {
		if err := postgres.NewMigrator(cfg.DatabaseURL, cfg.MigrationsPath, logger).Up(); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

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
	logger.Info().Msg("connected to postgres")

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL, redis.Options{PoolSize: cfg.RedisPoolSize})
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()
	logger.Info().Msg("connected to redis")

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go cleanupVisitors(ctx, rateLimiter)

	router := newRouter(routerDeps{
		cfg:         cfg,
		logger:      logger,
		pool:        pool,
		redisClient: redisClient,
		clock:       clock.New(loc),
		registerer:  prometheus.DefaultRegisterer,
		gatherer:    prometheus.DefaultGatherer,
		rateLimiter: rateLimiter,
	})

	server := newServer(cfg, router)

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.HTTPPort).Str("timezone", loc.String()).Msg("starting server")
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

	logger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

type routerDeps struct {
	cfg         *config.Config
	logger      zerolog.Logger
	pool        *pgxpool.Pool
	redisClient *goredis.Client
	clock       usecase.Clock
	registerer  prometheus.Registerer
	gatherer    prometheus.Gatherer
	rateLimiter *middleware.RateLimiter
}

// newRouter wires repositories, use cases and handlers into the HTTP router.
func newRouter(d routerDeps) http.Handler {
	txManager := postgresRepo.NewTxManager(d.pool)
	retrier := postgresRepo.NewRetrier(d.logger)
	idGen := postgresRepo.NewULIDGenerator()

	incomeRepo := postgresRepo.NewIncomeRepository(d.pool)
	allocationRepo := postgresRepo.NewAllocationRepository(d.pool)
	monthlyRepo := postgresRepo.NewMonthlyExpenseRepository(d.pool)
	dailyRepo := postgresRepo.NewDailyExpenseRepository(d.pool)
	goalRepo := postgresRepo.NewGoalRepository(d.pool)
	conversationRepo := postgresRepo.NewConversationRepository(d.pool)

	m := metrics.New(d.registerer)
	loader := usecase.NewSnapshotLoader(incomeRepo, allocationRepo, monthlyRepo, dailyRepo, goalRepo)

	incomeUC := usecase.NewIncomeUseCase(incomeRepo, idGen, d.clock)
	allocationUC := usecase.NewAllocationUseCase(allocationRepo, idGen, d.clock)
	monthlyUC := usecase.NewMonthlyExpenseUseCase(txManager, retrier, monthlyRepo, idGen, d.clock, m)
	dailyUC := usecase.NewDailyExpenseUseCase(dailyRepo, idGen, d.clock, m)
	goalUC := usecase.NewGoalUseCase(txManager, retrier, goalRepo, idGen, d.clock)
	dashboardUC := usecase.NewDashboardUseCase(loader, dailyRepo, m)
	adviceUC := usecase.NewAdviceUseCase(loader, d.clock, m)
	conversationUC := usecase.NewConversationUseCase(txManager, retrier, conversationRepo, d.clock)

	return httpAdapter.NewRouter(httpAdapter.RouterConfig{
		IncomeHandler:         handler.NewIncomeHandler(incomeUC),
		AllocationHandler:     handler.NewAllocationHandler(allocationUC),
		GoalHandler:           handler.NewGoalHandler(goalUC),
		MonthlyExpenseHandler: handler.NewMonthlyExpenseHandler(monthlyUC),
		DailyExpenseHandler:   handler.NewDailyExpenseHandler(dailyUC),
		DashboardHandler:      handler.NewDashboardHandler(dashboardUC, d.clock),
		MentorHandler:         handler.NewMentorHandler(adviceUC, conversationUC),
		HealthHandler: handler.NewHealthHandler(
			handler.PostgresCheck(d.pool),
			handler.RedisCheck(d.redisClient),
		),
		MetricsHandler:     promhttp.HandlerFor(d.gatherer, promhttp.HandlerOpts{}),
		IdempotencyStore:   redisRepo.NewIdempotencyStore(d.redisClient),
		IdempotencyTTL:     d.cfg.IdempotencyTTL,
		OnIdempotentReplay: m.IdempotentReplay,
		RateLimiter:        d.rateLimiter,
		CORSAllowedOrigins: d.cfg.CORSAllowedOrigins,
		Logger:             d.logger,
	})
}

func newServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           h,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
	}
}

func cleanupVisitors(ctx context.Context, rl *middleware.RateLimiter) {
	ticker := time.NewTicker(visitorCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.CleanupVisitors(visitorMaxIdle)
		}
	}
}

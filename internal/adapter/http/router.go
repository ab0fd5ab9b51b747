package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/iho/gobudget/internal/adapter/http/handler"
	"github.com/iho/gobudget/internal/adapter/http/middleware"
	"github.com/iho/gobudget/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	IncomeHandler         *handler.IncomeHandler
	AllocationHandler     *handler.AllocationHandler
	GoalHandler           *handler.GoalHandler
	MonthlyExpenseHandler *handler.MonthlyExpenseHandler
	DailyExpenseHandler   *handler.DailyExpenseHandler
	DashboardHandler      *handler.DashboardHandler
	MentorHandler         *handler.MentorHandler
	HealthHandler         *handler.HealthHandler

	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler

	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	// OnIdempotentReplay runs whenever a stored response is replayed.
	OnIdempotentReplay func()

	RateLimiter        *middleware.RateLimiter
	CORSAllowedOrigins []string
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Metrics)
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", middleware.IdempotencyKeyHeader},
			ExposedHeaders: []string{middleware.IdempotencyReplayHeader},
			MaxAge:         300,
		}))
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			opts := []middleware.IdempotencyOption{
				middleware.WithTTL(cfg.IdempotencyTTL),
				middleware.WithLogger(cfg.Logger),
			}
			if cfg.OnIdempotentReplay != nil {
				opts = append(opts, middleware.WithReplayHook(cfg.OnIdempotentReplay))
			}
			r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, opts...).Wrap)
		}

		r.Route("/income", func(r chi.Router) {
			r.Get("/", cfg.IncomeHandler.Get)
			r.Post("/", cfg.IncomeHandler.Update)
		})

		r.Route("/allocation", func(r chi.Router) {
			r.Get("/", cfg.AllocationHandler.Get)
			r.Post("/", cfg.AllocationHandler.Update)
		})

		r.Route("/goals", func(r chi.Router) {
			r.Get("/", cfg.GoalHandler.List)
			r.Post("/", cfg.GoalHandler.Create)
			r.Put("/{id}", cfg.GoalHandler.Update)
			r.Delete("/{id}", cfg.GoalHandler.Delete)
		})

		r.Route("/monthly-expenses", func(r chi.Router) {
			r.Get("/", cfg.MonthlyExpenseHandler.List)
			r.Post("/", cfg.MonthlyExpenseHandler.Create)
			r.Delete("/{id}", cfg.MonthlyExpenseHandler.Delete)
		})

		r.Route("/daily-expenses", func(r chi.Router) {
			r.Get("/", cfg.DailyExpenseHandler.List)
			r.Post("/", cfg.DailyExpenseHandler.Create)
			r.Get("/date/{date}", cfg.DailyExpenseHandler.ListByDate)
			r.Get("/month/{year}/{month}", cfg.DailyExpenseHandler.ListByMonth)
			r.Delete("/{id}", cfg.DailyExpenseHandler.Delete)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", cfg.DashboardHandler.Dashboard)
			r.Get("/summary", cfg.DashboardHandler.Summary)
			r.Get("/expenses-by-category", cfg.DashboardHandler.ExpensesByCategory)
			r.Get("/daily-trend", cfg.DashboardHandler.DailyTrend)
			r.Get("/monthly-projection", cfg.DashboardHandler.MonthlyProjection)
		})

		r.Route("/mentor", func(r chi.Router) {
			r.Get("/conversation", cfg.MentorHandler.History)
			r.Post("/conversation", cfg.MentorHandler.Save)
			r.Post("/advice", cfg.MentorHandler.Advice)
		})
	})

	return r
}

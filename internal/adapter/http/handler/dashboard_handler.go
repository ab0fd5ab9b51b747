package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/iho/gobudget/internal/adapter/http/dto"
	"github.com/iho/gobudget/internal/usecase"
)

// DashboardService defines the behavior needed by DashboardHandler.
type DashboardService interface {
	GetDashboard(ctx context.Context, asOf time.Time) (*usecase.Dashboard, error)
	GetSummary(ctx context.Context, asOf time.Time) (*usecase.Summary, error)
	ExpensesByCategory(ctx context.Context, asOf time.Time) ([]usecase.CategoryTotal, error)
	DailyTrend(ctx context.Context, asOf time.Time) ([]usecase.TrendPoint, error)
	MonthlyProjection(ctx context.Context, asOf time.Time) ([]usecase.ProjectionPoint, error)
}

// DashboardHandler serves the read-only dashboard views. Every view is
// computed as of the clock's current day.
type DashboardHandler struct {
	dashboardUC DashboardService
	clock       usecase.Clock
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardUC DashboardService, clock usecase.Clock) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC, clock: clock}
}

// Dashboard returns the full dashboard.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.dashboardUC.GetDashboard(r.Context(), h.clock.Now())
	if err != nil {
		writeDomainError(w, "failed to load dashboard", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DashboardFromUseCase(d))
}

// Summary returns income, allocation and headline metrics.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.dashboardUC.GetSummary(r.Context(), h.clock.Now())
	if err != nil {
		writeDomainError(w, "failed to load summary", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromUseCase(s))
}

// ExpensesByCategory returns this month's spend per category.
func (h *DashboardHandler) ExpensesByCategory(w http.ResponseWriter, r *http.Request) {
	totals, err := h.dashboardUC.ExpensesByCategory(r.Context(), h.clock.Now())
	if err != nil {
		writeDomainError(w, "failed to load expenses by category", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CategoryTotalsFromUseCase(totals))
}

// DailyTrend returns the last seven days of spending.
func (h *DashboardHandler) DailyTrend(w http.ResponseWriter, r *http.Request) {
	points, err := h.dashboardUC.DailyTrend(r.Context(), h.clock.Now())
	if err != nil {
		writeDomainError(w, "failed to load daily trend", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TrendFromUseCase(points))
}

// MonthlyProjection returns twelve months of projected savings.
func (h *DashboardHandler) MonthlyProjection(w http.ResponseWriter, r *http.Request) {
	points, err := h.dashboardUC.MonthlyProjection(r.Context(), h.clock.Now())
	if err != nil {
		writeDomainError(w, "failed to load monthly projection", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ProjectionFromUseCase(points))
}

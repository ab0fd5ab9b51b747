package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gobudget/internal/adapter/http/dto"
	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
)

// MonthlyExpenseService defines the behavior needed by MonthlyExpenseHandler.
type MonthlyExpenseService interface {
	List(ctx context.Context) ([]*domain.MonthlyExpense, error)
	Create(ctx context.Context, input usecase.CreateMonthlyExpenseInput) (*domain.MonthlyExpense, error)
	Delete(ctx context.Context, id string) error
}

// MonthlyExpenseHandler handles monthly bill requests.
type MonthlyExpenseHandler struct {
	monthlyUC MonthlyExpenseService
}

// NewMonthlyExpenseHandler creates a new MonthlyExpenseHandler.
func NewMonthlyExpenseHandler(monthlyUC MonthlyExpenseService) *MonthlyExpenseHandler {
	return &MonthlyExpenseHandler{monthlyUC: monthlyUC}
}

// List returns every monthly expense and their total.
func (h *MonthlyExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.monthlyUC.List(r.Context())
	if err != nil {
		writeDomainError(w, "failed to list monthly expenses", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListMonthlyExpensesResponse(expenses))
}

// Create adds a monthly expense.
func (h *MonthlyExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMonthlyExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	expense, err := h.monthlyUC.Create(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "failed to create monthly expense", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.MonthlyExpenseFromDomain(expense))
}

// Delete removes a monthly expense.
func (h *MonthlyExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.monthlyUC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, "failed to delete monthly expense", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DailyExpenseService defines the behavior needed by DailyExpenseHandler.
type DailyExpenseService interface {
	List(ctx context.Context) ([]*domain.DailyExpense, error)
	ListByDate(ctx context.Context, date string) ([]*domain.DailyExpense, error)
	ListByMonth(ctx context.Context, year, month int) ([]*domain.DailyExpense, error)
	Create(ctx context.Context, input usecase.CreateDailyExpenseInput) (*domain.DailyExpense, error)
	Delete(ctx context.Context, id string) error
}

// DailyExpenseHandler handles daily spend requests.
type DailyExpenseHandler struct {
	dailyUC DailyExpenseService
}

// NewDailyExpenseHandler creates a new DailyExpenseHandler.
func NewDailyExpenseHandler(dailyUC DailyExpenseService) *DailyExpenseHandler {
	return &DailyExpenseHandler{dailyUC: dailyUC}
}

// List returns every daily expense, newest first.
func (h *DailyExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.dailyUC.List(r.Context())
	if err != nil {
		writeDomainError(w, "failed to list daily expenses", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListDailyExpensesResponse(expenses))
}

// ListByDate returns the expenses of one day.
func (h *DailyExpenseHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.dailyUC.ListByDate(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		writeDomainError(w, "failed to list daily expenses", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListDailyExpensesResponse(expenses))
}

// ListByMonth returns the expenses of one calendar month.
func (h *DailyExpenseHandler) ListByMonth(w http.ResponseWriter, r *http.Request) {
	year, err := pathInt(r, "year")
	if err != nil {
		writeError(w, http.StatusBadRequest, domain.ErrInvalidMonth.Error(), err.Error())
		return
	}

	month, err := pathInt(r, "month")
	if err != nil {
		writeError(w, http.StatusBadRequest, domain.ErrInvalidMonth.Error(), err.Error())
		return
	}

	expenses, err := h.dailyUC.ListByMonth(r.Context(), year, month)
	if err != nil {
		writeDomainError(w, "failed to list daily expenses", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListDailyExpensesResponse(expenses))
}

// Create logs a daily expense.
func (h *DailyExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDailyExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	expense, err := h.dailyUC.Create(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "failed to create daily expense", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.DailyExpenseFromDomain(expense))
}

// Delete removes a daily expense.
func (h *DailyExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.dailyUC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, "failed to delete daily expense", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

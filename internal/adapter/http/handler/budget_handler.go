package handler

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/adapter/http/dto"
	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
)

// IncomeService defines the behavior needed by IncomeHandler.
type IncomeService interface {
	GetCurrent(ctx context.Context) (*domain.Income, error)
	Update(ctx context.Context, amount decimal.Decimal) (*domain.Income, error)
}

// IncomeHandler handles income requests.
type IncomeHandler struct {
	incomeUC IncomeService
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeUC IncomeService) *IncomeHandler {
	return &IncomeHandler{incomeUC: incomeUC}
}

// Get returns the current monthly income.
func (h *IncomeHandler) Get(w http.ResponseWriter, r *http.Request) {
	income, err := h.incomeUC.GetCurrent(r.Context())
	if err != nil {
		writeDomainError(w, "failed to get income", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.IncomeFromDomain(income))
}

// Update records a new monthly income.
func (h *IncomeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateIncomeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	income, err := h.incomeUC.Update(r.Context(), req.Amount)
	if err != nil {
		writeDomainError(w, "failed to update income", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.IncomeFromDomain(income))
}

// AllocationService defines the behavior needed by AllocationHandler.
type AllocationService interface {
	GetCurrent(ctx context.Context) (*domain.Allocation, error)
	Update(ctx context.Context, input usecase.UpdateAllocationInput) (*domain.Allocation, error)
}

// AllocationHandler handles allocation requests.
type AllocationHandler struct {
	allocationUC AllocationService
}

// NewAllocationHandler creates a new AllocationHandler.
func NewAllocationHandler(allocationUC AllocationService) *AllocationHandler {
	return &AllocationHandler{allocationUC: allocationUC}
}

// Get returns the current allocation.
func (h *AllocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	allocation, err := h.allocationUC.GetCurrent(r.Context())
	if err != nil {
		writeDomainError(w, "failed to get allocation", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AllocationFromDomain(allocation))
}

// Update records a new allocation.
func (h *AllocationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAllocationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	allocation, err := h.allocationUC.Update(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "failed to update allocation", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.AllocationFromDomain(allocation))
}

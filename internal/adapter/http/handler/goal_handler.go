package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gobudget/internal/adapter/http/dto"
	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
)

// GoalService defines the behavior needed by GoalHandler.
type GoalService interface {
	List(ctx context.Context) ([]*domain.Goal, error)
	Create(ctx context.Context, input usecase.CreateGoalInput) (*domain.Goal, error)
	Update(ctx context.Context, id string, input usecase.UpdateGoalInput) (*domain.Goal, error)
	Delete(ctx context.Context, id string) error
}

// GoalHandler handles savings goal requests.
type GoalHandler struct {
	goalUC GoalService
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalUC GoalService) *GoalHandler {
	return &GoalHandler{goalUC: goalUC}
}

// List returns every goal.
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goalUC.List(r.Context())
	if err != nil {
		writeDomainError(w, "failed to list goals", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListGoalsResponse{
		Goals: dto.GoalsFromDomain(goals),
		Total: len(goals),
	})
}

// Create adds a goal.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	goal, err := h.goalUC.Create(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "failed to create goal", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.GoalFromDomain(goal))
}

// Update applies a partial update to a goal.
func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	goal, err := h.goalUC.Update(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "failed to update goal", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.GoalFromDomain(goal))
}

// Delete removes a goal.
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.goalUC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, "failed to delete goal", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

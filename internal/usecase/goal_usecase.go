package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
)

// GoalUseCase handles goal business logic.
type GoalUseCase struct {
	txManager TransactionManager
	retrier   Retrier
	goalRepo  GoalRepository
	idGen     IDGenerator
	clock     Clock
}

// NewGoalUseCase creates a new GoalUseCase.
func NewGoalUseCase(txManager TransactionManager, retrier Retrier, goalRepo GoalRepository, idGen IDGenerator, clock Clock) *GoalUseCase {
	return &GoalUseCase{
		txManager: txManager,
		retrier:   retrier,
		goalRepo:  goalRepo,
		idGen:     idGen,
		clock:     clock,
	}
}

// CreateGoalInput represents input for creating a goal.
type CreateGoalInput struct {
	Name     string
	Amount   decimal.Decimal
	Timeline string
	Icon     string
	// Selected defaults to true when nil.
	Selected *bool
	Current  decimal.Decimal
}

// UpdateGoalInput carries a partial update; nil fields are left unchanged.
type UpdateGoalInput struct {
	Name     *string
	Amount   *decimal.Decimal
	Current  *decimal.Decimal
	Timeline *string
	Icon     *string
	Selected *bool
}

// List returns all goals, seeding the default goals into an empty list.
func (uc *GoalUseCase) List(ctx context.Context) ([]*domain.Goal, error) {
	goals, err := uc.goalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(goals) > 0 {
		return goals, nil
	}

	err = seedIfEmpty(ctx, uc.txManager, uc.retrier, uc.goalRepo.CountTx,
		func(ctx context.Context, tx Transaction) error {
			now := uc.clock.Now().UTC()
			for _, g := range domain.DefaultGoals() {
				g.ID = uc.idGen.Generate()
				g.CreatedAt = now
				g.UpdatedAt = now
				if err := uc.goalRepo.CreateTx(ctx, tx, &g); err != nil {
					return err
				}
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("seed goals: %w", err)
	}

	return uc.goalRepo.List(ctx)
}

// Create adds a goal.
func (uc *GoalUseCase) Create(ctx context.Context, input CreateGoalInput) (*domain.Goal, error) {
	now := uc.clock.Now().UTC()

	goal := &domain.Goal{
		ID:        uc.idGen.Generate(),
		Name:      strings.TrimSpace(input.Name),
		Amount:    input.Amount,
		Current:   input.Current,
		Timeline:  strings.TrimSpace(input.Timeline),
		Icon:      strings.TrimSpace(input.Icon),
		Selected:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if goal.Icon == "" {
		goal.Icon = domain.DefaultGoalIcon
	}
	if input.Selected != nil {
		goal.Selected = *input.Selected
	}

	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// Update applies a partial update to an existing goal.
func (uc *GoalUseCase) Update(ctx context.Context, id string, input UpdateGoalInput) (*domain.Goal, error) {
	goal, err := uc.goalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		goal.Name = strings.TrimSpace(*input.Name)
	}
	if input.Amount != nil {
		goal.Amount = *input.Amount
	}
	if input.Current != nil {
		goal.Current = *input.Current
	}
	if input.Timeline != nil {
		goal.Timeline = strings.TrimSpace(*input.Timeline)
	}
	if input.Icon != nil {
		goal.Icon = strings.TrimSpace(*input.Icon)
	}
	if input.Selected != nil {
		goal.Selected = *input.Selected
	}

	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	goal.UpdatedAt = uc.clock.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// Delete removes a goal.
func (uc *GoalUseCase) Delete(ctx context.Context, id string) error {
	return uc.goalRepo.Delete(ctx, id)
}

func validateGoal(g *domain.Goal) error {
	if err := domain.ValidateName(g.Name, domain.ErrInvalidGoalName); err != nil {
		return err
	}

	if err := domain.ValidateAmount(g.Amount); err != nil {
		return err
	}

	if g.Current.IsNegative() || !domain.HasMoneyPrecision(g.Current) {
		return domain.ErrInvalidCurrent
	}

	if g.Timeline == "" {
		return domain.ErrInvalidTimeline
	}

	return nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
)

// MonthlyExpenseUseCase handles monthly expense business logic.
type MonthlyExpenseUseCase struct {
	txManager   TransactionManager
	retrier     Retrier
	monthlyRepo MonthlyExpenseRepository
	idGen       IDGenerator
	clock       Clock
	metrics     MetricsRecorder
}

// NewMonthlyExpenseUseCase creates a new MonthlyExpenseUseCase.
func NewMonthlyExpenseUseCase(
	txManager TransactionManager,
	retrier Retrier,
	monthlyRepo MonthlyExpenseRepository,
	idGen IDGenerator,
	clock Clock,
	metrics MetricsRecorder,
) *MonthlyExpenseUseCase {
	return &MonthlyExpenseUseCase{
		txManager:   txManager,
		retrier:     retrier,
		monthlyRepo: monthlyRepo,
		idGen:       idGen,
		clock:       clock,
		metrics:     metricsOrNop(metrics),
	}
}

// CreateMonthlyExpenseInput represents input for adding a monthly expense.
type CreateMonthlyExpenseInput struct {
	Name   string
	Amount decimal.Decimal
	// IsRecurring defaults to true when nil.
	IsRecurring *bool
}

// List returns all monthly expenses, seeding the default bills into an empty list.
func (uc *MonthlyExpenseUseCase) List(ctx context.Context) ([]*domain.MonthlyExpense, error) {
	expenses, err := uc.monthlyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(expenses) > 0 {
		return expenses, nil
	}

	err = seedIfEmpty(ctx, uc.txManager, uc.retrier, uc.monthlyRepo.CountTx,
		func(ctx context.Context, tx Transaction) error {
			now := uc.clock.Now().UTC()
			for _, e := range domain.DefaultMonthlyExpenses() {
				e.ID = uc.idGen.Generate()
				e.CreatedAt = now
				if err := uc.monthlyRepo.CreateTx(ctx, tx, &e); err != nil {
					return err
				}
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("seed monthly expenses: %w", err)
	}

	return uc.monthlyRepo.List(ctx)
}

// Create adds a monthly expense.
func (uc *MonthlyExpenseUseCase) Create(ctx context.Context, input CreateMonthlyExpenseInput) (*domain.MonthlyExpense, error) {
	if err := domain.ValidateName(input.Name, domain.ErrInvalidExpenseName); err != nil {
		return nil, err
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	recurring := true
	if input.IsRecurring != nil {
		recurring = *input.IsRecurring
	}

	expense := &domain.MonthlyExpense{
		ID:          uc.idGen.Generate(),
		Name:        strings.TrimSpace(input.Name),
		Amount:      input.Amount,
		IsRecurring: recurring,
		CreatedAt:   uc.clock.Now().UTC(),
	}

	if err := uc.monthlyRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	uc.metrics.ExpenseCreated(ExpenseKindMonthly)

	return expense, nil
}

// Delete removes a monthly expense.
func (uc *MonthlyExpenseUseCase) Delete(ctx context.Context, id string) error {
	return uc.monthlyRepo.Delete(ctx, id)
}

// DailyExpenseUseCase handles daily expense business logic.
type DailyExpenseUseCase struct {
	dailyRepo DailyExpenseRepository
	idGen     IDGenerator
	clock     Clock
	metrics   MetricsRecorder
}

// NewDailyExpenseUseCase creates a new DailyExpenseUseCase.
func NewDailyExpenseUseCase(dailyRepo DailyExpenseRepository, idGen IDGenerator, clock Clock, metrics MetricsRecorder) *DailyExpenseUseCase {
	return &DailyExpenseUseCase{
		dailyRepo: dailyRepo,
		idGen:     idGen,
		clock:     clock,
		metrics:   metricsOrNop(metrics),
	}
}

// CreateDailyExpenseInput represents input for adding a daily expense.
type CreateDailyExpenseInput struct {
	Amount   decimal.Decimal
	Category string
	Notes    string
	Date     string
}

// List returns all daily expenses, newest first.
func (uc *DailyExpenseUseCase) List(ctx context.Context) ([]*domain.DailyExpense, error) {
	return uc.dailyRepo.List(ctx)
}

// ListByDate returns the expenses recorded on an ISO date.
func (uc *DailyExpenseUseCase) ListByDate(ctx context.Context, date string) ([]*domain.DailyExpense, error) {
	if err := domain.ValidateDate(date); err != nil {
		return nil, err
	}

	return uc.dailyRepo.ListByDate(ctx, date)
}

// ListByMonth returns the expenses of a calendar month, newest first.
func (uc *DailyExpenseUseCase) ListByMonth(ctx context.Context, year, month int) ([]*domain.DailyExpense, error) {
	if err := domain.ValidateMonth(year, month); err != nil {
		return nil, err
	}

	from, to := domain.MonthRange(year, time.Month(month))

	return uc.dailyRepo.ListByDateRange(ctx, from, to)
}

// Create adds a daily expense.
func (uc *DailyExpenseUseCase) Create(ctx context.Context, input CreateDailyExpenseInput) (*domain.DailyExpense, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if err := domain.ValidateCategory(input.Category); err != nil {
		return nil, err
	}

	if err := domain.ValidateDate(input.Date); err != nil {
		return nil, err
	}

	notes := strings.TrimSpace(input.Notes)
	if len(notes) > domain.MaxNotesLength {
		return nil, domain.ErrNotesTooLong
	}

	expense := &domain.DailyExpense{
		ID:        uc.idGen.Generate(),
		Amount:    input.Amount,
		Category:  strings.TrimSpace(input.Category),
		Notes:     notes,
		Date:      input.Date,
		CreatedAt: uc.clock.Now().UTC(),
	}

	if err := uc.dailyRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	uc.metrics.ExpenseCreated(ExpenseKindDaily)

	return expense, nil
}

// Delete removes a daily expense.
func (uc *DailyExpenseUseCase) Delete(ctx context.Context, id string) error {
	return uc.dailyRepo.Delete(ctx, id)
}

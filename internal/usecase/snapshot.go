package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/iho/gobudget/internal/domain"
)

// GoalScope selects which goals a snapshot carries.
type GoalScope int

const (
	GoalsNone GoalScope = iota
	GoalsSelected
	GoalsAll
)

// Snapshot is the financial state read once per request. Missing income and
// allocation records are replaced by the domain defaults.
type Snapshot struct {
	Income          decimal.Decimal
	Allocation      domain.Allocation
	MonthlyExpenses []*domain.MonthlyExpense
	DailyExpenses   []*domain.DailyExpense
	Goals           []*domain.Goal
}

// BudgetInput converts the snapshot into calculator input.
func (s *Snapshot) BudgetInput() domain.BudgetInput {
	in := domain.BudgetInput{
		Income:          s.Income,
		Allocation:      s.Allocation,
		MonthlyExpenses: make([]domain.MonthlyExpense, 0, len(s.MonthlyExpenses)),
		DailyExpenses:   make([]domain.DailyExpense, 0, len(s.DailyExpenses)),
	}

	for _, e := range s.MonthlyExpenses {
		in.MonthlyExpenses = append(in.MonthlyExpenses, *e)
	}
	for _, e := range s.DailyExpenses {
		in.DailyExpenses = append(in.DailyExpenses, *e)
	}

	return in
}

// SnapshotLoader reads every record the budget depends on concurrently.
type SnapshotLoader struct {
	incomeRepo     IncomeRepository
	allocationRepo AllocationRepository
	monthlyRepo    MonthlyExpenseRepository
	dailyRepo      DailyExpenseRepository
	goalRepo       GoalRepository
}

// NewSnapshotLoader creates a new SnapshotLoader.
func NewSnapshotLoader(
	incomeRepo IncomeRepository,
	allocationRepo AllocationRepository,
	monthlyRepo MonthlyExpenseRepository,
	dailyRepo DailyExpenseRepository,
	goalRepo GoalRepository,
) *SnapshotLoader {
	return &SnapshotLoader{
		incomeRepo:     incomeRepo,
		allocationRepo: allocationRepo,
		monthlyRepo:    monthlyRepo,
		dailyRepo:      dailyRepo,
		goalRepo:       goalRepo,
	}
}

// Load fetches a snapshot. The first failing read cancels the others and
// its error is returned as is.
func (l *SnapshotLoader) Load(ctx context.Context, goals GoalScope) (*Snapshot, error) {
	var (
		income     *domain.Income
		allocation *domain.Allocation
		snap       Snapshot
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		income, err = l.incomeRepo.GetLatest(ctx)
		return err
	})
	g.Go(func() (err error) {
		allocation, err = l.allocationRepo.GetLatest(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.MonthlyExpenses, err = l.monthlyRepo.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.DailyExpenses, err = l.dailyRepo.List(ctx)
		return err
	})

	switch goals {
	case GoalsSelected:
		g.Go(func() (err error) {
			snap.Goals, err = l.goalRepo.ListSelected(ctx)
			return err
		})
	case GoalsAll:
		g.Go(func() (err error) {
			snap.Goals, err = l.goalRepo.List(ctx)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap.Income = domain.DefaultIncomeAmount()
	if income != nil {
		snap.Income = income.Amount
	}

	snap.Allocation = domain.DefaultAllocation()
	if allocation != nil {
		snap.Allocation = *allocation
	}

	return &snap, nil
}

package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
)

const (
	trendDays        = 7
	projectionMonths = 12
)

// AllocationSlice is one segment of the allocation pie chart.
type AllocationSlice struct {
	Name   string
	Amount decimal.Decimal
	Color  string
}

// Dashboard is the full state shown on the home screen.
type Dashboard struct {
	Income          decimal.Decimal
	Allocation      domain.Allocation
	Goals           []*domain.Goal
	MonthlyExpenses []*domain.MonthlyExpense
	DailyExpenses   []*domain.DailyExpense
	AllocationData  []AllocationSlice
	Metrics         domain.BudgetMetrics
}

// Summary carries the headline figures of the budget.
type Summary struct {
	Income     decimal.Decimal
	Allocation domain.Allocation
	Metrics    domain.BudgetMetrics
}

// CategoryTotal is the amount spent in one category.
type CategoryTotal struct {
	Name   string
	Amount decimal.Decimal
}

// TrendPoint is one day of the spending trend.
type TrendPoint struct {
	Name   string
	Date   string
	Amount decimal.Decimal
	Budget decimal.Decimal
}

// ProjectionPoint is one month of the savings projection.
type ProjectionPoint struct {
	Name        string
	Year        int
	Projected   decimal.Decimal
	Accumulated decimal.Decimal
}

// DashboardUseCase builds the read-only dashboard views.
type DashboardUseCase struct {
	loader    *SnapshotLoader
	dailyRepo DailyExpenseRepository
	metrics   MetricsRecorder
}

// NewDashboardUseCase creates a new DashboardUseCase. metrics may be nil.
func NewDashboardUseCase(loader *SnapshotLoader, dailyRepo DailyExpenseRepository, metrics MetricsRecorder) *DashboardUseCase {
	return &DashboardUseCase{
		loader:    loader,
		dailyRepo: dailyRepo,
		metrics:   metricsOrNop(metrics),
	}
}

// GetDashboard returns every record and metric as of asOf.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, asOf time.Time) (*Dashboard, error) {
	snap, err := uc.loader.Load(ctx, GoalsAll)
	if err != nil {
		return nil, err
	}

	m := domain.CalculateBudget(snap.BudgetInput(), asOf)
	uc.metrics.FinanceScoreObserved(m.FinanceScore)

	return &Dashboard{
		Income:          snap.Income,
		Allocation:      snap.Allocation,
		Goals:           snap.Goals,
		MonthlyExpenses: snap.MonthlyExpenses,
		DailyExpenses:   snap.DailyExpenses,
		AllocationData: []AllocationSlice{
			{Name: "Savings", Amount: m.Amounts.Savings, Color: "#3b82f6"},
			{Name: "Needs", Amount: m.Amounts.Needs, Color: "#22c55e"},
			{Name: "Wants", Amount: m.Amounts.Wants, Color: "#f59e0b"},
		},
		Metrics: m,
	}, nil
}

// GetSummary returns the headline metrics as of asOf.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, asOf time.Time) (*Summary, error) {
	snap, err := uc.loader.Load(ctx, GoalsNone)
	if err != nil {
		return nil, err
	}

	m := domain.CalculateBudget(snap.BudgetInput(), asOf)
	uc.metrics.FinanceScoreObserved(m.FinanceScore)

	return &Summary{
		Income:     snap.Income,
		Allocation: snap.Allocation,
		Metrics:    m,
	}, nil
}

// ExpensesByCategory totals the daily expenses of asOf's month per category,
// in the order categories first appear.
func (uc *DashboardUseCase) ExpensesByCategory(ctx context.Context, asOf time.Time) ([]CategoryTotal, error) {
	from, to := domain.MonthRange(asOf.Year(), asOf.Month())

	expenses, err := uc.dailyRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	totals := make([]CategoryTotal, 0)

	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, CategoryTotal{Name: e.Category})
		}
		totals[i].Amount = totals[i].Amount.Add(e.Amount)
	}

	return totals, nil
}

// DailyTrend returns spending for the seven days ending on asOf, oldest
// first. The budget line is the daily budget computed without any daily
// expenses, so it stays flat across the week.
func (uc *DashboardUseCase) DailyTrend(ctx context.Context, asOf time.Time) ([]TrendPoint, error) {
	snap, err := uc.loader.Load(ctx, GoalsNone)
	if err != nil {
		return nil, err
	}

	in := snap.BudgetInput()
	in.DailyExpenses = nil
	budget := domain.CalculateBudget(in, asOf).DailyBudget

	spent := make(map[string]decimal.Decimal)
	for _, e := range snap.DailyExpenses {
		spent[e.Date] = spent[e.Date].Add(e.Amount)
	}

	points := make([]TrendPoint, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := asOf.AddDate(0, 0, -i)
		date := day.Format(domain.DateLayout)

		points = append(points, TrendPoint{
			Name:   day.Weekday().String()[:3],
			Date:   date,
			Amount: spent[date],
			Budget: budget,
		})
	}

	return points, nil
}

// MonthlyProjection returns twelve months of projected savings starting
// with asOf's month.
func (uc *DashboardUseCase) MonthlyProjection(ctx context.Context, asOf time.Time) ([]ProjectionPoint, error) {
	snap, err := uc.loader.Load(ctx, GoalsNone)
	if err != nil {
		return nil, err
	}

	savings := domain.CalculateBudget(snap.BudgetInput(), asOf).MonthlySavings
	first := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())

	points := make([]ProjectionPoint, 0, projectionMonths)
	for i := 0; i < projectionMonths; i++ {
		month := first.AddDate(0, i, 0)

		points = append(points, ProjectionPoint{
			Name:        month.Month().String()[:3],
			Year:        month.Year(),
			Projected:   savings,
			Accumulated: savings.Mul(decimal.NewFromInt(int64(i + 1))),
		})
	}

	return points, nil
}

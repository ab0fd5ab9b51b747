package handler

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
)

type incomeServiceStub struct {
	getFn    func(ctx context.Context) (*domain.Income, error)
	updateFn func(ctx context.Context, amount decimal.Decimal) (*domain.Income, error)
}

func (s *incomeServiceStub) GetCurrent(ctx context.Context) (*domain.Income, error) {
	return s.getFn(ctx)
}

func (s *incomeServiceStub) Update(ctx context.Context, amount decimal.Decimal) (*domain.Income, error) {
	return s.updateFn(ctx, amount)
}

type allocationServiceStub struct {
	getFn    func(ctx context.Context) (*domain.Allocation, error)
	updateFn func(ctx context.Context, input usecase.UpdateAllocationInput) (*domain.Allocation, error)
}

func (s *allocationServiceStub) GetCurrent(ctx context.Context) (*domain.Allocation, error) {
	return s.getFn(ctx)
}

func (s *allocationServiceStub) Update(ctx context.Context, input usecase.UpdateAllocationInput) (*domain.Allocation, error) {
	return s.updateFn(ctx, input)
}

type goalServiceStub struct {
	listFn   func(ctx context.Context) ([]*domain.Goal, error)
	createFn func(ctx context.Context, input usecase.CreateGoalInput) (*domain.Goal, error)
	updateFn func(ctx context.Context, id string, input usecase.UpdateGoalInput) (*domain.Goal, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *goalServiceStub) List(ctx context.Context) ([]*domain.Goal, error) {
	return s.listFn(ctx)
}

func (s *goalServiceStub) Create(ctx context.Context, input usecase.CreateGoalInput) (*domain.Goal, error) {
	return s.createFn(ctx, input)
}

func (s *goalServiceStub) Update(ctx context.Context, id string, input usecase.UpdateGoalInput) (*domain.Goal, error) {
	return s.updateFn(ctx, id, input)
}

func (s *goalServiceStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type monthlyServiceStub struct {
	listFn   func(ctx context.Context) ([]*domain.MonthlyExpense, error)
	createFn func(ctx context.Context, input usecase.CreateMonthlyExpenseInput) (*domain.MonthlyExpense, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *monthlyServiceStub) List(ctx context.Context) ([]*domain.MonthlyExpense, error) {
	return s.listFn(ctx)
}

func (s *monthlyServiceStub) Create(ctx context.Context, input usecase.CreateMonthlyExpenseInput) (*domain.MonthlyExpense, error) {
	return s.createFn(ctx, input)
}

func (s *monthlyServiceStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type dailyServiceStub struct {
	listFn        func(ctx context.Context) ([]*domain.DailyExpense, error)
	listByDateFn  func(ctx context.Context, date string) ([]*domain.DailyExpense, error)
	listByMonthFn func(ctx context.Context, year, month int) ([]*domain.DailyExpense, error)
	createFn      func(ctx context.Context, input usecase.CreateDailyExpenseInput) (*domain.DailyExpense, error)
	deleteFn      func(ctx context.Context, id string) error
}

func (s *dailyServiceStub) List(ctx context.Context) ([]*domain.DailyExpense, error) {
	return s.listFn(ctx)
}

func (s *dailyServiceStub) ListByDate(ctx context.Context, date string) ([]*domain.DailyExpense, error) {
	return s.listByDateFn(ctx, date)
}

func (s *dailyServiceStub) ListByMonth(ctx context.Context, year, month int) ([]*domain.DailyExpense, error) {
	return s.listByMonthFn(ctx, year, month)
}

func (s *dailyServiceStub) Create(ctx context.Context, input usecase.CreateDailyExpenseInput) (*domain.DailyExpense, error) {
	return s.createFn(ctx, input)
}

func (s *dailyServiceStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type dashboardServiceStub struct {
	asOf time.Time
	err  error

	dashboard  *usecase.Dashboard
	summary    *usecase.Summary
	categories []usecase.CategoryTotal
	trend      []usecase.TrendPoint
	projection []usecase.ProjectionPoint
}

func (s *dashboardServiceStub) GetDashboard(_ context.Context, asOf time.Time) (*usecase.Dashboard, error) {
	s.asOf = asOf
	return s.dashboard, s.err
}

func (s *dashboardServiceStub) GetSummary(_ context.Context, asOf time.Time) (*usecase.Summary, error) {
	s.asOf = asOf
	return s.summary, s.err
}

func (s *dashboardServiceStub) ExpensesByCategory(_ context.Context, asOf time.Time) ([]usecase.CategoryTotal, error) {
	s.asOf = asOf
	return s.categories, s.err
}

func (s *dashboardServiceStub) DailyTrend(_ context.Context, asOf time.Time) ([]usecase.TrendPoint, error) {
	s.asOf = asOf
	return s.trend, s.err
}

func (s *dashboardServiceStub) MonthlyProjection(_ context.Context, asOf time.Time) ([]usecase.ProjectionPoint, error) {
	s.asOf = asOf
	return s.projection, s.err
}

type adviceServiceStub struct {
	calls  []string
	answer string
	err    error
}

func (s *adviceServiceStub) Advise(_ context.Context, query string) (string, error) {
	s.calls = append(s.calls, query)
	return s.answer, s.err
}

type conversationServiceStub struct {
	historyFn func(ctx context.Context) ([]domain.Message, error)
	saveFn    func(ctx context.Context, messages []domain.Message) ([]domain.Message, error)
}

func (s *conversationServiceStub) History(ctx context.Context) ([]domain.Message, error) {
	return s.historyFn(ctx)
}

func (s *conversationServiceStub) Save(ctx context.Context, messages []domain.Message) ([]domain.Message, error) {
	return s.saveFn(ctx, messages)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

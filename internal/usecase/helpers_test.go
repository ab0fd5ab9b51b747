package usecase_test

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
	"github.com/iho/gobudget/internal/usecase/mocks"
)

var march15 = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type immediateRetrier struct{}

func (immediateRetrier) Retry(_ context.Context, op func() error) error { return op() }

type sequenceIDs struct{ n int }

func (s *sequenceIDs) Generate() string {
	s.n++
	return "id-" + strconv.Itoa(s.n)
}

// budgetRepos bundles the repositories a SnapshotLoader reads from.
type budgetRepos struct {
	income     *mocks.MockIncomeRepository
	allocation *mocks.MockAllocationRepository
	monthly    *mocks.MockMonthlyExpenseRepository
	daily      *mocks.MockDailyExpenseRepository
	goal       *mocks.MockGoalRepository
}

func newBudgetRepos(ctrl *gomock.Controller) *budgetRepos {
	return &budgetRepos{
		income:     mocks.NewMockIncomeRepository(ctrl),
		allocation: mocks.NewMockAllocationRepository(ctrl),
		monthly:    mocks.NewMockMonthlyExpenseRepository(ctrl),
		daily:      mocks.NewMockDailyExpenseRepository(ctrl),
		goal:       mocks.NewMockGoalRepository(ctrl),
	}
}

func (r *budgetRepos) loader() *usecase.SnapshotLoader {
	return usecase.NewSnapshotLoader(r.income, r.allocation, r.monthly, r.daily, r.goal)
}

// expectRecords sets up the four budget reads. A nil income or allocation
// means no record exists.
func (r *budgetRepos) expectRecords(
	income *domain.Income,
	allocation *domain.Allocation,
	monthly []*domain.MonthlyExpense,
	daily []*domain.DailyExpense,
) {
	r.income.EXPECT().GetLatest(gomock.Any()).Return(income, nil)
	r.allocation.EXPECT().GetLatest(gomock.Any()).Return(allocation, nil)
	r.monthly.EXPECT().List(gomock.Any()).Return(monthly, nil)
	r.daily.EXPECT().List(gomock.Any()).Return(daily, nil)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func boolPtr(b bool) *bool { return &b }

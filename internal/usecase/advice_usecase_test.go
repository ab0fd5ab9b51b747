package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
	"github.com/iho/gobudget/internal/usecase/mocks"
)

func TestClassifyQuery(t *testing.T) {
	tests := []struct {
		query string
		want  usecase.Intent
	}{
		{"how did I do", usecase.IntentStatus},
		{"How did I do with my goals?", usecase.IntentStatus},
		{"I want to save more for my house", usecase.IntentSaveMore},
		{"Tell me about the house", usecase.IntentGoals},
		{"what about my goals and budget", usecase.IntentGoals},
		{"show my BUDGET projection", usecase.IntentBudget},
		{"what does the future hold", usecase.IntentProjection},
		{"projection please", usecase.IntentProjection},
		{"hello", usecase.IntentSummary},
		{"", usecase.IntentSummary},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, usecase.ClassifyQuery(tt.query))
		})
	}
}

func newAdvice(t *testing.T, setup func(r *budgetRepos)) *usecase.AdviceUseCase {
	t.Helper()

	ctrl := gomock.NewController(t)
	repos := newBudgetRepos(ctrl)
	setup(repos)

	return usecase.NewAdviceUseCase(repos.loader(), fixedClock{march15}, nil)
}

func TestAdviceUseCase_StatusWithinBudget(t *testing.T) {
	uc := newAdvice(t, func(r *budgetRepos) {
		r.expectRecords(nil, nil, nil, nil)
		r.goal.EXPECT().ListSelected(gomock.Any()).Return(nil, nil)
	})

	answer, err := uc.Advise(context.Background(), "how did I do")
	require.NoError(t, err)

	assert.Contains(t, answer, "you're doing well!")
	assert.Contains(t, answer, "Your remaining budget for this month is ₹28,000.")
	assert.Contains(t, answer, "out of your daily budget of ₹1,647.")
	assert.NotContains(t, answer, "overspent by")
}

func TestAdviceUseCase_StatusOverspent(t *testing.T) {
	uc := newAdvice(t, func(r *budgetRepos) {
		r.expectRecords(nil, nil, []*domain.MonthlyExpense{
			{ID: "m1", Name: "Rent", Amount: dec("30000"), IsRecurring: true},
		}, nil)
		r.goal.EXPECT().ListSelected(gomock.Any()).Return(nil, nil)
	})

	answer, err := uc.Advise(context.Background(), "How did I do?")
	require.NoError(t, err)

	assert.Contains(t, answer, "facing some challenges")
	assert.Contains(t, answer, "overspent by ₹2,000")
}

func TestAdviceUseCase_GoalContribution(t *testing.T) {
	uc := newAdvice(t, func(r *budgetRepos) {
		r.expectRecords(nil, nil, nil, nil)
		r.goal.EXPECT().ListSelected(gomock.Any()).Return([]*domain.Goal{
			{ID: "g1", Name: "Bike", Amount: dec("24000"), Current: dec("0"), Timeline: "2 years", Selected: true},
		}, nil)
	})

	answer, err := uc.Advise(context.Background(), "how are my goals")
	require.NoError(t, err)

	assert.Contains(t, answer, `For your "Bike" goal (₹24,000), you've saved ₹0 (0%).`)
	assert.Contains(t, answer, "You need to save approximately ₹1,000 monthly to reach this goal in 2 years.")
}

func TestAdviceUseCase_GoalWithoutYears(t *testing.T) {
	uc := newAdvice(t, func(r *budgetRepos) {
		r.expectRecords(nil, nil, nil, nil)
		r.goal.EXPECT().ListSelected(gomock.Any()).Return([]*domain.Goal{
			{ID: "g1", Name: "Trip", Amount: dec("50000"), Current: dec("25000"), Timeline: "soon", Selected: true},
		}, nil)
	})

	answer, err := uc.Advise(context.Background(), "goals")
	require.NoError(t, err)

	assert.Contains(t, answer, "(50%)")
	assert.Contains(t, answer, `Set a timeline in years for this goal (currently "soon")`)
	assert.NotContains(t, answer, "monthly to reach")
}

func TestAdviceUseCase_NoGoals(t *testing.T) {
	uc := newAdvice(t, func(r *budgetRepos) {
		r.expectRecords(nil, nil, nil, nil)
		r.goal.EXPECT().ListSelected(gomock.Any()).Return(nil, nil)
	})

	answer, err := uc.Advise(context.Background(), "when can I buy a house")
	require.NoError(t, err)

	assert.Contains(t, answer, "You don't have any active goals set up yet.")
}

func TestAdviceUseCase_SaveMore(t *testing.T) {
	tests := []struct {
		name     string
		expenses []*domain.DailyExpense
		want     string
	}{
		{
			name: "largest category total wins",
			expenses: []*domain.DailyExpense{
				{ID: "d1", Category: "Food", Amount: dec("300"), Date: "2025-03-14"},
				{ID: "d2", Category: "Travel", Amount: dec("500"), Date: "2025-03-13"},
				{ID: "d3", Category: "Food", Amount: dec("100"), Date: "2025-02-01"},
			},
			want: "spending a lot on Travel.",
		},
		{
			name: "tie goes to first category",
			expenses: []*domain.DailyExpense{
				{ID: "d1", Category: "Coffee", Amount: dec("200"), Date: "2025-03-14"},
				{ID: "d2", Category: "Books", Amount: dec("200"), Date: "2025-03-13"},
			},
			want: "spending a lot on Coffee.",
		},
		{
			name: "no expenses",
			want: "spending a lot on discretionary spending.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newAdvice(t, func(r *budgetRepos) {
				r.expectRecords(nil, nil, nil, tt.expenses)
				r.goal.EXPECT().ListSelected(gomock.Any()).Return(nil, nil)
			})

			answer, err := uc.Advise(context.Background(), "how can I save more")
			require.NoError(t, err)

			assert.Contains(t, answer, tt.want)
			assert.Contains(t, answer, "Try reducing this by 20% next month.")
			assert.Contains(t, answer, "Automate your savings")
		})
	}
}

func TestAdviceUseCase_Budget(t *testing.T) {
	uc := newAdvice(t, func(r *budgetRepos) {
		r.expectRecords(
			&domain.Income{ID: "i1", Amount: dec("50000")},
			&domain.Allocation{ID: "a1", Savings: 20, Needs: 60, Wants: 20},
			[]*domain.MonthlyExpense{{ID: "m1", Name: "Gym", Amount: dec("1500")}},
			[]*domain.DailyExpense{{ID: "d1", Category: "Food", Amount: dec("500"), Date: "2025-03-02"}},
		)
		r.goal.EXPECT().ListSelected(gomock.Any()).Return(nil, nil)
	})

	answer, err := uc.Advise(context.Background(), "explain my budget")
	require.NoError(t, err)

	assert.Contains(t, answer, "• Savings: 20% (₹10,000)")
	assert.Contains(t, answer, "• Needs: 60% (₹30,000)")
	assert.Contains(t, answer, "• Wants: 20% (₹10,000)")
	assert.Contains(t, answer, "• Monthly bills: ₹1,500")
	assert.Contains(t, answer, "• Daily expenses: ₹500")
	assert.Contains(t, answer, "Your remaining budget is ₹38,000.")
}

func TestAdviceUseCase_Projection(t *testing.T) {
	uc := newAdvice(t, func(r *budgetRepos) {
		r.expectRecords(nil, nil, nil, nil)
		r.goal.EXPECT().ListSelected(gomock.Any()).Return(nil, nil)
	})

	answer, err := uc.Advise(context.Background(), "what does my future look like")
	require.NoError(t, err)

	assert.Contains(t, answer, "Monthly savings: ₹12,000")
	assert.Contains(t, answer, "Yearly projection: ₹1,44,000")
	assert.Contains(t, answer, "In 5 years, you could save approximately ₹7,20,000.")
	assert.Contains(t, answer, "In 10 years, you could save approximately ₹14,40,000.")
}

func TestAdviceUseCase_SummaryFallback(t *testing.T) {
	uc := newAdvice(t, func(r *budgetRepos) {
		r.expectRecords(nil, nil, nil, nil)
		r.goal.EXPECT().ListSelected(gomock.Any()).Return(nil, nil)
	})

	answer, err := uc.Advise(context.Background(), "hi there")
	require.NoError(t, err)

	assert.Contains(t, answer, "Income: ₹40,000 monthly")
	assert.Contains(t, answer, "Savings allocation: ₹12,000 (30%)")
	assert.Contains(t, answer, "Remaining budget: ₹28,000")
}

func TestAdviceUseCase_PropagatesFetchError(t *testing.T) {
	dbErr := errors.New("connection refused")

	ctrl := gomock.NewController(t)
	repos := newBudgetRepos(ctrl)
	repos.income.EXPECT().GetLatest(gomock.Any()).Return(nil, dbErr)
	repos.allocation.EXPECT().GetLatest(gomock.Any()).Return(nil, nil).AnyTimes()
	repos.monthly.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
	repos.daily.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
	repos.goal.EXPECT().ListSelected(gomock.Any()).Return(nil, nil).AnyTimes()

	metrics := mocks.NewMockMetricsRecorder(ctrl)

	uc := usecase.NewAdviceUseCase(repos.loader(), fixedClock{march15}, metrics)

	answer, err := uc.Advise(context.Background(), "how did I do")
	require.ErrorIs(t, err, dbErr)
	assert.Empty(t, answer)
}

func TestAdviceUseCase_RecordsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	repos := newBudgetRepos(ctrl)
	repos.expectRecords(nil, nil, nil, nil)
	repos.goal.EXPECT().ListSelected(gomock.Any()).Return(nil, nil)

	metrics := mocks.NewMockMetricsRecorder(ctrl)
	metrics.EXPECT().AdviceServed(string(usecase.IntentProjection))
	metrics.EXPECT().FinanceScoreObserved(100)

	uc := usecase.NewAdviceUseCase(repos.loader(), fixedClock{march15}, metrics)

	_, err := uc.Advise(context.Background(), "projection")
	require.NoError(t, err)
}

func TestAdviceUseCase_Idempotent(t *testing.T) {
	uc := newAdvice(t, func(r *budgetRepos) {
		r.income.EXPECT().GetLatest(gomock.Any()).Return(nil, nil).Times(2)
		r.allocation.EXPECT().GetLatest(gomock.Any()).Return(nil, nil).Times(2)
		r.monthly.EXPECT().List(gomock.Any()).Return(nil, nil).Times(2)
		r.daily.EXPECT().List(gomock.Any()).Return(nil, nil).Times(2)
		r.goal.EXPECT().ListSelected(gomock.Any()).Return(nil, nil).Times(2)
	})

	first, err := uc.Advise(context.Background(), "budget")
	require.NoError(t, err)

	second, err := uc.Advise(context.Background(), "budget")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
)

func TestGoalFromDomain(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("with timeline", func(t *testing.T) {
		g := &domain.Goal{
			ID:        "g-1",
			Name:      "Bike",
			Amount:    decimal.NewFromInt(24000),
			Current:   decimal.NewFromInt(6000),
			Timeline:  "1 year",
			Icon:      "Target",
			Selected:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}

		resp := GoalFromDomain(g)
		assert.Equal(t, "g-1", resp.ID)
		assert.True(t, decimal.NewFromInt(25).Equal(resp.PercentComplete))
		require.NotNil(t, resp.MonthlyContribution)
		assert.True(t, decimal.NewFromInt(1500).Equal(*resp.MonthlyContribution))
	})

	t.Run("without numeric timeline", func(t *testing.T) {
		resp := GoalFromDomain(&domain.Goal{Amount: decimal.NewFromInt(100), Timeline: "someday"})
		assert.Nil(t, resp.MonthlyContribution)
	})
}

func TestListResponsesSumTotals(t *testing.T) {
	monthly := NewListMonthlyExpensesResponse([]*domain.MonthlyExpense{
		{ID: "m-1", Amount: decimal.NewFromInt(900)},
		{ID: "m-2", Amount: decimal.NewFromInt(267)},
	})
	assert.Len(t, monthly.Expenses, 2)
	assert.True(t, decimal.NewFromInt(1167).Equal(monthly.Total))

	daily := NewListDailyExpensesResponse(nil)
	assert.Empty(t, daily.Expenses)
	assert.NotNil(t, daily.Expenses)
	assert.True(t, daily.Total.IsZero())
}

func TestMetricsFromDomainRoundsToPaise(t *testing.T) {
	m := domain.BudgetMetrics{
		DailyBudget:  decimal.RequireFromString("1647.0588235"),
		FinanceScore: 72,
	}

	resp := MetricsFromDomain(m)
	assert.Equal(t, "1647.06", resp.DailyBudget.String())
	assert.Equal(t, 72, resp.FinanceScore)
}

func TestDashboardFromUseCase(t *testing.T) {
	d := &usecase.Dashboard{
		Income:     decimal.NewFromInt(50000),
		Allocation: domain.Allocation{Savings: 30, Needs: 50, Wants: 20},
		Goals:      []*domain.Goal{{ID: "g-1", Amount: decimal.NewFromInt(10)}},
		DailyExpenses: []*domain.DailyExpense{
			{ID: "d-1", Amount: decimal.NewFromInt(100), Category: "Food", Date: "2025-03-15"},
		},
		AllocationData: []usecase.AllocationSlice{
			{Name: "Savings", Amount: decimal.NewFromInt(15000), Color: "#3b82f6"},
		},
	}

	resp := DashboardFromUseCase(d)
	assert.Equal(t, 30, resp.Allocation.Savings)
	require.Len(t, resp.Goals, 1)
	require.Len(t, resp.DailyExpenses, 1)
	assert.Equal(t, "Food", resp.DailyExpenses[0].Category)
	assert.Empty(t, resp.MonthlyExpenses)
	assert.Equal(t, "#3b82f6", resp.AllocationData[0].Color)
}

func TestConversationFromDomain(t *testing.T) {
	resp := ConversationFromDomain([]domain.Message{{Role: domain.RoleAssistant, Content: "Hi"}})

	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "assistant", resp.Messages[0].Role)
	assert.Equal(t, "Hi", resp.Messages[0].Content)
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
)

// Intent is the topic a mentor query is classified as.
type Intent string

const (
	IntentStatus     Intent = "status"
	IntentSaveMore   Intent = "save_more"
	IntentGoals      Intent = "goals"
	IntentBudget     Intent = "budget"
	IntentProjection Intent = "projection"
	IntentSummary    Intent = "summary"
)

const (
	fallbackCategory = "discretionary spending"

	noGoalsAdvice = "You don't have any active goals set up yet. Go to the Goals section to set up your financial goals, and I can help you track your progress toward them."

	saveMoreTips = `Also, consider these strategies:

1. Automate your savings by setting up an automatic transfer on payday
2. Follow the 24-hour rule for non-essential purchases over ₹1,000
3. Look for subscriptions you can cancel or share with family
4. Try meal planning to reduce food expenses

If you can increase your monthly savings by ₹3,000, you'll add ₹36,000 to your yearly savings!`
)

// adviceView is what a rule renders from.
type adviceView struct {
	snapshot *Snapshot
	metrics  domain.BudgetMetrics
}

type adviceRule struct {
	intent   Intent
	keywords []string
	render   func(v adviceView) string
}

// adviceRules is evaluated in order; the first rule with a keyword contained
// in the lowercased query wins.
var adviceRules = []adviceRule{
	{intent: IntentStatus, keywords: []string{"how did i do"}, render: renderStatus},
	{intent: IntentSaveMore, keywords: []string{"save more"}, render: renderSaveMore},
	{intent: IntentGoals, keywords: []string{"goals", "house"}, render: renderGoals},
	{intent: IntentBudget, keywords: []string{"budget"}, render: renderBudget},
	{intent: IntentProjection, keywords: []string{"projection", "future"}, render: renderProjection},
}

var summaryRule = adviceRule{intent: IntentSummary, render: renderSummary}

// ClassifyQuery returns the intent a query resolves to.
func ClassifyQuery(query string) Intent {
	return matchRule(query).intent
}

func matchRule(query string) adviceRule {
	q := strings.ToLower(query)
	for _, rule := range adviceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return rule
			}
		}
	}

	return summaryRule
}

// AdviceUseCase answers free-text questions about the user's finances with
// deterministic rules.
type AdviceUseCase struct {
	loader  *SnapshotLoader
	clock   Clock
	metrics MetricsRecorder
}

// NewAdviceUseCase creates a new AdviceUseCase. metrics may be nil.
func NewAdviceUseCase(loader *SnapshotLoader, clock Clock, metrics MetricsRecorder) *AdviceUseCase {
	return &AdviceUseCase{
		loader:  loader,
		clock:   clock,
		metrics: metricsOrNop(metrics),
	}
}

// Advise loads the current snapshot and renders the answer for query.
// Queries matching no topic get the general summary.
func (uc *AdviceUseCase) Advise(ctx context.Context, query string) (string, error) {
	snap, err := uc.loader.Load(ctx, GoalsSelected)
	if err != nil {
		return "", err
	}

	metrics := domain.CalculateBudget(snap.BudgetInput(), uc.clock.Now())
	rule := matchRule(query)

	uc.metrics.AdviceServed(string(rule.intent))
	uc.metrics.FinanceScoreObserved(metrics.FinanceScore)

	return rule.render(adviceView{snapshot: snap, metrics: metrics}), nil
}

func renderStatus(v adviceView) string {
	m := v.metrics

	outlook := "doing well"
	if m.RemainingBudget.IsNegative() {
		outlook = "facing some challenges"
	}

	return fmt.Sprintf(`Based on your financial data, you're %s!

Your monthly income is %s and you've spent %s so far this month.

Today, you've spent %s out of your daily budget of %s.

Your remaining budget for this month is %s.`,
		outlook,
		domain.FormatINR(v.snapshot.Income),
		domain.FormatINR(m.TotalSpent),
		domain.FormatINR(m.TotalSpentToday),
		domain.FormatINR(m.DailyBudget.Round(0)),
		domain.FormatBalance(m.RemainingBudget),
	)
}

func renderSaveMore(v adviceView) string {
	return fmt.Sprintf("Looking at your expenses, I notice you're spending a lot on %s. Try reducing this by 20%% next month.\n\n%s",
		topCategory(v.snapshot.DailyExpenses), saveMoreTips)
}

// topCategory returns the category with the largest total across all daily
// expenses. Ties go to the category seen first.
func topCategory(expenses []*domain.DailyExpense) string {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for _, e := range expenses {
		if _, ok := totals[e.Category]; !ok {
			order = append(order, e.Category)
		}
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}

	top := fallbackCategory
	best := decimal.Zero
	for i, category := range order {
		if i == 0 || totals[category].GreaterThan(best) {
			top, best = category, totals[category]
		}
	}

	return top
}

func renderGoals(v adviceView) string {
	if len(v.snapshot.Goals) == 0 {
		return noGoalsAdvice
	}

	paragraphs := make([]string, 0, len(v.snapshot.Goals))
	for _, g := range v.snapshot.Goals {
		paragraphs = append(paragraphs, renderGoal(g))
	}

	return strings.Join(paragraphs, "\n\n")
}

func renderGoal(g *domain.Goal) string {
	progress := fmt.Sprintf(`For your "%s" goal (%s), you've saved %s (%s%%).`,
		g.Name, domain.FormatINR(g.Amount), domain.FormatINR(g.Current), g.PercentComplete())

	contribution, ok := g.MonthlyContribution()
	if !ok {
		return fmt.Sprintf("%s\n\nSet a timeline in years for this goal (currently %q) and I can work out how much to save each month.",
			progress, g.Timeline)
	}

	return fmt.Sprintf("%s\n\nYou need to save approximately %s monthly to reach this goal in %s.",
		progress, domain.FormatINR(contribution.Round(0)), g.Timeline)
}

func renderBudget(v adviceView) string {
	a, m := v.snapshot.Allocation, v.metrics

	return fmt.Sprintf(`Your current budget allocation is:

• Savings: %d%% (%s)
• Needs: %d%% (%s)
• Wants: %d%% (%s)

So far this month, you've spent:
• Monthly bills: %s
• Daily expenses: %s

Your remaining budget is %s.

Your daily budget for the rest of the month is %s.`,
		a.Savings, domain.FormatINR(m.Amounts.Savings),
		a.Needs, domain.FormatINR(m.Amounts.Needs),
		a.Wants, domain.FormatINR(m.Amounts.Wants),
		domain.FormatINR(m.TotalMonthlyExpenses),
		domain.FormatINR(m.TotalDailyExpensesThisMonth),
		domain.FormatBalance(m.RemainingBudget),
		domain.FormatINR(m.DailyBudget.Round(0)),
	)
}

func renderProjection(v adviceView) string {
	m := v.metrics

	return fmt.Sprintf(`Based on your current savings rate, here's your financial projection:

Monthly savings: %s
Yearly projection: %s

In 5 years, you could save approximately %s.
In 10 years, you could save approximately %s.

This doesn't account for investment returns, which could significantly increase these amounts. Consider investing your savings for long-term growth.`,
		domain.FormatINR(m.MonthlySavings),
		domain.FormatINR(m.YearlyProjection),
		domain.FormatINR(m.YearlyProjection.Mul(decimal.NewFromInt(5))),
		domain.FormatINR(m.YearlyProjection.Mul(decimal.NewFromInt(10))),
	)
}

func renderSummary(v adviceView) string {
	m := v.metrics

	return fmt.Sprintf(`Based on your financial data, here's a quick summary:

Income: %s monthly
Savings allocation: %s (%d%%)
Expenses this month: %s
Remaining budget: %s

You can ask me specific questions about your budget, goals, savings projections, or how to save more money.`,
		domain.FormatINR(v.snapshot.Income),
		domain.FormatINR(m.Amounts.Savings), v.snapshot.Allocation.Savings,
		domain.FormatINR(m.TotalSpent),
		domain.FormatBalance(m.RemainingBudget),
	)
}

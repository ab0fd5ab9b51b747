package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
)

// IncomeResponse represents an income record in API responses.
type IncomeResponse struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// IncomeFromDomain converts a domain income to response.
func IncomeFromDomain(i *domain.Income) *IncomeResponse {
	return &IncomeResponse{
		ID:        i.ID,
		Amount:    i.Amount,
		CreatedAt: i.CreatedAt,
	}
}

// AllocationResponse represents the budget split in API responses.
type AllocationResponse struct {
	ID        string    `json:"id,omitempty"`
	Savings   int       `json:"savings"`
	Needs     int       `json:"needs"`
	Wants     int       `json:"wants"`
	CreatedAt time.Time `json:"created_at"`
}

// AllocationFromDomain converts a domain allocation to response.
func AllocationFromDomain(a *domain.Allocation) *AllocationResponse {
	return &AllocationResponse{
		ID:        a.ID,
		Savings:   a.Savings,
		Needs:     a.Needs,
		Wants:     a.Wants,
		CreatedAt: a.CreatedAt,
	}
}

// GoalResponse represents a savings goal in API responses.
type GoalResponse struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Amount              decimal.Decimal  `json:"amount"`
	Current             decimal.Decimal  `json:"current"`
	Timeline            string           `json:"timeline"`
	Icon                string           `json:"icon"`
	Selected            bool             `json:"selected"`
	PercentComplete     decimal.Decimal  `json:"percent_complete"`
	MonthlyContribution *decimal.Decimal `json:"monthly_contribution,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// GoalFromDomain converts a domain goal to response.
func GoalFromDomain(g *domain.Goal) *GoalResponse {
	resp := &GoalResponse{
		ID:              g.ID,
		Name:            g.Name,
		Amount:          g.Amount,
		Current:         g.Current,
		Timeline:        g.Timeline,
		Icon:            g.Icon,
		Selected:        g.Selected,
		PercentComplete: g.PercentComplete(),
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
	if monthly, ok := g.MonthlyContribution(); ok {
		resp.MonthlyContribution = &monthly
	}

	return resp
}

// GoalsFromDomain converts domain goals to responses.
func GoalsFromDomain(goals []*domain.Goal) []*GoalResponse {
	result := make([]*GoalResponse, len(goals))
	for i, g := range goals {
		result[i] = GoalFromDomain(g)
	}
	return result
}

// ListGoalsResponse represents a list of goals.
type ListGoalsResponse struct {
	Goals []*GoalResponse `json:"goals"`
	Total int             `json:"total"`
}

// MonthlyExpenseResponse represents a monthly bill in API responses.
type MonthlyExpenseResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	IsRecurring bool            `json:"is_recurring"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MonthlyExpenseFromDomain converts a domain monthly expense to response.
func MonthlyExpenseFromDomain(e *domain.MonthlyExpense) *MonthlyExpenseResponse {
	return &MonthlyExpenseResponse{
		ID:          e.ID,
		Name:        e.Name,
		Amount:      e.Amount,
		IsRecurring: e.IsRecurring,
		CreatedAt:   e.CreatedAt,
	}
}

// MonthlyExpensesFromDomain converts domain monthly expenses to responses.
func MonthlyExpensesFromDomain(expenses []*domain.MonthlyExpense) []*MonthlyExpenseResponse {
	result := make([]*MonthlyExpenseResponse, len(expenses))
	for i, e := range expenses {
		result[i] = MonthlyExpenseFromDomain(e)
	}
	return result
}

// ListMonthlyExpensesResponse represents a list of monthly expenses.
type ListMonthlyExpensesResponse struct {
	Expenses []*MonthlyExpenseResponse `json:"expenses"`
	Total    decimal.Decimal           `json:"total"`
}

// NewListMonthlyExpensesResponse sums the expenses into the response.
func NewListMonthlyExpensesResponse(expenses []*domain.MonthlyExpense) ListMonthlyExpensesResponse {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	return ListMonthlyExpensesResponse{
		Expenses: MonthlyExpensesFromDomain(expenses),
		Total:    total,
	}
}

// DailyExpenseResponse represents a daily spend in API responses.
type DailyExpenseResponse struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Notes     string          `json:"notes"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

// DailyExpenseFromDomain converts a domain daily expense to response.
func DailyExpenseFromDomain(e *domain.DailyExpense) *DailyExpenseResponse {
	return &DailyExpenseResponse{
		ID:        e.ID,
		Amount:    e.Amount,
		Category:  e.Category,
		Notes:     e.Notes,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
	}
}

// ListDailyExpensesResponse represents a list of daily expenses.
type ListDailyExpensesResponse struct {
	Expenses []*DailyExpenseResponse `json:"expenses"`
	Total    decimal.Decimal         `json:"total"`
}

// NewListDailyExpensesResponse sums the expenses into the response.
func NewListDailyExpensesResponse(expenses []*domain.DailyExpense) ListDailyExpensesResponse {
	resp := ListDailyExpensesResponse{
		Expenses: make([]*DailyExpenseResponse, len(expenses)),
		Total:    decimal.Zero,
	}
	for i, e := range expenses {
		resp.Expenses[i] = DailyExpenseFromDomain(e)
		resp.Total = resp.Total.Add(e.Amount)
	}

	return resp
}

// MetricsResponse carries every derived budget figure.
type MetricsResponse struct {
	SavingsAmount               decimal.Decimal `json:"savings_amount"`
	NeedsAmount                 decimal.Decimal `json:"needs_amount"`
	WantsAmount                 decimal.Decimal `json:"wants_amount"`
	TotalMonthlyExpenses        decimal.Decimal `json:"total_monthly_expenses"`
	TotalDailyExpensesThisMonth decimal.Decimal `json:"total_daily_expenses_this_month"`
	TotalSpentToday             decimal.Decimal `json:"total_spent_today"`
	TotalBudget                 decimal.Decimal `json:"total_budget"`
	TotalSpent                  decimal.Decimal `json:"total_spent"`
	RemainingBudget             decimal.Decimal `json:"remaining_budget"`
	DailyBudget                 decimal.Decimal `json:"daily_budget"`
	MonthlySavings              decimal.Decimal `json:"monthly_savings"`
	YearlyProjection            decimal.Decimal `json:"yearly_projection"`
	FinanceScore                int             `json:"finance_score"`
	DaysRemainingInMonth        int             `json:"days_remaining_in_month"`
}

// MetricsFromDomain converts budget metrics to response. Money figures are
// rounded to paise for display.
func MetricsFromDomain(m domain.BudgetMetrics) MetricsResponse {
	return MetricsResponse{
		SavingsAmount:               m.Amounts.Savings.Round(2),
		NeedsAmount:                 m.Amounts.Needs.Round(2),
		WantsAmount:                 m.Amounts.Wants.Round(2),
		TotalMonthlyExpenses:        m.TotalMonthlyExpenses.Round(2),
		TotalDailyExpensesThisMonth: m.TotalDailyExpensesThisMonth.Round(2),
		TotalSpentToday:             m.TotalSpentToday.Round(2),
		TotalBudget:                 m.TotalBudget.Round(2),
		TotalSpent:                  m.TotalSpent.Round(2),
		RemainingBudget:             m.RemainingBudget.Round(2),
		DailyBudget:                 m.DailyBudget.Round(2),
		MonthlySavings:              m.MonthlySavings.Round(2),
		YearlyProjection:            m.YearlyProjection.Round(2),
		FinanceScore:                m.FinanceScore,
		DaysRemainingInMonth:        m.DaysRemainingInMonth,
	}
}

// AllocationSliceResponse is one wedge of the allocation chart.
type AllocationSliceResponse struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Color  string          `json:"color"`
}

// DashboardResponse represents the full dashboard.
type DashboardResponse struct {
	Income          decimal.Decimal           `json:"income"`
	Allocation      *AllocationResponse       `json:"allocation"`
	Goals           []*GoalResponse           `json:"goals"`
	MonthlyExpenses []*MonthlyExpenseResponse `json:"monthly_expenses"`
	DailyExpenses   []*DailyExpenseResponse   `json:"daily_expenses"`
	AllocationData  []AllocationSliceResponse `json:"allocation_data"`
	Metrics         MetricsResponse           `json:"metrics"`
}

// DashboardFromUseCase converts a dashboard to response.
func DashboardFromUseCase(d *usecase.Dashboard) *DashboardResponse {
	daily := make([]*DailyExpenseResponse, len(d.DailyExpenses))
	for i, e := range d.DailyExpenses {
		daily[i] = DailyExpenseFromDomain(e)
	}

	slices := make([]AllocationSliceResponse, len(d.AllocationData))
	for i, s := range d.AllocationData {
		slices[i] = AllocationSliceResponse{Name: s.Name, Amount: s.Amount.Round(2), Color: s.Color}
	}

	return &DashboardResponse{
		Income:          d.Income,
		Allocation:      AllocationFromDomain(&d.Allocation),
		Goals:           GoalsFromDomain(d.Goals),
		MonthlyExpenses: MonthlyExpensesFromDomain(d.MonthlyExpenses),
		DailyExpenses:   daily,
		AllocationData:  slices,
		Metrics:         MetricsFromDomain(d.Metrics),
	}
}

// SummaryResponse represents the headline figures.
type SummaryResponse struct {
	Income     decimal.Decimal     `json:"income"`
	Allocation *AllocationResponse `json:"allocation"`
	Metrics    MetricsResponse     `json:"metrics"`
}

// SummaryFromUseCase converts a summary to response.
func SummaryFromUseCase(s *usecase.Summary) *SummaryResponse {
	return &SummaryResponse{
		Income:     s.Income,
		Allocation: AllocationFromDomain(&s.Allocation),
		Metrics:    MetricsFromDomain(s.Metrics),
	}
}

// CategoryTotalResponse is the spend of one category this month.
type CategoryTotalResponse struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// TrendPointResponse is one day of the spending trend.
type TrendPointResponse struct {
	Name   string          `json:"name"`
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Budget decimal.Decimal `json:"budget"`
}

// ProjectionPointResponse is one month of the savings projection.
type ProjectionPointResponse struct {
	Name        string          `json:"name"`
	Year        int             `json:"year"`
	Projected   decimal.Decimal `json:"projected"`
	Accumulated decimal.Decimal `json:"accumulated"`
}

// CategoryTotalsFromUseCase converts category totals to responses.
func CategoryTotalsFromUseCase(totals []usecase.CategoryTotal) []CategoryTotalResponse {
	result := make([]CategoryTotalResponse, len(totals))
	for i, c := range totals {
		result[i] = CategoryTotalResponse{Name: c.Name, Amount: c.Amount}
	}
	return result
}

// TrendFromUseCase converts trend points to responses.
func TrendFromUseCase(points []usecase.TrendPoint) []TrendPointResponse {
	result := make([]TrendPointResponse, len(points))
	for i, p := range points {
		result[i] = TrendPointResponse{Name: p.Name, Date: p.Date, Amount: p.Amount, Budget: p.Budget.Round(2)}
	}
	return result
}

// ProjectionFromUseCase converts projection points to responses.
func ProjectionFromUseCase(points []usecase.ProjectionPoint) []ProjectionPointResponse {
	result := make([]ProjectionPointResponse, len(points))
	for i, p := range points {
		result[i] = ProjectionPointResponse{
			Name:        p.Name,
			Year:        p.Year,
			Projected:   p.Projected.Round(2),
			Accumulated: p.Accumulated.Round(2),
		}
	}
	return result
}

// AdviceResponse carries the mentor's reply.
type AdviceResponse struct {
	Advice string `json:"advice"`
}

// ConversationResponse carries the stored transcript.
type ConversationResponse struct {
	Messages []MessageDTO `json:"messages"`
}

// ConversationFromDomain converts domain messages to response.
func ConversationFromDomain(messages []domain.Message) ConversationResponse {
	result := make([]MessageDTO, len(messages))
	for i, m := range messages {
		result[i] = MessageDTO{Role: string(m.Role), Content: m.Content, Timestamp: m.Timestamp}
	}
	return ConversationResponse{Messages: result}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

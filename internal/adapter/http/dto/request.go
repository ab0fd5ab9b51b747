package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
)

// UpdateIncomeRequest represents a request to record a new monthly income.
type UpdateIncomeRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// UpdateAllocationRequest represents a request to change the budget split.
type UpdateAllocationRequest struct {
	Savings int `json:"savings"`
	Needs   int `json:"needs"`
	Wants   int `json:"wants"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateAllocationRequest) ToUseCaseInput() usecase.UpdateAllocationInput {
	return usecase.UpdateAllocationInput{
		Savings: r.Savings,
		Needs:   r.Needs,
		Wants:   r.Wants,
	}
}

// CreateGoalRequest represents a request to create a savings goal.
type CreateGoalRequest struct {
	Name     string           `json:"name"`
	Amount   decimal.Decimal  `json:"amount"`
	Current  *decimal.Decimal `json:"current,omitempty"`
	Timeline string           `json:"timeline"`
	Icon     string           `json:"icon,omitempty"`
	Selected *bool            `json:"selected,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateGoalRequest) ToUseCaseInput() usecase.CreateGoalInput {
	input := usecase.CreateGoalInput{
		Name:     r.Name,
		Amount:   r.Amount,
		Timeline: r.Timeline,
		Icon:     r.Icon,
		Selected: r.Selected,
	}
	if r.Current != nil {
		input.Current = *r.Current
	}

	return input
}

// UpdateGoalRequest is a partial goal update; absent fields are kept.
type UpdateGoalRequest struct {
	Name     *string          `json:"name,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Current  *decimal.Decimal `json:"current,omitempty"`
	Timeline *string          `json:"timeline,omitempty"`
	Icon     *string          `json:"icon,omitempty"`
	Selected *bool            `json:"selected,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateGoalRequest) ToUseCaseInput() usecase.UpdateGoalInput {
	return usecase.UpdateGoalInput{
		Name:     r.Name,
		Amount:   r.Amount,
		Current:  r.Current,
		Timeline: r.Timeline,
		Icon:     r.Icon,
		Selected: r.Selected,
	}
}

// CreateMonthlyExpenseRequest represents a request to add a monthly bill.
type CreateMonthlyExpenseRequest struct {
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	IsRecurring *bool           `json:"is_recurring,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateMonthlyExpenseRequest) ToUseCaseInput() usecase.CreateMonthlyExpenseInput {
	return usecase.CreateMonthlyExpenseInput{
		Name:        r.Name,
		Amount:      r.Amount,
		IsRecurring: r.IsRecurring,
	}
}

// CreateDailyExpenseRequest represents a request to log a daily spend.
type CreateDailyExpenseRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Notes    string          `json:"notes,omitempty"`
	Date     string          `json:"date"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateDailyExpenseRequest) ToUseCaseInput() usecase.CreateDailyExpenseInput {
	return usecase.CreateDailyExpenseInput{
		Amount:   r.Amount,
		Category: r.Category,
		Notes:    r.Notes,
		Date:     r.Date,
	}
}

// AdviceRequest carries a question for the mentor.
type AdviceRequest struct {
	Query string `json:"query"`
}

// MessageDTO is one transcript entry on the wire.
type MessageDTO struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// SaveConversationRequest replaces the stored transcript.
type SaveConversationRequest struct {
	Messages []MessageDTO `json:"messages"`
}

// ToDomain converts the transcript to domain messages.
func (r *SaveConversationRequest) ToDomain() []domain.Message {
	messages := make([]domain.Message, len(r.Messages))
	for i, m := range r.Messages {
		messages[i] = domain.Message{
			Role:      domain.Role(m.Role),
			Content:   m.Content,
			Timestamp: m.Timestamp,
		}
	}

	return messages
}

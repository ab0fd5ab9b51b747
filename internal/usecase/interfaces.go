package usecase

import (
	"context"
	"time"

	"github.com/iho/gobudget/internal/domain"
)

// IncomeRepository defines data access for income records.
type IncomeRepository interface {
	Create(ctx context.Context, income *domain.Income) error
	// GetLatest returns nil, nil when no income has been recorded.
	GetLatest(ctx context.Context) (*domain.Income, error)
}

// AllocationRepository defines data access for allocation records.
type AllocationRepository interface {
	Create(ctx context.Context, allocation *domain.Allocation) error
	// GetLatest returns nil, nil when no allocation has been recorded.
	GetLatest(ctx context.Context) (*domain.Allocation, error)
}

// MonthlyExpenseRepository defines data access for monthly expenses.
type MonthlyExpenseRepository interface {
	Create(ctx context.Context, expense *domain.MonthlyExpense) error
	CreateTx(ctx context.Context, tx Transaction, expense *domain.MonthlyExpense) error
	CountTx(ctx context.Context, tx Transaction) (int, error)
	List(ctx context.Context) ([]*domain.MonthlyExpense, error)
	Delete(ctx context.Context, id string) error
}

// DailyExpenseRepository defines data access for daily expenses.
// Lists are ordered newest date first.
type DailyExpenseRepository interface {
	Create(ctx context.Context, expense *domain.DailyExpense) error
	List(ctx context.Context) ([]*domain.DailyExpense, error)
	ListByDate(ctx context.Context, date string) ([]*domain.DailyExpense, error)
	ListByDateRange(ctx context.Context, from, to string) ([]*domain.DailyExpense, error)
	Delete(ctx context.Context, id string) error
}

// GoalRepository defines data access for goals.
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) error
	CreateTx(ctx context.Context, tx Transaction, goal *domain.Goal) error
	CountTx(ctx context.Context, tx Transaction) (int, error)
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context) ([]*domain.Goal, error)
	ListSelected(ctx context.Context) ([]*domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) error
	Delete(ctx context.Context, id string) error
}

// ConversationRepository stores the single mentor transcript.
type ConversationRepository interface {
	List(ctx context.Context) ([]domain.Message, error)
	ReplaceTx(ctx context.Context, tx Transaction, messages []domain.Message) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation on transient storage errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock supplies the current time. Budget figures are computed for the
// calendar day of Now in the clock's location.
type Clock interface {
	Now() time.Time
}

// MetricsRecorder receives domain events for monitoring.
type MetricsRecorder interface {
	AdviceServed(intent string)
	ExpenseCreated(kind string)
	FinanceScoreObserved(score int)
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a claimed key so the request can be retried.
	Release(ctx context.Context, key string) error
}

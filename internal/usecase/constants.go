package usecase

import "time"

const (
	// DefaultTransactionTimeout bounds seeding and transcript transactions.
	DefaultTransactionTimeout = 10 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// Expense kinds reported to MetricsRecorder.
	ExpenseKindMonthly = "monthly"
	ExpenseKindDaily   = "daily"
)

package domain

import "errors"

var (
	// Expense errors
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidExpenseName = errors.New("invalid expense name")
	ErrInvalidCategory    = errors.New("invalid expense category")
	ErrInvalidDate        = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidMonth       = errors.New("invalid year or month")
	ErrNotesTooLong       = errors.New("notes are too long")

	// Allocation errors
	ErrMissingAllocation = errors.New("savings, needs, and wants percentages are required")
	ErrInvalidAllocation = errors.New("allocation percentages must sum to 100")

	// Goal errors
	ErrGoalNotFound    = errors.New("goal not found")
	ErrInvalidGoalName = errors.New("invalid goal name")
	ErrInvalidTimeline = errors.New("goal timeline is required")
	ErrInvalidCurrent  = errors.New("current savings must be non-negative with at most two decimals")

	// Mentor errors
	ErrEmptyQuery     = errors.New("query is required")
	ErrQueryTooLong   = errors.New("query is too long")
	ErrInvalidMessage = errors.New("invalid conversation message")
)

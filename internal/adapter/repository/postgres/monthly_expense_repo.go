package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
)

const insertMonthlyExpense = `
	INSERT INTO monthly_expenses (id, name, amount, is_recurring, created_at)
	VALUES ($1, $2, $3, $4, $5)
`

// MonthlyExpenseRepository implements usecase.MonthlyExpenseRepository.
type MonthlyExpenseRepository struct {
	db querier
}

// NewMonthlyExpenseRepository creates a new MonthlyExpenseRepository.
func NewMonthlyExpenseRepository(pool *pgxpool.Pool) *MonthlyExpenseRepository {
	return newMonthlyExpenseRepository(pool)
}

func newMonthlyExpenseRepository(db querier) *MonthlyExpenseRepository {
	return &MonthlyExpenseRepository{db: db}
}

// Create inserts a monthly expense.
func (r *MonthlyExpenseRepository) Create(ctx context.Context, expense *domain.MonthlyExpense) error {
	return r.create(ctx, r.db, expense)
}

// CreateTx inserts a monthly expense within a transaction.
func (r *MonthlyExpenseRepository) CreateTx(ctx context.Context, tx usecase.Transaction, expense *domain.MonthlyExpense) error {
	return r.create(ctx, txQuerier(tx), expense)
}

func (r *MonthlyExpenseRepository) create(ctx context.Context, q querier, e *domain.MonthlyExpense) error {
	_, err := q.Exec(ctx, insertMonthlyExpense,
		e.ID,
		e.Name,
		decimalToNumeric(e.Amount),
		e.IsRecurring,
		timeToPgTimestamptz(e.CreatedAt),
	)

	return err
}

// CountTx locks the table and counts its rows.
func (r *MonthlyExpenseRepository) CountTx(ctx context.Context, tx usecase.Transaction) (int, error) {
	return lockAndCount(ctx, tx, "monthly_expenses")
}

// List returns all monthly expenses in insertion order.
func (r *MonthlyExpenseRepository) List(ctx context.Context) ([]*domain.MonthlyExpense, error) {
	query := `
		SELECT id, name, amount, is_recurring, created_at
		FROM monthly_expenses
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]*domain.MonthlyExpense, 0)
	for rows.Next() {
		var (
			e      domain.MonthlyExpense
			amount pgtype.Numeric
		)

		if err := rows.Scan(&e.ID, &e.Name, &amount, &e.IsRecurring, &e.CreatedAt); err != nil {
			return nil, err
		}

		e.Amount = numericToDecimal(amount)
		expenses = append(expenses, &e)
	}

	return expenses, rows.Err()
}

// Delete removes a monthly expense.
func (r *MonthlyExpenseRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM monthly_expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}

	return nil
}

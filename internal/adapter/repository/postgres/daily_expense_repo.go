package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobudget/internal/domain"
)

const selectDailyExpenses = `
	SELECT id, amount, category, notes, to_char(expense_date, 'YYYY-MM-DD'), created_at
	FROM daily_expenses
`

const dailyExpenseOrder = ` ORDER BY expense_date DESC, created_at DESC, id DESC`

// DailyExpenseRepository implements usecase.DailyExpenseRepository.
type DailyExpenseRepository struct {
	db querier
}

// NewDailyExpenseRepository creates a new DailyExpenseRepository.
func NewDailyExpenseRepository(pool *pgxpool.Pool) *DailyExpenseRepository {
	return newDailyExpenseRepository(pool)
}

func newDailyExpenseRepository(db querier) *DailyExpenseRepository {
	return &DailyExpenseRepository{db: db}
}

// Create inserts a daily expense.
func (r *DailyExpenseRepository) Create(ctx context.Context, expense *domain.DailyExpense) error {
	query := `
		INSERT INTO daily_expenses (id, amount, category, notes, expense_date, created_at)
		VALUES ($1, $2, $3, $4, $5::date, $6)
	`

	_, err := r.db.Exec(ctx, query,
		expense.ID,
		decimalToNumeric(expense.Amount),
		expense.Category,
		expense.Notes,
		expense.Date,
		timeToPgTimestamptz(expense.CreatedAt),
	)

	return err
}

// List returns every daily expense, newest first.
func (r *DailyExpenseRepository) List(ctx context.Context) ([]*domain.DailyExpense, error) {
	rows, err := r.db.Query(ctx, selectDailyExpenses+dailyExpenseOrder)
	if err != nil {
		return nil, err
	}

	return scanDailyExpenses(rows)
}

// ListByDate returns the expenses of one day.
func (r *DailyExpenseRepository) ListByDate(ctx context.Context, date string) ([]*domain.DailyExpense, error) {
	rows, err := r.db.Query(ctx, selectDailyExpenses+` WHERE expense_date = $1::date`+dailyExpenseOrder, date)
	if err != nil {
		return nil, err
	}

	return scanDailyExpenses(rows)
}

// ListByDateRange returns the expenses between from and to inclusive.
func (r *DailyExpenseRepository) ListByDateRange(ctx context.Context, from, to string) ([]*domain.DailyExpense, error) {
	rows, err := r.db.Query(ctx,
		selectDailyExpenses+` WHERE expense_date BETWEEN $1::date AND $2::date`+dailyExpenseOrder,
		from, to,
	)
	if err != nil {
		return nil, err
	}

	return scanDailyExpenses(rows)
}

// Delete removes a daily expense.
func (r *DailyExpenseRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM daily_expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}

	return nil
}

func scanDailyExpenses(rows pgx.Rows) ([]*domain.DailyExpense, error) {
	defer rows.Close()

	expenses := make([]*domain.DailyExpense, 0)
	for rows.Next() {
		var (
			e      domain.DailyExpense
			amount pgtype.Numeric
		)

		if err := rows.Scan(&e.ID, &amount, &e.Category, &e.Notes, &e.Date, &e.CreatedAt); err != nil {
			return nil, err
		}

		e.Amount = numericToDecimal(amount)
		expenses = append(expenses, &e)
	}

	return expenses, rows.Err()
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobudget/internal/domain"
)

// IncomeRepository implements usecase.IncomeRepository.
type IncomeRepository struct {
	db querier
}

// NewIncomeRepository creates a new IncomeRepository.
func NewIncomeRepository(pool *pgxpool.Pool) *IncomeRepository {
	return newIncomeRepository(pool)
}

func newIncomeRepository(db querier) *IncomeRepository {
	return &IncomeRepository{db: db}
}

// Create inserts an income record.
func (r *IncomeRepository) Create(ctx context.Context, income *domain.Income) error {
	query := `
		INSERT INTO incomes (id, amount, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query,
		income.ID,
		decimalToNumeric(income.Amount),
		timeToPgTimestamptz(income.CreatedAt),
	)

	return err
}

// GetLatest returns the most recent income, or nil when none exists.
func (r *IncomeRepository) GetLatest(ctx context.Context) (*domain.Income, error) {
	query := `
		SELECT id, amount, created_at
		FROM incomes
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var (
		income domain.Income
		amount pgtype.Numeric
	)

	err := r.db.QueryRow(ctx, query).Scan(&income.ID, &amount, &income.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	income.Amount = numericToDecimal(amount)

	return &income, nil
}

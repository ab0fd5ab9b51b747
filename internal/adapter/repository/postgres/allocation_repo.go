package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobudget/internal/domain"
)

// AllocationRepository implements usecase.AllocationRepository.
type AllocationRepository struct {
	db querier
}

// NewAllocationRepository creates a new AllocationRepository.
func NewAllocationRepository(pool *pgxpool.Pool) *AllocationRepository {
	return newAllocationRepository(pool)
}

func newAllocationRepository(db querier) *AllocationRepository {
	return &AllocationRepository{db: db}
}

// Create inserts an allocation record.
func (r *AllocationRepository) Create(ctx context.Context, allocation *domain.Allocation) error {
	query := `
		INSERT INTO allocations (id, savings, needs, wants, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		allocation.ID,
		allocation.Savings,
		allocation.Needs,
		allocation.Wants,
		timeToPgTimestamptz(allocation.CreatedAt),
	)

	return err
}

// GetLatest returns the most recent allocation, or nil when none exists.
func (r *AllocationRepository) GetLatest(ctx context.Context) (*domain.Allocation, error) {
	query := `
		SELECT id, savings, needs, wants, created_at
		FROM allocations
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var a domain.Allocation
	err := r.db.QueryRow(ctx, query).Scan(&a.ID, &a.Savings, &a.Needs, &a.Wants, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

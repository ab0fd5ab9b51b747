package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
)

const (
	insertGoal = `
		INSERT INTO goals (id, name, amount, current_amount, timeline, icon, selected, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	selectGoals = `
		SELECT id, name, amount, current_amount, timeline, icon, selected, created_at, updated_at
		FROM goals
	`

	goalOrder = ` ORDER BY created_at, id`
)

// GoalRepository implements usecase.GoalRepository.
type GoalRepository struct {
	db querier
}

// NewGoalRepository creates a new GoalRepository.
func NewGoalRepository(pool *pgxpool.Pool) *GoalRepository {
	return newGoalRepository(pool)
}

func newGoalRepository(db querier) *GoalRepository {
	return &GoalRepository{db: db}
}

// Create inserts a goal.
func (r *GoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	return r.create(ctx, r.db, goal)
}

// CreateTx inserts a goal within a transaction.
func (r *GoalRepository) CreateTx(ctx context.Context, tx usecase.Transaction, goal *domain.Goal) error {
	return r.create(ctx, txQuerier(tx), goal)
}

func (r *GoalRepository) create(ctx context.Context, q querier, g *domain.Goal) error {
	_, err := q.Exec(ctx, insertGoal,
		g.ID,
		g.Name,
		decimalToNumeric(g.Amount),
		decimalToNumeric(g.Current),
		g.Timeline,
		g.Icon,
		g.Selected,
		timeToPgTimestamptz(g.CreatedAt),
		timeToPgTimestamptz(g.UpdatedAt),
	)

	return err
}

// CountTx locks the table and counts its rows.
func (r *GoalRepository) CountTx(ctx context.Context, tx usecase.Transaction) (int, error) {
	return lockAndCount(ctx, tx, "goals")
}

// GetByID retrieves a goal by ID.
func (r *GoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	rows, err := r.db.Query(ctx, selectGoals+` WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	goals, err := scanGoals(rows)
	if err != nil {
		return nil, err
	}

	if len(goals) == 0 {
		return nil, domain.ErrGoalNotFound
	}

	return goals[0], nil
}

// List returns all goals in creation order.
func (r *GoalRepository) List(ctx context.Context) ([]*domain.Goal, error) {
	rows, err := r.db.Query(ctx, selectGoals+goalOrder)
	if err != nil {
		return nil, err
	}

	return scanGoals(rows)
}

// ListSelected returns the goals marked as selected.
func (r *GoalRepository) ListSelected(ctx context.Context) ([]*domain.Goal, error) {
	rows, err := r.db.Query(ctx, selectGoals+` WHERE selected`+goalOrder)
	if err != nil {
		return nil, err
	}

	return scanGoals(rows)
}

// Update overwrites the mutable fields of a goal.
func (r *GoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	query := `
		UPDATE goals
		SET name = $2, amount = $3, current_amount = $4, timeline = $5, icon = $6, selected = $7, updated_at = $8
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		goal.ID,
		goal.Name,
		decimalToNumeric(goal.Amount),
		decimalToNumeric(goal.Current),
		goal.Timeline,
		goal.Icon,
		goal.Selected,
		timeToPgTimestamptz(goal.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrGoalNotFound
	}

	return nil
}

// Delete removes a goal.
func (r *GoalRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrGoalNotFound
	}

	return nil
}

func scanGoals(rows pgx.Rows) ([]*domain.Goal, error) {
	defer rows.Close()

	goals := make([]*domain.Goal, 0)
	for rows.Next() {
		var (
			g               domain.Goal
			amount, current pgtype.Numeric
		)

		err := rows.Scan(
			&g.ID,
			&g.Name,
			&amount,
			&current,
			&g.Timeline,
			&g.Icon,
			&g.Selected,
			&g.CreatedAt,
			&g.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		g.Amount = numericToDecimal(amount)
		g.Current = numericToDecimal(current)
		goals = append(goals, &g)
	}

	return goals, rows.Err()
}

package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
)

var conversationColumns = []string{"position", "role", "content", "created_at"}

// ConversationRepository implements usecase.ConversationRepository.
// Messages are stored one per row, keyed by their position in the transcript.
type ConversationRepository struct {
	db querier
}

// NewConversationRepository creates a new ConversationRepository.
func NewConversationRepository(pool *pgxpool.Pool) *ConversationRepository {
	return newConversationRepository(pool)
}

func newConversationRepository(db querier) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// List returns the transcript in order.
func (r *ConversationRepository) List(ctx context.Context) ([]domain.Message, error) {
	query := `
		SELECT role, content, created_at
		FROM conversation_messages
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]domain.Message, 0)
	for rows.Next() {
		var (
			m    domain.Message
			role string
		)

		if err := rows.Scan(&role, &m.Content, &m.Timestamp); err != nil {
			return nil, err
		}

		m.Role = domain.Role(role)
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

// ReplaceTx swaps the stored transcript for messages.
func (r *ConversationRepository) ReplaceTx(ctx context.Context, tx usecase.Transaction, messages []domain.Message) error {
	q := txQuerier(tx)

	if _, err := q.Exec(ctx, `DELETE FROM conversation_messages`); err != nil {
		return err
	}

	if len(messages) == 0 {
		return nil
	}

	_, err := q.CopyFrom(ctx,
		pgx.Identifier{"conversation_messages"},
		conversationColumns,
		pgx.CopyFromSlice(len(messages), func(i int) ([]any, error) {
			m := messages[i]
			return []any{i, string(m.Role), m.Content, m.Timestamp}, nil
		}),
	)

	return err
}

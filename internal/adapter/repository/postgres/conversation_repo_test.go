package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/iho/gobudget/internal/domain"
)

func TestConversationRepositoryList(t *testing.T) {
	pool := newMockPool(t)
	pool.ExpectQuery(regexp.QuoteMeta("FROM conversation_messages")).
		WillReturnRows(pgxmock.NewRows([]string{"role", "content", "created_at"}).
			AddRow("assistant", domain.WelcomeMessage, createdAt).
			AddRow("user", "how did I do", createdAt))

	repo := newConversationRepository(pool)
	messages, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != domain.RoleAssistant || messages[1].Role != domain.RoleUser {
		t.Fatalf("unexpected roles: %s, %s", messages[0].Role, messages[1].Role)
	}

	assertExpectations(t, pool)
}

func TestConversationRepositoryReplaceTx(t *testing.T) {
	pool := newMockPool(t)
	tx := beginMockTx(t, pool)

	pool.ExpectExec(regexp.QuoteMeta("DELETE FROM conversation_messages")).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	pool.ExpectCopyFrom(pgx.Identifier{"conversation_messages"}, conversationColumns).
		WillReturnResult(2)

	repo := newConversationRepository(pool)
	err := repo.ReplaceTx(context.Background(), tx, []domain.Message{
		{Role: domain.RoleUser, Content: "budget?", Timestamp: createdAt},
		{Role: domain.RoleAssistant, Content: "Your current budget allocation is...", Timestamp: createdAt},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertExpectations(t, pool)
}

func TestConversationRepositoryReplaceTxEmpty(t *testing.T) {
	pool := newMockPool(t)
	tx := beginMockTx(t, pool)

	pool.ExpectExec(regexp.QuoteMeta("DELETE FROM conversation_messages")).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := newConversationRepository(pool)
	if err := repo.ReplaceTx(context.Background(), tx, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertExpectations(t, pool)
}

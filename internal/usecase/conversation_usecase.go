package usecase

import (
	"context"

	"github.com/iho/gobudget/internal/domain"
)

// ConversationUseCase manages the mentor transcript.
type ConversationUseCase struct {
	txManager TransactionManager
	retrier   Retrier
	repo      ConversationRepository
	clock     Clock
}

// NewConversationUseCase creates a new ConversationUseCase.
func NewConversationUseCase(txManager TransactionManager, retrier Retrier, repo ConversationRepository, clock Clock) *ConversationUseCase {
	return &ConversationUseCase{
		txManager: txManager,
		retrier:   retrier,
		repo:      repo,
		clock:     clock,
	}
}

// History returns the transcript. An empty transcript is started with the
// welcome message.
func (uc *ConversationUseCase) History(ctx context.Context) ([]domain.Message, error) {
	messages, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(messages) > 0 {
		return messages, nil
	}

	welcome := []domain.Message{domain.NewWelcomeMessage(uc.clock.Now().UTC())}
	if err := uc.replace(ctx, welcome); err != nil {
		return nil, err
	}

	return welcome, nil
}

// Save replaces the whole transcript.
func (uc *ConversationUseCase) Save(ctx context.Context, messages []domain.Message) ([]domain.Message, error) {
	now := uc.clock.Now().UTC()

	for i := range messages {
		if err := messages[i].Validate(); err != nil {
			return nil, err
		}
		if messages[i].Timestamp.IsZero() {
			messages[i].Timestamp = now
		}
	}

	if err := uc.replace(ctx, messages); err != nil {
		return nil, err
	}

	return messages, nil
}

func (uc *ConversationUseCase) replace(ctx context.Context, messages []domain.Message) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	return uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.repo.ReplaceTx(ctx, tx, messages); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
}

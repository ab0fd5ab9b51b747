package usecase

import (
	"context"
)

// seedIfEmpty runs insert inside a transaction when count reports no rows.
// count is expected to lock the table so concurrent seeders serialise.
func seedIfEmpty(
	ctx context.Context,
	txManager TransactionManager,
	retrier Retrier,
	count func(ctx context.Context, tx Transaction) (int, error),
	insert func(ctx context.Context, tx Transaction) error,
) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	return retrier.Retry(ctx, func() error {
		tx, err := txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		n, err := count(ctx, tx)
		if err != nil {
			return err
		}

		if n > 0 {
			return nil
		}

		if err := insert(ctx, tx); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
}

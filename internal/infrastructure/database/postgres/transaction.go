package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"loja-sql/internal/infrastructure/monitoring"
	"loja-sql/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

// txRunner owns the begin/commit/rollback protocol of every write. When external is
// set, db is a transaction that belongs to the caller and fn runs on it directly.
type txRunner struct {
	db       Querier
	external bool
	logger   *slog.Logger
}

func (r txRunner) bind(tx pgx.Tx) txRunner {
	return txRunner{db: tx, external: true, logger: r.logger}
}

// run executes fn inside a local transaction, or directly on the caller's
// transaction when the runner is bound.
func (r txRunner) run(ctx context.Context, op string, fn func(q Querier) error) (err error) {
	start := time.Now()
	defer func() {
		monitoring.RecordDBQuery(op, monitoring.QueryStatus(err), time.Since(start))
	}()

	if r.external {
		if err := fn(r.db); err != nil {
			r.logger.ErrorContext(ctx, "Statement failed inside caller transaction", slog.String("operation", op), slog.Any("error", err))
			return apperrors.WrapDatabaseError(fmt.Sprintf("%s failed: %v", op, err), err)
		}
		return nil
	}
	return r.inTx(ctx, op, func(tx pgx.Tx) error { return fn(tx) })
}

func (r txRunner) inTx(ctx context.Context, op string, fn func(tx pgx.Tx) error) error {
	r.logger.DebugContext(ctx, "Beginning transaction", slog.String("operation", op))
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to begin transaction", slog.String("operation", op), slog.Any("error", err))
		return apperrors.WrapDatabaseError(fmt.Sprintf("failed to begin transaction: %s: %v", op, err), err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				r.logger.ErrorContext(ctx, "Failed to roll back transaction after panic", slog.Any("error", rbErr), slog.Any("panic", p))
			}
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		return r.rollback(ctx, tx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.ErrorContext(ctx, "Failed to commit transaction", slog.String("operation", op), slog.Any("error", err))
		return apperrors.WrapDatabaseError(fmt.Sprintf("failed to commit transaction: %s: %v", op, err), err)
	}
	r.logger.DebugContext(ctx, "Transaction committed", slog.String("operation", op))
	return nil
}

// rollback undoes tx after fn failed. The returned error keeps the original failure
// and, if the rollback also failed, the rollback failure as well.
func (r txRunner) rollback(ctx context.Context, tx pgx.Tx, op string, cause error) error {
	rbErr := tx.Rollback(ctx)
	if rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		monitoring.RecordRollback(op, monitoring.StatusError)
		r.logger.ErrorContext(ctx, "Failed to roll back transaction",
			slog.String("operation", op),
			slog.Any("rollback_error", rbErr),
			slog.Any("original_error", cause))
		return apperrors.WrapDatabaseError(
			fmt.Sprintf("rollback failed: %s: %v (original error: %v)", op, rbErr, cause),
			rbErr, cause,
		)
	}

	monitoring.RecordRollback(op, monitoring.StatusSuccess)
	r.logger.WarnContext(ctx, "Transaction rolled back", slog.String("operation", op), slog.Any("error", cause))
	return apperrors.WrapDatabaseError(fmt.Sprintf("transaction not completed: %s: %v", op, cause), cause)
}

// queryFailed builds the data-access error for a failed read.
func queryFailed(op string, err error) error {
	return apperrors.WrapDatabaseError(fmt.Sprintf("%s failed: %v", op, err), err)
}

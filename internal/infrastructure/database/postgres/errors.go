package postgres

import (
	"errors"
	"fmt"
	"log/slog"

	"loja-sql/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

var errNoRowsAffected = errors.New("no rows affected")

// translateDBError tags constraint violations with the matching sentinel. The result
// is still wrapped into a data-access error by the caller.
func translateDBError(err error, logger *slog.Logger) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolationCode:
		logger.Warn("Database unique constraint violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
		return fmt.Errorf("%w: %s: %w", apperrors.ErrAlreadyExists, pgErr.ConstraintName, err)
	case foreignKeyViolationCode:
		logger.Warn("Database foreign key violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
		return fmt.Errorf("%w: %s: %w", apperrors.ErrConflict, pgErr.ConstraintName, err)
	}

	logger.Error("PostgreSQL specific error", "code", pgErr.Code, "message", pgErr.Message, "detail", pgErr.Detail)
	return err
}

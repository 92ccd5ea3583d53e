// Package migrations applies the embedded schema migrations with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const (
	migrationsDir      = "sql"
	MigrationTableName = "schema_migrations"
)

//go:embed sql/*.sql
var FS embed.FS

// gooseLogger forwards goose output to slog. Fatalf does not exit so the caller
// decides how to stop.
type gooseLogger struct {
	logger *slog.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// Up applies every pending migration to the database at dbURL.
func Up(ctx context.Context, dbURL string, logger *slog.Logger) error {
	if dbURL == "" {
		return fmt.Errorf("database URL is empty in configuration")
	}
	logger = logger.With("component", "migrations")

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}
	defer db.Close()

	if err := configure(logger); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Applying pending migrations")
	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		logger.ErrorContext(ctx, "Migration failed", "error", err)
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	logger.InfoContext(ctx, "Database schema is up to date", "version", version)
	return nil
}

func configure(logger *slog.Logger) error {
	goose.SetBaseFS(FS)
	goose.SetLogger(gooseLogger{logger: logger})
	goose.SetTableName(MigrationTableName)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

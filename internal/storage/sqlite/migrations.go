package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"paytrack/internal/logger"
)

func (s *sqliteStorage) createMigrationsTable(ctx context.Context) error {
	statement, err := s.db.PrepareContext(ctx, `
			CREATE TABLE IF NOT EXISTS schema_migrations (
					version INTEGER PRIMARY KEY,
					applied_at INTEGER NOT NULL
			)
	`)
	if err != nil {
		return err
	}
	defer statement.Close()
	_, err = statement.ExecContext(ctx)
	return err
}

func (s *sqliteStorage) ApplyMigrations(ctx context.Context, log *logger.Logger) error {
	if err := s.createMigrationsTable(ctx); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	migrations := []struct {
		name string
		up   func(*sql.Tx) error
	}{
		{
			name: "Create entries table",
			up: func(tx *sql.Tx) error {
				_, err := tx.ExecContext(ctx, `
					CREATE TABLE IF NOT EXISTS entries
					(
					key TEXT PRIMARY KEY,
					value TEXT NOT NULL,
					updated_at INTEGER NOT NULL
					) STRICT;`)
				return err
			},
		},
	}

	for i := currentVersion; i < len(migrations); i++ {
		migration := migrations[i]

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %q: %w", migration.name, err)
		}

		if err = migration.up(tx); err != nil {
			if rErr := tx.Rollback(); rErr != nil {
				return fmt.Errorf("failed to rollback migration %q: %w", migration.name, rErr)
			}
			return fmt.Errorf("failed to apply migration %q: %w", migration.name, err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)",
			i+1, time.Now().Unix())
		if err != nil {
			if rErr := tx.Rollback(); rErr != nil {
				return fmt.Errorf("failed to rollback migration %q: %w", migration.name, rErr)
			}
			return fmt.Errorf("failed to record migration %q: %w", migration.name, err)
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %q: %w", migration.name, err)
		}

		log.Info("Applied migration", "name", migration.name, "version", i+1)
	}

	return nil
}

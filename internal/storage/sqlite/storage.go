package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// import sqlite driver.
	_ "github.com/mattn/go-sqlite3"

	"paytrack/internal/config"
	"paytrack/internal/storage"
)

type sqliteStorage struct {
	db *sql.DB
}

func New(dbConfig config.DBConfig) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", dbConfig.File)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()

	if dbConfig.JournalMode != "" {
		_, err = db.ExecContext(ctx, fmt.Sprintf("PRAGMA journal_mode = %s", dbConfig.JournalMode))
		if err != nil {
			return nil, fmt.Errorf("failed to set journal_mode: %w", err)
		}
	}

	if dbConfig.Synchronous != "" {
		_, err = db.ExecContext(ctx, fmt.Sprintf("PRAGMA synchronous = %s", dbConfig.Synchronous))
		if err != nil {
			return nil, fmt.Errorf("failed to set synchronous: %w", err)
		}
	}

	return &sqliteStorage{db: db}, nil
}

func (s *sqliteStorage) Get(ctx context.Context, key string) (string, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT value
		FROM entries
		WHERE key = ?
	`, key)

	var value string

	err := row.Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", &storage.NotFoundError{Key: key}
		}
		return "", fmt.Errorf("failed to scan entry: %w", err)
	}

	return value, nil
}

func (s *sqliteStorage) Set(ctx context.Context, key, value string) error {
	statement, err := s.db.PrepareContext(ctx, `
		INSERT INTO entries (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare set entry statement: %w", err)
	}
	defer statement.Close()

	_, err = statement.ExecContext(ctx, key, value, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to set entry: %w", err)
	}

	return nil
}

func (s *sqliteStorage) Delete(ctx context.Context, key string) error {
	statement, err := s.db.PrepareContext(ctx, `
		DELETE FROM entries WHERE key = ?
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare delete entry statement: %w", err)
	}
	defer statement.Close()

	_, err = statement.ExecContext(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	return nil
}

func (s *sqliteStorage) Close() error {
	return s.db.Close()
}

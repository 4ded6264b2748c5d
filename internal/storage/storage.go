// Package storage defines the key/value persistence contract the rest of
// the application is written against. Values are JSON documents; keys are
// namespaced strings so several users can share one backend.
package storage

import (
	"context"

	"paytrack/internal/logger"
)

type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return "key not found: " + e.Key
}

type Storage interface {
	// Migrations
	ApplyMigrations(ctx context.Context, logger *logger.Logger) error

	// Entries
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error

	// Resource managment
	Close() error
}

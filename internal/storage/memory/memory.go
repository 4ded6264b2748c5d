// Package memory provides an in-memory Storage used by tests and by
// throwaway runs where persistence is not wanted.
package memory

import (
	"context"
	"sync"

	"paytrack/internal/logger"
	"paytrack/internal/storage"
)

type memoryStorage struct {
	mu      sync.RWMutex
	entries map[string]string
}

func New() storage.Storage {
	return &memoryStorage{
		entries: map[string]string{},
	}
}

func (s *memoryStorage) ApplyMigrations(_ context.Context, _ *logger.Logger) error {
	return nil
}

func (s *memoryStorage) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return "", &storage.NotFoundError{Key: key}
	}

	return value, nil
}

func (s *memoryStorage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value

	return nil
}

func (s *memoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)

	return nil
}

func (s *memoryStorage) Close() error {
	return nil
}

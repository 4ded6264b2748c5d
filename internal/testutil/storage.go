package testutil

import (
	"testing"

	"paytrack/internal/storage"
	"paytrack/internal/storage/memory"
)

// SetupTestStorage returns an in-memory storage backend for tests.
func SetupTestStorage(t *testing.T) storage.Storage {
	t.Helper()

	s := memory.New()

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Failed to close test storage: %v", err)
		}
	})

	return s
}

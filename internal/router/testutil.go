package router

import (
	"testing"

	"paytrack/internal/auth"
	"paytrack/internal/ledger"
	"paytrack/internal/logger"
	"paytrack/internal/storage"
)

// newTestRouter creates a router instance for testing
func newTestRouter(t *testing.T, s storage.Storage, log *logger.Logger, seedDemo bool) *router {
	t.Helper()

	r := &router{
		storage:  s,
		ledger:   ledger.NewStore(s, log),
		auth:     auth.NewService(s, log),
		seedDemo: seedDemo,
		logger:   log,
	}

	if err := r.parseTemplates(); err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}

	return r
}

// Package router wires the HTTP surface: auth pages, the dashboard,
// expense mutations and the printable receipt view.
package router

import (
	"net/http"

	"paytrack/internal/auth"
	"paytrack/internal/config"
	"paytrack/internal/ledger"
	"paytrack/internal/logger"
	"paytrack/internal/storage"
)

type router struct {
	storage   storage.Storage
	ledger    *ledger.Store
	auth      *auth.Service
	seedDemo  bool
	logger    *logger.Logger
	templates templates
}

func New(s storage.Storage, conf *config.Config, log *logger.Logger) (http.Handler, error) {
	r := &router{
		storage:  s,
		ledger:   ledger.NewStore(s, log),
		auth:     auth.NewService(s, log),
		seedDemo: conf.SeedDemoData,
		logger:   log,
	}

	if err := r.parseTemplates(); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	a := &authHandler{router: r}
	a.RegisterRoutes(mux)

	mux.Handle("GET /", r.requireAuth(http.HandlerFunc(r.homeHandler)))
	mux.Handle("POST /expenses", r.requireAuth(http.HandlerFunc(r.createExpenseHandler)))
	mux.Handle("POST /expenses/{id}/delete", r.requireAuth(http.HandlerFunc(r.deleteExpenseHandler)))
	mux.Handle("GET /expenses/{id}/receipt", r.requireAuth(http.HandlerFunc(r.receiptHandler)))

	var handler http.Handler = mux
	handler = xFrameDenyHeaderMiddleware(handler)
	handler = loggingMiddleware(log, handler)

	return handler, nil
}

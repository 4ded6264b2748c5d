package router

import (
	"net/http"
	"time"

	"paytrack/internal/filter"
	"paytrack/internal/ledger"
	"paytrack/internal/report"
)

type dashboardData struct {
	viewBase
	Report     report.Report
	Filter     filter.Filter
	Categories []ledger.Category
	Today      string
}

func (router *router) homeHandler(w http.ResponseWriter, r *http.Request) {
	router.renderDashboard(w, r, "")
}

func (router *router) renderDashboard(w http.ResponseWriter, r *http.Request, errorMsg string) {
	session := sessionFromContext(r.Context())

	expenses, err := router.ledger.Expenses(r.Context(), session.Username)
	if err != nil {
		router.logger.Error("Failed to load expenses", "error", err, "user", session.Username)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(expenses) == 0 && router.seedDemo {
		expenses, err = router.ledger.Seed(r.Context(), session.Username)
		if err != nil {
			router.logger.Error("Failed to seed demo records", "error", err, "user", session.Username)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}

	query := r.URL.Query()
	f := filter.Filter{
		Category:  query.Get("category"),
		StartDate: query.Get("start"),
		EndDate:   query.Get("end"),
	}
	if f.Category == "" {
		f.Category = filter.CategoryAll
	}

	filtered := f.Apply(expenses)

	data := dashboardData{
		viewBase:   newViewBase(session, pageDashboard),
		Report:     report.Generate(filtered, f),
		Filter:     f,
		Categories: ledger.Categories(),
		Today:      time.Now().Format("2006-01-02"),
	}
	data.Error = errorMsg

	if err = router.templates.Render(w, "pages/index.html", data); err != nil {
		router.logger.Error("Failed to render dashboard", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

package router

import (
	"errors"
	"net/http"

	"paytrack/internal/ledger"
)

func (router *router) createExpenseHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	session := sessionFromContext(r.Context())

	seq, err := router.ledger.NextBillSeq(r.Context(), session.Username)
	if err != nil {
		router.logger.Error("Failed to advance bill sequence", "error", err, "user", session.Username)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	input := ledger.Input{
		ShopName: r.FormValue("shop_name"),
		Item:     r.FormValue("item"),
		Quantity: r.FormValue("quantity"),
		UnitCost: r.FormValue("unit_cost"),
		Category: ledger.Category(r.FormValue("category")),
		Date:     r.FormValue("date"),
		Notes:    r.FormValue("notes"),
	}

	expense, err := ledger.BuildExpense(input, seq, session.Username)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrMissingRequiredField):
			router.renderDashboard(w, r, "Required fields are missing")
		case errors.Is(err, ledger.ErrNonPositiveAmount):
			router.renderDashboard(w, r, "Amount must be greater than zero")
		case errors.Is(err, ledger.ErrInvalidDate):
			router.renderDashboard(w, r, "Transaction date is not a valid date")
		default:
			router.logger.Error("Failed to build expense", "error", err, "user", session.Username)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	expenses, err := router.ledger.Expenses(r.Context(), session.Username)
	if err != nil {
		router.logger.Error("Failed to load expenses", "error", err, "user", session.Username)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Newest entry first, matching the stored collection order.
	expenses = append([]ledger.Expense{expense}, expenses...)

	if err = router.ledger.SaveExpenses(r.Context(), session.Username, expenses); err != nil {
		router.logger.Error("Failed to save expenses", "error", err, "user", session.Username)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (router *router) deleteExpenseHandler(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r.Context())
	id := r.PathValue("id")

	expenses, err := router.ledger.Expenses(r.Context(), session.Username)
	if err != nil {
		router.logger.Error("Failed to load expenses", "error", err, "user", session.Username)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	remaining := ledger.DeleteExpense(expenses, id)
	if len(remaining) == len(expenses) {
		http.NotFound(w, r)
		return
	}

	if err = router.ledger.SaveExpenses(r.Context(), session.Username, remaining); err != nil {
		router.logger.Error("Failed to save expenses", "error", err, "user", session.Username)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type receiptData struct {
	viewBase
	Expense ledger.Expense
}

func (router *router) receiptHandler(w http.ResponseWriter, r *http.Request) {
	session := sessionFromContext(r.Context())
	id := r.PathValue("id")

	expenses, err := router.ledger.Expenses(r.Context(), session.Username)
	if err != nil {
		router.logger.Error("Failed to load expenses", "error", err, "user", session.Username)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	for _, expense := range expenses {
		if expense.ID == id {
			data := receiptData{
				viewBase: newViewBase(session, pageReceipt),
				Expense:  expense,
			}
			if err = router.templates.Render(w, "pages/receipt.html", data); err != nil {
				router.logger.Error("Failed to render receipt", "error", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}
	}

	http.NotFound(w, r)
}

// Package filter derives a filtered, sorted view of an expense
// collection. Everything here is pure: callers pass records in and get a
// fresh slice back.
package filter

import (
	"sort"
	"strings"

	"paytrack/internal/ledger"
)

// CategoryAll selects every category.
const CategoryAll = "All"

// Filter holds the dashboard filter criteria. Empty StartDate/EndDate
// mean an open-ended range; Category may be empty or CategoryAll to
// select all records. Dates are ISO-8601 strings, so range checks are
// lexicographic.
type Filter struct {
	Category  string
	StartDate string
	EndDate   string
}

// Matches reports whether a single expense satisfies the criteria.
func (f Filter) Matches(e ledger.Expense) bool {
	if f.Category != "" && f.Category != CategoryAll && string(e.Category) != f.Category {
		return false
	}
	if f.StartDate != "" && e.Date < f.StartDate {
		return false
	}
	if f.EndDate != "" && e.Date > f.EndDate {
		return false
	}
	return true
}

// Apply returns the matching expenses sorted by date, newest first.
// Records sharing a date keep their input order.
func (f Filter) Apply(expenses []ledger.Expense) []ledger.Expense {
	result := make([]ledger.Expense, 0, len(expenses))
	for _, e := range expenses {
		if f.Matches(e) {
			result = append(result, e)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return strings.Compare(result[i].Date, result[j].Date) > 0
	})

	return result
}

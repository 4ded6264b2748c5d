// Package report computes spending aggregates for the dashboard and the
// CLI report from an already-filtered expense collection.
package report

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"

	"paytrack/internal/filter"
	"paytrack/internal/ledger"
)

type CategoryTotal struct {
	Category          ledger.Category
	Amount            int64
	Count             int
	PercentageOfTotal float64
	Icon              string
	Color             string
}

type Vendor struct {
	Name   string
	Amount int64
	Count  int
}

type Report struct {
	Title      string
	Total      int64
	Count      int
	Categories []CategoryTotal
	Vendors    []Vendor
	Expenses   []ledger.Expense
	Verbose    bool
}

const percentageOfTotal = 100

// Total sums the amounts of expenses. The empty collection sums to zero.
func Total(expenses []ledger.Expense) int64 {
	var total int64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// ByCategory aggregates amounts per category in canonical declared
// order. Categories with a zero total are computed but omitted from the
// chart-ready output.
func ByCategory(expenses []ledger.Expense) []CategoryTotal {
	amounts := map[ledger.Category]int64{}
	counts := map[ledger.Category]int{}
	for _, e := range expenses {
		amounts[e.Category] += e.Amount
		counts[e.Category]++
	}

	total := Total(expenses)

	result := []CategoryTotal{}
	for _, category := range ledger.Categories() {
		amount := amounts[category]
		if amount == 0 {
			continue
		}

		var percentage float64
		if total != 0 {
			percentage = float64(amount) / float64(total) * percentageOfTotal
		}

		result = append(result, CategoryTotal{
			Category:          category,
			Amount:            amount,
			Count:             counts[category],
			PercentageOfTotal: percentage,
			Icon:              category.Icon(),
			Color:             category.ChartColor(),
		})
	}

	return result
}

// Vendors groups expenses by vendor name, largest spend first.
func Vendors(expenses []ledger.Expense) []Vendor {
	grouped := map[string]Vendor{}
	for _, e := range expenses {
		vendor := grouped[e.ShopName]
		vendor.Name = e.ShopName
		vendor.Amount += e.Amount
		vendor.Count++
		grouped[e.ShopName] = vendor
	}

	keys := maps.Keys(grouped)
	sort.SliceStable(keys, func(i, j int) bool {
		return grouped[keys[i]].Amount > grouped[keys[j]].Amount
	})

	result := make([]Vendor, 0, len(keys))
	for _, key := range keys {
		result = append(result, grouped[key])
	}

	return result
}

// Generate builds the report view model for a filtered collection.
func Generate(expenses []ledger.Expense, f filter.Filter) Report {
	return Report{
		Title:      title(f),
		Total:      Total(expenses),
		Count:      len(expenses),
		Categories: ByCategory(expenses),
		Vendors:    Vendors(expenses),
		Expenses:   expenses,
	}
}

func title(f filter.Filter) string {
	category := f.Category
	if category == "" {
		category = filter.CategoryAll
	}

	switch {
	case f.StartDate != "" && f.EndDate != "":
		return fmt.Sprintf("%s · %s to %s", category, f.StartDate, f.EndDate)
	case f.StartDate != "":
		return fmt.Sprintf("%s · from %s", category, f.StartDate)
	case f.EndDate != "":
		return fmt.Sprintf("%s · until %s", category, f.EndDate)
	}

	return category
}

// Package ledger holds the expense entities and the per-user record
// store. Monetary values are integer paise; dates are ISO-8601
// YYYY-MM-DD strings so date comparisons stay lexicographic.
package ledger

import "time"

type Category string

const (
	CategoryFood     Category = "Food"
	CategoryTravel   Category = "Travel"
	CategoryBills    Category = "Bills"
	CategoryShopping Category = "Shopping"
	CategoryOthers   Category = "Others"
)

// Categories returns the closed category set in canonical order. The
// order drives chips, aggregation rows and the chart.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTravel,
		CategoryBills,
		CategoryShopping,
		CategoryOthers,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTravel, CategoryBills, CategoryShopping, CategoryOthers:
		return true
	}
	return false
}

func (c Category) Icon() string {
	switch c {
	case CategoryFood:
		return "🍔"
	case CategoryTravel:
		return "🚌"
	case CategoryBills:
		return "💡"
	case CategoryShopping:
		return "🛍️"
	case CategoryOthers:
		return "📦"
	}
	return ""
}

func (c Category) ChartColor() string {
	switch c {
	case CategoryFood:
		return "#3b82f6"
	case CategoryTravel:
		return "#2563eb"
	case CategoryBills:
		return "#1d4ed8"
	case CategoryShopping:
		return "#60a5fa"
	case CategoryOthers:
		return "#94a3b8"
	}
	return "#94a3b8"
}

const dateLayout = "2006-01-02"

type Expense struct {
	ID        string   `json:"id"`
	Amount    int64    `json:"amount"` // paise
	Category  Category `json:"category"`
	Date      string   `json:"date"` // YYYY-MM-DD
	Notes     string   `json:"notes"`
	ShopName  string   `json:"shopName"`
	Item      string   `json:"item"`
	Quantity  float64  `json:"quantity"`
	UnitCost  int64    `json:"unitCost"` // paise
	CreatedAt int64    `json:"createdAt"` // unix milliseconds
	BillID    string   `json:"billId"`
	UserID    string   `json:"userId"`
}

// wellFormed reports whether a deserialized record carries everything a
// stored expense must have. Records failing this are quarantined on load.
func (e Expense) wellFormed() bool {
	if e.ID == "" || e.ShopName == "" || e.Item == "" {
		return false
	}
	if _, err := time.Parse(dateLayout, e.Date); err != nil {
		return false
	}
	return true
}

package ledger

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"paytrack/internal/util"
)

var (
	ErrMissingRequiredField = errors.New("required field is missing")
	ErrNonPositiveAmount    = errors.New("amount must be greater than zero")
	ErrInvalidDate          = errors.New("date must be a valid YYYY-MM-DD value")
)

// Input carries the raw form values for a new expense. Quantity and
// UnitCost arrive as strings straight from the form.
type Input struct {
	ShopName string
	Item     string
	Quantity string
	UnitCost string
	Category Category
	Date     string
	Notes    string
}

const expenseIDBytes = 6

// BuildExpense validates input and constructs a new expense. seq is the
// per-user bill sequence number the record store hands out; the caller
// is responsible for persisting the result.
func BuildExpense(input Input, seq int64, username string) (Expense, error) {
	if input.ShopName == "" {
		return Expense{}, fmt.Errorf("shop name: %w", ErrMissingRequiredField)
	}
	if input.Item == "" {
		return Expense{}, fmt.Errorf("item: %w", ErrMissingRequiredField)
	}
	if input.UnitCost == "" {
		return Expense{}, fmt.Errorf("unit cost: %w", ErrMissingRequiredField)
	}

	unitCost, err := parseMoney(input.UnitCost)
	if err != nil {
		// An unparsable unit cost can never produce a positive amount.
		return Expense{}, ErrNonPositiveAmount
	}

	quantity, err := strconv.ParseFloat(input.Quantity, 64)
	if err != nil {
		quantity = 1
	}

	amount := int64(math.Round(quantity * float64(unitCost)))
	if amount <= 0 {
		return Expense{}, ErrNonPositiveAmount
	}

	date := input.Date
	if date == "" {
		date = time.Now().Format(dateLayout)
	}
	parsedDate, err := time.Parse(dateLayout, date)
	if err != nil {
		return Expense{}, ErrInvalidDate
	}

	category := input.Category
	if category == "" {
		category = CategoryFood
	}
	if !category.Valid() {
		category = CategoryOthers
	}

	return Expense{
		ID:        util.RandomID(expenseIDBytes),
		Amount:    amount,
		Category:  category,
		Date:      date,
		Notes:     input.Notes,
		ShopName:  input.ShopName,
		Item:      input.Item,
		Quantity:  quantity,
		UnitCost:  unitCost,
		CreatedAt: time.Now().UnixMilli(),
		BillID:    FormatBillID(parsedDate.Year(), seq),
		UserID:    username,
	}, nil
}

// FormatBillID renders the human-readable receipt reference, e.g.
// PT-2027-001. Sequence numbers beyond 999 simply grow wider.
func FormatBillID(year int, seq int64) string {
	return fmt.Sprintf("PT-%d-%03d", year, seq)
}

// DeleteExpense returns the collection without the record carrying id.
// The order of the remaining records is preserved.
func DeleteExpense(expenses []Expense, id string) []Expense {
	result := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.ID != id {
			result = append(result, e)
		}
	}
	return result
}

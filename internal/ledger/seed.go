package ledger

import (
	"context"
	"fmt"
	"time"

	"paytrack/internal/util"
)

type seedRecord struct {
	category Category
	amount   int64
	notes    string
	shopName string
	item     string
	quantity float64
	unitCost int64
	date     string
}

// The demonstration dataset: six transactions spanning all five
// categories, totaling ₹3170.
var seedRecords = []seedRecord{
	{category: CategoryFood, amount: 25000, notes: "Lunch at canteen", shopName: "VTU Canteen", item: "Rice Plate", quantity: 1, unitCost: 25000, date: "2026-02-02"},
	{category: CategoryTravel, amount: 12000, notes: "Bus ticket", shopName: "KSRTC Counter", item: "Bus Ticket", quantity: 1, unitCost: 12000, date: "2026-02-03"},
	{category: CategoryBills, amount: 80000, notes: "Electricity bill", shopName: "BESCOM Office", item: "Electricity Units", quantity: 80, unitCost: 1000, date: "2026-02-04"},
	{category: CategoryShopping, amount: 150000, notes: "Books & stationery", shopName: "Sapna Book House", item: "Engineering Books", quantity: 3, unitCost: 50000, date: "2026-02-05"},
	{category: CategoryFood, amount: 30000, notes: "Dinner with friends", shopName: "Café Coffee Day", item: "Combo Meal", quantity: 2, unitCost: 15000, date: "2026-02-06"},
	{category: CategoryTravel, amount: 20000, notes: "Cab fare", shopName: "Ola Cabs", item: "Ride Fare", quantity: 1, unitCost: 20000, date: "2026-02-07"},
}

const seedCreatedAtStep = 100000 // milliseconds between consecutive seed records

// Seed materializes the demonstration dataset for username. An account
// that already has records is left untouched; the stored collection is
// returned either way.
func (s *Store) Seed(ctx context.Context, username string) ([]Expense, error) {
	existing, err := s.Expenses(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	now := time.Now().UnixMilli()
	expenses := make([]Expense, 0, len(seedRecords))
	for idx, record := range seedRecords {
		seq, seqErr := s.NextBillSeq(ctx, username)
		if seqErr != nil {
			return nil, seqErr
		}

		date, parseErr := time.Parse(dateLayout, record.date)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid seed date %s: %w", record.date, parseErr)
		}

		expenses = append(expenses, Expense{
			ID:        util.RandomID(expenseIDBytes),
			Amount:    record.amount,
			Category:  record.category,
			Date:      record.date,
			Notes:     record.notes,
			ShopName:  record.shopName,
			Item:      record.item,
			Quantity:  record.quantity,
			UnitCost:  record.unitCost,
			CreatedAt: now - int64(idx)*seedCreatedAtStep,
			BillID:    FormatBillID(date.Year(), seq),
			UserID:    username,
		})
	}

	if err = s.SaveExpenses(ctx, username, expenses); err != nil {
		return nil, err
	}

	s.logger.Info("Seeded demonstration records", "user", username, "count", len(expenses))

	return expenses, nil
}

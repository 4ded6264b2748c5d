package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"paytrack/internal/logger"
	"paytrack/internal/storage"
)

const (
	expensesKeyPrefix = "paytrack.expenses."
	billSeqKeyPrefix  = "paytrack.billseq."
)

// Store persists per-user expense collections as whole JSON snapshots.
// Every save replaces the previous snapshot; there is no append log.
type Store struct {
	storage storage.Storage
	logger  *logger.Logger
}

func NewStore(s storage.Storage, log *logger.Logger) *Store {
	return &Store{
		storage: s,
		logger:  log,
	}
}

func expensesKey(username string) string {
	return expensesKeyPrefix + username
}

func billSeqKey(username string) string {
	return billSeqKeyPrefix + username
}

// Expenses loads the stored collection for username in persisted order.
// A user with no snapshot gets an empty collection. Individual records
// missing required fields are quarantined: skipped with a warning rather
// than trusted or fatal.
func (s *Store) Expenses(ctx context.Context, username string) ([]Expense, error) {
	value, err := s.storage.Get(ctx, expensesKey(username))
	if err != nil {
		var notFoundErr *storage.NotFoundError
		if errors.As(err, &notFoundErr) {
			return []Expense{}, nil
		}
		return nil, fmt.Errorf("failed to load expenses for %s: %w", username, err)
	}

	var records []Expense
	if err = json.Unmarshal([]byte(value), &records); err != nil {
		return nil, fmt.Errorf("failed to decode expenses for %s: %w", username, err)
	}

	expenses := make([]Expense, 0, len(records))
	for _, record := range records {
		if !record.wellFormed() {
			s.logger.Warn("Skipping malformed stored expense",
				"user", username,
				"id", record.ID,
				"bill_id", record.BillID,
			)
			continue
		}
		if !record.Category.Valid() {
			record.Category = CategoryOthers
		}
		expenses = append(expenses, record)
	}

	return expenses, nil
}

// SaveExpenses overwrites the full persisted collection for username.
func (s *Store) SaveExpenses(ctx context.Context, username string, expenses []Expense) error {
	value, err := json.Marshal(expenses)
	if err != nil {
		return fmt.Errorf("failed to encode expenses for %s: %w", username, err)
	}

	if err = s.storage.Set(ctx, expensesKey(username), string(value)); err != nil {
		return fmt.Errorf("failed to save expenses for %s: %w", username, err)
	}

	return nil
}

// NextBillSeq advances and returns the persisted per-user bill sequence.
// The counter never rewinds, so bill identifiers stay unique for a user
// even after deletions.
func (s *Store) NextBillSeq(ctx context.Context, username string) (int64, error) {
	var current int64

	value, err := s.storage.Get(ctx, billSeqKey(username))
	if err != nil {
		var notFoundErr *storage.NotFoundError
		if !errors.As(err, &notFoundErr) {
			return 0, fmt.Errorf("failed to load bill sequence for %s: %w", username, err)
		}
	} else {
		current, err = strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to decode bill sequence for %s: %w", username, err)
		}
	}

	next := current + 1
	if err = s.storage.Set(ctx, billSeqKey(username), strconv.FormatInt(next, 10)); err != nil {
		return 0, fmt.Errorf("failed to save bill sequence for %s: %w", username, err)
	}

	return next, nil
}

// Package memory provides an in-process transactions table used for local
// development and for tests that need an isolated store.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

var _ sqlconfig.ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable keeps rows in insertion order.
type TransactionsTable struct {
	mu   sync.RWMutex
	rows []sqlconfig.Transaction
	now  func() time.Time
}

func NewTransactionsTable() *TransactionsTable {
	return &TransactionsTable{now: time.Now}
}

// Insert stores a copy of the record under a fresh id.
func (t *TransactionsTable) Insert(_ context.Context, create *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	now := t.now()
	date := create.Date
	if date.IsZero() {
		date = now
	}

	// timestamptz keeps microseconds; match it so both backends compare alike.
	row := sqlconfig.Transaction{
		ID:          id,
		Type:        create.Type,
		Amount:      create.Amount,
		Description: create.Description,
		Date:        date.Truncate(time.Microsecond),
		CreatedAt:   now.Truncate(time.Microsecond),
	}

	t.mu.Lock()
	t.rows = append(t.rows, row)
	t.mu.Unlock()

	return &row, nil
}

// List returns copies of matching rows, newest first. Nil filter returns all.
func (t *TransactionsTable) List(_ context.Context, filter sqlconfig.TransactionFilter) ([]*sqlconfig.Transaction, error) {
	if filter == nil {
		filter = sqlconfig.AllTransactions{}
	}

	t.mu.RLock()
	result := make([]*sqlconfig.Transaction, 0, len(t.rows))
	for i := range t.rows {
		if filter.Matches(&t.rows[i]) {
			row := t.rows[i]
			result = append(result, &row)
		}
	}
	t.mu.RUnlock()

	slices.SortStableFunc(result, func(a, b *sqlconfig.Transaction) int {
		return b.Date.Compare(a.Date)
	})
	return result, nil
}

// DeleteByID removes the row with the given id. It returns nil when absent.
func (t *TransactionsTable) DeleteByID(_ context.Context, id uuid.UUID) (*sqlconfig.Transaction, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := slices.IndexFunc(t.rows, func(row sqlconfig.Transaction) bool {
		return row.ID == id
	})
	if idx < 0 {
		return nil, nil
	}

	row := t.rows[idx]
	t.rows = slices.Delete(t.rows, idx, idx+1)
	return &row, nil
}

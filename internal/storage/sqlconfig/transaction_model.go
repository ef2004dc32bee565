package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionType is the stored kind of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID          uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	Date        time.Time // defaults to now if zero
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
// List orders rows by date descending; rows sharing a date keep insertion order.
// DeleteByID returns a nil transaction and a nil error when no row has the id.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	List(ctx context.Context, filter TransactionFilter) ([]*Transaction, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
}

package service

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// TransactionType represents a transaction type in the service layer.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// TransactionInput is a candidate record as received from a client.
// Amount is nil and Date is empty when the client omitted them.
type TransactionInput struct {
	Type        string
	Amount      *decimal.Decimal
	Description string
	Date        string
}

// Summary holds separate income and expense totals.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

func transactionTypeToStorage(t TransactionType) sqlconfig.TransactionType {
	return sqlconfig.TransactionType(t)
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		Type:        TransactionType(row.Type),
		Amount:      row.Amount,
		Description: row.Description,
		Date:        row.Date,
	}
}

func (t TransactionType) valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

func corruptTypeError(t Transaction) error {
	return fmt.Errorf("%w: transaction %s has type %q", ErrCorruptTransaction, t.ID, t.Type)
}

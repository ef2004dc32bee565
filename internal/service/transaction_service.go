package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic. It is the only
// caller of the transactions table.
type TransactionService struct {
	storage   *storage.Storage
	location  *time.Location
	validator *Validator
}

// NewTransactionService creates a new TransactionService. loc is the
// reference zone for calendar dates.
func NewTransactionService(store *storage.Storage, loc *time.Location) *TransactionService {
	return newTransactionService(store, loc, time.Now)
}

func newTransactionService(store *storage.Storage, loc *time.Location, now func() time.Time) *TransactionService {
	return &TransactionService{
		storage:   store,
		location:  loc,
		validator: NewValidator(loc, now),
	}
}

// CreateTransaction validates the input and stores it.
func (s *TransactionService) CreateTransaction(ctx context.Context, input TransactionInput) (Transaction, error) {
	transaction, err := s.validator.Validate(input)
	if err != nil {
		return Transaction{}, err
	}

	row, err := s.storage.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		Type:        transactionTypeToStorage(transaction.Type),
		Amount:      transaction.Amount,
		Description: transaction.Description,
		Date:        transaction.Date,
	})
	if err != nil {
		return Transaction{}, &PersistenceError{Op: "insert", Err: err}
	}

	return transactionFromStorage(row), nil
}

// ListTransactions returns every transaction, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]Transaction, error) {
	return s.list(ctx, sqlconfig.AllTransactions{})
}

// SearchTransactions returns the transactions on a calendar day and/or of a type.
func (s *TransactionService) SearchTransactions(ctx context.Context, params SearchParams) ([]Transaction, error) {
	filter, err := BuildSearchFilter(params, s.location)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, filter)
}

// DeleteTransaction removes a transaction. found is false when no record
// had the id; that is not an error.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) (Transaction, bool, error) {
	row, err := s.storage.Transactions.DeleteByID(ctx, id)
	if err != nil {
		return Transaction{}, false, &PersistenceError{Op: "delete", Err: err}
	}
	if row == nil {
		return Transaction{}, false, nil
	}
	return transactionFromStorage(row), true, nil
}

// GetBalance returns total income minus total expense over all records.
func (s *TransactionService) GetBalance(ctx context.Context) (decimal.Decimal, error) {
	transactions, err := s.ListTransactions(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return Balance(transactions)
}

// GetSummary returns income and expense totals over all records.
func (s *TransactionService) GetSummary(ctx context.Context) (Summary, error) {
	transactions, err := s.ListTransactions(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(transactions)
}

// ExportTransactions renders the filtered set, newest first.
func (s *TransactionService) ExportTransactions(ctx context.Context, params ExportParams) (Export, error) {
	format, err := ParseExportFormat(params.Format)
	if err != nil {
		return Export{}, err
	}
	filter, err := BuildExportFilter(params, s.location)
	if err != nil {
		return Export{}, err
	}

	transactions, err := s.list(ctx, filter)
	if err != nil {
		return Export{}, err
	}
	return renderExport(transactions, format, s.location)
}

func (s *TransactionService) list(ctx context.Context, filter sqlconfig.TransactionFilter) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}
	return transactions, nil
}

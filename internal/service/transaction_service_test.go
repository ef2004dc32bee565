package service

import (
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

func newTestService(t *testing.T) (*TransactionService, *sqlconfig.MockITransactionTable) {
	t.Helper()
	mockTable := sqlconfig.NewMockITransactionTable(t)
	store := &storage.Storage{Transactions: mockTable}
	svc := newTransactionService(store, time.UTC, func() time.Time { return fixedNow })
	return svc, mockTable
}

func newMemoryService(t *testing.T) *TransactionService {
	t.Helper()
	return newTransactionService(storage.NewMemoryStorage(), time.UTC, func() time.Time { return fixedNow })
}

func create(t *testing.T, svc *TransactionService, txType, amount, description, date string) Transaction {
	t.Helper()
	created, err := svc.CreateTransaction(context.Background(), TransactionInput{
		Type:        txType,
		Amount:      amountPtr(amount),
		Description: description,
		Date:        date,
	})
	require.NoError(t, err)
	return created
}

func descriptionsOf(transactions []Transaction) []string {
	out := make([]string, len(transactions))
	for i, transaction := range transactions {
		out[i] = transaction.Description
	}
	return out
}

// -- CreateTransaction tests --

func TestCreateTransaction_Success(t *testing.T) {
	svc, mockTable := newTestService(t)

	txDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	expectedID := uuid.Must(uuid.NewV4())

	mockTable.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.Type == sqlconfig.TransactionTypeExpense &&
			c.Amount.Equal(decimal.RequireFromString("42.50")) &&
			c.Description == "Groceries" &&
			c.Date.Equal(txDate)
	})).RunAndReturn(func(_ context.Context, c *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
		return &sqlconfig.Transaction{
			ID:          expectedID,
			Type:        c.Type,
			Amount:      c.Amount,
			Description: c.Description,
			Date:        c.Date,
		}, nil
	})

	created, err := svc.CreateTransaction(context.Background(), TransactionInput{
		Type:        "expense",
		Amount:      amountPtr("42.50"),
		Description: " Groceries ",
		Date:        "2024-03-01",
	})

	require.NoError(t, err)
	assert.Equal(t, expectedID, created.ID)
	assert.Equal(t, TransactionTypeExpense, created.Type)
	assert.Equal(t, "Groceries", created.Description)
}

func TestCreateTransaction_ValidationNeverReachesStorage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateTransaction(context.Background(), TransactionInput{
		Type:        "income",
		Amount:      amountPtr("-1"),
		Description: "Refund",
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "amount", validationErr.Field)
}

func TestCreateTransaction_StorageError(t *testing.T) {
	svc, mockTable := newTestService(t)
	storageErr := errors.New("connection refused")

	mockTable.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil, storageErr).Once()

	_, err := svc.CreateTransaction(context.Background(), TransactionInput{
		Type:        "income",
		Amount:      amountPtr("10.00"),
		Description: "Test",
	})

	var persistenceErr *PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	assert.Equal(t, "insert", persistenceErr.Op)
	assert.ErrorIs(t, err, storageErr)
}

func TestCreateThenList_IncludesRecord(t *testing.T) {
	svc := newMemoryService(t)
	ctx := context.Background()

	created := create(t, svc, "income", "100", "Salary", "2024-03-01")

	all, err := svc.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.NotEqual(t, uuid.Nil, all[0].ID)
	assert.Equal(t, created, all[0])
}

// -- ListTransactions tests --

func TestListTransactions_SortedWithStableTies(t *testing.T) {
	svc := newMemoryService(t)

	create(t, svc, "income", "1", "old", "2024-01-01")
	create(t, svc, "income", "1", "tie-a", "2024-02-01")
	create(t, svc, "expense", "1", "new", "2024-03-01")
	create(t, svc, "expense", "1", "tie-b", "2024-02-01")

	all, err := svc.ListTransactions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"new", "tie-a", "tie-b", "old"}, descriptionsOf(all))
}

func TestListTransactions_Idempotent(t *testing.T) {
	svc := newMemoryService(t)
	ctx := context.Background()

	create(t, svc, "income", "5", "a", "2024-01-01")
	create(t, svc, "expense", "3", "b", "2024-01-01")

	first, err := svc.ListTransactions(ctx)
	require.NoError(t, err)
	second, err := svc.ListTransactions(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestListTransactions_EmptyIsNotNil(t *testing.T) {
	svc := newMemoryService(t)

	all, err := svc.ListTransactions(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestListTransactions_StorageError(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().List(mock.Anything, sqlconfig.AllTransactions{}).Return(nil, errors.New("db down"))

	_, err := svc.ListTransactions(context.Background())

	var persistenceErr *PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	assert.Equal(t, "list", persistenceErr.Op)
}

// -- SearchTransactions tests --

func TestSearchTransactions_SingleDay(t *testing.T) {
	svc := newMemoryService(t)

	create(t, svc, "income", "1", "last second", "2023-10-01T23:59:59")
	create(t, svc, "income", "1", "next day", "2023-10-02T00:00:00")
	create(t, svc, "expense", "1", "midnight", "2023-10-01T00:00:00")

	found, err := svc.SearchTransactions(context.Background(), SearchParams{Date: "2023-10-01"})

	require.NoError(t, err)
	assert.Equal(t, []string{"last second", "midnight"}, descriptionsOf(found))
}

func TestSearchTransactions_InvalidFilterNeverReachesStorage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SearchTransactions(context.Background(), SearchParams{Type: "gift"})

	var filterErr *InvalidFilterError
	assert.ErrorAs(t, err, &filterErr)
}

// -- DeleteTransaction tests --

func TestDeleteTransaction(t *testing.T) {
	svc := newMemoryService(t)
	ctx := context.Background()

	created := create(t, svc, "income", "1", "gone", "2024-01-01")

	deleted, found, err := svc.DeleteTransaction(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, created, deleted)

	_, found, err = svc.DeleteTransaction(ctx, created.ID)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteTransaction_StorageError(t *testing.T) {
	svc, mockTable := newTestService(t)
	id := uuid.Must(uuid.NewV4())

	mockTable.EXPECT().DeleteByID(mock.Anything, id).Return(nil, errors.New("timeout"))

	_, found, err := svc.DeleteTransaction(context.Background(), id)

	var persistenceErr *PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	assert.Equal(t, "delete", persistenceErr.Op)
	assert.False(t, found)
}

// -- Balance and summary tests --

func TestGetBalanceAndSummary(t *testing.T) {
	svc := newMemoryService(t)
	ctx := context.Background()

	balance, err := svc.GetBalance(ctx)
	require.NoError(t, err)
	assert.True(t, balance.IsZero())

	create(t, svc, "income", "100", "salary", "2024-01-01")
	create(t, svc, "expense", "40", "rent", "2024-01-02")
	create(t, svc, "income", "10", "gift", "2024-01-03")

	balance, err = svc.GetBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "70", balance.String())

	summary, err := svc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "110", summary.Income.String())
	assert.Equal(t, "40", summary.Expense.String())
}

func TestGetBalance_CorruptRecord(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return([]*sqlconfig.Transaction{
		{ID: uuid.Must(uuid.NewV4()), Type: "bonus", Amount: decimal.NewFromInt(5)},
	}, nil)

	_, err := svc.GetBalance(context.Background())

	assert.ErrorIs(t, err, ErrCorruptTransaction)
}

// -- ExportTransactions tests --

func TestExportTransactions_CSV(t *testing.T) {
	svc := newMemoryService(t)

	create(t, svc, "expense", "12.5", "Lunch, with team", "2023-10-01T12:00:00")
	create(t, svc, "income", "100", "Salary", "2023-10-02")
	create(t, svc, "expense", "9", "Too late", "2023-10-03")

	export, err := svc.ExportTransactions(context.Background(), ExportParams{
		StartDate: "2023-10-01",
		EndDate:   "2023-10-02",
	})
	require.NoError(t, err)

	assert.Equal(t, "transactions.csv", export.Filename)
	assert.Equal(t, "text/csv", export.ContentType)

	records, err := csv.NewReader(strings.NewReader(string(export.Body))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Salary", records[1][3])
	assert.Equal(t, "Lunch, with team", records[2][3])
}

func TestExportTransactions_XLSX(t *testing.T) {
	svc := newMemoryService(t)

	export, err := svc.ExportTransactions(context.Background(), ExportParams{Format: "xlsx"})

	require.NoError(t, err)
	assert.Equal(t, "transactions.xlsx", export.Filename)
	assert.NotEmpty(t, export.Body)
}

func TestExportTransactions_InvalidParams(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var filterErr *InvalidFilterError
	_, err := svc.ExportTransactions(ctx, ExportParams{Format: "pdf"})
	assert.ErrorAs(t, err, &filterErr)

	_, err = svc.ExportTransactions(ctx, ExportParams{StartDate: "2023-10-05", EndDate: "2023-10-01"})
	assert.ErrorAs(t, err, &filterErr)
}

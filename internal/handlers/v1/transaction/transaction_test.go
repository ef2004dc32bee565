package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/service"
)

// mockTransactionService is a mock for transactionService.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, input service.TransactionInput) (service.Transaction, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(service.Transaction), args.Error(1)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context) ([]service.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Transaction), args.Error(1)
}

func (m *mockTransactionService) SearchTransactions(ctx context.Context, params service.SearchParams) ([]service.Transaction, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Transaction), args.Error(1)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) (service.Transaction, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.Transaction), args.Bool(1), args.Error(2)
}

func (m *mockTransactionService) ExportTransactions(ctx context.Context, params service.ExportParams) (service.Export, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(service.Export), args.Error(1)
}

// newTestAPI registers every transaction endpoint against a humatest API.
func newTestAPI(t *testing.T, svc transactionService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t, handlers.NewConfig("Test API", "1.0.0"))
	Register(api, svc)
	return api
}

func sampleTransaction(description string) service.Transaction {
	return service.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		Type:        service.TransactionTypeExpense,
		Amount:      decimal.RequireFromString("12.50"),
		Description: description,
		Date:        time.Date(2023, 10, 1, 9, 30, 0, 0, time.UTC),
	}
}

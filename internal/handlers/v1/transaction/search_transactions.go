package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// SearchTransactionsInput is the Huma input for searching transactions.
type SearchTransactionsInput struct {
	Date string `query:"date" doc:"Calendar day, YYYY-MM-DD (a date-time is truncated to its day)"`
	Type string `query:"type" doc:"income, expense or all"`
}

// transactionSearcher is the interface for searching transactions.
type transactionSearcher interface {
	SearchTransactions(ctx context.Context, params service.SearchParams) ([]service.Transaction, error)
}

// SearchTransactionsHandler handles GET /transactions/search.
type SearchTransactionsHandler struct {
	TransactionService transactionSearcher
}

// NewSearchTransactionsHandler creates a new SearchTransactionsHandler.
func NewSearchTransactionsHandler(svc transactionSearcher) *SearchTransactionsHandler {
	return &SearchTransactionsHandler{TransactionService: svc}
}

// Register registers the search transactions endpoint with the Huma API.
func (h *SearchTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "search-transactions",
		Method:      http.MethodGet,
		Path:        "/transactions/search",
		Summary:     "Search transactions",
		Description: "Returns the transactions on a calendar day and/or of a type, newest first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *SearchTransactionsHandler) handle(ctx context.Context, input *SearchTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("date", input.Date)
	logData.AddData("type", input.Type)

	stopTimer := logData.AddTiming("searchTransactionsMs")
	transactions, err := h.TransactionService.SearchTransactions(ctx, service.SearchParams{
		Date: input.Date,
		Type: input.Type,
	})
	stopTimer()
	if err != nil {
		return nil, handlers.ServiceError(ctx, err, "failed to search transactions")
	}

	logData.AddData("transactionCount", len(transactions))

	return &ListTransactionsOutput{Body: fromServiceList(transactions)}, nil
}

package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// GetBalanceOutput is the Huma output for the balance.
type GetBalanceOutput struct {
	Body Balance
}

// balanceReader is the interface for computing the balance.
type balanceReader interface {
	GetBalance(ctx context.Context) (decimal.Decimal, error)
}

// GetBalanceHandler handles GET /balance.
type GetBalanceHandler struct {
	TransactionService balanceReader
}

// NewGetBalanceHandler creates a new GetBalanceHandler.
func NewGetBalanceHandler(svc balanceReader) *GetBalanceHandler {
	return &GetBalanceHandler{TransactionService: svc}
}

// Register registers the balance endpoint with the Huma API.
func (h *GetBalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-balance",
		Method:      http.MethodGet,
		Path:        "/balance",
		Summary:     "Get balance",
		Description: "Returns total income minus total expense over every transaction.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *GetBalanceHandler) handle(ctx context.Context, _ *struct{}) (*GetBalanceOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("getBalanceMs")
	balance, err := h.TransactionService.GetBalance(ctx)
	stopTimer()
	if err != nil {
		return nil, handlers.ServiceError(ctx, err, "failed to compute balance")
	}

	return &GetBalanceOutput{Body: Balance{Balance: handlers.NewNumber(balance)}}, nil
}

package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
// Every field is optional at the schema level so the service reports
// missing values with its own messages.
type CreateTransactionBody struct {
	Type        string   `json:"type,omitempty" doc:"income or expense"`
	Amount      *float64 `json:"amount,omitempty" doc:"Non-negative amount"`
	Description string   `json:"description,omitempty" doc:"Description, at most 100 characters"`
	Date        string   `json:"date,omitempty" doc:"YYYY-MM-DD or RFC3339 date, defaults to now"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, input service.TransactionInput) (service.Transaction, error)
}

// CreateTransactionHandler handles POST /transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/transactions",
		Summary:       "Create transaction",
		Description:   "Validates and stores a new income or expense record.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) service.TransactionInput {
	var amount *decimal.Decimal
	if input.Body.Amount != nil {
		value := decimal.NewFromFloat(*input.Body.Amount)
		amount = &value
	}

	return service.TransactionInput{
		Type:        input.Body.Type,
		Amount:      amount,
		Description: input.Body.Description,
		Date:        input.Body.Date,
	}
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("createTransactionMs")
	created, err := h.TransactionService.CreateTransaction(ctx, parseCreateTransactionInput(input))
	stopTimer()
	if err != nil {
		return nil, handlers.ServiceError(ctx, err, "failed to create transaction")
	}

	logData.AddData("transactionID", created.ID.String())

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   fromService(created),
	}, nil
}

package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	ID string `path:"id" doc:"Transaction id"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
// Body is the deleted record, or null when nothing had the id.
type DeleteTransactionOutput struct {
	Found bool         `header:"X-Transaction-Found" doc:"False when no transaction had the id"`
	Body  *Transaction
}

// transactionDeleter is the interface for deleting transactions.
type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, id uuid.UUID) (service.Transaction, bool, error)
}

// DeleteTransactionHandler handles DELETE /transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/transactions/{id}",
		Summary:     "Delete transaction",
		Description: "Removes a transaction and returns it. An unknown id is not an error: the body is null and X-Transaction-Found is false.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	logData.AddData("transactionID", input.ID)

	// No stored record can carry an id that does not parse.
	id, err := uuid.FromString(input.ID)
	if err != nil {
		logData.AddData("found", false)
		return &DeleteTransactionOutput{Found: false}, nil
	}

	stopTimer := logData.AddTiming("deleteTransactionMs")
	deleted, found, err := h.TransactionService.DeleteTransaction(ctx, id)
	stopTimer()
	if err != nil {
		return nil, handlers.ServiceError(ctx, err, "failed to delete transaction")
	}

	logData.AddData("found", found)

	out := &DeleteTransactionOutput{Found: found}
	if found {
		tx := fromService(deleted)
		out.Body = &tx
	}

	return out, nil
}

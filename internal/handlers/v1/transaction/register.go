package transaction

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

// transactionService is everything the transaction endpoints need.
type transactionService interface {
	transactionCreator
	transactionLister
	transactionSearcher
	transactionDeleter
	transactionExporter
}

var _ transactionService = (*service.TransactionService)(nil)

// Register wires every transaction endpoint.
func Register(api huma.API, svc transactionService) {
	NewCreateTransactionHandler(svc).Register(api)
	NewListTransactionsHandler(svc).Register(api)
	NewSearchTransactionsHandler(svc).Register(api)
	NewExportTransactionsHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
}

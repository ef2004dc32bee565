package report

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

type reportService interface {
	balanceReader
	summaryReader
}

var _ reportService = (*service.TransactionService)(nil)

// Register wires the balance and summary endpoints.
func Register(api huma.API, svc reportService) {
	NewGetBalanceHandler(svc).Register(api)
	NewGetSummaryHandler(svc).Register(api)
}

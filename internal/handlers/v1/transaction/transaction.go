package transaction

import (
	"time"

	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string          `json:"id" doc:"Transaction UUID"`
	Type        string          `json:"type" enum:"income,expense" doc:"Transaction type"`
	Amount      handlers.Number `json:"amount" doc:"Non-negative amount"`
	Description string          `json:"description" doc:"Description of the transaction"`
	Date        string          `json:"date" doc:"RFC3339 transaction date, sub-second digits kept"`
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		Type:        string(tx.Type),
		Amount:      handlers.NewNumber(tx.Amount),
		Description: tx.Description,
		Date:        tx.Date.Format(time.RFC3339Nano),
	}
}

func fromServiceList(transactions []service.Transaction) []Transaction {
	resp := make([]Transaction, len(transactions))
	for i, tx := range transactions {
		resp[i] = fromService(tx)
	}
	return resp
}

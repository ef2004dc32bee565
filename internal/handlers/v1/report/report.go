// Package report serves the figures derived from the full transaction set.
package report

import "github.com/carson-networks/ledger-server/internal/handlers"

// Balance is the API response model for the balance.
type Balance struct {
	Balance handlers.Number `json:"balance" doc:"Total income minus total expense"`
}

// Summary is the API response model for the income and expense totals.
type Summary struct {
	Income  handlers.Number `json:"income" doc:"Total of income"`
	Expense handlers.Number `json:"expense" doc:"Total of expense"`
}

package service

import "github.com/shopspring/decimal"

// Balance is total income minus total expense. It is computed over the whole
// set, so a corrupt record fails the call instead of skewing the result.
func Balance(transactions []Transaction) (decimal.Decimal, error) {
	summary, err := Summarize(transactions)
	if err != nil {
		return decimal.Zero, err
	}
	return summary.Income.Sub(summary.Expense), nil
}

// Summarize totals income and expense separately.
func Summarize(transactions []Transaction) (Summary, error) {
	summary := Summary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, t := range transactions {
		switch t.Type {
		case TransactionTypeIncome:
			summary.Income = summary.Income.Add(t.Amount)
		case TransactionTypeExpense:
			summary.Expense = summary.Expense.Add(t.Amount)
		default:
			return Summary{}, corruptTypeError(t)
		}
	}
	return summary, nil
}

package finance

import "github.com/shopspring/decimal"

// Summary holds rounded income and expense totals and their balance
type Summary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Balance       decimal.Decimal `json:"balance"`
}

// ComputeSummary sums two amount lists and returns totals rounded half-up to
// 2 decimal places. The balance is computed from the already-rounded totals so
// no representation drift leaks into the reported figure. Empty inputs yield
// all-zero totals.
func ComputeSummary(incomes, expenses []decimal.Decimal) Summary {
	totalIncome := sum(incomes).Round(2)
	totalExpenses := sum(expenses).Round(2)
	return Summary{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Balance:       totalIncome.Sub(totalExpenses),
	}
}

// sum adds a list of exact decimal amounts
func sum(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

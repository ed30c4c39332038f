package finance

import "github.com/shopspring/decimal"

// Classification flags for expenses
const (
	FlagExceedsBalance = "exceeds_balance" // Amount is strictly greater than the known balance
	FlagLargeExpense   = "large_expense"   // Amount is at or above the large-expense threshold
)

// ClassifyExpense flags an expense amount against the current balance and a
// large-expense threshold. A nil balance skips the exceeds_balance check.
// Both flags may apply at once.
func ClassifyExpense(amount decimal.Decimal, balance *decimal.Decimal, threshold decimal.Decimal) []string {
	flags := []string{}
	if balance != nil && amount.GreaterThan(*balance) {
		flags = append(flags, FlagExceedsBalance)
	}
	if amount.GreaterThanOrEqual(threshold) {
		flags = append(flags, FlagLargeExpense)
	}
	return flags
}

package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func balancePtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestClassifySmallExpenseNoFlags(t *testing.T) {
	flags := ClassifyExpense(decimal.NewFromInt(50), balancePtr(1000), decimal.NewFromInt(500))
	assert.Empty(t, flags)
}

func TestClassifyLargeThresholdIsInclusive(t *testing.T) {
	// Exactly at the threshold counts as large
	flags := ClassifyExpense(decimal.NewFromInt(500), balancePtr(1000), decimal.NewFromInt(500))
	assert.Equal(t, []string{FlagLargeExpense}, flags)
}

func TestClassifyExceedsBalanceOnly(t *testing.T) {
	flags := ClassifyExpense(decimal.NewFromInt(900), balancePtr(800), decimal.NewFromInt(1000))
	assert.Equal(t, []string{FlagExceedsBalance}, flags)
}

func TestClassifyExceedsBalanceIsStrict(t *testing.T) {
	// Amount equal to the balance does not trip the flag
	flags := ClassifyExpense(decimal.NewFromInt(800), balancePtr(800), decimal.NewFromInt(1000))
	assert.Empty(t, flags)
}

func TestClassifyBothFlags(t *testing.T) {
	flags := ClassifyExpense(decimal.NewFromInt(1500), balancePtr(1000), decimal.NewFromInt(500))
	assert.ElementsMatch(t, []string{FlagExceedsBalance, FlagLargeExpense}, flags)
}

func TestClassifyUnknownBalanceSkipsCheck(t *testing.T) {
	flags := ClassifyExpense(decimal.NewFromInt(600), nil, decimal.NewFromInt(500))
	assert.Equal(t, []string{FlagLargeExpense}, flags)
}

package api

import (
	"strconv" // String conversion

	"moneyflow/internal/domain"     // Importing domain models
	"moneyflow/internal/finance"    // Summary computation
	"moneyflow/internal/middleware" // Context keys

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Decimal money arithmetic
	"gorm.io/gorm"                  // GORM ORM library
)

// currentUser returns the user resolved by the bearer middleware
func currentUser(c *gin.Context) domain.User {
	return c.MustGet(middleware.CurrentUserKey).(domain.User)
}

// parseID reads a numeric path parameter, reporting whether it was valid
func parseID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v < 0 {
		return 0, false
	}
	return uint(v), true
}

// amountsByKind fetches all transaction amounts of one kind
func amountsByKind(db *gorm.DB, kind string) ([]decimal.Decimal, error) {
	var amounts []decimal.Decimal
	err := db.Model(&domain.Transaction{}).Where("kind = ?", kind).Pluck("amount", &amounts).Error
	return amounts, err
}

// currentSummary aggregates all stored transactions into income/expense totals
func currentSummary(db *gorm.DB) (finance.Summary, error) {
	incomes, err := amountsByKind(db, domain.KindIncome)
	if err != nil {
		return finance.Summary{}, err
	}
	expenses, err := amountsByKind(db, domain.KindExpense)
	if err != nil {
		return finance.Summary{}, err
	}
	return finance.ComputeSummary(incomes, expenses), nil
}

package api

import (
	"net/http" // HTTP status codes

	"moneyflow/internal/config"  // Large-expense threshold
	"moneyflow/internal/domain"  // Importing domain models
	"moneyflow/internal/finance" // Expense classification

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// ExpenseCreateResponse is the created expense plus its classification flags
type ExpenseCreateResponse struct {
	domain.Transaction
	Flags []string `json:"flags"` // exceeds_balance and/or large_expense
}

// CreateExpenseHandler records an expense transaction. The category must
// exist, and the response carries classification flags computed against the
// balance before this expense.
func CreateExpenseHandler(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TransactionCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if req.CategoryID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category is required"})
			return
		}
		var category domain.Category
		if err := db.First(&category, *req.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
			return
		}
		tx, errMsg := validateTransactionFields(req)
		if errMsg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
			return
		}
		tx.Kind = domain.KindExpense
		tx.CategoryID = req.CategoryID

		// Classify against the balance as it stands before this expense
		summary, err := currentSummary(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance"})
			return
		}
		balance := summary.Balance
		flags := finance.ClassifyExpense(tx.Amount, &balance, cfg.LargeExpenseThreshold)

		if err := db.Create(&tx).Error; err != nil {
			logrus.WithFields(logrus.Fields{"error": err.Error()}).Error("Failed to create expense")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"transaction_id": tx.ID,
			"amount":         tx.Amount,
			"category_id":    *tx.CategoryID,
			"type":           tx.Kind,
			"flags":          flags,
		}).Info("Expense created")
		c.JSON(http.StatusCreated, ExpenseCreateResponse{Transaction: tx, Flags: flags})
	}
}

// ListExpensesHandler returns all expense transactions, newest first
func ListExpensesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		transactions := []domain.Transaction{}
		if err := db.Where("kind = ?", domain.KindExpense).
			Order("date desc, id desc").
			Find(&transactions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
			return
		}
		c.JSON(http.StatusOK, transactions)
	}
}

// UpdateExpenseHandler patches an expense transaction; a supplied category
// must exist
func UpdateExpenseHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
			return
		}
		var tx domain.Transaction
		if err := db.Where("id = ? AND kind = ?", id, domain.KindExpense).First(&tx).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
			return
		}
		var req TransactionUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if req.CategoryID != nil {
			var category domain.Category
			if err := db.First(&category, *req.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
				return
			}
			tx.CategoryID = req.CategoryID
		}
		if errMsg := applyTransactionUpdate(&tx, req); errMsg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
			return
		}
		if err := db.Save(&tx).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense"})
			return
		}
		c.JSON(http.StatusOK, tx)
	}
}

// DeleteExpenseHandler removes an expense transaction by id
func DeleteExpenseHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
			return
		}
		var tx domain.Transaction
		if err := db.Where("id = ? AND kind = ?", id, domain.KindExpense).First(&tx).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
			return
		}
		if err := db.Delete(&tx).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
			return
		}
		logrus.WithFields(logrus.Fields{"transaction_id": id}).Info("Expense deleted")
		c.Status(http.StatusNoContent)
	}
}

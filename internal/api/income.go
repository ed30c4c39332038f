package api

import (
	"net/http" // HTTP status codes

	"moneyflow/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// CreateIncomeHandler records an income transaction. Income never carries a
// category reference.
func CreateIncomeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TransactionCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if req.CategoryID != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Income cannot reference a category"})
			return
		}
		tx, errMsg := validateTransactionFields(req)
		if errMsg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
			return
		}
		tx.Kind = domain.KindIncome
		if err := db.Create(&tx).Error; err != nil {
			logrus.WithFields(logrus.Fields{"error": err.Error()}).Error("Failed to create income")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create income"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"transaction_id": tx.ID,
			"amount":         tx.Amount,
			"type":           tx.Kind,
		}).Info("Income created")
		c.JSON(http.StatusCreated, tx)
	}
}

// ListIncomeHandler returns all income transactions, newest first
func ListIncomeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		transactions := []domain.Transaction{}
		if err := db.Where("kind = ?", domain.KindIncome).
			Order("date desc, id desc").
			Find(&transactions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch income"})
			return
		}
		c.JSON(http.StatusOK, transactions)
	}
}

// UpdateIncomeHandler patches an income transaction; only supplied fields
// change and a category can never be attached
func UpdateIncomeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Income not found"})
			return
		}
		var tx domain.Transaction
		if err := db.Where("id = ? AND kind = ?", id, domain.KindIncome).First(&tx).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Income not found"})
			return
		}
		var req TransactionUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if req.CategoryID != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Income cannot reference a category"})
			return
		}
		if errMsg := applyTransactionUpdate(&tx, req); errMsg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
			return
		}
		if err := db.Save(&tx).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update income"})
			return
		}
		c.JSON(http.StatusOK, tx)
	}
}

// DeleteIncomeHandler removes an income transaction by id
func DeleteIncomeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Income not found"})
			return
		}
		var tx domain.Transaction
		if err := db.Where("id = ? AND kind = ?", id, domain.KindIncome).First(&tx).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Income not found"})
			return
		}
		if err := db.Delete(&tx).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete income"})
			return
		}
		logrus.WithFields(logrus.Fields{"transaction_id": id}).Info("Income deleted")
		c.Status(http.StatusNoContent)
	}
}

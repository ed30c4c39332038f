package api

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"moneyflow/internal/domain"  // Importing domain models
	"moneyflow/internal/finance" // In-memory transaction filter

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Decimal money arithmetic
	"gorm.io/gorm"                  // GORM ORM library
)

// TransactionCreateRequest is the payload for creating income or an expense.
// The kind is never sent by the client; the handler sets it.
type TransactionCreateRequest struct {
	Name       string          `json:"name" binding:"required"`   // Short description
	Amount     decimal.Decimal `json:"amount" binding:"required"` // Positive monetary amount
	Date       string          `json:"date" binding:"required"`   // YYYY-MM-DD
	Note       *string         `json:"note"`                      // Optional note
	CategoryID *uint           `json:"category_id"`               // Expenses only
}

// TransactionUpdateRequest is the partial-update payload; only supplied
// fields change
type TransactionUpdateRequest struct {
	Name       *string          `json:"name"`
	Amount     *decimal.Decimal `json:"amount"`
	Date       *string          `json:"date"`
	Note       *string          `json:"note"`
	CategoryID *uint            `json:"category_id"`
}

// validateTransactionFields checks the shared name/amount/date/note rules and
// returns the normalized values or a client-facing error message
func validateTransactionFields(req TransactionCreateRequest) (domain.Transaction, string) {
	name := strings.TrimSpace(req.Name)
	if len(name) < 1 || len(name) > domain.TransactionNameMaxLen {
		return domain.Transaction{}, "Name must be 1-50 characters"
	}
	if !req.Amount.IsPositive() {
		return domain.Transaction{}, "Amount must be greater than 0"
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return domain.Transaction{}, err.Error()
	}
	note := req.Note
	if note != nil {
		trimmed := strings.TrimSpace(*note)
		if len(trimmed) > domain.TransactionNoteMaxLen {
			return domain.Transaction{}, "Note must be at most 300 characters"
		}
		note = &trimmed
	}
	return domain.Transaction{
		Name:   name,
		Amount: req.Amount,
		Date:   date,
		Note:   note,
	}, ""
}

// applyTransactionUpdate mutates tx with the supplied fields, validating each
// one; it returns a client-facing error message on the first bad field.
// Category changes are handled by the kind-specific handlers.
func applyTransactionUpdate(tx *domain.Transaction, req TransactionUpdateRequest) string {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len(name) < 1 || len(name) > domain.TransactionNameMaxLen {
			return "Name must be 1-50 characters"
		}
		tx.Name = name
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return "Amount must be greater than 0"
		}
		tx.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := domain.ParseDate(*req.Date)
		if err != nil {
			return err.Error()
		}
		tx.Date = date
	}
	if req.Note != nil {
		trimmed := strings.TrimSpace(*req.Note)
		if len(trimmed) > domain.TransactionNoteMaxLen {
			return "Note must be at most 300 characters"
		}
		tx.Note = &trimmed
	}
	return ""
}

// ListTransactionsHandler returns the combined income and expense listing,
// newest first, narrowed by the optional kind/date-range/query filters
func ListTransactionsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := finance.FilterOptions{Query: c.Query("q")}

		if kind := c.Query("kind"); kind != "" {
			if kind != domain.KindIncome && kind != domain.KindExpense {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Transaction kind must be income or expense"})
				return
			}
			opts.Kind = kind
		}
		if from := c.Query("date_from"); from != "" {
			date, err := domain.ParseDate(from)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			opts.DateFrom = &date
		}
		if to := c.Query("date_to"); to != "" {
			date, err := domain.ParseDate(to)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			opts.DateTo = &date
		}

		transactions := []domain.Transaction{}
		if err := db.Order("date desc, id desc").Find(&transactions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}
		c.JSON(http.StatusOK, finance.FilterTransactions(transactions, opts))
	}
}

package domain

import "github.com/shopspring/decimal"

// Transaction kinds
const (
	KindIncome  = "income"  // Money coming in, no category
	KindExpense = "expense" // Money going out, category required
)

func init() {
	// Monetary amounts are serialized as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction Model
type Transaction struct {
	ID         uint            `gorm:"primaryKey" json:"id"`                // Primary key
	Name       string          `gorm:"size:50;not null" json:"name"`        // Short description, e.g. "Groceries"
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"` // Positive monetary amount
	Date       Date            `gorm:"type:date;not null" json:"date"`      // Calendar date of the transaction
	Note       *string         `gorm:"size:300" json:"note"`                // Optional free-text note
	Kind       string          `gorm:"size:7;not null;index" json:"type"`   // income or expense
	CategoryID *uint           `gorm:"index" json:"category_id"`            // Set for expenses only
}

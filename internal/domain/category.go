package domain

// Category Model
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`                  // Primary key
	Name string `gorm:"uniqueIndex;size:80;not null" json:"name"` // Unique category name (case-sensitive)
}

// Limits applied to category and transaction text fields
const (
	CategoryNameMaxLen    = 80  // Maximum category name length after trimming
	TransactionNameMaxLen = 50  // Maximum transaction name length
	TransactionNoteMaxLen = 300 // Maximum note length
)

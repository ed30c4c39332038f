package domain

import "time"

// User Model
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`                 // Primary key
	Username     string    `gorm:"uniqueIndex;not null" json:"username"` // Unique username
	PasswordHash string    `gorm:"not null" json:"-"`                    // Hashed password, never serialized
	CreatedAt    time.Time `json:"created_at"`                           // Account creation timestamp
}

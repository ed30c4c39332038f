package db

import (
	"moneyflow/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// DefaultCategories are seeded once on an empty database so the UI has a
// sensible dropdown from day one
var DefaultCategories = []string{
	"Food & Dining",
	"Groceries",
	"Transport",
	"Shopping",
	"Bills & Utilities",
	"Entertainment",
	"Health & Medical",
	"Education",
	"Travel",
	"Gifts",
	"Personal Care",
	"Subscriptions",
	"Insurance",
	"Savings",
	"Other",
}

// Migrate performs automatic migration for the database schema and seeds
// the default categories
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	err = db.AutoMigrate(&domain.User{}, &domain.Category{}, &domain.Transaction{})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	if err := SeedDefaultCategories(db); err != nil {
		logrus.Fatalf("seeding categories failed: %v", err)
	}
	logrus.Info("Migration completed.")
}

// SeedDefaultCategories inserts the default category set when none exist yet
func SeedDefaultCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logrus.Info("Categories already exist, skipping seed")
		return nil
	}
	categories := make([]domain.Category, len(DefaultCategories))
	for i, name := range DefaultCategories {
		categories[i] = domain.Category{Name: name}
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}
	logrus.Infof("Added %d default categories", len(categories))
	return nil
}

package main

import (
	"moneyflow/internal/config" // Custom import path (Config)
	"moneyflow/internal/db"     // Custom import path (Database)
)

// Main entry point for migration and category seeding
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())
}

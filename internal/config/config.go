package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
	"github.com/shopspring/decimal"
)

// Config holds the application configuration
type Config struct {
	AppPort               string          // Application port
	DBUser                string          // Database user
	DBPassword            string          // Database password
	DBHost                string          // Database host
	DBPort                string          // Database port
	DBName                string          // Database name
	JWTSecret             string          // JWT signing secret
	TokenTTLMinutes       int             // Access token lifetime in minutes
	LargeExpenseThreshold decimal.Decimal // Amount at or above which an expense is flagged as large
	IsProd                bool            // Is production environment
}

// Defaults applied when the environment leaves a knob unset
const (
	DefaultTokenTTLMinutes = 60
	DefaultLargeThreshold  = 500
)

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present

	ttl := DefaultTokenTTLMinutes
	if v, err := strconv.Atoi(os.Getenv("TOKEN_TTL_MINUTES")); err == nil && v > 0 {
		ttl = v
	}

	threshold := decimal.NewFromInt(DefaultLargeThreshold)
	if v, err := decimal.NewFromString(os.Getenv("LARGE_EXPENSE_THRESHOLD")); err == nil && v.IsPositive() {
		threshold = v
	}

	return &Config{
		AppPort:               os.Getenv("APP_PORT"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                os.Getenv("DB_PORT"),
		DBName:                os.Getenv("DB_NAME"),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		TokenTTLMinutes:       ttl,
		LargeExpenseThreshold: threshold,
		IsProd:                os.Getenv("IS_PROD") == "true",
	}
}

// DSN builds the MySQL data source name from the configured pieces
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

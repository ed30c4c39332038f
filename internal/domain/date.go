package domain

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateFormat is returned for any value that is not a strict YYYY-MM-DD date.
// The message is part of the API contract and must stay stable.
var ErrInvalidDateFormat = errors.New("Invalid date format. Expected YYYY-MM-DD.")

const dateLayout = "2006-01-02" // Canonical calendar date layout

// Date is a calendar date without a time-of-day component
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a strict YYYY-MM-DD string into a Date
func ParseDate(s string) (Date, error) {
	// Reject unpadded components and trailing garbage up front
	if len(s) != len(dateLayout) {
		return Date{}, ErrInvalidDateFormat
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		// Covers impossible dates such as month 13 as well
		return Date{}, ErrInvalidDateFormat
	}
	return Date{t}, nil
}

// String returns the canonical YYYY-MM-DD form
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON serializes the date as a "YYYY-MM-DD" JSON string
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON accepts only a "YYYY-MM-DD" JSON string
func (d *Date) UnmarshalJSON(b []byte) error {
	// Anything that is not a quoted string (null, numbers, objects) is rejected
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return ErrInvalidDateFormat
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer so GORM can store the date
func (d Date) Value() (driver.Value, error) {
	return d.Format(dateLayout), nil
}

// Scan implements sql.Scanner for the DATE column types of the supported drivers
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case string:
		parsed, err := ParseDate(v[:min(len(v), len(dateLayout))])
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

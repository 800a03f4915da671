// Package types implements special types for payremind.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"regexp"
	"time"
)

// Date is a calendar day. It has no time-of-day component, all scheduling
// arithmetic happens with day granularity.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time instant occurs in that time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Today returns the current calendar day.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a string in RFC3339 full-date format and returns the Date value it represents.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	year, month, day := time.Time(d).Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The date is expected as "2006-01-02", an RFC3339 timestamp is
// also accepted and truncated to its calendar day.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := string(data)
	if value == `""` || value == "null" {
		return nil
	}

	match, err := regexp.MatchString(`^"[0-9]{4}-[0-9]{2}-[0-9]{2}"$`, value)
	if err != nil {
		return err
	}

	pattern := `"2006-01-02T15:04:05Z07:00"`
	if match {
		pattern = `"2006-01-02"`
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*d = DateOf(t)
	return nil
}

// Scan reads the value from the database.
func (d *Date) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*d = DateOf(nullTime.Time)
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	year, month, day := time.Time(d).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Date) GormDataType() string {
	return "date"
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddDays adds a number of calendar days.
func (d Date) AddDays(days int) Date {
	return Date(time.Time(d).AddDate(0, 0, days))
}

// DaysSince returns the number of whole calendar days from o to d.
// It is negative when d is before o.
func (d Date) DaysSince(o Date) int {
	return int(time.Time(d).Sub(time.Time(o)).Hours() / 24)
}

// Before reports whether the day d is before o.
func (d Date) Before(o Date) bool {
	return time.Time(d).Before(time.Time(o))
}

// After reports whether the day d is after o.
func (d Date) After(o Date) bool {
	return time.Time(d).After(time.Time(o))
}

// Equal reports whether d and o represent the same calendar day.
func (d Date) Equal(o Date) bool {
	return time.Time(d).Equal(time.Time(o))
}

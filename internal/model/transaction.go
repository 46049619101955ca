package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the day-first layout used by the operations source and all
// user-supplied window dates.
const DateFormat = "02.01.2006"

// Date is a calendar day carried in DD.MM.YYYY form in files and reports.
type Date struct {
	time.Time
}

// NewDate returns a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a DD.MM.YYYY string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return Date{t}, nil
}

// MarshalJSON renders the date in the source file's day-first form.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateFormat) + `"`), nil
}

// UnmarshalJSON parses a day-first date string.
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid date value %s", data)
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Transaction represents one row of the operations file.
type Transaction struct {
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        Date            `json:"data_payment"`
	Amount      decimal.Decimal `json:"transaction_amount"` // negative = expense, positive = income
	CardNumber  string          `json:"card_number"`        // "" or masked: '*' followed by digits
	Cashback    decimal.Decimal `json:"bonuses_including_cashback"`
}

package entity

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of fractional digits kept for every amount.
const MoneyPrecision = 2

// Money is a non-negative amount with two-decimal precision.
// The zero value is 0.00.
type Money struct {
	d decimal.Decimal
}

// NewMoney returns an error if d is negative or has more than two fractional digits.
func NewMoney(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, fmt.Errorf("%w: negative amount %s", ErrInvalidAmount, d)
	}

	if !d.Equal(d.Truncate(MoneyPrecision)) {
		return Money{}, fmt.Errorf("%w: amount %s has more than %d decimal places", ErrInvalidAmount, d, MoneyPrecision)
	}

	return Money{d: d}, nil
}

// ParseMoney parses a decimal string such as "300.00".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q is not a decimal", ErrInvalidAmount, s)
	}

	return NewMoney(d)
}

// MustMoney is ParseMoney for constants and tests.
func MustMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}

	return m
}

// PositiveAmount validates an amount coming from a caller: it must be > 0.
func PositiveAmount(m Money) error {
	if !m.d.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero, got %s", ErrInvalidAmount, m)
	}

	return nil
}

func (m Money) Add(o Money) Money {
	return Money{d: m.d.Add(o.d)}
}

// Sub returns ErrInsufficientBalance if o is greater than m.
func (m Money) Sub(o Money) (Money, error) {
	if m.d.LessThan(o.d) {
		return Money{}, fmt.Errorf("%w: %s - %s", ErrInsufficientBalance, m, o)
	}

	return Money{d: m.d.Sub(o.d)}, nil
}

// Cmp returns -1 if m < o, 0 if m == o and +1 if m > o.
func (m Money) Cmp(o Money) int {
	return m.d.Cmp(o.d)
}

func (m Money) Equal(o Money) bool {
	return m.d.Equal(o.d)
}

func (m Money) IsZero() bool {
	return m.d.IsZero()
}

func (m Money) Decimal() decimal.Decimal {
	return m.d
}

func (m Money) String() string {
	return m.d.StringFixed(MoneyPrecision)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal

	err := d.UnmarshalJSON(b)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, err)
	}

	parsed, err := NewMoney(d)
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

// Scan implements sql.Scanner for NUMERIC columns.
func (m *Money) Scan(src any) error {
	var d decimal.Decimal

	err := d.Scan(src)
	if err != nil {
		return err
	}

	m.d = d

	return nil
}

// Value implements driver.Valuer.
func (m Money) Value() (driver.Value, error) {
	return m.d.StringFixed(MoneyPrecision), nil
}

package entities

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyBRL Currency = "BRL"
	CurrencyUSD Currency = "USD"
)

var (
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrNegativeResult   = errors.New("negative money result")
	ErrNegativeAmount   = errors.New("negative money amount")
)

// minorUnitExponent is the number of decimal places of the minor unit (cents).
const minorUnitExponent = 2

// Money holds an exact amount in minor units (cents).
// Example: R$ 5.000,00 is stored as Amount=500000, Currency=BRL.
//
// Money never holds a float. Conversions from decimal input happen only at the HTTP
// boundary through NewMoneyFromDecimal, which rounds half-up to the nearest minor unit.

type Money struct {
	Amount   int64    `json:"amount"`
	Currency Currency `json:"currency"`
}

// NewMoney builds Money from a minor-unit amount. Persisted amounts are never negative.
func NewMoney(amount int64, currency Currency) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// NewMoneyFromDecimal converts a major-unit decimal value ("5000.00") into Money,
// rounding half-up to the nearest minor unit. Round-half-up is the documented rule
// for every decimal input accepted by this service.
func NewMoneyFromDecimal(d decimal.Decimal, currency Currency) (Money, error) {
	if d.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	// decimal.Round rounds half away from zero; for non-negative input that is half-up.
	minor := d.Shift(minorUnitExponent).Round(0)
	if !minor.IsInteger() {
		return Money{}, fmt.Errorf("cannot represent %s in minor units", d.String())
	}
	return Money{Amount: minor.IntPart(), Currency: currency}, nil
}

func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}

// Subtract fails with ErrNegativeResult when the result would drop below zero.
// Callers pre-validate against the remaining balance; this is the backstop.
func (m Money) Subtract(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, ErrCurrencyMismatch
	}
	if m.Amount < other.Amount {
		return Money{}, ErrNegativeResult
	}
	return Money{Amount: m.Amount - other.Amount, Currency: m.Currency}, nil
}

// Compare returns -1, 0 or 1 as m is less than, equal to or greater than other.
func (m Money) Compare(other Money) (int, error) {
	if m.Currency != other.Currency {
		return 0, ErrCurrencyMismatch
	}
	switch {
	case m.Amount < other.Amount:
		return -1, nil
	case m.Amount > other.Amount:
		return 1, nil
	default:
		return 0, nil
	}
}

func (m Money) IsZero() bool {
	return m.Amount == 0
}

// Decimal renders the amount in major units for display/serialization.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Amount, -minorUnitExponent)
}

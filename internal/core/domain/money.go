package domain

import (
	"fmt"

	"github.com/fintrackhq/fintrack_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency code is supplied.
const DefaultCurrency = "RUB"

const maxCurrencyLength = 3

// moneyEpsilon absorbs rounding noise when comparing amounts: two Money
// values whose difference is below it are considered equal.
var moneyEpsilon = decimal.NewFromFloat(0.001)

// Money is an immutable currency-tagged amount. Arithmetic and ordering
// require both operands to carry the same currency code; a mismatch is a
// validation error, never a silent coercion.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney builds a Money value. The currency code must be non-empty and at
// most three characters.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if err := validateNotEmpty(currency, "currency"); err != nil {
		return Money{}, err
	}
	if err := validateMaxLength(currency, maxCurrencyLength, "currency"); err != nil {
		return Money{}, err
	}
	return Money{amount: amount, currency: currency}, nil
}

// Zero returns a zero amount in the given currency.
func Zero(currency string) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

func (m Money) Amount() decimal.Decimal { return m.amount }

func (m Money) Currency() string { return m.currency }

// Add returns m + other. Fails when the currency codes differ.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("cannot add %s to %s: currency mismatch: %w", other.currency, m.currency, apperrors.ErrValidation)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Subtract returns m - other. Fails when the currency codes differ.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("cannot subtract %s from %s: currency mismatch: %w", other.currency, m.currency, apperrors.ErrValidation)
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// Multiply scales the amount by factor, keeping the currency.
func (m Money) Multiply(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor), currency: m.currency}
}

// Negate flips the sign of the amount.
func (m Money) Negate() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency}
}

func (m Money) IsPositive() bool { return m.amount.IsPositive() }

func (m Money) IsNegative() bool { return m.amount.IsNegative() }

// IsZero reports whether the amount is within epsilon of zero.
func (m Money) IsZero() bool {
	return m.amount.Abs().LessThan(moneyEpsilon)
}

// Equal reports epsilon-tolerant equality; values in different currencies are
// never equal.
func (m Money) Equal(other Money) bool {
	if m.currency != other.currency {
		return false
	}
	return m.amount.Sub(other.amount).Abs().LessThan(moneyEpsilon)
}

// Compare orders two amounts of the same currency: -1 when m < other, 0 when
// equal, +1 when m > other.
func (m Money) Compare(other Money) (int, error) {
	if m.currency != other.currency {
		return 0, fmt.Errorf("cannot compare %s with %s: currency mismatch: %w", m.currency, other.currency, apperrors.ErrValidation)
	}
	return m.amount.Cmp(other.amount), nil
}

// LessThan reports m < other for same-currency values.
func (m Money) LessThan(other Money) (bool, error) {
	cmp, err := m.Compare(other)
	if err != nil {
		return false, err
	}
	return cmp < 0, nil
}

func (m Money) String() string {
	return m.amount.String() + " " + m.currency
}

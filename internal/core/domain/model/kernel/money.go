package kernel

import (
	"fmt"

	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept by Money and Quantity.
const MoneyScale = 2

// Upper bounds follow the widest stored columns: decimal(15,2) for amounts and
// totals, decimal(12,2) for unit prices, decimal(10,2) for quantities.
var (
	MaxAmount    = decimal.RequireFromString("9999999999999.99")
	MaxUnitPrice = decimal.RequireFromString("9999999999.99")
	MaxQuantity  = decimal.RequireFromString("99999999.99")
)

// Money is a non-negative amount with two fractional digits. The zero value is a
// valid amount of 0.00.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney rounds amount half away from zero to two digits and rejects results
// outside 0.00..MaxAmount.
func NewMoney(amount decimal.Decimal) (Money, error) {
	rounded := amount.Round(MoneyScale)
	if rounded.IsNegative() || rounded.GreaterThan(MaxAmount) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount",
			rounded.StringFixed(MoneyScale), "0.00", MaxAmount.StringFixed(MoneyScale))
	}
	return Money{amount: rounded}, nil
}

// MoneyFromString parses a decimal literal such as "1250.00".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal", s))
	}
	return NewMoney(d)
}

// MustMoney is NewMoney for literals known to be valid. It panics otherwise.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns m + other. The sum is not bounded; callers check it with Exceeds.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul returns m × q rounded to two digits. Like Add, the product is not bounded.
func (m Money) Mul(q Quantity) Money {
	return Money{amount: m.amount.Mul(q.amount).Round(MoneyScale)}
}

// Exceeds reports whether m is greater than limit.
func (m Money) Exceeds(limit decimal.Decimal) bool {
	return m.amount.GreaterThan(limit)
}

// Decimal exposes the amount for persistence.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount is 0.00.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal compares amounts numerically, so 1250 equals 1250.00.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

package kernel

import (
	"fmt"

	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrQuantityIsNotConstructed is returned when validating the zero Quantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError("quantity")

// Quantity is a strictly positive amount of units with two fractional digits.
type Quantity struct {
	amount decimal.Decimal
}

// NewQuantity rounds q to two digits and requires the result to lie in 0.01..MaxQuantity.
func NewQuantity(q decimal.Decimal) (Quantity, error) {
	rounded := q.Round(MoneyScale)
	if !rounded.IsPositive() || rounded.GreaterThan(MaxQuantity) {
		return Quantity{}, errs.NewValueIsOutOfRangeError("quantity",
			rounded.StringFixed(MoneyScale), "0.01", MaxQuantity.StringFixed(MoneyScale))
	}
	return Quantity{amount: rounded}, nil
}

// QuantityFromString parses a decimal literal such as "10" or "2.5".
func QuantityFromString(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%q is not a decimal", s))
	}
	return NewQuantity(d)
}

// Decimal exposes the amount for persistence.
func (q Quantity) Decimal() decimal.Decimal {
	return q.amount
}

// String renders the quantity with exactly two fractional digits.
func (q Quantity) String() string {
	return q.amount.StringFixed(MoneyScale)
}

// Validate rejects the zero value.
func (q Quantity) Validate() error {
	if !q.amount.IsPositive() {
		return ErrQuantityIsNotConstructed
	}
	return nil
}

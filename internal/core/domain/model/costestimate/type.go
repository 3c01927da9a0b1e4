package costestimate

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Type tells a cost estimate apart from a bill of quantities.
type Type int

const (
	UnknownType Type = iota
	TypeCostEstimate
	TypeBillOfQuantities
)

func getTypeLabels() map[Type]label {
	//nolint:exhaustive // UnknownType is intentionally excluded as it's invalid
	return map[Type]label{
		TypeCostEstimate:     {"cost_estimate", "Cost Estimate"},
		TypeBillOfQuantities: {"bill_of_quantities", "Bill of Quantities"},
	}
}

// Types returns every valid type.
func Types() []Type {
	return []Type{TypeCostEstimate, TypeBillOfQuantities}
}

// TypeFromCode parses "cost_estimate" or "bill_of_quantities".
func TypeFromCode(code string) (Type, error) {
	for t, l := range getTypeLabels() {
		if l.code == code {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid type", code))
}

func (t Type) Validate() error {
	if _, ok := getTypeLabels()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid type", t))
	}
	return nil
}

func (t Type) String() string {
	if l, ok := getTypeLabels()[t]; ok {
		return l.code
	}
	return "unknown"
}

func (t Type) DisplayName() string {
	if l, ok := getTypeLabels()[t]; ok {
		return l.displayName
	}
	return "Unknown"
}

package costestimate

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

const (
	maxItemCodeLength    = 50
	maxDescriptionLength = 255
	maxUnitLength        = 50
)

// ItemSpec is what a caller supplies for one line item. The total price is derived.
type ItemSpec struct {
	ItemCode    string
	Description string
	Unit        string
	Quantity    kernel.Quantity
	UnitPrice   kernel.Money
	Notes       string
}

// Item is one priced line of a cost estimate. Its total price is always
// quantity × unit price, rounded to two digits.
type Item struct {
	id         kernel.UUID
	spec       ItemSpec
	totalPrice kernel.Money
	sortOrder  int
}

// NewItem validates spec and computes the total price. sortOrder is the zero-based
// position of the item in its estimate; it also prefixes the reported field names,
// e.g. "items[2].unit".
func NewItem(id kernel.UUID, spec ItemSpec, sortOrder int) (*Item, error) {
	field := func(name string) string {
		return fmt.Sprintf("items[%d].%s", sortOrder, name)
	}

	spec.ItemCode = strings.TrimSpace(spec.ItemCode)
	spec.Description = strings.TrimSpace(spec.Description)
	spec.Unit = strings.TrimSpace(spec.Unit)
	spec.Notes = strings.TrimSpace(spec.Notes)

	var problems []error
	if err := id.Validate(); err != nil {
		problems = append(problems, err)
	}
	if sortOrder < 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("sort_order", sortOrder, 0, "unbounded"))
	}
	problems = append(problems,
		checkLength(field("item_code"), spec.ItemCode, 0, maxItemCodeLength),
		checkLength(field("description"), spec.Description, 1, maxDescriptionLength),
		checkLength(field("unit"), spec.Unit, 1, maxUnitLength),
	)
	if spec.Quantity.Validate() != nil {
		problems = append(problems, errs.NewValueIsRequiredError(field("quantity")))
	}
	if spec.UnitPrice.Exceeds(kernel.MaxUnitPrice) {
		problems = append(problems, errs.NewValueIsOutOfRangeError(field("unit_price"),
			spec.UnitPrice.String(), "0.00", kernel.MaxUnitPrice.StringFixed(kernel.MoneyScale)))
	}
	totalPrice := spec.UnitPrice.Mul(spec.Quantity)
	if totalPrice.Exceeds(kernel.MaxAmount) {
		problems = append(problems, errs.NewValueIsOutOfRangeError(field("total_price"),
			totalPrice.String(), "0.00", kernel.MaxAmount.StringFixed(kernel.MoneyScale)))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Item{
		id:         id,
		spec:       spec,
		totalPrice: totalPrice,
		sortOrder:  sortOrder,
	}, nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) ItemCode() string {
	return i.spec.ItemCode
}

func (i *Item) Description() string {
	return i.spec.Description
}

func (i *Item) Unit() string {
	return i.spec.Unit
}

func (i *Item) Quantity() kernel.Quantity {
	return i.spec.Quantity
}

func (i *Item) UnitPrice() kernel.Money {
	return i.spec.UnitPrice
}

func (i *Item) TotalPrice() kernel.Money {
	return i.totalPrice
}

func (i *Item) Notes() string {
	return i.spec.Notes
}

func (i *Item) SortOrder() int {
	return i.sortOrder
}

// Spec returns the caller-supplied part of the item.
func (i *Item) Spec() ItemSpec {
	return i.spec
}

func checkLength(field, value string, minLength, maxLength int) error {
	length := utf8.RuneCountInString(value)
	if length == 0 && minLength > 0 {
		return errs.NewValueIsRequiredError(field)
	}
	if length > maxLength {
		return errs.NewValueIsOutOfRangeError(field, length, minLength, maxLength)
	}
	return nil
}

package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrGetPurchaseOrderQueryIsNotConstructed = errors.New(
	"GetPurchaseOrderQuery must be created via NewGetPurchaseOrderQuery constructor",
)

// GetPurchaseOrderQuery loads one order with the estimates attached to it.
type GetPurchaseOrderQuery struct {
	purchaseOrderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPurchaseOrderQuery(purchaseOrderID kernel.UUID) (GetPurchaseOrderQuery, error) {
	if err := purchaseOrderID.Validate(); err != nil {
		return GetPurchaseOrderQuery{}, err
	}
	return GetPurchaseOrderQuery{
		purchaseOrderID: purchaseOrderID,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (q GetPurchaseOrderQuery) PurchaseOrderID() kernel.UUID {
	return q.purchaseOrderID
}

func (q GetPurchaseOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseOrderQueryIsNotConstructed)
}

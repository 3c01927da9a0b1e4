package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/pkg/guard"
)

var ErrUpdatePurchaseOrderCommandIsNotConstructed = errors.New(
	"UpdatePurchaseOrderCommand must be created via NewUpdatePurchaseOrderCommand constructor",
)

// UpdatePurchaseOrderCommand revises the details of an order that is not validated yet.
// A zero priority keeps the current one.
type UpdatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	actorID         kernel.UUID
	purchaseOrderID kernel.UUID
	details         purchaseorder.Details

	guard guard.ConstructorGuard
}

func NewUpdatePurchaseOrderCommand(
	actorID kernel.UUID,
	purchaseOrderID kernel.UUID,
	details purchaseorder.Details,
) (UpdatePurchaseOrderCommand, error) {
	cmd := UpdatePurchaseOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.actorID, actorID),
		setID(&cmd.purchaseOrderID, purchaseOrderID),
	); err != nil {
		return UpdatePurchaseOrderCommand{}, err
	}

	return cmd, nil
}

func (c UpdatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePurchaseOrderCommandIsNotConstructed)
}

func (c UpdatePurchaseOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c UpdatePurchaseOrderCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

func (c UpdatePurchaseOrderCommand) Details() purchaseorder.Details {
	return c.details
}

package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrDeletePurchaseOrderCommandIsNotConstructed = errors.New(
	"DeletePurchaseOrderCommand must be created via NewDeletePurchaseOrderCommand constructor",
)

// DeletePurchaseOrderCommand removes an order that has not been validated, together
// with its cost estimates.
type DeletePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	actorID         kernel.UUID
	purchaseOrderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeletePurchaseOrderCommand(actorID, purchaseOrderID kernel.UUID) (DeletePurchaseOrderCommand, error) {
	cmd := DeletePurchaseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.actorID, actorID),
		setID(&cmd.purchaseOrderID, purchaseOrderID),
	); err != nil {
		return DeletePurchaseOrderCommand{}, err
	}

	return cmd, nil
}

func (c DeletePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeletePurchaseOrderCommandIsNotConstructed)
}

func (c DeletePurchaseOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c DeletePurchaseOrderCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

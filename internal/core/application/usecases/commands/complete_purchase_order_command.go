package commands

import (
	"errors"
	"strings"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrCompletePurchaseOrderCommandIsNotConstructed = errors.New(
	"CompletePurchaseOrderCommand must be created via NewCompletePurchaseOrderCommand constructor",
)

// CompletePurchaseOrderCommand closes an order that is in progress.
type CompletePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	actorID         kernel.UUID
	purchaseOrderID kernel.UUID
	notes           string

	guard guard.ConstructorGuard
}

func NewCompletePurchaseOrderCommand(
	actorID kernel.UUID,
	purchaseOrderID kernel.UUID,
	notes string,
) (CompletePurchaseOrderCommand, error) {
	cmd := CompletePurchaseOrderCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.actorID, actorID),
		setID(&cmd.purchaseOrderID, purchaseOrderID),
	); err != nil {
		return CompletePurchaseOrderCommand{}, err
	}

	return cmd, nil
}

func (c CompletePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompletePurchaseOrderCommandIsNotConstructed)
}

func (c CompletePurchaseOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c CompletePurchaseOrderCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

func (c CompletePurchaseOrderCommand) Notes() string {
	return c.notes
}

package commands

import (
	"errors"
	"strings"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrValidatePurchaseOrderCommandIsNotConstructed = errors.New(
	"ValidatePurchaseOrderCommand must be created via NewValidatePurchaseOrderCommand constructor",
)

// ValidatePurchaseOrderCommand represents a validator signing off a draft or pending order.
type ValidatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	actorID         kernel.UUID
	purchaseOrderID kernel.UUID
	notes           string

	guard guard.ConstructorGuard
}

// NewValidatePurchaseOrderCommand creates the command. Notes are optional.
func NewValidatePurchaseOrderCommand(
	actorID kernel.UUID,
	purchaseOrderID kernel.UUID,
	notes string,
) (ValidatePurchaseOrderCommand, error) {
	cmd := ValidatePurchaseOrderCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.actorID, actorID),
		setID(&cmd.purchaseOrderID, purchaseOrderID),
	); err != nil {
		return ValidatePurchaseOrderCommand{}, err
	}

	return cmd, nil
}

func (c ValidatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrValidatePurchaseOrderCommandIsNotConstructed)
}

func (c ValidatePurchaseOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c ValidatePurchaseOrderCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

func (c ValidatePurchaseOrderCommand) Notes() string {
	return c.notes
}

package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/pkg/guard"
)

var ErrCreatePurchaseOrderCommandIsNotConstructed = errors.New(
	"CreatePurchaseOrderCommand must be created via NewCreatePurchaseOrderCommand constructor",
)

// CreatePurchaseOrderCommand represents a request to open a new purchase order in draft.
// The order number is assigned by the handler.
//
// Example:
//
//	cmd, err := NewCreatePurchaseOrderCommand(actorID, kernel.NewUUID(), purchaseorder.Details{
//	    Title:    "Laboratory reagents",
//	    Priority: purchaseorder.High,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid purchase order: %w", err)
//	}
//	po, err := handler.Handle(ctx, cmd)
type CreatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	actorID         kernel.UUID
	purchaseOrderID kernel.UUID
	details         purchaseorder.Details

	guard guard.ConstructorGuard
}

// NewCreatePurchaseOrderCommand checks the identifiers. The details are validated by
// the aggregate when the order is created.
func NewCreatePurchaseOrderCommand(
	actorID kernel.UUID,
	purchaseOrderID kernel.UUID,
	details purchaseorder.Details,
) (CreatePurchaseOrderCommand, error) {
	cmd := CreatePurchaseOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.actorID, actorID),
		setID(&cmd.purchaseOrderID, purchaseOrderID),
	); err != nil {
		return CreatePurchaseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseOrderCommandIsNotConstructed)
}

func (c CreatePurchaseOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c CreatePurchaseOrderCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

func (c CreatePurchaseOrderCommand) Details() purchaseorder.Details {
	return c.details
}

// setID stores id into dst once it is known to be a constructed, non-nil UUID.
func setID(dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	*dst = id
	return nil
}

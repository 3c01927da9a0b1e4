package commands

import (
	"context"

	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/ports"
)

// ValidatePurchaseOrderCommandHandler moves orders to validated.
//
// The capability is checked before the order is even loaded, so an actor without it
// is refused whatever the order's status is.
//
// Example:
//
//	handler := NewValidatePurchaseOrderCommandHandler(uowFactory, clock)
//	cmd, _ := NewValidatePurchaseOrderCommand(bspID, poID, "budget line confirmed")
//	po, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrCapabilityDenied):
//	    // role cannot validate
//	case errors.Is(err, errs.ErrGuardFailed):
//	    // order already past validation
//	}
type ValidatePurchaseOrderCommandHandler struct {
	uowFactory PurchaseOrderUoWFactory
	clock      ports.Clock
}

func NewValidatePurchaseOrderCommandHandler(
	uowFactory PurchaseOrderUoWFactory,
	clock ports.Clock,
) ValidatePurchaseOrderCommandHandler {
	return ValidatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h ValidatePurchaseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ValidatePurchaseOrderCommand,
) (*purchaseorder.PurchaseOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := authorizeActor(ctx, uow.UserRepository(), cmd.ActorID(), identity.ValidatePurchaseOrders)
	if err != nil {
		return nil, err
	}

	poRepo := uow.PurchaseOrderRepository()
	po, err := poRepo.Get(ctx, cmd.PurchaseOrderID())
	if err != nil {
		return nil, err
	}

	if err = po.MarkValidated(actor.ID(), cmd.Notes(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = poRepo.Update(ctx, po); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return po, nil
}

package commands

import (
	"context"

	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/ports"
)

// CompletePurchaseOrderCommandHandler moves in-progress orders to completed and
// records who completed them.
type CompletePurchaseOrderCommandHandler struct {
	uowFactory PurchaseOrderUoWFactory
	clock      ports.Clock
}

func NewCompletePurchaseOrderCommandHandler(
	uowFactory PurchaseOrderUoWFactory,
	clock ports.Clock,
) CompletePurchaseOrderCommandHandler {
	return CompletePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CompletePurchaseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CompletePurchaseOrderCommand,
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

	actor, err := authorizeActor(ctx, uow.UserRepository(), cmd.ActorID(), identity.CompletePurchaseOrders)
	if err != nil {
		return nil, err
	}

	poRepo := uow.PurchaseOrderRepository()
	po, err := poRepo.Get(ctx, cmd.PurchaseOrderID())
	if err != nil {
		return nil, err
	}

	if err = po.Complete(actor.ID(), cmd.Notes(), h.clock.Now()); err != nil {
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

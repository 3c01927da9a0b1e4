package commands

import (
	"context"

	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/ports"
)

// UpdatePurchaseOrderCommandHandler revises draft and pending-validation orders.
type UpdatePurchaseOrderCommandHandler struct {
	uowFactory PurchaseOrderUoWFactory
	clock      ports.Clock
}

func NewUpdatePurchaseOrderCommandHandler(
	uowFactory PurchaseOrderUoWFactory,
	clock ports.Clock,
) UpdatePurchaseOrderCommandHandler {
	return UpdatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the revised order. Orders past validation fail with a GuardFailedError.
func (h UpdatePurchaseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd UpdatePurchaseOrderCommand,
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

	if _, err := loadActiveActor(ctx, uow.UserRepository(), cmd.ActorID()); err != nil {
		return nil, err
	}

	poRepo := uow.PurchaseOrderRepository()
	po, err := poRepo.Get(ctx, cmd.PurchaseOrderID())
	if err != nil {
		return nil, err
	}

	if err = po.Revise(cmd.Details(), h.clock.Now()); err != nil {
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

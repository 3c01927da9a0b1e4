package commands

import (
	"context"
)

// DeletePurchaseOrderCommandHandler deletes draft and pending-validation orders.
// The order's cost estimates are deleted first, in the same transaction.
type DeletePurchaseOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeletePurchaseOrderCommandHandler(uowFactory UoWFactory) DeletePurchaseOrderCommandHandler {
	return DeletePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeletePurchaseOrderCommandHandler) Handle(ctx context.Context, cmd DeletePurchaseOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := loadActiveActor(ctx, uow.UserRepository(), cmd.ActorID()); err != nil {
		return err
	}

	poRepo := uow.PurchaseOrderRepository()
	po, err := poRepo.Get(ctx, cmd.PurchaseOrderID())
	if err != nil {
		return err
	}

	if err = po.EnsureDeletable(); err != nil {
		return err
	}

	if _, err = uow.CostEstimateRepository().DeleteByPurchaseOrder(ctx, po.ID()); err != nil {
		return err
	}

	if err = poRepo.Delete(ctx, po.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/ports"
)

// DeleteCostEstimateCommandHandler deletes draft estimates. When the owning order
// sits in ce_boq_created it is reverted to validated in the same transaction, so a
// new estimate can be created for it.
type DeleteCostEstimateCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewDeleteCostEstimateCommandHandler(uowFactory UoWFactory, clock ports.Clock) DeleteCostEstimateCommandHandler {
	return DeleteCostEstimateCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h DeleteCostEstimateCommandHandler) Handle(ctx context.Context, cmd DeleteCostEstimateCommand) error {
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

	if _, err := authorizeActor(ctx, uow.UserRepository(), cmd.ActorID(), identity.CreateCostEstimates); err != nil {
		return err
	}

	ceRepo := uow.CostEstimateRepository()
	poRepo := uow.PurchaseOrderRepository()

	ce, err := ceRepo.Get(ctx, cmd.CostEstimateID())
	if err != nil {
		return err
	}
	if err = ce.EnsureDeletable(); err != nil {
		return err
	}

	if err = ceRepo.Delete(ctx, ce.ID()); err != nil {
		return err
	}

	po, err := poRepo.Get(ctx, ce.PurchaseOrderID())
	if err != nil {
		return err
	}
	if po.DetachCostEstimate(h.clock.Now()) {
		if err = poRepo.Update(ctx, po); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

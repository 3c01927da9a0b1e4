package commands

import (
	"context"

	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
)

// CreateCostEstimateCommandHandler creates a draft estimate and flips its purchase
// order from validated to ce_boq_created. Numbering, the estimate with its items and
// the order flip commit together; a lost numbering race replays the whole unit.
type CreateCostEstimateCommandHandler struct {
	uowFactory UoWFactory
	numberer   services.DocumentNumberer
	clock      ports.Clock
}

func NewCreateCostEstimateCommandHandler(uowFactory UoWFactory, clock ports.Clock) CreateCostEstimateCommandHandler {
	return CreateCostEstimateCommandHandler{
		uowFactory: uowFactory,
		numberer:   services.NewDocumentNumberer(),
		clock:      clock,
	}
}

func (h CreateCostEstimateCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCostEstimateCommand,
) (*costestimate.CostEstimate, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return retryOnDuplicateNumber(func() (*costestimate.CostEstimate, error) {
		return h.create(ctx, cmd)
	})
}

func (h CreateCostEstimateCommandHandler) create(
	ctx context.Context,
	cmd CreateCostEstimateCommand,
) (*costestimate.CostEstimate, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := authorizeActor(ctx, uow.UserRepository(), cmd.ActorID(), identity.CreateCostEstimates); err != nil {
		return nil, err
	}

	poRepo := uow.PurchaseOrderRepository()
	ceRepo := uow.CostEstimateRepository()

	po, err := poRepo.Get(ctx, cmd.PurchaseOrderID())
	if err != nil {
		return nil, err
	}
	if err = po.EnsureCanHaveCostEstimate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	last, err := ceRepo.LastNumber(ctx, now.Year())
	if err != nil {
		return nil, err
	}
	number, err := h.numberer.Next(kernel.CostEstimatePrefix, now.Year(), last)
	if err != nil {
		return nil, err
	}

	ce, err := costestimate.NewCostEstimate(
		cmd.CostEstimateID(),
		po.ID(),
		number,
		cmd.Content(),
		cmd.Items(),
		cmd.ActorID(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = ceRepo.Add(ctx, ce); err != nil {
		return nil, err
	}

	if err = po.AttachCostEstimate(now); err != nil {
		return nil, err
	}
	if err = poRepo.Update(ctx, po); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ce, nil
}

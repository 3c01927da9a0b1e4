package commands

import (
	"context"

	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/ports"
)

// ApproveCostEstimateCommandHandler approves estimates. The owning purchase order
// keeps its status.
type ApproveCostEstimateCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewApproveCostEstimateCommandHandler(uowFactory UoWFactory, clock ports.Clock) ApproveCostEstimateCommandHandler {
	return ApproveCostEstimateCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h ApproveCostEstimateCommandHandler) Handle(
	ctx context.Context,
	cmd ApproveCostEstimateCommand,
) (*costestimate.CostEstimate, error) {
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

	actor, err := authorizeActor(ctx, uow.UserRepository(), cmd.ActorID(), identity.ApproveCostEstimates)
	if err != nil {
		return nil, err
	}

	ceRepo := uow.CostEstimateRepository()
	ce, err := ceRepo.Get(ctx, cmd.CostEstimateID())
	if err != nil {
		return nil, err
	}

	if err = ce.Approve(actor.ID(), cmd.Notes(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = ceRepo.Update(ctx, ce); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ce, nil
}

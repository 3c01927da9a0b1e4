package commands

import (
	"context"

	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/ports"
)

// RejectCostEstimateCommandHandler rejects estimates. It requires the same capability
// as approval.
type RejectCostEstimateCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewRejectCostEstimateCommandHandler(uowFactory UoWFactory, clock ports.Clock) RejectCostEstimateCommandHandler {
	return RejectCostEstimateCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h RejectCostEstimateCommandHandler) Handle(
	ctx context.Context,
	cmd RejectCostEstimateCommand,
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

	if _, err := authorizeActor(ctx, uow.UserRepository(), cmd.ActorID(), identity.ApproveCostEstimates); err != nil {
		return nil, err
	}

	ceRepo := uow.CostEstimateRepository()
	ce, err := ceRepo.Get(ctx, cmd.CostEstimateID())
	if err != nil {
		return nil, err
	}

	if err = ce.Reject(cmd.Notes(), h.clock.Now()); err != nil {
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

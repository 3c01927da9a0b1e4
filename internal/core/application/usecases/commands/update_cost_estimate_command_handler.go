package commands

import (
	"context"

	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/ports"
)

// UpdateCostEstimateCommandHandler revises draft estimates. The repository replaces
// the stored items and total in the same transaction.
type UpdateCostEstimateCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewUpdateCostEstimateCommandHandler(uowFactory UoWFactory, clock ports.Clock) UpdateCostEstimateCommandHandler {
	return UpdateCostEstimateCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h UpdateCostEstimateCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCostEstimateCommand,
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

	if _, err := authorizeActor(ctx, uow.UserRepository(), cmd.ActorID(), identity.CreateCostEstimates); err != nil {
		return nil, err
	}

	ceRepo := uow.CostEstimateRepository()
	ce, err := ceRepo.Get(ctx, cmd.CostEstimateID())
	if err != nil {
		return nil, err
	}

	if err = ce.Revise(cmd.Content(), cmd.Items(), h.clock.Now()); err != nil {
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

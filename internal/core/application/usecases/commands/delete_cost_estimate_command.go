package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrDeleteCostEstimateCommandIsNotConstructed = errors.New(
	"DeleteCostEstimateCommand must be created via NewDeleteCostEstimateCommand constructor",
)

// DeleteCostEstimateCommand removes a draft estimate and its items.
type DeleteCostEstimateCommand struct { //nolint:recvcheck //using for validation
	actorID        kernel.UUID
	costEstimateID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCostEstimateCommand(actorID, costEstimateID kernel.UUID) (DeleteCostEstimateCommand, error) {
	cmd := DeleteCostEstimateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.actorID, actorID),
		setID(&cmd.costEstimateID, costEstimateID),
	); err != nil {
		return DeleteCostEstimateCommand{}, err
	}

	return cmd, nil
}

func (c DeleteCostEstimateCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCostEstimateCommandIsNotConstructed)
}

func (c DeleteCostEstimateCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c DeleteCostEstimateCommand) CostEstimateID() kernel.UUID {
	return c.costEstimateID
}

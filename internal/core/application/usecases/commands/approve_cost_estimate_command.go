package commands

import (
	"errors"
	"strings"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrApproveCostEstimateCommandIsNotConstructed = errors.New(
	"ApproveCostEstimateCommand must be created via NewApproveCostEstimateCommand constructor",
)

// ApproveCostEstimateCommand records an approver's sign-off on a draft or pending estimate.
type ApproveCostEstimateCommand struct { //nolint:recvcheck //using for validation
	actorID        kernel.UUID
	costEstimateID kernel.UUID
	notes          string

	guard guard.ConstructorGuard
}

func NewApproveCostEstimateCommand(
	actorID kernel.UUID,
	costEstimateID kernel.UUID,
	notes string,
) (ApproveCostEstimateCommand, error) {
	cmd := ApproveCostEstimateCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.actorID, actorID),
		setID(&cmd.costEstimateID, costEstimateID),
	); err != nil {
		return ApproveCostEstimateCommand{}, err
	}

	return cmd, nil
}

func (c ApproveCostEstimateCommand) Validate() error {
	return c.guard.Validate(ErrApproveCostEstimateCommandIsNotConstructed)
}

func (c ApproveCostEstimateCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c ApproveCostEstimateCommand) CostEstimateID() kernel.UUID {
	return c.costEstimateID
}

func (c ApproveCostEstimateCommand) Notes() string {
	return c.notes
}

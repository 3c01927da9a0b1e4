package commands

import (
	"errors"
	"strings"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrRejectCostEstimateCommandIsNotConstructed = errors.New(
	"RejectCostEstimateCommand must be created via NewRejectCostEstimateCommand constructor",
)

// RejectCostEstimateCommand turns down a draft or pending estimate. Only the notes are kept.
type RejectCostEstimateCommand struct { //nolint:recvcheck //using for validation
	actorID        kernel.UUID
	costEstimateID kernel.UUID
	notes          string

	guard guard.ConstructorGuard
}

func NewRejectCostEstimateCommand(
	actorID kernel.UUID,
	costEstimateID kernel.UUID,
	notes string,
) (RejectCostEstimateCommand, error) {
	cmd := RejectCostEstimateCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.actorID, actorID),
		setID(&cmd.costEstimateID, costEstimateID),
	); err != nil {
		return RejectCostEstimateCommand{}, err
	}

	return cmd, nil
}

func (c RejectCostEstimateCommand) Validate() error {
	return c.guard.Validate(ErrRejectCostEstimateCommandIsNotConstructed)
}

func (c RejectCostEstimateCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c RejectCostEstimateCommand) CostEstimateID() kernel.UUID {
	return c.costEstimateID
}

func (c RejectCostEstimateCommand) Notes() string {
	return c.notes
}

package commands

import (
	"errors"

	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrUpdateCostEstimateCommandIsNotConstructed = errors.New(
	"UpdateCostEstimateCommand must be created via NewUpdateCostEstimateCommand constructor",
)

// UpdateCostEstimateCommand replaces the content and the whole item list of a draft
// estimate.
type UpdateCostEstimateCommand struct { //nolint:recvcheck //using for validation
	actorID        kernel.UUID
	costEstimateID kernel.UUID
	content        costestimate.Content
	items          []costestimate.ItemSpec

	guard guard.ConstructorGuard
}

func NewUpdateCostEstimateCommand(
	actorID kernel.UUID,
	costEstimateID kernel.UUID,
	content costestimate.Content,
	items []costestimate.ItemSpec,
) (UpdateCostEstimateCommand, error) {
	cmd := UpdateCostEstimateCommand{
		content: content,
		items:   append([]costestimate.ItemSpec(nil), items...),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.actorID, actorID),
		setID(&cmd.costEstimateID, costEstimateID),
	); err != nil {
		return UpdateCostEstimateCommand{}, err
	}

	return cmd, nil
}

func (c UpdateCostEstimateCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCostEstimateCommandIsNotConstructed)
}

func (c UpdateCostEstimateCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c UpdateCostEstimateCommand) CostEstimateID() kernel.UUID {
	return c.costEstimateID
}

func (c UpdateCostEstimateCommand) Content() costestimate.Content {
	return c.content
}

func (c UpdateCostEstimateCommand) Items() []costestimate.ItemSpec {
	return append([]costestimate.ItemSpec(nil), c.items...)
}

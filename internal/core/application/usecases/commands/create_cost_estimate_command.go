package commands

import (
	"errors"

	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrCreateCostEstimateCommandIsNotConstructed = errors.New(
	"CreateCostEstimateCommand must be created via NewCreateCostEstimateCommand constructor",
)

// CreateCostEstimateCommand attaches a priced estimate to a validated purchase order.
// Items keep the order they are given in.
//
// Example:
//
//	qty, _ := kernel.QuantityFromString("10")
//	cmd, err := NewCreateCostEstimateCommand(actorID, kernel.NewUUID(), poID,
//	    costestimate.Content{Title: "Reagents", Type: costestimate.TypeCostEstimate},
//	    []costestimate.ItemSpec{{Description: "Ethanol", Unit: "l", Quantity: qty, UnitPrice: kernel.MustMoney("100")}},
//	)
type CreateCostEstimateCommand struct { //nolint:recvcheck //using for validation
	actorID         kernel.UUID
	costEstimateID  kernel.UUID
	purchaseOrderID kernel.UUID
	content         costestimate.Content
	items           []costestimate.ItemSpec

	guard guard.ConstructorGuard
}

func NewCreateCostEstimateCommand(
	actorID kernel.UUID,
	costEstimateID kernel.UUID,
	purchaseOrderID kernel.UUID,
	content costestimate.Content,
	items []costestimate.ItemSpec,
) (CreateCostEstimateCommand, error) {
	cmd := CreateCostEstimateCommand{
		content: content,
		items:   append([]costestimate.ItemSpec(nil), items...),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&cmd.actorID, actorID),
		setID(&cmd.costEstimateID, costEstimateID),
		setID(&cmd.purchaseOrderID, purchaseOrderID),
	); err != nil {
		return CreateCostEstimateCommand{}, err
	}

	return cmd, nil
}

func (c CreateCostEstimateCommand) Validate() error {
	return c.guard.Validate(ErrCreateCostEstimateCommandIsNotConstructed)
}

func (c CreateCostEstimateCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c CreateCostEstimateCommand) CostEstimateID() kernel.UUID {
	return c.costEstimateID
}

func (c CreateCostEstimateCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

func (c CreateCostEstimateCommand) Content() costestimate.Content {
	return c.content
}

func (c CreateCostEstimateCommand) Items() []costestimate.ItemSpec {
	return append([]costestimate.ItemSpec(nil), c.items...)
}

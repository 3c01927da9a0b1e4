package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrGetCostEstimateQueryIsNotConstructed = errors.New(
	"GetCostEstimateQuery must be created via NewGetCostEstimateQuery constructor",
)

// GetCostEstimateQuery loads one estimate with its items in sort order.
type GetCostEstimateQuery struct {
	costEstimateID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCostEstimateQuery(costEstimateID kernel.UUID) (GetCostEstimateQuery, error) {
	if err := costEstimateID.Validate(); err != nil {
		return GetCostEstimateQuery{}, err
	}
	return GetCostEstimateQuery{
		costEstimateID: costEstimateID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q GetCostEstimateQuery) CostEstimateID() kernel.UUID {
	return q.costEstimateID
}

func (q GetCostEstimateQuery) Validate() error {
	return q.guard.Validate(ErrGetCostEstimateQueryIsNotConstructed)
}

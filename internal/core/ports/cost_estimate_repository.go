package ports

import (
	"context"

	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/kernel"
)

// CostEstimateRepository defines the persistence contract for cost estimate
// aggregates including their items.
type CostEstimateRepository interface {
	// Add persists a new estimate and its items. A duplicate number yields
	// errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, ce *costestimate.CostEstimate) error

	// Update persists the estimate row and replaces its stored items with the
	// current item set.
	Update(ctx context.Context, ce *costestimate.CostEstimate) error

	// Get returns the estimate with its items ordered by sort order, or
	// errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*costestimate.CostEstimate, error)

	// Delete removes the estimate and its items.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteByPurchaseOrder removes every estimate of the order with their items and
	// returns how many estimates were removed.
	DeleteByPurchaseOrder(ctx context.Context, purchaseOrderID kernel.UUID) (int64, error)

	// CountByPurchaseOrder returns how many estimates belong to the order.
	CountByPurchaseOrder(ctx context.Context, purchaseOrderID kernel.UUID) (int64, error)

	// LastNumber returns the lexicographically greatest number issued in year,
	// or nil when the year has none.
	LastNumber(ctx context.Context, year int) (*kernel.DocumentNumber, error)
}

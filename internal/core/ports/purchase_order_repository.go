package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
)

// PurchaseOrderRepository defines the persistence contract for purchase order aggregates.
type PurchaseOrderRepository interface {
	// Add persists a new order. A duplicate number yields errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, po *purchaseorder.PurchaseOrder) error

	// Update persists status, audit fields and details of an existing order.
	Update(ctx context.Context, po *purchaseorder.PurchaseOrder) error

	// Get returns errs.ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error)

	// Delete removes the order row only. Cost estimates are removed by the caller
	// through CostEstimateRepository.DeleteByPurchaseOrder beforehand.
	Delete(ctx context.Context, id kernel.UUID) error

	// LastNumber returns the lexicographically greatest number issued in year,
	// or nil when the year has none.
	LastNumber(ctx context.Context, year int) (*kernel.DocumentNumber, error)
}

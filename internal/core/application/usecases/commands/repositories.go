// Package commands contains business operations that modify system state.
// Every command follows the same pattern: a constructor validates the input, the
// handler opens a unit of work, loads and authorizes the actor, applies the domain
// transition with its explicit cascades, persists and commits. Any error rolls the
// whole unit back.
package commands

import (
	"context"

	"procurement/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// PurchaseOrderRepoFactory provides access to the purchase order repository within a transaction.
	PurchaseOrderRepoFactory interface {
		PurchaseOrderRepository() ports.PurchaseOrderRepository
	}

	// CostEstimateRepoFactory provides access to the cost estimate repository within a transaction.
	CostEstimateRepoFactory interface {
		CostEstimateRepository() ports.CostEstimateRepository
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// PurchaseOrderUoW manages transactions for operations on a purchase order
	// performed by an actor.
	PurchaseOrderUoW interface {
		TxManager
		UserRepoFactory
		PurchaseOrderRepoFactory
	}

	// PurchaseOrderUoWFactory creates new purchase order unit of work instances.
	PurchaseOrderUoWFactory interface {
		Create() PurchaseOrderUoW
	}

	// UoW manages transactions that span purchase orders and cost estimates.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   ceRepo := uow.CostEstimateRepository()
	//   poRepo := uow.PurchaseOrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		UserRepoFactory
		PurchaseOrderRepoFactory
		CostEstimateRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

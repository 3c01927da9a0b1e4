// Package postgres provides the GORM implementation of the unit of work and the
// database bootstrap shared by the procurement repositories.
//
// A unit of work spans one business transaction. Repositories obtained from it after
// Begin run inside that transaction, so a handler either commits every write or none:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.CostEstimateRepository().Add(ctx, ce); err != nil {
//	    return err
//	}
//	if err := uow.PurchaseOrderRepository().Update(ctx, po); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each goroutine must use its own unit of work.
package postgres

import (
	"context"

	"procurement/internal/adapters/out/postgres/costestimaterepo"
	"procurement/internal/adapters/out/postgres/purchaseorderrepo"
	"procurement/internal/adapters/out/postgres/userrepo"
	"procurement/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the repositories.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin opens the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit makes the transaction's writes permanent.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction's writes. Without an open transaction, for
// example after Commit, it does nothing.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// UserRepository returns a user repository bound to the open transaction, or to the
// pool when none is open.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

// PurchaseOrderRepository returns a purchase order repository bound like UserRepository.
func (uow *GormUnitOfWork) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	return purchaseorderrepo.NewGormPurchaseOrderRepository(uow.conn())
}

// CostEstimateRepository returns a cost estimate repository bound like UserRepository.
func (uow *GormUnitOfWork) CostEstimateRepository() ports.CostEstimateRepository {
	return costestimaterepo.NewGormCostEstimateRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

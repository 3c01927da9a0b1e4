package commands

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
)

// CreatePurchaseOrderCommandHandler opens purchase orders. Any active user may do so.
//
// The next "PO-<year>-<seq>" number is read and the order inserted in one
// transaction. When a concurrent create took the same number first, the unique
// index rejects the insert and the whole unit is replayed with a fresh number.
type CreatePurchaseOrderCommandHandler struct {
	uowFactory PurchaseOrderUoWFactory
	numberer   services.DocumentNumberer
	clock      ports.Clock
}

func NewCreatePurchaseOrderCommandHandler(
	uowFactory PurchaseOrderUoWFactory,
	clock ports.Clock,
) CreatePurchaseOrderCommandHandler {
	return CreatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
		numberer:   services.NewDocumentNumberer(),
		clock:      clock,
	}
}

// Handle creates the order in draft and returns it.
func (h CreatePurchaseOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePurchaseOrderCommand,
) (*purchaseorder.PurchaseOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return retryOnDuplicateNumber(func() (*purchaseorder.PurchaseOrder, error) {
		return h.create(ctx, cmd)
	})
}

func (h CreatePurchaseOrderCommandHandler) create(
	ctx context.Context,
	cmd CreatePurchaseOrderCommand,
) (*purchaseorder.PurchaseOrder, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := loadActiveActor(ctx, uow.UserRepository(), cmd.ActorID()); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	poRepo := uow.PurchaseOrderRepository()

	last, err := poRepo.LastNumber(ctx, now.Year())
	if err != nil {
		return nil, err
	}
	number, err := h.numberer.Next(kernel.PurchaseOrderPrefix, now.Year(), last)
	if err != nil {
		return nil, err
	}

	po, err := purchaseorder.NewPurchaseOrder(cmd.PurchaseOrderID(), number, cmd.Details(), cmd.ActorID(), now)
	if err != nil {
		return nil, err
	}

	if err = poRepo.Add(ctx, po); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return po, nil
}

package commands_test

import (
	"errors"
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidatePurchaseOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	validator := newTestUser(t, identity.BSP, "bsp@example.com")
	po := newTestPurchaseOrder(t, kernel.NewUUID(), 1)
	cmd, err := commands.NewValidatePurchaseOrderCommand(validator.ID(), po.ID(), "  budget confirmed ")
	require.NoError(t, err)

	users := new(MockUserRepository)
	orders := new(MockPurchaseOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("Get", ctx, validator.ID()).Return(validator, nil).Once(),
		uow.On("PurchaseOrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, po.ID()).Return(po, nil).Once(),
		orders.On("Update", ctx, po).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockPurchaseOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewValidatePurchaseOrderCommandHandler(factory, fixedClock{testNow})
	validated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, purchaseorder.Validated, validated.Status())
	require.NotNil(t, validated.ValidatedBy())
	assert.True(t, validated.ValidatedBy().IsEqual(validator.ID()))
	assert.Equal(t, testNow, *validated.ValidatedAt())
	assert.Equal(t, "budget confirmed", validated.ValidationNotes())
	users.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestValidatePurchaseOrderCommandHandler_Handle_CapabilityCheckedBeforeStatus(t *testing.T) {
	for _, role := range []identity.Role{identity.UnitKerja, identity.KKF, identity.DAU} {
		for _, status := range purchaseorder.Statuses() {
			t.Run(role.String()+"/"+status.String(), func(t *testing.T) {
				ctx := t.Context()
				actor := newTestUser(t, role, role.String()+"@example.com")
				cmd, err := commands.NewValidatePurchaseOrderCommand(actor.ID(), kernel.NewUUID(), "")
				require.NoError(t, err)

				users := new(MockUserRepository)
				users.On("Get", ctx, actor.ID()).Return(actor, nil).Once()
				uow := new(MockUoW)
				uow.On("Begin", ctx).Return(nil).Once()
				uow.On("UserRepository").Return(users).Once()
				uow.On("Rollback", ctx).Return(nil).Once()
				factory := new(MockPurchaseOrderUoWFactory)
				factory.On("Create").Return(uow).Once()

				h := commands.NewValidatePurchaseOrderCommandHandler(factory, fixedClock{testNow})
				_, err = h.Handle(ctx, cmd)

				var capErr *errs.CapabilityError
				require.ErrorAs(t, err, &capErr)
				uow.AssertNotCalled(t, "PurchaseOrderRepository")
				uow.AssertNotCalled(t, "Commit", ctx)
			})
		}
	}
}

func TestValidatePurchaseOrderCommandHandler_Handle_GuardFailed(t *testing.T) {
	ctx := t.Context()
	validator := newTestUser(t, identity.Admin, "admin@example.com")
	po := restorePurchaseOrder(t, purchaseorder.CEBOQCreated, kernel.NewUUID(), validator.ID())
	cmd, err := commands.NewValidatePurchaseOrderCommand(validator.ID(), po.ID(), "")
	require.NoError(t, err)

	users := new(MockUserRepository)
	orders := new(MockPurchaseOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("Get", ctx, validator.ID()).Return(validator, nil).Once(),
		uow.On("PurchaseOrderRepository").Return(orders).Once(),
		orders.On("Get", ctx, po.ID()).Return(po, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockPurchaseOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewValidatePurchaseOrderCommandHandler(factory, fixedClock{testNow})
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrGuardFailed)
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestValidatePurchaseOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	validator := newTestUser(t, identity.BSP, "bsp@example.com")
	poID := kernel.NewUUID()
	cmd, err := commands.NewValidatePurchaseOrderCommand(validator.ID(), poID, "")
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("Get", ctx, validator.ID()).Return(validator, nil).Once()
	orders := new(MockPurchaseOrderRepository)
	orders.On("Get", ctx, poID).Return(nil, errs.NewObjectNotFoundError("purchase order", poID.String())).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users).Once()
	uow.On("PurchaseOrderRepository").Return(orders).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockPurchaseOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewValidatePurchaseOrderCommandHandler(factory, fixedClock{testNow})
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestValidatePurchaseOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	validator := newTestUser(t, identity.BSP, "bsp@example.com")
	po := newTestPurchaseOrder(t, kernel.NewUUID(), 3)
	cmd, err := commands.NewValidatePurchaseOrderCommand(validator.ID(), po.ID(), "")
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("Get", ctx, validator.ID()).Return(validator, nil).Once()
	orders := new(MockPurchaseOrderRepository)
	orders.On("Get", ctx, po.ID()).Return(po, nil).Once()
	orders.On("Update", ctx, po).Return(errors.New("update error")).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(users).Once()
	uow.On("PurchaseOrderRepository").Return(orders).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockPurchaseOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewValidatePurchaseOrderCommandHandler(factory, fixedClock{testNow})
	_, err = h.Handle(ctx, cmd)
	require.EqualError(t, err, "update error")
	uow.AssertNotCalled(t, "Commit", ctx)
}

package commands_test

import (
	"context"
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *identity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *identity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) IsReferenced(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockPurchaseOrderRepository struct{ mock.Mock }

func (m *MockPurchaseOrderRepository) Add(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Update(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchaseorder.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) LastNumber(ctx context.Context, year int) (*kernel.DocumentNumber, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kernel.DocumentNumber), args.Error(1)
}

type MockCostEstimateRepository struct{ mock.Mock }

func (m *MockCostEstimateRepository) Add(ctx context.Context, ce *costestimate.CostEstimate) error {
	args := m.Called(ctx, ce)
	return args.Error(0)
}

func (m *MockCostEstimateRepository) Update(ctx context.Context, ce *costestimate.CostEstimate) error {
	args := m.Called(ctx, ce)
	return args.Error(0)
}

func (m *MockCostEstimateRepository) Get(ctx context.Context, id kernel.UUID) (*costestimate.CostEstimate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*costestimate.CostEstimate), args.Error(1)
}

func (m *MockCostEstimateRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCostEstimateRepository) DeleteByPurchaseOrder(ctx context.Context, id kernel.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCostEstimateRepository) CountByPurchaseOrder(ctx context.Context, id kernel.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCostEstimateRepository) LastNumber(ctx context.Context, year int) (*kernel.DocumentNumber, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kernel.DocumentNumber), args.Error(1)
}

// MockUoW serves every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.PurchaseOrderRepository)
}

func (m *MockUoW) CostEstimateRepository() ports.CostEstimateRepository {
	args := m.Called()
	return args.Get(0).(ports.CostEstimateRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPurchaseOrderUoWFactory struct{ mock.Mock }

func (m *MockPurchaseOrderUoWFactory) Create() commands.PurchaseOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PurchaseOrderUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// plainHasher stores passwords with a visible prefix so tests can assert on them.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return ports.ErrPasswordMismatch
	}
	return nil
}

var testNow = time.Date(2026, time.March, 9, 10, 30, 0, 0, time.UTC)

func newTestUser(t *testing.T, role identity.Role, email string) *identity.User {
	t.Helper()
	user, err := identity.NewUser(kernel.NewUUID(), identity.Profile{
		Name:   "User " + role.String(),
		Email:  email,
		Role:   role,
		Active: true,
	}, "hashed:secret-password", testNow)
	require.NoError(t, err)
	return user
}

func newTestPurchaseOrder(t *testing.T, createdBy kernel.UUID, sequence int) *purchaseorder.PurchaseOrder {
	t.Helper()
	number, err := kernel.NewDocumentNumber(kernel.PurchaseOrderPrefix, testNow.Year(), sequence)
	require.NoError(t, err)
	po, err := purchaseorder.NewPurchaseOrder(kernel.NewUUID(), number, purchaseorder.Details{
		Title: "Office chairs",
	}, createdBy, testNow)
	require.NoError(t, err)
	return po
}

func itemSpec(t *testing.T, description, quantity, unitPrice string) costestimate.ItemSpec {
	t.Helper()
	q, err := kernel.QuantityFromString(quantity)
	require.NoError(t, err)
	price, err := kernel.MoneyFromString(unitPrice)
	require.NoError(t, err)
	return costestimate.ItemSpec{
		Description: description,
		Unit:        "pcs",
		Quantity:    q,
		UnitPrice:   price,
	}
}

// restorePurchaseOrder builds an order in any status with consistent audit markers.
func restorePurchaseOrder(
	t *testing.T,
	status purchaseorder.Status,
	createdBy kernel.UUID,
	staff kernel.UUID,
) *purchaseorder.PurchaseOrder {
	t.Helper()
	number, err := kernel.NewDocumentNumber(kernel.PurchaseOrderPrefix, testNow.Year(), 7)
	require.NoError(t, err)

	params := purchaseorder.RestoreParams{
		ID:        kernel.NewUUID(),
		Number:    number,
		Details:   purchaseorder.Details{Title: "Restored order", Priority: purchaseorder.Low},
		Status:    status,
		CreatedBy: createdBy,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
	at := testNow
	if status.HasPassedValidation() {
		params.ValidatedBy = &staff
		params.ValidatedAt = &at
	}
	if status == purchaseorder.Completed {
		params.CompletedBy = &staff
		params.CompletedAt = &at
	}

	po, err := purchaseorder.RestorePurchaseOrder(params)
	require.NoError(t, err)
	return po
}

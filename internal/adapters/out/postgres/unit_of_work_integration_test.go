package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "procurement/internal/adapters/out/postgres"
	"procurement/internal/adapters/out/postgres/pgtest"
	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactoryCreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow1.PurchaseOrderRepository())
	suite.NotNil(uow1.CostEstimateRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "a second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().NoError(uow.Rollback(ctx), "rollback after commit does nothing")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin() {
	err := suite.factory.Create().Commit(context.Background())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitSpansRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	t := suite.T()

	user := pgtest.NewUser(t, identity.KKF, "kkf@example.com")
	po := pgtest.NewPurchaseOrder(t, user.ID(), 1, "Laptops")
	suite.Require().NoError(po.MarkValidated(user.ID(), "", pgtest.Now))
	ce := pgtest.NewCostEstimate(t, po.ID(), user.ID(), 1, pgtest.ItemSpec(t, "Laptop", "2", "1000.00"))
	suite.Require().NoError(po.AttachCostEstimate(pgtest.Now))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, user))
	suite.Require().NoError(uow.PurchaseOrderRepository().Add(ctx, po))
	suite.Require().NoError(uow.CostEstimateRepository().Add(ctx, ce))
	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	storedPO, err := fresh.PurchaseOrderRepository().Get(ctx, po.ID())
	suite.Require().NoError(err)
	suite.Equal(purchaseorder.CEBOQCreated, storedPO.Status())

	storedCE, err := fresh.CostEstimateRepository().Get(ctx, ce.ID())
	suite.Require().NoError(err)
	suite.Equal("2000.00", storedCE.TotalAmount().String())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsEveryWrite() {
	ctx := context.Background()
	uow := suite.factory.Create()
	t := suite.T()

	user := pgtest.NewUser(t, identity.UnitKerja, "uk@example.com")
	po := pgtest.NewPurchaseOrder(t, user.ID(), 1, "Chairs")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, user))
	suite.Require().NoError(uow.PurchaseOrderRepository().Add(ctx, po))

	_, err := uow.PurchaseOrderRepository().Get(ctx, po.ID())
	suite.Require().NoError(err, "writes are visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.PurchaseOrderRepository().Get(ctx, po.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = fresh.UserRepository().Get(ctx, user.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentUnitsAreIsolated() {
	ctx := context.Background()
	t := suite.T()

	user := pgtest.NewUser(t, identity.UnitKerja, "uk@example.com")
	suite.Require().NoError(suite.factory.Create().UserRepository().Add(ctx, user))

	po1 := pgtest.NewPurchaseOrder(t, user.ID(), 1, "First")
	po2 := pgtest.NewPurchaseOrder(t, user.ID(), 2, "Second")

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.PurchaseOrderRepository().Add(ctx, po1))
	suite.Require().NoError(uow2.PurchaseOrderRepository().Add(ctx, po2))

	_, err := uow1.PurchaseOrderRepository().Get(ctx, po2.ID())
	suite.Require().Error(err, "uow1 must not see uncommitted po2")
	_, err = uow2.PurchaseOrderRepository().Get(ctx, po1.ID())
	suite.Require().Error(err, "uow2 must not see uncommitted po1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.PurchaseOrderRepository().Get(ctx, po1.ID())
	suite.Require().NoError(err)
	_, err = fresh.PurchaseOrderRepository().Get(ctx, po2.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesWorkWithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	user := pgtest.NewUser(suite.T(), identity.Admin, "admin@example.com")

	suite.Require().NoError(uow.UserRepository().Add(ctx, user))

	stored, err := suite.factory.Create().UserRepository().Get(ctx, user.ID())
	suite.Require().NoError(err)
	suite.Equal(user.Email(), stored.Email())
}

func TestUnitOfWorkIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

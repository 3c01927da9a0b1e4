package purchaseorderrepo_test

import (
	"context"
	"testing"
	"time"

	"procurement/internal/adapters/out/postgres/pgtest"
	"procurement/internal/adapters/out/postgres/purchaseorderrepo"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type PurchaseOrderRepositoryTestSuite struct {
	suite.Suite
	database *pgtest.Database
	repo     *purchaseorderrepo.GormPurchaseOrderRepository
	ctx      context.Context
	creator  kernel.UUID
}

func (s *PurchaseOrderRepositoryTestSuite) SetupSuite() {
	s.ctx = context.Background()
	database, err := pgtest.Start(s.ctx)
	s.Require().NoError(err)
	s.database = database
	s.repo = purchaseorderrepo.NewGormPurchaseOrderRepository(database.DB)
	s.creator = kernel.NewUUID()
}

func (s *PurchaseOrderRepositoryTestSuite) SetupTest() {
	s.Require().NoError(s.database.Truncate())
}

func (s *PurchaseOrderRepositoryTestSuite) TearDownSuite() {
	s.Require().NoError(s.database.Stop(s.ctx))
}

func (s *PurchaseOrderRepositoryTestSuite) TestAddAndGetWithOptionalFields() {
	value := kernel.MustMoney("15000000.50")
	requiredBy := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	po, err := purchaseorder.NewPurchaseOrder(
		kernel.NewUUID(),
		pgtest.Number(s.T(), kernel.PurchaseOrderPrefix, 42),
		purchaseorder.Details{
			Title:          "Server rack",
			Description:    "42U rack for the data room",
			EstimatedValue: &value,
			Priority:       purchaseorder.Urgent,
			RequiredBy:     &requiredBy,
		},
		s.creator,
		pgtest.Now,
	)
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Add(s.ctx, po))

	stored, err := s.repo.Get(s.ctx, po.ID())
	s.Require().NoError(err)
	s.Equal("PO-2026-0042", stored.Number().String())
	s.Equal("Server rack", stored.Title())
	s.Equal("42U rack for the data room", stored.Description())
	s.Require().NotNil(stored.EstimatedValue())
	s.Equal("15000000.50", stored.EstimatedValue().String())
	s.Equal(purchaseorder.Urgent, stored.Priority())
	s.Require().NotNil(stored.RequiredBy())
	s.Equal("2026-04-01", stored.RequiredBy().Format(time.DateOnly))
	s.Equal(purchaseorder.Draft, stored.Status())
	s.Nil(stored.ValidatedBy())
}

func (s *PurchaseOrderRepositoryTestSuite) TestAddWithoutOptionalFields() {
	po := pgtest.NewPurchaseOrder(s.T(), s.creator, 1, "Pens")
	s.Require().NoError(s.repo.Add(s.ctx, po))

	stored, err := s.repo.Get(s.ctx, po.ID())
	s.Require().NoError(err)
	s.Nil(stored.EstimatedValue())
	s.Nil(stored.RequiredBy())
	s.Equal(purchaseorder.Medium, stored.Priority())
}

func (s *PurchaseOrderRepositoryTestSuite) TestAddDuplicateNumber() {
	s.Require().NoError(s.repo.Add(s.ctx, pgtest.NewPurchaseOrder(s.T(), s.creator, 5, "First")))

	err := s.repo.Add(s.ctx, pgtest.NewPurchaseOrder(s.T(), s.creator, 5, "Second"))
	s.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (s *PurchaseOrderRepositoryTestSuite) TestUpdatePersistsTransitions() {
	po := pgtest.NewPurchaseOrder(s.T(), s.creator, 1, "Printers")
	s.Require().NoError(s.repo.Add(s.ctx, po))

	validator := kernel.NewUUID()
	validatedAt := pgtest.Now.Add(2 * time.Hour)
	s.Require().NoError(po.MarkValidated(validator, "  budget ok  ", validatedAt))
	s.Require().NoError(s.repo.Update(s.ctx, po))

	stored, err := s.repo.Get(s.ctx, po.ID())
	s.Require().NoError(err)
	s.Equal(purchaseorder.Validated, stored.Status())
	s.Require().NotNil(stored.ValidatedBy())
	s.True(validator.IsEqual(*stored.ValidatedBy()))
	s.Require().NotNil(stored.ValidatedAt())
	s.True(validatedAt.Equal(*stored.ValidatedAt()))
	s.Equal("budget ok", stored.ValidationNotes())
	s.True(validatedAt.Equal(stored.UpdatedAt()))
}

func (s *PurchaseOrderRepositoryTestSuite) TestUpdateMissing() {
	err := s.repo.Update(s.ctx, pgtest.NewPurchaseOrder(s.T(), s.creator, 1, "Ghost"))
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *PurchaseOrderRepositoryTestSuite) TestDelete() {
	po := pgtest.NewPurchaseOrder(s.T(), s.creator, 1, "Scrap")
	s.Require().NoError(s.repo.Add(s.ctx, po))

	s.Require().NoError(s.repo.Delete(s.ctx, po.ID()))
	_, err := s.repo.Get(s.ctx, po.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	s.Require().ErrorIs(s.repo.Delete(s.ctx, po.ID()), errs.ErrObjectNotFound)
}

func (s *PurchaseOrderRepositoryTestSuite) TestLastNumber() {
	last, err := s.repo.LastNumber(s.ctx, 2026)
	s.Require().NoError(err)
	s.Nil(last, "an empty year has no number")

	for _, seq := range []int{3, 17, 9} {
		s.Require().NoError(s.repo.Add(s.ctx, pgtest.NewPurchaseOrder(s.T(), s.creator, seq, "Seq")))
	}

	last, err = s.repo.LastNumber(s.ctx, 2026)
	s.Require().NoError(err)
	s.Require().NotNil(last)
	s.Equal("PO-2026-0017", last.String())

	other, err := s.repo.LastNumber(s.ctx, 2025)
	s.Require().NoError(err)
	s.Nil(other)
}

func TestPurchaseOrderRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(PurchaseOrderRepositoryTestSuite))
}

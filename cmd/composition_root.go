package cmd

import (
	"log/slog"

	"procurement/api"
	"procurement/internal/adapters/in/http"
	"procurement/internal/adapters/out/bcrypt"
	"procurement/internal/adapters/out/postgres"
	"procurement/internal/adapters/out/system"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      system.Clock
	hasher     bcrypt.Hasher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      system.NewClock(),
		hasher:     bcrypt.NewHasher(config.BcryptCost),
		logger:     logger,
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) purchaseOrderUoW() commands.PurchaseOrderUoWFactory {
	return FuncPurchaseOrderUoWFactory(func() commands.PurchaseOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoW() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAuthenticateUserCommandHandler() commands.AuthenticateUserCommandHandler {
	return commands.NewAuthenticateUserCommandHandler(c.userUoW(), c.hasher, c.clock)
}

func (c *CompositionRoot) CreateBootstrapSuperadminCommandHandler() commands.BootstrapSuperadminCommandHandler {
	return commands.NewBootstrapSuperadminCommandHandler(c.userUoW(), c.hasher, c.clock)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userUoW(), c.hasher, c.clock)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	return commands.NewUpdateUserCommandHandler(c.userUoW(), c.hasher, c.clock)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.userUoW())
}

func (c *CompositionRoot) CreateCreatePurchaseOrderCommandHandler() commands.CreatePurchaseOrderCommandHandler {
	return commands.NewCreatePurchaseOrderCommandHandler(c.purchaseOrderUoW(), c.clock)
}

func (c *CompositionRoot) CreateUpdatePurchaseOrderCommandHandler() commands.UpdatePurchaseOrderCommandHandler {
	return commands.NewUpdatePurchaseOrderCommandHandler(c.purchaseOrderUoW(), c.clock)
}

func (c *CompositionRoot) CreateValidatePurchaseOrderCommandHandler() commands.ValidatePurchaseOrderCommandHandler {
	return commands.NewValidatePurchaseOrderCommandHandler(c.purchaseOrderUoW(), c.clock)
}

func (c *CompositionRoot) CreateCompletePurchaseOrderCommandHandler() commands.CompletePurchaseOrderCommandHandler {
	return commands.NewCompletePurchaseOrderCommandHandler(c.purchaseOrderUoW(), c.clock)
}

func (c *CompositionRoot) CreateDeletePurchaseOrderCommandHandler() commands.DeletePurchaseOrderCommandHandler {
	return commands.NewDeletePurchaseOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCreateCostEstimateCommandHandler() commands.CreateCostEstimateCommandHandler {
	return commands.NewCreateCostEstimateCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateUpdateCostEstimateCommandHandler() commands.UpdateCostEstimateCommandHandler {
	return commands.NewUpdateCostEstimateCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateApproveCostEstimateCommandHandler() commands.ApproveCostEstimateCommandHandler {
	return commands.NewApproveCostEstimateCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateRejectCostEstimateCommandHandler() commands.RejectCostEstimateCommandHandler {
	return commands.NewRejectCostEstimateCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateDeleteCostEstimateCommandHandler() commands.DeleteCostEstimateCommandHandler {
	return commands.NewDeleteCostEstimateCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateListPurchaseOrdersQueryHandler() queries.ListPurchaseOrdersQueryHandler {
	return queries.NewListPurchaseOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPurchaseOrderQueryHandler() queries.GetPurchaseOrderQueryHandler {
	return queries.NewGetPurchaseOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCostEstimatesQueryHandler() queries.ListCostEstimatesQueryHandler {
	return queries.NewListCostEstimatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCostEstimateQueryHandler() queries.GetCostEstimateQueryHandler {
	return queries.NewGetCostEstimateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingWorkQueryHandler() queries.GetPendingWorkQueryHandler {
	return queries.NewGetPendingWorkQueryHandler(c.gormDB)
}

// CreateRouter wires the HTTP interface.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	tokens, err := http.NewTokenIssuer(c.config.JWTSecret, c.config.JWTTTL)
	if err != nil {
		return nil, err
	}
	contract, err := http.LoadContract(api.OpenAPI)
	if err != nil {
		return nil, err
	}

	server := http.NewServer(http.Handlers{
		AuthenticateUser:      c.CreateAuthenticateUserCommandHandler(),
		CreatePurchaseOrder:   c.CreateCreatePurchaseOrderCommandHandler(),
		UpdatePurchaseOrder:   c.CreateUpdatePurchaseOrderCommandHandler(),
		ValidatePurchaseOrder: c.CreateValidatePurchaseOrderCommandHandler(),
		CompletePurchaseOrder: c.CreateCompletePurchaseOrderCommandHandler(),
		DeletePurchaseOrder:   c.CreateDeletePurchaseOrderCommandHandler(),
		CreateCostEstimate:    c.CreateCreateCostEstimateCommandHandler(),
		UpdateCostEstimate:    c.CreateUpdateCostEstimateCommandHandler(),
		ApproveCostEstimate:   c.CreateApproveCostEstimateCommandHandler(),
		RejectCostEstimate:    c.CreateRejectCostEstimateCommandHandler(),
		DeleteCostEstimate:    c.CreateDeleteCostEstimateCommandHandler(),
		CreateUser:            c.CreateCreateUserCommandHandler(),
		UpdateUser:            c.CreateUpdateUserCommandHandler(),
		DeleteUser:            c.CreateDeleteUserCommandHandler(),
		ListPurchaseOrders:    c.CreateListPurchaseOrdersQueryHandler(),
		GetPurchaseOrder:      c.CreateGetPurchaseOrderQueryHandler(),
		ListCostEstimates:     c.CreateListCostEstimatesQueryHandler(),
		GetCostEstimate:       c.CreateGetCostEstimateQueryHandler(),
		ListUsers:             c.CreateListUsersQueryHandler(),
		GetDashboard:          c.CreateGetDashboardQueryHandler(),
	}, tokens, c.clock, c.logger)

	return http.NewRouter(server, contract, tokens, c.logger)
}

// CreateJobManager wires the scheduled jobs. An empty digest schedule disables the digest.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var scheduled []jobs.Job
	if c.config.DigestSchedule != "" {
		scheduled = append(scheduled,
			jobs.NewPendingWorkDigestJob(c.CreateGetPendingWorkQueryHandler(), c.config.DigestSchedule, c.logger))
	}
	return jobs.NewJobManager(scheduled...)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncPurchaseOrderUoWFactory func() commands.PurchaseOrderUoW

func (f FuncPurchaseOrderUoWFactory) Create() commands.PurchaseOrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

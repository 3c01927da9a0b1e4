package http

import (
	"log/slog"
	"net/http"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/core/ports"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers groups the use cases the HTTP interface exposes.
type Handlers struct {
	AuthenticateUser commands.AuthenticateUserCommandHandler

	CreatePurchaseOrder   commands.CreatePurchaseOrderCommandHandler
	UpdatePurchaseOrder   commands.UpdatePurchaseOrderCommandHandler
	ValidatePurchaseOrder commands.ValidatePurchaseOrderCommandHandler
	CompletePurchaseOrder commands.CompletePurchaseOrderCommandHandler
	DeletePurchaseOrder   commands.DeletePurchaseOrderCommandHandler

	CreateCostEstimate  commands.CreateCostEstimateCommandHandler
	UpdateCostEstimate  commands.UpdateCostEstimateCommandHandler
	ApproveCostEstimate commands.ApproveCostEstimateCommandHandler
	RejectCostEstimate  commands.RejectCostEstimateCommandHandler
	DeleteCostEstimate  commands.DeleteCostEstimateCommandHandler

	CreateUser commands.CreateUserCommandHandler
	UpdateUser commands.UpdateUserCommandHandler
	DeleteUser commands.DeleteUserCommandHandler

	ListPurchaseOrders queries.ListPurchaseOrdersQueryHandler
	GetPurchaseOrder   queries.GetPurchaseOrderQueryHandler
	ListCostEstimates  queries.ListCostEstimatesQueryHandler
	GetCostEstimate    queries.GetCostEstimateQueryHandler
	ListUsers          queries.ListUsersQueryHandler
	GetDashboard       queries.GetDashboardQueryHandler
}

// Server implements ServerInterface on top of the command and query handlers.
// Mutations answer with the fresh read model of the changed document.
type Server struct {
	handlers Handlers
	tokens   *TokenIssuer
	clock    ports.Clock
	logger   *slog.Logger
}

func NewServer(handlers Handlers, tokens *TokenIssuer, clock ports.Clock, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		tokens:   tokens,
		clock:    clock,
		logger:   logger.With("component", "http_server"),
	}
}

type LoginResponse struct {
	Token     string           `json:"token"`
	TokenType string           `json:"token_type"`
	ExpiresAt time.Time        `json:"expires_at"`
	User      queries.UserView `json:"user"`
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := s.bind(ctx, &req); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAuthenticateUserCommand(req.Email, req.Password)
	if err != nil {
		return s.writeError(ctx, err)
	}
	user, err := s.handlers.AuthenticateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	token, expiresAt, err := s.tokens.Issue(user, s.clock.Now())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token:     token,
		TokenType: tokenType,
		ExpiresAt: expiresAt,
		User:      userView(user),
	})
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	query, err := queries.NewGetDashboardQuery(actor)
	if err != nil {
		return s.writeError(ctx, err)
	}

	dashboard, err := s.handlers.GetDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, dashboard)
}

// ListPurchaseOrders handles GET /api/v1/purchase-orders.
func (s *Server) ListPurchaseOrders(ctx echo.Context, params ListPurchaseOrdersParams) error {
	var filter queries.PurchaseOrderFilter
	var err error
	if params.Status != nil {
		if filter.Status, err = purchaseorder.StatusFromCode(*params.Status); err != nil {
			return s.writeError(ctx, err)
		}
	}
	if params.Priority != nil {
		if filter.Priority, err = purchaseorder.PriorityFromCode(*params.Priority); err != nil {
			return s.writeError(ctx, err)
		}
	}
	filter.Search = deref(params.Search)

	query, err := queries.NewListPurchaseOrdersQuery(filter, params.pageRequest(), params.sortOrder())
	if err != nil {
		return s.writeError(ctx, err)
	}
	page, err := s.handlers.ListPurchaseOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, page)
}

// CreatePurchaseOrder handles POST /api/v1/purchase-orders.
func (s *Server) CreatePurchaseOrder(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	var req PurchaseOrderRequest
	if err = s.bind(ctx, &req); err != nil {
		return s.writeError(ctx, err)
	}
	details, err := req.details()
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCreatePurchaseOrderCommand(actor, kernel.NewUUID(), details)
	if err != nil {
		return s.writeError(ctx, err)
	}
	po, err := s.handlers.CreatePurchaseOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondPurchaseOrder(ctx, http.StatusCreated, po.ID())
}

// GetPurchaseOrder handles GET /api/v1/purchase-orders/{id}.
func (s *Server) GetPurchaseOrder(ctx echo.Context, id openapi_types.UUID) error {
	poID, err := kernel.UUIDFrom(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondPurchaseOrder(ctx, http.StatusOK, poID)
}

// UpdatePurchaseOrder handles PUT /api/v1/purchase-orders/{id}.
func (s *Server) UpdatePurchaseOrder(ctx echo.Context, id openapi_types.UUID) error {
	actor, poID, err := actorAndID(ctx, id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	var req PurchaseOrderRequest
	if err = s.bind(ctx, &req); err != nil {
		return s.writeError(ctx, err)
	}
	details, err := req.details()
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdatePurchaseOrderCommand(actor, poID, details)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if _, err = s.handlers.UpdatePurchaseOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondPurchaseOrder(ctx, http.StatusOK, poID)
}

// DeletePurchaseOrder handles DELETE /api/v1/purchase-orders/{id}.
func (s *Server) DeletePurchaseOrder(ctx echo.Context, id openapi_types.UUID) error {
	actor, poID, err := actorAndID(ctx, id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewDeletePurchaseOrderCommand(actor, poID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.handlers.DeletePurchaseOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ValidatePurchaseOrder handles POST /api/v1/purchase-orders/{id}/validate.
func (s *Server) ValidatePurchaseOrder(ctx echo.Context, id openapi_types.UUID) error {
	actor, poID, notes, err := s.transition(ctx, id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewValidatePurchaseOrderCommand(actor, poID, notes)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if _, err = s.handlers.ValidatePurchaseOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondPurchaseOrder(ctx, http.StatusOK, poID)
}

// CompletePurchaseOrder handles POST /api/v1/purchase-orders/{id}/complete.
func (s *Server) CompletePurchaseOrder(ctx echo.Context, id openapi_types.UUID) error {
	actor, poID, notes, err := s.transition(ctx, id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewCompletePurchaseOrderCommand(actor, poID, notes)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if _, err = s.handlers.CompletePurchaseOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondPurchaseOrder(ctx, http.StatusOK, poID)
}

// ListCostEstimates handles GET /api/v1/cost-estimates.
func (s *Server) ListCostEstimates(ctx echo.Context, params ListCostEstimatesParams) error {
	var filter queries.CostEstimateFilter
	var err error
	if params.Status != nil {
		if filter.Status, err = costestimate.StatusFromCode(*params.Status); err != nil {
			return s.writeError(ctx, err)
		}
	}
	if params.Type != nil {
		if filter.Type, err = costestimate.TypeFromCode(*params.Type); err != nil {
			return s.writeError(ctx, err)
		}
	}
	filter.Search = deref(params.Search)

	query, err := queries.NewListCostEstimatesQuery(filter, params.pageRequest(), params.sortOrder())
	if err != nil {
		return s.writeError(ctx, err)
	}
	page, err := s.handlers.ListCostEstimates.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, page)
}

// CreateCostEstimate handles POST /api/v1/cost-estimates.
func (s *Server) CreateCostEstimate(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	var req CreateCostEstimateRequest
	if err = s.bind(ctx, &req); err != nil {
		return s.writeError(ctx, err)
	}
	poID, err := kernel.UUIDFrom(req.PurchaseOrderID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	content, items, err := req.estimate().content()
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCreateCostEstimateCommand(actor, kernel.NewUUID(), poID, content, items)
	if err != nil {
		return s.writeError(ctx, err)
	}
	ce, err := s.handlers.CreateCostEstimate.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondCostEstimate(ctx, http.StatusCreated, ce.ID())
}

// GetCostEstimate handles GET /api/v1/cost-estimates/{id}.
func (s *Server) GetCostEstimate(ctx echo.Context, id openapi_types.UUID) error {
	ceID, err := kernel.UUIDFrom(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondCostEstimate(ctx, http.StatusOK, ceID)
}

// UpdateCostEstimate handles PUT /api/v1/cost-estimates/{id}.
func (s *Server) UpdateCostEstimate(ctx echo.Context, id openapi_types.UUID) error {
	actor, ceID, err := actorAndID(ctx, id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	var req CostEstimateRequest
	if err = s.bind(ctx, &req); err != nil {
		return s.writeError(ctx, err)
	}
	content, items, err := req.content()
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateCostEstimateCommand(actor, ceID, content, items)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if _, err = s.handlers.UpdateCostEstimate.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondCostEstimate(ctx, http.StatusOK, ceID)
}

// DeleteCostEstimate handles DELETE /api/v1/cost-estimates/{id}.
func (s *Server) DeleteCostEstimate(ctx echo.Context, id openapi_types.UUID) error {
	actor, ceID, err := actorAndID(ctx, id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewDeleteCostEstimateCommand(actor, ceID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.handlers.DeleteCostEstimate.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ApproveCostEstimate handles POST /api/v1/cost-estimates/{id}/approve.
func (s *Server) ApproveCostEstimate(ctx echo.Context, id openapi_types.UUID) error {
	actor, ceID, notes, err := s.transition(ctx, id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewApproveCostEstimateCommand(actor, ceID, notes)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if _, err = s.handlers.ApproveCostEstimate.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondCostEstimate(ctx, http.StatusOK, ceID)
}

// RejectCostEstimate handles POST /api/v1/cost-estimates/{id}/reject.
func (s *Server) RejectCostEstimate(ctx echo.Context, id openapi_types.UUID) error {
	actor, ceID, notes, err := s.transition(ctx, id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewRejectCostEstimateCommand(actor, ceID, notes)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if _, err = s.handlers.RejectCostEstimate.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return s.respondCostEstimate(ctx, http.StatusOK, ceID)
}

// ListUsers handles GET /api/v1/users.
func (s *Server) ListUsers(ctx echo.Context, params ListUsersParams) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	filter := queries.UserFilter{
		Active: params.IsActive,
		Search: deref(params.Search),
	}
	if params.Role != nil {
		if filter.Role, err = identity.RoleFromCode(*params.Role); err != nil {
			return s.writeError(ctx, err)
		}
	}

	query, err := queries.NewListUsersQuery(actor, filter, params.pageRequest())
	if err != nil {
		return s.writeError(ctx, err)
	}
	page, err := s.handlers.ListUsers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, page)
}

// CreateUser handles POST /api/v1/users.
func (s *Server) CreateUser(ctx echo.Context) error {
	actor, err := actorID(ctx)
	if err != nil {
		return s.writeError(ctx, err)
	}
	var req UserRequest
	if err = s.bind(ctx, &req); err != nil {
		return s.writeError(ctx, err)
	}
	profile, err := req.profile()
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewCreateUserCommand(actor, kernel.NewUUID(), profile, req.Password)
	if err != nil {
		return s.writeError(ctx, err)
	}
	user, err := s.handlers.CreateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, userView(user))
}

// UpdateUser handles PUT /api/v1/users/{id}. An empty password keeps the current one.
func (s *Server) UpdateUser(ctx echo.Context, id openapi_types.UUID) error {
	actor, userID, err := actorAndID(ctx, id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	var req UserRequest
	if err = s.bind(ctx, &req); err != nil {
		return s.writeError(ctx, err)
	}
	profile, err := req.profile()
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateUserCommand(actor, userID, profile, req.Password)
	if err != nil {
		return s.writeError(ctx, err)
	}
	user, err := s.handlers.UpdateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, userView(user))
}

// DeleteUser handles DELETE /api/v1/users/{id}.
func (s *Server) DeleteUser(ctx echo.Context, id openapi_types.UUID) error {
	actor, userID, err := actorAndID(ctx, id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewDeleteUserCommand(actor, userID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.handlers.DeleteUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return ctx.Validate(req)
}

// transition reads the actor, the document id and the optional notes body.
func (s *Server) transition(ctx echo.Context, id openapi_types.UUID) (kernel.UUID, kernel.UUID, string, error) {
	actor, docID, err := actorAndID(ctx, id)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, "", err
	}
	var req NotesRequest
	if err = s.bind(ctx, &req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, "", err
	}
	return actor, docID, req.Notes, nil
}

func (s *Server) respondPurchaseOrder(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetPurchaseOrderQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	view, err := s.handlers.GetPurchaseOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(status, view)
}

func (s *Server) respondCostEstimate(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetCostEstimateQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	view, err := s.handlers.GetCostEstimate.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(status, view)
}

func actorAndID(ctx echo.Context, id openapi_types.UUID) (kernel.UUID, kernel.UUID, error) {
	actor, err := actorID(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	docID, err := kernel.UUIDFrom(id)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return actor, docID, nil
}

func userView(user *identity.User) queries.UserView {
	return queries.UserView{
		ID:    user.ID().String(),
		Name:  user.Name(),
		Email: user.Email(),
		Role: queries.Label{
			Code: user.Role().String(),
			Name: user.Role().DisplayName(),
		},
		Active:      user.IsActive(),
		LastLoginAt: user.LastLoginAt(),
		CreatedAt:   user.CreatedAt(),
	}
}

func (p PageParams) pageRequest() queries.PageRequest {
	return queries.NewPageRequest(deref(p.Page), deref(p.PerPage))
}

func (p PageParams) sortOrder() queries.SortOrder {
	return queries.SortOrder{
		Column: deref(p.Sort),
		Desc:   deref(p.Order) == "desc",
	}
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

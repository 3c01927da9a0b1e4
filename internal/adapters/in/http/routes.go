package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// BaseURL prefixes every route of the contract.
const BaseURL = "/api/v1"

// ServerInterface lists the operations of api/openapi.yaml.
type ServerInterface interface {
	// (POST /auth/login)
	Login(ctx echo.Context) error
	// (GET /dashboard)
	GetDashboard(ctx echo.Context) error

	// (GET /purchase-orders)
	ListPurchaseOrders(ctx echo.Context, params ListPurchaseOrdersParams) error
	// (POST /purchase-orders)
	CreatePurchaseOrder(ctx echo.Context) error
	// (GET /purchase-orders/{id})
	GetPurchaseOrder(ctx echo.Context, id openapi_types.UUID) error
	// (PUT /purchase-orders/{id})
	UpdatePurchaseOrder(ctx echo.Context, id openapi_types.UUID) error
	// (DELETE /purchase-orders/{id})
	DeletePurchaseOrder(ctx echo.Context, id openapi_types.UUID) error
	// (POST /purchase-orders/{id}/validate)
	ValidatePurchaseOrder(ctx echo.Context, id openapi_types.UUID) error
	// (POST /purchase-orders/{id}/complete)
	CompletePurchaseOrder(ctx echo.Context, id openapi_types.UUID) error

	// (GET /cost-estimates)
	ListCostEstimates(ctx echo.Context, params ListCostEstimatesParams) error
	// (POST /cost-estimates)
	CreateCostEstimate(ctx echo.Context) error
	// (GET /cost-estimates/{id})
	GetCostEstimate(ctx echo.Context, id openapi_types.UUID) error
	// (PUT /cost-estimates/{id})
	UpdateCostEstimate(ctx echo.Context, id openapi_types.UUID) error
	// (DELETE /cost-estimates/{id})
	DeleteCostEstimate(ctx echo.Context, id openapi_types.UUID) error
	// (POST /cost-estimates/{id}/approve)
	ApproveCostEstimate(ctx echo.Context, id openapi_types.UUID) error
	// (POST /cost-estimates/{id}/reject)
	RejectCostEstimate(ctx echo.Context, id openapi_types.UUID) error

	// (GET /users)
	ListUsers(ctx echo.Context, params ListUsersParams) error
	// (POST /users)
	CreateUser(ctx echo.Context) error
	// (PUT /users/{id})
	UpdateUser(ctx echo.Context, id openapi_types.UUID) error
	// (DELETE /users/{id})
	DeleteUser(ctx echo.Context, id openapi_types.UUID) error
}

// PageParams are the paging and ordering parameters shared by the listings.
type PageParams struct {
	Page    *int
	PerPage *int
	Search  *string
	Sort    *string
	Order   *string
}

type ListPurchaseOrdersParams struct {
	PageParams
	Status   *string
	Priority *string
}

type ListCostEstimatesParams struct {
	PageParams
	Status *string
	Type   *string
}

type ListUsersParams struct {
	PageParams
	Role     *string
	IsActive *bool
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	return w.Handler.Login(ctx)
}

func (w *ServerInterfaceWrapper) GetDashboard(ctx echo.Context) error {
	return w.Handler.GetDashboard(ctx)
}

func (w *ServerInterfaceWrapper) ListPurchaseOrders(ctx echo.Context) error {
	var params ListPurchaseOrdersParams
	if err := bindPageParams(ctx, &params.PageParams); err != nil {
		return err
	}
	if err := bindQuery(ctx, "status", &params.Status); err != nil {
		return err
	}
	if err := bindQuery(ctx, "priority", &params.Priority); err != nil {
		return err
	}
	return w.Handler.ListPurchaseOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreatePurchaseOrder(ctx echo.Context) error {
	return w.Handler.CreatePurchaseOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetPurchaseOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetPurchaseOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdatePurchaseOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdatePurchaseOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) DeletePurchaseOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeletePurchaseOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) ValidatePurchaseOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ValidatePurchaseOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) CompletePurchaseOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CompletePurchaseOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) ListCostEstimates(ctx echo.Context) error {
	var params ListCostEstimatesParams
	if err := bindPageParams(ctx, &params.PageParams); err != nil {
		return err
	}
	if err := bindQuery(ctx, "status", &params.Status); err != nil {
		return err
	}
	if err := bindQuery(ctx, "type", &params.Type); err != nil {
		return err
	}
	return w.Handler.ListCostEstimates(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateCostEstimate(ctx echo.Context) error {
	return w.Handler.CreateCostEstimate(ctx)
}

func (w *ServerInterfaceWrapper) GetCostEstimate(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetCostEstimate(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateCostEstimate(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateCostEstimate(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteCostEstimate(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteCostEstimate(ctx, id)
}

func (w *ServerInterfaceWrapper) ApproveCostEstimate(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ApproveCostEstimate(ctx, id)
}

func (w *ServerInterfaceWrapper) RejectCostEstimate(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RejectCostEstimate(ctx, id)
}

func (w *ServerInterfaceWrapper) ListUsers(ctx echo.Context) error {
	var params ListUsersParams
	if err := bindPageParams(ctx, &params.PageParams); err != nil {
		return err
	}
	if err := bindQuery(ctx, "role", &params.Role); err != nil {
		return err
	}
	if err := bindQuery(ctx, "is_active", &params.IsActive); err != nil {
		return err
	}
	return w.Handler.ListUsers(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateUser(ctx echo.Context) error {
	return w.Handler.CreateUser(ctx)
}

func (w *ServerInterfaceWrapper) UpdateUser(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateUser(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteUser(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteUser(ctx, id)
}

func bindID(ctx echo.Context) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

func bindPageParams(ctx echo.Context, params *PageParams) error {
	if err := bindQuery(ctx, "page", &params.Page); err != nil {
		return err
	}
	if err := bindQuery(ctx, "per_page", &params.PerPage); err != nil {
		return err
	}
	if err := bindQuery(ctx, "search", &params.Search); err != nil {
		return err
	}
	if err := bindQuery(ctx, "sort", &params.Sort); err != nil {
		return err
	}
	return bindQuery(ctx, "order", &params.Order)
}

func bindQuery(ctx echo.Context, name string, dest any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every operation of si to router, relative to the router's prefix.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.POST("/auth/login", w.Login)
	router.GET("/dashboard", w.GetDashboard)

	router.GET("/purchase-orders", w.ListPurchaseOrders)
	router.POST("/purchase-orders", w.CreatePurchaseOrder)
	router.GET("/purchase-orders/:id", w.GetPurchaseOrder)
	router.PUT("/purchase-orders/:id", w.UpdatePurchaseOrder)
	router.DELETE("/purchase-orders/:id", w.DeletePurchaseOrder)
	router.POST("/purchase-orders/:id/validate", w.ValidatePurchaseOrder)
	router.POST("/purchase-orders/:id/complete", w.CompletePurchaseOrder)

	router.GET("/cost-estimates", w.ListCostEstimates)
	router.POST("/cost-estimates", w.CreateCostEstimate)
	router.GET("/cost-estimates/:id", w.GetCostEstimate)
	router.PUT("/cost-estimates/:id", w.UpdateCostEstimate)
	router.DELETE("/cost-estimates/:id", w.DeleteCostEstimate)
	router.POST("/cost-estimates/:id/approve", w.ApproveCostEstimate)
	router.POST("/cost-estimates/:id/reject", w.RejectCostEstimate)

	router.GET("/users", w.ListUsers)
	router.POST("/users", w.CreateUser)
	router.PUT("/users/:id", w.UpdateUser)
	router.DELETE("/users/:id", w.DeleteUser)
}

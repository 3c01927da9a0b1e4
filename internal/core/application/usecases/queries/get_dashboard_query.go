package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

const (
	recentPurchaseOrdersLimit = 5
	pendingApprovalsLimit     = 5
)

// GetDashboardQuery builds the overview shown to an actor after login. What it
// contains depends on the actor's capabilities.
type GetDashboardQuery struct {
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDashboardQuery(actorID kernel.UUID) (GetDashboardQuery, error) {
	if err := actorID.Validate(); err != nil {
		return GetDashboardQuery{}, err
	}
	return GetDashboardQuery{actorID: actorID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDashboardQuery) ActorID() kernel.UUID {
	return q.actorID
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// Dashboard is the response of GetDashboardQuery.
type Dashboard struct {
	Stats                DashboardStats      `json:"stats"`
	RecentPurchaseOrders []PurchaseOrderView `json:"recent_purchase_orders"`
	PendingApprovals     PendingApprovals    `json:"pending_approvals"`
	Charts               DashboardCharts     `json:"charts"`
	Permissions          Permissions         `json:"user_permissions"`
}

// DashboardStats are the headline counts. TotalUsers counts active users and is
// present only for actors that manage users.
type DashboardStats struct {
	TotalPurchaseOrders int64  `json:"total_purchase_orders"`
	PendingValidation   int64  `json:"pending_validation"`
	InProgress          int64  `json:"in_progress"`
	Completed           int64  `json:"completed"`
	TotalCostEstimates  int64  `json:"total_cost_estimates"`
	PendingApproval     int64  `json:"pending_approval"`
	TotalUsers          *int64 `json:"total_users"`
}

// PendingApprovals lists the oldest documents waiting for the actor. Each list is
// present only when the actor holds the matching capability.
type PendingApprovals struct {
	PurchaseOrders []PurchaseOrderView `json:"purchase_orders,omitempty"`
	CostEstimates  []CostEstimateView  `json:"cost_estimates,omitempty"`
}

// DashboardCharts maps status and priority codes to purchase order counts.
type DashboardCharts struct {
	PurchaseOrderStatuses map[string]int64 `json:"purchase_order_statuses"`
	PriorityDistribution  map[string]int64 `json:"priority_distribution"`
}

// Permissions tells a client which actions to offer.
type Permissions struct {
	CanManageUsers            bool `json:"can_manage_users"`
	CanValidatePurchaseOrders bool `json:"can_validate_purchase_orders"`
	CanApproveCostEstimates   bool `json:"can_approve_cost_estimates"`
	CanCreateCostEstimates    bool `json:"can_create_cost_estimates"`
	CanCompletePurchaseOrders bool `json:"can_complete_purchase_orders"`
}

package queries

import (
	"context"

	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/purchaseorder"

	"gorm.io/gorm"
)

type GetDashboardQueryHandler struct {
	db *gorm.DB
}

func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

// Handle requires an active actor.
func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (Dashboard, error) {
	if err := query.Validate(); err != nil {
		return Dashboard{}, err
	}

	db := h.db.WithContext(ctx)
	actor, err := loadViewer(ctx, db, query.actorID, "view dashboard")
	if err != nil {
		return Dashboard{}, err
	}

	dashboard := Dashboard{
		Permissions: Permissions{
			CanManageUsers:            actor.can(identity.ManageUsers),
			CanValidatePurchaseOrders: actor.can(identity.ValidatePurchaseOrders),
			CanApproveCostEstimates:   actor.can(identity.ApproveCostEstimates),
			CanCreateCostEstimates:    actor.can(identity.CreateCostEstimates),
			CanCompletePurchaseOrders: actor.can(identity.CompletePurchaseOrders),
		},
	}

	if dashboard.Stats, err = h.stats(db, dashboard.Permissions.CanManageUsers); err != nil {
		return Dashboard{}, err
	}

	var recent []purchaseOrderRow
	err = purchaseOrdersWithPeople(db).
		Select(purchaseOrderColumns).
		Order("po.created_at DESC, po.po_number DESC").
		Limit(recentPurchaseOrdersLimit).
		Scan(&recent).Error
	if err != nil {
		return Dashboard{}, err
	}
	dashboard.RecentPurchaseOrders = purchaseOrderViews(recent)

	if dashboard.Permissions.CanValidatePurchaseOrders {
		var rows []purchaseOrderRow
		err = purchaseOrdersWithPeople(db).
			Select(purchaseOrderColumns).
			Where("po.status IN ?", validatableStatuses()).
			Order("po.created_at ASC, po.po_number ASC").
			Limit(pendingApprovalsLimit).
			Scan(&rows).Error
		if err != nil {
			return Dashboard{}, err
		}
		dashboard.PendingApprovals.PurchaseOrders = purchaseOrderViews(rows)
	}

	if dashboard.Permissions.CanApproveCostEstimates {
		var rows []costEstimateRow
		err = costEstimatesWithRelations(db).
			Select(costEstimateColumns).
			Where("ce.status IN ?", approvableStatuses()).
			Order("ce.created_at ASC, ce.ce_number ASC").
			Limit(pendingApprovalsLimit).
			Scan(&rows).Error
		if err != nil {
			return Dashboard{}, err
		}
		dashboard.PendingApprovals.CostEstimates = costEstimateViews(rows)
	}

	if dashboard.Charts.PurchaseOrderStatuses, err = countBy(db, "status"); err != nil {
		return Dashboard{}, err
	}
	if dashboard.Charts.PriorityDistribution, err = countBy(db, "priority"); err != nil {
		return Dashboard{}, err
	}

	return dashboard, nil
}

func (h GetDashboardQueryHandler) stats(db *gorm.DB, withUsers bool) (DashboardStats, error) {
	var stats DashboardStats

	counts := []struct {
		table string
		where []any
		dest  *int64
	}{
		{"purchase_orders", nil, &stats.TotalPurchaseOrders},
		{"purchase_orders", []any{"status IN ?", validatableStatuses()}, &stats.PendingValidation},
		{"purchase_orders", []any{"status = ?", purchaseorder.InProgress.String()}, &stats.InProgress},
		{"purchase_orders", []any{"status = ?", purchaseorder.Completed.String()}, &stats.Completed},
		{"cost_estimates", nil, &stats.TotalCostEstimates},
		{"cost_estimates", []any{"status IN ?", approvableStatuses()}, &stats.PendingApproval},
	}

	for _, c := range counts {
		tx := db.Table(c.table)
		if len(c.where) > 0 {
			tx = tx.Where(c.where[0], c.where[1:]...)
		}
		if err := tx.Count(c.dest).Error; err != nil {
			return DashboardStats{}, err
		}
	}

	if withUsers {
		var users int64
		if err := db.Table("users").Where("active = ?", true).Count(&users).Error; err != nil {
			return DashboardStats{}, err
		}
		stats.TotalUsers = &users
	}

	return stats, nil
}

func countBy(db *gorm.DB, column string) (map[string]int64, error) {
	var rows []struct {
		Code  string
		Count int64
	}
	err := db.Table("purchase_orders").
		Select(quoteColumn(db, "purchase_orders", column) + " AS code, COUNT(*) AS count").
		Group(quoteColumn(db, "purchase_orders", column)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Code] = row.Count
	}
	return counts, nil
}

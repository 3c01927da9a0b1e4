package queries

import (
	"context"

	"procurement/internal/core/domain/model/costestimate"

	"gorm.io/gorm"
)

var costEstimateSortColumns = map[string]bool{
	"created_at":   true,
	"ce_number":    true,
	"title":        true,
	"total_amount": true,
	"updated_at":   true,
}

type ListCostEstimatesQueryHandler struct {
	db *gorm.DB
}

func NewListCostEstimatesQueryHandler(db *gorm.DB) ListCostEstimatesQueryHandler {
	return ListCostEstimatesQueryHandler{db: db}
}

func (h ListCostEstimatesQueryHandler) Handle(
	ctx context.Context,
	query ListCostEstimatesQuery,
) (Page[CostEstimateView], error) {
	if err := query.Validate(); err != nil {
		return Page[CostEstimateView]{}, err
	}

	db := h.db.WithContext(ctx)
	scope := func(tx *gorm.DB) *gorm.DB {
		filter := query.filter
		if filter.Status != costestimate.Unknown {
			tx = tx.Where("ce.status = ?", filter.Status.String())
		}
		if filter.Type != costestimate.UnknownType {
			tx = tx.Where("ce.type = ?", filter.Type.String())
		}
		if filter.Search != "" {
			pattern := containsPattern(filter.Search)
			tx = tx.Where(
				"(LOWER(ce.ce_number) LIKE ? OR LOWER(ce.title) LIKE ? OR LOWER(po.po_number) LIKE ? OR LOWER(po.title) LIKE ?)",
				pattern, pattern, pattern, pattern,
			)
		}
		return tx
	}

	var total int64
	err := db.Table("cost_estimates AS ce").
		Joins("LEFT JOIN purchase_orders AS po ON po.id = ce.purchase_order_id").
		Scopes(scope).
		Count(&total).Error
	if err != nil {
		return Page[CostEstimateView]{}, err
	}

	var rows []costEstimateRow
	err = costEstimatesWithRelations(db).
		Select(costEstimateColumns).
		Scopes(scope).
		Order(orderClause(db, "ce", query.sort, costEstimateSortColumns, "ce.created_at DESC, ce.ce_number DESC")).
		Limit(query.page.PerPage).
		Offset(query.page.offset()).
		Scan(&rows).Error
	if err != nil {
		return Page[CostEstimateView]{}, err
	}

	return newPage(costEstimateViews(rows), total, query.page), nil
}

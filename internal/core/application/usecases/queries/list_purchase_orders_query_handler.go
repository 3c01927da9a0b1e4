package queries

import (
	"context"

	"procurement/internal/core/domain/model/purchaseorder"

	"gorm.io/gorm"
)

var purchaseOrderSortColumns = map[string]bool{
	"created_at":  true,
	"po_number":   true,
	"title":       true,
	"required_by": true,
	"updated_at":  true,
}

type ListPurchaseOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListPurchaseOrdersQueryHandler(db *gorm.DB) ListPurchaseOrdersQueryHandler {
	return ListPurchaseOrdersQueryHandler{db: db}
}

func (h ListPurchaseOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListPurchaseOrdersQuery,
) (Page[PurchaseOrderView], error) {
	if err := query.Validate(); err != nil {
		return Page[PurchaseOrderView]{}, err
	}

	db := h.db.WithContext(ctx)
	scope := func(tx *gorm.DB) *gorm.DB {
		filter := query.filter
		if filter.Status != purchaseorder.Unknown {
			tx = tx.Where("po.status = ?", filter.Status.String())
		}
		if filter.Priority != purchaseorder.UnknownPriority {
			tx = tx.Where("po.priority = ?", filter.Priority.String())
		}
		if filter.Search != "" {
			pattern := containsPattern(filter.Search)
			tx = tx.Where(
				"(LOWER(po.po_number) LIKE ? OR LOWER(po.title) LIKE ? OR LOWER(po.description) LIKE ?)",
				pattern, pattern, pattern,
			)
		}
		return tx
	}

	var total int64
	if err := db.Table("purchase_orders AS po").Scopes(scope).Count(&total).Error; err != nil {
		return Page[PurchaseOrderView]{}, err
	}

	var rows []purchaseOrderRow
	err := purchaseOrdersWithPeople(db).
		Select(purchaseOrderColumns).
		Scopes(scope).
		Order(orderClause(db, "po", query.sort, purchaseOrderSortColumns, "po.created_at DESC, po.po_number DESC")).
		Limit(query.page.PerPage).
		Offset(query.page.offset()).
		Scan(&rows).Error
	if err != nil {
		return Page[PurchaseOrderView]{}, err
	}

	return newPage(purchaseOrderViews(rows), total, query.page), nil
}

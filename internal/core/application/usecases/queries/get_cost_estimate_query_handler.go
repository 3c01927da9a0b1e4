package queries

import (
	"context"

	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetCostEstimateQueryHandler struct {
	db *gorm.DB
}

func NewGetCostEstimateQueryHandler(db *gorm.DB) GetCostEstimateQueryHandler {
	return GetCostEstimateQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the estimate does not exist.
func (h GetCostEstimateQueryHandler) Handle(ctx context.Context, query GetCostEstimateQuery) (CostEstimateView, error) {
	if err := query.Validate(); err != nil {
		return CostEstimateView{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.costEstimateID

	var rows []costEstimateRow
	err := costEstimatesWithRelations(db).
		Select(costEstimateColumns).
		Where("ce.id = ?", id.Google()).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return CostEstimateView{}, err
	}
	if len(rows) == 0 {
		return CostEstimateView{}, errs.NewObjectNotFoundError("cost estimate", id.String())
	}

	view := rows[0].view()

	rowsQuery := db.Table("cost_estimate_items").
		Select("id, item_code, description, unit, quantity, unit_price, total_price, notes, sort_order").
		Where("cost_estimate_id = ?", id.Google()).
		Order("sort_order ASC")

	items, err := rowsQuery.Rows()
	if err != nil {
		return CostEstimateView{}, err
	}
	defer items.Close()

	view.Items = make([]CostEstimateItemView, 0)
	for items.Next() {
		var item CostEstimateItemView
		var itemID uuid.UUID
		var quantity, unitPrice, totalPrice decimal.Decimal
		if err := items.Scan(
			&itemID,
			&item.ItemCode,
			&item.Description,
			&item.Unit,
			&quantity,
			&unitPrice,
			&totalPrice,
			&item.Notes,
			&item.SortOrder,
		); err != nil {
			return CostEstimateView{}, err
		}

		item.ID = itemID.String()
		item.Quantity = money(quantity)
		item.UnitPrice = money(unitPrice)
		item.TotalPrice = money(totalPrice)
		view.Items = append(view.Items, item)
	}

	if err := items.Err(); err != nil {
		return CostEstimateView{}, err
	}

	return view, nil
}

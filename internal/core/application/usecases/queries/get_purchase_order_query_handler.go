package queries

import (
	"context"
	"time"

	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetPurchaseOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetPurchaseOrderQueryHandler(db *gorm.DB) GetPurchaseOrderQueryHandler {
	return GetPurchaseOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetPurchaseOrderQueryHandler) Handle(ctx context.Context, query GetPurchaseOrderQuery) (PurchaseOrderView, error) {
	if err := query.Validate(); err != nil {
		return PurchaseOrderView{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.purchaseOrderID

	var rows []purchaseOrderRow
	err := purchaseOrdersWithPeople(db).
		Select(purchaseOrderColumns).
		Where("po.id = ?", id.Google()).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return PurchaseOrderView{}, err
	}
	if len(rows) == 0 {
		return PurchaseOrderView{}, errs.NewObjectNotFoundError("purchase order", id.String())
	}

	view := rows[0].view()

	var estimates []costEstimateSummaryRow
	err = db.Table("cost_estimates").
		Select("id, ce_number, title, type, status, total_amount, created_at").
		Where("purchase_order_id = ?", id.Google()).
		Order("created_at DESC, ce_number DESC").
		Scan(&estimates).Error
	if err != nil {
		return PurchaseOrderView{}, err
	}

	view.CostEstimates = make([]CostEstimateSummary, 0, len(estimates))
	for _, e := range estimates {
		view.CostEstimates = append(view.CostEstimates, e.summary())
	}

	return view, nil
}

type costEstimateSummaryRow struct {
	ID          uuid.UUID `gorm:"column:id"`
	CENumber    string    `gorm:"column:ce_number"`
	Title       string
	Type        string
	Status      string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}

func (r costEstimateSummaryRow) summary() CostEstimateSummary {
	return CostEstimateSummary{
		ID:          r.ID.String(),
		Number:      r.CENumber,
		Title:       r.Title,
		Type:        ceTypeLabel(r.Type),
		Status:      ceStatusLabel(r.Status),
		TotalAmount: money(r.TotalAmount),
		CreatedAt:   r.CreatedAt,
	}
}

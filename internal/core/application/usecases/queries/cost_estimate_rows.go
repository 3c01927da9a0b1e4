package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const costEstimateColumns = `
	ce.id, ce.ce_number, ce.purchase_order_id, COALESCE(po.po_number, '') AS po_number,
	COALESCE(po.title, '') AS po_title, COALESCE(po.status, '') AS po_status,
	ce.title, ce.description, ce.type, ce.total_amount, ce.status,
	ce.created_by, COALESCE(creator.name, '') AS creator_name,
	ce.approved_by, approver.name AS approver_name, ce.approved_at,
	ce.approval_notes, ce.rejection_notes, ce.created_at, ce.updated_at`

type costEstimateRow struct {
	ID              uuid.UUID `gorm:"column:id"`
	CENumber        string    `gorm:"column:ce_number"`
	PurchaseOrderID uuid.UUID
	PONumber        string `gorm:"column:po_number"`
	POTitle         string `gorm:"column:po_title"`
	POStatus        string `gorm:"column:po_status"`
	Title           string
	Description     string
	Type            string
	TotalAmount     decimal.Decimal
	Status          string
	CreatedBy       uuid.UUID
	CreatorName     string
	ApprovedBy      *uuid.UUID
	ApproverName    *string
	ApprovedAt      *time.Time
	ApprovalNotes   string
	RejectionNotes  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func costEstimatesWithRelations(db *gorm.DB) *gorm.DB {
	return db.Table("cost_estimates AS ce").
		Joins("LEFT JOIN purchase_orders AS po ON po.id = ce.purchase_order_id").
		Joins("LEFT JOIN users AS creator ON creator.id = ce.created_by").
		Joins("LEFT JOIN users AS approver ON approver.id = ce.approved_by")
}

func (r costEstimateRow) view() CostEstimateView {
	return CostEstimateView{
		ID:     r.ID.String(),
		Number: r.CENumber,
		PurchaseOrder: PurchaseOrderRef{
			ID:     r.PurchaseOrderID.String(),
			Number: r.PONumber,
			Title:  r.POTitle,
			Status: poStatusLabel(r.POStatus),
		},
		Title:          r.Title,
		Description:    r.Description,
		Type:           ceTypeLabel(r.Type),
		TotalAmount:    money(r.TotalAmount),
		Status:         ceStatusLabel(r.Status),
		CreatedBy:      UserRef{ID: r.CreatedBy.String(), Name: r.CreatorName},
		ApprovedBy:     optionalRef(r.ApprovedBy, r.ApproverName),
		ApprovedAt:     r.ApprovedAt,
		ApprovalNotes:  r.ApprovalNotes,
		RejectionNotes: r.RejectionNotes,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func costEstimateViews(rows []costEstimateRow) []CostEstimateView {
	views := make([]CostEstimateView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.view())
	}
	return views
}

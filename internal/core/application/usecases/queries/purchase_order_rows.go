package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const purchaseOrderColumns = `
	po.id, po.po_number, po.title, po.description, po.estimated_value, po.priority,
	po.required_by, po.status, po.created_by, COALESCE(creator.name, '') AS creator_name,
	po.validated_by, validator.name AS validator_name, po.validated_at, po.validation_notes,
	po.completed_by, completer.name AS completer_name, po.completed_at, po.completion_notes,
	po.created_at, po.updated_at`

type purchaseOrderRow struct {
	ID              uuid.UUID `gorm:"column:id"`
	PONumber        string    `gorm:"column:po_number"`
	Title           string
	Description     string
	EstimatedValue  decimal.NullDecimal
	Priority        string
	RequiredBy      *time.Time
	Status          string
	CreatedBy       uuid.UUID
	CreatorName     string
	ValidatedBy     *uuid.UUID
	ValidatorName   *string
	ValidatedAt     *time.Time
	ValidationNotes string
	CompletedBy     *uuid.UUID
	CompleterName   *string
	CompletedAt     *time.Time
	CompletionNotes string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func purchaseOrdersWithPeople(db *gorm.DB) *gorm.DB {
	return db.Table("purchase_orders AS po").
		Joins("LEFT JOIN users AS creator ON creator.id = po.created_by").
		Joins("LEFT JOIN users AS validator ON validator.id = po.validated_by").
		Joins("LEFT JOIN users AS completer ON completer.id = po.completed_by")
}

func (r purchaseOrderRow) view() PurchaseOrderView {
	return PurchaseOrderView{
		ID:              r.ID.String(),
		Number:          r.PONumber,
		Title:           r.Title,
		Description:     r.Description,
		EstimatedValue:  optionalMoney(r.EstimatedValue),
		Priority:        priorityLabel(r.Priority),
		RequiredBy:      optionalDate(r.RequiredBy),
		Status:          poStatusLabel(r.Status),
		CreatedBy:       UserRef{ID: r.CreatedBy.String(), Name: r.CreatorName},
		ValidatedBy:     optionalRef(r.ValidatedBy, r.ValidatorName),
		ValidatedAt:     r.ValidatedAt,
		ValidationNotes: r.ValidationNotes,
		CompletedBy:     optionalRef(r.CompletedBy, r.CompleterName),
		CompletedAt:     r.CompletedAt,
		CompletionNotes: r.CompletionNotes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func purchaseOrderViews(rows []purchaseOrderRow) []PurchaseOrderView {
	views := make([]PurchaseOrderView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.view())
	}
	return views
}

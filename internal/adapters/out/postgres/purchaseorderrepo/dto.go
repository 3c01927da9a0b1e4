// Package purchaseorderrepo persists purchaseorder.PurchaseOrder aggregates with GORM.
package purchaseorderrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// PurchaseOrderDTO is the purchase_orders table row.
type PurchaseOrderDTO struct {
	ID              uuid.UUID           `gorm:"type:char(36);primaryKey"`
	PONumber        string              `gorm:"column:po_number;type:varchar(20);not null;uniqueIndex"`
	Title           string              `gorm:"type:varchar(255);not null"`
	Description     string              `gorm:"type:text"`
	EstimatedValue  decimal.NullDecimal `gorm:"type:decimal(15,2)"`
	Priority        string              `gorm:"type:varchar(20);not null"`
	RequiredBy      *datatypes.Date     `gorm:"column:required_by"`
	Status          string              `gorm:"type:varchar(30);not null;index"`
	CreatedBy       uuid.UUID           `gorm:"type:char(36);not null;index"`
	ValidatedBy     *uuid.UUID          `gorm:"type:char(36);index"`
	ValidatedAt     *time.Time
	ValidationNotes string `gorm:"type:text"`
	CompletedBy     *uuid.UUID `gorm:"type:char(36);index"`
	CompletedAt     *time.Time
	CompletionNotes string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (PurchaseOrderDTO) TableName() string {
	return "purchase_orders"
}

func fromDomain(po *purchaseorder.PurchaseOrder) PurchaseOrderDTO {
	dto := PurchaseOrderDTO{
		ID:              po.ID().Google(),
		PONumber:        po.Number().String(),
		Title:           po.Title(),
		Description:     po.Description(),
		Priority:        po.Priority().String(),
		Status:          po.Status().String(),
		CreatedBy:       po.CreatedBy().Google(),
		ValidatedBy:     googleID(po.ValidatedBy()),
		ValidatedAt:     po.ValidatedAt(),
		ValidationNotes: po.ValidationNotes(),
		CompletedBy:     googleID(po.CompletedBy()),
		CompletedAt:     po.CompletedAt(),
		CompletionNotes: po.CompletionNotes(),
		CreatedAt:       po.CreatedAt(),
		UpdatedAt:       po.UpdatedAt(),
	}

	if value := po.EstimatedValue(); value != nil {
		dto.EstimatedValue = decimal.NewNullDecimal(value.Decimal())
	}

	if requiredBy := po.RequiredBy(); requiredBy != nil {
		date := datatypes.Date(*requiredBy)
		dto.RequiredBy = &date
	}

	return dto
}

// ToDomain rebuilds the aggregate from a row. It is shared with the query layer.
func ToDomain(dto PurchaseOrderDTO) (*purchaseorder.PurchaseOrder, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	number, err := kernel.ParseDocumentNumber(dto.PONumber)
	if err != nil {
		return nil, err
	}

	status, err := purchaseorder.StatusFromCode(dto.Status)
	if err != nil {
		return nil, err
	}

	priority, err := purchaseorder.PriorityFromCode(dto.Priority)
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFrom(dto.CreatedBy)
	if err != nil {
		return nil, err
	}

	validatedBy, err := domainID(dto.ValidatedBy)
	if err != nil {
		return nil, err
	}

	completedBy, err := domainID(dto.CompletedBy)
	if err != nil {
		return nil, err
	}

	details := purchaseorder.Details{
		Title:       dto.Title,
		Description: dto.Description,
		Priority:    priority,
	}

	if dto.EstimatedValue.Valid {
		value, err := kernel.NewMoney(dto.EstimatedValue.Decimal)
		if err != nil {
			return nil, err
		}
		details.EstimatedValue = &value
	}

	if dto.RequiredBy != nil {
		requiredBy := time.Time(*dto.RequiredBy)
		details.RequiredBy = &requiredBy
	}

	return purchaseorder.RestorePurchaseOrder(purchaseorder.RestoreParams{
		ID:              id,
		Number:          number,
		Details:         details,
		Status:          status,
		CreatedBy:       createdBy,
		ValidatedBy:     validatedBy,
		ValidatedAt:     dto.ValidatedAt,
		ValidationNotes: dto.ValidationNotes,
		CompletedBy:     completedBy,
		CompletedAt:     dto.CompletedAt,
		CompletionNotes: dto.CompletionNotes,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	})
}

func googleID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	g := id.Google()
	return &g
}

func domainID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	k, err := kernel.UUIDFrom(*id)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

// Package costestimaterepo persists costestimate.CostEstimate aggregates and their
// items with GORM.
package costestimaterepo

import (
	"time"

	"procurement/internal/adapters/out/postgres/purchaseorderrepo"
	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostEstimateDTO is the cost_estimates table row.
type CostEstimateDTO struct {
	ID              uuid.UUID                           `gorm:"type:char(36);primaryKey"`
	PurchaseOrderID uuid.UUID                           `gorm:"type:char(36);not null;index"`
	PurchaseOrder   *purchaseorderrepo.PurchaseOrderDTO `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE"`
	CENumber        string                              `gorm:"column:ce_number;type:varchar(20);not null;uniqueIndex"`
	Title           string                              `gorm:"type:varchar(255);not null"`
	Description     string                              `gorm:"type:text"`
	Type            string                              `gorm:"type:varchar(20);not null"`
	TotalAmount     decimal.Decimal                     `gorm:"type:decimal(15,2);not null"`
	Status          string                              `gorm:"type:varchar(20);not null;index"`
	CreatedBy       uuid.UUID                           `gorm:"type:char(36);not null;index"`
	ApprovedBy      *uuid.UUID                          `gorm:"type:char(36);index"`
	ApprovedAt      *time.Time
	ApprovalNotes   string                `gorm:"type:text"`
	RejectionNotes  string                `gorm:"type:text"`
	Items           []CostEstimateItemDTO `gorm:"foreignKey:CostEstimateID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (CostEstimateDTO) TableName() string {
	return "cost_estimates"
}

// CostEstimateItemDTO is the cost_estimate_items table row.
type CostEstimateItemDTO struct {
	ID             uuid.UUID       `gorm:"type:char(36);primaryKey"`
	CostEstimateID uuid.UUID       `gorm:"type:char(36);not null;index"`
	ItemCode       string          `gorm:"type:varchar(50)"`
	Description    string          `gorm:"type:text;not null"`
	Unit           string          `gorm:"type:varchar(50);not null"`
	Quantity       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Notes          string          `gorm:"type:text"`
	SortOrder      int             `gorm:"not null;default:0"`
}

func (CostEstimateItemDTO) TableName() string {
	return "cost_estimate_items"
}

func fromDomain(ce *costestimate.CostEstimate) CostEstimateDTO {
	dto := CostEstimateDTO{
		ID:              ce.ID().Google(),
		PurchaseOrderID: ce.PurchaseOrderID().Google(),
		CENumber:        ce.Number().String(),
		Title:           ce.Title(),
		Description:     ce.Description(),
		Type:            ce.Type().String(),
		TotalAmount:     ce.TotalAmount().Decimal(),
		Status:          ce.Status().String(),
		CreatedBy:       ce.CreatedBy().Google(),
		ApprovedAt:      ce.ApprovedAt(),
		ApprovalNotes:   ce.ApprovalNotes(),
		RejectionNotes:  ce.RejectionNotes(),
		CreatedAt:       ce.CreatedAt(),
		UpdatedAt:       ce.UpdatedAt(),
	}

	if approvedBy := ce.ApprovedBy(); approvedBy != nil {
		id := approvedBy.Google()
		dto.ApprovedBy = &id
	}

	dto.Items = itemsFromDomain(dto.ID, ce.Items())
	return dto
}

func itemsFromDomain(ceID uuid.UUID, items []*costestimate.Item) []CostEstimateItemDTO {
	dtos := make([]CostEstimateItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, CostEstimateItemDTO{
			ID:             item.ID().Google(),
			CostEstimateID: ceID,
			ItemCode:       item.ItemCode(),
			Description:    item.Description(),
			Unit:           item.Unit(),
			Quantity:       item.Quantity().Decimal(),
			UnitPrice:      item.UnitPrice().Decimal(),
			TotalPrice:     item.TotalPrice().Decimal(),
			Notes:          item.Notes(),
			SortOrder:      item.SortOrder(),
		})
	}
	return dtos
}

// ToDomain rebuilds the aggregate from a row with preloaded items.
func ToDomain(dto CostEstimateDTO) (*costestimate.CostEstimate, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	purchaseOrderID, err := kernel.UUIDFrom(dto.PurchaseOrderID)
	if err != nil {
		return nil, err
	}

	number, err := kernel.ParseDocumentNumber(dto.CENumber)
	if err != nil {
		return nil, err
	}

	ceType, err := costestimate.TypeFromCode(dto.Type)
	if err != nil {
		return nil, err
	}

	status, err := costestimate.StatusFromCode(dto.Status)
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFrom(dto.CreatedBy)
	if err != nil {
		return nil, err
	}

	var approvedBy *kernel.UUID
	if dto.ApprovedBy != nil {
		k, err := kernel.UUIDFrom(*dto.ApprovedBy)
		if err != nil {
			return nil, err
		}
		approvedBy = &k
	}

	items := make([]*costestimate.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := itemToDomain(itemDTO)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return costestimate.RestoreCostEstimate(costestimate.RestoreParams{
		ID:              id,
		PurchaseOrderID: purchaseOrderID,
		Number:          number,
		Content: costestimate.Content{
			Title:       dto.Title,
			Description: dto.Description,
			Type:        ceType,
		},
		Items:          items,
		Status:         status,
		CreatedBy:      createdBy,
		ApprovedBy:     approvedBy,
		ApprovedAt:     dto.ApprovedAt,
		ApprovalNotes:  dto.ApprovalNotes,
		RejectionNotes: dto.RejectionNotes,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
	})
}

func itemToDomain(dto CostEstimateItemDTO) (*costestimate.Item, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return costestimate.NewItem(id, costestimate.ItemSpec{
		ItemCode:    dto.ItemCode,
		Description: dto.Description,
		Unit:        dto.Unit,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Notes:       dto.Notes,
	}, dto.SortOrder)
}

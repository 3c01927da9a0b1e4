package queries

import (
	"context"

	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/purchaseorder"

	"gorm.io/gorm"
)

type GetPendingWorkQueryHandler struct {
	db *gorm.DB
}

func NewGetPendingWorkQueryHandler(db *gorm.DB) GetPendingWorkQueryHandler {
	return GetPendingWorkQueryHandler{db: db}
}

func (h GetPendingWorkQueryHandler) Handle(ctx context.Context, query GetPendingWorkQuery) (PendingWork, error) {
	if err := query.Validate(); err != nil {
		return PendingWork{}, err
	}

	db := h.db.WithContext(ctx)
	var work PendingWork

	err := db.Table("purchase_orders").
		Where("status IN ?", validatableStatuses()).
		Count(&work.AwaitingValidation).Error
	if err != nil {
		return PendingWork{}, err
	}

	err = db.Table("cost_estimates").
		Where("status IN ?", approvableStatuses()).
		Count(&work.AwaitingApproval).Error
	if err != nil {
		return PendingWork{}, err
	}

	return work, nil
}

func validatableStatuses() []string {
	var codes []string
	for _, s := range purchaseorder.Statuses() {
		if s.CanBeValidated() {
			codes = append(codes, s.String())
		}
	}
	return codes
}

func approvableStatuses() []string {
	var codes []string
	for _, s := range costestimate.Statuses() {
		if s.CanBeApproved() {
			codes = append(codes, s.String())
		}
	}
	return codes
}

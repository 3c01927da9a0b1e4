package costestimaterepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCostEstimateRepository implements ports.CostEstimateRepository using GORM.
type GormCostEstimateRepository struct {
	db *gorm.DB
}

// NewGormCostEstimateRepository creates a new GORM cost estimate repository.
func NewGormCostEstimateRepository(db *gorm.DB) *GormCostEstimateRepository {
	return &GormCostEstimateRepository{db: db}
}

// Add saves a new estimate together with its items.
func (r *GormCostEstimateRepository) Add(ctx context.Context, aggregate *costestimate.CostEstimate) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("ce_number", dto.CENumber, err)
		}
		return err
	}

	return nil
}

// Update saves the estimate row and replaces its stored items.
func (r *GormCostEstimateRepository) Update(ctx context.Context, aggregate *costestimate.CostEstimate) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&CostEstimateDTO{}).
			Where("id = ?", dto.ID).
			Select("*").
			Omit(clause.Associations, "id", "purchase_order_id", "ce_number", "created_by", "created_at").
			UpdateColumns(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("cost estimate", aggregate.ID().String())
		}

		if err := tx.Where("cost_estimate_id = ?", dto.ID).Delete(&CostEstimateItemDTO{}).Error; err != nil {
			return err
		}

		if len(dto.Items) == 0 {
			return nil
		}
		return tx.Create(&dto.Items).Error
	})
}

// Get retrieves an estimate by ID with its items in sort order.
func (r *GormCostEstimateRepository) Get(ctx context.Context, id kernel.UUID) (*costestimate.CostEstimate, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CostEstimateDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&dto, "id = ?", id.Google()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cost estimate", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// Delete removes the estimate and its items.
func (r *GormCostEstimateRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cost_estimate_id = ?", id.Google()).Delete(&CostEstimateItemDTO{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&CostEstimateDTO{}, "id = ?", id.Google())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("cost estimate", id.String())
		}
		return nil
	})
}

// DeleteByPurchaseOrder removes every estimate of the order and their items.
func (r *GormCostEstimateRepository) DeleteByPurchaseOrder(ctx context.Context, purchaseOrderID kernel.UUID) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		estimates := tx.Model(&CostEstimateDTO{}).
			Select("id").
			Where("purchase_order_id = ?", purchaseOrderID.Google())
		if err := tx.Where("cost_estimate_id IN (?)", estimates).Delete(&CostEstimateItemDTO{}).Error; err != nil {
			return err
		}

		result := tx.Where("purchase_order_id = ?", purchaseOrderID.Google()).Delete(&CostEstimateDTO{})
		deleted = result.RowsAffected
		return result.Error
	})
	return deleted, err
}

// CountByPurchaseOrder returns how many estimates belong to the order.
func (r *GormCostEstimateRepository) CountByPurchaseOrder(ctx context.Context, purchaseOrderID kernel.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&CostEstimateDTO{}).
		Where("purchase_order_id = ?", purchaseOrderID.Google()).
		Count(&count).Error
	return count, err
}

// LastNumber returns the greatest CE number issued in year, or nil.
func (r *GormCostEstimateRepository) LastNumber(ctx context.Context, year int) (*kernel.DocumentNumber, error) {
	var numbers []string
	err := r.db.WithContext(ctx).
		Model(&CostEstimateDTO{}).
		Where("ce_number LIKE ?", kernel.CostEstimatePrefix.YearPattern(year)).
		Order("ce_number DESC").
		Limit(1).
		Pluck("ce_number", &numbers).Error
	if err != nil {
		return nil, err
	}

	if len(numbers) == 0 {
		return nil, nil
	}

	number, err := kernel.ParseDocumentNumber(numbers[0])
	if err != nil {
		return nil, err
	}
	return &number, nil
}

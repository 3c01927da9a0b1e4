package purchaseorderrepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPurchaseOrderRepository implements ports.PurchaseOrderRepository using GORM.
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GORM purchase order repository.
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// Add saves a new purchase order to the database.
func (r *GormPurchaseOrderRepository) Add(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("po_number", dto.PONumber, err)
		}
		return err
	}

	return nil
}

// Update saves an existing purchase order. The number and creation time never change.
func (r *GormPurchaseOrderRepository) Update(ctx context.Context, aggregate *purchaseorder.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PurchaseOrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "po_number", "created_by", "created_at").
		UpdateColumns(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("purchase order", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a purchase order by ID.
func (r *GormPurchaseOrderRepository) Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PurchaseOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("purchase order", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// Delete removes the order row.
func (r *GormPurchaseOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&PurchaseOrderDTO{}, "id = ?", id.Google())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("purchase order", id.String())
	}
	return nil
}

// LastNumber returns the greatest PO number issued in year, or nil.
func (r *GormPurchaseOrderRepository) LastNumber(ctx context.Context, year int) (*kernel.DocumentNumber, error) {
	var numbers []string
	err := r.db.WithContext(ctx).
		Model(&PurchaseOrderDTO{}).
		Where("po_number LIKE ?", kernel.PurchaseOrderPrefix.YearPattern(year)).
		Order("po_number DESC").
		Limit(1).
		Pluck("po_number", &numbers).Error
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

package userrepo

import (
	"context"
	"errors"
	"strings"

	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new user. A taken email is reported as ObjectAlreadyExistsError.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *identity.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translate(err, dto.Email)
	}

	return nil
}

// Update saves every column of an existing user, including false and empty values.
// Timestamps come from the aggregate.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *identity.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		UpdateColumns(&dto)
	if result.Error != nil {
		return translate(result.Error, dto.Email)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// GetByEmail retrieves a user by email, ignoring case and surrounding blanks.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*identity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		return nil, err
	}

	return ToDomain(dto)
}

// Delete removes a user by ID.
func (r *GormUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&UserDTO{}, "id = ?", id.Google())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", id.String())
	}
	return nil
}

// Count returns the number of users, active or not.
func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserDTO{}).Count(&count).Error
	return count, err
}

// IsReferenced reports whether any purchase order or cost estimate names the user
// as creator, validator, completer or approver.
func (r *GormUserRepository) IsReferenced(ctx context.Context, id kernel.UUID) (bool, error) {
	var referenced bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1 FROM purchase_orders
			WHERE created_by = @id OR validated_by = @id OR completed_by = @id
		) OR EXISTS (
			SELECT 1 FROM cost_estimates
			WHERE created_by = @id OR approved_by = @id
		)
	`, map[string]any{"id": id.Google()}).Scan(&referenced).Error
	return referenced, err
}

func translate(err error, email string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewObjectAlreadyExistsErrorWithCause("email", email, err)
	}
	return err
}

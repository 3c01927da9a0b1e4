package queries

import (
	"context"

	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// viewer is the part of a user that read permissions depend on.
type viewer struct {
	email  string
	role   identity.Role
	active bool
}

func (v viewer) can(c identity.Capability) bool {
	return v.active && v.role.Can(c)
}

func (v viewer) authorize(c identity.Capability) error {
	if !v.active {
		return errs.NewCapabilityErrorWithReason(v.email, c.String(), "account is inactive")
	}
	if !v.role.Can(c) {
		return errs.NewCapabilityErrorWithReason(v.email, c.String(), "role "+v.role.String()+" lacks it")
	}
	return nil
}

// loadViewer reads the actor. operation names what the actor attempted and appears
// in the CapabilityError returned for unknown or inactive accounts.
func loadViewer(ctx context.Context, db *gorm.DB, id kernel.UUID, operation string) (viewer, error) {
	var row struct {
		Email  string
		Role   string
		Active bool
	}

	result := db.WithContext(ctx).
		Table("users").
		Select("email, role, active").
		Where("id = ?", id.Google()).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return viewer{}, result.Error
	}
	if result.RowsAffected == 0 {
		return viewer{}, errs.NewCapabilityErrorWithReason(id.String(), operation, "account does not exist")
	}
	if !row.Active {
		return viewer{}, errs.NewCapabilityErrorWithReason(row.Email, operation, "account is inactive")
	}

	role, err := identity.RoleFromCode(row.Role)
	if err != nil {
		return viewer{}, err
	}
	return viewer{email: row.Email, role: role, active: row.Active}, nil
}

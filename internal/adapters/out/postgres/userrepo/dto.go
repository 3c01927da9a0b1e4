// Package userrepo persists identity.User aggregates with GORM.
package userrepo

import (
	"time"

	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO is the users table row.
type UserDTO struct {
	ID           uuid.UUID  `gorm:"type:char(36);primaryKey"`
	Name         string     `gorm:"type:varchar(255);not null;index"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Role         string     `gorm:"type:varchar(20);not null;index"`
	Active       bool       `gorm:"not null;default:true"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(user *identity.User) UserDTO {
	return UserDTO{
		ID:           user.ID().Google(),
		Name:         user.Name(),
		Email:        user.Email(),
		PasswordHash: user.PasswordHash(),
		Role:         user.Role().String(),
		Active:       user.IsActive(),
		LastLoginAt:  user.LastLoginAt(),
		CreatedAt:    user.CreatedAt(),
		UpdatedAt:    user.UpdatedAt(),
	}
}

// ToDomain rebuilds the aggregate from a row. It is shared with the query layer.
func ToDomain(dto UserDTO) (*identity.User, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	role, err := identity.RoleFromCode(dto.Role)
	if err != nil {
		return nil, err
	}

	return identity.RestoreUser(identity.RestoreUserParams{
		ID: id,
		Profile: identity.Profile{
			Name:   dto.Name,
			Email:  dto.Email,
			Role:   role,
			Active: dto.Active,
		},
		PasswordHash: dto.PasswordHash,
		LastLoginAt:  dto.LastLoginAt,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	})
}

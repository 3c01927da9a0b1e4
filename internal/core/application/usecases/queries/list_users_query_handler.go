package queries

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/identity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListUsersQueryHandler struct {
	db *gorm.DB
}

func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle returns a CapabilityError unless the actor may manage users.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) (Page[UserView], error) {
	if err := query.Validate(); err != nil {
		return Page[UserView]{}, err
	}

	db := h.db.WithContext(ctx)
	actor, err := loadViewer(ctx, db, query.actorID, identity.ManageUsers.String())
	if err != nil {
		return Page[UserView]{}, err
	}
	if err := actor.authorize(identity.ManageUsers); err != nil {
		return Page[UserView]{}, err
	}

	scope := func(tx *gorm.DB) *gorm.DB {
		filter := query.filter
		if filter.Role != identity.UnknownRole {
			tx = tx.Where("role = ?", filter.Role.String())
		}
		if filter.Active != nil {
			tx = tx.Where("active = ?", *filter.Active)
		}
		if filter.Search != "" {
			pattern := containsPattern(filter.Search)
			tx = tx.Where("(LOWER(name) LIKE ? OR LOWER(email) LIKE ?)", pattern, pattern)
		}
		return tx
	}

	var total int64
	if err := db.Table("users").Scopes(scope).Count(&total).Error; err != nil {
		return Page[UserView]{}, err
	}

	var rows []struct {
		ID          uuid.UUID `gorm:"column:id"`
		Name        string
		Email       string
		Role        string
		Active      bool
		LastLoginAt *time.Time
		CreatedAt   time.Time
	}
	err = db.Table("users").
		Select("id, name, email, role, active, last_login_at, created_at").
		Scopes(scope).
		Order("name ASC, email ASC").
		Limit(query.page.PerPage).
		Offset(query.page.offset()).
		Scan(&rows).Error
	if err != nil {
		return Page[UserView]{}, err
	}

	views := make([]UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, UserView{
			ID:          row.ID.String(),
			Name:        row.Name,
			Email:       row.Email,
			Role:        roleLabel(row.Role),
			Active:      row.Active,
			LastLoginAt: row.LastLoginAt,
			CreatedAt:   row.CreatedAt,
		})
	}

	return newPage(views, total, query.page), nil
}

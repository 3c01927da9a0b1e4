package ports

import (
	"context"

	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user. A taken email yields errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, user *identity.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *identity.User) error

	// Get returns errs.ObjectNotFoundError when no user has the id.
	Get(ctx context.Context, id kernel.UUID) (*identity.User, error)

	// GetByEmail looks a user up by its normalized email address.
	// Returns errs.ObjectNotFoundError when nobody uses it.
	GetByEmail(ctx context.Context, email string) (*identity.User, error)

	// Delete removes the user. Callers check IsReferenced first.
	Delete(ctx context.Context, id kernel.UUID) error

	// Count returns the number of stored users.
	Count(ctx context.Context) (int64, error)

	// IsReferenced reports whether any purchase order or cost estimate names the user
	// as creator, validator, completer or approver.
	IsReferenced(ctx context.Context, id kernel.UUID) (bool, error)
}

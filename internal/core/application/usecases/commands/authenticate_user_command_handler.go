package commands

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// AuthenticateUserCommandHandler checks credentials and stamps the last login of
// active users.
type AuthenticateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	clock      ports.Clock
}

func NewAuthenticateUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	clock ports.Clock,
) AuthenticateUserCommandHandler {
	return AuthenticateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		clock:      clock,
	}
}

// Handle returns the authenticated user or ErrInvalidCredentials.
func (h AuthenticateUserCommandHandler) Handle(
	ctx context.Context,
	cmd AuthenticateUserCommand,
) (*identity.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	user, err := userRepo.GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err = h.hasher.Compare(user.PasswordHash(), cmd.Password()); err != nil {
		if errors.Is(err, ports.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive() {
		return nil, ErrInvalidCredentials
	}

	user.RecordLogin(h.clock.Now())
	if err = userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}

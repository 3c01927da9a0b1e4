package commands

import (
	"context"

	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// BootstrapSuperadminCommandHandler creates an active superadmin, but only while no
// account exists at all.
type BootstrapSuperadminCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	clock      ports.Clock
}

func NewBootstrapSuperadminCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	clock ports.Clock,
) BootstrapSuperadminCommandHandler {
	return BootstrapSuperadminCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		clock:      clock,
	}
}

func (h BootstrapSuperadminCommandHandler) Handle(
	ctx context.Context,
	cmd BootstrapSuperadminCommand,
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
	count, err := userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errs.NewGuardFailedError("user directory", "populated", "be bootstrapped")
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	user, err := identity.NewUser(cmd.UserID(), identity.Profile{
		Name:   cmd.Name(),
		Email:  cmd.Email(),
		Role:   identity.Superadmin,
		Active: true,
	}, hash, h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}

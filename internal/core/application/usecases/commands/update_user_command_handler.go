package commands

import (
	"context"

	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/ports"
)

// UpdateUserCommandHandler edits accounts on behalf of user managers.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	clock      ports.Clock
}

func NewUpdateUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	clock ports.Clock,
) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		clock:      clock,
	}
}

func (h UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*identity.User, error) {
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
	if _, err := authorizeActor(ctx, userRepo, cmd.ActorID(), identity.ManageUsers); err != nil {
		return nil, err
	}

	user, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	if err = user.Update(cmd.Profile(), now); err != nil {
		return nil, err
	}
	if err = ensureEmailIsFree(ctx, userRepo, user); err != nil {
		return nil, err
	}

	if cmd.ChangesPassword() {
		hash, hashErr := h.hasher.Hash(cmd.Password())
		if hashErr != nil {
			return nil, hashErr
		}
		if err = user.ChangePasswordHash(hash, now); err != nil {
			return nil, err
		}
	}

	if err = userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
